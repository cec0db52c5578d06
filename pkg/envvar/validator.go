package envvar

import "errors"

// Validator judges whether a resolved candidate value is acceptable. A nil pointer
// passed to SafeParse means the variable ended up with no value at all.
//
// The interface is deliberately minimal so adapters for schema libraries can satisfy
// it structurally; this package never depends on a particular validation library.
type Validator interface {
	// IsOptional reports whether an absent value is acceptable.
	IsOptional() bool
	// SafeParse validates the candidate. nil means the variable is unset.
	// A nil return means the candidate is accepted.
	SafeParse(value *string) error
}

// Rule is a predicate-backed Validator. The zero value is not usable; use one of
// the package presets or build adapters around your own Validator implementation.
type Rule struct {
	name     string
	optional bool
	check    func(value *string) error
}

func (r Rule) IsOptional() bool { return r.optional }

func (r Rule) SafeParse(value *string) error { return r.check(value) }

// String returns the rule's name, e.g. "required-non-empty".
func (r Rule) String() string { return r.name }

// Preset rules covering the common requiredness/emptiness combinations.
var (
	// Required rejects an unset variable. An empty string is accepted.
	Required = Rule{
		name: "required",
		check: func(value *string) error {
			if value == nil {
				return errors.New("required value is not set")
			}
			return nil
		},
	}

	// Optional accepts anything, including an unset variable.
	Optional = Rule{
		name:     "optional",
		optional: true,
		check: func(value *string) error {
			return nil
		},
	}

	// RequiredNonEmpty rejects an unset variable and an empty string.
	RequiredNonEmpty = Rule{
		name: "required-non-empty",
		check: func(value *string) error {
			if value == nil {
				return errors.New("required value is not set")
			}
			if *value == "" {
				return errors.New("required value is empty")
			}
			return nil
		},
	}

	// OptionalNonEmpty accepts an unset variable but rejects an empty string.
	OptionalNonEmpty = Rule{
		name:     "optional-non-empty",
		optional: true,
		check: func(value *string) error {
			if value != nil && *value == "" {
				return errors.New("value is empty; unset the variable or provide a non-empty value")
			}
			return nil
		},
	}
)
