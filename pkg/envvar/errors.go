package envvar

import "fmt"

// FileReadError reports that a <NAME>_FILE indirection named a file that could not
// be read. The resolution never falls through to the default in this case; a broken
// secret mount should fail loudly, not silently run with a fallback value.
type FileReadError struct {
	// Variable is the variable being initialized.
	Variable string
	// FileVariable is the derived pointer variable, i.e. Variable + "_FILE".
	FileVariable string
	// Err is the underlying I/O error.
	Err error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("reading value for %s from file named by %s: %v", e.Variable, e.FileVariable, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// ValidationError reports that the resolved candidate, from whichever source, was
// rejected by the validator. A required variable with no value at all surfaces as
// this error, since required validators reject absence.
type ValidationError struct {
	// Variable is the variable being initialized.
	Variable string
	// Err is the validator's rejection.
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value for %s: %v", e.Variable, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NotSetError reports that a variable expected to be initialized is absent from the
// store. The resolver never returns it; it is for application code reading the
// environment after startup, via Get and MustGet or directly.
type NotSetError struct {
	// Variable is the missing variable.
	Variable string
}

func (e *NotSetError) Error() string {
	return fmt.Sprintf("environment variable %s is not set; set it directly or point %s_FILE at a file containing the value",
		e.Variable, e.Variable)
}
