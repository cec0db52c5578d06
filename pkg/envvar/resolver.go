package envvar

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/platinummonkey/envinit/pkg/observability"
)

// fileSuffix derives the pointer variable for file-based indirection: the value of
// <NAME>_FILE is a path whose contents become the value of <NAME>.
const fileSuffix = "_FILE"

// Resolution source names, used for logging and metrics labels.
const (
	sourceEnvironment = observability.SourceEnvironment
	sourceFile        = observability.SourceFile
	sourceDefault     = observability.SourceDefault
	sourceNone        = observability.SourceNone
)

// ReadFileFunc reads the full contents of the file at path.
type ReadFileFunc func(path string) ([]byte, error)

// Resolver resolves variables against an environment store. The zero-configuration
// resolver (NewResolver with no options) works against the real process environment
// and reads files with os.ReadFile.
type Resolver struct {
	store    Store
	readFile ReadFileFunc
	logger   *logrus.Logger
	metrics  *observability.Metrics
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithStore sets the environment store the resolver reads and writes.
func WithStore(store Store) Option {
	return func(r *Resolver) { r.store = store }
}

// WithReadFile sets the function used to read _FILE indirections.
func WithReadFile(readFile ReadFileFunc) Option {
	return func(r *Resolver) { r.readFile = readFile }
}

// WithLogger sets the logger for resolution events.
func WithLogger(logger *logrus.Logger) Option {
	return func(r *Resolver) { r.logger = logger }
}

// WithMetrics sets the metrics collector for resolution outcomes.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(r *Resolver) { r.metrics = metrics }
}

// NewResolver creates a resolver against the process environment, overridden by
// any options given.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		store:    OSStore{},
		readFile: os.ReadFile,
		logger:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// InitOption configures a single InitVariable call.
type InitOption func(*initOptions)

type initOptions struct {
	// defaultValue distinguishes "no default" (nil) from an empty-string default.
	defaultValue *string
}

// WithDefault supplies a fallback value used when neither the variable nor its
// _FILE indirection is set. An empty-string default is a real value, distinct
// from supplying no default at all.
func WithDefault(value string) InitOption {
	return func(o *initOptions) { o.defaultValue = &value }
}

// InitVariable resolves name from, in fixed order of precedence: a non-empty direct
// environment value, the file named by <name>_FILE (contents used byte-exact, no
// trimming), the WithDefault value, or absence. The winning value is written back to
// the store under name; with no source at all the entry is removed. The result is
// then passed through v and a *ValidationError returned on rejection. An unreadable
// _FILE target returns a *FileReadError and never falls through to the default.
//
// Validation deliberately re-reads the store rather than trusting local state, so a
// file-sourced value is checked exactly as stored. Anything mutating the store for
// the same name concurrently races with this call; sequence calls per name.
func (r *Resolver) InitVariable(name string, v Validator, opts ...InitOption) error {
	var o initOptions
	for _, opt := range opts {
		opt(&o)
	}

	log := r.logger.WithField("variable", name)

	source := sourceNone
	if value, ok := r.store.Lookup(name); ok && value != "" {
		source = sourceEnvironment
	} else {
		fileVariable := name + fileSuffix
		if path, ok := r.store.Lookup(fileVariable); ok && path != "" {
			data, err := r.readFile(path)
			if err != nil {
				r.metrics.ObserveFailure(observability.ReasonFileRead)
				log.WithField("file_variable", fileVariable).WithError(err).Error("Failed to read variable from file")
				return &FileReadError{Variable: name, FileVariable: fileVariable, Err: err}
			}
			if err := r.store.Set(name, string(data)); err != nil {
				return fmt.Errorf("storing %s: %w", name, err)
			}
			source = sourceFile
			log.WithField("file_variable", fileVariable).Debug("Resolved variable from file")
		} else if o.defaultValue != nil {
			if err := r.store.Set(name, *o.defaultValue); err != nil {
				return fmt.Errorf("storing %s: %w", name, err)
			}
			source = sourceDefault
			log.Debug("Resolved variable from default")
		} else {
			if err := r.store.Unset(name); err != nil {
				return fmt.Errorf("clearing %s: %w", name, err)
			}
			log.Debug("Variable has no value from any source")
		}
	}

	// Validate the authoritative value: whatever the store holds now, falling back
	// to the default when the entry is absent.
	var candidate *string
	if value, ok := r.store.Lookup(name); ok {
		candidate = &value
	} else {
		candidate = o.defaultValue
	}

	if err := v.SafeParse(candidate); err != nil {
		r.metrics.ObserveFailure(observability.ReasonValidation)
		log.WithField("source", source).WithError(err).Error("Variable failed validation")
		return &ValidationError{Variable: name, Err: err}
	}

	r.metrics.ObserveResolution(source)
	if candidate == nil && v.IsOptional() {
		log.Debug("Optional variable left unset")
	} else {
		log.WithField("source", source).Info("Variable initialized")
	}
	return nil
}

// defaultResolver backs the package-level helpers; it operates on the real
// process environment.
var defaultResolver = NewResolver()

// InitVariable resolves name against the real process environment.
// See Resolver.InitVariable.
func InitVariable(name string, v Validator, opts ...InitOption) error {
	return defaultResolver.InitVariable(name, v, opts...)
}
