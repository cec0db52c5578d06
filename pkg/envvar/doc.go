// Package envvar resolves and validates environment variables at process startup.
//
// # Overview
//
// This package implements a single resolution procedure, InitVariable, that picks a
// variable's value from a prioritized set of sources, validates it, and publishes the
// result back into the environment store so later reads are plain lookups. It exists
// so the same call site works whether a deployment injects a literal value or mounts
// a secret as a file, without branching in application code.
//
// # Precedence
//
// Resolution order is fixed:
//
//   - <NAME>: a non-empty direct value wins outright
//   - <NAME>_FILE: a path whose full file contents (byte-exact, no trimming) become
//     the value, written back under <NAME>
//   - default: the value passed via WithDefault, written back under <NAME>
//   - none: the entry is removed so later existence checks observe "not set"
//
// The _FILE convention matches container platforms that mount secrets as files.
//
// # Validation
//
// Every resolution ends by passing the authoritative value through a caller-supplied
// Validator. The package ships four presets (Required, Optional, RequiredNonEmpty,
// OptionalNonEmpty); any other implementation of the two-method Validator interface
// works, so a schema library can be adapted without this package depending on one.
//
// # Usage
//
// Typical startup sequence:
//
//	if err := envvar.InitVariable("PORT", envvar.Required, envvar.WithDefault("8080")); err != nil {
//		log.Fatal(err)
//	}
//	if err := envvar.InitVariable("API_SECRET", envvar.RequiredNonEmpty); err != nil {
//		log.Fatal(err)
//	}
//	port := envvar.MustGet("PORT")
//
// Against an injected store (tests, or anything that should not touch the real
// process environment):
//
//	store := envvar.NewMapStore()
//	r := envvar.NewResolver(envvar.WithStore(store))
//	err := r.InitVariable("DATABASE_URL", envvar.RequiredNonEmpty)
//
// # Errors
//
// Failures are typed and matched with errors.As:
//
//   - *FileReadError: <NAME>_FILE named a file that could not be read; never falls
//     through to the default
//   - *ValidationError: the resolved candidate (from any source, including absence)
//     was rejected by the validator
//   - *NotSetError: returned by Get/MustGet when application code reads a variable
//     after initialization and finds it missing
//
// Neither InitVariable error is retried internally; callers treat a failure as fatal
// to startup.
//
// # Concurrency
//
// Calls for distinct variable names are independent and safe to run concurrently.
// Calls for the same name race on the shared store like any two unsynchronized
// writers; sequence them, which startup code does naturally.
//
// # Related Packages
//
//   - pkg/manifest: declarative YAML list of variables applied through a Resolver
//   - pkg/observability: Prometheus counters for resolution outcomes
package envvar
