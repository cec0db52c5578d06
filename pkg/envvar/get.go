package envvar

// Get returns the store's value for name, or a *NotSetError if the entry is absent.
// It is a read helper for code running after initialization; it performs no
// resolution and no validation.
func (r *Resolver) Get(name string) (string, error) {
	value, ok := r.store.Lookup(name)
	if !ok {
		return "", &NotSetError{Variable: name}
	}
	return value, nil
}

// Get reads name from the real process environment.
// See Resolver.Get.
func Get(name string) (string, error) {
	return defaultResolver.Get(name)
}

// MustGet reads name from the real process environment and panics with a
// *NotSetError if it is absent. For use after initialization has succeeded, where
// absence is a programming error rather than a runtime condition.
func MustGet(name string) string {
	value, err := Get(name)
	if err != nil {
		panic(err)
	}
	return value
}
