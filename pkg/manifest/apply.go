package manifest

import (
	"golang.org/x/sync/errgroup"

	"github.com/platinummonkey/envinit/pkg/envvar"
)

// Apply initializes every variable in the manifest through r. Distinct variable
// names resolve independently, so they run concurrently; the first failure is
// returned after all in-flight resolutions finish. A nil resolver applies the
// manifest against the real process environment.
//
// Apply assumes the manifest passed Parse, which rejects duplicate names; two
// entries for the same name would race on the store.
func (m *Manifest) Apply(r *envvar.Resolver) error {
	if r == nil {
		r = envvar.NewResolver()
	}

	var g errgroup.Group
	for _, v := range m.Variables {
		v := v
		g.Go(func() error {
			rule, err := RuleFor(v.Rule)
			if err != nil {
				return err
			}
			var opts []envvar.InitOption
			if v.Default != nil {
				opts = append(opts, envvar.WithDefault(*v.Default))
			}
			return r.InitVariable(v.Name, rule, opts...)
		})
	}
	return g.Wait()
}
