package envvar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverGet(t *testing.T) {
	store := NewMapStore()
	require.NoError(t, store.Set("PORT", "8080"))
	r := NewResolver(WithStore(store), WithLogger(quietLogger()))

	value, err := r.Get("PORT")
	require.NoError(t, err)
	assert.Equal(t, "8080", value)

	_, err = r.Get("MISSING")
	var notSet *NotSetError
	require.ErrorAs(t, err, &notSet)
	assert.Equal(t, "MISSING", notSet.Variable)
}

func TestGet_ProcessEnvironment(t *testing.T) {
	t.Setenv("ENVINIT_TEST_GET", "value")

	value, err := Get("ENVINIT_TEST_GET")
	require.NoError(t, err)
	assert.Equal(t, "value", value)
}

func TestMustGet(t *testing.T) {
	t.Setenv("ENVINIT_TEST_MUST", "value")
	assert.Equal(t, "value", MustGet("ENVINIT_TEST_MUST"))

	expected := (&NotSetError{Variable: "ENVINIT_TEST_ABSENT"}).Error()
	assert.PanicsWithError(t, expected, func() {
		MustGet("ENVINIT_TEST_ABSENT")
	})
}
