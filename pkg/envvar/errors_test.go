package envvar

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileReadError(t *testing.T) {
	cause := os.ErrPermission
	err := &FileReadError{Variable: "SECRET", FileVariable: "SECRET_FILE", Err: cause}

	assert.Contains(t, err.Error(), "SECRET")
	assert.Contains(t, err.Error(), "SECRET_FILE")
	assert.ErrorIs(t, err, cause)
}

func TestValidationError(t *testing.T) {
	cause := errors.New("required value is not set")
	err := &ValidationError{Variable: "API_KEY", Err: cause}

	assert.Contains(t, err.Error(), "API_KEY")
	assert.Contains(t, err.Error(), cause.Error())
	assert.ErrorIs(t, err, cause)
}

func TestNotSetError_HintsAtFileIndirection(t *testing.T) {
	err := &NotSetError{Variable: "DATABASE_URL"}

	assert.Contains(t, err.Error(), "DATABASE_URL")
	assert.Contains(t, err.Error(), "DATABASE_URL_FILE")
}
