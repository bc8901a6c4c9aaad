//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keyParams struct {
	Bits uint32 `validate:"keybits"`
}

func TestKeyBitsValidation(t *testing.T) {
	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("keybits", KeyBitsValidation))

	for _, bits := range []uint32{512, 1024, 2048, 3072, 4096} {
		assert.NoError(t, validate.Struct(&keyParams{Bits: bits}), "bits %d", bits)
	}

	for _, bits := range []uint32{0, 256, 1000, 2047, 8192} {
		assert.Error(t, validate.Struct(&keyParams{Bits: bits}), "bits %d", bits)
	}
}
