package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_String(t *testing.T) {
	tests := []struct {
		name string
		res  Result
		want string
	}{
		{"success", Success("/tmp/a", "Archivo creado en: %s", "/tmp/a"), "✅ Archivo creado en: /tmp/a"},
		{"info", Info("", "nada"), "ℹ️ nada"},
		{"failure", Failure(ClassNotFound, nil, "Error: No se encontró el archivo."), "❌ Error: No se encontró el archivo."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.res.String())
		})
	}
}

func TestResult_Classification(t *testing.T) {
	cause := errors.New("boom")
	r := Failure(ClassIO, cause, "Error al mover: %v", cause)

	assert.True(t, r.Failed())
	assert.False(t, r.OK())
	assert.True(t, r.Is(ClassIO))
	assert.False(t, r.Is(ClassNotFound))
	assert.ErrorIs(t, r.Err, cause)

	ok := Success("/x", "hecho")
	assert.True(t, ok.OK())
	assert.False(t, ok.Is(ClassNone))
	assert.Equal(t, "/x", ok.Path)

	assert.True(t, Info("", "i").OK())
}

func TestParseStatus(t *testing.T) {
	for _, s := range []Status{StatusSuccess, StatusInfo, StatusFailure} {
		assert.Equal(t, s, ParseStatus(s.String()))
	}
	assert.Equal(t, StatusFailure, ParseStatus("???"))
}
