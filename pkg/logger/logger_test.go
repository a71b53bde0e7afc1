package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EstampaServicioEnCadaLinea(t *testing.T) {
	l := New(Config{Service: "grocerybag-api", Env: "production", Level: "info"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("arranque")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"service":"grocerybag-api"`,
		"cada línea debe llevar el campo service")
	assert.Contains(t, out, `"message":"arranque"`)
}

func TestNew_SinServicioNoEstampaCampo(t *testing.T) {
	l := New(Config{Env: "production", Level: "info"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("arranque")

	assert.NotContains(t, buf.String(), `"service"`)
}

func TestNew_NivelConfigurable(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, New(Config{Level: "debug"}).Zerolog().GetLevel())
	assert.Equal(t, zerolog.ErrorLevel, New(Config{Level: "error"}).Zerolog().GetLevel())
	// Nivel desconocido o vacío cae a info
	assert.Equal(t, zerolog.InfoLevel, New(Config{Level: "verbose"}).Zerolog().GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New(Config{}).Zerolog().GetLevel())
}
