package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-engine/pkg/logger"
)

func TestNew_JSONConServicio(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Service: "invoice-engine", Output: &buf})
	log.Info().Str("k", "v").Msg("hola")

	var ev map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ev))
	assert.Equal(t, "invoice-engine", ev["service"])
	assert.Equal(t, "v", ev["k"])
	assert.Equal(t, "hola", ev["message"])
}

func TestNew_NivelFiltraEventos(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})
	log.Info().Msg("no debe salir")
	assert.Zero(t, buf.Len())
	log.Warn().Msg("sí")
	assert.NotZero(t, buf.Len())
}
