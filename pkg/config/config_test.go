package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "America/Sao_Paulo", cfg.App.Timezone)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
	assert.Equal(t, "http://localhost:8080/api", cfg.Backend.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout())
	assert.Equal(t, 480*time.Minute, cfg.Session.TTL())
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_DesdeVariablesDeEntorno(t *testing.T) {
	t.Setenv("BACKEND_URL", "https://api.infostock.local/")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("JWT_SECRET", "s3cr3t")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.infostock.local", cfg.Backend.BaseURL, "la barra final se recorta")
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "s3cr3t", cfg.JWT.Secret)
}

func TestLoad_TimeoutInvalido(t *testing.T) {
	v := viper.New()
	v.Set("BACKEND_TIMEOUT_SECONDS", 0)

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestAppConfig_LocationInvalidaUsaLocal(t *testing.T) {
	assert.Equal(t, time.Local, AppConfig{Timezone: "Marte/Olympus"}.Location())
	assert.Equal(t, time.Local, AppConfig{}.Location())
}
