package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "Kids Web Store", cfg.Server.AppName)
	assert.Equal(t, 3600, cfg.Cart.TTLSeconds)
	assert.Equal(t, 50, cfg.Cart.MaxItems)
	assert.Equal(t, []string{"http://localhost:8080"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("ENV", "production")
	t.Setenv("CART_TTL_SECONDS", "120")
	t.Setenv("MAX_CART_ITEMS", "10")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 120, cfg.Cart.TTLSeconds)
	assert.Equal(t, 10, cfg.Cart.MaxItems)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("MAX_CART_ITEMS", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Cart.MaxItems)
}
