package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Port)
	assert.NotEmpty(t, cfg.DBURL)
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
	assert.Equal(t, "token", cfg.SessionCookie)
	assert.False(t, cfg.IsProduction())
}

func TestLoadCustomValues(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_URL", "postgres://db:5432/gallery")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("ADMIN_USERNAME", "curator")
	t.Setenv("GALLERY_NAME", "Galerie Nord")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres://db:5432/gallery", cfg.DBURL)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "curator", cfg.AdminUsername)
	assert.Equal(t, "Galerie Nord", cfg.Gallery.Name)
	assert.True(t, cfg.IsProduction())
}

func TestLoadProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoadRejectsBadCORSOrigin(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	for _, origin := range []string{"", "localhost:3001", "ftp://example.com", "http://example.com/app"} {
		t.Run(origin, func(t *testing.T) {
			t.Setenv("CORS_ORIGIN", origin)
			_, err := Load()
			assert.ErrorContains(t, err, "CORS_ORIGIN")
		})
	}
}

func TestLoadIgnoresCORSOriginInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CORS_ORIGIN", "")

	_, err := Load()
	assert.NoError(t, err)
}
