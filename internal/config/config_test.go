package config

import (
	"log/slog"
	"net/netip"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/aliar?sslmode=disable")
	t.Setenv("JWT_SECRET", "this-is-a-very-long-jwt-secret-for-testing-32+")
}

func TestLoad_Defaults(t *testing.T) {
	validEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10, cfg.RateLimit.Limit)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "app_session_id", cfg.Auth.CookieName)
	assert.Equal(t, "America/Fortaleza", cfg.School.Timezone)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.Mail.Enabled())
	assert.False(t, cfg.Telegram.Enabled())
	assert.False(t, cfg.Notification.Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	validEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT_REQUESTS", "3")
	t.Setenv("OWNER_OPEN_ID", "owner-1")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://aliarcursos.com.br,https://admin.aliarcursos.com.br")
	t.Setenv("NOTIFICATION_ENDPOINT", "https://hooks.example.com/lead")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3, cfg.RateLimit.Limit)
	assert.Equal(t, "owner-1", cfg.Auth.OwnerID)
	assert.Equal(t, []string{"https://aliarcursos.com.br", "https://admin.aliarcursos.com.br"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Notification.Enabled())
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "unset")
	require.NoError(t, os.Unsetenv("DATABASE_URL"))
	t.Setenv("JWT_SECRET", "this-is-a-very-long-jwt-secret-for-testing-32+")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_ShortSecret(t *testing.T) {
	validEnv(t)
	t.Setenv("JWT_SECRET", "curto")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidate_BadTimezone(t *testing.T) {
	validEnv(t)
	t.Setenv("SCHOOL_TIMEZONE", "Nowhere/Atlantis")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SCHOOL_TIMEZONE")
}

func TestLogConfig_SlogLevel(t *testing.T) {
	lvl, err := LogConfig{Level: "WARN"}.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, err = LogConfig{Level: "verbose"}.SlogLevel()
	assert.Error(t, err)
}

func TestRateLimitConfig_Proxies(t *testing.T) {
	got, err := RateLimitConfig{TrustedProxies: []string{"10.0.0.0/8", " 172.17.0.1 ", ""}}.Proxies()
	require.NoError(t, err)
	assert.Equal(t, []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("172.17.0.1/32"),
	}, got)

	_, err = RateLimitConfig{TrustedProxies: []string{"proxy.local"}}.Proxies()
	assert.Error(t, err)
}

func TestValidate_BadTrustedProxy(t *testing.T) {
	validEnv(t)
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/33")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TRUSTED_PROXIES")
}
