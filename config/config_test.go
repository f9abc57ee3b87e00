package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JUMIA_MODE", "")
	os.Unsetenv("JUMIA_MODE")
	t.Setenv("DISCORD_TOKEN", "tok")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ModeProduction, cfg.Mode)
	assert.Equal(t, "tok", cfg.Token)
	assert.Equal(t, 0, cfg.Shards)
	assert.True(t, cfg.Recover)
	assert.False(t, cfg.SyncEvents)
	assert.Equal(t, "extensions.yml", cfg.Extensions)
	assert.False(t, IsDevelopment())
}

func TestLoad_EnvFile(t *testing.T) {
	t.Setenv("JUMIA_MODE", "")
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DISCORD_APP_ID", "")
	t.Setenv("JUMIA_SHARDS", "")
	os.Unsetenv("JUMIA_SHARDS")

	dir := t.TempDir()
	envfile := filepath.Join(dir, ".env")
	content := "JUMIA_MODE=development\nDISCORD_TOKEN=from-file\nDISCORD_APP_ID=42\nJUMIA_SHARDS=2\n"
	require.NoError(t, os.WriteFile(envfile, []byte(content), 0o600))

	cfg, err := Load(envfile)
	require.NoError(t, err)
	assert.Equal(t, ModeDevelopment, cfg.Mode)
	assert.Equal(t, "from-file", cfg.Token)
	assert.Equal(t, "42", cfg.ApplicationID)
	assert.Equal(t, 2, cfg.Shards)
	assert.True(t, IsDevelopment())

	Conf = Config{Mode: ModeProduction}
}

func TestLoad_MissingEnvFileIsFine(t *testing.T) {
	t.Setenv("JUMIA_MODE", "production")
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestLoad_InvalidMode(t *testing.T) {
	t.Setenv("JUMIA_MODE", "staging")
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadExtensions_Missing(t *testing.T) {
	ext, err := LoadExtensions(filepath.Join(t.TempDir(), "none.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultExtensions(), ext)
}

func TestLoadExtensions_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extensions.yml")
	yml := "ping:\n  reply: \"pong\"\naudit:\n  enabled: true\nstatus:\n  enabled: true\n  addr: \":8090\"\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	ext, err := LoadExtensions(path)
	require.NoError(t, err)
	assert.True(t, ext.Ping.Enabled)
	assert.Equal(t, "!extension", ext.Ping.Trigger)
	assert.Equal(t, "pong", ext.Ping.Reply)
	assert.True(t, ext.Audit.Enabled)
	assert.Equal(t, ":8090", ext.Status.Addr)
}

func TestLoadExtensions_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("ping: [unclosed"), 0o600))
	_, err := LoadExtensions(path)
	assert.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logLevel(Config{LogLevel: "warn"}), logLevel(Config{LogLevel: "WARNING"}))
	assert.Equal(t, logLevel(Config{Mode: ModeDevelopment}), logLevel(Config{LogLevel: "trace"}))
	assert.Equal(t, logLevel(Config{Mode: ModeProduction}), logLevel(Config{LogLevel: "info"}))
}
