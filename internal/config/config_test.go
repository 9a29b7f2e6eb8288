package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/tabboard/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, home, content string) {
	t.Helper()

	dir := filepath.Join(home, configDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))
}

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	cfg := viper.New()
	Prepare(cfg, t.TempDir())

	got, err := Load(cfg)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultDisplayName, got.DisplayName)
	assert.Equal(t, domain.ViewBoard, got.InitialView)
	assert.Equal(t, "en", got.Locale)
	assert.Equal(t, slog.LevelInfo, got.Log.Level)
	assert.Empty(t, got.Log.File)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `[profile]
display_name = "ada"

[ui]
initial_view = "chat"
locale = "zh"

[log]
level = "debug"
file = "/tmp/tabboard.log"
`)

	cfg := viper.New()
	Prepare(cfg, home)

	got, err := Load(cfg)
	require.NoError(t, err)

	assert.Equal(t, "ada", got.DisplayName)
	assert.Equal(t, domain.ViewChat, got.InitialView)
	assert.Equal(t, "zh", got.Locale)
	assert.Equal(t, slog.LevelDebug, got.Log.Level)
	assert.Equal(t, "/tmp/tabboard.log", got.Log.File)
}

func TestLoadEnvOverridesConfigFile(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "[profile]\ndisplay_name = \"ada\"\n")
	t.Setenv("TABBOARD_PROFILE_DISPLAY_NAME", "grace")
	t.Setenv("TABBOARD_UI_INITIAL_VIEW", "profile")

	cfg := viper.New()
	Prepare(cfg, home)

	got, err := Load(cfg)
	require.NoError(t, err)

	assert.Equal(t, "grace", got.DisplayName)
	assert.Equal(t, domain.ViewProfile, got.InitialView)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{name: "view", key: InitialViewKey, value: "settings", wantErr: "unknown view"},
		{name: "level", key: LogLevelKey, value: "loud", wantErr: LogLevelKey},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := viper.New()
			Prepare(cfg, t.TempDir())
			cfg.Set(tc.key, tc.value)

			_, err := Load(cfg)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoadRejectsMalformedConfigFile(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "[profile\n")

	cfg := viper.New()
	Prepare(cfg, home)

	_, err := Load(cfg)
	assert.ErrorContains(t, err, "read config file")
}

func TestLoadBlankDisplayNameFallsBack(t *testing.T) {
	cfg := viper.New()
	Prepare(cfg, t.TempDir())
	cfg.Set(DisplayNameKey, "   ")

	got, err := Load(cfg)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDisplayName, got.DisplayName)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TABBOARD_TEST_DOTENV=loaded\n"), 0o644))
	t.Setenv("TABBOARD_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("TABBOARD_TEST_DOTENV"))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("TABBOARD_TEST_DOTENV"))

	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}
