package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/tabboard/internal/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".config/tabboard"
	envPrefix  = "TABBOARD"

	DisplayNameKey = "profile.display_name"
	InitialViewKey = "ui.initial_view"
	LocaleKey      = "ui.locale"
	LogLevelKey    = "log.level"
	LogFileKey     = "log.file"
)

type Config struct {
	DisplayName string
	InitialView domain.View
	Locale      string
	Log         LogConfig
}

type LogConfig struct {
	Level slog.Level
	File  string
}

// Prepare registers defaults, the config file search path and environment
// overrides on cfg. It does not read anything yet.
func Prepare(cfg *viper.Viper, homeDir string) {
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	if homeDir != "" {
		cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	}

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(DisplayNameKey, domain.DefaultDisplayName)
	cfg.SetDefault(InitialViewKey, string(domain.ViewBoard))
	cfg.SetDefault(LocaleKey, "en")
	cfg.SetDefault(LogLevelKey, "info")
	cfg.SetDefault(LogFileKey, "")
}

// LoadDotEnv exports variables from path into the process environment. A
// missing file is not an error; variables already set are kept.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func Load(cfg *viper.Viper) (Config, error) {
	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	view, err := domain.ParseView(cfg.GetString(InitialViewKey))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", InitialViewKey, err)
	}

	level, err := parseLevel(cfg.GetString(LogLevelKey))
	if err != nil {
		return Config{}, err
	}

	displayName := strings.TrimSpace(cfg.GetString(DisplayNameKey))
	if displayName == "" {
		displayName = domain.DefaultDisplayName
	}

	return Config{
		DisplayName: displayName,
		InitialView: view,
		Locale:      cfg.GetString(LocaleKey),
		Log: LogConfig{
			Level: level,
			File:  cfg.GetString(LogFileKey),
		},
	}, nil
}

func parseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return 0, fmt.Errorf("%s: %w", LogLevelKey, err)
	}
	return level, nil
}
