package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bnema/tabboard/internal/adapters/render/tabs"
	"github.com/bnema/tabboard/internal/adapters/tui"
	"github.com/bnema/tabboard/internal/application"
	"github.com/bnema/tabboard/internal/config"
	"github.com/bnema/tabboard/internal/observability"
	"github.com/bnema/tabboard/internal/ports"
	"github.com/spf13/viper"
)

const dotEnvFile = ".env"

type uiRunner func(ctx context.Context, service *application.Service, locale tabs.Locale, in io.Reader, out io.Writer) (tui.Model, error)

type app struct {
	config   *viper.Viper
	renderer func(application.Snapshot, tabs.RenderOptions) (string, error)
	runUI    uiRunner
	clock    ports.Clock
}

// runtime is what a single command invocation needs once flags are parsed.
type runtime struct {
	settings config.Config
	locale   tabs.Locale
	logger   *slog.Logger
	closer   io.Closer
	service  *application.Service
}

func wireApp() (*app, error) {
	if err := config.LoadDotEnv(dotEnvFile); err != nil {
		return nil, fmt.Errorf("wire environment: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg := viper.New()
	config.Prepare(cfg, homeDir)

	return &app{
		config:   cfg,
		renderer: tabs.Render,
		runUI:    tui.Run,
		clock:    ports.SystemClock{},
	}, nil
}

func (a *app) start() (*runtime, error) {
	settings, err := config.Load(a.config)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	locale, err := tabs.ParseLocale(settings.Locale)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := observability.NewLogger(settings.Log.File, settings.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	service := application.NewService(application.SessionOptions{
		DisplayName: settings.DisplayName,
		InitialView: settings.InitialView,
	}, a.clock, logger)

	return &runtime{
		settings: settings,
		locale:   locale,
		logger:   logger,
		closer:   closer,
		service:  service,
	}, nil
}

func (r *runtime) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
