package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/specialistvlad/daypack/internal/config"
	"github.com/specialistvlad/daypack/internal/ctxlog"
	"github.com/specialistvlad/daypack/internal/puzzle"
	"github.com/specialistvlad/daypack/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	loader   config.Loader
	settings *config.Model
	answers  map[config.AnswerKey]string
}

// NewApp is the constructor for the main application. Results are printed to
// outW and logs are written to logW. A nil loader leaves every setting at its
// default. Packs that fail validation are programmer errors and cause a
// panic. Settings are not read here; Run loads them once the requested pack
// and day are known to exist.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW).With("run_id", uuid.NewString())
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All packs registered.", "count", len(modules), "packs", reg.Names())

	if err := reg.ValidateRegistry(ctx, nil); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		loader:   loader,
		settings: config.NewModel(),
	}
}

// configure loads the settings, points every pack at its configured input
// files and checks the configured answers against the registered packs.
func (a *App) configure(ctx context.Context, appConfig *Config) error {
	logger := ctxlog.FromContext(ctx)

	settings := config.NewModel()
	if a.loader != nil && appConfig.SettingsPath != "" {
		loaded, err := a.loader.Load(ctx, appConfig.SettingsPath)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		settings = loaded
		logger.Debug("Settings loaded.", "path", appConfig.SettingsPath)
	}

	applyLayouts(ctx, a.registry, settings, appConfig.InputDir)

	if err := a.registry.ValidateRegistry(ctx, settings.Answers); err != nil {
		return fmt.Errorf("settings disagree with the registered packs: %w", err)
	}

	a.settings = settings
	a.answers = settings.AnswerIndex()
	return nil
}

// applyLayouts points every registered pack at its configured input files.
// The input directory given on the command line wins over the settings.
func applyLayouts(ctx context.Context, reg *registry.Registry, settings *config.Model, inputDir string) {
	logger := ctxlog.FromContext(ctx)

	for name := range settings.Packs {
		if _, ok := reg.Pack(name); !ok {
			logger.Warn("Settings configure an unknown pack.", "pack", name)
		}
	}

	for _, name := range reg.Names() {
		p, _ := reg.Pack(name)
		layout := puzzle.Layout{
			Root:       settings.Inputs.Root,
			TestSuffix: settings.Inputs.TestSuffix,
			Extension:  settings.Inputs.Extension,
		}
		if ps, ok := settings.Packs[name]; ok && ps.InputRoot != "" {
			layout.Root = ps.InputRoot
		}
		if inputDir != "" {
			layout.Root = inputDir
		}
		p = p.WithLayout(layout)
		reg.ReplacePack(p)
		logger.Debug("Pack layout applied.", "pack", name, "root", p.Layout().Root)
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Settings returns the settings loaded by the last successful lookup in Run.
func (a *App) Settings() *config.Model {
	return a.settings
}
