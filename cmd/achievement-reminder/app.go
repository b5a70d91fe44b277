package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/AccelByte/extend-achievement-reminder/pkg/catalog"
	"github.com/AccelByte/extend-achievement-reminder/pkg/config"
	"github.com/AccelByte/extend-achievement-reminder/pkg/engine"
	"github.com/AccelByte/extend-achievement-reminder/pkg/icon"
	"github.com/AccelByte/extend-achievement-reminder/pkg/state"
)

// app is everything a command needs once startup succeeded.
type app struct {
	settings *config.Settings
	catalog  *catalog.InMemoryCatalog
	store    *state.Store
	engine   *engine.Engine
	logger   *slog.Logger
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func overridesFromFlags(cmd *cobra.Command) config.Overrides {
	o := config.Overrides{
		AppID:       flagAppID,
		CatalogPath: flagCatalog,
		StatePath:   flagState,
		ImageDir:    flagImageDir,
		SettingPath: flagSetting,
		EnvFile:     flagEnvFile,
		WorkDir:     flagGameDir,
	}
	if cmd.Flags().Changed("languages") {
		o.Languages = append([]string{}, flagLanguages...)
	}
	return o
}

// loadApp resolves settings and loads the catalog and the baseline state.
// Any failure here is fatal: there is nothing meaningful to show without both.
func loadApp(cmd *cobra.Command) (*app, error) {
	logger := newLogger(flagVerbose)

	settings, err := config.LoadSettings(overridesFromFlags(cmd), logger)
	if err != nil {
		return nil, fmt.Errorf(msgs.App.ErrorLoadFailed, err)
	}

	cat, err := config.NewCatalogLoader(settings.CatalogSource(), logger).LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf(msgs.App.ErrorLoadFailed, err)
	}
	indexed := catalog.NewInMemoryCatalog(cat, icon.NewResolver(nil), logger)

	store, err := state.Load(state.NewFileSource(nil, settings.StatePath), logger)
	if err != nil {
		return nil, fmt.Errorf(msgs.App.ErrorLoadFailed, err)
	}

	return &app{
		settings: settings,
		catalog:  indexed,
		store:    store,
		engine:   engine.New(indexed, store, logger),
		logger:   logger,
	}, nil
}
