package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/AccelByte/extend-achievement-reminder/pkg/domain"
	"github.com/AccelByte/extend-achievement-reminder/pkg/errors"
)

// CatalogLoader loads and validates the achievement catalog from a JSON file.
// It performs file reading, JSON parsing, and validation.
type CatalogLoader struct {
	source    CatalogSource
	validator *Validator
	logger    *slog.Logger
}

// NewCatalogLoader creates a new CatalogLoader instance.
//
// Parameters:
//   - source: Catalog file path, icon base directory and language preference
//   - logger: Structured logger for operational logging
func NewCatalogLoader(source CatalogSource, logger *slog.Logger) *CatalogLoader {
	return &CatalogLoader{
		source:    source,
		validator: NewValidator(),
		logger:    logger,
	}
}

// LoadCatalog loads the catalog file and returns a validated Catalog.
//
// Any failure is fatal to startup: a partially loaded catalog is never returned.
// Errors carry the SOURCE_UNREADABLE, SOURCE_MALFORMED or CATALOG_INVALID code.
func (l *CatalogLoader) LoadCatalog() (*Catalog, error) {
	data, err := os.ReadFile(l.source.Path)
	if err != nil {
		return nil, errors.ErrSourceUnreadable(l.source.Path, err)
	}

	var achievements []*domain.AchievementDefinition
	if err := json.Unmarshal(data, &achievements); err != nil {
		return nil, errors.ErrSourceMalformed(l.source.Path, err)
	}

	catalog := &Catalog{
		Achievements: achievements,
		ImageDir:     l.source.ImageDir,
		Languages:    append([]string(nil), l.source.Languages...),
	}

	if err := l.validator.Validate(catalog); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}

	if len(catalog.Achievements) == 0 {
		l.logger.Warn("Catalog has no achievements", "catalog_path", l.source.Path)
	}

	l.logger.Info("Catalog loaded successfully",
		"achievements", len(catalog.Achievements),
		"hidden", l.countHidden(catalog),
		"catalog_path", l.source.Path,
		"image_dir", l.source.ImageDir,
	)

	return catalog, nil
}

// countHidden counts entries that are hidden until earned.
func (l *CatalogLoader) countHidden(catalog *Catalog) int {
	count := 0
	for _, a := range catalog.Achievements {
		if !a.IsVisible() {
			count++
		}
	}
	return count
}
