package config

import "github.com/AccelByte/extend-achievement-reminder/pkg/domain"

// Catalog is the achievement definition set loaded from the definition file
// (steam_settings/achievements.json), together with what is needed to resolve it for display.
// It is parsed once at startup and validated before use.
type Catalog struct {
	Achievements []*domain.AchievementDefinition
	ImageDir     string   // Base directory for icon search
	Languages    []string // Preferred language order; may be empty
}

// CatalogSource describes where a catalog comes from.
type CatalogSource struct {
	Path      string
	ImageDir  string
	Languages []string
}
