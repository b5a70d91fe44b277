package config

import (
	"fmt"

	"github.com/AccelByte/extend-achievement-reminder/pkg/domain"
	"github.com/AccelByte/extend-achievement-reminder/pkg/errors"
)

// Validator validates achievement catalogs.
// It ensures every entry can be displayed before the application starts watching.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks that:
// - No entry is null
// - Every entry has a non-empty, unique name
// - Every entry has at least one display name and one description
//
// Returns a CATALOG_INVALID error describing the first failure encountered.
func (v *Validator) Validate(catalog *Catalog) error {
	names := make(map[string]bool, len(catalog.Achievements))

	for i, a := range catalog.Achievements {
		if a == nil {
			return errors.ErrCatalogInvalid(fmt.Sprintf("entry %d is null", i))
		}

		if err := v.validateAchievement(a); err != nil {
			return errors.ErrCatalogInvalid(fmt.Sprintf("entry %d (%q): %s", i, a.Name, err.Error()))
		}

		if names[a.Name] {
			return errors.ErrCatalogInvalid(fmt.Sprintf("duplicate achievement name: %s", a.Name))
		}
		names[a.Name] = true
	}

	return nil
}

// validateAchievement validates a single definition.
func (v *Validator) validateAchievement(a *domain.AchievementDefinition) error {
	if a.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if len(a.DisplayName) == 0 {
		return fmt.Errorf("displayName must have at least one language")
	}
	if len(a.Description) == 0 {
		return fmt.Errorf("description must have at least one language")
	}
	return nil
}
