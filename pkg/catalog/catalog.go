package catalog

import "github.com/AccelByte/extend-achievement-reminder/pkg/domain"

// Catalog provides indexed, read-only access to the achievement definitions of one run,
// and resolves them into display records.
// The catalog is built once at startup; there is no mutation path afterwards.
type Catalog interface {
	// Get retrieves a definition by name.
	// Returns nil if the name is not in the catalog.
	// Time complexity: O(1)
	Get(name string) *domain.AchievementDefinition

	// InCatalogOrder returns the names found in the catalog, sorted by catalog position,
	// and the names that are not in the catalog, in their input order.
	InCatalogOrder(names []string) (known, unknown []string)

	// ResolvedView builds the display record for name merged with snapshot.
	// Returns nil, nil when name is not in the catalog.
	ResolvedView(name string, snapshot domain.Snapshot) (*domain.ResolvedAchievementView, error)

	// TransitionView builds the display record for one transition.
	// Gained views carry the active icon; lost views carry the gray icon and the stored time.
	// Returns nil, nil when name is not in the catalog.
	TransitionView(t domain.Transition, snapshot domain.Snapshot) (*domain.TransitionView, error)

	// ProjectAll builds one display record per definition, in catalog order.
	// Names absent from snapshot still produce a view (not earned, blank time).
	ProjectAll(snapshot domain.Snapshot) ([]domain.ResolvedAchievementView, error)
}
