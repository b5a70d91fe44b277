package catalog

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/AccelByte/extend-achievement-reminder/pkg/common"
	"github.com/AccelByte/extend-achievement-reminder/pkg/config"
	"github.com/AccelByte/extend-achievement-reminder/pkg/domain"
	"github.com/AccelByte/extend-achievement-reminder/pkg/icon"
	"github.com/AccelByte/extend-achievement-reminder/pkg/localize"
)

// InMemoryCatalog provides O(1) lookups over a validated catalog.
// All indexes are built at construction and never change, so concurrent reads need no locking.
type InMemoryCatalog struct {
	byName   map[string]*domain.AchievementDefinition // "ach_name" -> definition
	position map[string]int                           // "ach_name" -> index in file order
	ordered  []*domain.AchievementDefinition          // All definitions (file order)
	imageDir string                                   // Base directory for icon search
	text     *localize.Resolver
	icons    *icon.Resolver
	loc      *time.Location
	logger   *slog.Logger
}

// NewInMemoryCatalog creates a catalog from a validated config.Catalog.
//
// Parameters:
//   - cat: Validated catalog (see config.CatalogLoader)
//   - icons: Icon resolver; nil means the host filesystem
//   - logger: Structured logger for operational logging
func NewInMemoryCatalog(cat *config.Catalog, icons *icon.Resolver, logger *slog.Logger) *InMemoryCatalog {
	if icons == nil {
		icons = icon.NewResolver(nil)
	}

	c := &InMemoryCatalog{
		byName:   make(map[string]*domain.AchievementDefinition, len(cat.Achievements)),
		position: make(map[string]int, len(cat.Achievements)),
		ordered:  make([]*domain.AchievementDefinition, 0, len(cat.Achievements)),
		imageDir: cat.ImageDir,
		text:     localize.NewResolver(cat.Languages),
		icons:    icons,
		loc:      time.Local,
		logger:   logger,
	}

	for _, def := range cat.Achievements {
		c.position[def.Name] = len(c.ordered)
		c.byName[def.Name] = def
		c.ordered = append(c.ordered, def)
	}

	c.logger.Info("Catalog indexed",
		"achievements", len(c.ordered),
		"image_dir", c.imageDir,
	)

	return c
}

// WithLocation sets the timezone used for earned-time display. Defaults to time.Local.
func (c *InMemoryCatalog) WithLocation(loc *time.Location) *InMemoryCatalog {
	if loc != nil {
		c.loc = loc
	}
	return c
}

// Get retrieves a definition by name.
// Returns nil if the name is not in the catalog.
func (c *InMemoryCatalog) Get(name string) *domain.AchievementDefinition {
	return c.byName[name]
}

// InCatalogOrder splits names into catalog members (sorted by catalog position) and unknown names.
func (c *InMemoryCatalog) InCatalogOrder(names []string) (known, unknown []string) {
	for _, name := range names {
		if _, ok := c.position[name]; ok {
			known = append(known, name)
		} else {
			unknown = append(unknown, name)
		}
	}
	sort.SliceStable(known, func(i, j int) bool {
		return c.position[known[i]] < c.position[known[j]]
	})
	return known, unknown
}

// ResolvedView builds the display record for name. The earned time is shown only when earned.
func (c *InMemoryCatalog) ResolvedView(name string, snapshot domain.Snapshot) (*domain.ResolvedAchievementView, error) {
	def := c.byName[name]
	if def == nil {
		return nil, nil
	}
	view, err := c.buildView(def, snapshot, def.Icon)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// TransitionView builds the display record for one transition.
func (c *InMemoryCatalog) TransitionView(t domain.Transition, snapshot domain.Snapshot) (*domain.TransitionView, error) {
	def := c.byName[t.Name]
	if def == nil {
		return nil, nil
	}

	iconRef := def.Icon
	if t.Direction == domain.DirectionLost {
		iconRef = def.IconGray
	}

	view, err := c.buildView(def, snapshot, iconRef)
	if err != nil {
		return nil, err
	}

	st := snapshot[t.Name]
	if t.Direction == domain.DirectionLost {
		// The save layer keeps the old timestamp on un-earned entries; show it as stored.
		view.EarnedTime = common.FormatEarnedTimeIn(st.EarnedTime, c.loc)
	}

	return &domain.TransitionView{
		Direction: t.Direction,
		View:      view,
		EarnedAt:  st.EarnedTime,
	}, nil
}

// ProjectAll builds one display record per definition, in catalog order.
func (c *InMemoryCatalog) ProjectAll(snapshot domain.Snapshot) ([]domain.ResolvedAchievementView, error) {
	views := make([]domain.ResolvedAchievementView, 0, len(c.ordered))
	for _, def := range c.ordered {
		view, err := c.buildView(def, snapshot, def.Icon)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (c *InMemoryCatalog) buildView(def *domain.AchievementDefinition, snapshot domain.Snapshot, iconRef string) (domain.ResolvedAchievementView, error) {
	title, err := c.text.Resolve(def.DisplayName)
	if err != nil {
		return domain.ResolvedAchievementView{}, fmt.Errorf("achievement %s displayName: %w", def.Name, err)
	}
	description, err := c.text.Resolve(def.Description)
	if err != nil {
		return domain.ResolvedAchievementView{}, fmt.Errorf("achievement %s description: %w", def.Name, err)
	}

	st, ok := snapshot[def.Name]
	earned := ok && st.Earned

	view := domain.ResolvedAchievementView{
		ID:          def.Name,
		IconPath:    c.icons.Resolve(iconRef, c.imageDir, def.Name),
		Earned:      earned,
		Title:       title,
		Description: description,
		Visible:     def.IsVisible(),
	}
	if earned {
		view.EarnedTime = common.FormatEarnedTimeIn(st.EarnedTime, c.loc)
	}
	return view, nil
}
