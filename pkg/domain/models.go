package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AchievementDefinition is a single catalog entry as read from the achievement definition file.
// Definitions are immutable once the catalog is loaded.
type AchievementDefinition struct {
	Name        string            `json:"name"`        // Unique identifier (primary key)
	Hidden      HiddenFlag        `json:"hidden"`      // "0" means visible, anything else means hidden
	DisplayName map[string]string `json:"displayName"` // language code -> title
	Description map[string]string `json:"description"` // language code -> description
	Icon        string            `json:"icon"`        // Active icon reference (path or bare filename)
	IconGray    string            `json:"icon_gray"`   // Inactive icon reference
}

// IsVisible reports whether the entry is shown before it is earned.
// The source keeps the flag as a string; only the literal "0" counts as visible.
func (d *AchievementDefinition) IsVisible() bool {
	return d.Hidden == "0"
}

// UnmarshalJSON rejects records missing the hidden, icon or icon_gray key.
// Empty strings are accepted.
func (d *AchievementDefinition) UnmarshalJSON(data []byte) error {
	type plain AchievementDefinition
	var raw struct {
		plain
		Hidden   *HiddenFlag `json:"hidden"`
		Icon     *string     `json:"icon"`
		IconGray *string     `json:"icon_gray"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var missing []string
	if raw.Hidden == nil {
		missing = append(missing, "hidden")
	}
	if raw.Icon == nil {
		missing = append(missing, "icon")
	}
	if raw.IconGray == nil {
		missing = append(missing, "icon_gray")
	}
	if len(missing) > 0 {
		return fmt.Errorf("achievement %q: missing %s", raw.Name, strings.Join(missing, ", "))
	}

	*d = AchievementDefinition(raw.plain)
	d.Hidden = *raw.Hidden
	d.Icon = *raw.Icon
	d.IconGray = *raw.IconGray
	return nil
}

// HiddenFlag keeps the raw hidden marker as text. Some generators write it as a JSON
// number; numbers are kept in their literal form so 0 still reads as "0".
type HiddenFlag string

// UnmarshalJSON accepts a JSON string or number.
func (f *HiddenFlag) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = HiddenFlag(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("hidden must be a string or number: %w", err)
	}
	*f = HiddenFlag(n.String())
	return nil
}

// AchievementState is the runtime record for one achievement as written by the save emulator.
type AchievementState struct {
	Earned     bool   `json:"earned"`
	EarnedTime uint64 `json:"earned_time"` // Seconds since the Unix epoch; kept as-is even when not earned
}

var errNullState = errors.New("achievement state: null record")

// UnmarshalJSON requires both earned and earned_time. A null record is an error.
func (s *AchievementState) UnmarshalJSON(data []byte) error {
	var raw struct {
		Earned     *bool   `json:"earned"`
		EarnedTime *uint64 `json:"earned_time"`
	}
	if string(bytes.TrimSpace(data)) == "null" {
		return errNullState
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Earned == nil {
		return fmt.Errorf("achievement state: missing earned")
	}
	if raw.EarnedTime == nil {
		return fmt.Errorf("achievement state: missing earned_time")
	}
	*s = AchievementState{Earned: *raw.Earned, EarnedTime: *raw.EarnedTime}
	return nil
}

// Snapshot is the full runtime state keyed by achievement name.
type Snapshot map[string]AchievementState

// IsEarned returns the earned flag for name. Absent names count as not earned.
func (s Snapshot) IsEarned(name string) bool {
	st, ok := s[name]
	return ok && st.Earned
}

// Clone returns an independent copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Direction is the kind of earned-state change observed between two snapshots.
type Direction string

const (
	// DirectionGained means the achievement went from not earned to earned.
	DirectionGained Direction = "gained"

	// DirectionLost means the achievement went from earned to not earned.
	DirectionLost Direction = "lost"
)

// IsValid returns true if the direction is a known kind.
func (d Direction) IsValid() bool {
	switch d {
	case DirectionGained, DirectionLost:
		return true
	default:
		return false
	}
}

// Transition is a single earned-state change for one achievement.
type Transition struct {
	Name      string    `json:"name"`
	Direction Direction `json:"direction"`
}

// Diff holds the transitions computed for one reload, collected as two independent batches.
type Diff struct {
	Gained []string `json:"gained"`
	Lost   []string `json:"lost"`
}

// IsEmpty reports whether nothing changed.
func (d Diff) IsEmpty() bool {
	return len(d.Gained) == 0 && len(d.Lost) == 0
}

// Len returns the total number of transitions.
func (d Diff) Len() int {
	return len(d.Gained) + len(d.Lost)
}

// Transitions flattens the diff into the gained batch followed by the lost batch.
func (d Diff) Transitions() []Transition {
	out := make([]Transition, 0, d.Len())
	for _, name := range d.Gained {
		out = append(out, Transition{Name: name, Direction: DirectionGained})
	}
	for _, name := range d.Lost {
		out = append(out, Transition{Name: name, Direction: DirectionLost})
	}
	return out
}

// ResolvedAchievementView is the display-ready record handed to the presentation layer.
// It is derived on demand and never persisted by the engine.
type ResolvedAchievementView struct {
	ID          string `json:"id"`
	IconPath    string `json:"icon"`
	Earned      bool   `json:"earned"`
	EarnedTime  string `json:"earned_time"` // Local time, "2006-01-02 15:04:05"; empty when unknown
	Title       string `json:"title"`
	Description string `json:"description"`
	Visible     bool   `json:"visible"`
}

// TransitionView pairs a transition with its resolved view.
type TransitionView struct {
	Direction Direction               `json:"direction"`
	View      ResolvedAchievementView `json:"view"`
	EarnedAt  uint64                  `json:"earned_at"` // Raw stored timestamp from the new snapshot
}

// TransitionRecord is a persisted history row for one observed transition.
type TransitionRecord struct {
	ID         string    `json:"id" db:"id"`
	AppID      string    `json:"app_id" db:"app_id"`
	Name       string    `json:"name" db:"name"`
	Direction  Direction `json:"direction" db:"direction"`
	Title      string    `json:"title" db:"title"`
	EarnedTime uint64    `json:"earned_time" db:"earned_time"`
	ObservedAt time.Time `json:"observed_at" db:"observed_at"`
}

// NewTransitionRecord builds a history row for tv with a fresh random ID.
func NewTransitionRecord(appID string, tv TransitionView, observedAt time.Time) *TransitionRecord {
	return &TransitionRecord{
		ID:         uuid.NewString(),
		AppID:      appID,
		Name:       tv.View.ID,
		Direction:  tv.Direction,
		Title:      tv.View.Title,
		EarnedTime: tv.EarnedAt,
		ObservedAt: observedAt,
	}
}
