// Package state holds the reloadable runtime snapshot of earned flags and timestamps
// and computes transitions between consecutive snapshots.
package state

import (
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/AccelByte/extend-achievement-reminder/pkg/common"
	"github.com/AccelByte/extend-achievement-reminder/pkg/domain"
	"github.com/AccelByte/extend-achievement-reminder/pkg/errors"
)

var errNullDocument = stderrors.New("state document is null")

// Store owns the current snapshot. ReloadAndDiff must not be called concurrently
// on one Store; reads may run alongside it.
type Store struct {
	source   Source
	snapshot domain.Snapshot
	loc      *time.Location
	mu       sync.RWMutex // Protects snapshot
	logger   *slog.Logger
}

// Load reads the baseline snapshot. Failure is fatal to startup: without a baseline
// there is nothing to diff against.
func Load(source Source, logger *slog.Logger) (*Store, error) {
	snapshot, err := read(source)
	if err != nil {
		return nil, err
	}

	logger.Info("Runtime state loaded",
		"state_path", source.Path(),
		"entries", len(snapshot),
		"earned", countEarned(snapshot),
	)

	return &Store{
		source:   source,
		snapshot: snapshot,
		loc:      time.Local,
		logger:   logger,
	}, nil
}

// WithLocation sets the timezone used by EarnedTimeOf. Defaults to time.Local.
func (s *Store) WithLocation(loc *time.Location) *Store {
	if loc != nil {
		s.loc = loc
	}
	return s
}

// ReloadAndDiff re-reads the source and, on success, replaces the snapshot and returns
// the transitions against the previous one.
//
// A non-nil error means the transitions could not be determined: the previous snapshot is kept
// and the next successful reload diffs against it. An empty Diff with a nil error means nothing changed.
func (s *Store) ReloadAndDiff() (domain.Diff, error) {
	next, err := read(s.source)
	if err != nil {
		return domain.Diff{}, err
	}

	s.mu.Lock()
	diff := Diff(s.snapshot, next)
	s.snapshot = next
	s.mu.Unlock()

	s.logger.Debug("Runtime state reloaded",
		"state_path", s.source.Path(),
		"entries", len(next),
		"gained", len(diff.Gained),
		"lost", len(diff.Lost),
	)

	return diff, nil
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot.Clone()
}

// Path returns the backing source path.
func (s *Store) Path() string {
	return s.source.Path()
}

// EarnedTimeOf returns the local display time for name, or false if name is unknown or not earned.
func (s *Store) EarnedTimeOf(name string) (string, bool) {
	s.mu.RLock()
	st, ok := s.snapshot[name]
	s.mu.RUnlock()

	if !ok || !st.Earned {
		return "", false
	}
	return common.FormatEarnedTimeIn(st.EarnedTime, s.loc), true
}

// Diff computes the transitions from old to next. Only names present in next are examined;
// a name absent from old counts as not earned, so an entry that first appears already earned
// is reported as gained rather than skipped.
// Both batches are sorted by name.
func Diff(old, next domain.Snapshot) domain.Diff {
	var diff domain.Diff
	for name, st := range next {
		was := old.IsEarned(name)
		switch {
		case !was && st.Earned:
			diff.Gained = append(diff.Gained, name)
		case was && !st.Earned:
			diff.Lost = append(diff.Lost, name)
		}
	}
	sort.Strings(diff.Gained)
	sort.Strings(diff.Lost)
	return diff
}

func read(source Source) (domain.Snapshot, error) {
	data, err := source.Read()
	if err != nil {
		return nil, err
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, errors.ErrSourceMalformed(source.Path(), err)
	}
	if snapshot == nil {
		// "null" decodes without error but is not a state document.
		return nil, errors.ErrSourceMalformed(source.Path(), errNullDocument)
	}
	return snapshot, nil
}

func countEarned(snapshot domain.Snapshot) int {
	n := 0
	for _, st := range snapshot {
		if st.Earned {
			n++
		}
	}
	return n
}
