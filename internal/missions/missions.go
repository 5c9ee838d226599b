// Package missions holds the per-user daily mission state machine. Each
// mission moves pending -> completed at most once per calendar day; the whole
// set flips back to pending on the first touch of a new local day.
package missions

import (
	"fmt"
	"time"

	"github.com/cristian-diego/cavaleiros-da-biblia/internal/models"
)

// Set is one user's mission catalog plus the reset bookkeeping. It is an
// explicit state container owned by its service, not ambient shared state.
type Set struct {
	Missions    []models.Mission `json:"missions"`
	LastUpdated *time.Time       `json:"last_updated"`
}

// NewSet returns the fresh catalog, everything pending.
func NewSet() *Set {
	return &Set{Missions: models.DailyMissions()}
}

// Find returns the mission with the given id.
func (s *Set) Find(id string) (*models.Mission, error) {
	for i := range s.Missions {
		if s.Missions[i].ID == id {
			return &s.Missions[i], nil
		}
	}
	return nil, fmt.Errorf("unknown mission %q", id)
}

// Complete marks a mission done and stamps LastUpdated. Completing an
// already-completed mission is a no-op and reports completed=false, so a
// reward is only ever handed out once per mission per day.
func (s *Set) Complete(id string, now time.Time) (mission *models.Mission, completed bool, err error) {
	mission, err = s.Find(id)
	if err != nil {
		return nil, false, err
	}
	if mission.Completed {
		return mission, false, nil
	}
	mission.Completed = true
	s.LastUpdated = &now
	return mission, true, nil
}

// ResetDaily replaces the catalog when the stored date and now fall on
// different local calendar days. The comparison is by date components, not a
// rolling 24h window: a mission done at 23:59 is resettable at 00:01.
// Within the same day the call leaves the set untouched, so it is safe to run
// on every dashboard load.
func (s *Set) ResetDaily(now time.Time) bool {
	if s.LastUpdated != nil && sameCalendarDay(*s.LastUpdated, now) {
		return false
	}
	s.Missions = models.DailyMissions()
	s.LastUpdated = &now
	return true
}

// Reset unconditionally restores the fresh catalog. Used by the explicit
// user-facing reset action.
func (s *Set) Reset(now time.Time) {
	s.Missions = models.DailyMissions()
	s.LastUpdated = &now
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
