package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cristian-diego/cavaleiros-da-biblia/internal/event"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/missions"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/models"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/repository"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/store"
)

// MissionService owns per-user daily mission sets. State lives in the
// key-value store; the catalog and the reset rules live in the missions
// package. Every mutation holds the user's lock across load-mutate-persist,
// so two concurrent completions of the same mission cannot both observe it
// pending and double-award.
type MissionService struct {
	KV        *repository.KVRepository
	Profiles  *ProfileService
	Writer    *store.Writer
	Publisher *event.Publisher

	locks *userLocks

	// now is swappable for tests; everything date-sensitive goes through it.
	now func() time.Time
}

func NewMissionService(kv *repository.KVRepository, profiles *ProfileService, writer *store.Writer, publisher *event.Publisher) *MissionService {
	return &MissionService{
		KV:        kv,
		Profiles:  profiles,
		Writer:    writer,
		Publisher: publisher,
		locks:     newUserLocks(),
		now:       time.Now,
	}
}

func missionsKey(userID string) string { return "missions:" + userID }

// load fetches the stored set, falling back to a fresh catalog, and applies
// the daily reset before anything else sees the state.
func (s *MissionService) load(ctx context.Context, userID string) (*missions.Set, bool, error) {
	set := missions.NewSet()
	err := s.KV.Get(ctx, missionsKey(userID), set)
	if err != nil && err != repository.ErrNoValue {
		return nil, false, fmt.Errorf("failed to load mission state: %w", err)
	}
	reset := set.ResetDaily(s.now())
	return set, reset, nil
}

// GetMissions returns today's mission set, resetting it first if the stored
// state is from an earlier calendar day.
func (s *MissionService) GetMissions(ctx context.Context, userID string) (*missions.Set, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	set, reset, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if reset {
		s.persist(userID, set)
	}
	return set, nil
}

// CompleteResult bundles what one completion changed.
type CompleteResult struct {
	Mission *models.Mission `json:"mission"`
	// AlreadyCompleted means this was a repeat call; nothing was awarded.
	AlreadyCompleted bool         `json:"already_completed"`
	Profile          *models.User `json:"profile,omitempty"`
}

// CompleteMission marks the mission done and feeds its reward into the
// progress ledger. Re-completing within the same day is a no-op: the store
// enforces idempotence itself instead of trusting the caller's UI gating.
func (s *MissionService) CompleteMission(ctx context.Context, userID, missionID string) (*CompleteResult, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	set, _, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	mission, completed, err := set.Complete(missionID, s.now())
	if err != nil {
		return nil, err
	}
	if !completed {
		return &CompleteResult{Mission: mission, AlreadyCompleted: true}, nil
	}

	s.persist(userID, set)

	profile, err := s.Profiles.AwardXP(ctx, userID, mission.XPReward, mission.Attribute)
	if err != nil {
		return nil, err
	}

	s.Publisher.Publish(event.MissionCompleted, map[string]any{
		"user_id":   userID,
		"mission":   mission.ID,
		"xp_reward": mission.XPReward,
		"attribute": mission.Attribute,
	})
	return &CompleteResult{Mission: mission, Profile: profile}, nil
}

// ResetMissions is the explicit user-facing reset, unconditional.
func (s *MissionService) ResetMissions(ctx context.Context, userID string) (*missions.Set, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	set, _, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	set.Reset(s.now())
	s.persist(userID, set)
	s.Publisher.Publish(event.MissionsReset, map[string]any{"user_id": userID})
	return set, nil
}

func (s *MissionService) persist(userID string, set *missions.Set) {
	snapshot := *set
	s.Writer.Enqueue(missionsKey(userID), func(ctx context.Context) error {
		return s.KV.Set(ctx, missionsKey(userID), &snapshot)
	})
}
