package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/cristian-diego/cavaleiros-da-biblia/internal/event"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/models"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/repository"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/round"

	"github.com/google/uuid"
)

// RoundService runs quiz rounds. Rounds are ephemeral: they live in memory
// for the duration of play, and only the finished result and the earned XP
// outlive them. One active round per user; starting a new one discards the
// old. Every operation holds the user's lock end to end, so overlapping
// requests for the same user serialize instead of interleaving their
// mutations of the shared round.
type RoundService struct {
	QuestionRepo *repository.QuestionRepository
	ResultRepo   *repository.ResultRepository
	Profiles     *ProfileService
	Publisher    *event.Publisher

	engine *round.Engine
	locks  *userLocks

	mu     sync.Mutex
	active map[string]*round.Round
}

func NewRoundService(
	questionRepo *repository.QuestionRepository,
	resultRepo *repository.ResultRepository,
	profiles *ProfileService,
	publisher *event.Publisher,
) *RoundService {
	return &RoundService{
		QuestionRepo: questionRepo,
		ResultRepo:   resultRepo,
		Profiles:     profiles,
		Publisher:    publisher,
		engine:       round.NewEngine(nil),
		locks:        newUserLocks(),
		active:       make(map[string]*round.Round),
	}
}

// StartRound opens a fresh round at category selection.
func (s *RoundService) StartRound(userID string) *round.Round {
	unlock := s.locks.lock(userID)
	defer unlock()

	r := round.NewRound(uuid.NewString(), userID, nil)
	s.mu.Lock()
	s.active[userID] = r
	s.mu.Unlock()

	s.Publisher.Publish(event.RoundStarted, map[string]any{
		"round_id": r.ID,
		"user_id":  userID,
	})
	return r
}

// CurrentRound returns the user's active round.
func (s *RoundService) CurrentRound(userID string) (*round.Round, error) {
	unlock := s.locks.lock(userID)
	defer unlock()
	return s.activeRound(userID)
}

// activeRound looks up the round without taking the user lock; callers hold
// it already.
func (s *RoundService) activeRound(userID string) (*round.Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.active[userID]
	if !ok {
		return nil, fmt.Errorf("no active round for user")
	}
	return r, nil
}

func (s *RoundService) SelectCategory(userID string, category models.Category) (*round.Round, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	r, err := s.activeRound(userID)
	if err != nil {
		return nil, err
	}
	if err := s.engine.SelectCategory(r, category); err != nil {
		return nil, err
	}
	return r, nil
}

// SelectDifficulty loads the question sequence for the round's category and
// the chosen difficulty and starts play (or lands in the no-questions view).
func (s *RoundService) SelectDifficulty(ctx context.Context, userID string, difficulty models.Difficulty) (*round.Round, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	r, err := s.activeRound(userID)
	if err != nil {
		return nil, err
	}

	pool, err := s.QuestionRepo.FindByCategoryAndDifficulty(ctx, r.Category, difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	if err := s.engine.SelectDifficulty(r, difficulty, pool); err != nil {
		return nil, err
	}
	return r, nil
}

// CurrentQuestion returns the question the round is waiting on.
func (s *RoundService) CurrentQuestion(userID string) (*models.Question, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	r, err := s.activeRound(userID)
	if err != nil {
		return nil, err
	}
	return s.engine.CurrentQuestion(r)
}

// Answer submits one option. Earned XP goes straight into the progress
// ledger, always crediting wisdom; rapid awards collapse in the write-behind
// queue. When the answer ends the round, the result is recorded. The user
// lock stays held from the engine transition through persistence, so a
// double-submitted answer burns one life, not two halves of a race.
func (s *RoundService) Answer(ctx context.Context, userID string, optionIndex int) (*round.AnswerResult, *round.Round, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	r, err := s.activeRound(userID)
	if err != nil {
		return nil, nil, err
	}

	result, err := s.engine.Answer(r, optionIndex)
	if err != nil {
		return nil, nil, err
	}

	if result.XPAwarded > 0 {
		if _, err := s.Profiles.AwardXP(ctx, userID, result.XPAwarded, models.AttributeWisdom); err != nil {
			log.Printf("error awarding round xp for %s: %v", userID, err)
		}
	}
	if result.IsGameOver {
		s.finish(ctx, r)
	}
	return result, r, nil
}

func (s *RoundService) ShowAchievements(userID string) (*round.Round, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	r, err := s.activeRound(userID)
	if err != nil {
		return nil, err
	}
	if err := s.engine.ShowAchievements(r); err != nil {
		return nil, err
	}
	return r, nil
}

// ReturnToCategorySelect leaves the no-questions branch.
func (s *RoundService) ReturnToCategorySelect(userID string) (*round.Round, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	r, err := s.activeRound(userID)
	if err != nil {
		return nil, err
	}
	if err := s.engine.ReturnToCategorySelect(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Restart clears the round back to category selection.
func (s *RoundService) Restart(userID string) (*round.Round, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	r, err := s.activeRound(userID)
	if err != nil {
		return nil, err
	}
	s.engine.Restart(r)
	return r, nil
}

// Results returns the user's recent finished rounds.
func (s *RoundService) Results(ctx context.Context, userID string, limit int64) ([]models.RoundResult, error) {
	return s.ResultRepo.FindByUser(ctx, userID, limit)
}

// finish records the result. Failures here are logged, never surfaced: the
// round outcome already happened.
func (s *RoundService) finish(ctx context.Context, r *round.Round) {
	result := &models.RoundResult{
		ID:              r.ID,
		UserID:          r.UserID,
		Category:        r.Category,
		Difficulty:      r.Difficulty,
		Score:           r.Progress.Score,
		XPEarned:        r.Progress.XP,
		LivesRemaining:  r.Progress.Lives,
		QuestionsAsked:  len(r.Questions),
		CorrectAnswers:  r.CorrectAnswers,
		IsWin:           r.Progress.IsWin,
		Achievements:    r.Progress.Achievements,
		DurationSeconds: int(time.Since(r.StartedAt).Seconds()),
		CreatedAt:       time.Now(),
	}
	if err := s.ResultRepo.Create(ctx, result); err != nil {
		log.Printf("error saving round result %s: %v", r.ID, err)
	}

	s.Publisher.Publish(event.RoundFinished, map[string]any{
		"round_id":   r.ID,
		"user_id":    r.UserID,
		"category":   r.Category,
		"difficulty": r.Difficulty,
		"score":      r.Progress.Score,
		"xp":         r.Progress.XP,
		"is_win":     r.Progress.IsWin,
	})
}
