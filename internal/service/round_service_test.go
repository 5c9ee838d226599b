package service

import (
	"context"
	"sync"
	"testing"

	"github.com/cristian-diego/cavaleiros-da-biblia/internal/models"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/round"
)

// playingRound builds a round mid-play with the given lives budget, bypassing
// the question repository.
func playingRound(t *testing.T, userID string, lives, questions int) *round.Round {
	t.Helper()

	cfg := round.DefaultConfig()
	cfg.StartingLives = lives
	engine := round.NewEngine(cfg)

	pool := make([]models.Question, 0, questions)
	for i := 0; i < questions; i++ {
		pool = append(pool, models.Question{
			ID:            string(rune('a' + i)),
			Question:      "q",
			Options:       []string{"right", "wrong"},
			CorrectAnswer: 0,
			Category:      models.CategoryOldTestament,
			Difficulty:    models.DifficultyEasy,
		})
	}

	r := round.NewRound("round-1", userID, cfg)
	if err := engine.SelectCategory(r, models.CategoryOldTestament); err != nil {
		t.Fatalf("SelectCategory: %v", err)
	}
	if err := engine.SelectDifficulty(r, models.DifficultyEasy, pool); err != nil {
		t.Fatalf("SelectDifficulty: %v", err)
	}
	return r
}

func TestConcurrentAnswersSerialize(t *testing.T) {
	svc := NewRoundService(nil, nil, nil, nil)
	r := playingRound(t, "user-1", 64, 3)
	svc.active["user-1"] = r

	misses := 40
	var wg sync.WaitGroup
	for i := 0; i < misses; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := svc.Answer(context.Background(), "user-1", 1); err != nil {
				t.Errorf("Answer: %v", err)
			}
		}()
	}
	wg.Wait()

	// Each miss burns exactly one life; overlapping requests must not lose
	// or double-count a decrement.
	if got := r.Progress.Lives; got != 64-misses {
		t.Errorf("expected %d lives, got %d", 64-misses, got)
	}
	if r.Progress.CurrentQuestionIndex != 0 {
		t.Errorf("expected to stay on first question, got index %d", r.Progress.CurrentQuestionIndex)
	}
	if r.Progress.XP != 0 || r.Progress.Score != 0 {
		t.Errorf("misses must not award anything, xp=%d score=%d", r.Progress.XP, r.Progress.Score)
	}
	if r.State != round.StatePlaying {
		t.Errorf("expected state %q, got %q", round.StatePlaying, r.State)
	}
}

func TestConcurrentRestartsKeepRoundConsistent(t *testing.T) {
	svc := NewRoundService(nil, nil, nil, nil)
	r := playingRound(t, "user-1", 3, 3)
	svc.active["user-1"] = r

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Restart("user-1"); err != nil {
				t.Errorf("Restart: %v", err)
			}
		}()
	}
	wg.Wait()

	if r.State != round.StateCategorySelect {
		t.Errorf("expected state %q, got %q", round.StateCategorySelect, r.State)
	}
	if r.Progress.Lives != 3 {
		t.Errorf("expected lives reset to 3, got %d", r.Progress.Lives)
	}
}
