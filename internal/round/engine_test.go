package round

import (
	"testing"

	"github.com/cristian-diego/cavaleiros-da-biblia/internal/models"
)

func makeQuestions(n int, category models.Category, difficulty models.Difficulty) []models.Question {
	questions := make([]models.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, models.Question{
			ID:            string(rune('a' + i)),
			Question:      "q",
			Options:       []string{"right", "wrong", "wrong", "wrong"},
			CorrectAnswer: 0,
			Category:      category,
			Difficulty:    difficulty,
		})
	}
	return questions
}

func startRound(t *testing.T, e *Engine, pool []models.Question) *Round {
	t.Helper()
	r := NewRound("round-1", "user-1", nil)
	if err := e.SelectCategory(r, models.CategoryOldTestament); err != nil {
		t.Fatalf("SelectCategory: %v", err)
	}
	if err := e.SelectDifficulty(r, models.DifficultyEasy, pool); err != nil {
		t.Fatalf("SelectDifficulty: %v", err)
	}
	return r
}

func TestAnswerAllCorrect(t *testing.T) {
	testCases := []struct {
		name          string
		questions     int
		expectedXP    int
		expectedScore int
	}{
		{"single question", 1, 200, 100},
		{"three questions", 3, 50*2 + 200, 300},
		{"five questions", 5, 50*4 + 200, 500},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			engine := NewEngine(nil)
			pool := makeQuestions(tc.questions, models.CategoryOldTestament, models.DifficultyEasy)
			r := startRound(t, engine, pool)

			var last *AnswerResult
			for i := 0; i < tc.questions; i++ {
				result, err := engine.Answer(r, 0)
				if err != nil {
					t.Fatalf("Answer %d: %v", i, err)
				}
				last = result
			}

			if !last.IsGameOver || !last.IsWin {
				t.Errorf("expected winning game over, got over=%v win=%v", last.IsGameOver, last.IsWin)
			}
			if r.Progress.XP != tc.expectedXP {
				t.Errorf("expected xp %d, got %d", tc.expectedXP, r.Progress.XP)
			}
			if r.Progress.Score != tc.expectedScore {
				t.Errorf("expected score %d, got %d", tc.expectedScore, r.Progress.Score)
			}
			if !r.Progress.IsWin {
				t.Error("expected IsWin to be true")
			}
			if r.Progress.Lives != 3 {
				t.Errorf("expected full lives, got %d", r.Progress.Lives)
			}
			if r.State != StateGameOver {
				t.Errorf("expected state %q, got %q", StateGameOver, r.State)
			}
		})
	}
}

func TestAnswerThreeMissesLosesRound(t *testing.T) {
	engine := NewEngine(nil)
	pool := makeQuestions(5, models.CategoryOldTestament, models.DifficultyEasy)
	r := startRound(t, engine, pool)

	for i := 0; i < 3; i++ {
		result, err := engine.Answer(r, 1)
		if err != nil {
			t.Fatalf("Answer %d: %v", i, err)
		}
		if result.IsCorrect {
			t.Fatal("expected incorrect answer")
		}
	}

	if r.State != StateGameOver {
		t.Fatalf("expected state %q, got %q", StateGameOver, r.State)
	}
	if r.Progress.IsWin {
		t.Error("expected loss")
	}
	if r.Progress.Lives != 0 {
		t.Errorf("expected 0 lives, got %d", r.Progress.Lives)
	}
	if r.Progress.CurrentQuestionIndex != 0 {
		t.Errorf("expected to stay on first question, got index %d", r.Progress.CurrentQuestionIndex)
	}

	// No further question is rendered after the loss.
	if _, err := engine.Answer(r, 0); err == nil {
		t.Error("expected error answering after game over")
	}
}

func TestIncorrectAnswerStaysOnQuestion(t *testing.T) {
	engine := NewEngine(nil)
	pool := makeQuestions(2, models.CategoryOldTestament, models.DifficultyEasy)
	r := startRound(t, engine, pool)

	result, err := engine.Answer(r, 2)
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if result.IsCorrect || result.IsGameOver {
		t.Errorf("expected plain miss, got %+v", result)
	}
	if r.Progress.Lives != 2 {
		t.Errorf("expected 2 lives, got %d", r.Progress.Lives)
	}
	if r.Progress.CurrentQuestionIndex != 0 {
		t.Errorf("expected index 0, got %d", r.Progress.CurrentQuestionIndex)
	}
	if r.Progress.XP != 0 || r.Progress.Score != 0 {
		t.Errorf("miss must not award anything, xp=%d score=%d", r.Progress.XP, r.Progress.Score)
	}
}

func TestWinWithOneLifeLeft(t *testing.T) {
	engine := NewEngine(nil)
	pool := makeQuestions(2, models.CategoryOldTestament, models.DifficultyEasy)
	r := startRound(t, engine, pool)

	// Burn two lives, then answer everything correctly.
	for i := 0; i < 2; i++ {
		if _, err := engine.Answer(r, 1); err != nil {
			t.Fatalf("miss %d: %v", i, err)
		}
	}
	for i := 0; i < 2; i++ {
		if _, err := engine.Answer(r, 0); err != nil {
			t.Fatalf("correct %d: %v", i, err)
		}
	}

	if !r.Progress.IsWin {
		t.Fatal("expected win with lives remaining")
	}
	if r.Progress.Lives != 1 {
		t.Errorf("expected 1 life, got %d", r.Progress.Lives)
	}
	if !containsString(r.Progress.Achievements, "survivor") {
		t.Errorf("expected survivor achievement, got %v", r.Progress.Achievements)
	}
}

func TestEmptyQuestionSetBranch(t *testing.T) {
	engine := NewEngine(nil)
	pool := makeQuestions(4, models.CategoryHistory, models.DifficultyHard)

	r := NewRound("round-1", "user-1", nil)
	if err := engine.SelectCategory(r, models.CategoryVerses); err != nil {
		t.Fatalf("SelectCategory: %v", err)
	}
	if err := engine.SelectDifficulty(r, models.DifficultyEasy, pool); err != nil {
		t.Fatalf("SelectDifficulty: %v", err)
	}

	if r.State != StateNoQuestions {
		t.Fatalf("expected state %q, got %q", StateNoQuestions, r.State)
	}
	if _, err := engine.Answer(r, 0); err == nil {
		t.Error("expected error answering with no questions")
	}

	if err := engine.ReturnToCategorySelect(r); err != nil {
		t.Fatalf("ReturnToCategorySelect: %v", err)
	}
	if r.State != StateCategorySelect {
		t.Errorf("expected state %q, got %q", StateCategorySelect, r.State)
	}
}

func TestRestartClearsEverything(t *testing.T) {
	engine := NewEngine(nil)
	pool := makeQuestions(3, models.CategoryOldTestament, models.DifficultyEasy)
	r := startRound(t, engine, pool)

	if _, err := engine.Answer(r, 1); err != nil {
		t.Fatalf("miss: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := engine.Answer(r, 0); err != nil {
			t.Fatalf("correct %d: %v", i, err)
		}
	}

	engine.Restart(r)

	if r.State != StateCategorySelect {
		t.Errorf("expected state %q, got %q", StateCategorySelect, r.State)
	}
	if r.Category != "" || r.Difficulty != "" {
		t.Errorf("expected cleared selection, got %q/%q", r.Category, r.Difficulty)
	}
	p := r.Progress
	if p.Score != 0 || p.XP != 0 || p.CurrentQuestionIndex != 0 || p.IsWin {
		t.Errorf("expected cleared progress, got %+v", p)
	}
	if p.Lives != 3 {
		t.Errorf("expected lives reset to 3, got %d", p.Lives)
	}
}

func TestStateGuards(t *testing.T) {
	engine := NewEngine(nil)
	r := NewRound("round-1", "user-1", nil)

	if err := engine.SelectDifficulty(r, models.DifficultyEasy, nil); err == nil {
		t.Error("expected error selecting difficulty before category")
	}
	if _, err := engine.Answer(r, 0); err == nil {
		t.Error("expected error answering before play starts")
	}
	if err := engine.ShowAchievements(r); err == nil {
		t.Error("expected error showing achievements before game over")
	}
}

func TestAchievementsFromGameOver(t *testing.T) {
	engine := NewEngine(nil)
	pool := makeQuestions(1, models.CategoryOldTestament, models.DifficultyEasy)
	r := startRound(t, engine, pool)

	if _, err := engine.Answer(r, 0); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if err := engine.ShowAchievements(r); err != nil {
		t.Fatalf("ShowAchievements: %v", err)
	}
	if r.State != StateAchievements {
		t.Errorf("expected state %q, got %q", StateAchievements, r.State)
	}
	if !containsString(r.Progress.Achievements, "first_win") {
		t.Errorf("expected first_win unlocked, got %v", r.Progress.Achievements)
	}
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
