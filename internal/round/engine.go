package round

import (
	"fmt"

	"github.com/cristian-diego/cavaleiros-da-biblia/internal/models"
)

// Engine drives the round state machine. All transitions are synchronous,
// local state updates; the only non-transition outcome is the empty question
// set, which lands in StateNoQuestions instead of StatePlaying.
type Engine struct {
	config *Config
}

func NewEngine(config *Config) *Engine {
	if config == nil {
		config = DefaultConfig()
	}
	return &Engine{config: config}
}

// SelectCategory moves the round from category selection to difficulty
// selection.
func (e *Engine) SelectCategory(r *Round, category models.Category) error {
	if r.State != StateCategorySelect {
		return fmt.Errorf("cannot select category in state %q", r.State)
	}
	r.Category = category
	r.State = StateDifficultySelect
	return nil
}

// SelectDifficulty filters the question pool by the round's category and the
// chosen difficulty and starts play. An empty filtered sequence is the
// "no questions for this combination" branch.
func (e *Engine) SelectDifficulty(r *Round, difficulty models.Difficulty, pool []models.Question) error {
	if r.State != StateDifficultySelect {
		return fmt.Errorf("cannot select difficulty in state %q", r.State)
	}
	r.Difficulty = difficulty

	r.Questions = nil
	for _, q := range pool {
		if q.Category == r.Category && q.Difficulty == difficulty {
			r.Questions = append(r.Questions, q)
		}
	}

	if len(r.Questions) == 0 {
		r.State = StateNoQuestions
		return nil
	}
	r.State = StatePlaying
	return nil
}

// CurrentQuestion returns the question the round is waiting on.
func (e *Engine) CurrentQuestion(r *Round) (*models.Question, error) {
	if r.State != StatePlaying {
		return nil, fmt.Errorf("round is not in play")
	}
	idx := r.Progress.CurrentQuestionIndex
	if idx < 0 || idx >= len(r.Questions) {
		return nil, fmt.Errorf("question index %d out of range", idx)
	}
	return &r.Questions[idx], nil
}

// Answer applies one selected option to the current question.
//
// Correct on the last question wins the round and awards the final-question
// XP; any other correct answer awards the per-question XP and advances.
// Incorrect answers burn a life and stay on the same question; the third
// miss from a fresh round loses it.
func (e *Engine) Answer(r *Round, optionIndex int) (*AnswerResult, error) {
	q, err := e.CurrentQuestion(r)
	if err != nil {
		return nil, err
	}
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return nil, fmt.Errorf("option index %d out of range", optionIndex)
	}

	result := &AnswerResult{
		IsCorrect:   optionIndex == q.CorrectAnswer,
		Explanation: q.Explanation,
		Reference:   q.BibleReference,
	}

	if !result.IsCorrect {
		r.Progress.Lives--
		if r.Progress.Lives <= 0 {
			r.Progress.IsWin = false
			r.State = StateGameOver
			result.IsGameOver = true
		}
		return result, nil
	}

	r.CorrectAnswers++
	r.Progress.Score += e.config.PointsPerCorrect

	last := r.Progress.CurrentQuestionIndex == len(r.Questions)-1
	r.Progress.CurrentQuestionIndex++

	if last {
		result.XPAwarded = e.config.XPFinalQuestion
		r.Progress.XP += e.config.XPFinalQuestion
		r.Progress.IsWin = true
		r.Progress.CompletedCategories = appendCategory(r.Progress.CompletedCategories, r.Category)
		r.State = StateGameOver
		result.IsGameOver = true
		result.IsWin = true
		r.Progress.Achievements = EvaluateAchievements(&r.Progress)
		return result, nil
	}

	result.XPAwarded = e.config.XPPerCorrect
	r.Progress.XP += e.config.XPPerCorrect
	return result, nil
}

// ShowAchievements is the side view reachable only from game over.
func (e *Engine) ShowAchievements(r *Round) error {
	if r.State != StateGameOver {
		return fmt.Errorf("achievements are only visible after game over")
	}
	r.State = StateAchievements
	return nil
}

// ReturnToCategorySelect leaves the no-questions branch without touching
// accumulated progress.
func (e *Engine) ReturnToCategorySelect(r *Round) error {
	if r.State != StateNoQuestions {
		return fmt.Errorf("cannot return to category selection from state %q", r.State)
	}
	r.Category = ""
	r.Difficulty = ""
	r.Questions = nil
	r.State = StateCategorySelect
	return nil
}

// Restart clears every accumulator and returns to category selection.
func (e *Engine) Restart(r *Round) {
	r.Category = ""
	r.Difficulty = ""
	r.Questions = nil
	r.CorrectAnswers = 0
	r.Progress = Progress{
		Lives:               e.config.StartingLives,
		CompletedCategories: []models.Category{},
		Achievements:        []string{},
	}
	r.State = StateCategorySelect
}

func appendCategory(categories []models.Category, c models.Category) []models.Category {
	for _, existing := range categories {
		if existing == c {
			return categories
		}
	}
	return append(categories, c)
}
