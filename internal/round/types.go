package round

import (
	"time"

	"github.com/cristian-diego/cavaleiros-da-biblia/internal/models"
)

// State is the round's position in the game loop.
type State string

const (
	StateCategorySelect   State = "category-select"
	StateDifficultySelect State = "difficulty-select"
	StatePlaying          State = "playing"
	StateGameOver         State = "game-over"
	StateAchievements     State = "achievements"
	// StateNoQuestions is the terminal branch entered when the chosen
	// category/difficulty combination has no questions. It is a view state,
	// not an error.
	StateNoQuestions State = "no-questions"
)

// Progress is the scoring snapshot accumulated during one round.
type Progress struct {
	Score                int               `json:"score"`
	Lives                int               `json:"lives"`
	CurrentQuestionIndex int               `json:"current_question_index"`
	CompletedCategories  []models.Category `json:"completed_categories"`
	Achievements         []string          `json:"achievements"`
	XP                   int               `json:"xp"`
	IsWin                bool              `json:"is_win"`
}

// Round is one playthrough from category selection to game over.
type Round struct {
	ID             string            `json:"id"`
	UserID         string            `json:"user_id"`
	State          State             `json:"state"`
	Category       models.Category   `json:"category,omitempty"`
	Difficulty     models.Difficulty `json:"difficulty,omitempty"`
	Questions      []models.Question `json:"questions"`
	Progress       Progress          `json:"progress"`
	CorrectAnswers int               `json:"correct_answers"`
	StartedAt      time.Time         `json:"started_at"`
}

// Config carries the fixed scoring rules of the game loop.
type Config struct {
	StartingLives    int
	PointsPerCorrect int
	XPPerCorrect     int
	// XPFinalQuestion replaces XPPerCorrect on the last question of a won
	// round; it is a replacement, not an addition.
	XPFinalQuestion int
}

// DefaultConfig matches the shipped game balance.
func DefaultConfig() *Config {
	return &Config{
		StartingLives:    3,
		PointsPerCorrect: 100,
		XPPerCorrect:     50,
		XPFinalQuestion:  200,
	}
}

// AnswerResult reports the outcome of submitting one answer.
type AnswerResult struct {
	IsCorrect   bool   `json:"is_correct"`
	XPAwarded   int    `json:"xp_awarded"`
	IsGameOver  bool   `json:"is_game_over"`
	IsWin       bool   `json:"is_win"`
	Explanation string `json:"explanation,omitempty"`
	Reference   string `json:"reference,omitempty"`
}

// NewRound returns a fresh round at category selection.
func NewRound(id, userID string, cfg *Config) *Round {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Round{
		ID:     id,
		UserID: userID,
		State:  StateCategorySelect,
		Progress: Progress{
			Lives:               cfg.StartingLives,
			CompletedCategories: []models.Category{},
			Achievements:        []string{},
		},
		StartedAt: time.Now(),
	}
}
