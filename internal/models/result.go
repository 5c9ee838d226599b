package models

import "time"

// RoundResult is the persisted record of one finished quiz round.
type RoundResult struct {
	ID              string     `bson:"_id,omitempty" json:"id"`
	UserID          string     `bson:"user_id" json:"user_id"`
	Category        Category   `bson:"category" json:"category"`
	Difficulty      Difficulty `bson:"difficulty" json:"difficulty"`
	Score           int        `bson:"score" json:"score"`
	XPEarned        int        `bson:"xp_earned" json:"xp_earned"`
	LivesRemaining  int        `bson:"lives_remaining" json:"lives_remaining"`
	QuestionsAsked  int        `bson:"questions_asked" json:"questions_asked"`
	CorrectAnswers  int        `bson:"correct_answers" json:"correct_answers"`
	IsWin           bool       `bson:"is_win" json:"is_win"`
	Achievements    []string   `bson:"achievements" json:"achievements"`
	DurationSeconds int        `bson:"duration_seconds" json:"duration_seconds"`
	CreatedAt       time.Time  `bson:"created_at" json:"created_at"`
}
