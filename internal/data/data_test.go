package data

import (
	"testing"
	"time"

	"github.com/cristian-diego/cavaleiros-da-biblia/internal/models"
)

func TestQuestionCatalog(t *testing.T) {
	if len(Questions) == 0 {
		t.Fatal("question catalog is empty")
	}

	seen := map[string]bool{}
	for _, q := range Questions {
		if q.ID == "" {
			t.Errorf("question %q has no id", q.Question)
		}
		if seen[q.ID] {
			t.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		if len(q.Options) < 2 {
			t.Errorf("question %s has %d options", q.ID, len(q.Options))
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			t.Errorf("question %s correct answer %d out of range", q.ID, q.CorrectAnswer)
		}
		if !models.ValidCategory(string(q.Category)) {
			t.Errorf("question %s has unknown category %q", q.ID, q.Category)
		}
		if !models.ValidDifficulty(string(q.Difficulty)) {
			t.Errorf("question %s has unknown difficulty %q", q.ID, q.Difficulty)
		}
	}
}

func TestDailyVerseStableWithinDay(t *testing.T) {
	morning := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 3, 10, 21, 30, 0, 0, time.UTC)

	if DailyVerse(morning) != DailyVerse(evening) {
		t.Error("daily verse changed within the same day")
	}
}

func TestRandomVerseFromCatalog(t *testing.T) {
	v := RandomVerse()
	found := false
	for _, candidate := range Verses {
		if candidate == v {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("random verse %q not in catalog", v.Reference)
	}
}

func TestAvatarCatalog(t *testing.T) {
	if len(Avatars) == 0 {
		t.Fatal("avatar catalog is empty")
	}
	for _, a := range Avatars {
		if a.ID == "" || a.Name == "" {
			t.Errorf("avatar %+v missing id or name", a)
		}
		if !ValidAvatar(a.ID) {
			t.Errorf("ValidAvatar(%q) = false", a.ID)
		}
	}
	if ValidAvatar("goliath") {
		t.Error("ValidAvatar accepted unknown id")
	}
}
