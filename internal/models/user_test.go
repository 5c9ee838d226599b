package models

import (
	"encoding/json"
	"testing"
)

func TestLevelForXP(t *testing.T) {
	testCases := []struct {
		xp    int
		level int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{380, 4},
		{430, 5},
		{1000, 11},
		{-5, 1},
	}

	for _, tc := range testCases {
		if got := LevelForXP(tc.xp); got != tc.level {
			t.Errorf("LevelForXP(%d) = %d, want %d", tc.xp, got, tc.level)
		}
	}
}

func TestAwardXPRecomputesLevel(t *testing.T) {
	u := NewUser("u1", "Davi", "boy2")

	// Level is derived from the running total, never incremented, so
	// non-uniform chunks (like the 200 final-question bonus) stay consistent.
	awards := []int{20, 50, 200, 30, 100}
	total := 0
	for _, amount := range awards {
		u.AwardXP(amount, "")
		total += amount
		if u.XP != total {
			t.Fatalf("expected xp %d, got %d", total, u.XP)
		}
		if u.Level != LevelForXP(total) {
			t.Fatalf("expected level %d at xp %d, got %d", LevelForXP(total), total, u.Level)
		}
	}
}

func TestAwardXPScenarios(t *testing.T) {
	t.Run("prayer mission from zero", func(t *testing.T) {
		u := NewUser("u1", "Ana", "girl1")
		u.AwardXP(20, AttributeFaith)

		if u.XP != 20 || u.Level != 1 {
			t.Errorf("expected xp=20 level=1, got xp=%d level=%d", u.XP, u.Level)
		}
		if u.Attributes.Faith != 2 {
			t.Errorf("expected faith=2, got %d", u.Attributes.Faith)
		}
	})

	t.Run("level boundary crossing", func(t *testing.T) {
		u := NewUser("u1", "Ana", "girl1")
		u.XP = 380
		u.Level = LevelForXP(380)
		u.AwardXP(50, "")

		if u.XP != 430 || u.Level != 5 {
			t.Errorf("expected xp=430 level=5, got xp=%d level=%d", u.XP, u.Level)
		}
	})
}

func TestAttributeCap(t *testing.T) {
	u := NewUser("u1", "Pedro", "boy1")
	for i := 0; i < 15; i++ {
		u.AwardXP(10, AttributeWisdom)
	}
	if u.Attributes.Wisdom != AttributeMax {
		t.Errorf("expected wisdom capped at %d, got %d", AttributeMax, u.Attributes.Wisdom)
	}

	// Incrementing at the cap stays a no-op.
	u.AwardXP(10, AttributeWisdom)
	if u.Attributes.Wisdom != AttributeMax {
		t.Errorf("expected wisdom still %d, got %d", AttributeMax, u.Attributes.Wisdom)
	}
}

func TestAwardXPIgnoresNonPositive(t *testing.T) {
	u := NewUser("u1", "Sara", "girl2")
	before := u.UpdatedAt
	u.AwardXP(0, AttributeFaith)
	u.AwardXP(-10, AttributeFaith)

	if u.XP != 0 || u.Attributes.Faith != AttributeMin {
		t.Errorf("expected untouched profile, got xp=%d faith=%d", u.XP, u.Attributes.Faith)
	}
	if !u.UpdatedAt.Equal(before) {
		t.Error("expected UpdatedAt untouched for no-op awards")
	}
}

func TestValidAttribute(t *testing.T) {
	for _, name := range []string{"faith", "boldness", "wisdom"} {
		if !ValidAttribute(name) {
			t.Errorf("expected %q to be valid", name)
		}
	}
	if ValidAttribute("charisma") {
		t.Error("expected unknown attribute to be invalid")
	}
}

func TestUserSurvivesJSONRoundTrip(t *testing.T) {
	u := NewUser("u1", "Davi", "boy2")
	u.AwardXP(380, AttributeFaith)
	u.AwardXP(50, AttributeWisdom)

	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var restored User
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if restored.ID != u.ID || restored.Name != u.Name || restored.Avatar != u.Avatar {
		t.Errorf("identity fields changed: got %+v", restored)
	}
	if restored.XP != u.XP || restored.Level != u.Level {
		t.Errorf("expected xp=%d level=%d, got xp=%d level=%d", u.XP, u.Level, restored.XP, restored.Level)
	}
	if restored.Attributes != u.Attributes {
		t.Errorf("attributes changed: got %+v, want %+v", restored.Attributes, u.Attributes)
	}
	if !restored.CreatedAt.Equal(u.CreatedAt) || !restored.UpdatedAt.Equal(u.UpdatedAt) {
		t.Error("timestamps changed over the trip")
	}

	// The reloaded ledger keeps awarding consistently.
	restored.AwardXP(50, AttributeWisdom)
	if restored.XP != u.XP+50 || restored.Level != LevelForXP(u.XP+50) {
		t.Errorf("award after reload inconsistent: xp=%d level=%d", restored.XP, restored.Level)
	}
}
