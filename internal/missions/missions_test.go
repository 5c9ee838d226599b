package missions

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCatalogShape(t *testing.T) {
	set := NewSet()
	if len(set.Missions) != 3 {
		t.Fatalf("expected 3 missions, got %d", len(set.Missions))
	}
	for _, m := range set.Missions {
		if m.Completed {
			t.Errorf("mission %q should start pending", m.ID)
		}
		if m.XPReward <= 0 {
			t.Errorf("mission %q has no reward", m.ID)
		}
	}
}

func TestCompleteOnce(t *testing.T) {
	set := NewSet()
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local)

	mission, completed, err := set.Complete("prayer", now)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !completed {
		t.Fatal("expected first completion to count")
	}
	if mission.XPReward != 20 || mission.Attribute != "faith" {
		t.Errorf("unexpected prayer reward: %d/%s", mission.XPReward, mission.Attribute)
	}
	if set.LastUpdated == nil || !set.LastUpdated.Equal(now) {
		t.Errorf("expected LastUpdated stamped with %v, got %v", now, set.LastUpdated)
	}

	// Second completion is a no-op; no double award.
	_, completed, err = set.Complete("prayer", now.Add(time.Minute))
	if err != nil {
		t.Fatalf("Complete again: %v", err)
	}
	if completed {
		t.Error("expected re-completion to be a no-op")
	}
}

func TestCompleteUnknownMission(t *testing.T) {
	set := NewSet()
	if _, _, err := set.Complete("nope", time.Now()); err == nil {
		t.Error("expected error for unknown mission")
	}
}

func TestResetDaily(t *testing.T) {
	testCases := []struct {
		name        string
		lastUpdated time.Time
		now         time.Time
		wantReset   bool
	}{
		{
			name:        "same day later hour",
			lastUpdated: time.Date(2025, 6, 10, 8, 0, 0, 0, time.Local),
			now:         time.Date(2025, 6, 10, 22, 0, 0, 0, time.Local),
			wantReset:   false,
		},
		{
			name:        "midnight boundary under 24h",
			lastUpdated: time.Date(2025, 6, 10, 23, 59, 0, 0, time.Local),
			now:         time.Date(2025, 6, 11, 0, 1, 0, 0, time.Local),
			wantReset:   true,
		},
		{
			name:        "same date different month",
			lastUpdated: time.Date(2025, 5, 10, 12, 0, 0, 0, time.Local),
			now:         time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local),
			wantReset:   true,
		},
		{
			name:        "same date different year",
			lastUpdated: time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local),
			now:         time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local),
			wantReset:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			set := NewSet()
			if _, _, err := set.Complete("devotional", tc.lastUpdated); err != nil {
				t.Fatalf("Complete: %v", err)
			}

			reset := set.ResetDaily(tc.now)
			if reset != tc.wantReset {
				t.Fatalf("expected reset=%v, got %v", tc.wantReset, reset)
			}

			mission, err := set.Find("devotional")
			if err != nil {
				t.Fatalf("Find: %v", err)
			}
			if tc.wantReset && mission.Completed {
				t.Error("expected mission back to pending after reset")
			}
			if !tc.wantReset && !mission.Completed {
				t.Error("expected mission still completed within the same day")
			}
		})
	}
}

func TestResetDailyFirstUse(t *testing.T) {
	set := NewSet()
	if !set.ResetDaily(time.Now()) {
		t.Error("expected reset when LastUpdated was never set")
	}
}

func TestResetDailyIdempotentWithinDay(t *testing.T) {
	set := NewSet()
	now := time.Date(2025, 6, 11, 7, 0, 0, 0, time.Local)

	if !set.ResetDaily(now) {
		t.Fatal("expected first reset of the day")
	}
	if set.ResetDaily(now.Add(2 * time.Hour)) {
		t.Error("expected second call on the same day to change nothing")
	}
}

func TestManualReset(t *testing.T) {
	set := NewSet()
	now := time.Now()
	if _, _, err := set.Complete("family-worship", now); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	set.Reset(now)
	mission, err := set.Find("family-worship")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if mission.Completed {
		t.Error("expected manual reset to clear completion")
	}
}

func TestSetSurvivesJSONRoundTrip(t *testing.T) {
	set := NewSet()
	completedAt := time.Date(2025, 6, 10, 23, 59, 0, 0, time.Local)
	if _, _, err := set.Complete("prayer", completedAt); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	data, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	restored := NewSet()
	if err := json.Unmarshal(data, restored); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if len(restored.Missions) != len(set.Missions) {
		t.Fatalf("expected %d missions, got %d", len(set.Missions), len(restored.Missions))
	}
	for i, want := range set.Missions {
		if restored.Missions[i] != want {
			t.Errorf("mission %d changed over the trip: got %+v, want %+v", i, restored.Missions[i], want)
		}
	}
	if restored.LastUpdated == nil || !restored.LastUpdated.Equal(completedAt) {
		t.Errorf("expected LastUpdated %v, got %v", completedAt, restored.LastUpdated)
	}

	// The calendar-day comparison must behave identically on the restored
	// state: no reset at 23:59 the same day, reset at 00:01 the next.
	if restored.ResetDaily(completedAt) {
		t.Error("expected no reset within the same day after reload")
	}
	if !restored.ResetDaily(completedAt.Add(2 * time.Minute)) {
		t.Error("expected reset on the next calendar day after reload")
	}
}
