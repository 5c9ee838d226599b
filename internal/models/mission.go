package models

// Mission is one repeatable daily task from the fixed catalog.
type Mission struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Completed   bool      `bson:"completed" json:"completed"`
	XPReward    int       `bson:"xp_reward" json:"xp_reward"`
	Attribute   Attribute `bson:"attribute" json:"attribute"`
}

// DailyMissions returns a fresh copy of the mission catalog, all pending.
func DailyMissions() []Mission {
	return []Mission{
		{
			ID:          "devotional",
			Title:       "Devotional Reading",
			Description: "Read the Bible or a devotional for at least 10 minutes",
			XPReward:    20,
			Attribute:   AttributeWisdom,
		},
		{
			ID:          "prayer",
			Title:       "Personal Prayer",
			Description: "Spend time in prayer talking to God",
			XPReward:    20,
			Attribute:   AttributeFaith,
		},
		{
			ID:          "family-worship",
			Title:       "Family Worship",
			Description: "Participate in family worship or share what you learned with family",
			XPReward:    30,
			Attribute:   AttributeBoldness,
		},
	}
}
