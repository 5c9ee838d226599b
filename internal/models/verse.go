package models

// BibleVerse is a short verse shown on the dashboard verse card.
type BibleVerse struct {
	Reference string `bson:"reference" json:"reference"`
	Text      string `bson:"text" json:"text"`
	Theme     string `bson:"theme,omitempty" json:"theme,omitempty"`
}

// Avatar is one selectable profile picture.
type Avatar struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Preferences are the client settings persisted across app restarts.
type Preferences struct {
	Theme             string `json:"theme"`
	HasSeenOnboarding bool   `json:"has_seen_onboarding"`
}

const (
	ThemeKidBible       = "kid-bible"
	ThemeKidAdventurers = "kid-adventurers"
)

// ValidTheme reports whether the name is a shipped theme.
func ValidTheme(name string) bool {
	return name == ThemeKidBible || name == ThemeKidAdventurers
}
