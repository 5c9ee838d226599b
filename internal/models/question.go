package models

// Category groups questions by Bible topic.
type Category string

const (
	CategoryOldTestament Category = "old-testament"
	CategoryNewTestament Category = "new-testament"
	CategoryCharacters   Category = "characters"
	CategoryVerses       Category = "verses"
	CategoryHistory      Category = "history"
	CategoryTeachings    Category = "teachings"
)

// Categories lists every quiz category.
var Categories = []Category{
	CategoryOldTestament,
	CategoryNewTestament,
	CategoryCharacters,
	CategoryVerses,
	CategoryHistory,
	CategoryTeachings,
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Question is one multiple-choice quiz question. CorrectAnswer is the index
// into Options.
type Question struct {
	ID             string     `bson:"_id,omitempty" json:"id"`
	Question       string     `bson:"question" json:"question"`
	Options        []string   `bson:"options" json:"options"`
	CorrectAnswer  int        `bson:"correct_answer" json:"correct_answer"`
	Category       Category   `bson:"category" json:"category"`
	Difficulty     Difficulty `bson:"difficulty" json:"difficulty"`
	BibleReference string     `bson:"bible_reference" json:"bible_reference"`
	Explanation    string     `bson:"explanation" json:"explanation"`
}

// ValidCategory reports whether the name is a known category.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if Category(name) == c {
			return true
		}
	}
	return false
}

// ValidDifficulty reports whether the name is a known difficulty.
func ValidDifficulty(name string) bool {
	for _, d := range Difficulties {
		if Difficulty(name) == d {
			return true
		}
	}
	return false
}
