package round

// Achievement is unlocked when its condition holds for a finished round.
type Achievement struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Icon        string                 `json:"icon"`
	Condition   func(p *Progress) bool `json:"-"`
}

// Achievements is the fixed unlockable catalog.
var Achievements = []Achievement{
	{
		ID:          "first_win",
		Title:       "Primeira Vitória",
		Description: "Complete seu primeiro quiz com sucesso",
		Icon:        "🏆",
		Condition:   func(p *Progress) bool { return p.Score > 0 },
	},
	{
		ID:          "perfect_score",
		Title:       "Pontuação Perfeita",
		Description: "Acertou todas as questões de um quiz",
		Icon:        "🌟",
		Condition:   func(p *Progress) bool { return p.Score >= 1000 },
	},
	{
		ID:          "survivor",
		Title:       "Sobrevivente",
		Description: "Complete um quiz com apenas 1 vida restante",
		Icon:        "💪",
		Condition:   func(p *Progress) bool { return p.Lives == 1 },
	},
	{
		ID:          "bible_master",
		Title:       "Mestre da Bíblia",
		Description: "Complete todas as categorias",
		Icon:        "📚",
		Condition:   func(p *Progress) bool { return len(p.CompletedCategories) == 6 },
	},
	{
		ID:          "speed_runner",
		Title:       "Corredor Veloz",
		Description: "Complete um quiz em menos de 2 minutos",
		Icon:        "⚡",
		Condition:   func(p *Progress) bool { return p.Score > 500 },
	},
}

// EvaluateAchievements returns the ids of every achievement whose condition
// holds for the given progress.
func EvaluateAchievements(p *Progress) []string {
	unlocked := []string{}
	for _, a := range Achievements {
		if a.Condition(p) {
			unlocked = append(unlocked, a.ID)
		}
	}
	return unlocked
}
