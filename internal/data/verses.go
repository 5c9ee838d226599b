package data

import (
	"math/rand"
	"time"

	"github.com/cristian-diego/cavaleiros-da-biblia/internal/models"
)

// Verses shown on the dashboard verse card.
var Verses = []models.BibleVerse{
	{
		Reference: "Joshua 1:9",
		Text:      "Be strong and courageous. Do not be afraid; do not be discouraged, for the LORD your God will be with you wherever you go.",
		Theme:     "courage",
	},
	{
		Reference: "Philippians 4:13",
		Text:      "I can do all things through Christ who strengthens me.",
		Theme:     "strength",
	},
	{
		Reference: "Psalm 56:3",
		Text:      "When I am afraid, I put my trust in you.",
		Theme:     "trust",
	},
	{
		Reference: "Psalm 119:105",
		Text:      "Your word is a lamp for my feet, a light on my path.",
		Theme:     "guidance",
	},
	{
		Reference: "Romans 8:28",
		Text:      "And we know that in all things God works for the good of those who love him, who have been called according to his purpose.",
		Theme:     "purpose",
	},
	{
		Reference: "Proverbs 3:5-6",
		Text:      "Trust in the LORD with all your heart and lean not on your own understanding; in all your ways submit to him, and he will make your paths straight.",
		Theme:     "guidance",
	},
	{
		Reference: "1 John 4:19",
		Text:      "We love because he first loved us.",
		Theme:     "love",
	},
	{
		Reference: "Matthew 28:20",
		Text:      "And surely I am with you always, to the very end of the age.",
		Theme:     "presence",
	},
	{
		Reference: "1 Corinthians 16:13-14",
		Text:      "Be on your guard; stand firm in the faith; be courageous; be strong. Do everything in love.",
		Theme:     "courage",
	},
	{
		Reference: "Isaiah 41:10",
		Text:      "So do not fear, for I am with you; do not be dismayed, for I am your God. I will strengthen you and help you; I will uphold you with my righteous right hand.",
		Theme:     "strength",
	},
}

// RandomVerse picks any verse.
func RandomVerse() models.BibleVerse {
	return Verses[rand.Intn(len(Verses))]
}

// DailyVerse is stable for one calendar day, rotating through the catalog by
// day of year.
func DailyVerse(now time.Time) models.BibleVerse {
	return Verses[now.YearDay()%len(Verses)]
}
