// Package data holds the shipped content catalogs: quiz questions, Bible
// verses and selectable avatars. Questions are seeded into MongoDB on first
// boot; verses and avatars are served as-is.
package data

import "github.com/cristian-diego/cavaleiros-da-biblia/internal/models"

// Questions is the shipped quiz catalog.
var Questions = []models.Question{
	{
		ID:             "1",
		Question:       "Quem foi o primeiro rei de Israel?",
		Options:        []string{"Saul", "Davi", "Salomão", "Josué"},
		CorrectAnswer:  0,
		Category:       models.CategoryOldTestament,
		Difficulty:     models.DifficultyEasy,
		BibleReference: "1 Samuel 10:1",
		Explanation:    "Saul foi ungido por Samuel como o primeiro rei de Israel, conforme descrito em 1 Samuel 10:1.",
	},
	{
		ID:             "2",
		Question:       "Qual foi o milagre que Jesus realizou nas bodas de Caná?",
		Options:        []string{"Multiplicação dos pães", "Transformação da água em vinho", "Cura do cego de nascença", "Ressurreição de Lázaro"},
		CorrectAnswer:  1,
		Category:       models.CategoryNewTestament,
		Difficulty:     models.DifficultyEasy,
		BibleReference: "João 2:1-11",
		Explanation:    "Jesus transformou água em vinho durante as bodas de Caná, sendo este seu primeiro milagre registrado.",
	},
	{
		ID:             "3",
		Question:       "Qual profeta foi engolido por um grande peixe?",
		Options:        []string{"Elias", "Jeremias", "Jonas", "Isaías"},
		CorrectAnswer:  2,
		Category:       models.CategoryCharacters,
		Difficulty:     models.DifficultyMedium,
		BibleReference: "Jonas 1:17",
		Explanation:    "Jonas foi engolido por um grande peixe após tentar fugir da missão que Deus lhe deu.",
	},
	{
		ID:             "4",
		Question:       "Qual é o primeiro mandamento?",
		Options:        []string{"Não matarás", "Amarás o Senhor teu Deus de todo o teu coração", "Honrarás pai e mãe", "Não furtarás"},
		CorrectAnswer:  1,
		Category:       models.CategoryTeachings,
		Difficulty:     models.DifficultyMedium,
		BibleReference: "Êxodo 20:3",
		Explanation:    "O primeiro mandamento é amar a Deus acima de todas as coisas.",
	},
	{
		ID:             "5",
		Question:       "Quem construiu a arca de Noé?",
		Options:        []string{"Moisés", "Noé", "Abraão", "José"},
		CorrectAnswer:  1,
		Category:       models.CategoryOldTestament,
		Difficulty:     models.DifficultyEasy,
		BibleReference: "Gênesis 6:14-16",
		Explanation:    "Noé construiu a arca seguindo as instruções detalhadas de Deus.",
	},
	{
		ID:             "6",
		Question:       "Quantos discípulos Jesus escolheu?",
		Options:        []string{"Dez", "Onze", "Doze", "Setenta"},
		CorrectAnswer:  2,
		Category:       models.CategoryNewTestament,
		Difficulty:     models.DifficultyEasy,
		BibleReference: "Lucas 6:13",
		Explanation:    "Jesus escolheu doze discípulos, que também chamou de apóstolos.",
	},
	{
		ID:             "7",
		Question:       "Complete o versículo: 'Lâmpada para os meus pés é a tua...'",
		Options:        []string{"graça", "palavra", "luz", "verdade"},
		CorrectAnswer:  1,
		Category:       models.CategoryVerses,
		Difficulty:     models.DifficultyEasy,
		BibleReference: "Salmos 119:105",
		Explanation:    "O salmista compara a palavra de Deus a uma lâmpada que ilumina o caminho.",
	},
	{
		ID:             "8",
		Question:       "Quem derrotou o gigante Golias?",
		Options:        []string{"Saul", "Jônatas", "Davi", "Sansão"},
		CorrectAnswer:  2,
		Category:       models.CategoryCharacters,
		Difficulty:     models.DifficultyEasy,
		BibleReference: "1 Samuel 17:50",
		Explanation:    "Davi venceu Golias com uma funda e uma pedra, confiando no Senhor.",
	},
	{
		ID:             "9",
		Question:       "Por quantos anos o povo de Israel caminhou no deserto?",
		Options:        []string{"7 anos", "12 anos", "40 anos", "70 anos"},
		CorrectAnswer:  2,
		Category:       models.CategoryHistory,
		Difficulty:     models.DifficultyMedium,
		BibleReference: "Números 14:33-34",
		Explanation:    "Israel peregrinou quarenta anos no deserto antes de entrar na terra prometida.",
	},
	{
		ID:             "10",
		Question:       "Em que cidade Jesus nasceu?",
		Options:        []string{"Nazaré", "Jerusalém", "Belém", "Cafarnaum"},
		CorrectAnswer:  2,
		Category:       models.CategoryHistory,
		Difficulty:     models.DifficultyEasy,
		BibleReference: "Mateus 2:1",
		Explanation:    "Jesus nasceu em Belém da Judeia, nos dias do rei Herodes.",
	},
	{
		ID:             "11",
		Question:       "Qual apóstolo negou Jesus três vezes?",
		Options:        []string{"João", "Pedro", "Tiago", "Tomé"},
		CorrectAnswer:  1,
		Category:       models.CategoryNewTestament,
		Difficulty:     models.DifficultyMedium,
		BibleReference: "Lucas 22:61",
		Explanation:    "Pedro negou conhecer Jesus três vezes antes de o galo cantar, como Jesus havia dito.",
	},
	{
		ID:             "12",
		Question:       "Complete: 'O Senhor é o meu pastor; nada me...'",
		Options:        []string{"faltará", "abalará", "temerá", "perturbará"},
		CorrectAnswer:  0,
		Category:       models.CategoryVerses,
		Difficulty:     models.DifficultyEasy,
		BibleReference: "Salmos 23:1",
		Explanation:    "O Salmo 23 descreve o cuidado de Deus como o de um pastor pelo seu rebanho.",
	},
	{
		ID:             "13",
		Question:       "O que significa amar o próximo como a si mesmo?",
		Options:        []string{"Amar apenas a família", "Amar somente quem nos ama", "Cuidar dos outros como cuidamos de nós", "Amar apenas os amigos"},
		CorrectAnswer:  2,
		Category:       models.CategoryTeachings,
		Difficulty:     models.DifficultyEasy,
		BibleReference: "Marcos 12:31",
		Explanation:    "Jesus ensinou que o segundo maior mandamento é amar o próximo como a si mesmo.",
	},
	{
		ID:             "14",
		Question:       "Quem interpretou os sonhos do faraó no Egito?",
		Options:        []string{"Moisés", "José", "Daniel", "Arão"},
		CorrectAnswer:  1,
		Category:       models.CategoryCharacters,
		Difficulty:     models.DifficultyHard,
		BibleReference: "Gênesis 41:25",
		Explanation:    "José interpretou os sonhos do faraó, anunciando sete anos de fartura e sete de fome.",
	},
	{
		ID:             "15",
		Question:       "Qual profeta confrontou os profetas de Baal no monte Carmelo?",
		Options:        []string{"Eliseu", "Elias", "Samuel", "Natã"},
		CorrectAnswer:  1,
		Category:       models.CategoryOldTestament,
		Difficulty:     models.DifficultyHard,
		BibleReference: "1 Reis 18:38-39",
		Explanation:    "Elias desafiou os profetas de Baal e o fogo do Senhor consumiu o sacrifício.",
	},
}
