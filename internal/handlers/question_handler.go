package handlers

import (
	"context"
	"net/http"

	"github.com/cristian-diego/cavaleiros-da-biblia/internal/models"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type QuestionHandler struct {
	Repo *repository.QuestionRepository
}

func NewQuestionHandler(repo *repository.QuestionRepository) *QuestionHandler {
	return &QuestionHandler{Repo: repo}
}

func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.Repo.FindAll(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	question, err := h.Repo.FindByID(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "question not found"})
		return
	}
	c.JSON(http.StatusOK, question)
}

func validateQuestion(q *models.Question) string {
	if q.Question == "" {
		return "question text is required"
	}
	if len(q.Options) < 2 {
		return "at least two options are required"
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return "correct_answer must index into options"
	}
	if !models.ValidCategory(string(q.Category)) {
		return "unknown category"
	}
	if !models.ValidDifficulty(string(q.Difficulty)) {
		return "unknown difficulty"
	}
	return ""
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var question models.Question
	if err := c.ShouldBindJSON(&question); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := validateQuestion(&question); msg != "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": msg})
		return
	}
	if question.ID == "" {
		question.ID = uuid.NewString()
	}

	if err := h.Repo.Create(context.Background(), &question); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create question"})
		return
	}
	c.JSON(http.StatusCreated, question)
}

func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	var question models.Question
	if err := c.ShouldBindJSON(&question); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := validateQuestion(&question); msg != "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": msg})
		return
	}

	id := c.Param("id")
	update := bson.M{
		"question":        question.Question,
		"options":         question.Options,
		"correct_answer":  question.CorrectAnswer,
		"category":        question.Category,
		"difficulty":      question.Difficulty,
		"bible_reference": question.BibleReference,
		"explanation":     question.Explanation,
	}
	if err := h.Repo.Update(context.Background(), id, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update question"})
		return
	}

	question.ID = id
	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	if err := h.Repo.Delete(context.Background(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete question"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "question deleted"})
}
