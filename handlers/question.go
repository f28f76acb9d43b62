package handlers

import (
	"net/http"
	"strconv"

	"b2bpro-backend/dtos"
	"b2bpro-backend/logger"
	"b2bpro-backend/models"
	"b2bpro-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type QuestionHandler struct {
	DB *gorm.DB
}

func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	var questions []models.Question
	if err := h.DB.Order("date DESC").Find(&questions).Error; err != nil {
		logger.Get().Error("failed to fetch questions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id := c.Param("id")

	var question models.Question
	if err := h.DB.First(&question, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}
	c.JSON(http.StatusOK, question)
}

type questionRequest struct {
	Name        string `json:"name" binding:"required,max=123"`
	Location    string `json:"location" binding:"max=255"`
	PhoneNumber string `json:"phone_number" binding:"required,e164"`
	Text        string `json:"text" binding:"required"`
	Checked     *bool  `json:"checked"`
}

// CreateQuestion records a free-form enquiry. Unlike applications, repeat
// phone numbers are allowed.
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	question := models.Question{
		Name:        req.Name,
		Location:    req.Location,
		PhoneNumber: req.PhoneNumber,
		Text:        req.Text,
	}
	if err := h.DB.Create(&question).Error; err != nil {
		logger.Get().Error("failed to create question", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create question"})
		return
	}

	c.JSON(http.StatusCreated, question)
}

func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	id := c.Param("id")

	var question models.Question
	if err := h.DB.First(&question, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	question.Name = req.Name
	question.Location = req.Location
	question.PhoneNumber = req.PhoneNumber
	question.Text = req.Text
	if req.Checked != nil {
		question.Checked = *req.Checked
	}

	if err := h.DB.Save(&question).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update question"})
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id := c.Param("id")

	var question models.Question
	if err := h.DB.First(&question, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	if err := h.DB.Delete(&question).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete question"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Question deleted successfully"})
}

// GetQuestionsPaginated serves the admin list view with the checked glyph
// column.
func (h *QuestionHandler) GetQuestionsPaginated(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	offset := (page - 1) * limit

	var questions []models.Question
	var total int64

	query := h.DB.Model(&models.Question{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR phone_number LIKE ?", like, like)
	}
	if checked := c.Query("checked"); checked != "" {
		query = query.Where("checked = ?", checked == "true")
	}

	query.Count(&total)
	if err := query.Order("date DESC").Offset(offset).Limit(limit).Find(&questions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}

	rows := make([]dtos.QuestionAdminRow, 0, len(questions))
	for _, q := range questions {
		rows = append(rows, dtos.NewQuestionAdminRow(q))
	}

	c.JSON(http.StatusOK, gin.H{
		"questions": rows,
		"total":     total,
		"page":      page,
		"limit":     limit,
	})
}
