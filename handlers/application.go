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

type ApplicationHandler struct {
	DB *gorm.DB
}

func (h *ApplicationHandler) GetApplications(c *gin.Context) {
	var applications []models.Application
	if err := h.DB.Order("date DESC").Find(&applications).Error; err != nil {
		logger.Get().Error("failed to fetch applications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
		return
	}
	c.JSON(http.StatusOK, applications)
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	id := c.Param("id")

	var application models.Application
	if err := h.DB.First(&application, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}
	c.JSON(http.StatusOK, application)
}

type applicationRequest struct {
	Name        string `json:"name" binding:"required,max=123"`
	Location    string `json:"location" binding:"max=255"`
	PhoneNumber string `json:"phone_number" binding:"required,e164"`
	CompanyName string `json:"company_name" binding:"max=123"`
	Checked     *bool  `json:"checked"`
}

// CreateApplication records a product-listing request. Phone numbers are
// globally unique across applications; a duplicate is a validation error and
// nothing is written.
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req applicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	var existing models.Application
	if err := h.DB.Where("phone_number = ?", req.PhoneNumber).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An application with this phone number already exists"})
		return
	}

	application := models.Application{
		Name:        req.Name,
		Location:    req.Location,
		PhoneNumber: req.PhoneNumber,
		CompanyName: req.CompanyName,
	}
	if err := h.DB.Create(&application).Error; err != nil {
		// The unique index backstops the race between check and insert.
		c.JSON(http.StatusBadRequest, gin.H{"error": "An application with this phone number already exists"})
		return
	}

	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	id := c.Param("id")

	var application models.Application
	if err := h.DB.First(&application, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	var req applicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	var conflicting models.Application
	if err := h.DB.Where("phone_number = ? AND id <> ?", req.PhoneNumber, application.ID).
		First(&conflicting).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An application with this phone number already exists"})
		return
	}

	application.Name = req.Name
	application.Location = req.Location
	application.PhoneNumber = req.PhoneNumber
	application.CompanyName = req.CompanyName
	if req.Checked != nil {
		application.Checked = *req.Checked
	}

	if err := h.DB.Save(&application).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application"})
		return
	}
	c.JSON(http.StatusOK, application)
}

func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	id := c.Param("id")

	var application models.Application
	if err := h.DB.First(&application, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	if err := h.DB.Delete(&application).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete application"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully"})
}

// GetApplicationsPaginated serves the admin list view with the checked glyph
// column.
func (h *ApplicationHandler) GetApplicationsPaginated(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	offset := (page - 1) * limit

	var applications []models.Application
	var total int64

	query := h.DB.Model(&models.Application{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR phone_number LIKE ?", like, like)
	}
	if checked := c.Query("checked"); checked != "" {
		query = query.Where("checked = ?", checked == "true")
	}

	query.Count(&total)
	if err := query.Order("date DESC").Offset(offset).Limit(limit).Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
		return
	}

	rows := make([]dtos.ApplicationAdminRow, 0, len(applications))
	for _, a := range applications {
		rows = append(rows, dtos.NewApplicationAdminRow(a))
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": rows,
		"total":        total,
		"page":         page,
		"limit":        limit,
	})
}
