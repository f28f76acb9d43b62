package handlers

import (
	"net/http"
	"strconv"

	"b2bpro-backend/logger"
	"b2bpro-backend/models"
	"b2bpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProductRatingHandler struct {
	DB *gorm.DB
}

// GetRatings lists ratings, highest star first.
func (h *ProductRatingHandler) GetRatings(c *gin.Context) {
	query := h.DB.Model(&models.ProductRating{}).Order("star DESC")
	if productID := c.Query("product"); productID != "" {
		query = query.Where("product_id = ?", productID)
	}

	var ratings []models.ProductRating
	if err := query.Find(&ratings).Error; err != nil {
		logger.Get().Error("failed to fetch ratings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ratings"})
		return
	}
	c.JSON(http.StatusOK, ratings)
}

func (h *ProductRatingHandler) GetRating(c *gin.Context) {
	id := c.Param("id")

	var rating models.ProductRating
	if err := h.DB.First(&rating, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
		return
	}
	c.JSON(http.StatusOK, rating)
}

type ratingRequest struct {
	ProductID     uuid.UUID `json:"product_id" binding:"required"`
	Name          string    `json:"name" binding:"required,max=123"`
	Email         string    `json:"email" binding:"required,email"`
	Star          int       `json:"star" binding:"required,min=1,max=5"`
	ReviewComment string    `json:"review_comment"`
}

func (h *ProductRatingHandler) CreateRating(c *gin.Context) {
	var req ratingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if err := h.DB.First(&models.Product{}, "id = ?", req.ProductID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product"})
		return
	}

	rating := models.ProductRating{
		ProductID:     req.ProductID,
		Name:          req.Name,
		Email:         req.Email,
		Star:          req.Star,
		ReviewComment: req.ReviewComment,
	}
	if err := h.DB.Create(&rating).Error; err != nil {
		logger.Get().Error("failed to create rating", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rating"})
		return
	}

	c.JSON(http.StatusCreated, rating)
}

// UpdateRating edits a review's fields. ReviewDate is set once at creation
// and never touched here.
func (h *ProductRatingHandler) UpdateRating(c *gin.Context) {
	id := c.Param("id")

	var rating models.ProductRating
	if err := h.DB.First(&rating, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
		return
	}

	var req ratingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if err := h.DB.First(&models.Product{}, "id = ?", req.ProductID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product"})
		return
	}

	rating.ProductID = req.ProductID
	rating.Name = req.Name
	rating.Email = req.Email
	rating.Star = req.Star
	rating.ReviewComment = req.ReviewComment

	if err := h.DB.Save(&rating).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rating"})
		return
	}
	c.JSON(http.StatusOK, rating)
}

func (h *ProductRatingHandler) DeleteRating(c *gin.Context) {
	id := c.Param("id")

	var rating models.ProductRating
	if err := h.DB.First(&rating, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
		return
	}

	if err := h.DB.Delete(&rating).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rating"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rating deleted successfully"})
}

// GetRatingsPaginated serves the admin list view: filter by star, search by
// reviewer email.
func (h *ProductRatingHandler) GetRatingsPaginated(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	var ratings []models.ProductRating
	var total int64

	query := h.DB.Model(&models.ProductRating{})
	if star := c.Query("star"); star != "" {
		query = query.Where("star = ?", star)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(email) LIKE LOWER(?)", "%"+search+"%")
	}

	query.Count(&total)
	if err := query.Order("review_date DESC").Offset(offset).Limit(limit).Find(&ratings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ratings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ratings": ratings,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}
