package handlers

import (
	"net/http"

	"b2bpro-backend/config"
	"b2bpro-backend/dtos"
	"b2bpro-backend/logger"
	"b2bpro-backend/models"
	"b2bpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SubCategoryHandler struct {
	DB *gorm.DB
}

func (h *SubCategoryHandler) subcategoryQuery() *gorm.DB {
	return h.DB.Model(&models.SubCategory{}).Preload("Translations")
}

func (h *SubCategoryHandler) GetSubCategories(c *gin.Context) {
	locale := utils.RequestLocale(c)
	fallback := config.FallbackLocale()

	query := h.subcategoryQuery()
	if categoryID := c.Query("category"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var subcategories []models.SubCategory
	if err := query.Find(&subcategories).Error; err != nil {
		logger.Get().Error("failed to fetch subcategories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subcategories"})
		return
	}

	responses := make([]dtos.SubCategoryResponse, 0, len(subcategories))
	for _, sub := range subcategories {
		responses = append(responses, dtos.NewSubCategoryResponse(sub, locale, fallback))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *SubCategoryHandler) GetSubCategory(c *gin.Context) {
	id := c.Param("id")

	var sub models.SubCategory
	if err := h.subcategoryQuery().Where("id = ?", id).First(&sub).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subcategory not found"})
		return
	}

	c.JSON(http.StatusOK, dtos.NewSubCategoryResponse(sub, utils.RequestLocale(c), config.FallbackLocale()))
}

type subCategoryRequest struct {
	CategoryID   uuid.UUID                         `json:"category_id" binding:"required"`
	IsActive     *bool                             `json:"is_active"`
	Translations map[string]dtos.SubCategoryFields `json:"translations" binding:"required"`
}

func (r *subCategoryRequest) validateTranslations() string {
	if len(r.Translations) == 0 {
		return "at least one translation is required"
	}
	for locale, fields := range r.Translations {
		if fields.Name == "" {
			return "translation " + locale + ": name is required"
		}
	}
	return ""
}

func (h *SubCategoryHandler) CreateSubCategory(c *gin.Context) {
	var req subCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}
	if msg := req.validateTranslations(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if err := h.DB.First(&models.Category{}, "id = ?", req.CategoryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	sub := models.SubCategory{
		ID:         uuid.New(),
		CategoryID: req.CategoryID,
		IsActive:   true,
	}
	if req.IsActive != nil {
		sub.IsActive = *req.IsActive
	}
	for locale, fields := range req.Translations {
		sub.Translations = append(sub.Translations, models.SubCategoryTranslation{
			Locale: locale,
			Name:   fields.Name,
		})
	}

	if err := h.DB.Create(&sub).Error; err != nil {
		logger.Get().Error("failed to create subcategory", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subcategory"})
		return
	}

	h.subcategoryQuery().Where("id = ?", sub.ID).First(&sub)
	c.JSON(http.StatusCreated, dtos.NewSubCategoryResponse(sub, utils.RequestLocale(c), config.FallbackLocale()))
}

func (h *SubCategoryHandler) UpdateSubCategory(c *gin.Context) {
	id := c.Param("id")

	var sub models.SubCategory
	if err := h.DB.Where("id = ?", id).First(&sub).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subcategory not found"})
		return
	}

	var req subCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}
	if msg := req.validateTranslations(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if err := h.DB.First(&models.Category{}, "id = ?", req.CategoryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		sub.CategoryID = req.CategoryID
		if req.IsActive != nil {
			sub.IsActive = *req.IsActive
		}
		if err := tx.Save(&sub).Error; err != nil {
			return err
		}
		if err := tx.Where("sub_category_id = ?", sub.ID).Delete(&models.SubCategoryTranslation{}).Error; err != nil {
			return err
		}
		for locale, fields := range req.Translations {
			t := models.SubCategoryTranslation{
				SubCategoryID: sub.ID,
				Locale:        locale,
				Name:          fields.Name,
			}
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Get().Error("failed to update subcategory", zap.String("subcategory_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subcategory"})
		return
	}

	h.subcategoryQuery().Where("id = ?", sub.ID).First(&sub)
	c.JSON(http.StatusOK, dtos.NewSubCategoryResponse(sub, utils.RequestLocale(c), config.FallbackLocale()))
}

// DeleteSubCategory removes a subcategory and cascades to its products.
func (h *SubCategoryHandler) DeleteSubCategory(c *gin.Context) {
	id := c.Param("id")

	var sub models.SubCategory
	if err := h.DB.First(&sub, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subcategory not found"})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		return deleteSubCategoriesCascade(tx, []uuid.UUID{sub.ID})
	})
	if err != nil {
		logger.Get().Error("failed to delete subcategory", zap.String("subcategory_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subcategory"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subcategory deleted successfully"})
}

// deleteSubCategoriesCascade removes subcategories, their translation rows,
// and every product beneath them.
func deleteSubCategoriesCascade(tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	var productIDs []uuid.UUID
	if err := tx.Model(&models.Product{}).Where("sub_category_id IN ?", ids).
		Pluck("id", &productIDs).Error; err != nil {
		return err
	}
	if err := deleteProductsCascade(tx, productIDs); err != nil {
		return err
	}
	if err := tx.Where("sub_category_id IN ?", ids).Delete(&models.SubCategoryTranslation{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", ids).Delete(&models.SubCategory{}).Error
}
