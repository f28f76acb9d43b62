package handlers

import (
	"net/http"

	"b2bpro-backend/logger"
	"b2bpro-backend/models"
	"b2bpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompanyProductHandler struct {
	DB *gorm.DB
}

func (h *CompanyProductHandler) GetCompanyProducts(c *gin.Context) {
	query := h.DB.Model(&models.CompanyProduct{}).
		Preload("Company").
		Preload("Product.Translations")
	if companyID := c.Query("company"); companyID != "" {
		query = query.Where("company_id = ?", companyID)
	}

	var associations []models.CompanyProduct
	if err := query.Find(&associations).Error; err != nil {
		logger.Get().Error("failed to fetch company product associations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch company products"})
		return
	}
	c.JSON(http.StatusOK, associations)
}

type companyProductRequest struct {
	CompanyID uuid.UUID `json:"company_id" binding:"required"`
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// CreateCompanyProduct links a company to a product. A duplicate pair is a
// validation error, not a silent no-op.
func (h *CompanyProductHandler) CreateCompanyProduct(c *gin.Context) {
	var req companyProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if err := h.DB.First(&models.Company{}, "id = ?", req.CompanyID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid company"})
		return
	}
	if err := h.DB.First(&models.Product{}, "id = ?", req.ProductID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product"})
		return
	}

	var existing models.CompanyProduct
	if err := h.DB.Where("company_id = ? AND product_id = ?", req.CompanyID, req.ProductID).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "This company and product are already associated"})
		return
	}

	association := models.CompanyProduct{
		CompanyID: req.CompanyID,
		ProductID: req.ProductID,
	}
	if err := h.DB.Create(&association).Error; err != nil {
		// The unique index backstops concurrent duplicate submissions.
		c.JSON(http.StatusBadRequest, gin.H{"error": "This company and product are already associated"})
		return
	}

	c.JSON(http.StatusCreated, association)
}

func (h *CompanyProductHandler) DeleteCompanyProduct(c *gin.Context) {
	id := c.Param("id")

	var association models.CompanyProduct
	if err := h.DB.First(&association, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company product association not found"})
		return
	}

	if err := h.DB.Delete(&association).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete company product association"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Company product association deleted successfully"})
}
