package handlers

import (
	"net/http"
	"strconv"

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

type CompanyHandler struct {
	DB *gorm.DB
}

func (h *CompanyHandler) companyQuery() *gorm.DB {
	return h.DB.Model(&models.Company{}).
		Preload("Translations").
		Preload("Category.Translations").
		Preload("Products.Translations").
		Preload("Products.Images")
}

// associatedProducts returns the products linked to a company through
// CompanyProduct rows, beyond the direct foreign key.
func (h *CompanyHandler) associatedProducts(companyID uuid.UUID) []models.Product {
	var products []models.Product
	err := h.DB.Model(&models.Product{}).
		Preload("Translations").
		Preload("Images").
		Joins("JOIN company_products cp ON cp.product_id = products.id").
		Where("cp.company_id = ?", companyID).
		Find(&products).Error
	if err != nil {
		logger.Get().Warn("failed to fetch associated products",
			zap.String("company_id", companyID.String()), zap.Error(err))
	}
	return products
}

func (h *CompanyHandler) GetCompanies(c *gin.Context) {
	locale := utils.RequestLocale(c)
	fallback := config.FallbackLocale()

	query := h.companyQuery()
	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(companies.name) LIKE LOWER(?)", "%"+search+"%")
	}

	var companies []models.Company
	if err := query.Find(&companies).Error; err != nil {
		logger.Get().Error("failed to fetch companies", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch companies"})
		return
	}

	responses := make([]dtos.CompanyResponse, 0, len(companies))
	for _, company := range companies {
		responses = append(responses, dtos.NewCompanyResponse(company, h.associatedProducts(company.ID), locale, fallback))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id := c.Param("id")

	var company models.Company
	if err := h.companyQuery().Where("companies.id = ?", id).First(&company).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}

	c.JSON(http.StatusOK, dtos.NewCompanyResponse(company, h.associatedProducts(company.ID),
		utils.RequestLocale(c), config.FallbackLocale()))
}

type companyRequest struct {
	Name         string                        `json:"name" binding:"required,max=300"`
	CategoryID   uuid.UUID                     `json:"category_id" binding:"required"`
	Location     string                        `json:"location"`
	Country      string                        `json:"country" binding:"required"`
	Image        *string                       `json:"image" binding:"omitempty,url"`
	PhoneNumber  string                        `json:"phone_number" binding:"required,e164"`
	Facebook     string                        `json:"facebook" binding:"omitempty,url"`
	Instagram    string                        `json:"instagram" binding:"omitempty,url"`
	Telegram     string                        `json:"telegram" binding:"omitempty,url"`
	Youtube      string                        `json:"youtube" binding:"omitempty,url"`
	Translations map[string]dtos.CompanyFields `json:"translations" binding:"required"`
}

func (r *companyRequest) validate(db *gorm.DB) string {
	if len(r.Translations) == 0 {
		return "at least one translation is required"
	}
	if !models.Country(r.Country).Valid() {
		return "country must be a valid ISO 3166-1 alpha-2 code"
	}
	if err := db.First(&models.Category{}, "id = ?", r.CategoryID).Error; err != nil {
		return "Invalid category"
	}
	return ""
}

func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}
	if msg := req.validate(h.DB); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	company := models.Company{
		ID:          uuid.New(),
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		Location:    req.Location,
		Country:     models.Country(req.Country),
		PhoneNumber: req.PhoneNumber,
		Facebook:    req.Facebook,
		Instagram:   req.Instagram,
		Telegram:    req.Telegram,
		Youtube:     req.Youtube,
	}
	if req.Image != nil {
		company.Image = *req.Image
	}
	for locale, fields := range req.Translations {
		company.Translations = append(company.Translations, models.CompanyTranslation{
			Locale:      locale,
			Description: fields.Description,
		})
	}

	if err := h.DB.Create(&company).Error; err != nil {
		logger.Get().Error("failed to create company", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create company"})
		return
	}

	h.companyQuery().Where("companies.id = ?", company.ID).First(&company)
	c.JSON(http.StatusCreated, dtos.NewCompanyResponse(company, nil, utils.RequestLocale(c), config.FallbackLocale()))
}

func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id := c.Param("id")

	var company models.Company
	if err := h.DB.Where("id = ?", id).First(&company).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}

	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}
	if msg := req.validate(h.DB); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		company.Name = req.Name
		company.CategoryID = req.CategoryID
		company.Location = req.Location
		company.Country = models.Country(req.Country)
		if req.Image != nil {
			company.Image = *req.Image
		}
		company.PhoneNumber = req.PhoneNumber
		company.Facebook = req.Facebook
		company.Instagram = req.Instagram
		company.Telegram = req.Telegram
		company.Youtube = req.Youtube
		if err := tx.Save(&company).Error; err != nil {
			return err
		}
		if err := tx.Where("company_id = ?", company.ID).Delete(&models.CompanyTranslation{}).Error; err != nil {
			return err
		}
		for locale, fields := range req.Translations {
			t := models.CompanyTranslation{
				CompanyID:   company.ID,
				Locale:      locale,
				Description: fields.Description,
			}
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Get().Error("failed to update company", zap.String("company_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update company"})
		return
	}

	h.companyQuery().Where("companies.id = ?", company.ID).First(&company)
	c.JSON(http.StatusOK, dtos.NewCompanyResponse(company, h.associatedProducts(company.ID),
		utils.RequestLocale(c), config.FallbackLocale()))
}

// DeleteCompany removes a company and cascades to its products and
// association rows.
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	id := c.Param("id")

	var company models.Company
	if err := h.DB.First(&company, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		return deleteCompaniesCascade(tx, []uuid.UUID{company.ID})
	})
	if err != nil {
		logger.Get().Error("failed to delete company", zap.String("company_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete company"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Company deleted successfully"})
}

func deleteCompaniesCascade(tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	var productIDs []uuid.UUID
	if err := tx.Model(&models.Product{}).Where("company_id IN ?", ids).
		Pluck("id", &productIDs).Error; err != nil {
		return err
	}
	if err := deleteProductsCascade(tx, productIDs); err != nil {
		return err
	}
	if err := tx.Where("company_id IN ?", ids).Delete(&models.CompanyProduct{}).Error; err != nil {
		return err
	}
	if err := tx.Where("company_id IN ?", ids).Delete(&models.CompanyTranslation{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", ids).Delete(&models.Company{}).Error
}

// GetCompaniesPaginated serves the admin list view with its derived display
// columns.
func (h *CompanyHandler) GetCompaniesPaginated(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	var companies []models.Company
	var total int64

	query := h.DB.Model(&models.Company{})
	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
	}
	if country := c.Query("country"); country != "" {
		query = query.Where("country = ?", country)
	}

	query.Count(&total)
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&companies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch companies"})
		return
	}

	rows := make([]dtos.CompanyAdminRow, 0, len(companies))
	for _, company := range companies {
		rows = append(rows, dtos.NewCompanyAdminRow(company))
	}

	c.JSON(http.StatusOK, gin.H{
		"companies": rows,
		"total":     total,
		"page":      page,
		"limit":     limit,
	})
}
