package handlers

import (
	"net/http"
	"strconv"

	"b2bpro-backend/config"
	"b2bpro-backend/dtos"
	"b2bpro-backend/logger"
	"b2bpro-backend/models"
	"b2bpro-backend/storage"
	"b2bpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProductHandler struct {
	DB      *gorm.DB
	Storage storage.Client
}

func (h *ProductHandler) productQuery() *gorm.DB {
	return h.DB.Model(&models.Product{}).
		Preload("Translations").
		Preload("Images").
		Preload("SubCategory.Translations")
}

// GetProducts lists products, newest-updated first, with the search, category
// and popular query parameters applied.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	locale := utils.RequestLocale(c)
	fallback := config.FallbackLocale()

	query := h.productQuery().Order("products.updated_at DESC")

	if categoryID := c.Query("category"); categoryID != "" {
		query = query.Where("sub_category_id = ?", categoryID)
	}

	if search := c.Query("search"); search != "" {
		query = query.
			Joins("JOIN product_translations pt ON pt.product_id = products.id").
			Where("LOWER(pt.name) LIKE LOWER(?)", "%"+search+"%").
			Distinct("products.*")
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		logger.Get().Error("failed to fetch products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	if c.Query("popular") == "true" {
		SortPopular(products)
	}

	page, limit := pageParams(c)
	total := len(products)
	products = paginateProducts(products, page, limit)

	responses := make([]dtos.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, dtos.NewProductResponse(p, locale, fallback))
	}

	c.JSON(http.StatusOK, gin.H{
		"products": responses,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

// GetProduct returns the enriched single-product representation (reviews plus
// average rating) and counts the view.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")
	locale := utils.RequestLocale(c)
	fallback := config.FallbackLocale()

	var product models.Product
	if err := h.productQuery().Preload("Ratings").Where("products.id = ?", id).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if err := h.DB.Model(&models.Product{}).Where("id = ?", product.ID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		logger.Get().Warn("failed to count product view", zap.String("product_id", id), zap.Error(err))
	} else {
		product.Views++
	}

	c.JSON(http.StatusOK, dtos.NewProductDetailResponse(product, locale, fallback))
}

type productRequest struct {
	SubCategoryID uuid.UUID                     `json:"subcategory_id" binding:"required"`
	CompanyID     uuid.UUID                     `json:"company_id" binding:"required"`
	IsFeatured    bool                          `json:"is_featured"`
	Translations  map[string]dtos.ProductFields `json:"translations" binding:"required"`
}

func (r *productRequest) validateTranslations() string {
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

// CreateProduct creates a product with its translation rows (admin only).
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}
	if msg := req.validateTranslations(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if err := h.DB.First(&models.SubCategory{}, "id = ?", req.SubCategoryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subcategory"})
		return
	}
	if err := h.DB.First(&models.Company{}, "id = ?", req.CompanyID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid company"})
		return
	}

	product := models.Product{
		ID:            uuid.New(),
		SubCategoryID: req.SubCategoryID,
		CompanyID:     req.CompanyID,
		IsFeatured:    req.IsFeatured,
	}
	for locale, fields := range req.Translations {
		product.Translations = append(product.Translations, models.ProductTranslation{
			Locale:      locale,
			Name:        fields.Name,
			Description: fields.Description,
			Compound:    fields.Compound,
			Tag:         fields.Tag,
		})
	}

	if err := h.DB.Create(&product).Error; err != nil {
		logger.Get().Error("failed to create product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	h.productQuery().Where("products.id = ?", product.ID).First(&product)
	c.JSON(http.StatusCreated, dtos.NewProductResponse(product, utils.RequestLocale(c), config.FallbackLocale()))
}

// UpdateProduct replaces a product's fields and translation rows (admin only).
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.DB.Where("id = ?", id).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}
	if msg := req.validateTranslations(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if err := h.DB.First(&models.SubCategory{}, "id = ?", req.SubCategoryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subcategory"})
		return
	}
	if err := h.DB.First(&models.Company{}, "id = ?", req.CompanyID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid company"})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		product.SubCategoryID = req.SubCategoryID
		product.CompanyID = req.CompanyID
		product.IsFeatured = req.IsFeatured
		if err := tx.Save(&product).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductTranslation{}).Error; err != nil {
			return err
		}
		for locale, fields := range req.Translations {
			t := models.ProductTranslation{
				ProductID:   product.ID,
				Locale:      locale,
				Name:        fields.Name,
				Description: fields.Description,
				Compound:    fields.Compound,
				Tag:         fields.Tag,
			}
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Get().Error("failed to update product", zap.String("product_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	h.productQuery().Where("products.id = ?", product.ID).First(&product)
	c.JSON(http.StatusOK, dtos.NewProductResponse(product, utils.RequestLocale(c), config.FallbackLocale()))
}

// DeleteProduct removes a product and its dependent rows (admin only).
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.DB.First(&product, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		return deleteProductsCascade(tx, []uuid.UUID{product.ID})
	})
	if err != nil {
		logger.Get().Error("failed to delete product", zap.String("product_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// deleteProductsCascade removes products and everything hanging off them:
// translations, images, ratings, and company association rows.
func deleteProductsCascade(tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Where("product_id IN ?", ids).Delete(&models.ProductTranslation{}).Error; err != nil {
		return err
	}
	if err := tx.Where("product_id IN ?", ids).Delete(&models.ProductImage{}).Error; err != nil {
		return err
	}
	if err := tx.Where("product_id IN ?", ids).Delete(&models.ProductRating{}).Error; err != nil {
		return err
	}
	if err := tx.Where("product_id IN ?", ids).Delete(&models.CompanyProduct{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", ids).Delete(&models.Product{}).Error
}

// AddProductImage uploads an image to object storage and attaches it to the
// product (admin only).
func (h *ProductHandler) AddProductImage(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.DB.First(&product, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if h.Storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image storage is not configured"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}
	if err := utils.ValidateFileUpload(fileHeader); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image"})
		return
	}
	defer file.Close()

	imageURL, err := h.Storage.UploadImage(file, "product_images", fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		logger.Get().Error("image upload failed", zap.String("product_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
		return
	}

	image := models.ProductImage{
		ProductID: product.ID,
		ImageURL:  imageURL,
	}
	if err := h.DB.Create(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save product image"})
		return
	}

	c.JSON(http.StatusCreated, image)
}

// DeleteProductImage removes an image record and its stored object (admin only).
func (h *ProductHandler) DeleteProductImage(c *gin.Context) {
	imageID := c.Param("imageId")

	var image models.ProductImage
	if err := h.DB.First(&image, "id = ? AND product_id = ?", imageID, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product image not found"})
		return
	}

	if h.Storage != nil {
		if objectPath, err := storage.ObjectPath(image.ImageURL); err == nil && objectPath != "" {
			if err := h.Storage.DeleteFile(objectPath); err != nil {
				logger.Get().Warn("failed to delete stored image", zap.String("path", objectPath), zap.Error(err))
			}
		}
	}

	if err := h.DB.Delete(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product image deleted successfully"})
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	return page, limit
}
