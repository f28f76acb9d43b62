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

type BlogHandler struct {
	DB *gorm.DB
}

func (h *BlogHandler) postQuery() *gorm.DB {
	return h.DB.Model(&models.Post{}).
		Preload("Translations").
		Preload("Categories.Translations")
}

// GetPosts lists posts newest first, optionally filtered by blog category
// slug or the featured flag.
func (h *BlogHandler) GetPosts(c *gin.Context) {
	locale := utils.RequestLocale(c)
	fallback := config.FallbackLocale()

	query := h.postQuery().Order("posts.created_at DESC")

	if slug := c.Query("category"); slug != "" {
		query = query.
			Joins("JOIN post_categories pc ON pc.post_id = posts.id").
			Joins("JOIN blog_categories bc ON bc.id = pc.blog_category_id").
			Where("bc.slug = ?", slug).
			Distinct("posts.*")
	}
	if c.Query("featured") == "true" {
		query = query.Where("is_featured = ?", true)
	}

	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		logger.Get().Error("failed to fetch posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	responses := make([]dtos.PostResponse, 0, len(posts))
	for _, p := range posts {
		responses = append(responses, dtos.NewPostResponse(p, locale, fallback))
	}
	c.JSON(http.StatusOK, responses)
}

// GetPost returns one post and counts the view.
func (h *BlogHandler) GetPost(c *gin.Context) {
	id := c.Param("id")

	var post models.Post
	if err := h.postQuery().Where("posts.id = ?", id).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if err := h.DB.Model(&models.Post{}).Where("id = ?", post.ID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		logger.Get().Warn("failed to count post view", zap.String("post_id", id), zap.Error(err))
	} else {
		post.Views++
	}

	c.JSON(http.StatusOK, dtos.NewPostResponse(post, utils.RequestLocale(c), config.FallbackLocale()))
}

type postRequest struct {
	Slug         string                     `json:"slug" binding:"required,max=255"`
	Image        *string                    `json:"image" binding:"omitempty,url"`
	IsFeatured   bool                       `json:"is_featured"`
	CategoryIDs  []uuid.UUID                `json:"category_ids"`
	Translations map[string]dtos.PostFields `json:"translations" binding:"required"`
}

func (r *postRequest) validateTranslations() string {
	if len(r.Translations) == 0 {
		return "at least one translation is required"
	}
	for locale, fields := range r.Translations {
		if fields.Title == "" {
			return "translation " + locale + ": title is required"
		}
	}
	return ""
}

func (h *BlogHandler) loadCategories(ids []uuid.UUID) ([]models.BlogCategory, bool) {
	if len(ids) == 0 {
		return nil, true
	}
	var categories []models.BlogCategory
	if err := h.DB.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, false
	}
	return categories, len(categories) == len(ids)
}

// CreatePost creates a blog post with its translations and category links
// (admin only).
func (h *BlogHandler) CreatePost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}
	if msg := req.validateTranslations(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	categories, ok := h.loadCategories(req.CategoryIDs)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog category"})
		return
	}

	post := models.Post{
		ID:         uuid.New(),
		Slug:       req.Slug,
		IsFeatured: req.IsFeatured,
		Categories: categories,
	}
	if req.Image != nil {
		post.Image = *req.Image
	}
	for locale, fields := range req.Translations {
		post.Translations = append(post.Translations, models.PostTranslation{
			Locale:      locale,
			Title:       fields.Title,
			Description: fields.Description,
			Content:     fields.Content,
		})
	}

	if err := h.DB.Create(&post).Error; err != nil {
		logger.Get().Error("failed to create post", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	h.postQuery().Where("posts.id = ?", post.ID).First(&post)
	c.JSON(http.StatusCreated, dtos.NewPostResponse(post, utils.RequestLocale(c), config.FallbackLocale()))
}

// UpdatePost replaces a post's fields, translations and category links
// (admin only).
func (h *BlogHandler) UpdatePost(c *gin.Context) {
	id := c.Param("id")

	var post models.Post
	if err := h.DB.Where("id = ?", id).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}
	if msg := req.validateTranslations(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	categories, ok := h.loadCategories(req.CategoryIDs)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog category"})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		post.Slug = req.Slug
		if req.Image != nil {
			post.Image = *req.Image
		}
		post.IsFeatured = req.IsFeatured
		if err := tx.Save(&post).Error; err != nil {
			return err
		}
		if err := tx.Model(&post).Association("Categories").Replace(categories); err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.PostTranslation{}).Error; err != nil {
			return err
		}
		for locale, fields := range req.Translations {
			t := models.PostTranslation{
				PostID:      post.ID,
				Locale:      locale,
				Title:       fields.Title,
				Description: fields.Description,
				Content:     fields.Content,
			}
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Get().Error("failed to update post", zap.String("post_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	h.postQuery().Where("posts.id = ?", post.ID).First(&post)
	c.JSON(http.StatusOK, dtos.NewPostResponse(post, utils.RequestLocale(c), config.FallbackLocale()))
}

// DeletePost removes a post, its translations and its category links
// (admin only).
func (h *BlogHandler) DeletePost(c *gin.Context) {
	id := c.Param("id")

	var post models.Post
	if err := h.DB.First(&post, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&post).Association("Categories").Clear(); err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.PostTranslation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		logger.Get().Error("failed to delete post", zap.String("post_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

func (h *BlogHandler) GetBlogCategories(c *gin.Context) {
	locale := utils.RequestLocale(c)
	fallback := config.FallbackLocale()

	var categories []models.BlogCategory
	if err := h.DB.Preload("Translations").Find(&categories).Error; err != nil {
		logger.Get().Error("failed to fetch blog categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog categories"})
		return
	}

	responses := make([]dtos.BlogCategoryResponse, 0, len(categories))
	for _, cat := range categories {
		responses = append(responses, dtos.NewBlogCategoryResponse(cat, locale, fallback))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *BlogHandler) GetBlogCategory(c *gin.Context) {
	id := c.Param("id")

	var category models.BlogCategory
	if err := h.DB.Preload("Translations").Where("id = ?", id).First(&category).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog category not found"})
		return
	}

	c.JSON(http.StatusOK, dtos.NewBlogCategoryResponse(category, utils.RequestLocale(c), config.FallbackLocale()))
}

type blogCategoryRequest struct {
	Slug         string                             `json:"slug" binding:"required,max=255"`
	Translations map[string]dtos.BlogCategoryFields `json:"translations" binding:"required"`
}

func (h *BlogHandler) CreateBlogCategory(c *gin.Context) {
	var req blogCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}
	if len(req.Translations) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one translation is required"})
		return
	}

	category := models.BlogCategory{
		ID:   uuid.New(),
		Slug: req.Slug,
	}
	for locale, fields := range req.Translations {
		if fields.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "translation " + locale + ": name is required"})
			return
		}
		category.Translations = append(category.Translations, models.BlogCategoryTranslation{
			Locale: locale,
			Name:   fields.Name,
		})
	}

	if err := h.DB.Create(&category).Error; err != nil {
		logger.Get().Error("failed to create blog category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blog category"})
		return
	}

	h.DB.Preload("Translations").Where("id = ?", category.ID).First(&category)
	c.JSON(http.StatusCreated, dtos.NewBlogCategoryResponse(category, utils.RequestLocale(c), config.FallbackLocale()))
}

func (h *BlogHandler) UpdateBlogCategory(c *gin.Context) {
	id := c.Param("id")

	var category models.BlogCategory
	if err := h.DB.Where("id = ?", id).First(&category).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog category not found"})
		return
	}

	var req blogCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}
	if len(req.Translations) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one translation is required"})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		category.Slug = req.Slug
		if err := tx.Save(&category).Error; err != nil {
			return err
		}
		if err := tx.Where("blog_category_id = ?", category.ID).Delete(&models.BlogCategoryTranslation{}).Error; err != nil {
			return err
		}
		for locale, fields := range req.Translations {
			t := models.BlogCategoryTranslation{
				BlogCategoryID: category.ID,
				Locale:         locale,
				Name:           fields.Name,
			}
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Get().Error("failed to update blog category", zap.String("blog_category_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update blog category"})
		return
	}

	h.DB.Preload("Translations").Where("id = ?", category.ID).First(&category)
	c.JSON(http.StatusOK, dtos.NewBlogCategoryResponse(category, utils.RequestLocale(c), config.FallbackLocale()))
}

func (h *BlogHandler) DeleteBlogCategory(c *gin.Context) {
	id := c.Param("id")

	var category models.BlogCategory
	if err := h.DB.First(&category, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog category not found"})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&category).Association("Posts").Clear(); err != nil {
			return err
		}
		if err := tx.Where("blog_category_id = ?", category.ID).Delete(&models.BlogCategoryTranslation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		logger.Get().Error("failed to delete blog category", zap.String("blog_category_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete blog category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog category deleted successfully"})
}
