package routes

import (
	"net/http"
	"time"

	"b2bpro-backend/handlers"
	"b2bpro-backend/middleware"
	"b2bpro-backend/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, storageClient storage.Client) {
	// Initialize handlers
	authHandler := &handlers.AuthHandler{DB: db}
	categoryHandler := &handlers.CategoryHandler{DB: db}
	subCategoryHandler := &handlers.SubCategoryHandler{DB: db}
	productHandler := &handlers.ProductHandler{DB: db, Storage: storageClient}
	companyHandler := &handlers.CompanyHandler{DB: db}
	companyProductHandler := &handlers.CompanyProductHandler{DB: db}
	ratingHandler := &handlers.ProductRatingHandler{DB: db}
	applicationHandler := &handlers.ApplicationHandler{DB: db}
	questionHandler := &handlers.QuestionHandler{DB: db}
	blogHandler := &handlers.BlogHandler{DB: db}

	// Lead-capture forms are public, so their create endpoints are rate limited.
	leadLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Public routes
	api := r.Group("/api")
	{
		api.GET("/get-csrf-token/", handlers.GetCSRFToken)

		// Auth routes
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// Catalog, read-only where the admin owns writes
		api.GET("/category", categoryHandler.GetCategories)
		api.GET("/category/:id", categoryHandler.GetCategory)

		// Updates answer on both PUT and PATCH.
		api.GET("/subcategory", subCategoryHandler.GetSubCategories)
		api.GET("/subcategory/:id", subCategoryHandler.GetSubCategory)
		api.POST("/subcategory", subCategoryHandler.CreateSubCategory)
		api.PUT("/subcategory/:id", subCategoryHandler.UpdateSubCategory)
		api.PATCH("/subcategory/:id", subCategoryHandler.UpdateSubCategory)
		api.DELETE("/subcategory/:id", subCategoryHandler.DeleteSubCategory)

		api.GET("/products", productHandler.GetProducts)
		api.GET("/products/:id", productHandler.GetProduct)

		api.GET("/company", companyHandler.GetCompanies)
		api.GET("/company/:id", companyHandler.GetCompany)
		api.POST("/company", companyHandler.CreateCompany)
		api.PUT("/company/:id", companyHandler.UpdateCompany)
		api.PATCH("/company/:id", companyHandler.UpdateCompany)
		api.DELETE("/company/:id", companyHandler.DeleteCompany)

		api.GET("/product-ratings", ratingHandler.GetRatings)
		api.GET("/product-ratings/:id", ratingHandler.GetRating)
		api.POST("/product-ratings", ratingHandler.CreateRating)
		api.PUT("/product-ratings/:id", ratingHandler.UpdateRating)
		api.PATCH("/product-ratings/:id", ratingHandler.UpdateRating)
		api.DELETE("/product-ratings/:id", ratingHandler.DeleteRating)

		// Lead-capture forms
		api.GET("/applications", applicationHandler.GetApplications)
		api.GET("/applications/:id", applicationHandler.GetApplication)
		api.POST("/applications", leadLimiter.Middleware(), applicationHandler.CreateApplication)
		api.PUT("/applications/:id", applicationHandler.UpdateApplication)
		api.PATCH("/applications/:id", applicationHandler.UpdateApplication)
		api.DELETE("/applications/:id", applicationHandler.DeleteApplication)

		api.GET("/questions", questionHandler.GetQuestions)
		api.GET("/questions/:id", questionHandler.GetQuestion)
		api.POST("/questions", leadLimiter.Middleware(), questionHandler.CreateQuestion)
		api.PUT("/questions/:id", questionHandler.UpdateQuestion)
		api.PATCH("/questions/:id", questionHandler.UpdateQuestion)
		api.DELETE("/questions/:id", questionHandler.DeleteQuestion)

		// Blog
		api.GET("/posts", blogHandler.GetPosts)
		api.GET("/posts/:id", blogHandler.GetPost)
		api.GET("/blog-categories", blogHandler.GetBlogCategories)
		api.GET("/blog-categories/:id", blogHandler.GetBlogCategory)
	}

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/auth/profile", authHandler.GetProfile)
	}

	// Admin routes (require admin role)
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		// Category management
		admin.POST("/category", categoryHandler.CreateCategory)
		admin.PUT("/category/:id", categoryHandler.UpdateCategory)
		admin.PATCH("/category/:id", categoryHandler.UpdateCategory)
		admin.DELETE("/category/:id", categoryHandler.DeleteCategory)

		// Product management
		admin.POST("/products", productHandler.CreateProduct)
		admin.PUT("/products/:id", productHandler.UpdateProduct)
		admin.PATCH("/products/:id", productHandler.UpdateProduct)
		admin.DELETE("/products/:id", productHandler.DeleteProduct)
		admin.POST("/products/:id/images", productHandler.AddProductImage)
		admin.DELETE("/products/:id/images/:imageId", productHandler.DeleteProductImage)

		// Company/product associations
		admin.GET("/company-products", companyProductHandler.GetCompanyProducts)
		admin.POST("/company-products", companyProductHandler.CreateCompanyProduct)
		admin.DELETE("/company-products/:id", companyProductHandler.DeleteCompanyProduct)

		// Blog management
		admin.POST("/posts", blogHandler.CreatePost)
		admin.PUT("/posts/:id", blogHandler.UpdatePost)
		admin.PATCH("/posts/:id", blogHandler.UpdatePost)
		admin.DELETE("/posts/:id", blogHandler.DeletePost)
		admin.POST("/blog-categories", blogHandler.CreateBlogCategory)
		admin.PUT("/blog-categories/:id", blogHandler.UpdateBlogCategory)
		admin.PATCH("/blog-categories/:id", blogHandler.UpdateBlogCategory)
		admin.DELETE("/blog-categories/:id", blogHandler.DeleteBlogCategory)

		// Paginated review lists
		admin.GET("/applications", applicationHandler.GetApplicationsPaginated)
		admin.GET("/questions", questionHandler.GetQuestionsPaginated)
		admin.GET("/company", companyHandler.GetCompaniesPaginated)
		admin.GET("/product-ratings", ratingHandler.GetRatingsPaginated)
	}

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "b2bpro-backend"})
	})
}
