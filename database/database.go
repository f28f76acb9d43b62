package database

import (
	"fmt"
	"os"

	"b2bpro-backend/logger"
	"b2bpro-backend/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=b2bpro port=5432 sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// gen_random_uuid() defaults on the uuid primary keys need pgcrypto.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		return fmt.Errorf("failed to enable pgcrypto extension: %w", err)
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.CategoryTranslation{},
		&models.SubCategory{},
		&models.SubCategoryTranslation{},
		&models.Company{},
		&models.CompanyTranslation{},
		&models.Product{},
		&models.ProductTranslation{},
		&models.ProductImage{},
		&models.ProductRating{},
		&models.CompanyProduct{},
		&models.Application{},
		&models.Question{},
		&models.BlogCategory{},
		&models.BlogCategoryTranslation{},
		&models.Post{},
		&models.PostTranslation{},
	)
}

// CreateDefaultAdmin seeds the operator account the admin surface is used
// with on a fresh install.
func CreateDefaultAdmin(db *gorm.DB) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminEmail == "" {
		adminEmail = "admin@b2bpro.local"
	}
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	var existing models.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:    adminEmail,
		Password: string(hashed),
		Role:     "admin",
		Name:     "Admin",
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Get().Info("default admin created", zap.String("email", adminEmail))
	return nil
}
