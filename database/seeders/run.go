// Package seeders fills a fresh database with development data: an admin
// account, the standard categories, default charges and a few idols.
package seeders

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/pkg/auth"
	"github.com/shashiranjanraj/kashvi-admin/pkg/logger"
)

// Run executes all seeders. Safe to call more than once: existing rows are
// left alone.
func Run(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := seedCharges(db); err != nil {
		return fmt.Errorf("seed charges: %w", err)
	}
	if err := seedCatalog(db); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}

func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword("admin123")
	if err != nil {
		return err
	}

	admin := models.User{
		FirstName: "Kashvi",
		LastName:  "Admin",
		Email:     "admin@kashvi.app",
		Phone:     "9999999999",
		Password:  hash,
		Role:      models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Info("seeded admin account", "email", admin.Email)
	return nil
}

func seedCharges(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Charges{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&models.Charges{TaxRate: 18, DeliveryCharge: 250}).Error
}

func seedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{Name: "Ganesha", Description: "Idols of Lord Ganesha in various poses"},
		{Name: "Lakshmi", Description: "Idols of Goddess Lakshmi"},
		{Name: "Krishna", Description: "Idols of Lord Krishna"},
		{Name: "Durga", Description: "Idols of Goddess Durga"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	idols := []models.Idol{
		{
			Title:       "Eco-friendly Ganesha",
			Description: "Hand-crafted clay Ganesha idol, painted with natural colors.",
			Size:        1.5,
			Price:       2499,
			Stock:       20,
			CategoryID:  categories[0].ID,
		},
		{
			Title:       "Dancing Ganesha",
			Description: "Ganesha in a dancing pose with detailed ornamentation.",
			Size:        2,
			Price:       4999,
			Stock:       8,
			CategoryID:  categories[0].ID,
		},
		{
			Title:       "Lakshmi on Lotus",
			Description: "Goddess Lakshmi seated on a lotus, gold finish.",
			Size:        1,
			Price:       1999,
			Stock:       15,
			CategoryID:  categories[1].ID,
		},
	}
	if err := db.Create(&idols).Error; err != nil {
		return err
	}

	logger.Info("seeded catalog", "categories", len(categories), "idols", len(idols))
	return nil
}
