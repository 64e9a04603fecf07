package repositories

import (
	"time"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/pkg/cache"
	"github.com/shashiranjanraj/kashvi-admin/pkg/orm"
)

// The category list changes rarely and the console fetches it on every
// catalog screen, so reads go through Redis.
const (
	categoriesCacheKey = "categories:all"
	categoriesCacheTTL = 10 * time.Minute
)

type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) All() ([]models.Category, error) {
	categories := []models.Category{}
	err := orm.DB().Model(&models.Category{}).Order("name ASC").
		Cache(categoriesCacheKey, categoriesCacheTTL, &categories)
	return categories, err
}

func (r *CategoryRepository) Find(id uint) (*models.Category, error) {
	var category models.Category
	if err := orm.DB().Where("id = ?", id).First(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Create(category *models.Category) error {
	if err := orm.DB().Create(category); err != nil {
		return err
	}
	cache.Forget(categoriesCacheKey)
	return nil
}

func (r *CategoryRepository) Update(category *models.Category) error {
	if err := orm.DB().Save(category); err != nil {
		return err
	}
	cache.Forget(categoriesCacheKey)
	return nil
}

func (r *CategoryRepository) Delete(category *models.Category) error {
	if err := orm.DB().Delete(category); err != nil {
		return err
	}
	cache.Forget(categoriesCacheKey)
	return nil
}

// IdolCount reports how many idols reference the category. Used to block
// deleting a category that still has products.
func (r *CategoryRepository) IdolCount(id uint) (int64, error) {
	var n int64
	err := orm.DB().Model(&models.Idol{}).Where("category_id = ?", id).Count(&n)
	return n, err
}
