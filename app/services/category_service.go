package services

import (
	"context"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/app/repositories"
	"github.com/shashiranjanraj/kashvi-admin/pkg/logger"
	"github.com/shashiranjanraj/kashvi-admin/pkg/validate"
)

type CategoryService struct {
	categories *repositories.CategoryRepository
}

func NewCategoryService(categories *repositories.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// CategoryInput is the create/update payload.
type CategoryInput struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"nullable,max=500"`
}

func (s *CategoryService) All(ctx context.Context) ([]models.Category, error) {
	return s.categories.All()
}

func (s *CategoryService) Find(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.categories.Find(id)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return category, nil
}

func (s *CategoryService) Add(ctx context.Context, in CategoryInput) (*models.Category, map[string]string, error) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return nil, errs, nil
	}

	category := &models.Category{Name: in.Name, Description: in.Description}
	if err := s.categories.Create(category); err != nil {
		return nil, nil, err
	}

	logger.WithCtx(ctx).Info("category created", "category_id", category.ID, "name", category.Name)
	return category, nil, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, in CategoryInput) (*models.Category, map[string]string, error) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return nil, errs, nil
	}

	category, err := s.categories.Find(id)
	if err != nil {
		return nil, nil, wrapNotFound(err)
	}

	category.Name = in.Name
	category.Description = in.Description
	if err := s.categories.Update(category); err != nil {
		return nil, nil, err
	}

	return category, nil, nil
}

// Delete removes a category. Categories that still have idols cannot be
// deleted; the console reassigns products first.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	category, err := s.categories.Find(id)
	if err != nil {
		return wrapNotFound(err)
	}

	n, err := s.categories.IdolCount(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrCategoryInUse
	}

	if err := s.categories.Delete(category); err != nil {
		return err
	}

	logger.WithCtx(ctx).Info("category deleted", "category_id", id)
	return nil
}
