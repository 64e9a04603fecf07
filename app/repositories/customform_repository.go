package repositories

import (
	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/pkg/orm"
)

type CustomFormRepository struct{}

func NewCustomFormRepository() *CustomFormRepository {
	return &CustomFormRepository{}
}

func (r *CustomFormRepository) All() ([]models.CustomForm, error) {
	forms := []models.CustomForm{}
	err := orm.DB().Model(&models.CustomForm{}).Preload("User").
		Order("created_at DESC").Get(&forms)
	return forms, err
}

func (r *CustomFormRepository) Find(id uint) (*models.CustomForm, error) {
	var form models.CustomForm
	if err := orm.DB().Preload("User").Where("id = ?", id).First(&form); err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *CustomFormRepository) Create(form *models.CustomForm) error {
	return orm.DB().Create(form)
}

func (r *CustomFormRepository) Update(form *models.CustomForm) error {
	return orm.DB().Save(form)
}
