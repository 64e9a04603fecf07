package repositories

import (
	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/pkg/orm"
)

type ChargesRepository struct{}

func NewChargesRepository() *ChargesRepository {
	return &ChargesRepository{}
}

// Latest returns the most recently added charges row. Older rows are kept
// as pricing history.
func (r *ChargesRepository) Latest() (*models.Charges, error) {
	var charges models.Charges
	if err := orm.DB().Model(&models.Charges{}).Order("id DESC").First(&charges); err != nil {
		return nil, err
	}
	return &charges, nil
}

func (r *ChargesRepository) Create(charges *models.Charges) error {
	return orm.DB().Create(charges)
}
