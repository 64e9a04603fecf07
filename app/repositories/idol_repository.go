package repositories

import (
	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/pkg/orm"
)

type IdolRepository struct{}

func NewIdolRepository() *IdolRepository {
	return &IdolRepository{}
}

func (r *IdolRepository) All() ([]models.Idol, error) {
	idols := []models.Idol{}
	err := orm.DB().Model(&models.Idol{}).Preload("Category").Order("id DESC").Get(&idols)
	return idols, err
}

// Paginated returns one page of idols for large catalogs.
func (r *IdolRepository) Paginated(page, limit int) ([]models.Idol, orm.Pagination, error) {
	idols := []models.Idol{}
	p, err := orm.DB().Model(&models.Idol{}).Preload("Category").Order("id DESC").
		GetWithPagination(&idols, page, limit)
	return idols, p, err
}

func (r *IdolRepository) Find(id uint) (*models.Idol, error) {
	var idol models.Idol
	if err := orm.DB().Preload("Category").Where("id = ?", id).First(&idol); err != nil {
		return nil, err
	}
	return &idol, nil
}

func (r *IdolRepository) ByCategory(categoryID uint) ([]models.Idol, error) {
	idols := []models.Idol{}
	err := orm.DB().Model(&models.Idol{}).Where("category_id = ?", categoryID).
		Order("id DESC").Get(&idols)
	return idols, err
}

func (r *IdolRepository) Create(idol *models.Idol) error {
	return orm.DB().Create(idol)
}

func (r *IdolRepository) Update(idol *models.Idol) error {
	return orm.DB().Save(idol)
}

func (r *IdolRepository) Delete(idol *models.Idol) error {
	return orm.DB().Delete(idol)
}

// Count reports the number of catalog products for the dashboard.
func (r *IdolRepository) Count() (int64, error) {
	var n int64
	err := orm.DB().Model(&models.Idol{}).Count(&n)
	return n, err
}

// TotalStock sums stock across the catalog for the dashboard inventory count.
func (r *IdolRepository) TotalStock() (int64, error) {
	type row struct{ Total int64 }
	var out row
	err := orm.DB().Model(&models.Idol{}).
		Select("COALESCE(SUM(stock), 0) AS total").Scan(&out)
	return out.Total, err
}
