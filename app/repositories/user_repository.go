package repositories

import (
	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/pkg/orm"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) All() ([]models.User, error) {
	users := []models.User{}
	err := orm.DB().Model(&models.User{}).Order("id ASC").Get(&users)
	return users, err
}

// Count reports the number of registered accounts for the dashboard.
func (r *UserRepository) Count() (int64, error) {
	var n int64
	err := orm.DB().Model(&models.User{}).Count(&n)
	return n, err
}

func (r *UserRepository) Find(id uint) (*models.User, error) {
	var user models.User
	if err := orm.DB().Preload("Addresses").Where("id = ?", id).First(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := orm.DB().Where("email = ?", email).First(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(user *models.User) error {
	return orm.DB().Create(user)
}

func (r *UserRepository) Update(user *models.User) error {
	return orm.DB().Save(user)
}

func (r *UserRepository) Delete(user *models.User) error {
	return orm.DB().Delete(user)
}

func (r *UserRepository) AddAddress(address *models.Address) error {
	return orm.DB().Create(address)
}

func (r *UserRepository) Addresses(userID uint) ([]models.Address, error) {
	addresses := []models.Address{}
	err := orm.DB().Model(&models.Address{}).Where("user_id = ?", userID).
		Order("is_default DESC, id ASC").Get(&addresses)
	return addresses, err
}
