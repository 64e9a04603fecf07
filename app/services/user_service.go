package services

import (
	"context"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/app/repositories"
	"github.com/shashiranjanraj/kashvi-admin/pkg/logger"
	"github.com/shashiranjanraj/kashvi-admin/pkg/validate"
)

type UserService struct {
	users *repositories.UserRepository
}

func NewUserService(users *repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// AddressInput is the payload of the console's address form. Only the
// second address line is optional.
type AddressInput struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,digits=10"`
	Address1  string `json:"address1" validate:"required,max=255"`
	Address2  string `json:"address2" validate:"nullable,max=255"`
	City      string `json:"city" validate:"required,max=100"`
	State     string `json:"state" validate:"required,max=100"`
	Zip       string `json:"zip" validate:"required,max=10"`
	Country   string `json:"country" validate:"required,max=100"`
	IsDefault bool   `json:"isDefault"`
}

func (s *UserService) All(ctx context.Context) ([]models.User, error) {
	return s.users.All()
}

func (s *UserService) Find(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.Find(id)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	user, err := s.users.Find(id)
	if err != nil {
		return wrapNotFound(err)
	}

	if err := s.users.Delete(user); err != nil {
		return err
	}

	logger.WithCtx(ctx).Info("user deleted", "user_id", id)
	return nil
}

func (s *UserService) AddAddress(ctx context.Context, userID uint, in AddressInput) (*models.Address, map[string]string, error) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return nil, errs, nil
	}

	if _, err := s.users.Find(userID); err != nil {
		return nil, nil, wrapNotFound(err)
	}

	address := &models.Address{
		UserID:    userID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Address1:  in.Address1,
		Address2:  in.Address2,
		City:      in.City,
		State:     in.State,
		Zip:       in.Zip,
		Country:   in.Country,
		IsDefault: in.IsDefault,
	}
	if err := s.users.AddAddress(address); err != nil {
		return nil, nil, err
	}
	return address, nil, nil
}

func (s *UserService) Addresses(ctx context.Context, userID uint) ([]models.Address, error) {
	if _, err := s.users.Find(userID); err != nil {
		return nil, wrapNotFound(err)
	}
	return s.users.Addresses(userID)
}
