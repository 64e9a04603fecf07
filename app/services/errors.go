package services

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors controllers map onto HTTP status codes.
var (
	ErrNotFound           = errors.New("record not found")
	ErrUnknownStatus      = errors.New("unknown status")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrCategoryInUse      = errors.New("category still has idols")
)

// wrapNotFound converts the ORM's not-found error into the service-level one.
func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
