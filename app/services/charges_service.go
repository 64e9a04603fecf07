package services

import (
	"context"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/app/repositories"
	"github.com/shashiranjanraj/kashvi-admin/pkg/logger"
	"github.com/shashiranjanraj/kashvi-admin/pkg/validate"
)

// ChargesService manages the storewide tax rate and delivery charge.
type ChargesService struct {
	charges *repositories.ChargesRepository
}

func NewChargesService(charges *repositories.ChargesRepository) *ChargesService {
	return &ChargesService{charges: charges}
}

// ChargesInput is the payload for setting new charges. TaxRate is a
// percentage; DeliveryCharge is a flat amount in rupees.
type ChargesInput struct {
	TaxRate        float64 `json:"taxRate" validate:"gte=0,lte=100"`
	DeliveryCharge float64 `json:"deliveryCharge" validate:"gte=0"`
}

// Fetch returns the active charges. Before any row is added the store
// operates with zero charges rather than an error.
func (s *ChargesService) Fetch(ctx context.Context) (*models.Charges, error) {
	charges, err := s.charges.Latest()
	if err != nil {
		if wrapNotFound(err) == ErrNotFound {
			return &models.Charges{}, nil
		}
		return nil, err
	}
	return charges, nil
}

// Add appends a new charges row, making it the active one.
func (s *ChargesService) Add(ctx context.Context, in ChargesInput) (*models.Charges, map[string]string, error) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return nil, errs, nil
	}

	charges := &models.Charges{TaxRate: in.TaxRate, DeliveryCharge: in.DeliveryCharge}
	if err := s.charges.Create(charges); err != nil {
		return nil, nil, err
	}

	logger.WithCtx(ctx).Info("charges updated",
		"tax_rate", charges.TaxRate, "delivery_charge", charges.DeliveryCharge)
	return charges, nil, nil
}
