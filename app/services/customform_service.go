package services

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/app/repositories"
	"github.com/shashiranjanraj/kashvi-admin/pkg/audit"
	"github.com/shashiranjanraj/kashvi-admin/pkg/auth"
	"github.com/shashiranjanraj/kashvi-admin/pkg/logger"
	"github.com/shashiranjanraj/kashvi-admin/pkg/metrics"
)

// CustomFormService manages custom idol requests and their review lifecycle.
type CustomFormService struct {
	forms *repositories.CustomFormRepository
}

func NewCustomFormService(forms *repositories.CustomFormRepository) *CustomFormService {
	return &CustomFormService{forms: forms}
}

func (s *CustomFormService) All(ctx context.Context) ([]models.CustomForm, error) {
	return s.forms.All()
}

func (s *CustomFormService) Find(ctx context.Context, id uint) (*models.CustomForm, error) {
	form, err := s.forms.Find(id)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return form, nil
}

// UpdateStatus moves a request through its review lifecycle: a new request
// is accepted or rejected, an accepted one follows the shipping stages.
func (s *CustomFormService) UpdateStatus(ctx context.Context, id uint, raw string) (*models.CustomForm, error) {
	target, err := models.ParseCustomFormStatus(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}

	form, err := s.forms.Find(id)
	if err != nil {
		return nil, wrapNotFound(err)
	}

	from := form.Status
	if !from.CanTransition(target) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, from, target)
	}

	form.Status = target
	if err := s.forms.Update(form); err != nil {
		return nil, err
	}

	audit.Record(ctx, "custom_form", form.ID, string(from), string(target), auth.UserID(ctx))
	metrics.RecordTransition("custom_form", string(target))

	logger.WithCtx(ctx).Info("custom form status changed",
		"form_id", form.ID, "from", string(from), "to", string(target))
	return form, nil
}
