// Package leads validates and forwards the public lead-capture forms.
package leads

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/validation"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/logging"
)

type Submitter interface {
	SubmitAmbassadorForm(ctx context.Context, form domain.AmbassadorApplication) error
	SubmitUniversityPartnership(ctx context.Context, form domain.PartnershipRequest) error
}

// ValidationError lists every failing field by its JSON name.
type ValidationError = validation.Error

type Service struct {
	backend  Submitter
	validate *validator.Validate
	logger   *logging.Logger
}

func NewService(backend Submitter, logger *logging.Logger) *Service {
	return &Service{backend: backend, validate: validation.New(), logger: logger}
}

func (s *Service) SubmitAmbassador(ctx context.Context, form domain.AmbassadorApplication) error {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Phone = strings.TrimSpace(form.Phone)
	form.CountryCode = strings.TrimSpace(form.CountryCode)

	if err := s.check(form, form.CountryCode, form.Phone); err != nil {
		return err
	}
	form.Phone = FormatPhone(form.CountryCode, form.Phone)

	if err := s.backend.SubmitAmbassadorForm(ctx, form); err != nil {
		s.logger.Error(ctx, "ambassador form submission failed", zap.Error(err))
		return fmt.Errorf("submit ambassador form: %w", err)
	}
	s.logger.Info(ctx, "ambassador form submitted", zap.String("university", form.University))
	return nil
}

func (s *Service) SubmitPartnership(ctx context.Context, form domain.PartnershipRequest) error {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Phone = strings.TrimSpace(form.Phone)
	form.CountryCode = strings.TrimSpace(form.CountryCode)
	form.Website = strings.TrimSpace(form.Website)

	if err := s.check(form, form.CountryCode, form.Phone); err != nil {
		return err
	}
	form.Phone = FormatPhone(form.CountryCode, form.Phone)

	if err := s.backend.SubmitUniversityPartnership(ctx, form); err != nil {
		s.logger.Error(ctx, "partnership request submission failed", zap.Error(err))
		return fmt.Errorf("submit partnership request: %w", err)
	}
	s.logger.Info(ctx, "partnership request submitted", zap.String("university", form.University))
	return nil
}

func (s *Service) check(form any, code, phone string) error {
	fields, err := validation.Fields(s.validate, form)
	if err != nil {
		return fmt.Errorf("validate form: %w", err)
	}
	if _, bad := fields["phone"]; !bad && phone != "" {
		if problem := phoneProblem(code, phone); problem != "" {
			fields["phone"] = problem
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
