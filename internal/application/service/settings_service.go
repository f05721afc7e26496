package service

import (
	"context"
	"strings"

	"github.com/rgusain/tarazu-api/internal/domain/entity"
	"github.com/rgusain/tarazu-api/internal/domain/repository"
	"github.com/rgusain/tarazu-api/pkg/apperror"
)

// SettingsService manages the single store settings row
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// UpdateSettingsInput represents input for updating store settings
type UpdateSettingsInput struct {
	SiteName  *string
	QRCodeURL *string
	Currency  *string
	Language  *string
}

// GetSettings returns the store settings
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.StoreSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, apperror.NewNotFoundError("Settings")
	}
	return settings, nil
}

// UpdateSettings updates the store settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.StoreSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if input.SiteName != nil {
		name := strings.TrimSpace(*input.SiteName)
		if name == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "site_name", Message: "Site name is required"},
			})
		}
		settings.SiteName = name
	}
	if input.QRCodeURL != nil {
		if *input.QRCodeURL == "" {
			settings.QRCodeURL = nil
		} else {
			settings.QRCodeURL = input.QRCodeURL
		}
	}
	if input.Currency != nil && *input.Currency != "" {
		settings.Currency = *input.Currency
	}
	if input.Language != nil && *input.Language != "" {
		settings.Language = *input.Language
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
