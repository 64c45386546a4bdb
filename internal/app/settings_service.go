package app

import (
	"context"

	"healthlog/internal/domain"
)

// SettingsService manages the single user-settings value and the full data
// wipe.
type SettingsService struct {
	settings domain.SettingsRepository
}

// NewSettingsService creates a SettingsService backed by the given repository.
func NewSettingsService(settings domain.SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

// Get returns the current settings, defaults included.
func (s *SettingsService) Get(ctx context.Context) (domain.UserSettings, error) {
	return s.settings.Get(ctx)
}

// Update merges a partial change onto the current settings and persists the
// result. Height is validated with the same rules the record form uses.
func (s *SettingsService) Update(ctx context.Context, updates domain.SettingsUpdate) (domain.UserSettings, error) {
	current, err := s.settings.Get(ctx)
	if err != nil {
		return current, err
	}

	if updates.Height != nil {
		if msg := domain.ValidateHeight(updates.Height); msg != "" {
			return current, &ValidationError{Errors: []string{msg}}
		}
		current.Height = updates.Height
	}
	if updates.Age != nil {
		if *updates.Age < 0 || *updates.Age > 150 {
			return current, &ValidationError{Errors: []string{"age must be between 0 and 150"}}
		}
		current.Age = updates.Age
	}
	if updates.Gender != nil {
		switch *updates.Gender {
		case domain.GenderMale, domain.GenderFemale, domain.GenderOther, "":
			current.Gender = *updates.Gender
		default:
			return current, &ValidationError{Errors: []string{"gender must be male, female or other"}}
		}
	}
	if updates.DisclaimerAccepted != nil {
		current.DisclaimerAccepted = *updates.DisclaimerAccepted
	}

	if err := s.settings.Save(ctx, current); err != nil {
		return current, err
	}
	return current, nil
}

// ClearAll erases all records and settings. Settings read afterwards are the
// defaults.
func (s *SettingsService) ClearAll(ctx context.Context) error {
	return s.settings.ClearAll(ctx)
}
