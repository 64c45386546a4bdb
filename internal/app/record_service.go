// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"healthlog/internal/domain"
)

// timestampLayout is the wire format for record timestamps.
const timestampLayout = time.RFC3339

// ValidationError carries the full list of input violations for a rejected
// record. Messages are meant to be surfaced to the user verbatim.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "invalid record: " + strings.Join(e.Errors, "; ")
}

// RecordService encapsulates the record-management use cases: validation,
// BMI derivation and CRUD over the repository.
type RecordService struct {
	records  domain.RecordRepository
	settings domain.SettingsRepository
	now      func() time.Time
}

// NewRecordService creates a RecordService backed by the given repositories.
func NewRecordService(records domain.RecordRepository, settings domain.SettingsRepository) *RecordService {
	return &RecordService{records: records, settings: settings, now: time.Now}
}

// Add validates a candidate record and persists it. When the user's height is
// known and the record carries a weight, the BMI is derived and stored on the
// record at save time.
func (s *RecordService) Add(ctx context.Context, record domain.HealthRecord) error {
	if result := domain.ValidateRecord(record, s.now()); !result.IsValid {
		return &ValidationError{Errors: result.Errors}
	}

	if record.Weight != nil {
		settings, err := s.settings.Get(ctx)
		if err == nil && settings.Height != nil && *settings.Height > 0 {
			bmi := domain.CalculateBMI(*record.Weight, *settings.Height)
			record.BMI = &bmi
		}
	}

	return s.records.Add(ctx, record)
}

// Update validates a partial update and merges it onto the record with the
// given timestamp. A changed weight re-derives the stored BMI when height is
// known. Returns domain.ErrRecordNotFound when no record matches.
func (s *RecordService) Update(ctx context.Context, timestamp time.Time, updates domain.RecordUpdate) error {
	if result := domain.ValidateUpdate(updates); !result.IsValid {
		return &ValidationError{Errors: result.Errors}
	}

	if updates.Weight != nil {
		settings, err := s.settings.Get(ctx)
		if err == nil && settings.Height != nil && *settings.Height > 0 {
			bmi := domain.CalculateBMI(*updates.Weight, *settings.Height)
			updates.BMI = &bmi
		}
	}

	return s.records.Update(ctx, timestamp, updates)
}

// Delete removes the record with the given timestamp. Deleting an absent
// timestamp succeeds.
func (s *RecordService) Delete(ctx context.Context, timestamp time.Time) error {
	return s.records.Delete(ctx, timestamp)
}

// List returns every record, newest first.
func (s *RecordService) List(ctx context.Context) ([]domain.HealthRecord, error) {
	return s.records.List(ctx)
}

// ListByPeriod returns the records from the trailing window of calendar days;
// 0 days means all time.
func (s *RecordService) ListByPeriod(ctx context.Context, days int) ([]domain.HealthRecord, error) {
	if days < 0 {
		return nil, errors.New("days must be >= 0")
	}
	return s.records.ListByPeriod(ctx, days)
}

// Latest returns the newest record, or nil when there are no records.
func (s *RecordService) Latest(ctx context.Context) (*domain.HealthRecord, error) {
	return s.records.Latest(ctx)
}
