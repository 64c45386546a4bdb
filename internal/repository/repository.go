// Package repository implements record and settings persistence over the
// opaque key-value store port.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"healthlog/internal/domain"
)

// Slot keys in the underlying store.
const (
	recordsKey  = "health-records"
	settingsKey = "user-settings"
)

// Repository owns the persisted record collection and the single settings
// value. Every mutation reads the whole collection, applies the change and
// writes the whole collection back; the store holds one JSON document per
// slot. Single-writer by assumption, not safe for concurrent mutators.
type Repository struct {
	store domain.Store
	log   *slog.Logger
	now   func() time.Time
}

// Option configures a Repository.
type Option func(*Repository)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) { r.now = now }
}

// New creates a Repository over the given store.
func New(store domain.Store, log *slog.Logger, opts ...Option) *Repository {
	r := &Repository{store: store, log: log, now: time.Now}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Ensure interfaces are met.
var _ domain.RecordRepository = (*Repository)(nil)
var _ domain.SettingsRepository = (*Repository)(nil)

// load reads and decodes the full record collection. A missing slot or an
// unreadable payload degrades to an empty collection; the failure is logged
// as recoverable, never returned.
func (r *Repository) load(ctx context.Context) []domain.HealthRecord {
	raw, ok, err := r.store.Get(ctx, recordsKey)
	if err != nil {
		r.log.Warn("reading health records failed, starting empty", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	var records []domain.HealthRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		r.log.Warn("stored health records are unreadable, starting empty", "error", err)
		return nil
	}
	return records
}

// save sorts and writes the full collection back to its slot.
func (r *Repository) save(ctx context.Context, records []domain.HealthRecord) error {
	sortByTimestampDesc(records)
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode health records: %w", err)
	}
	if err := r.store.Set(ctx, recordsKey, string(raw)); err != nil {
		return fmt.Errorf("write health records: %w", err)
	}
	return nil
}

func sortByTimestampDesc(records []domain.HealthRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
}

// List returns every record, newest first.
func (r *Repository) List(ctx context.Context) ([]domain.HealthRecord, error) {
	records := r.load(ctx)
	sortByTimestampDesc(records)
	return records, nil
}

// ListByPeriod returns the records from the trailing window of calendar days,
// newest first. days == 0 means all time.
func (r *Repository) ListByPeriod(ctx context.Context, days int) ([]domain.HealthRecord, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if days == 0 {
		return records, nil
	}
	cutoff := r.now().AddDate(0, 0, -days)
	filtered := make([]domain.HealthRecord, 0, len(records))
	for _, rec := range records {
		if !rec.Timestamp.Before(cutoff) {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

// Latest returns the newest record, or nil when the collection is empty.
func (r *Repository) Latest(ctx context.Context) (*domain.HealthRecord, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// Add appends a record to the collection. CreatedAt and UpdatedAt are always
// stamped here regardless of what the caller supplied.
func (r *Repository) Add(ctx context.Context, record domain.HealthRecord) error {
	records := r.load(ctx)
	now := r.now()
	record.CreatedAt = now
	record.UpdatedAt = now
	records = append(records, record)
	return r.save(ctx, records)
}

// Update merges a partial update onto the record with the exact timestamp.
// Timestamp and CreatedAt are immutable; UpdatedAt is stamped. Returns
// domain.ErrRecordNotFound, with no side effects, when no record matches.
func (r *Repository) Update(ctx context.Context, timestamp time.Time, updates domain.RecordUpdate) error {
	records := r.load(ctx)
	idx := -1
	for i := range records {
		if records[i].Timestamp.Equal(timestamp) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.ErrRecordNotFound
	}

	rec := &records[idx]
	if updates.Weight != nil {
		rec.Weight = updates.Weight
	}
	if updates.BMI != nil {
		rec.BMI = updates.BMI
	}
	if updates.BloodPressureSystolic != nil {
		rec.BloodPressureSystolic = updates.BloodPressureSystolic
	}
	if updates.BloodPressureDiastolic != nil {
		rec.BloodPressureDiastolic = updates.BloodPressureDiastolic
	}
	if updates.HeartRate != nil {
		rec.HeartRate = updates.HeartRate
	}
	if updates.Temperature != nil {
		rec.Temperature = updates.Temperature
	}
	if updates.BloodGlucose != nil {
		rec.BloodGlucose = updates.BloodGlucose
	}
	rec.UpdatedAt = r.now()

	return r.save(ctx, records)
}

// Delete removes the record with the exact timestamp. Deleting a timestamp
// that is not present is not an error.
func (r *Repository) Delete(ctx context.Context, timestamp time.Time) error {
	records := r.load(ctx)
	kept := records[:0]
	for _, rec := range records {
		if !rec.Timestamp.Equal(timestamp) {
			kept = append(kept, rec)
		}
	}
	return r.save(ctx, kept)
}

// Get returns the current settings, or the defaults when nothing has been
// saved yet or the stored payload is unreadable.
func (r *Repository) Get(ctx context.Context) (domain.UserSettings, error) {
	raw, ok, err := r.store.Get(ctx, settingsKey)
	if err != nil {
		r.log.Warn("reading settings failed, using defaults", "error", err)
		return domain.DefaultSettings(), nil
	}
	if !ok {
		return domain.DefaultSettings(), nil
	}
	var settings domain.UserSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		r.log.Warn("stored settings are unreadable, using defaults", "error", err)
		return domain.DefaultSettings(), nil
	}
	return settings, nil
}

// Save replaces the settings value.
func (r *Repository) Save(ctx context.Context, settings domain.UserSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := r.store.Set(ctx, settingsKey, string(raw)); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// ClearAll erases both the record collection and the settings. A failure on
// either slot reports the whole operation as failed.
func (r *Repository) ClearAll(ctx context.Context) error {
	if err := r.store.Delete(ctx, recordsKey); err != nil {
		return fmt.Errorf("clear health records: %w", err)
	}
	if err := r.store.Delete(ctx, settingsKey); err != nil {
		return fmt.Errorf("clear settings: %w", err)
	}
	return nil
}
