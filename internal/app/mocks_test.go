package app_test

import (
	"context"
	"time"

	"healthlog/internal/domain"
)

type mockRecordRepo struct {
	listFn   func(ctx context.Context) ([]domain.HealthRecord, error)
	listByFn func(ctx context.Context, days int) ([]domain.HealthRecord, error)
	latestFn func(ctx context.Context) (*domain.HealthRecord, error)
	addFn    func(ctx context.Context, record domain.HealthRecord) error
	updateFn func(ctx context.Context, ts time.Time, updates domain.RecordUpdate) error
	deleteFn func(ctx context.Context, ts time.Time) error
}

func (m *mockRecordRepo) List(ctx context.Context) ([]domain.HealthRecord, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockRecordRepo) ListByPeriod(ctx context.Context, days int) ([]domain.HealthRecord, error) {
	if m.listByFn != nil {
		return m.listByFn(ctx, days)
	}
	return nil, nil
}

func (m *mockRecordRepo) Latest(ctx context.Context) (*domain.HealthRecord, error) {
	if m.latestFn != nil {
		return m.latestFn(ctx)
	}
	return nil, nil
}

func (m *mockRecordRepo) Add(ctx context.Context, record domain.HealthRecord) error {
	if m.addFn != nil {
		return m.addFn(ctx, record)
	}
	return nil
}

func (m *mockRecordRepo) Update(ctx context.Context, ts time.Time, updates domain.RecordUpdate) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, ts, updates)
	}
	return nil
}

func (m *mockRecordRepo) Delete(ctx context.Context, ts time.Time) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, ts)
	}
	return nil
}

type mockSettingsRepo struct {
	getFn   func(ctx context.Context) (domain.UserSettings, error)
	saveFn  func(ctx context.Context, settings domain.UserSettings) error
	clearFn func(ctx context.Context) error
}

func (m *mockSettingsRepo) Get(ctx context.Context) (domain.UserSettings, error) {
	if m.getFn != nil {
		return m.getFn(ctx)
	}
	return domain.DefaultSettings(), nil
}

func (m *mockSettingsRepo) Save(ctx context.Context, settings domain.UserSettings) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, settings)
	}
	return nil
}

func (m *mockSettingsRepo) ClearAll(ctx context.Context) error {
	if m.clearFn != nil {
		return m.clearFn(ctx)
	}
	return nil
}

func f(v float64) *float64 { return &v }
