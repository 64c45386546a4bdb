package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"healthlog/internal/app"
	"healthlog/internal/domain"
)

func TestRecordAdd_Validation(t *testing.T) {
	svc := app.NewRecordService(&mockRecordRepo{}, &mockSettingsRepo{})
	now := time.Now()

	tests := []struct {
		name   string
		record domain.HealthRecord
	}{
		{"no measurements", domain.HealthRecord{Timestamp: now.Add(-time.Hour)}},
		{"future timestamp", domain.HealthRecord{Timestamp: now.Add(24 * time.Hour), Weight: f(70)}},
		{"weight out of range", domain.HealthRecord{Timestamp: now.Add(-time.Hour), Weight: f(500)}},
		{"inverted blood pressure", domain.HealthRecord{
			Timestamp:              now.Add(-time.Hour),
			BloodPressureSystolic:  f(80),
			BloodPressureDiastolic: f(120),
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Add(context.Background(), tc.record)
			var verr *app.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(verr.Errors) == 0 {
				t.Fatal("expected at least one message")
			}
		})
	}
}

func TestRecordAdd_DerivesBMI(t *testing.T) {
	var added domain.HealthRecord
	records := &mockRecordRepo{
		addFn: func(_ context.Context, record domain.HealthRecord) error {
			added = record
			return nil
		},
	}
	settings := &mockSettingsRepo{
		getFn: func(_ context.Context) (domain.UserSettings, error) {
			return domain.UserSettings{Height: f(175)}, nil
		},
	}
	svc := app.NewRecordService(records, settings)

	record := domain.HealthRecord{Timestamp: time.Now().Add(-time.Hour), Weight: f(70)}
	if err := svc.Add(context.Background(), record); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if added.BMI == nil {
		t.Fatal("expected BMI to be derived from weight and height")
	}
	want := domain.CalculateBMI(70, 175)
	if *added.BMI != want {
		t.Errorf("bmi = %v; want %v", *added.BMI, want)
	}
}

func TestRecordAdd_NoHeightNoBMI(t *testing.T) {
	var added domain.HealthRecord
	records := &mockRecordRepo{
		addFn: func(_ context.Context, record domain.HealthRecord) error {
			added = record
			return nil
		},
	}
	svc := app.NewRecordService(records, &mockSettingsRepo{})

	record := domain.HealthRecord{Timestamp: time.Now().Add(-time.Hour), Weight: f(70)}
	if err := svc.Add(context.Background(), record); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if added.BMI != nil {
		t.Errorf("bmi = %v; want nil without a stored height", *added.BMI)
	}
}

func TestRecordAdd_RepoError(t *testing.T) {
	records := &mockRecordRepo{
		addFn: func(_ context.Context, _ domain.HealthRecord) error {
			return errors.New("store unavailable")
		},
	}
	svc := app.NewRecordService(records, &mockSettingsRepo{})

	record := domain.HealthRecord{Timestamp: time.Now().Add(-time.Hour), Weight: f(70)}
	if err := svc.Add(context.Background(), record); err == nil {
		t.Fatal("expected error from repo")
	}
}

func TestRecordUpdate_Validation(t *testing.T) {
	svc := app.NewRecordService(&mockRecordRepo{}, &mockSettingsRepo{})
	err := svc.Update(context.Background(), time.Now(), domain.RecordUpdate{Weight: f(500)})
	var verr *app.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestRecordUpdate_NotFound(t *testing.T) {
	records := &mockRecordRepo{
		updateFn: func(_ context.Context, _ time.Time, _ domain.RecordUpdate) error {
			return domain.ErrRecordNotFound
		},
	}
	svc := app.NewRecordService(records, &mockSettingsRepo{})
	err := svc.Update(context.Background(), time.Now(), domain.RecordUpdate{Weight: f(80)})
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestRecordUpdate_RederivesBMI(t *testing.T) {
	var applied domain.RecordUpdate
	records := &mockRecordRepo{
		updateFn: func(_ context.Context, _ time.Time, updates domain.RecordUpdate) error {
			applied = updates
			return nil
		},
	}
	settings := &mockSettingsRepo{
		getFn: func(_ context.Context) (domain.UserSettings, error) {
			return domain.UserSettings{Height: f(175)}, nil
		},
	}
	svc := app.NewRecordService(records, settings)

	if err := svc.Update(context.Background(), time.Now(), domain.RecordUpdate{Weight: f(80)}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if applied.BMI == nil {
		t.Fatal("expected BMI re-derivation with a changed weight")
	}
}

func TestListByPeriod_NegativeDays(t *testing.T) {
	svc := app.NewRecordService(&mockRecordRepo{}, &mockSettingsRepo{})
	if _, err := svc.ListByPeriod(context.Background(), -1); err == nil {
		t.Fatal("expected error for negative days")
	}
}
