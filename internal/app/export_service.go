package app

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"

	"healthlog/internal/domain"
)

// ExportService renders the full record collection as CSV for download.
type ExportService struct {
	records domain.RecordRepository
}

// NewExportService creates an ExportService backed by the given repository.
func NewExportService(records domain.RecordRepository) *ExportService {
	return &ExportService{records: records}
}

var csvHeader = []string{
	"timestamp",
	"weight",
	"bmi",
	"bloodPressureSystolic",
	"bloodPressureDiastolic",
	"heartRate",
	"temperature",
	"bloodGlucose",
	"createdAt",
	"updatedAt",
}

// CSV returns the whole collection, newest first, one row per record with
// empty cells for absent measurements.
func (s *ExportService) CSV(ctx context.Context) ([]byte, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, rec := range records {
		row := []string{
			rec.Timestamp.Format(timestampLayout),
			csvCell(rec.Weight),
			csvCell(rec.BMI),
			csvCell(rec.BloodPressureSystolic),
			csvCell(rec.BloodPressureDiastolic),
			csvCell(rec.HeartRate),
			csvCell(rec.Temperature),
			csvCell(rec.BloodGlucose),
			rec.CreatedAt.Format(timestampLayout),
			rec.UpdatedAt.Format(timestampLayout),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func csvCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
