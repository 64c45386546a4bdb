package adapthttp

import (
	"errors"
	"net/http"
	"time"

	"healthlog/internal/domain"
)

func parseTimestampQuery(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("timestamp")
	if raw == "" {
		return time.Time{}, errors.New("timestamp query parameter is required")
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.New("timestamp must be RFC 3339")
	}
	return ts, nil
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		days := intQuery(r, "days", 0)
		items, err := s.records.ListByPeriod(ctx, days)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"days": days, "items": items})

	case http.MethodPost:
		var record domain.HealthRecord
		if err := parseJSON(r, &record); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err := s.records.Add(ctx, record); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"ok": true})

	case http.MethodPut:
		ts, err := parseTimestampQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		var updates domain.RecordUpdate
		if err := parseJSON(r, &updates); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err := s.records.Update(ctx, ts, updates); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})

	case http.MethodDelete:
		ts, err := parseTimestampQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err := s.records.Delete(ctx, ts); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleRecordsLatest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	record, err := s.records.Latest(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"record": record})
}
