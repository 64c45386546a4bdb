package adapthttp

import (
	"net/http"

	"healthlog/internal/domain"
)

func (s *Server) handleEvaluationLatest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	eval, err := s.evals.EvaluateLatest(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"evaluation": eval})
}

func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	metric := domain.Metric(r.URL.Query().Get("metric"))
	days := intQuery(r, "days", 7)

	trend, err := s.trends.Analyze(r.Context(), metric, days)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"days": days, "trend": trend})
}
