// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"log/slog"
	"net/http"

	"healthlog/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	records  *app.RecordService
	evals    *app.EvaluationService
	trends   *app.TrendService
	settings *app.SettingsService
	export   *app.ExportService
	authSvc  *app.AuthService

	oidcConfig  OIDCConfig
	disableAuth bool
	webDir      string
	log         *slog.Logger
}

// Services bundles the application services the server routes to.
type Services struct {
	Records  *app.RecordService
	Evals    *app.EvaluationService
	Trends   *app.TrendService
	Settings *app.SettingsService
	Export   *app.ExportService
	Auth     *app.AuthService
}

// New creates a Server wired to the given application services.
func New(svcs Services, oidcConfig OIDCConfig, webDir string, log *slog.Logger) *Server {
	return &Server{
		records:    svcs.Records,
		evals:      svcs.Evals,
		trends:     svcs.Trends,
		settings:   svcs.Settings,
		export:     svcs.Export,
		authSvc:    svcs.Auth,
		oidcConfig: oidcConfig,
		webDir:     webDir,
		log:        log,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	protected := http.NewServeMux()
	protected.HandleFunc("/records", s.handleRecords)
	protected.HandleFunc("/records/latest", s.handleRecordsLatest)
	protected.HandleFunc("/evaluation/latest", s.handleEvaluationLatest)
	protected.HandleFunc("/trends", s.handleTrends)
	protected.HandleFunc("/settings", s.handleSettings)
	protected.HandleFunc("/data", s.handleData)
	protected.HandleFunc("/export/csv", s.handleExportCSV)

	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	api.HandleFunc("/config", s.handleConfig)
	api.HandleFunc("/auth/setup", s.handleSetupOwner)
	api.HandleFunc("/auth/login", s.handleLogin)
	api.HandleFunc("/auth/logout", s.handleLogout)
	api.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback)
	api.Handle("/", s.authMiddleware(protected))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	if s.webDir != "" {
		root.Handle("/", spaFromDisk(s.webDir))
	}

	return s.loggingMiddleware(withNoCache(root))
}
