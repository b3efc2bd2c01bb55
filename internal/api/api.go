package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/truthlens/truthlens/internal/analyzer"
	"github.com/truthlens/truthlens/internal/model"
)

// API handles HTTP API requests
type API struct {
	log      *logrus.Logger
	analyzer *analyzer.Analyzer
}

// New creates a new API handler
func New(log *logrus.Logger, a *analyzer.Analyzer) *API {
	return &API{log: log, analyzer: a}
}

// Router creates the API router
func (a *API) Router() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	// Routes
	r.Get("/", a.home)
	r.Post("/analyze", a.analyze)

	return r
}

// home handles GET /
func (a *API) home(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "TruthLens backend is running"})
}

// analyze handles POST /analyze
func (a *API) analyze(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	w.Header().Set("X-Request-ID", requestID)

	var req model.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// The caller is a browser surface mid-scrape; it cannot usefully
		// handle a hard error, so answer with the neutral result.
		a.log.WithField("request_id", requestID).WithError(err).Warn("unparseable analysis request")
		respondJSON(w, http.StatusOK, analyzer.Neutral())
		return
	}

	result := a.analyzer.Analyze(r.Context(), &req)

	a.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"mode":        string(req.Mode()),
		"reviews":     len(req.Reviews),
		"trust_score": result.TrustScore,
		"label":       result.SafetyLabel,
	}).Info("analysis complete")

	respondJSON(w, http.StatusOK, result)
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// corsMiddleware adds CORS headers; the browser extension posts cross-origin
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
