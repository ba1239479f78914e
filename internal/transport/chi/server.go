// Package chi wires the HTTP API onto a chi router.
package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hireloop/peoplesearch/internal/domain"
	"github.com/hireloop/peoplesearch/internal/domain/person"
	"github.com/hireloop/peoplesearch/internal/domain/search/filter"
	"github.com/hireloop/peoplesearch/internal/domain/search/query"
	"github.com/hireloop/peoplesearch/internal/domain/search/request"
	healthuc "github.com/hireloop/peoplesearch/internal/usecase/health"
	recorduc "github.com/hireloop/peoplesearch/internal/usecase/record"
	searchuc "github.com/hireloop/peoplesearch/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the search, record, and health usecases over HTTP.
type Server struct {
	search        *searchuc.Service
	records       *recorduc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	records *recorduc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:  search,
		records: records,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, codeInvalidQuery),
		sentinelHandler(domain.ErrInvalidPagination, http.StatusBadRequest, codeInvalidPagination),
		sentinelHandler(domain.ErrInvalidFilter, http.StatusBadRequest, codeInvalidFilter),
		sentinelHandler(domain.ErrUnknownCollection, http.StatusNotFound, codeUnknownCollection),
		sentinelHandler(domain.ErrRecordNotFound, http.StatusNotFound, codeRecordNotFound),
	}
	return s
}

// Register mounts all routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/api/v1/search/users", s.SearchUsers)
	r.Get("/api/v1/search/candidates", s.SearchCandidates)
	r.Get("/api/v1/collections/{collection}/records/{id}", s.GetRecord)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// SearchUsers handles GET /api/v1/search/users.
func (s *Server) SearchUsers(w http.ResponseWriter, r *http.Request) {
	roleID, ok := intParam(w, r, "role_id")
	if !ok {
		return
	}

	f, err := filter.New(roleID, "", nil)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	req, ok := s.searchRequest(w, r, f)
	if !ok {
		return
	}

	page, err := s.search.Search(r.Context(), person.CollectionUsers, &req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
		Results:  usersToResponse(page.Items),
	})
}

// SearchCandidates handles GET /api/v1/search/candidates.
func (s *Server) SearchCandidates(w http.ResponseWriter, r *http.Request) {
	minExp, ok := floatParam(w, r, "min_experience")
	if !ok {
		return
	}

	f, err := filter.New(nil, r.URL.Query().Get("location"), minExp)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	req, ok := s.searchRequest(w, r, f)
	if !ok {
		return
	}

	page, err := s.search.Search(r.Context(), person.CollectionCandidates, &req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
		Results:  candidatesToResponse(page.Items),
	})
}

// GetRecord handles GET /api/v1/collections/{collection}/records/{id}.
func (s *Server) GetRecord(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	id := chi.URLParam(r, "id")

	rec, err := s.records.Get(r.Context(), collection, id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recordToResponse(collection, &rec))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// searchRequest parses q, page, and page_size and builds the domain request.
// On failure it writes the error response and returns false.
func (s *Server) searchRequest(
	w http.ResponseWriter, r *http.Request, f filter.Filter,
) (request.Request, bool) {
	q, err := query.New(r.URL.Query().Get("q"))
	if err != nil {
		s.handleDomainError(w, err)
		return request.Request{}, false
	}

	page, ok := pageParam(w, r, "page")
	if !ok {
		return request.Request{}, false
	}
	pageSize, ok := pageParam(w, r, "page_size")
	if !ok {
		return request.Request{}, false
	}

	req, err := request.New(q, f, page, pageSize)
	if err != nil {
		s.handleDomainError(w, err)
		return request.Request{}, false
	}
	return req, true
}

// pageParam parses an optional pagination parameter. An absent parameter
// reads as 0 and takes the defaults downstream; a supplied 0 is out of
// range and fails here, since request validation cannot tell the two apart.
func pageParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest,
			fmt.Sprintf("%s must be an integer", name))
		return 0, false
	}
	if v == 0 {
		writeError(w, http.StatusBadRequest, codeInvalidPagination,
			fmt.Sprintf("%s must be >= 1", name))
		return 0, false
	}
	return v, true
}

// intParam parses an optional integer query parameter into a pointer.
func intParam(w http.ResponseWriter, r *http.Request, name string) (*int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest,
			fmt.Sprintf("%s must be an integer", name))
		return nil, false
	}
	return &v, true
}

// floatParam parses an optional float query parameter into a pointer.
func floatParam(w http.ResponseWriter, r *http.Request, name string) (*float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest,
			fmt.Sprintf("%s must be a number", name))
		return nil, false
	}
	return &v, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without
// exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidQuery,
		domain.ErrInvalidPagination,
		domain.ErrInvalidFilter,
		domain.ErrUnknownCollection,
		domain.ErrRecordNotFound,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			s.logger.Warn("domain error", zap.Error(err))
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
