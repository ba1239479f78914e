package chi

import (
	"github.com/hireloop/peoplesearch/internal/domain/person"
)

// errorResponse is the uniform error body for every non-2xx reply.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes returned to clients.
const (
	codeBadRequest        = "bad_request"
	codeInvalidQuery      = "invalid_query"
	codeInvalidPagination = "invalid_pagination"
	codeInvalidFilter     = "invalid_filter"
	codeUnknownCollection = "unknown_collection"
	codeRecordNotFound    = "record_not_found"
	codeUnauthorized      = "unauthorized"
	codeInternalError     = "internal_error"
)

// userResponse is the public projection of a user record. Credential
// fields never appear here.
type userResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	RoleID      int    `json:"role_id"`
	CreatedAt   int64  `json:"created_at"`
}

// candidateResponse extends the user projection with candidate-only fields.
type candidateResponse struct {
	ID              string   `json:"id"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Email           string   `json:"email"`
	PhoneNumber     string   `json:"phone_number"`
	RoleID          int      `json:"role_id"`
	Location        string   `json:"location,omitempty"`
	TotalExperience float64  `json:"total_experience"`
	Skills          []string `json:"skills,omitempty"`
	CreatedAt       int64    `json:"created_at"`
}

// searchResponse is one page of search results.
type searchResponse struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Results  any `json:"results"`
}

// healthResponse mirrors the health usecase report.
type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func userToResponse(rec *person.Record) userResponse {
	return userResponse{
		ID:          rec.ID(),
		FirstName:   rec.FirstName(),
		LastName:    rec.LastName(),
		Email:       rec.Email(),
		PhoneNumber: rec.PhoneNumber(),
		RoleID:      rec.RoleID(),
		CreatedAt:   rec.CreatedAt(),
	}
}

func candidateToResponse(rec *person.Record) candidateResponse {
	return candidateResponse{
		ID:              rec.ID(),
		FirstName:       rec.FirstName(),
		LastName:        rec.LastName(),
		Email:           rec.Email(),
		PhoneNumber:     rec.PhoneNumber(),
		RoleID:          rec.RoleID(),
		Location:        rec.Location(),
		TotalExperience: rec.TotalExperience(),
		Skills:          rec.Skills(),
		CreatedAt:       rec.CreatedAt(),
	}
}

func usersToResponse(recs []person.Record) []userResponse {
	items := make([]userResponse, len(recs))
	for i := range recs {
		items[i] = userToResponse(&recs[i])
	}
	return items
}

func candidatesToResponse(recs []person.Record) []candidateResponse {
	items := make([]candidateResponse, len(recs))
	for i := range recs {
		items[i] = candidateToResponse(&recs[i])
	}
	return items
}

// recordToResponse picks the projection matching the collection.
func recordToResponse(collection string, rec *person.Record) any {
	if collection == person.CollectionCandidates {
		return candidateToResponse(rec)
	}
	return userToResponse(rec)
}
