// Package person holds the read-only person record shared by both
// searchable collections.
package person

import "strings"

// Collection names served by the search service.
const (
	CollectionUsers      = "users"
	CollectionCandidates = "candidates"
)

// KnownCollection reports whether name is a collection this service serves.
func KnownCollection(name string) bool {
	return name == CollectionUsers || name == CollectionCandidates
}

// Record is an immutable view of one person document. Text fields feed the
// relevance scorer; role, location and experience are filter-only.
type Record struct {
	id              string
	firstName       string
	lastName        string
	email           string
	phoneNumber     string
	roleID          int
	location        string
	totalExperience float64
	skills          []string
	createdAt       int64
}

// Reconstruct rebuilds a Record from stored fields without validation.
func Reconstruct(
	id, firstName, lastName, email, phoneNumber string,
	roleID int, location string, totalExperience float64,
	skills []string, createdAt int64,
) Record {
	return Record{
		id:              id,
		firstName:       firstName,
		lastName:        lastName,
		email:           email,
		phoneNumber:     phoneNumber,
		roleID:          roleID,
		location:        location,
		totalExperience: totalExperience,
		skills:          skills,
		createdAt:       createdAt,
	}
}

// ID returns the stable record identifier.
func (r *Record) ID() string { return r.id }

// FirstName returns the first name.
func (r *Record) FirstName() string { return r.firstName }

// LastName returns the last name.
func (r *Record) LastName() string { return r.lastName }

// Email returns the email address.
func (r *Record) Email() string { return r.email }

// PhoneNumber returns the phone number as stored, formatting included.
func (r *Record) PhoneNumber() string { return r.phoneNumber }

// RoleID returns the role identifier (0 when unset).
func (r *Record) RoleID() int { return r.roleID }

// Location returns the location (candidates only, may be empty).
func (r *Record) Location() string { return r.location }

// TotalExperience returns total experience in years.
func (r *Record) TotalExperience() float64 { return r.totalExperience }

// Skills returns the skill names (candidates only, may be empty).
func (r *Record) Skills() []string { return r.skills }

// CreatedAt returns the creation time in Unix milliseconds.
func (r *Record) CreatedAt() int64 { return r.createdAt }

// FullName is the synthetic "first last" form, trimmed. It is never stored;
// the scorer derives it on demand for the exact-full-name bonus.
func (r *Record) FullName() string {
	return strings.TrimSpace(r.firstName + " " + r.lastName)
}
