package record

import (
	"strconv"
	"strings"

	"github.com/hireloop/peoplesearch/internal/domain/person"
)

// Hash field names for person records.
const (
	fieldFirstName       = "first_name"
	fieldLastName        = "last_name"
	fieldEmail           = "email"
	fieldPhoneNumber     = "phone_number"
	fieldRoleID          = "role_id"
	fieldLocation        = "location"
	fieldTotalExperience = "total_experience"
	fieldSkills          = "skills"
	fieldCreatedAt       = "created_at"
)

// BuildHashFields converts a record into a flat map for HSET. Used by the
// seeder; the service itself never writes records.
func BuildHashFields(rec *person.Record) map[string]string {
	m := map[string]string{
		fieldFirstName:   rec.FirstName(),
		fieldLastName:    rec.LastName(),
		fieldEmail:       rec.Email(),
		fieldPhoneNumber: rec.PhoneNumber(),
	}
	if rec.RoleID() != 0 {
		m[fieldRoleID] = strconv.Itoa(rec.RoleID())
	}
	if rec.Location() != "" {
		m[fieldLocation] = rec.Location()
	}
	if rec.TotalExperience() != 0 {
		m[fieldTotalExperience] = strconv.FormatFloat(rec.TotalExperience(), 'f', -1, 64)
	}
	if len(rec.Skills()) > 0 {
		m[fieldSkills] = strings.Join(rec.Skills(), ",")
	}
	if rec.CreatedAt() != 0 {
		m[fieldCreatedAt] = strconv.FormatInt(rec.CreatedAt(), 10)
	}
	return m
}

// parseHashFields converts a flat hash map back into a record. Unknown
// fields (password hashes included) are dropped on the floor so they can
// never reach a search projection. Malformed numerics read as zero values.
func parseHashFields(id string, m map[string]string) person.Record {
	roleID, _ := strconv.Atoi(m[fieldRoleID])
	experience, _ := strconv.ParseFloat(m[fieldTotalExperience], 64)
	createdAt, _ := strconv.ParseInt(m[fieldCreatedAt], 10, 64)

	var skills []string
	if raw := m[fieldSkills]; raw != "" {
		skills = strings.Split(raw, ",")
	}

	return person.Reconstruct(
		id,
		m[fieldFirstName],
		m[fieldLastName],
		m[fieldEmail],
		m[fieldPhoneNumber],
		roleID,
		m[fieldLocation],
		experience,
		skills,
		createdAt,
	)
}
