package insured

import (
	"strings"

	dErrors "insureco/pkg/domain-errors"
	"insureco/pkg/email"
)

// Insured is a person covered by one or more policies. Email is unique
// across all insureds.
type Insured struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// Filter narrows List results. Empty fields match everything.
type Filter struct {
	FirstName string
	LastName  string
}

// UpsertRequest carries the full record for both create and update; updates
// are full replaces, never partial patches.
type UpsertRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

func (r *UpsertRequest) Normalize() {
	if r == nil {
		return
	}
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Street = strings.TrimSpace(r.Street)
	r.City = strings.TrimSpace(r.City)
	r.PostalCode = strings.TrimSpace(r.PostalCode)
	r.Email = email.Normalize(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
}

func (r *UpsertRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}

	required := []struct {
		field string
		value string
	}{
		{"firstName", r.FirstName},
		{"lastName", r.LastName},
		{"street", r.Street},
		{"city", r.City},
		{"postalCode", r.PostalCode},
		{"email", r.Email},
		{"phone", r.Phone},
	}
	for _, f := range required {
		if f.value == "" {
			return dErrors.New(dErrors.CodeValidation, f.field+" is required")
		}
	}

	if !email.Valid(r.Email) {
		return dErrors.New(dErrors.CodeValidation, "email is invalid")
	}
	return nil
}
