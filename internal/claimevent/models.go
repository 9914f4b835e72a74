package claimevent

import (
	"strings"

	dErrors "insureco/pkg/domain-errors"
)

// Status tracks a claim event from report to payout.
type Status string

const (
	StatusInProgress  Status = "in progress"
	StatusUnderReview Status = "under review"
	StatusPaidOut     Status = "paid out"
)

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusInProgress, StatusUnderReview, StatusPaidOut:
		return true
	}
	return false
}

// ClaimEvent is a reported incident against an insured.
type ClaimEvent struct {
	ID          int64   `json:"id"`
	InsuredID   int64   `json:"insuredId"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date"`
	Status      Status  `json:"status"`
	Payout      float64 `json:"payout"`
}

// EnrichedClaimEvent adds the insured's name for list views. Events survive
// their insured, so the name fields may be empty.
type EnrichedClaimEvent struct {
	ClaimEvent
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UpsertRequest carries the full claim event record for create and update.
type UpsertRequest struct {
	InsuredID   int64   `json:"insuredId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Status      Status  `json:"status"`
	Payout      float64 `json:"payout"`
}

func (r *UpsertRequest) Normalize() {
	if r == nil {
		return
	}
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Date = strings.TrimSpace(r.Date)
	r.Status = Status(strings.TrimSpace(string(r.Status)))
	if r.Status == "" {
		r.Status = StatusInProgress
	}
}

func (r *UpsertRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.InsuredID <= 0 {
		return dErrors.New(dErrors.CodeValidation, "insuredId is required")
	}
	if r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}
	if r.Date == "" {
		return dErrors.New(dErrors.CodeValidation, "date is required")
	}
	if !r.Status.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "status must be one of 'in progress', 'under review', 'paid out'")
	}
	if r.Payout < 0 {
		return dErrors.New(dErrors.CodeValidation, "payout must not be negative")
	}
	return nil
}
