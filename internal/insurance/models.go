package insurance

import (
	"strings"

	dErrors "insureco/pkg/domain-errors"
)

// Policy is a contract binding one insured and one type over a validity
// window. Dates travel as ISO strings end to end; the store never parses
// them.
type Policy struct {
	ID        int64   `json:"id"`
	TypeID    int64   `json:"typeId"`
	InsuredID int64   `json:"insuredId"`
	Amount    float64 `json:"amount"`
	Subject   string  `json:"subject"`
	ValidFrom string  `json:"validFrom"`
	ValidTo   string  `json:"validTo"`
}

// EnrichedPolicy is the read-optimized listing shape: the policy plus the
// joined type name and insured name, so the client never chases foreign keys.
type EnrichedPolicy struct {
	Policy
	TypeName  string `json:"typeName"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Query filters and paginates the policy listing.
type Query struct {
	TypeID      int64
	InsuredName string
	Page        int
	Limit       int
}

// ListResult pairs one page of policies with the page count for the same
// filter.
type ListResult struct {
	Data       []EnrichedPolicy `json:"data"`
	TotalPages int              `json:"totalPages"`
}

// UpsertRequest carries the full policy record for create and update.
type UpsertRequest struct {
	TypeID    int64   `json:"typeId"`
	InsuredID int64   `json:"insuredId"`
	Amount    float64 `json:"amount"`
	Subject   string  `json:"subject"`
	ValidFrom string  `json:"validFrom"`
	ValidTo   string  `json:"validTo"`
}

func (r *UpsertRequest) Normalize() {
	if r == nil {
		return
	}
	r.Subject = strings.TrimSpace(r.Subject)
	r.ValidFrom = strings.TrimSpace(r.ValidFrom)
	r.ValidTo = strings.TrimSpace(r.ValidTo)
}

func (r *UpsertRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.TypeID <= 0 {
		return dErrors.New(dErrors.CodeValidation, "typeId is required")
	}
	if r.InsuredID <= 0 {
		return dErrors.New(dErrors.CodeValidation, "insuredId is required")
	}
	if r.Amount <= 0 {
		return dErrors.New(dErrors.CodeValidation, "amount must be a positive number")
	}
	if r.Subject == "" {
		return dErrors.New(dErrors.CodeValidation, "subject is required")
	}
	if r.ValidFrom == "" {
		return dErrors.New(dErrors.CodeValidation, "validFrom is required")
	}
	if r.ValidTo == "" {
		return dErrors.New(dErrors.CodeValidation, "validTo is required")
	}
	return nil
}
