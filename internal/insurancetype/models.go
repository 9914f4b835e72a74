package insurancetype

import (
	"strings"

	dErrors "insureco/pkg/domain-errors"
)

// InsuranceType is a named category of policy. PolicyCount is derived at
// query time from the policies referencing the type; it is never stored.
type InsuranceType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PolicyCount int64  `json:"policyCount"`
}

// UpsertRequest carries the type name for create and update.
type UpsertRequest struct {
	Name string `json:"name"`
}

func (r *UpsertRequest) Normalize() {
	if r == nil {
		return
	}
	r.Name = strings.TrimSpace(r.Name)
}

func (r *UpsertRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	return nil
}
