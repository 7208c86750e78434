package leave

import (
	"github.com/go-playground/validator/v10"

	"github.com/ruviru/teachmate/core"
)

// Leave types.
const (
	TypeCasual  = "Casual"
	TypeMedical = "Medical"
	TypeDuty    = "Duty"
	TypeShort   = "Short"
)

// Persisted lifecycle statuses. A request under composition has no status:
// it only exists as a NewRecord value and is never stored.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Drafts with a reason shorter than this are offered AI help before
// submission.
const assistThreshold = 30

// Record is a submitted leave request. Immutable once created except for
// Status and ApprovedBy, which change together through the approval actions.
// ApprovedBy is set if and only if Status is Approved.
type Record struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Days       int    `json:"days"`
	Status     string `json:"status"`
	Reason     string `json:"reason"`
	ApprovedBy string `json:"approvedBy,omitempty"`
}

// NewRecord is a leave request under composition.
type NewRecord struct {
	Type      string `json:"type" validate:"required,oneof=Casual Medical Duty Short"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	Days      int    `json:"days" validate:"omitempty,min=1"`
	Reason    string `json:"reason"`
}

func (nr *NewRecord) Validate(validate *validator.Validate) error {
	nr.StartDate = core.CleanString(nr.StartDate)
	nr.Reason = core.CleanString(nr.Reason)
	return validate.Struct(nr)
}

// NeedsAssist reports whether the draft reason is short enough that the
// AI drafting branch should be offered (never forced) before submission.
func NeedsAssist(reason string) bool {
	return len(core.CleanString(reason)) < assistThreshold
}
