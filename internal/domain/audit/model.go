package audit

import (
	"time"

	"github.com/google/uuid"
)

// Action types observed in the trail. The action type is an open string,
// not a closed enum; these are the values the built-in workflows write.
const (
	ActionRegistration     = "Registration"
	ActionUpdate           = "Update"
	ActionDeletion         = "Deletion"
	ActionConsultation     = "Consultation"
	ActionPayment          = "Payment"
	ActionStockEntry       = "Stock Entry"
	ActionDispense         = "Dispense"
	ActionLogin            = "Login"
	ActionFailedLogin      = "Failed Login"
	ActionUserRegistration = "User Registration"
)

// Entry is one immutable audit trail record: who did what to which subject
// and when. Entries are never updated or deleted.
type Entry struct {
	ID         uuid.UUID `db:"id" json:"id"`
	UserName   string    `db:"user_name" json:"user_name"`
	UserRole   string    `db:"user_role" json:"user_role"`
	ActionType string    `db:"action_type" json:"action_type"`
	Subject    string    `db:"subject" json:"subject"`
	Details    string    `db:"details" json:"details"`
	Timestamp  time.Time `db:"action_timestamp" json:"action_timestamp"`
}
