package models

import (
	"time"
)

// Status values keep the wire format the frontend already persists.
const (
	StatusPending   = "pendente"
	StatusConfirmed = "confirmada"
	StatusCancelled = "cancelada"
	StatusExpired   = "vencida"
	StatusVisit     = "visita"
)

// Cession type: paid rental vs free cession.
const (
	TypePaid = "paga"
	TypeFree = "gratuita"
)

// Internal approval annotation. Orthogonal to Status: it may change in any
// booking state.
const (
	ApprovalPending       = "pendente"
	ApprovalAuthorized    = "autorizado"
	ApprovalFreeCession   = "cedencia_gratuita"
	ApprovalNotAuthorized = "nao_autorizado"
	ApprovalDM            = "dm"
)

// AllStatuses drives zero-filled status buckets in the KPI aggregator.
var AllStatuses = []string{StatusPending, StatusConfirmed, StatusCancelled, StatusExpired, StatusVisit}

type Booking struct {
	// Sequential decimal string assigned by the store ("1", "2", ...).
	ID string `gorm:"primaryKey;size:36" json:"id"`

	SpaceID    string `gorm:"index;size:36;column:space_id" json:"space_id"`
	CustomerID string `gorm:"index;size:36;column:customer_id" json:"customer_id"`

	StartDate     time.Time  `gorm:"column:start_date;index" json:"start_date"`
	EndDate       time.Time  `gorm:"column:end_date" json:"end_date"`
	SetupDate     *time.Time `gorm:"column:setup_date" json:"setup_date,omitempty"`
	BreakdownDate *time.Time `gorm:"column:breakdown_date" json:"breakdown_date,omitempty"`

	// Internal manager, referenced by name only (not a foreign key).
	Responsible string `gorm:"size:255" json:"responsible"`

	EventName      string `gorm:"size:255;column:event_name" json:"event_name"`
	Description    string `gorm:"type:text" json:"description,omitempty"`
	SituationNotes string `gorm:"type:text;column:situation_notes" json:"situation_notes,omitempty"`

	Status         string `gorm:"size:32;index" json:"status"`
	Type           string `gorm:"size:32" json:"type"`
	ApprovalStatus string `gorm:"size:32;column:approval_status" json:"approval_status,omitempty"`

	ContactName  string `gorm:"size:255;column:contact_name" json:"contact_name,omitempty"`
	ContactEmail string `gorm:"size:255;column:contact_email" json:"contact_email,omitempty"`

	Price     float64 `json:"price"`
	Attendees int     `json:"attendees"`

	// No soft delete: the id allocator reads the live collection and
	// reissues max+1, so a deleted row must actually release its id.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

// IsVisit reports whether this booking is a technical/informational visit
// rather than an event reservation ("processo").
func (b *Booking) IsVisit() bool { return b.Status == StatusVisit }

// IsTerminal reports whether the booking sits in a state the expiry sweep
// must never touch.
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusExpired
}
