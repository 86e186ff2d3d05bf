package model

import "time"

// Reservation status values. confirmed is the initial status for direct
// bookings; pending_approval only appears when an approval workflow sits
// in front. checked_in, no_show and cancelled are terminal.
const (
	ReservationStatusConfirmed       = "confirmed"
	ReservationStatusPendingApproval = "pending_approval"
	ReservationStatusCheckedIn       = "checked_in"
	ReservationStatusNoShow          = "no_show"
	ReservationStatusCancelled       = "cancelled"
)

// DateLayout is the calendar-date wire and storage format.
const DateLayout = "2006-01-02"

// Reservation books one desk for one user on one calendar date.
//
// The slot invariant (at most one non-cancelled reservation per
// (desk_id, date)) is enforced by a partial unique index created in
// internal/db, since gorm tags cannot express the WHERE predicate.
type Reservation struct {
	ID          int64     `gorm:"primaryKey"`
	UserID      int64     `gorm:"index;not null"`
	DeskID      int64     `gorm:"index;not null"`
	Date        string    `gorm:"size:10;not null"`
	Status      string    `gorm:"size:20;not null;default:confirmed"`
	Notes       string    `gorm:"size:500"`
	CreatedAt   time.Time `gorm:"not null"`
	CheckedInAt *time.Time

	// Associations
	User User `gorm:"constraint:OnDelete:CASCADE"`
	Desk Desk `gorm:"constraint:OnDelete:CASCADE"`
}
