package model

import "time"

// Desk status values.
const (
	DeskStatusAvailable = "available"
	DeskStatusPermanent = "permanent" // permanently assigned to someone
	DeskStatusDisabled  = "disabled"
)

// Desk is the smallest bookable unit. Identifier is the human-facing
// desk code (e.g. "1.L.12") and is unique across the whole office.
// PosX/PosY are map coordinates; either may be absent independently.
type Desk struct {
	ID         int64  `gorm:"primaryKey"`
	Identifier string `gorm:"uniqueIndex;size:50;not null"`
	Status     string `gorm:"size:20;not null;default:available"`
	PosX       *int
	PosY       *int
	RoomID     int64     `gorm:"index;not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	// Associations
	Room         Room          `gorm:"constraint:OnDelete:CASCADE"`
	Reservations []Reservation `gorm:"foreignKey:DeskID"`
}
