package model

import "time"

// Area represents a bookable zone of the office, e.g. a floor wing.
type Area struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:100;not null"`
	MapSVG    *string   `gorm:"size:255"` // floor plan file reference, optional
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Associations
	Rooms []Room `gorm:"foreignKey:AreaID"`
}
