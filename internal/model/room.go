package model

import "time"

// Room is a subdivision of an Area. Room names are unique within their
// area, not globally. IsBookable marks rooms that can be booked whole
// (meeting rooms); the reservation engine does not act on it.
type Room struct {
	ID         int64     `gorm:"primaryKey"`
	AreaID     int64     `gorm:"uniqueIndex:udx_rooms_area_name;not null"`
	Name       string    `gorm:"uniqueIndex:udx_rooms_area_name;size:100;not null"`
	IsBookable bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	// Associations
	Area  Area   `gorm:"constraint:OnDelete:CASCADE"`
	Desks []Desk `gorm:"foreignKey:RoomID"`
}
