package store

import "deskbooking-backend/internal/model"

// AreaSummary is an Area with its hierarchy rollups. Counts are
// recomputed from the directory tables on every call.
type AreaSummary struct {
	model.Area
	RoomCount int64
	DeskCount int64
}

// RoomDetail is a Room with its parent area name and desk count.
type RoomDetail struct {
	model.Room
	AreaName  string
	DeskCount int64
}

// DeskDetail is a Desk with the names of its room and area.
type DeskDetail struct {
	model.Desk
	RoomName string
	AreaName string
}

// UserDetail is a User with the names of the areas they may access.
type UserDetail struct {
	model.User
	AreaNames []string
}

// ReservationDetail is a Reservation with its denormalized display
// fields resolved through the directory.
type ReservationDetail struct {
	model.Reservation
	UserName       string
	DeskIdentifier string
	AreaName       string
}

// ReservationFilter narrows ListReservations. Zero values mean "any".
// DateFrom/DateTo are inclusive "YYYY-MM-DD" bounds.
type ReservationFilter struct {
	UserID   int64
	DeskID   int64
	AreaID   int64
	DateFrom string
	DateTo   string
}
