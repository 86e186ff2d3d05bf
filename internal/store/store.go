package store

import (
	"context"

	"gorm.io/gorm"

	"deskbooking-backend/internal/model"
)

// Store defines the interface for all database operations.
type Store interface {
	// DB exposes the underlying gorm handle for wiring code and tests.
	DB() *gorm.DB

	// Directory
	ListAreas(ctx context.Context) ([]AreaSummary, error)
	GetArea(ctx context.Context, areaID int64) (model.Area, error)
	GetRoom(ctx context.Context, roomID int64) (model.Room, error)
	ListRooms(ctx context.Context) ([]RoomDetail, error)
	ListRoomsInArea(ctx context.Context, areaID int64) ([]RoomDetail, error)
	ListDesks(ctx context.Context) ([]DeskDetail, error)
	ListDesksInRoom(ctx context.Context, roomID int64) ([]DeskDetail, error)
	ListDesksInArea(ctx context.Context, areaID int64) ([]DeskDetail, error)
	CountRooms(ctx context.Context, areaID int64) (int64, error)
	CountDesksInArea(ctx context.Context, areaID int64) (int64, error)
	CountDesksInRoom(ctx context.Context, roomID int64) (int64, error)

	// Access control
	ListUsers(ctx context.Context) ([]UserDetail, error)
	GrantAccess(ctx context.Context, userID, areaID int64) (model.UserPermission, error)
	ListAccessibleAreas(ctx context.Context, userID int64) ([]model.Area, error)
	HasAccess(ctx context.Context, userID, areaID int64) (bool, error)

	// Reservation engine
	BookDesk(ctx context.Context, userID, deskID int64, date string) (ReservationDetail, error)
	CancelReservation(ctx context.Context, reservationID int64) (ReservationDetail, error)
	CheckIn(ctx context.Context, reservationID int64) (ReservationDetail, error)
	MarkNoShow(ctx context.Context, reservationID int64) (ReservationDetail, error)
	ApproveReservation(ctx context.Context, reservationID int64) (ReservationDetail, error)
	ListReservations(ctx context.Context, filter ReservationFilter) ([]ReservationDetail, error)
}

// Options holds reservation engine policy switches.
type Options struct {
	// EnforcePermissions gates BookDesk on a UserPermission grant for
	// the desk's area.
	EnforcePermissions bool
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db   *gorm.DB
	opts Options
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB, opts Options) Store {
	return &gormStore{db: db, opts: opts}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}
