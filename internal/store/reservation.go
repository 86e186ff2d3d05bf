package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"deskbooking-backend/internal/apperr"
	"deskbooking-backend/internal/model"
)

// BookDesk reserves a desk for a user on a calendar date. Validation
// failures are domain errors; slot arbitration is left entirely to the
// partial unique index, so two concurrent calls for the same (desk,
// date) resolve to exactly one success and one Conflict.
func (s *gormStore) BookDesk(ctx context.Context, userID, deskID int64, date string) (ReservationDetail, error) {
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return ReservationDetail{}, apperr.InvalidArgument("Invalid date format. Use YYYY-MM-DD")
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return ReservationDetail{}, err
	}

	var desk model.Desk
	err = s.db.WithContext(ctx).Preload("Room").Preload("Room.Area").First(&desk, deskID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ReservationDetail{}, apperr.NotFound("Desk with id %d not found", deskID)
	}
	if err != nil {
		return ReservationDetail{}, apperr.Internal(err, "failed to retrieve desk %d", deskID)
	}

	if s.opts.EnforcePermissions {
		ok, err := s.HasAccess(ctx, userID, desk.Room.AreaID)
		if err != nil {
			return ReservationDetail{}, err
		}
		if !ok {
			return ReservationDetail{}, apperr.PermissionDenied(
				"User %s has no access to area %s", user.Username, desk.Room.Area.Name)
		}
	}

	// Availability gate. Surfaced as InvalidArgument so the HTTP layer
	// answers 400, matching the contract clients already depend on; 409
	// is reserved for slot collisions.
	if desk.Status != model.DeskStatusAvailable {
		return ReservationDetail{}, apperr.InvalidArgument("Desk %s is not available for booking", desk.Identifier)
	}

	reservation := model.Reservation{
		UserID: userID,
		DeskID: deskID,
		Date:   date,
		Status: model.ReservationStatusConfirmed,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&reservation).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ReservationDetail{}, apperr.Conflict("Desk %s is already booked for %s", desk.Identifier, date)
		}
		return ReservationDetail{}, apperr.Internal(err, "failed to create reservation for desk %s", desk.Identifier)
	}

	reservation.User = user
	reservation.Desk = desk
	return reservationDetail(reservation), nil
}

// isUniqueViolation reports whether err is a unique constraint failure.
// The sqlite driver in use predates gorm's error translation, so the
// sqlite message text and the postgres SQLSTATE are matched as well.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key value")
}

// transitions lists the legal status moves. checked_in, no_show and
// cancelled are terminal.
var transitions = map[string][]string{
	model.ReservationStatusConfirmed: {
		model.ReservationStatusCheckedIn,
		model.ReservationStatusNoShow,
		model.ReservationStatusCancelled,
	},
	model.ReservationStatusPendingApproval: {
		model.ReservationStatusConfirmed,
		model.ReservationStatusCancelled,
	},
}

func transitionAllowed(from, to string) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// CancelReservation marks a reservation cancelled. The row is kept for
// auditing; the slot index excludes cancelled rows, so the (desk, date)
// slot opens up for rebooking.
func (s *gormStore) CancelReservation(ctx context.Context, reservationID int64) (ReservationDetail, error) {
	return s.transition(ctx, reservationID, model.ReservationStatusCancelled, nil)
}

// CheckIn marks a confirmed reservation checked in and stamps the time.
func (s *gormStore) CheckIn(ctx context.Context, reservationID int64) (ReservationDetail, error) {
	now := time.Now().UTC()
	return s.transition(ctx, reservationID, model.ReservationStatusCheckedIn, &now)
}

// MarkNoShow marks a confirmed reservation as a no-show.
func (s *gormStore) MarkNoShow(ctx context.Context, reservationID int64) (ReservationDetail, error) {
	return s.transition(ctx, reservationID, model.ReservationStatusNoShow, nil)
}

// ApproveReservation confirms a pending reservation.
func (s *gormStore) ApproveReservation(ctx context.Context, reservationID int64) (ReservationDetail, error) {
	return s.transition(ctx, reservationID, model.ReservationStatusConfirmed, nil)
}

// transition applies one status move. The UPDATE is guarded on the
// status read at load time, so a concurrent transition loses cleanly
// with InvalidState instead of overwriting.
func (s *gormStore) transition(ctx context.Context, reservationID int64, to string, checkedInAt *time.Time) (ReservationDetail, error) {
	reservation, err := s.loadReservation(ctx, reservationID)
	if err != nil {
		return ReservationDetail{}, err
	}

	from := reservation.Status
	if !transitionAllowed(from, to) {
		return ReservationDetail{}, apperr.InvalidState(
			"Reservation %d cannot move from %s to %s", reservationID, from, to)
	}

	updates := map[string]any{"status": to}
	if checkedInAt != nil {
		updates["checked_in_at"] = *checkedInAt
	}
	res := s.db.WithContext(ctx).Model(&model.Reservation{}).
		Where("id = ? AND status = ?", reservationID, from).
		Updates(updates)
	if res.Error != nil {
		return ReservationDetail{}, apperr.Internal(res.Error, "failed to update reservation %d", reservationID)
	}
	if res.RowsAffected == 0 {
		return ReservationDetail{}, apperr.InvalidState(
			"Reservation %d was modified concurrently", reservationID)
	}

	reservation.Status = to
	if checkedInAt != nil {
		reservation.CheckedInAt = checkedInAt
	}
	return reservationDetail(reservation), nil
}

func (s *gormStore) loadReservation(ctx context.Context, reservationID int64) (model.Reservation, error) {
	var reservation model.Reservation
	err := s.db.WithContext(ctx).
		Preload("User").Preload("Desk").Preload("Desk.Room").Preload("Desk.Room.Area").
		First(&reservation, reservationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Reservation{}, apperr.NotFound("Reservation with id %d not found", reservationID)
	}
	if err != nil {
		return model.Reservation{}, apperr.Internal(err, "failed to retrieve reservation %d", reservationID)
	}
	return reservation, nil
}

// ListReservations returns reservations matching the filter, most
// recent date first, newest created first within a date.
func (s *gormStore) ListReservations(ctx context.Context, filter ReservationFilter) ([]ReservationDetail, error) {
	q := s.db.WithContext(ctx).Model(&model.Reservation{}).
		Preload("User").Preload("Desk").Preload("Desk.Room").Preload("Desk.Room.Area")

	if filter.UserID != 0 {
		q = q.Where("reservations.user_id = ?", filter.UserID)
	}
	if filter.DeskID != 0 {
		q = q.Where("reservations.desk_id = ?", filter.DeskID)
	}
	if filter.AreaID != 0 {
		q = q.Joins("JOIN desks ON desks.id = reservations.desk_id").
			Joins("JOIN rooms ON rooms.id = desks.room_id").
			Where("rooms.area_id = ?", filter.AreaID)
	}
	if filter.DateFrom != "" {
		q = q.Where("reservations.date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		q = q.Where("reservations.date <= ?", filter.DateTo)
	}

	var reservations []model.Reservation
	if err := q.Order("reservations.date DESC, reservations.created_at DESC, reservations.id DESC").
		Find(&reservations).Error; err != nil {
		return nil, apperr.Internal(err, "failed to retrieve reservations")
	}

	details := make([]ReservationDetail, 0, len(reservations))
	for _, r := range reservations {
		details = append(details, reservationDetail(r))
	}
	return details, nil
}

func reservationDetail(r model.Reservation) ReservationDetail {
	return ReservationDetail{
		Reservation:    r,
		UserName:       r.User.FullName(),
		DeskIdentifier: r.Desk.Identifier,
		AreaName:       r.Desk.Room.Area.Name,
	}
}
