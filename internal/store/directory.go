package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"deskbooking-backend/internal/apperr"
	"deskbooking-backend/internal/model"
)

// ListAreas returns all areas ordered by name, each with its room and
// desk rollups computed by a single GROUP BY per relation.
func (s *gormStore) ListAreas(ctx context.Context) ([]AreaSummary, error) {
	var areas []model.Area
	if err := s.db.WithContext(ctx).Order("name").Find(&areas).Error; err != nil {
		return nil, apperr.Internal(err, "failed to retrieve areas")
	}

	type aggRow struct {
		AreaID int64
		N      int64
	}

	var roomAggs []aggRow
	if err := s.db.WithContext(ctx).
		Model(&model.Room{}).
		Select("area_id as area_id, COUNT(*) as n").
		Group("area_id").
		Scan(&roomAggs).Error; err != nil {
		return nil, apperr.Internal(err, "failed to aggregate rooms")
	}

	var deskAggs []aggRow
	if err := s.db.WithContext(ctx).
		Model(&model.Desk{}).
		Select("rooms.area_id as area_id, COUNT(*) as n").
		Joins("JOIN rooms ON rooms.id = desks.room_id").
		Group("rooms.area_id").
		Scan(&deskAggs).Error; err != nil {
		return nil, apperr.Internal(err, "failed to aggregate desks")
	}

	roomCounts := make(map[int64]int64, len(roomAggs))
	for _, a := range roomAggs {
		roomCounts[a.AreaID] = a.N
	}
	deskCounts := make(map[int64]int64, len(deskAggs))
	for _, a := range deskAggs {
		deskCounts[a.AreaID] = a.N
	}

	summaries := make([]AreaSummary, 0, len(areas))
	for _, a := range areas {
		summaries = append(summaries, AreaSummary{
			Area:      a,
			RoomCount: roomCounts[a.ID], // zero value when no rooms
			DeskCount: deskCounts[a.ID],
		})
	}
	return summaries, nil
}

// GetArea resolves an area by id.
func (s *gormStore) GetArea(ctx context.Context, areaID int64) (model.Area, error) {
	var area model.Area
	err := s.db.WithContext(ctx).First(&area, areaID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Area{}, apperr.NotFound("Area with id %d not found", areaID)
	}
	if err != nil {
		return model.Area{}, apperr.Internal(err, "failed to retrieve area %d", areaID)
	}
	return area, nil
}

// GetRoom resolves a room by id.
func (s *gormStore) GetRoom(ctx context.Context, roomID int64) (model.Room, error) {
	var room model.Room
	err := s.db.WithContext(ctx).First(&room, roomID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Room{}, apperr.NotFound("Room with id %d not found", roomID)
	}
	if err != nil {
		return model.Room{}, apperr.Internal(err, "failed to retrieve room %d", roomID)
	}
	return room, nil
}

// ListRooms returns every room ordered by (area, name).
func (s *gormStore) ListRooms(ctx context.Context) ([]RoomDetail, error) {
	var rooms []model.Room
	if err := s.db.WithContext(ctx).Preload("Area").
		Order("area_id, name").Find(&rooms).Error; err != nil {
		return nil, apperr.Internal(err, "failed to retrieve rooms")
	}
	return s.roomDetails(ctx, rooms)
}

// ListRoomsInArea returns the rooms of one area ordered by name. The
// area must exist; an area without rooms yields an empty slice.
func (s *gormStore) ListRoomsInArea(ctx context.Context, areaID int64) ([]RoomDetail, error) {
	if _, err := s.GetArea(ctx, areaID); err != nil {
		return nil, err
	}

	var rooms []model.Room
	if err := s.db.WithContext(ctx).Preload("Area").
		Where("area_id = ?", areaID).
		Order("name").Find(&rooms).Error; err != nil {
		return nil, apperr.Internal(err, "failed to retrieve rooms for area %d", areaID)
	}
	return s.roomDetails(ctx, rooms)
}

// roomDetails attaches area names and desk counts to a room slice.
func (s *gormStore) roomDetails(ctx context.Context, rooms []model.Room) ([]RoomDetail, error) {
	type aggRow struct {
		RoomID int64
		N      int64
	}
	var aggs []aggRow
	if err := s.db.WithContext(ctx).
		Model(&model.Desk{}).
		Select("room_id as room_id, COUNT(*) as n").
		Group("room_id").
		Scan(&aggs).Error; err != nil {
		return nil, apperr.Internal(err, "failed to aggregate desks per room")
	}
	counts := make(map[int64]int64, len(aggs))
	for _, a := range aggs {
		counts[a.RoomID] = a.N
	}

	details := make([]RoomDetail, 0, len(rooms))
	for _, r := range rooms {
		details = append(details, RoomDetail{
			Room:      r,
			AreaName:  r.Area.Name,
			DeskCount: counts[r.ID],
		})
	}
	return details, nil
}

// ListDesks returns every desk ordered by identifier.
func (s *gormStore) ListDesks(ctx context.Context) ([]DeskDetail, error) {
	var desks []model.Desk
	if err := s.db.WithContext(ctx).Preload("Room").Preload("Room.Area").
		Order("identifier").Find(&desks).Error; err != nil {
		return nil, apperr.Internal(err, "failed to retrieve desks")
	}
	return deskDetails(desks), nil
}

// ListDesksInRoom returns the desks of one room ordered by identifier.
func (s *gormStore) ListDesksInRoom(ctx context.Context, roomID int64) ([]DeskDetail, error) {
	if _, err := s.GetRoom(ctx, roomID); err != nil {
		return nil, err
	}

	var desks []model.Desk
	if err := s.db.WithContext(ctx).Preload("Room").Preload("Room.Area").
		Where("room_id = ?", roomID).
		Order("identifier").Find(&desks).Error; err != nil {
		return nil, apperr.Internal(err, "failed to retrieve desks for room %d", roomID)
	}
	return deskDetails(desks), nil
}

// ListDesksInArea returns the desks of every room under one area,
// ordered by identifier.
func (s *gormStore) ListDesksInArea(ctx context.Context, areaID int64) ([]DeskDetail, error) {
	if _, err := s.GetArea(ctx, areaID); err != nil {
		return nil, err
	}

	var desks []model.Desk
	if err := s.db.WithContext(ctx).Preload("Room").Preload("Room.Area").
		Joins("JOIN rooms ON rooms.id = desks.room_id").
		Where("rooms.area_id = ?", areaID).
		Order("desks.identifier").Find(&desks).Error; err != nil {
		return nil, apperr.Internal(err, "failed to retrieve desks for area %d", areaID)
	}
	return deskDetails(desks), nil
}

func deskDetails(desks []model.Desk) []DeskDetail {
	details := make([]DeskDetail, 0, len(desks))
	for _, d := range desks {
		details = append(details, DeskDetail{
			Desk:     d,
			RoomName: d.Room.Name,
			AreaName: d.Room.Area.Name,
		})
	}
	return details
}

// CountRooms returns the number of rooms under an area.
func (s *gormStore) CountRooms(ctx context.Context, areaID int64) (int64, error) {
	if _, err := s.GetArea(ctx, areaID); err != nil {
		return 0, err
	}
	var n int64
	if err := s.db.WithContext(ctx).Model(&model.Room{}).
		Where("area_id = ?", areaID).Count(&n).Error; err != nil {
		return 0, apperr.Internal(err, "failed to count rooms for area %d", areaID)
	}
	return n, nil
}

// CountDesksInArea returns the number of desks transitively under an area.
func (s *gormStore) CountDesksInArea(ctx context.Context, areaID int64) (int64, error) {
	if _, err := s.GetArea(ctx, areaID); err != nil {
		return 0, err
	}
	var n int64
	if err := s.db.WithContext(ctx).Model(&model.Desk{}).
		Joins("JOIN rooms ON rooms.id = desks.room_id").
		Where("rooms.area_id = ?", areaID).Count(&n).Error; err != nil {
		return 0, apperr.Internal(err, "failed to count desks for area %d", areaID)
	}
	return n, nil
}

// CountDesksInRoom returns the number of desks in a room.
func (s *gormStore) CountDesksInRoom(ctx context.Context, roomID int64) (int64, error) {
	if _, err := s.GetRoom(ctx, roomID); err != nil {
		return 0, err
	}
	var n int64
	if err := s.db.WithContext(ctx).Model(&model.Desk{}).
		Where("room_id = ?", roomID).Count(&n).Error; err != nil {
		return 0, apperr.Internal(err, "failed to count desks for room %d", roomID)
	}
	return n, nil
}
