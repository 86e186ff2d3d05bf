package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"deskbooking-backend/internal/apperr"
	"deskbooking-backend/internal/model"
)

// ListUsers returns all users ordered by username, each with the names
// of their granted areas. Credential material never enters this table.
func (s *gormStore) ListUsers(ctx context.Context) ([]UserDetail, error) {
	var users []model.User
	if err := s.db.WithContext(ctx).Order("username").Find(&users).Error; err != nil {
		return nil, apperr.Internal(err, "failed to retrieve users")
	}

	type grantRow struct {
		UserID   int64
		AreaName string
	}
	var grants []grantRow
	if err := s.db.WithContext(ctx).
		Model(&model.UserPermission{}).
		Select("user_permissions.user_id as user_id, areas.name as area_name").
		Joins("JOIN areas ON areas.id = user_permissions.area_id").
		Order("areas.name").
		Scan(&grants).Error; err != nil {
		return nil, apperr.Internal(err, "failed to retrieve user permissions")
	}

	grantMap := make(map[int64][]string, len(users))
	for _, g := range grants {
		grantMap[g.UserID] = append(grantMap[g.UserID], g.AreaName)
	}

	details := make([]UserDetail, 0, len(users))
	for _, u := range users {
		details = append(details, UserDetail{User: u, AreaNames: grantMap[u.ID]})
	}
	return details, nil
}

// getUser resolves a user by id.
func (s *gormStore) getUser(ctx context.Context, userID int64) (model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, apperr.NotFound("User with id %d not found", userID)
	}
	if err != nil {
		return model.User{}, apperr.Internal(err, "failed to retrieve user %d", userID)
	}
	return user, nil
}

// GrantAccess records that a user may access an area. Granting an
// already-held permission is a no-op that returns the existing row.
func (s *gormStore) GrantAccess(ctx context.Context, userID, areaID int64) (model.UserPermission, error) {
	if _, err := s.getUser(ctx, userID); err != nil {
		return model.UserPermission{}, err
	}
	if _, err := s.GetArea(ctx, areaID); err != nil {
		return model.UserPermission{}, err
	}

	perm := model.UserPermission{UserID: userID, AreaID: areaID}
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND area_id = ?", userID, areaID).
		FirstOrCreate(&perm).Error; err != nil {
		return model.UserPermission{}, apperr.Internal(err, "failed to grant area %d to user %d", areaID, userID)
	}
	return perm, nil
}

// ListAccessibleAreas returns the areas a user has been granted,
// ordered by name.
func (s *gormStore) ListAccessibleAreas(ctx context.Context, userID int64) ([]model.Area, error) {
	if _, err := s.getUser(ctx, userID); err != nil {
		return nil, err
	}

	var areas []model.Area
	if err := s.db.WithContext(ctx).
		Joins("JOIN user_permissions ON user_permissions.area_id = areas.id").
		Where("user_permissions.user_id = ?", userID).
		Order("areas.name").
		Find(&areas).Error; err != nil {
		return nil, apperr.Internal(err, "failed to retrieve areas for user %d", userID)
	}
	return areas, nil
}

// HasAccess reports whether a user holds a permission for an area.
func (s *gormStore) HasAccess(ctx context.Context, userID, areaID int64) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&model.UserPermission{}).
		Where("user_id = ? AND area_id = ?", userID, areaID).
		Count(&n).Error; err != nil {
		return false, apperr.Internal(err, "failed to check access for user %d", userID)
	}
	return n > 0, nil
}
