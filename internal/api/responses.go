package api

import (
	"time"

	"deskbooking-backend/internal/store"
)

// Response shapes are part of the public contract; the denormalized
// names and counts are relied on by the frontend and must not change.

// AreaResponse represents the API response for a single area.
type AreaResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	MapSVG    *string   `json:"map_svg"`
	RoomCount int64     `json:"room_count"`
	DeskCount int64     `json:"desk_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toAreaResponse(a store.AreaSummary) AreaResponse {
	return AreaResponse{
		ID:        a.ID,
		Name:      a.Name,
		MapSVG:    a.MapSVG,
		RoomCount: a.RoomCount,
		DeskCount: a.DeskCount,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// RoomResponse represents the API response for a single room.
type RoomResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	IsBookable bool      `json:"is_bookable"`
	Area       int64     `json:"area"`
	AreaName   string    `json:"area_name"`
	DeskCount  int64     `json:"desk_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toRoomResponses(rooms []store.RoomDetail) []RoomResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, RoomResponse{
			ID:         r.ID,
			Name:       r.Name,
			IsBookable: r.IsBookable,
			Area:       r.AreaID,
			AreaName:   r.AreaName,
			DeskCount:  r.DeskCount,
			CreatedAt:  r.CreatedAt,
			UpdatedAt:  r.UpdatedAt,
		})
	}
	return out
}

// DeskResponse represents the API response for a single desk.
type DeskResponse struct {
	ID         int64     `json:"id"`
	Identifier string    `json:"identifier"`
	Status     string    `json:"status"`
	PosX       *int      `json:"pos_x"`
	PosY       *int      `json:"pos_y"`
	Room       int64     `json:"room"`
	RoomName   string    `json:"room_name"`
	AreaName   string    `json:"area_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toDeskResponses(desks []store.DeskDetail) []DeskResponse {
	out := make([]DeskResponse, 0, len(desks))
	for _, d := range desks {
		out = append(out, DeskResponse{
			ID:         d.ID,
			Identifier: d.Identifier,
			Status:     d.Status,
			PosX:       d.PosX,
			PosY:       d.PosY,
			Room:       d.RoomID,
			RoomName:   d.RoomName,
			AreaName:   d.AreaName,
			CreatedAt:  d.CreatedAt,
			UpdatedAt:  d.UpdatedAt,
		})
	}
	return out
}

// UserResponse represents the API response for a single user. No
// credential fields or superuser flags ever appear here.
type UserResponse struct {
	ID              int64    `json:"id"`
	Username        string   `json:"username"`
	Email           string   `json:"email"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	EmployeeID      *string  `json:"employee_id"`
	Department      string   `json:"department"`
	IsAdmin         bool     `json:"is_admin"`
	AreaPermissions []string `json:"area_permissions"`
}

func toUserResponse(u store.UserDetail) UserResponse {
	perms := u.AreaNames
	if perms == nil {
		perms = []string{}
	}
	return UserResponse{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		EmployeeID:      u.EmployeeID,
		Department:      u.Department,
		IsAdmin:         u.IsAdmin,
		AreaPermissions: perms,
	}
}

// ReservationResponse represents the API response for a reservation,
// including the display fields resolved through the directory.
type ReservationResponse struct {
	ID             int64      `json:"id"`
	Date           string     `json:"date"`
	Status         string     `json:"status"`
	Notes          string     `json:"notes"`
	CreatedAt      time.Time  `json:"created_at"`
	CheckedInAt    *time.Time `json:"checked_in_at"`
	User           int64      `json:"user"`
	UserName       string     `json:"user_name"`
	Desk           int64      `json:"desk"`
	DeskIdentifier string     `json:"desk_identifier"`
	AreaName       string     `json:"area_name"`
}

func toReservationResponse(r store.ReservationDetail) ReservationResponse {
	return ReservationResponse{
		ID:             r.ID,
		Date:           r.Date,
		Status:         r.Status,
		Notes:          r.Notes,
		CreatedAt:      r.CreatedAt,
		CheckedInAt:    r.CheckedInAt,
		User:           r.UserID,
		UserName:       r.UserName,
		Desk:           r.DeskID,
		DeskIdentifier: r.DeskIdentifier,
		AreaName:       r.AreaName,
	}
}
