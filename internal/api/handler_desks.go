package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetRooms handles GET /api/rooms.
func (h *Handler) GetRooms(c *gin.Context) {
	rooms, err := h.store.ListRooms(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoomResponses(rooms))
}

// GetRoomDesks handles GET /api/rooms/:room_id/desks.
func (h *Handler) GetRoomDesks(c *gin.Context) {
	roomID, ok := parseIDParam(c, "room_id")
	if !ok {
		return
	}

	desks, err := h.store.ListDesksInRoom(c.Request.Context(), roomID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDeskResponses(desks))
}

// GetDesks handles GET /api/desks.
func (h *Handler) GetDesks(c *gin.Context) {
	desks, err := h.store.ListDesks(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDeskResponses(desks))
}
