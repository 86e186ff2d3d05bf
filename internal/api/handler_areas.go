package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

// GetAreas handles GET /api/areas.
func (h *Handler) GetAreas(c *gin.Context) {
	areas, err := h.store.ListAreas(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	responses := make([]AreaResponse, 0, len(areas))
	for _, a := range areas {
		responses = append(responses, toAreaResponse(a))
	}
	c.JSON(http.StatusOK, responses)
}

// GetAreaRooms handles GET /api/areas/:area_id/rooms.
func (h *Handler) GetAreaRooms(c *gin.Context) {
	areaID, ok := parseIDParam(c, "area_id")
	if !ok {
		return
	}

	rooms, err := h.store.ListRoomsInArea(c.Request.Context(), areaID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoomResponses(rooms))
}

// GetAreaDesks handles GET /api/areas/:area_id/desks.
func (h *Handler) GetAreaDesks(c *gin.Context) {
	areaID, ok := parseIDParam(c, "area_id")
	if !ok {
		return
	}

	desks, err := h.store.ListDesksInArea(c.Request.Context(), areaID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDeskResponses(desks))
}
