package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"deskbooking-backend/internal/store"
)

// GetReservations handles GET /api/reservations with optional filters
// user_id, desk_id, area_id, from, to.
func (h *Handler) GetReservations(c *gin.Context) {
	var filter store.ReservationFilter
	for param, dst := range map[string]*int64{
		"user_id": &filter.UserID,
		"desk_id": &filter.DeskID,
		"area_id": &filter.AreaID,
	} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid " + param})
			return
		}
		*dst = id
	}
	filter.DateFrom = c.Query("from")
	filter.DateTo = c.Query("to")

	reservations, err := h.store.ListReservations(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, err)
		return
	}

	responses := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		responses = append(responses, toReservationResponse(r))
	}
	c.JSON(http.StatusOK, responses)
}

type quickBookRequest struct {
	UserID int64  `json:"user_id"`
	DeskID int64  `json:"desk_id"`
	Date   string `json:"date"`
}

// QuickBook handles POST /api/reservations/quick_book. The acting user
// is taken from the request body; there is no implicit fallback user.
func (h *Handler) QuickBook(c *gin.Context) {
	var req quickBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "desk_id and date are required"})
		return
	}
	if req.DeskID == 0 || req.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "desk_id and date are required"})
		return
	}
	if req.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	reservation, err := h.store.BookDesk(c.Request.Context(), req.UserID, req.DeskID, req.Date)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     fmt.Sprintf("Desk %s booked successfully for %s", reservation.DeskIdentifier, reservation.Date),
		"reservation": toReservationResponse(reservation),
	})
}

// CheckIn handles POST /api/reservations/:id/check_in.
func (h *Handler) CheckIn(c *gin.Context) {
	h.applyTransition(c, h.store.CheckIn)
}

// CancelReservation handles POST /api/reservations/:id/cancel.
func (h *Handler) CancelReservation(c *gin.Context) {
	h.applyTransition(c, h.store.CancelReservation)
}

// MarkNoShow handles POST /api/reservations/:id/no_show.
func (h *Handler) MarkNoShow(c *gin.Context) {
	h.applyTransition(c, h.store.MarkNoShow)
}

// ApproveReservation handles POST /api/reservations/:id/approve.
func (h *Handler) ApproveReservation(c *gin.Context) {
	h.applyTransition(c, h.store.ApproveReservation)
}

func (h *Handler) applyTransition(c *gin.Context, op func(ctx context.Context, id int64) (store.ReservationDetail, error)) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reservation, err := op(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReservationResponse(reservation))
}
