package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetUsers handles GET /api/users.
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toUserResponse(u))
	}
	c.JSON(http.StatusOK, responses)
}

// GetUserAreas handles GET /api/users/:user_id/areas.
func (h *Handler) GetUserAreas(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	areas, err := h.store.ListAccessibleAreas(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	type areaRef struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	responses := make([]areaRef, 0, len(areas))
	for _, a := range areas {
		responses = append(responses, areaRef{ID: a.ID, Name: a.Name})
	}
	c.JSON(http.StatusOK, responses)
}

type grantPermissionRequest struct {
	AreaID int64 `json:"area_id" binding:"required"`
}

// GrantPermission handles POST /api/users/:user_id/permissions.
// Granting an already-held permission succeeds with the existing grant.
func (h *Handler) GrantPermission(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	var req grantPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "area_id is required"})
		return
	}

	perm, err := h.store.GrantAccess(c.Request.Context(), userID, req.AreaID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      perm.ID,
		"user":    perm.UserID,
		"area":    perm.AreaID,
		"granted": true,
	})
}
