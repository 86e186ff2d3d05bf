package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"deskbooking-backend/internal/apperr"
	"deskbooking-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store store.Store
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store) *Handler {
	return &Handler{store: s}
}

// abortWithError maps a store error onto the HTTP contract. Untyped
// errors are logged and answered as opaque 500s.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindInvalidArgument:
		status = http.StatusBadRequest
	case apperr.KindConflict, apperr.KindInvalidState:
		status = http.StatusConflict
	case apperr.KindPermissionDenied:
		status = http.StatusForbidden
	}
	if status == http.StatusInternalServerError {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": apperr.MessageOf(err)})
}
