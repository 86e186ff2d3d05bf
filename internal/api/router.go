package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"deskbooking-backend/internal/mw"
	"deskbooking-backend/internal/store"
)

// RouterConfig carries the middleware tunables from the config file.
type RouterConfig struct {
	RateLimitPerSec float64
	RateLimitBurst  int
	CacheTTL        time.Duration
}

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, cfg RouterConfig) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	cacheStore := cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	caching := mw.Cache(cacheStore, cfg.CacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		// Directory reads are cacheable; a stale count for one TTL is fine.
		api.GET("/areas", caching, handler.GetAreas)
		api.GET("/areas/:area_id/rooms", caching, handler.GetAreaRooms)
		api.GET("/areas/:area_id/desks", caching, handler.GetAreaDesks)
		api.GET("/rooms", caching, handler.GetRooms)
		api.GET("/rooms/:room_id/desks", caching, handler.GetRoomDesks)
		api.GET("/desks", caching, handler.GetDesks)

		api.GET("/users", handler.GetUsers)
		api.GET("/users/:user_id/areas", handler.GetUserAreas)
		api.POST("/users/:user_id/permissions", handler.GrantPermission)

		// Reservations are never cached: a booking must be visible in
		// the immediately following listing.
		api.GET("/reservations", handler.GetReservations)
		api.POST("/reservations/quick_book", handler.QuickBook)
		api.POST("/reservations/:id/check_in", handler.CheckIn)
		api.POST("/reservations/:id/cancel", handler.CancelReservation)
		api.POST("/reservations/:id/no_show", handler.MarkNoShow)
		api.POST("/reservations/:id/approve", handler.ApproveReservation)
	}

	return r
}
