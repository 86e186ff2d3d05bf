package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"deskbooking-backend/internal/db"
	"deskbooking-backend/internal/model"
	"deskbooking-backend/internal/store"
)

// setupTestAPI returns a router backed by a fresh in-memory database,
// plus the gorm handle for seeding.
func setupTestAPI(t *testing.T, opts store.Options) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(gormDB))

	router := NewRouter(store.NewGormStore(gormDB, opts), RouterConfig{
		RateLimitPerSec: 1000, // never the thing under test
		RateLimitBurst:  1000,
		CacheTTL:        time.Minute,
	})
	return router, gormDB
}

// seedOffice creates one populated area and one empty area and returns
// (populated area, its first room, its desks, a user).
func seedOffice(t *testing.T, gormDB *gorm.DB) (model.Area, model.Room, []model.Desk, model.User) {
	t.Helper()

	area := model.Area{Name: "Level 1 - Left Wing"}
	require.NoError(t, gormDB.Create(&area).Error)
	empty := model.Area{Name: "Level 3 - Right Wing"}
	require.NoError(t, gormDB.Create(&empty).Error)

	room := model.Room{AreaID: area.ID, Name: "Office 1.L.01"}
	require.NoError(t, gormDB.Create(&room).Error)

	desks := []model.Desk{
		{RoomID: room.ID, Identifier: "1.L.01", Status: model.DeskStatusAvailable},
		{RoomID: room.ID, Identifier: "1.L.01A", Status: model.DeskStatusAvailable},
		{RoomID: room.ID, Identifier: "1.L.02", Status: model.DeskStatusPermanent},
	}
	for i := range desks {
		require.NoError(t, gormDB.Create(&desks[i]).Error)
	}

	empID := "EMP001"
	user := model.User{
		Username: "alice.smith", FirstName: "Alice", LastName: "Smith",
		Email: "alice.smith@company.com", EmployeeID: &empID, Department: "Engineering",
	}
	require.NoError(t, gormDB.Create(&user).Error)

	return area, room, desks, user
}

func itoa(id int64) string { return fmt.Sprintf("%d", id) }

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
