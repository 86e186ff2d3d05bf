package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"deskbooking-backend/internal/api"
	"deskbooking-backend/internal/db"
	"deskbooking-backend/internal/model"
	"deskbooking-backend/internal/store"
)

// TestBookingLifecycle walks the whole booking flow over HTTP: two
// desks in one room, one slot contested, cancellation reopening it.
func TestBookingLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testDB, err := gorm.Open(sqlite.Open("file:booking_lifecycle?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := testDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()

	require.NoError(t, db.Migrate(testDB))

	// The scenario office: one wing, one office room, two desks.
	area := model.Area{Name: "Level 1 - Left Wing"}
	require.NoError(t, testDB.Create(&area).Error)
	emptyArea := model.Area{Name: "Level 2 - Right Wing"}
	require.NoError(t, testDB.Create(&emptyArea).Error)

	room := model.Room{AreaID: area.ID, Name: "Office 1.L.01"}
	require.NoError(t, testDB.Create(&room).Error)

	deskOne := model.Desk{RoomID: room.ID, Identifier: "1.L.01", Status: model.DeskStatusAvailable}
	deskTwo := model.Desk{RoomID: room.ID, Identifier: "1.L.01A", Status: model.DeskStatusAvailable}
	require.NoError(t, testDB.Create(&deskOne).Error)
	require.NoError(t, testDB.Create(&deskTwo).Error)

	alice := model.User{Username: "alice.smith", FirstName: "Alice", LastName: "Smith"}
	bob := model.User{Username: "bob.jones", FirstName: "Bob", LastName: "Jones"}
	require.NoError(t, testDB.Create(&alice).Error)
	require.NoError(t, testDB.Create(&bob).Error)

	appStore := store.NewGormStore(testDB, store.Options{})
	router := api.NewRouter(appStore, api.RouterConfig{
		RateLimitPerSec: 1000,
		RateLimitBurst:  1000,
		CacheTTL:        time.Minute,
	})

	post := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}
	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	var firstID int64

	t.Run("Booking desk 1.L.01 succeeds", func(t *testing.T) {
		w := post("/api/reservations/quick_book",
			fmt.Sprintf(`{"user_id":%d,"desk_id":%d,"date":"2025-03-10"}`, alice.ID, deskOne.ID))
		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Reservation struct {
				ID     int64  `json:"id"`
				Status string `json:"status"`
				Date   string `json:"date"`
			} `json:"reservation"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "confirmed", resp.Reservation.Status)
		assert.Equal(t, "2025-03-10", resp.Reservation.Date)
		firstID = resp.Reservation.ID
	})

	t.Run("Same desk and date conflicts", func(t *testing.T) {
		w := post("/api/reservations/quick_book",
			fmt.Sprintf(`{"user_id":%d,"desk_id":%d,"date":"2025-03-10"}`, bob.ID, deskOne.ID))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Neighbouring desk same date succeeds", func(t *testing.T) {
		w := post("/api/reservations/quick_book",
			fmt.Sprintf(`{"user_id":%d,"desk_id":%d,"date":"2025-03-10"}`, bob.ID, deskTwo.ID))
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Cancelling reopens the slot", func(t *testing.T) {
		w := post(fmt.Sprintf("/api/reservations/%d/cancel", firstID), "")
		require.Equal(t, http.StatusOK, w.Code)

		w = post("/api/reservations/quick_book",
			fmt.Sprintf(`{"user_id":%d,"desk_id":%d,"date":"2025-03-10"}`, bob.ID, deskOne.ID))
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Listings reflect the bookings", func(t *testing.T) {
		w := get("/api/reservations?from=2025-03-10")
		require.Equal(t, http.StatusOK, w.Code)

		var reservations []struct {
			Status         string `json:"status"`
			DeskIdentifier string `json:"desk_identifier"`
			AreaName       string `json:"area_name"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reservations))
		require.Len(t, reservations, 3) // two active plus the cancelled one
		for _, r := range reservations {
			assert.Equal(t, "Level 1 - Left Wing", r.AreaName)
		}
	})

	t.Run("Empty area lists nothing", func(t *testing.T) {
		w := get(fmt.Sprintf("/api/areas/%d/rooms", emptyArea.ID))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())

		w = get(fmt.Sprintf("/api/areas/%d/desks", emptyArea.ID))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("Unknown desk books nothing", func(t *testing.T) {
		var before int64
		testDB.Model(&model.Reservation{}).Count(&before)

		w := post("/api/reservations/quick_book",
			fmt.Sprintf(`{"user_id":%d,"desk_id":9999,"date":"2025-03-10"}`, alice.ID))
		assert.Equal(t, http.StatusNotFound, w.Code)

		var after int64
		testDB.Model(&model.Reservation{}).Count(&after)
		assert.Equal(t, before, after)
	})
}
