package store

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"deskbooking-backend/internal/db"
	"deskbooking-backend/internal/model"
)

// newTestStore opens a private in-memory sqlite database with the full
// schema, including the partial slot index. One connection only, so
// concurrent transactions queue instead of hitting SQLITE_BUSY.
func newTestStore(t *testing.T, opts Options) (Store, *gorm.DB) {
	t.Helper()

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
	return NewGormStore(gormDB, opts), gormDB
}

// fixture is the office used by most tests:
//
//	Level 1 - Left Wing
//	  Office 1.L.01:  1.L.01 (available), 1.L.01A (available)
//	  Office 1.L.02:  1.L.02 (permanent), 1.L.03 (disabled)
//	Level 2 - Right Wing
//	  (no rooms)
type fixture struct {
	areaLeft   model.Area
	areaEmpty  model.Area
	roomOne    model.Room
	roomTwo    model.Room
	deskFree   model.Desk // 1.L.01
	deskFreeA  model.Desk // 1.L.01A
	deskPerm   model.Desk // 1.L.02
	deskOff    model.Desk // 1.L.03
	alice, bob model.User
}

func seedFixture(t *testing.T, gormDB *gorm.DB) fixture {
	t.Helper()

	var f fixture
	f.areaLeft = model.Area{Name: "Level 1 - Left Wing"}
	f.areaEmpty = model.Area{Name: "Level 2 - Right Wing"}
	require.NoError(t, gormDB.Create(&f.areaLeft).Error)
	require.NoError(t, gormDB.Create(&f.areaEmpty).Error)

	f.roomOne = model.Room{AreaID: f.areaLeft.ID, Name: "Office 1.L.01"}
	f.roomTwo = model.Room{AreaID: f.areaLeft.ID, Name: "Office 1.L.02"}
	require.NoError(t, gormDB.Create(&f.roomOne).Error)
	require.NoError(t, gormDB.Create(&f.roomTwo).Error)

	f.deskFree = model.Desk{RoomID: f.roomOne.ID, Identifier: "1.L.01", Status: model.DeskStatusAvailable}
	f.deskFreeA = model.Desk{RoomID: f.roomOne.ID, Identifier: "1.L.01A", Status: model.DeskStatusAvailable}
	f.deskPerm = model.Desk{RoomID: f.roomTwo.ID, Identifier: "1.L.02", Status: model.DeskStatusPermanent}
	f.deskOff = model.Desk{RoomID: f.roomTwo.ID, Identifier: "1.L.03", Status: model.DeskStatusDisabled}
	for _, d := range []*model.Desk{&f.deskFree, &f.deskFreeA, &f.deskPerm, &f.deskOff} {
		require.NoError(t, gormDB.Create(d).Error)
	}

	empA := "EMP001"
	f.alice = model.User{Username: "alice.smith", FirstName: "Alice", LastName: "Smith", EmployeeID: &empA, Department: "Engineering"}
	f.bob = model.User{Username: "bob.jones", FirstName: "Bob", LastName: "Jones", Department: "Sales"}
	require.NoError(t, gormDB.Create(&f.alice).Error)
	require.NoError(t, gormDB.Create(&f.bob).Error)

	return f
}

func ctx() context.Context { return context.Background() }
