// Command deskseed loads demo fixture data: the area/room/desk
// hierarchy, test users with area permissions, and two weeks of sample
// reservations. It lives entirely outside the booking engine and talks
// to the same store the server uses. Re-running it is safe; every
// create is a get-or-create.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"gorm.io/gorm"

	"deskbooking-backend/config"
	"deskbooking-backend/internal/db"
	"deskbooking-backend/internal/model"
	"deskbooking-backend/internal/parse"
)

var (
	areaNames = []string{
		"Level 1 - Left Wing",
		"Level 1 - Right Wing",
		"Level 2 - Left Wing",
		"Level 2 - Right Wing",
		"Level 3 - Left Wing",
		"Level 3 - Right Wing",
	}

	// Five rooms per area; the desk counts give the 6 -> 30 -> 90 hierarchy.
	roomPlans = []struct {
		name       string
		deskCount  int
		isBookable bool
	}{
		{"Open Office A", 6, false},
		{"Open Office B", 4, false},
		{"Meeting Room", 0, true},
		{"Individual Office", 1, false},
		{"Shared Office", 4, false},
	}

	departments = []string{"Engineering", "Marketing", "Sales", "HR", "Finance", "Operations", "Product", "Design"}
	firstNames  = []string{"John", "Jane", "Mike", "Sarah", "David", "Emma", "Chris", "Lisa", "Tom", "Anna"}
	lastNames   = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis"}
)

func main() {
	logger := log.New(os.Stdout, "deskseed ", log.LstdFlags)

	var (
		clear = flag.Bool("clear", false, "clear existing data before loading fixtures")
		users = flag.Int("users", 40, "number of test users to create")
		seed  = flag.Int64("seed", 1, "random seed for reproducible fixtures")
	)
	flag.Parse()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}

	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed))
	loader := &loader{db: gormDB, rng: rng, logger: logger}

	if *clear {
		if err := loader.clearData(); err != nil {
			logger.Fatalf("failed to clear data: %v", err)
		}
	}

	if err := loader.run(*users); err != nil {
		logger.Fatalf("failed to load fixtures: %v", err)
	}
	loader.printSummary()
}

type loader struct {
	db     *gorm.DB
	rng    *rand.Rand
	logger *log.Logger
}

func (l *loader) run(userCount int) error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		areas, err := l.createAreas(tx)
		if err != nil {
			return err
		}
		desks, err := l.createRoomsAndDesks(tx, areas)
		if err != nil {
			return err
		}
		users, err := l.createUsers(tx, userCount)
		if err != nil {
			return err
		}
		if err := l.createPermissions(tx, users, areas); err != nil {
			return err
		}
		return l.createSampleReservations(tx, users, desks)
	})
}

// clearData deletes in child-first order so foreign keys stay happy.
func (l *loader) clearData() error {
	l.logger.Println("Clearing existing data...")
	for _, m := range []any{
		&model.Reservation{}, &model.UserPermission{}, &model.Desk{},
		&model.Room{}, &model.Area{}, &model.User{},
	} {
		if err := l.db.Where("1 = 1").Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}

func (l *loader) createAreas(tx *gorm.DB) ([]model.Area, error) {
	areas := make([]model.Area, 0, len(areaNames))
	for _, name := range areaNames {
		area := model.Area{Name: name}
		if err := tx.Where("name = ?", name).FirstOrCreate(&area).Error; err != nil {
			return nil, fmt.Errorf("create area %q: %w", name, err)
		}
		areas = append(areas, area)
	}
	l.logger.Printf("Created %d areas", len(areas))
	return areas, nil
}

func (l *loader) createRoomsAndDesks(tx *gorm.DB, areas []model.Area) ([]model.Desk, error) {
	var desks []model.Desk
	for _, area := range areas {
		// "Level 2 - Left Wing" -> level 2, wing "L".
		level := strings.Fields(area.Name)[1]
		wing := "R"
		if strings.Contains(area.Name, "Left") {
			wing = "L"
		}

		seq := 1
		for _, plan := range roomPlans {
			roomName := fmt.Sprintf("%s.%s - %s", level, wing, plan.name)
			room := model.Room{AreaID: area.ID, Name: roomName, IsBookable: plan.isBookable}
			if err := tx.Where("area_id = ? AND name = ?", area.ID, roomName).
				FirstOrCreate(&room).Error; err != nil {
				return nil, fmt.Errorf("create room %q: %w", roomName, err)
			}

			for i := 0; i < plan.deskCount; i++ {
				identifier := fmt.Sprintf("%s.%s.%02d", level, wing, seq)
				if _, err := parse.ParseIdentifier(identifier); err != nil {
					return nil, err
				}

				posX := 100 + (i%3)*150
				posY := 100 + (i/3)*100
				desk := model.Desk{
					RoomID:     room.ID,
					Identifier: identifier,
					Status:     l.deskStatus(),
					PosX:       &posX,
					PosY:       &posY,
				}
				if err := tx.Where("identifier = ?", identifier).
					FirstOrCreate(&desk).Error; err != nil {
					return nil, fmt.Errorf("create desk %q: %w", identifier, err)
				}
				desks = append(desks, desk)
				seq++
			}
		}
	}
	l.logger.Printf("Created %d desks", len(desks))
	return desks, nil
}

// deskStatus draws from the 75/20/5 available/permanent/disabled split.
func (l *loader) deskStatus() string {
	switch n := l.rng.Intn(100); {
	case n < 75:
		return model.DeskStatusAvailable
	case n < 95:
		return model.DeskStatusPermanent
	default:
		return model.DeskStatusDisabled
	}
}

func (l *loader) createUsers(tx *gorm.DB, count int) ([]model.User, error) {
	users := make([]model.User, 0, count)
	for i := 1; i <= count; i++ {
		first := firstNames[l.rng.Intn(len(firstNames))]
		last := lastNames[l.rng.Intn(len(lastNames))]
		username := fmt.Sprintf("%s.%s.%d", strings.ToLower(first), strings.ToLower(last), i)
		empID := fmt.Sprintf("EMP%03d", i)

		user := model.User{
			Username:   username,
			Email:      username + "@company.com",
			FirstName:  first,
			LastName:   last,
			EmployeeID: &empID,
			Department: departments[l.rng.Intn(len(departments))],
			IsAdmin:    l.rng.Intn(10) == 0,
		}
		if err := tx.Where("username = ?", username).FirstOrCreate(&user).Error; err != nil {
			return nil, fmt.Errorf("create user %q: %w", username, err)
		}
		users = append(users, user)
	}
	l.logger.Printf("Created %d users", len(users))
	return users, nil
}

// createPermissions gives each user access to one to three areas.
func (l *loader) createPermissions(tx *gorm.DB, users []model.User, areas []model.Area) error {
	for _, user := range users {
		numAreas := 1
		switch n := l.rng.Intn(10); {
		case n >= 9:
			numAreas = 3
		case n >= 6:
			numAreas = 2
		}

		for _, idx := range l.rng.Perm(len(areas))[:numAreas] {
			perm := model.UserPermission{UserID: user.ID, AreaID: areas[idx].ID}
			if err := tx.Where("user_id = ? AND area_id = ?", user.ID, areas[idx].ID).
				FirstOrCreate(&perm).Error; err != nil {
				return fmt.Errorf("grant area to user %d: %w", user.ID, err)
			}
		}
	}
	l.logger.Println("Assigned area permissions to users")
	return nil
}

// createSampleReservations fills the past two working weeks at roughly
// 60% occupancy, status-weighted towards checked_in.
func (l *loader) createSampleReservations(tx *gorm.DB, users []model.User, desks []model.Desk) error {
	var available []model.Desk
	for _, d := range desks {
		if d.Status == model.DeskStatusAvailable {
			available = append(available, d)
		}
	}
	if len(available) == 0 || len(users) == 0 {
		return nil
	}

	created := 0
	for day := 14; day >= 1; day-- {
		date := time.Now().AddDate(0, 0, -day)
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		dateStr := date.Format(model.DateLayout)

		n := len(available) * 60 / 100
		deskPerm := l.rng.Perm(len(available))
		userPerm := l.rng.Perm(len(users))
		for i := 0; i < n && i < len(users); i++ {
			reservation := model.Reservation{
				UserID: users[userPerm[i]].ID,
				DeskID: available[deskPerm[i]].ID,
				Date:   dateStr,
				Status: l.reservationStatus(),
			}
			if err := tx.Where("desk_id = ? AND date = ? AND status <> ?",
				reservation.DeskID, dateStr, model.ReservationStatusCancelled).
				FirstOrCreate(&reservation).Error; err != nil {
				return fmt.Errorf("create reservation for desk %d on %s: %w", reservation.DeskID, dateStr, err)
			}
			created++
		}
	}
	l.logger.Printf("Created %d sample reservations", created)
	return nil
}

// reservationStatus draws from the 20/70/10 confirmed/checked_in/no_show
// split used for past days.
func (l *loader) reservationStatus() string {
	switch n := l.rng.Intn(100); {
	case n < 20:
		return model.ReservationStatusConfirmed
	case n < 90:
		return model.ReservationStatusCheckedIn
	default:
		return model.ReservationStatusNoShow
	}
}

func (l *loader) printSummary() {
	for _, row := range []struct {
		label string
		m     any
	}{
		{"Areas", &model.Area{}},
		{"Rooms", &model.Room{}},
		{"Desks", &model.Desk{}},
		{"Users", &model.User{}},
		{"User Permissions", &model.UserPermission{}},
		{"Reservations", &model.Reservation{}},
	} {
		var n int64
		l.db.Model(row.m).Count(&n)
		l.logger.Printf("%s: %d", row.label, n)
	}
}
