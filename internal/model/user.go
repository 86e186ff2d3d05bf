package model

import (
	"strings"
	"time"
)

// User is an employee who can hold area permissions and reservations.
// Credentials live with the external auth layer, never in this table.
type User struct {
	ID         int64     `gorm:"primaryKey"`
	Username   string    `gorm:"uniqueIndex;size:150;not null"`
	Email      string    `gorm:"size:254"`
	FirstName  string    `gorm:"size:150"`
	LastName   string    `gorm:"size:150"`
	EmployeeID *string   `gorm:"uniqueIndex;size:20"`
	Department string    `gorm:"size:100"`
	IsAdmin    bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	// Associations
	Permissions  []UserPermission `gorm:"foreignKey:UserID"`
	Reservations []Reservation    `gorm:"foreignKey:UserID"`
}

// FullName returns "First Last", trimmed. Empty when neither name is set.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// UserPermission grants a user visibility and booking rights in an area.
// One row per (user, area) pair.
type UserPermission struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    int64     `gorm:"uniqueIndex:udx_user_permissions_user_area;not null"`
	AreaID    int64     `gorm:"uniqueIndex:udx_user_permissions_user_area;not null"`
	CreatedAt time.Time `gorm:"not null"`

	// Associations
	User User `gorm:"constraint:OnDelete:CASCADE"`
	Area Area `gorm:"constraint:OnDelete:CASCADE"`
}
