package models

import (
	"time"
)

// User is the marketplace identity record. A user may act as host (owning
// listings) and as guest (booking and reviewing) at the same time.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username  string `gorm:"uniqueIndex;size:150" json:"username"`
	FirstName string `gorm:"size:150;column:first_name" json:"first_name"`
	LastName  string `gorm:"size:150;column:last_name" json:"last_name"`
	Email     string `gorm:"uniqueIndex;size:254" json:"email"`

	// bcrypt hash, never serialized
	Password string `gorm:"size:255" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
