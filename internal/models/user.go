// Package models contains data structures for the application's domain models.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account on Murmur.
//
// Email is stored in its canonical lower-case form and carries the unique
// index, so case-insensitive uniqueness is enforced by the database itself,
// not by query-time comparisons.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:50;not null" json:"name"`
	Email          string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordDigest string    `gorm:"not null" json:"-"`
	RememberToken  string    `gorm:"size:64;not null" json:"-"`
	Admin          bool      `gorm:"not null;default:false" json:"admin"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Microposts []Micropost `gorm:"foreignKey:UserID" json:"microposts,omitempty"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// BeforeSave canonicalizes the email and ensures a remember token exists.
// Canonicalization happens at write time so the unique index on email is
// the case-insensitive uniqueness guarantee.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = CanonicalEmail(u.Email)
	if u.RememberToken == "" {
		u.RememberToken = NewRememberToken()
	}
	return nil
}

// CanonicalEmail returns the lower-cased, trimmed form of an email address.
func CanonicalEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewRememberToken returns a fresh opaque session token.
func NewRememberToken() string {
	return uuid.NewString()
}
