package models

import (
	"time"
)

// MaxMicropostLength is the content ceiling for a single micropost.
const MaxMicropostLength = 140

// Micropost is a short status post owned by exactly one user.
type Micropost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Content   string    `gorm:"size:140;not null" json:"content"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for GORM
func (Micropost) TableName() string {
	return "microposts"
}
