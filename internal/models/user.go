// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account on ClipTube. Every user is also a channel
// that other users can subscribe to.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"unique;not null" json:"username"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
	// SubscriberCount is denormalized; kept in sync with subscription rows
	// by the engagement service.
	SubscriberCount uint           `gorm:"not null;default:0" json:"subscriber_count"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
	Videos          []Video        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"videos,omitempty"`
}
