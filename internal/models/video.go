package models

import (
	"time"

	"gorm.io/gorm"
)

// Video categories form a closed set; anything else is rejected at the boundary.
const (
	CategoryMusic         = "music"
	CategoryGaming        = "gaming"
	CategoryEducation     = "education"
	CategoryEntertainment = "entertainment"
	CategoryTech          = "tech"
	CategorySports        = "sports"
)

// Categories returns all known video categories.
func Categories() []string {
	return []string{
		CategoryMusic, CategoryGaming, CategoryEducation,
		CategoryEntertainment, CategoryTech, CategorySports,
	}
}

// ValidCategory reports whether category is one of the known video categories.
func ValidCategory(category string) bool {
	switch category {
	case CategoryMusic, CategoryGaming, CategoryEducation,
		CategoryEntertainment, CategoryTech, CategorySports:
		return true
	}
	return false
}

// Video represents an uploaded video owned by exactly one user.
type Video struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	UserID       uint   `gorm:"not null;index" json:"user_id"`
	User         User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	Title        string `gorm:"not null" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	VideoURL     string `gorm:"not null" json:"video_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Category     string `gorm:"not null;default:entertainment" json:"category"`
	// DurationSeconds is reported by the uploader; zero when unknown.
	DurationSeconds uint `json:"duration_seconds"`
	// ViewCount is best-effort: incremented atomically on every fetch but
	// carries no exactness guarantee under concurrency.
	ViewCount uint `gorm:"not null;default:0" json:"view_count"`
	// LikeCount and DislikeCount are denormalized; kept equal to the live
	// like-row counts by the engagement service.
	LikeCount    uint           `gorm:"not null;default:0" json:"like_count"`
	DislikeCount uint           `gorm:"not null;default:0" json:"dislike_count"`
	IsPublished  bool           `gorm:"not null;default:true" json:"is_published"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
