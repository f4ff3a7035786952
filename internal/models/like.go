package models

import "time"

// Vote types form a closed set at the API boundary.
const (
	LikeTypeLike    = "like"
	LikeTypeDislike = "dislike"
)

// ValidLikeType reports whether t is a recognized vote type.
func ValidLikeType(t string) bool {
	return t == LikeTypeLike || t == LikeTypeDislike
}

// Like records a user's vote on a video. At most one row exists per
// (user, video) pair, enforced by the composite unique index. Rows are hard
// deleted on toggle-off so the constraint stays authoritative.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_user_video" json:"user_id"`
	VideoID   uint      `gorm:"not null;uniqueIndex:idx_like_user_video" json:"video_id"`
	LikeType  string    `gorm:"size:7;not null" json:"like_type"`
	CreatedAt time.Time `json:"created_at"`

	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Video Video `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"-"`
}
