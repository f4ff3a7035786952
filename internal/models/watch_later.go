package models

import "time"

// WatchLater saves a video on a user's watch-later list. At most one row
// exists per (user, video) pair.
type WatchLater struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	UserID  uint      `gorm:"not null;uniqueIndex:idx_watch_user_video" json:"user_id"`
	VideoID uint      `gorm:"not null;uniqueIndex:idx_watch_user_video" json:"video_id"`
	AddedAt time.Time `gorm:"autoCreateTime" json:"added_at"`

	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Video Video `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"video"`
}
