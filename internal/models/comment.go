package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment belongs to one video and one user. ParentCommentID links a reply to
// its top-level comment; replies may not themselves have replies (enforced by
// the comment service, not the schema).
type Comment struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	VideoID         uint   `gorm:"not null;index" json:"video_id"`
	UserID          uint   `gorm:"not null;index" json:"user_id"`
	User            User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	Content         string `gorm:"type:text;not null" json:"content"`
	ParentCommentID *uint  `gorm:"index" json:"parent_comment_id,omitempty"`
	// LikeCount is denormalized but no like rows back it: there is no
	// comment-liking endpoint.
	LikeCount uint      `gorm:"not null;default:0" json:"like_count"`
	CreatedAt time.Time `json:"created_at"`
	// Replies holds direct replies when serialized by the read path.
	Replies   []*Comment     `gorm:"-" json:"replies"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
