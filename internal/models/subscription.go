package models

import "time"

// Subscription links a subscriber to the channel (user) they follow. At most
// one row exists per (subscriber, subscribed_to) pair.
type Subscription struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	SubscriberID   uint      `gorm:"not null;uniqueIndex:idx_sub_pair" json:"subscriber_id"`
	SubscribedToID uint      `gorm:"not null;uniqueIndex:idx_sub_pair" json:"subscribed_to_id"`
	CreatedAt      time.Time `json:"created_at"`

	Subscriber   User `gorm:"foreignKey:SubscriberID;constraint:OnDelete:CASCADE" json:"-"`
	SubscribedTo User `gorm:"foreignKey:SubscribedToID;constraint:OnDelete:CASCADE" json:"-"`
}
