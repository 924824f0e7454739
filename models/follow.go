package models

import "time"

// Follow is a binary edge between two users. The composite unique index is
// what makes concurrent duplicate inserts safe to absorb.
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_followee;not null"`
	FolloweeID uint      `json:"followee_id" gorm:"index;uniqueIndex:idx_follower_followee;not null"`
	CreatedAt  time.Time `json:"created_at"`
}
