package models

import "time"

// Favorite is a binary edge between a user and an article.
type Favorite struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey"`
	ArticleID uint      `json:"article_id" gorm:"primaryKey;index"`
	CreatedAt time.Time `json:"created_at"`
}
