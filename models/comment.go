package models

import (
	"time"
)

type Comment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	ArticleID uint      `json:"article_id" gorm:"not null;index"`
	AuthorID  uint      `json:"author_id" gorm:"not null"`
	Author    User      `json:"author" gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
