package models

import (
	"time"
)

type Article struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Body        string    `json:"body" gorm:"type:text;not null"`
	AuthorID    uint      `json:"author_id" gorm:"not null;index"`
	Author      User      `json:"author" gorm:"foreignKey:AuthorID"`
	Tags        []Tag     `json:"tags" gorm:"many2many:article_tags;"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
