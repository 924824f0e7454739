package models

import "time"

// Request bodies. The API wraps every payload in an entity envelope
// ({"user": ...}, {"article": ...}), so each request type mirrors that.

type RegisterRequest struct {
	User RegisterUser `json:"user" binding:"required"`
}

type RegisterUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

type LoginRequest struct {
	User LoginUser `json:"user" binding:"required"`
}

type LoginUser struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	User UpdateUserFields `json:"user" binding:"required"`
}

// Pointer fields distinguish "not sent" from "sent empty": only supplied
// fields are overwritten.
type UpdateUserFields struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Bio      *string `json:"bio"`
	Image    *string `json:"image"`
}

type CreateArticleRequest struct {
	Article CreateArticleFields `json:"article" binding:"required"`
}

type CreateArticleFields struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	TagList     []string `json:"tagList"`
}

type UpdateArticleRequest struct {
	Article UpdateArticleFields `json:"article" binding:"required"`
}

type UpdateArticleFields struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Body        *string `json:"body"`
}

type CreateCommentRequest struct {
	Comment CreateCommentFields `json:"comment" binding:"required"`
}

type CreateCommentFields struct {
	Body string `json:"body"`
}

type ArticleListParams struct {
	Tag       string `form:"tag"`
	Author    string `form:"author"`
	Favorited string `form:"favorited"`
	Limit     int    `form:"limit,default=3"`
	Offset    int    `form:"offset,default=0"`
}

type FeedParams struct {
	Limit  int `form:"limit,default=3"`
	Offset int `form:"offset,default=0"`
}

// Response shapes. Viewer-relative fields (Following, Favorited,
// FavoritesCount) are filled by the presenter, never stored.

type Profile struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}

type ArticleView struct {
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Body           string    `json:"body"`
	TagList        []string  `json:"tagList"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Favorited      bool      `json:"favorited"`
	FavoritesCount int64     `json:"favoritesCount"`
	Author         Profile   `json:"author"`
}

type CommentView struct {
	ID        uint      `json:"id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Author    Profile   `json:"author"`
}

type AuthUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	Token    string `json:"token"`
}
