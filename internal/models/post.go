package models

import "time"

// Post represents a blog post
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title"`
	Content   string    `json:"content" gorm:"type:text"`
	ImageURL  string    `json:"image_url"`
	AuthorID  uint      `json:"author_id" gorm:"index"` // ID of the admin user who created the post
	CreatedAt time.Time `json:"created_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=200"`
	Content  string `json:"content" validate:"required,min=1"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
}

// PostWithAuthor is a post row joined with its author's username
type PostWithAuthor struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	ImageURL       string    `json:"image_url"`
	CreatedAt      time.Time `json:"created_at"`
	AuthorUsername string    `json:"author_username"`
}

// PostDetail is the full post view: author, comments, like count and,
// when the caller is authenticated, whether they liked it
type PostDetail struct {
	PostWithAuthor
	Comments      []CommentWithUser `json:"comments"`
	LikesCount    int64             `json:"likes_count"`
	IsLikedByUser bool              `json:"is_liked_by_user"`
}
