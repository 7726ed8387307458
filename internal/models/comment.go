package models

import "time"

// Comment represents a comment on a post
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content"`
	UserID    uint      `json:"user_id" gorm:"index"` // ID of the user who made the comment
	PostID    uint      `json:"post_id" gorm:"index"` // ID of the post the comment belongs to
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}

// CommentWithUser is a comment row joined with the commenter's username
type CommentWithUser struct {
	ID           uint      `json:"id"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	UserUsername string    `json:"user_username"`
}
