package dto

import "github.com/google/uuid"

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type CommentResponse struct {
	ID          uuid.UUID `json:"id"`
	PostID      uuid.UUID `json:"post_id"`
	Author      string    `json:"author"`
	Content     string    `json:"content"`
	CommentedAt string    `json:"commented_at"`
}
