package dto

import "github.com/google/uuid"

type CreatePostRequest struct {
	Title   string `json:"title" binding:"required,max=100"`
	Content string `json:"content" binding:"required"`
}

type UpdatePostRequest struct {
	Title   string `json:"title" binding:"required,max=100"`
	Content string `json:"content" binding:"required"`
}

type PostResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Author       string    `json:"author"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

// PostDetailResponse is the detail view payload: the post together with its
// full ordered comment list.
type PostDetailResponse struct {
	PostResponse
	Comments []CommentResponse `json:"comments"`
}

type PostFilter struct {
	Page     int    `form:"page"`
	Username string `form:"username"`
}

type PaginatedPostResponse struct {
	Data []PostResponse `json:"data"`
	Meta PaginationMeta `json:"meta"`
}
