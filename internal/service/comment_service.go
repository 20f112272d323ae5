package service

import (
	"context"

	"github.com/farhanadi/bloomlog/internal/dto"
	"github.com/farhanadi/bloomlog/internal/model"
	"github.com/farhanadi/bloomlog/internal/repository"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type CommentService interface {
	AddComment(ctx context.Context, requesterID, postID uuid.UUID, req dto.CreateCommentRequest) (*dto.CommentResponse, error)
	UpdateComment(ctx context.Context, requesterID, commentID uuid.UUID, req dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	// DeleteComment removes the comment and returns the parent post id so
	// the caller can route back to the detail view.
	DeleteComment(ctx context.Context, requesterID, commentID uuid.UUID) (uuid.UUID, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	bodyPolicy  *bluemonday.Policy
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		bodyPolicy:  bluemonday.UGCPolicy(),
	}
}

func (s *commentService) AddComment(ctx context.Context, requesterID, postID uuid.UUID, req dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	// The comment binds to the post being viewed; a dangling post id is a
	// not-found, not a validation failure.
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		return nil, translateNotFound(err)
	}

	comment := &model.Comment{
		PostID:  postID,
		UserID:  requesterID,
		Content: s.bodyPolicy.Sanitize(req.Content),
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	created, err := s.commentRepo.FindByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}

	response := mapCommentToResponse(created)
	return &response, nil
}

func (s *commentService) UpdateComment(ctx context.Context, requesterID, commentID uuid.UUID, req dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if err := requireOwner(comment.UserID, requesterID); err != nil {
		return nil, err
	}

	comment.Content = s.bodyPolicy.Sanitize(req.Content)
	comment.UserID = requesterID

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	response := mapCommentToResponse(comment)
	return &response, nil
}

func (s *commentService) DeleteComment(ctx context.Context, requesterID, commentID uuid.UUID) (uuid.UUID, error) {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return uuid.Nil, translateNotFound(err)
	}

	if err := requireOwner(comment.UserID, requesterID); err != nil {
		return uuid.Nil, err
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return uuid.Nil, err
	}

	return comment.PostID, nil
}
