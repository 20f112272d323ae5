package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/farhanadi/bloomlog/internal/model"
	"github.com/farhanadi/bloomlog/internal/repository"
	"github.com/farhanadi/bloomlog/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LikeService interface {
	LikePost(ctx context.Context, userID, postID uuid.UUID) error
	UnlikePost(ctx context.Context, userID, postID uuid.UUID) error
	CountForPost(ctx context.Context, postID uuid.UUID) (int64, error)
}

type likeService struct {
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
}

func NewLikeService(likeRepo repository.LikeRepository, postRepo repository.PostRepository) LikeService {
	return &likeService{
		likeRepo: likeRepo,
		postRepo: postRepo,
	}
}

// LikePost inserts the (post, user) row. Concurrent duplicate attempts are
// settled by the unique index: exactly one insert wins and the loser gets a
// conflict, never a second row.
func (s *likeService) LikePost(ctx context.Context, userID, postID uuid.UUID) error {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		return translateNotFound(err)
	}

	like := &model.Like{
		PostID: postID,
		UserID: userID,
	}

	if err := s.likeRepo.Create(ctx, like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: post already liked", apperror.ErrConflict)
		}
		return err
	}
	return nil
}

// UnlikePost removes the row. There is no toggle flag to flip.
func (s *likeService) UnlikePost(ctx context.Context, userID, postID uuid.UUID) error {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		return translateNotFound(err)
	}
	return s.likeRepo.Delete(ctx, postID, userID)
}

func (s *likeService) CountForPost(ctx context.Context, postID uuid.UUID) (int64, error) {
	return s.likeRepo.CountByPost(ctx, postID)
}
