package service

import (
	"context"
	"fmt"

	"github.com/farhanadi/bloomlog/internal/dto"
	"github.com/farhanadi/bloomlog/internal/model"
	"github.com/farhanadi/bloomlog/internal/repository"
	"github.com/farhanadi/bloomlog/pkg/apperror"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type PostService interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, req dto.CreatePostRequest) (*dto.PostResponse, error)
	ListPosts(ctx context.Context, filter dto.PostFilter) (*dto.PaginatedPostResponse, error)
	GetPostDetail(ctx context.Context, postID uuid.UUID) (*dto.PostDetailResponse, error)
	UpdatePost(ctx context.Context, requesterID, postID uuid.UUID, req dto.UpdatePostRequest) (*dto.PostResponse, error)
	DeletePost(ctx context.Context, requesterID, postID uuid.UUID) error
}

type postService struct {
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
	commentRepo repository.CommentRepository
	likeRepo    repository.LikeRepository
	titlePolicy *bluemonday.Policy
	bodyPolicy  *bluemonday.Policy
	pageSize    int
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, commentRepo repository.CommentRepository, likeRepo repository.LikeRepository, pageSize int) PostService {
	return &postService{
		postRepo:    postRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		titlePolicy: bluemonday.StrictPolicy(),
		bodyPolicy:  bluemonday.UGCPolicy(),
		pageSize:    pageSize,
	}
}

func (s *postService) CreatePost(ctx context.Context, authorID uuid.UUID, req dto.CreatePostRequest) (*dto.PostResponse, error) {
	post := &model.Post{
		Title:    s.titlePolicy.Sanitize(req.Title),
		Content:  s.bodyPolicy.Sanitize(req.Content),
		AuthorID: authorID,
	}

	if post.Title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", apperror.ErrInvalidInput)
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	created, err := s.postRepo.FindByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	return s.mapToResponse(ctx, created), nil
}

// ListPosts returns one fixed-size page ordered by last update, newest
// first. An unknown username filter resolves to not-found rather than an
// empty page.
func (s *postService) ListPosts(ctx context.Context, filter dto.PostFilter) (*dto.PaginatedPostResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * s.pageSize

	var (
		posts []*model.Post
		total int64
		err   error
	)

	if filter.Username != "" {
		author, findErr := s.userRepo.FindByUsername(ctx, filter.Username)
		if findErr != nil {
			return nil, translateNotFound(findErr)
		}
		posts, total, err = s.postRepo.FindPageByAuthor(ctx, author.ID, offset, s.pageSize)
	} else {
		posts, total, err = s.postRepo.FindPage(ctx, offset, s.pageSize)
	}
	if err != nil {
		return nil, err
	}

	data := make([]dto.PostResponse, 0, len(posts))
	for _, post := range posts {
		data = append(data, *s.mapToResponse(ctx, post))
	}

	totalPages := int(total) / s.pageSize
	if int(total)%s.pageSize != 0 {
		totalPages++
	}

	return &dto.PaginatedPostResponse{
		Data: data,
		Meta: dto.PaginationMeta{
			CurrentPage: filter.Page,
			TotalPages:  totalPages,
			TotalItems:  total,
			Limit:       s.pageSize,
		},
	}, nil
}

func (s *postService) GetPostDetail(ctx context.Context, postID uuid.UUID) (*dto.PostDetailResponse, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	comments := make([]dto.CommentResponse, 0, len(post.Comments))
	for _, comment := range post.Comments {
		comments = append(comments, mapCommentToResponse(&comment))
	}

	return &dto.PostDetailResponse{
		PostResponse: *s.mapToResponse(ctx, post),
		Comments:     comments,
	}, nil
}

// UpdatePost requires the requester to own the post. The author field is
// reassigned from the requester identity on every update, so a tampered
// author in the stored row cannot survive an edit.
func (s *postService) UpdatePost(ctx context.Context, requesterID, postID uuid.UUID, req dto.UpdatePostRequest) (*dto.PostResponse, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if err := requireOwner(post.AuthorID, requesterID); err != nil {
		return nil, err
	}

	title := s.titlePolicy.Sanitize(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", apperror.ErrInvalidInput)
	}

	post.Title = title
	post.Content = s.bodyPolicy.Sanitize(req.Content)
	post.AuthorID = requesterID

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	updated, err := s.postRepo.FindByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	return s.mapToResponse(ctx, updated), nil
}

func (s *postService) DeletePost(ctx context.Context, requesterID, postID uuid.UUID) error {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return translateNotFound(err)
	}

	if err := requireOwner(post.AuthorID, requesterID); err != nil {
		return err
	}

	return s.postRepo.Delete(ctx, postID)
}

func (s *postService) mapToResponse(ctx context.Context, post *model.Post) *dto.PostResponse {
	authorName := "Unknown"
	if post.Author.Username != "" {
		authorName = post.Author.Username
	}

	likeCount, _ := s.likeRepo.CountByPost(ctx, post.ID)
	commentCount, _ := s.commentRepo.CountByPost(ctx, post.ID)

	return &dto.PostResponse{
		ID:           post.ID,
		Title:        post.Title,
		Content:      post.Content,
		Author:       authorName,
		LikeCount:    likeCount,
		CommentCount: commentCount,
		CreatedAt:    post.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    post.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func mapCommentToResponse(comment *model.Comment) dto.CommentResponse {
	authorName := "Unknown"
	if comment.User.Username != "" {
		authorName = comment.User.Username
	}

	return dto.CommentResponse{
		ID:          comment.ID,
		PostID:      comment.PostID,
		Author:      authorName,
		Content:     comment.Content,
		CommentedAt: comment.CommentedAt.Format("2006-01-02 15:04:05"),
	}
}
