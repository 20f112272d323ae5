package repository

import (
	"context"

	"github.com/farhanadi/bloomlog/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	FindPage(ctx context.Context, offset, limit int) ([]*model.Post, int64, error)
	FindPageByAuthor(ctx context.Context, authorID uuid.UUID, offset, limit int) ([]*model.Post, int64, error)
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.id ASC")
		}).
		Preload("Comments.User").
		Where("id = ?", id).
		First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// FindPage returns posts ordered by last update, newest first.
func (r *postRepository) FindPage(ctx context.Context, offset, limit int) ([]*model.Post, int64, error) {
	return r.findPage(ctx, r.db.WithContext(ctx).Model(&model.Post{}), offset, limit)
}

func (r *postRepository) FindPageByAuthor(ctx context.Context, authorID uuid.UUID, offset, limit int) ([]*model.Post, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Post{}).Where("author_id = ?", authorID)
	return r.findPage(ctx, query, offset, limit)
}

func (r *postRepository) findPage(ctx context.Context, query *gorm.DB, offset, limit int) ([]*model.Post, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*model.Post
	if err := query.
		Preload("Author").
		Order("updated_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// Delete removes the post and cascades to its comments and likes in one
// transaction.
func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, "id = ?", id).Error
	})
}
