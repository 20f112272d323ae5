package repository

import (
	"context"

	"github.com/farhanadi/bloomlog/internal/model"
	"gorm.io/gorm"
)

type GalleryImageRepository interface {
	Create(ctx context.Context, image *model.GalleryImage) error
	FindByID(ctx context.Context, id uint) (*model.GalleryImage, error)
	FindAll(ctx context.Context) ([]*model.GalleryImage, error)
}

type galleryImageRepository struct {
	db *gorm.DB
}

func NewGalleryImageRepository(db *gorm.DB) GalleryImageRepository {
	return &galleryImageRepository{db: db}
}

func (r *galleryImageRepository) Create(ctx context.Context, image *model.GalleryImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *galleryImageRepository) FindByID(ctx context.Context, id uint) (*model.GalleryImage, error) {
	var image model.GalleryImage
	if err := r.db.WithContext(ctx).First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *galleryImageRepository) FindAll(ctx context.Context) ([]*model.GalleryImage, error) {
	var images []*model.GalleryImage
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&images).Error
	return images, err
}
