package service

import (
	"context"
	"fmt"

	"github.com/farhanadi/bloomlog/internal/dto"
	"github.com/farhanadi/bloomlog/internal/model"
	"github.com/farhanadi/bloomlog/internal/repository"
	"github.com/farhanadi/bloomlog/pkg/apperror"
	"github.com/farhanadi/bloomlog/pkg/storage"
)

type GalleryService interface {
	UploadImage(ctx context.Context, title string, file *ImageFile) (*dto.GalleryImageResponse, error)
	ListImages(ctx context.Context) ([]dto.GalleryImageResponse, error)
}

type galleryService struct {
	imageRepo    repository.GalleryImageRepository
	imageStorage storage.ImageStorage
}

func NewGalleryService(imageRepo repository.GalleryImageRepository, imageStorage storage.ImageStorage) GalleryService {
	return &galleryService{
		imageRepo:    imageRepo,
		imageStorage: imageStorage,
	}
}

// UploadImage stores the raw file first; oversized images are then shrunk
// in place to the gallery bound rather than rejected.
func (s *galleryService) UploadImage(ctx context.Context, title string, file *ImageFile) (*dto.GalleryImageResponse, error) {
	if file == nil || file.Reader == nil {
		return nil, fmt.Errorf("%w: image file is required", apperror.ErrInvalidInput)
	}

	path, err := s.imageStorage.SaveImage(ctx, file.Reader, "gallery_pics", file.FileName, storage.GalleryBounds)
	if err != nil {
		return nil, err
	}

	image := &model.GalleryImage{
		Title:    title,
		FilePath: path,
	}

	if err := s.imageRepo.Create(ctx, image); err != nil {
		_ = s.imageStorage.DeleteImage(ctx, path)
		return nil, err
	}

	response := mapImageToResponse(image)
	return &response, nil
}

func (s *galleryService) ListImages(ctx context.Context) ([]dto.GalleryImageResponse, error) {
	images, err := s.imageRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.GalleryImageResponse, 0, len(images))
	for _, image := range images {
		responses = append(responses, mapImageToResponse(image))
	}
	return responses, nil
}

func mapImageToResponse(image *model.GalleryImage) dto.GalleryImageResponse {
	return dto.GalleryImageResponse{
		ID:        image.ID,
		Title:     image.Title,
		FilePath:  image.FilePath,
		CreatedAt: image.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
