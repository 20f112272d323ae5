package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/farhanadi/bloomlog/pkg/apperror"
)

// Bounds is the maximum pixel size an image may keep on disk. Files that
// exceed it are resized in place after the raw upload has been written;
// oversized uploads are accepted and shrunk, never rejected.
type Bounds struct {
	MaxWidth  int
	MaxHeight int
	// Thumbnail scales down proportionally to fit inside the bound.
	// When false the image is resized to exactly MaxWidth x MaxHeight.
	Thumbnail bool
}

var (
	AvatarBounds  = Bounds{MaxWidth: 300, MaxHeight: 300, Thumbnail: true}
	GalleryBounds = Bounds{MaxWidth: 800, MaxHeight: 1200}
)

// ImageStorage defines contract for image storage provider (local disk implementation).
type ImageStorage interface {
	// SaveImage persists the image from reader and returns the stored path
	// relative to the storage root. folder is a logical subdirectory
	// (e.g. "profile_pics", "gallery_pics").
	SaveImage(ctx context.Context, r io.Reader, folder, fileName string, bounds Bounds) (string, error)
	// DeleteImage removes a previously stored file by its relative path.
	DeleteImage(ctx context.Context, filePath string) error
	// ResolvePath maps a stored relative path to an absolute filesystem path.
	ResolvePath(filePath string) string
}

type localStorage struct {
	baseDir string
}

// NewLocalStorage creates a disk-backed implementation of ImageStorage
// rooted at baseDir. The directory is created if it does not exist.
func NewLocalStorage(baseDir string) (ImageStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", baseDir, err)
	}
	return &localStorage{baseDir: baseDir}, nil
}

func (s *localStorage) SaveImage(ctx context.Context, r io.Reader, folder, fileName string, bounds Bounds) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create folder %s: %w", folder, err)
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(fileName))
	absPath := filepath.Join(dir, name)

	out, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		_ = os.Remove(absPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to flush file: %w", err)
	}

	if err := normalize(absPath, bounds); err != nil {
		_ = os.Remove(absPath)
		return "", err
	}

	return filepath.ToSlash(filepath.Join(folder, name)), nil
}

func (s *localStorage) DeleteImage(ctx context.Context, filePath string) error {
	if err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(filePath))); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file %s: %w", filePath, err)
	}
	return nil
}

func (s *localStorage) ResolvePath(filePath string) string {
	return filepath.Join(s.baseDir, filepath.FromSlash(filePath))
}

// normalize re-opens the stored file and shrinks it if it exceeds bounds.
// Files already within bounds are left untouched, so running it again on
// the same file is a no-op.
func normalize(absPath string, bounds Bounds) error {
	if bounds.MaxWidth == 0 && bounds.MaxHeight == 0 {
		return nil
	}

	img, err := imaging.Open(absPath)
	if err != nil {
		return fmt.Errorf("%w: file is not a valid image", apperror.ErrInvalidInput)
	}

	size := img.Bounds().Size()
	if size.X <= bounds.MaxWidth && size.Y <= bounds.MaxHeight {
		return nil
	}

	var resized = img
	if bounds.Thumbnail {
		resized = imaging.Fit(img, bounds.MaxWidth, bounds.MaxHeight, imaging.Lanczos)
	} else {
		resized = imaging.Resize(img, bounds.MaxWidth, bounds.MaxHeight, imaging.Lanczos)
	}

	if err := imaging.Save(resized, absPath); err != nil {
		return fmt.Errorf("failed to save resized image: %w", err)
	}
	return nil
}
