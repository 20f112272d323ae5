package storage

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/farhanadi/bloomlog/pkg/apperror"
)

func newTestStorage(t *testing.T) ImageStorage {
	t.Helper()

	s, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	return s
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func storedSize(t *testing.T, s ImageStorage, path string) (int, int) {
	t.Helper()

	img, err := imaging.Open(s.ResolvePath(path))
	if err != nil {
		t.Fatalf("failed to open stored image %s: %v", path, err)
	}
	size := img.Bounds().Size()
	return size.X, size.Y
}

func TestSaveImageCompliantUntouched(t *testing.T) {
	s := newTestStorage(t)
	raw := pngBytes(t, 200, 100)

	path, err := s.SaveImage(context.Background(), bytes.NewReader(raw), "gallery_pics", "ok.png", GalleryBounds)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(path, "gallery_pics/") {
		t.Errorf("expected path under the folder, got %q", path)
	}

	// A file within bounds is written as-is, byte for byte.
	stored, err := os.ReadFile(s.ResolvePath(path))
	if err != nil {
		t.Fatalf("failed to read stored file: %v", err)
	}
	if !bytes.Equal(stored, raw) {
		t.Error("expected compliant image stored without re-encoding")
	}
}

func TestSaveImageThumbnailKeepsAspect(t *testing.T) {
	s := newTestStorage(t)

	path, err := s.SaveImage(context.Background(), bytes.NewReader(pngBytes(t, 600, 300)), "profile_pics", "wide.png", AvatarBounds)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	w, h := storedSize(t, s, path)
	if w != 300 || h != 150 {
		t.Errorf("expected 300x150, got %dx%d", w, h)
	}
}

func TestSaveImageExactResize(t *testing.T) {
	s := newTestStorage(t)

	path, err := s.SaveImage(context.Background(), bytes.NewReader(pngBytes(t, 1600, 1600)), "gallery_pics", "big.png", GalleryBounds)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	w, h := storedSize(t, s, path)
	if w != 800 || h != 1200 {
		t.Errorf("expected exact 800x1200, got %dx%d", w, h)
	}
}

func TestSaveImageRejectsNonImage(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.SaveImage(context.Background(), strings.NewReader("not an image"), "profile_pics", "junk.png", AvatarBounds)
	if !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("expected invalid input for non-image payload, got %v", err)
	}
}

func TestSaveImageDistinctNamesForSameFile(t *testing.T) {
	s := newTestStorage(t)
	raw := pngBytes(t, 10, 10)

	p1, err := s.SaveImage(context.Background(), bytes.NewReader(raw), "gallery_pics", "same.png", GalleryBounds)
	if err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	p2, err := s.SaveImage(context.Background(), bytes.NewReader(raw), "gallery_pics", "same.png", GalleryBounds)
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if p1 == p2 {
		t.Error("expected repeated uploads of the same name to get distinct paths")
	}
}

func TestDeleteImage(t *testing.T) {
	s := newTestStorage(t)

	path, err := s.SaveImage(context.Background(), bytes.NewReader(pngBytes(t, 10, 10)), "profile_pics", "gone.png", AvatarBounds)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := s.DeleteImage(context.Background(), path); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := os.Stat(s.ResolvePath(path)); !os.IsNotExist(err) {
		t.Error("expected file to be removed")
	}

	// Deleting an already-missing file is not an error.
	if err := s.DeleteImage(context.Background(), path); err != nil {
		t.Errorf("expected idempotent delete, got %v", err)
	}
}
