package service

import (
	"errors"
	"fmt"
	"io"

	"github.com/farhanadi/bloomlog/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// requireOwner permits a mutation only when the requester is the stored
// owner of the resource. Callers resolve existence first, so a mismatch
// here is always an authorization refusal, never a not-found.
func requireOwner(ownerID, requesterID uuid.UUID) error {
	if ownerID != requesterID {
		return fmt.Errorf("%w: you can only modify your own content", apperror.ErrForbidden)
	}
	return nil
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.ErrNotFound
	}
	return err
}

// ImageFile represents an uploaded image file.
type ImageFile struct {
	Reader   io.Reader
	FileName string
}
