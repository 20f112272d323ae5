package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/farhanadi/bloomlog/internal/dto"
	"github.com/farhanadi/bloomlog/internal/model"
	"github.com/farhanadi/bloomlog/internal/repository"
	"github.com/farhanadi/bloomlog/pkg/apperror"
	"github.com/farhanadi/bloomlog/pkg/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileService interface {
	GetProfileByUsername(ctx context.Context, username string) (*dto.ProfileResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error)
	ListProfiles(ctx context.Context) ([]dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req dto.UpdateProfileRequest, avatar *ImageFile) (*dto.UpdateProfileResponse, error)
}

type profileService struct {
	repo         repository.UserRepository
	imageStorage storage.ImageStorage
}

func NewProfileService(repo repository.UserRepository, imageStorage storage.ImageStorage) ProfileService {
	return &profileService{
		repo:         repo,
		imageStorage: imageStorage,
	}
}

func (s *profileService) GetProfileByUsername(ctx context.Context, username string) (*dto.ProfileResponse, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return mapProfileToResponse(user), nil
}

func (s *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return mapProfileToResponse(user), nil
}

func (s *profileService) ListProfiles(ctx context.Context) ([]dto.ProfileResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]dto.ProfileResponse, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, *mapProfileToResponse(user))
	}
	return profiles, nil
}

// UpdateProfile validates the account fields and the avatar together before
// writing anything: either every change is persisted or none is. A request
// that changes nothing is suppressed and reported as such.
func (s *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req dto.UpdateProfileRequest, avatar *ImageFile) (*dto.UpdateProfileResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	if user.Profile == nil {
		return nil, fmt.Errorf("profile missing for user %s", user.ID)
	}
	profile := user.Profile

	changed := false

	if req.Username != nil && *req.Username != "" && *req.Username != user.Username {
		if _, err := s.repo.FindByUsername(ctx, *req.Username); err == nil {
			return nil, fmt.Errorf("%w: username already taken", apperror.ErrConflict)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Username = *req.Username
		changed = true
	}

	if req.Email != nil && *req.Email != "" && *req.Email != user.Email {
		if _, err := s.repo.FindByEmail(ctx, *req.Email); err == nil {
			return nil, fmt.Errorf("%w: email already registered", apperror.ErrConflict)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = *req.Email
		changed = true
	}

	if req.Birthday != nil && *req.Birthday != "" {
		parsed, err := time.Parse(birthdayLayout, *req.Birthday)
		if err != nil {
			return nil, fmt.Errorf("%w: birthday must be a valid date (YYYY-MM-DD)", apperror.ErrInvalidInput)
		}
		if !parsed.Equal(profile.Birthday) {
			profile.Birthday = parsed
			changed = true
		}
	}

	var newAvatarPath, oldAvatarPath string
	if avatar != nil && avatar.Reader != nil {
		path, err := s.imageStorage.SaveImage(ctx, avatar.Reader, "profile_pics", avatar.FileName, storage.AvatarBounds)
		if err != nil {
			return nil, err
		}
		newAvatarPath = path
		oldAvatarPath = profile.AvatarPath
		profile.AvatarPath = path
		changed = true
	}

	if !changed {
		return &dto.UpdateProfileResponse{
			Changed: false,
			Message: "No changes were made to your profile.",
			Profile: *mapProfileToResponse(user),
		}, nil
	}

	if err := s.repo.Update(ctx, user, profile); err != nil {
		if newAvatarPath != "" {
			_ = s.imageStorage.DeleteImage(ctx, newAvatarPath)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: username or email already registered", apperror.ErrConflict)
		}
		return nil, err
	}

	if oldAvatarPath != "" && oldAvatarPath != "default.jpeg" {
		_ = s.imageStorage.DeleteImage(ctx, oldAvatarPath)
	}

	updated, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.UpdateProfileResponse{
		Changed: true,
		Message: "Your profile has been updated!",
		Profile: *mapProfileToResponse(updated),
	}, nil
}

func mapProfileToResponse(user *model.User) *dto.ProfileResponse {
	response := &dto.ProfileResponse{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
	if user.Profile != nil {
		response.Birthday = user.Profile.Birthday.Format(birthdayLayout)
		response.AvatarPath = user.Profile.AvatarPath
	}
	return response
}
