package dto

import "github.com/google/uuid"

// UpdateProfileRequest carries the account-side fields. The avatar file
// arrives separately as multipart form data. All fields are optional;
// omitted fields keep their stored values.
type UpdateProfileRequest struct {
	Username *string `json:"username" form:"username" binding:"omitempty,min=3,max=50"`
	Email    *string `json:"email" form:"email" binding:"omitempty,email"`
	Birthday *string `json:"birthday" form:"birthday" binding:"omitempty,datetime=2006-01-02"`
}

type ProfileResponse struct {
	UserID     uuid.UUID `json:"user_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Birthday   string    `json:"birthday"`
	AvatarPath string    `json:"avatar_path"`
}

type UpdateProfileResponse struct {
	Changed bool            `json:"changed"`
	Message string          `json:"message"`
	Profile ProfileResponse `json:"profile"`
}
