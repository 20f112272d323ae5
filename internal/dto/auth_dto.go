package dto

import "github.com/farhanadi/bloomlog/internal/model"

type RegisterRequest struct {
	Username        string `json:"username" form:"username" binding:"required,min=3,max=50"`
	Email           string `json:"email" form:"email" binding:"required,email"`
	Birthday        string `json:"birthday" form:"birthday" binding:"omitempty,datetime=2006-01-02"`
	Password        string `json:"password" form:"password" binding:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" form:"password_confirm" binding:"required,eqfield=Password"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	ExpiresIn   int64          `json:"expires_in"`
	User        *model.User    `json:"user"`
	Profile     *model.Profile `json:"profile"`
}

type RegisterResponse struct {
	Message string         `json:"message"`
	User    *model.User    `json:"user"`
	Profile *model.Profile `json:"profile"`
}
