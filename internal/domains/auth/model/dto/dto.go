package dto

import (
	"dockhub/infras/jwt"
	profileDto "dockhub/internal/domains/profile/model/dto"
	gDto "dockhub/shared/dto"
	"dockhub/shared/timezone"
	"time"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=72,nefield=CurrentPassword"`
}

// Tokens is the credential pair handed to the staff console. ExpiresAt lets the board schedule its refresh.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresAt    string `json:"expires_at"`
}

func (t *Tokens) FromTokenPair(pair *jwt.TokenPair) {
	t.AccessToken = pair.AccessToken
	t.RefreshToken = pair.RefreshToken
	t.TokenType = pair.TokenType
	t.ExpiresIn = pair.ExpiresIn
	t.ExpiresAt = gDto.Timestamp(timezone.Now().Add(time.Duration(pair.ExpiresIn) * time.Second))
}

type LoginResponse struct {
	Tokens
	Profile profileDto.ProfileResponse `json:"profile"`
}

type RefreshTokenResponse struct {
	Tokens
}

// LastLoginUpdate and PasswordUpdate are column sets for shared.TransformFields.
type LastLoginUpdate struct {
	LastLogin time.Time `db:"last_login"`
}

type PasswordUpdate struct {
	Password string `db:"password"`
}
