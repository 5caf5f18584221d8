package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"dockhub/config"
	"dockhub/infras/jwt"
	"dockhub/infras/otel"
	"dockhub/internal/domains/auth/model/dto"
	profileModel "dockhub/internal/domains/profile/model"
	profileDto "dockhub/internal/domains/profile/model/dto"
	profileRepo "dockhub/internal/domains/profile/repository"
	"dockhub/shared"
	"dockhub/shared/constant"
	"dockhub/shared/failure"
	"dockhub/shared/password"
	"dockhub/shared/timezone"
	"fmt"

	"github.com/rs/zerolog/log"
)

const invalidCredentials = "invalid email or password"

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	profileRepo profileRepo.Profile
	cfg         *config.Config
	otel        otel.Otel
	jwtService  jwt.JWT
}

func New(profileRepo profileRepo.Profile, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		profileRepo: profileRepo,
		cfg:         cfg,
		otel:        otel,
		jwtService:  jwt,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	profile, err := s.profileRepo.Get(ctx, profileDto.ByEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile")

		return res, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile.ID == "" {
		log.Warn().Str("email", req.Email).Msg("login attempt with unknown email")
		password.Decoy(req.Password)

		return res, failure.Unauthorized(invalidCredentials) // nolint:wrapcheck
	}

	if err = password.Verify(req.Password, profile.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(invalidCredentials) // nolint:wrapcheck
	}

	if !profile.Active {
		return res, failure.Forbidden("profile is deactivated") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(profile.ID, profile.Email, profile.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	now := timezone.Now()
	lastLogin := dto.LastLoginUpdate{LastLogin: now}
	filter := shared.FilterByID(profile.ID, profileModel.FieldID, profileModel.TableName)

	if err = s.profileRepo.Update(ctx, shared.TransformFields(lastLogin, profile.ID), filter); err != nil {
		log.Error().Err(err).Str("profile_id", profile.ID).Msg("failed to update last login")

		return res, fmt.Errorf("failed to update last login: %w", err)
	}

	profile.LastLogin = &now

	res.FromTokenPair(tokenPair)
	res.Profile.FromModel(profile)

	return res, nil
}

// RefreshToken reissues a pair for a still active profile. Role changes take effect here.
func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwtService.ValidateToken(req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to validate refresh token")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	profile, err := s.profileRepo.Get(ctx, shared.FilterByID(claims.Subject, profileModel.FieldID, profileModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile")

		return res, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile.ID == "" || !profile.Active {
		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(profile.ID, profile.Email, profile.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	profileID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || profileID == "" {
		return failure.Unauthorized("missing authenticated profile") // nolint:wrapcheck
	}

	filter := shared.FilterByID(profileID, profileModel.FieldID, profileModel.TableName)

	profile, err := s.profileRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile")

		return fmt.Errorf("failed to get profile: %w", err)
	}

	if profile.ID == "" {
		return failure.NotFound("profile not found") // nolint:wrapcheck
	}

	if err = password.Verify(req.CurrentPassword, profile.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.PasswordUpdate{Password: hashedPassword}

	if err = s.profileRepo.Update(ctx, shared.TransformFields(updatePassword, profileID), filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
