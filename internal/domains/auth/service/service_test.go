package service_test

import (
	"context"
	"dockhub/config"
	"dockhub/infras/jwt"
	jwtMocks "dockhub/infras/jwt/mocks"
	"dockhub/infras/otel/mocks"
	"dockhub/internal/domains/auth/model/dto"
	"dockhub/internal/domains/auth/service"
	profileMocks "dockhub/internal/domains/profile/mocks"
	profileModel "dockhub/internal/domains/profile/model"
	"dockhub/shared/constant"
	"dockhub/shared/failure"
	gModel "dockhub/shared/model"
	"dockhub/shared/password"
	"dockhub/shared/timezone"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// "password" hashed with bcrypt
const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

func validProfile() profileModel.Profile {
	return profileModel.Profile{
		ID:       "profile-id-123",
		Email:    "csr@example.com",
		Password: passwordHash,
		FullName: "Front Desk",
		Role:     constant.RoleCSR,
		Active:   true,
		Metadata: gModel.NewMetadata(constant.ContextSystem, timezone.Now()),
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfileRepo := profileMocks.NewMockProfile(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockProfileRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

	profile := validProfile()

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantCode  int
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "csr@example.com", Password: "password"},
			setupMock: func() {
				mockProfileRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(profile, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(profile.ID, profile.Email, profile.Role).
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
					}, nil)

				mockProfileRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Contains(t, fields, profileModel.FieldLastLogin)

						return nil
					})
			},
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "nobody@example.com", Password: "password"},
			setupMock: func() {
				mockProfileRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(profileModel.Profile{}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "repository error",
			req:  dto.LoginRequest{Email: "csr@example.com", Password: "password"},
			setupMock: func() {
				mockProfileRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(profileModel.Profile{}, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "csr@example.com", Password: "wrongpassword"},
			setupMock: func() {
				mockProfileRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(profile, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "inactive profile",
			req:  dto.LoginRequest{Email: "csr@example.com", Password: "password"},
			setupMock: func() {
				inactive := profile
				inactive.Active = false

				mockProfileRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactive, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "token generation error",
			req:  dto.LoginRequest{Email: "csr@example.com", Password: "password"},
			setupMock: func() {
				mockProfileRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(profile, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(profile.ID, profile.Email, profile.Role).
					Return(nil, errors.New("token generation failed"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "update last login error",
			req:  dto.LoginRequest{Email: "csr@example.com", Password: "password"},
			setupMock: func() {
				mockProfileRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(profile, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(profile.ID, profile.Email, profile.Role).
					Return(&jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}, nil)

				mockProfileRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Login(context.Background(), tt.req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEmpty(t, result.RefreshToken)
				assert.Equal(t, profile.ID, result.Profile.ID)
				assert.NotNil(t, result.Profile.LastLogin)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfileRepo := profileMocks.NewMockProfile(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockProfileRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

	profile := validProfile()
	claims := &jwt.Claims{Email: profile.Email, Role: constant.RoleAdmin, Type: jwt.RefreshToken}
	claims.Subject = profile.ID

	tests := []struct {
		name      string
		token     string
		setupMock func()
		wantErr   bool
	}{
		{
			name:  "successful token refresh uses current role",
			token: "valid-refresh-token",
			setupMock: func() {
				mockJWT.EXPECT().
					ValidateToken("valid-refresh-token", jwt.RefreshToken).
					Return(claims, nil)

				mockProfileRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(profile, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(profile.ID, profile.Email, constant.RoleCSR).
					Return(&jwt.TokenPair{
						AccessToken:  "new-access-token",
						RefreshToken: "new-refresh-token",
					}, nil)
			},
		},
		{
			name:  "invalid refresh token",
			token: "invalid-refresh-token",
			setupMock: func() {
				mockJWT.EXPECT().
					ValidateToken("invalid-refresh-token", jwt.RefreshToken).
					Return(nil, jwt.ErrInvalidToken)
			},
			wantErr: true,
		},
		{
			name:  "profile deactivated since issue",
			token: "valid-refresh-token",
			setupMock: func() {
				inactive := profile
				inactive.Active = false

				mockJWT.EXPECT().
					ValidateToken("valid-refresh-token", jwt.RefreshToken).
					Return(claims, nil)

				mockProfileRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactive, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: tt.token})

			if tt.wantErr {
				assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "new-access-token", result.AccessToken)
				assert.Equal(t, "new-refresh-token", result.RefreshToken)
			}
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfileRepo := profileMocks.NewMockProfile(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockProfileRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

	profile := validProfile()
	authenticated := context.WithValue(context.Background(), constant.ContextKeyUserID, profile.ID)

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.ChangePasswordRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful password change",
			ctx:  authenticated,
			req:  dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword123"},
			setupMock: func() {
				mockProfileRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(profile, nil)

				mockProfileRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						hashed, _ := fields[profileModel.FieldPassword].(string)
						assert.NoError(t, password.Verify("newpassword123", hashed))

						return nil
					})
			},
		},
		{
			name:      "anonymous caller",
			ctx:       context.Background(),
			req:       dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword123"},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "profile removed",
			ctx:  authenticated,
			req:  dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword123"},
			setupMock: func() {
				mockProfileRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(profileModel.Profile{}, nil)
			},
			wantErr: true,
		},
		{
			name: "wrong current password",
			ctx:  authenticated,
			req:  dto.ChangePasswordRequest{CurrentPassword: "wrongpassword", NewPassword: "newpassword123"},
			setupMock: func() {
				mockProfileRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(profile, nil)
			},
			wantErr: true,
		},
		{
			name: "update password error",
			ctx:  authenticated,
			req:  dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword123"},
			setupMock: func() {
				mockProfileRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(profile, nil)

				mockProfileRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.ChangePassword(tt.ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
