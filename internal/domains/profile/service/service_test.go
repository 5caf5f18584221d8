package service_test

import (
	"context"
	"dockhub/config"
	otelMocks "dockhub/infras/otel/mocks"
	"dockhub/internal/domains/profile/mocks"
	"dockhub/internal/domains/profile/model"
	"dockhub/internal/domains/profile/model/dto"
	"dockhub/internal/domains/profile/service"
	cacheMocks "dockhub/shared/cache/mocks"
	"dockhub/shared/constant"
	gDto "dockhub/shared/dto"
	"dockhub/shared/failure"
	"dockhub/shared/password"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Profile, *mocks.MockProfile) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProfile(ctrl)

	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
	redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redisCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redisCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(repo, &config.Config{}, redisCache, otelMocks.NewOtel()), repo
}

func adminContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
}

func TestCreate(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p model.Profile) error {
		assert.Equal(t, "csr@example.com", p.Email)
		assert.Equal(t, constant.RoleCSR, p.Role)
		assert.Equal(t, "admin-1", p.CreatedBy)
		assert.True(t, p.Active)
		assert.NoError(t, password.Verify("password123", p.Password))

		return nil
	})

	res, err := svc.Create(adminContext(), dto.CreateProfileRequest{
		Email:    " CSR@example.com ",
		Password: "password123",
		FullName: "Front Desk",
	})

	require.NoError(t, err)
	assert.Equal(t, "csr@example.com", res.Email)
	assert.NotEmpty(t, res.ID)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	tests := []struct {
		name  string
		setup func(repo *mocks.MockProfile)
	}{
		{
			name: "already exists",
			setup: func(repo *mocks.MockProfile) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
		},
		{
			name: "lost race on insert",
			setup: func(repo *mocks.MockProfile) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("failed to insert data (profile): %w", &pq.Error{Code: "23505"}))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			tt.setup(repo)

			_, err := svc.Create(adminContext(), dto.CreateProfileRequest{
				Email: "csr@example.com", Password: "password123", FullName: "Front Desk",
			})
			assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Profile{}, nil)

	_, err := svc.Get(adminContext(), "missing")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestMe(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Profile{ID: "admin-1", Role: constant.RoleAdmin}, nil)

		res, err := svc.Me(adminContext())
		require.NoError(t, err)
		assert.Equal(t, constant.RoleAdmin, res.Role)
	})

	t.Run("anonymous", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Me(context.Background())
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestGetAll(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Profile, error) {
			assert.Equal(t, constant.FieldCreatedAt, params.SortBy)

			return []model.Profile{{ID: "a"}, {ID: "b"}}, nil
		})

	res, err := svc.GetAll(adminContext(), gDto.QueryParams{Page: 1, Limit: 2, SortBy: "password"}, dto.Filter{Role: constant.RoleCSR})

	require.NoError(t, err)
	assert.Len(t, res.Profiles, 2)
	assert.Equal(t, 2, res.TotalPage)
}

func TestGetAll_InvalidRole(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.GetAll(adminContext(), gDto.QueryParams{Page: 1, Limit: 10}, dto.Filter{Role: "driver"})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestUpdate(t *testing.T) {
	inactive := false

	t.Run("deactivates another profile", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, &inactive, fields[model.FieldActive])
			assert.NotContains(t, fields, model.FieldRole)

			return nil
		})
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Profile{ID: "csr-1"}, nil)

		res, err := svc.Update(adminContext(), dto.UpdateProfileRequest{Active: &inactive}, "csr-1")
		require.NoError(t, err)
		assert.False(t, res.Active)
	})

	t.Run("cannot deactivate self", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Update(adminContext(), dto.UpdateProfileRequest{Active: &inactive}, "admin-1")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("empty request", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Update(adminContext(), dto.UpdateProfileRequest{}, "csr-1")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("missing profile", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Update(adminContext(), dto.UpdateProfileRequest{Role: constant.RoleAdmin}, "ghost")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
