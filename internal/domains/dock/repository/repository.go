package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"dockhub/infras/otel"
	"dockhub/infras/postgres"
	"dockhub/internal/domains/dock/model"
	gDto "dockhub/shared/dto"
	gRepo "dockhub/shared/repository"
)

// DockState stores the claim workflow rows.
type DockState interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.DockState, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.DockState, error)
	InsertIgnore(ctx context.Context, model model.DockState) (bool, error)
	UpdateAffected(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.DockState]
}

func New(db *postgres.Connection, otel otel.Otel) DockState {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.DockState](model.EntityName, model.TableName, model.FieldDockNumber, db, otel),
	}
}
