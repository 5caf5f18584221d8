package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"dockhub/infras/otel"
	"dockhub/infras/postgres"
	"dockhub/internal/domains/checkin/model"
	gDto "dockhub/shared/dto"
	gRepo "dockhub/shared/repository"
)

type CheckIn interface {
	Insert(ctx context.Context, model model.CheckIn) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CheckIn, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CheckIn, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.CheckIn]
}

func New(db *postgres.Connection, otel otel.Otel) CheckIn {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CheckIn](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
