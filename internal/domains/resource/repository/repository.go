package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"slotkeeper/infras/otel"
	"slotkeeper/infras/postgres"
	"slotkeeper/internal/domains/resource/model"
	gDto "slotkeeper/shared/dto"
	gRepo "slotkeeper/shared/repository"
)

type Business interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Business, error)
}

type Resource interface {
	Insert(ctx context.Context, model model.Resource) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Resource, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Resource, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type businessRepository struct {
	gRepo.Repository[model.Business]
}

func NewBusiness(db *postgres.Connection, otel otel.Otel) Business {
	return &businessRepository{
		Repository: gRepo.NewRepository[model.Business](model.BusinessEntityName, model.BusinessTableName, model.FieldID, db, otel),
	}
}

type resourceRepository struct {
	gRepo.Repository[model.Resource]
}

func New(db *postgres.Connection, otel otel.Otel) Resource {
	return &resourceRepository{
		Repository: gRepo.NewRepository[model.Resource](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
