package repository

import (
	"context"

	"collabhub/internal/domain/entity"
)

type DealRepository interface {
	Create(ctx context.Context, deal *entity.Deal) error
	GetByID(ctx context.Context, id string) (*entity.Deal, error)
	List(ctx context.Context, status entity.DealStatus) ([]*entity.Deal, error)
	Update(ctx context.Context, deal *entity.Deal) error
}
