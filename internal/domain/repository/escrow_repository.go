package repository

import (
	"context"

	"collabhub/internal/domain/entity"
)

type EscrowRepository interface {
	Create(ctx context.Context, txn *entity.EscrowTransaction) error
	GetByID(ctx context.Context, id string) (*entity.EscrowTransaction, error)
	GetPendingByDealID(ctx context.Context, dealID string) (*entity.EscrowTransaction, error)
	List(ctx context.Context) ([]*entity.EscrowTransaction, error)
	Update(ctx context.Context, txn *entity.EscrowTransaction) error
}
