package repository

import (
	"context"
	"sync"

	"collabhub/internal/domain/entity"
	"collabhub/internal/domain/repository"
	"collabhub/pkg/errors"
)

type memoryEscrowRepository struct {
	mu    sync.RWMutex
	order []string
	txns  map[string]*entity.EscrowTransaction
}

func NewMemoryEscrowRepository() repository.EscrowRepository {
	return &memoryEscrowRepository{
		txns: make(map[string]*entity.EscrowTransaction),
	}
}

func (r *memoryEscrowRepository) Create(ctx context.Context, txn *entity.EscrowTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.txns[txn.ID]; exists {
		return errors.Conflict("Escrow transaction already exists")
	}
	tt := *txn
	r.order = append(r.order, txn.ID)
	r.txns[txn.ID] = &tt
	return nil
}

func (r *memoryEscrowRepository) GetByID(ctx context.Context, id string) (*entity.EscrowTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	txn, ok := r.txns[id]
	if !ok {
		return nil, errors.NotFound("Escrow transaction", nil)
	}
	tt := *txn
	return &tt, nil
}

func (r *memoryEscrowRepository) GetPendingByDealID(ctx context.Context, dealID string) (*entity.EscrowTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		txn := r.txns[id]
		if txn.DealID == dealID && txn.Status == entity.EscrowStatusPending {
			tt := *txn
			return &tt, nil
		}
	}
	return nil, errors.NotFound("Escrow transaction", nil)
}

func (r *memoryEscrowRepository) List(ctx context.Context) ([]*entity.EscrowTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.EscrowTransaction, 0, len(r.order))
	for _, id := range r.order {
		tt := *r.txns[id]
		result = append(result, &tt)
	}
	return result, nil
}

func (r *memoryEscrowRepository) Update(ctx context.Context, txn *entity.EscrowTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.txns[txn.ID]; !ok {
		return errors.NotFound("Escrow transaction", nil)
	}
	tt := *txn
	r.txns[txn.ID] = &tt
	return nil
}
