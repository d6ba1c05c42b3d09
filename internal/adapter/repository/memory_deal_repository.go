package repository

import (
	"context"
	"sync"

	"collabhub/internal/domain/entity"
	"collabhub/internal/domain/repository"
	"collabhub/pkg/errors"
)

type memoryDealRepository struct {
	mu    sync.RWMutex
	order []string
	deals map[string]*entity.Deal
}

func NewMemoryDealRepository(seed []*entity.Deal) repository.DealRepository {
	r := &memoryDealRepository{
		deals: make(map[string]*entity.Deal),
	}
	for _, d := range seed {
		dd := *d
		r.order = append(r.order, d.ID)
		r.deals[d.ID] = &dd
	}
	return r
}

func (r *memoryDealRepository) Create(ctx context.Context, deal *entity.Deal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.deals[deal.ID]; exists {
		return errors.Conflict("Deal already exists")
	}
	dd := *deal
	r.order = append(r.order, deal.ID)
	r.deals[deal.ID] = &dd
	return nil
}

func (r *memoryDealRepository) GetByID(ctx context.Context, id string) (*entity.Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	deal, ok := r.deals[id]
	if !ok {
		return nil, errors.NotFound("Deal", nil)
	}
	dd := *deal
	return &dd, nil
}

func (r *memoryDealRepository) List(ctx context.Context, status entity.DealStatus) ([]*entity.Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Deal, 0, len(r.order))
	for _, id := range r.order {
		deal := r.deals[id]
		if status != "" && deal.Status != status {
			continue
		}
		dd := *deal
		result = append(result, &dd)
	}
	return result, nil
}

func (r *memoryDealRepository) Update(ctx context.Context, deal *entity.Deal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.deals[deal.ID]; !ok {
		return errors.NotFound("Deal", nil)
	}
	dd := *deal
	r.deals[deal.ID] = &dd
	return nil
}
