package repository

import (
	"context"
	"sync"

	"collabhub/internal/domain/entity"
	"collabhub/internal/domain/repository"
	"collabhub/pkg/errors"
)

// memoryContactRepository holds the session's contact list. Order is
// the seed order; contacts are never removed during a session.
type memoryContactRepository struct {
	mu       sync.RWMutex
	order    []string
	contacts map[string]*entity.Contact
}

func NewMemoryContactRepository(seed []*entity.Contact) repository.ContactRepository {
	r := &memoryContactRepository{
		contacts: make(map[string]*entity.Contact, len(seed)),
	}
	for _, c := range seed {
		cc := *c
		r.order = append(r.order, c.ID)
		r.contacts[c.ID] = &cc
	}
	return r
}

func (r *memoryContactRepository) GetByID(ctx context.Context, id string) (*entity.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contact, ok := r.contacts[id]
	if !ok {
		return nil, errors.NotFound("Contact", nil)
	}
	cc := *contact
	return &cc, nil
}

func (r *memoryContactRepository) List(ctx context.Context) ([]*entity.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Contact, 0, len(r.order))
	for _, id := range r.order {
		cc := *r.contacts[id]
		result = append(result, &cc)
	}
	return result, nil
}

func (r *memoryContactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.contacts[contact.ID]; !ok {
		return errors.NotFound("Contact", nil)
	}
	cc := *contact
	r.contacts[contact.ID] = &cc
	return nil
}
