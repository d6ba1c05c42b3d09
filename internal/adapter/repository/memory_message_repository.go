package repository

import (
	"context"
	"sync"

	"collabhub/internal/domain/entity"
	"collabhub/internal/domain/repository"
)

// memoryMessageRepository keys insertion-ordered threads by contact
// id. A contact without messages simply has an empty thread.
type memoryMessageRepository struct {
	mu      sync.RWMutex
	threads map[string][]*entity.Message
}

func NewMemoryMessageRepository(seed map[string][]*entity.Message) repository.MessageRepository {
	r := &memoryMessageRepository{
		threads: make(map[string][]*entity.Message),
	}
	for contactID, msgs := range seed {
		for _, m := range msgs {
			mm := *m
			r.threads[contactID] = append(r.threads[contactID], &mm)
		}
	}
	return r
}

func (r *memoryMessageRepository) Append(ctx context.Context, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	mm := *message
	r.threads[message.ContactID] = append(r.threads[message.ContactID], &mm)
	return nil
}

func (r *memoryMessageRepository) ListByContact(ctx context.Context, contactID string) ([]*entity.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	thread := r.threads[contactID]
	result := make([]*entity.Message, 0, len(thread))
	for _, m := range thread {
		mm := *m
		result = append(result, &mm)
	}
	return result, nil
}

func (r *memoryMessageRepository) MarkThreadRead(ctx context.Context, contactID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	flipped := 0
	for _, m := range r.threads[contactID] {
		if m.Sender == entity.SenderCounterparty && !m.Read {
			m.Read = true
			flipped++
		}
	}
	return flipped, nil
}
