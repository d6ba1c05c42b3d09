package repository

import (
	"context"

	"collabhub/internal/domain/entity"
)

// MessageRepository owns the per-contact threads. Messages are
// append-only; the only mutation is flipping the read flag.
type MessageRepository interface {
	Append(ctx context.Context, message *entity.Message) error
	ListByContact(ctx context.Context, contactID string) ([]*entity.Message, error)
	// MarkThreadRead flips unread counterparty messages in the thread
	// and returns how many were flipped.
	MarkThreadRead(ctx context.Context, contactID string) (int, error)
}
