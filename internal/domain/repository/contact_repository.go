package repository

import (
	"context"

	"collabhub/internal/domain/entity"
)

type ContactRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Contact, error)
	List(ctx context.Context) ([]*entity.Contact, error)
	Update(ctx context.Context, contact *entity.Contact) error
}
