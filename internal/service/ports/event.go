package ports

import (
	"context"

	"github.com/nsien-prestige/Eventful-Backend/internal/domain"
)

type EventRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Event, error)
}
