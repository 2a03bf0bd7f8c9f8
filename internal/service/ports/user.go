package ports

import (
	"context"

	"github.com/nsien-prestige/Eventful-Backend/internal/domain"
)

type UserRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
