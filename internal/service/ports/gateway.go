package ports

import (
	"context"

	"github.com/nsien-prestige/Eventful-Backend/internal/domain"
)

type PaymentGateway interface {
	Initialize(ctx context.Context, in domain.GatewayCheckout) (authorizationURL string, err error)
	Verify(ctx context.Context, reference string) (*domain.GatewayTransaction, error)
}
