package ports

import (
	"context"
	"time"

	"github.com/nsien-prestige/Eventful-Backend/internal/domain"
)

type PaymentRepo interface {
	CreatePending(ctx context.Context, p *domain.PaymentIntent) error
	GetByReference(ctx context.Context, reference string) (*domain.PaymentIntent, error)
	Transition(ctx context.Context, reference string, from, to domain.PaymentState) (*domain.PaymentIntent, error)
	FindSettled(ctx context.Context, eventID, payerID string) (*domain.PaymentIntent, error)
	SetAuthorizationURL(ctx context.Context, reference, url string) error
	FlagUnadmitted(ctx context.Context, reference string, at time.Time) error
	FlagIntegrityFault(ctx context.Context, reference string, at time.Time) error
	MarkReconciled(ctx context.Context, reference string, at time.Time) error
	ListStalePending(ctx context.Context, before time.Time, limit int) ([]*domain.PaymentIntent, error)
	ListSettledWithoutAdmission(ctx context.Context, before time.Time, limit int) ([]*domain.PaymentIntent, error)
	ListUnadmitted(ctx context.Context) ([]*domain.PaymentIntent, error)
}
