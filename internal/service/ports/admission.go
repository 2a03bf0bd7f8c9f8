package ports

import (
	"context"
	"time"

	"github.com/nsien-prestige/Eventful-Backend/internal/domain"
)

type AdmissionRepo interface {
	Admit(ctx context.Context, a *domain.Admission) (*domain.Admission, error)
	GetByTicketID(ctx context.Context, ticketID string) (*domain.Admission, error)
	GetByEventAndPayer(ctx context.Context, eventID, payerID string) (*domain.Admission, error)
	Consume(ctx context.Context, ticketID string, at time.Time) error
	MarkDelivered(ctx context.Context, ticketID string, at time.Time) error
}
