package ports

import (
	"context"

	"github.com/nsien-prestige/Eventful-Backend/internal/domain"
)

type TicketNotifier interface {
	NotifyTicketIssued(ctx context.Context, user *domain.User, event *domain.Event, ticket *domain.Ticket)
	NotifySettlementUnadmitted(ctx context.Context, user *domain.User, event *domain.Event, payment *domain.PaymentIntent)
}
