package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nsien-prestige/Eventful-Backend/internal/domain"
	"github.com/nsien-prestige/Eventful-Backend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type CheckoutService struct {
	payments   ports.PaymentRepo
	admissions ports.AdmissionRepo
	events     ports.EventRepo
	users      ports.UserRepo
	gateway    ports.PaymentGateway
	ledger     *CapacityLedger
	logger     logger.Logger
}

func NewCheckoutService(
	payments ports.PaymentRepo,
	admissions ports.AdmissionRepo,
	events ports.EventRepo,
	users ports.UserRepo,
	gateway ports.PaymentGateway,
	ledger *CapacityLedger,
	logger logger.Logger,
) *CheckoutService {
	return &CheckoutService{
		payments:   payments,
		admissions: admissions,
		events:     events,
		users:      users,
		gateway:    gateway,
		ledger:     ledger,
		logger:     logger,
	}
}

// Checkout creates a Pending intent and opens a gateway checkout for it.
func (s *CheckoutService) Checkout(ctx context.Context, in domain.CheckoutInput) (*domain.CheckoutSession, error) {
	event, err := s.events.GetByID(ctx, in.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if !event.Admitting() {
		return nil, domain.ErrEventNotActive
	}
	if event.PriceMinor <= 0 {
		return nil, fmt.Errorf("%w: event is free", domain.ErrValidation)
	}

	user, err := s.users.GetByID(ctx, in.PayerID)
	if err != nil {
		return nil, fmt.Errorf("check payer: %w", err)
	}

	_, err = s.payments.FindSettled(ctx, in.EventID, in.PayerID)
	switch {
	case err == nil:
		return nil, domain.ErrAlreadyPaid
	case !errors.Is(err, domain.ErrPaymentNotFound):
		return nil, fmt.Errorf("check settled payment: %w", err)
	}

	reference := in.Reference
	if reference == "" {
		reference = fmt.Sprintf("EVT_%d_%s", time.Now().UnixMilli(), in.PayerID)
	}

	intent := &domain.PaymentIntent{
		Reference:   reference,
		PayerID:     in.PayerID,
		EventID:     in.EventID,
		AmountMinor: event.PriceMinor,
		CreatedAt:   time.Now().UTC(),
	}
	if err = s.payments.CreatePending(ctx, intent); err != nil {
		if errors.Is(err, domain.ErrDuplicateReference) {
			return s.resume(ctx, intent, user.Email)
		}
		return nil, fmt.Errorf("create payment: %w", err)
	}

	url, err := s.open(ctx, intent, user.Email)
	if err != nil {
		return nil, err
	}

	s.logger.Info("checkout initialized",
		logger.String("reference", reference),
		logger.String("event_id", in.EventID),
		logger.String("payer_id", in.PayerID),
		logger.Int64("amount_minor", intent.AmountMinor),
	)

	return &domain.CheckoutSession{
		Reference:        reference,
		AuthorizationURL: url,
		AmountMinor:      intent.AmountMinor,
	}, nil
}

// open asks the gateway for a hosted checkout page and stores its URL.
func (s *CheckoutService) open(ctx context.Context, p *domain.PaymentIntent, email string) (string, error) {
	url, err := s.gateway.Initialize(ctx, domain.GatewayCheckout{
		Reference:   p.Reference,
		Email:       email,
		AmountMinor: p.AmountMinor,
	})
	if err != nil {
		return "", fmt.Errorf("initialize gateway checkout: %w", err)
	}

	if err = s.payments.SetAuthorizationURL(ctx, p.Reference, url); err != nil {
		s.logger.Error("failed to store authorization url",
			logger.String("reference", p.Reference),
			logger.String("error", err.Error()),
		)
	}
	return url, nil
}

// resume answers a repeated checkout with the same reference: the intent
// already exists, so the stored session is returned instead of an error.
// A Pending intent that never got a checkout URL is opened again.
func (s *CheckoutService) resume(ctx context.Context, want *domain.PaymentIntent, email string) (*domain.CheckoutSession, error) {
	existing, err := s.payments.GetByReference(ctx, want.Reference)
	if err != nil {
		return nil, fmt.Errorf("get existing payment: %w", err)
	}
	if existing.PayerID != want.PayerID || existing.EventID != want.EventID {
		return nil, domain.ErrDuplicateReference
	}

	url := existing.AuthorizationURL
	if existing.State == domain.PaymentStatePending && url == "" {
		if url, err = s.open(ctx, existing, email); err != nil {
			return nil, err
		}
		s.logger.Info("checkout reopened",
			logger.String("reference", existing.Reference),
			logger.String("payer_id", existing.PayerID),
		)
	}

	return &domain.CheckoutSession{
		Reference:        existing.Reference,
		AuthorizationURL: url,
		AmountMinor:      existing.AmountMinor,
		AlreadyInitiated: true,
	}, nil
}

// Verify reports the local state next to the gateway's view. It never
// changes state.
func (s *CheckoutService) Verify(ctx context.Context, reference, payerID string) (*domain.PaymentStatus, error) {
	p, err := s.payments.GetByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if p.PayerID != payerID {
		return nil, domain.ErrPaymentNotFound
	}

	tx, err := s.gateway.Verify(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("verify with gateway: %w", err)
	}

	return &domain.PaymentStatus{Payment: p, GatewayStatus: tx.Status}, nil
}

// Ticket returns the holder's ticket for an event.
func (s *CheckoutService) Ticket(ctx context.Context, eventID, payerID string) (*domain.Ticket, error) {
	adm, err := s.admissions.GetByEventAndPayer(ctx, eventID, payerID)
	if err != nil {
		return nil, fmt.Errorf("get admission: %w", err)
	}
	return s.ledger.TicketFor(adm), nil
}
