package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nsien-prestige/Eventful-Backend/internal/domain"
	"github.com/nsien-prestige/Eventful-Backend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Domain event types published after settlement decisions.
const (
	EventPaymentSettled         = "payment.settled"
	EventPaymentFailed          = "payment.failed"
	EventTicketIssued           = "ticket.issued"
	EventSettlementUnadmitted   = "settlement.unadmitted"
	EventSettlementIntegrityErr = "settlement.integrity_fault"
)

// WebhookVerifier authenticates raw gateway notifications. It must be keyed
// with the gateway secret only.
type WebhookVerifier interface {
	VerifyHex(message []byte, tag string) error
}

// Sinks are the best-effort side channels fed after a settlement decision.
// Their failures are logged and never change the outcome.
type Sinks struct {
	Notifier  ports.TicketNotifier
	Publisher ports.EventPublisher
	Cache     ports.AnalyticsCache
}

type SettlementProcessor struct {
	payments   ports.PaymentRepo
	admissions ports.AdmissionRepo
	events     ports.EventRepo
	users      ports.UserRepo
	ledger     *CapacityLedger
	verifier   WebhookVerifier
	sinks      Sinks
	logger     logger.Logger

	// spawn runs post-decision side effects off the request path.
	spawn func(func())
	inflight sync.WaitGroup
}

func NewSettlementProcessor(
	payments ports.PaymentRepo,
	admissions ports.AdmissionRepo,
	events ports.EventRepo,
	users ports.UserRepo,
	ledger *CapacityLedger,
	verifier WebhookVerifier,
	sinks Sinks,
	logger logger.Logger,
) *SettlementProcessor {
	s := &SettlementProcessor{
		payments:   payments,
		admissions: admissions,
		events:     events,
		users:      users,
		ledger:     ledger,
		verifier:   verifier,
		sinks:      sinks,
		logger:     logger,
	}
	s.spawn = s.goTracked
	return s
}

func (s *SettlementProcessor) goTracked(f func()) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		f()
	}()
}

// Drain waits for in-flight side effects (notifications, published events,
// cache invalidation) to finish, or for ctx to end. Call it after intake has
// stopped and before the sinks are closed.
func (s *SettlementProcessor) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("drain side effects: %w", ctx.Err())
	}
}

type gatewayNotification struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
	} `json:"data"`
}

func parseNotification(raw []byte) (domain.Notification, error) {
	var n gatewayNotification
	if err := json.Unmarshal(raw, &n); err != nil {
		return domain.Notification{}, fmt.Errorf("%w: %v", domain.ErrMalformedNotification, err)
	}
	if n.Event == "" {
		return domain.Notification{}, fmt.Errorf("%w: missing event type", domain.ErrMalformedNotification)
	}
	if n.Event == domain.NotificationChargeSuccess && n.Data.Reference == "" {
		return domain.Notification{}, fmt.Errorf("%w: missing reference", domain.ErrMalformedNotification)
	}
	return domain.Notification{
		Type:        n.Event,
		Reference:   n.Data.Reference,
		AmountMinor: n.Data.Amount,
	}, nil
}

// HandleNotification processes one webhook delivery. rawBody must be the
// exact bytes received; the signature covers them, not a re-encoding.
//
// Duplicate deliveries, lost races and unknown references all resolve to a
// result with a nil error. Errors are domain.ErrUnauthenticated,
// domain.ErrMalformedNotification, domain.ErrIntegrityFault, or a store
// failure the gateway may safely retry.
func (s *SettlementProcessor) HandleNotification(
	ctx context.Context, rawBody []byte, signature string,
) (*domain.SettlementResult, error) {
	if err := s.verifier.VerifyHex(rawBody, signature); err != nil {
		s.logger.Warn("webhook signature rejected",
			logger.String("reason", err.Error()),
		)
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}

	n, err := parseNotification(rawBody)
	if err != nil {
		return nil, err
	}

	if n.Type != domain.NotificationChargeSuccess {
		s.logger.Debug("gateway notification ignored",
			logger.String("type", n.Type),
			logger.String("reference", n.Reference),
		)
		return &domain.SettlementResult{Outcome: domain.OutcomeIgnored, Reference: n.Reference}, nil
	}

	return s.settle(ctx, n.Reference, n.AmountMinor)
}

// settle moves a Pending intent to Settled and admits the payer. It is the
// single path for both webhook and reconciliation settlements.
func (s *SettlementProcessor) settle(ctx context.Context, reference string, amountMinor int64) (*domain.SettlementResult, error) {
	p, err := s.payments.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			s.logger.Warn("settlement for unknown reference",
				logger.String("reference", reference),
			)
			return &domain.SettlementResult{Outcome: domain.OutcomeUnknownReference, Reference: reference}, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}

	if p.AmountMinor != amountMinor {
		return nil, s.integrityFault(ctx, p, amountMinor)
	}

	switch p.State {
	case domain.PaymentStateSettled:
		s.logger.Info("duplicate settlement ignored",
			logger.String("reference", reference),
		)
		return &domain.SettlementResult{Outcome: domain.OutcomeDuplicate, Reference: reference}, nil
	case domain.PaymentStateFailed:
		s.logger.Error("settlement received for failed payment",
			logger.String("reference", reference),
			logger.String("event_id", p.EventID),
			logger.String("payer_id", p.PayerID),
		)
		return &domain.SettlementResult{Outcome: domain.OutcomeStale, Reference: reference}, nil
	}

	settled, err := s.payments.Transition(ctx, reference, domain.PaymentStatePending, domain.PaymentStateSettled)
	if err != nil {
		if errors.Is(err, domain.ErrTransitionConflict) {
			s.logger.Info("settlement lost race, already handled",
				logger.String("reference", reference),
			)
			return &domain.SettlementResult{Outcome: domain.OutcomeDuplicate, Reference: reference}, nil
		}
		return nil, fmt.Errorf("settle payment: %w", err)
	}

	s.logger.Info("payment settled",
		logger.String("reference", reference),
		logger.String("event_id", settled.EventID),
		logger.String("payer_id", settled.PayerID),
		logger.Int64("amount_minor", settled.AmountMinor),
	)
	s.publish(ctx, EventPaymentSettled, settled, nil)

	return s.admitSettled(ctx, settled)
}

// integrityFault records an amount mismatch once. Repeats of an already
// flagged payment are logged but not alerted again.
func (s *SettlementProcessor) integrityFault(ctx context.Context, p *domain.PaymentIntent, amountMinor int64) error {
	fault := fmt.Errorf("%w: reference %s", domain.ErrIntegrityFault, p.Reference)

	if p.IntegrityFaultAt != nil {
		s.logger.Warn("repeated settlement for faulted payment",
			logger.String("reference", p.Reference),
			logger.Int64("received_minor", amountMinor),
		)
		return fault
	}

	s.logger.Error("settlement amount mismatch",
		logger.String("reference", p.Reference),
		logger.String("event_id", p.EventID),
		logger.String("payer_id", p.PayerID),
		logger.Int64("expected_minor", p.AmountMinor),
		logger.Int64("received_minor", amountMinor),
	)
	if err := s.payments.FlagIntegrityFault(ctx, p.Reference, time.Now().UTC()); err != nil {
		s.logger.Error("failed to flag integrity fault",
			logger.String("reference", p.Reference),
			logger.String("error", err.Error()),
		)
	}
	s.publish(ctx, EventSettlementIntegrityErr, p, map[string]any{"received_minor": amountMinor})
	return fault
}

// admitSettled admits the payer of a Settled intent. Safe to repeat.
func (s *SettlementProcessor) admitSettled(ctx context.Context, p *domain.PaymentIntent) (*domain.SettlementResult, error) {
	adm, err := s.ledger.Admit(ctx, p.EventID, p.PayerID)
	switch {
	case err == nil, errors.Is(err, domain.ErrAlreadyAdmitted):
		ticket := s.ledger.TicketFor(adm)
		if adm.DeliveredAt == nil {
			s.deliver(ctx, p, ticket)
		}
		return &domain.SettlementResult{
			Outcome:   domain.OutcomeAdmitted,
			Reference: p.Reference,
			Ticket:    ticket,
		}, nil
	case errors.Is(err, domain.ErrCapacityExceeded), errors.Is(err, domain.ErrEventNotActive):
		return s.reportUnadmitted(ctx, p, err)
	default:
		return nil, fmt.Errorf("admit payer: %w", err)
	}
}

// reportUnadmitted records a Settled payment that could not be admitted.
// Remediation (refund) is manual; the flag makes it listable.
func (s *SettlementProcessor) reportUnadmitted(
	ctx context.Context, p *domain.PaymentIntent, cause error,
) (*domain.SettlementResult, error) {
	if err := s.payments.FlagUnadmitted(ctx, p.Reference, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("flag unadmitted payment: %w", err)
	}

	s.logger.Error("settled payment left unadmitted, manual refund required",
		logger.String("reference", p.Reference),
		logger.String("event_id", p.EventID),
		logger.String("payer_id", p.PayerID),
		logger.Int64("amount_minor", p.AmountMinor),
		logger.String("reason", cause.Error()),
	)
	s.publish(ctx, EventSettlementUnadmitted, p, map[string]any{"reason": cause.Error()})

	s.spawn(func() {
		bg := context.WithoutCancel(ctx)
		user, event, err := s.loadParties(bg, p)
		if err != nil {
			s.logger.Error("failed to load parties for unadmitted notice",
				logger.String("reference", p.Reference),
				logger.String("error", err.Error()),
			)
			return
		}
		s.sinks.Notifier.NotifySettlementUnadmitted(bg, user, event, p)
	})

	return &domain.SettlementResult{Outcome: domain.OutcomeUnadmitted, Reference: p.Reference}, nil
}

func (s *SettlementProcessor) deliver(ctx context.Context, p *domain.PaymentIntent, ticket *domain.Ticket) {
	if err := s.admissions.MarkDelivered(ctx, ticket.TicketID, time.Now().UTC()); err != nil {
		s.logger.Error("failed to record ticket delivery",
			logger.String("ticket_id", ticket.TicketID),
			logger.String("error", err.Error()),
		)
	}
	s.publish(ctx, EventTicketIssued, p, map[string]any{"ticket_id": ticket.TicketID})

	s.spawn(func() {
		bg := context.WithoutCancel(ctx)
		user, event, err := s.loadParties(bg, p)
		if err != nil {
			s.logger.Error("failed to load parties for ticket delivery",
				logger.String("ticket_id", ticket.TicketID),
				logger.String("error", err.Error()),
			)
			return
		}
		s.sinks.Notifier.NotifyTicketIssued(bg, user, event, ticket)

		if err = s.sinks.Cache.InvalidateCreator(bg, event.CreatorID); err != nil {
			s.logger.Warn("failed to invalidate creator analytics",
				logger.String("creator_id", event.CreatorID),
				logger.String("error", err.Error()),
			)
		}
	})
}

func (s *SettlementProcessor) loadParties(ctx context.Context, p *domain.PaymentIntent) (*domain.User, *domain.Event, error) {
	user, err := s.users.GetByID(ctx, p.PayerID)
	if err != nil {
		return nil, nil, fmt.Errorf("get payer: %w", err)
	}
	event, err := s.events.GetByID(ctx, p.EventID)
	if err != nil {
		return nil, nil, fmt.Errorf("get event: %w", err)
	}
	return user, event, nil
}

type settlementEvent struct {
	Type        string         `json:"type"`
	Reference   string         `json:"reference"`
	EventID     string         `json:"event_id"`
	PayerID     string         `json:"payer_id"`
	AmountMinor int64          `json:"amount_minor"`
	Extra       map[string]any `json:"extra,omitempty"`
	OccurredAt  time.Time      `json:"occurred_at"`
}

func (s *SettlementProcessor) publish(ctx context.Context, eventType string, p *domain.PaymentIntent, extra map[string]any) {
	payload, err := json.Marshal(settlementEvent{
		Type:        eventType,
		Reference:   p.Reference,
		EventID:     p.EventID,
		PayerID:     p.PayerID,
		AmountMinor: p.AmountMinor,
		Extra:       extra,
		OccurredAt:  time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error("failed to encode domain event",
			logger.String("type", eventType),
			logger.String("error", err.Error()),
		)
		return
	}

	s.spawn(func() {
		if err := s.sinks.Publisher.Publish(context.WithoutCancel(ctx), eventType, payload, p.EventID); err != nil {
			s.logger.Error("failed to publish domain event",
				logger.String("type", eventType),
				logger.String("reference", p.Reference),
				logger.String("error", err.Error()),
			)
		}
	})
}
