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

type ReconcileOptions struct {
	PendingTTL   time.Duration
	SettledGrace time.Duration
	BatchSize    int
}

// Reconciler repairs what a lost or failed webhook leaves behind: Settled
// payments whose admission never ran, and Pending payments the gateway has
// already decided.
type Reconciler struct {
	payments  ports.PaymentRepo
	gateway   ports.PaymentGateway
	processor *SettlementProcessor
	opts      ReconcileOptions
	logger    logger.Logger
}

func NewReconciler(
	payments ports.PaymentRepo,
	gateway ports.PaymentGateway,
	processor *SettlementProcessor,
	opts ReconcileOptions,
	logger logger.Logger,
) *Reconciler {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 100
	}
	return &Reconciler{
		payments:  payments,
		gateway:   gateway,
		processor: processor,
		opts:      opts,
		logger:    logger,
	}
}

// Sweep runs one reconciliation pass.
func (r *Reconciler) Sweep(ctx context.Context) (*domain.ReconcileReport, error) {
	report := &domain.ReconcileReport{}
	now := time.Now().UTC()

	settled, err := r.payments.ListSettledWithoutAdmission(ctx, now.Add(-r.opts.SettledGrace), r.opts.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("list settled without admission: %w", err)
	}
	for _, p := range settled {
		res, err := r.processor.admitSettled(ctx, p)
		if err != nil {
			report.Errors++
			r.logger.Error("failed to resume admission",
				logger.String("reference", p.Reference),
				logger.String("error", err.Error()),
			)
			continue
		}
		r.count(report, res)
		report.Resumed++
	}

	pending, err := r.payments.ListStalePending(ctx, now.Add(-r.opts.PendingTTL), r.opts.BatchSize)
	if err != nil {
		return report, fmt.Errorf("list stale pending: %w", err)
	}
	for _, p := range pending {
		err = r.resolvePending(ctx, p, report)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrIntegrityFault):
			// Flagged by the processor; the sweep no longer lists it.
			report.IntegrityFaults++
		default:
			report.Errors++
			r.logger.Error("failed to resolve pending payment",
				logger.String("reference", p.Reference),
				logger.String("error", err.Error()),
			)
		}

		if err = r.payments.MarkReconciled(ctx, p.Reference, now); err != nil {
			r.logger.Warn("failed to record reconcile attempt",
				logger.String("reference", p.Reference),
				logger.String("error", err.Error()),
			)
		}
	}

	return report, nil
}

func (r *Reconciler) resolvePending(ctx context.Context, p *domain.PaymentIntent, report *domain.ReconcileReport) error {
	tx, err := r.gateway.Verify(ctx, p.Reference)
	if err != nil {
		if errors.Is(err, domain.ErrGatewayTransactionAbsent) {
			return r.fail(ctx, p, report)
		}
		return fmt.Errorf("verify with gateway: %w", err)
	}

	switch tx.Status {
	case domain.GatewayStatusSuccess:
		res, err := r.processor.settle(ctx, p.Reference, tx.AmountMinor)
		if err != nil {
			return err
		}
		r.count(report, res)
		if res.Outcome == domain.OutcomeAdmitted || res.Outcome == domain.OutcomeUnadmitted {
			report.Settled++
		}
		return nil
	case domain.GatewayStatusFailed, domain.GatewayStatusAbandoned, domain.GatewayStatusReversed:
		return r.fail(ctx, p, report)
	default:
		return nil
	}
}

func (r *Reconciler) fail(ctx context.Context, p *domain.PaymentIntent, report *domain.ReconcileReport) error {
	failed, err := r.payments.Transition(ctx, p.Reference, domain.PaymentStatePending, domain.PaymentStateFailed)
	if err != nil {
		if errors.Is(err, domain.ErrTransitionConflict) {
			return nil
		}
		return fmt.Errorf("fail payment: %w", err)
	}
	report.Failed++

	r.logger.Info("stale payment failed",
		logger.String("reference", p.Reference),
		logger.String("event_id", p.EventID),
		logger.String("payer_id", p.PayerID),
	)
	r.processor.publish(ctx, EventPaymentFailed, failed, nil)
	return nil
}

func (r *Reconciler) count(report *domain.ReconcileReport, res *domain.SettlementResult) {
	if res.Outcome == domain.OutcomeUnadmitted {
		report.Unadmitted++
	}
}

// Unadmitted lists Settled payments that need a manual refund.
func (r *Reconciler) Unadmitted(ctx context.Context) ([]*domain.PaymentIntent, error) {
	return r.payments.ListUnadmitted(ctx)
}
