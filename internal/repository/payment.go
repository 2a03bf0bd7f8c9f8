package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nsien-prestige/Eventful-Backend/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const paymentColumns = `reference, payer_id, event_id, amount_minor, state,
		COALESCE(authorization_url, ''), unadmitted_at, integrity_fault_at, reconciled_at,
		created_at, updated_at`

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PaymentRepository) CreatePending(ctx context.Context, p *domain.PaymentIntent) error {
	query := `INSERT INTO payments (reference, payer_id, event_id, amount_minor, state, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $6)`

	_, err := r.db.Master.ExecContext(
		ctx, query, p.Reference, p.PayerID, p.EventID,
		p.AmountMinor, domain.PaymentStatePending, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReference
		}
		return fmt.Errorf("insert payment: %w", err)
	}

	p.State = domain.PaymentStatePending
	p.UpdatedAt = p.CreatedAt
	return nil
}

func (r *PaymentRepository) GetByReference(ctx context.Context, reference string) (*domain.PaymentIntent, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE reference = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, reference)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	return p, nil
}

// Transition is a compare-and-swap on the payment state: it succeeds only if
// the stored state still equals from. A lost race returns
// ErrTransitionConflict.
func (r *PaymentRepository) Transition(
	ctx context.Context, reference string, from, to domain.PaymentState,
) (*domain.PaymentIntent, error) {
	if from != domain.PaymentStatePending || !to.Terminal() {
		return nil, fmt.Errorf("%w: transition %s -> %s", domain.ErrValidation, from, to)
	}

	query := `UPDATE payments
			  SET state = $3, updated_at = now()
			  WHERE reference = $1 AND state = $2
			  RETURNING ` + paymentColumns

	p, err := scanPayment(r.db.Master.QueryRowContext(ctx, query, reference, from, to))
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transition payment: %w", err)
	}

	// Nothing updated: either the reference is unknown or someone else moved it.
	if _, err = r.GetByReference(ctx, reference); err != nil {
		return nil, err
	}
	return nil, domain.ErrTransitionConflict
}

func (r *PaymentRepository) FindSettled(ctx context.Context, eventID, payerID string) (*domain.PaymentIntent, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE event_id = $1 AND payer_id = $2 AND state = $3
			  ORDER BY updated_at DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, payerID, domain.PaymentStateSettled)
	if err != nil {
		return nil, fmt.Errorf("find settled payment: %w", err)
	}

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidUUID(err) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	return p, nil
}

func (r *PaymentRepository) SetAuthorizationURL(ctx context.Context, reference, url string) error {
	query := `UPDATE payments SET authorization_url = $2, updated_at = now() WHERE reference = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, reference, url)
	if err != nil {
		return fmt.Errorf("set authorization url: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("authorization url rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

// FlagUnadmitted marks a Settled payment whose payer could not be admitted.
// The first flag wins; repeated calls keep the original timestamp.
func (r *PaymentRepository) FlagUnadmitted(ctx context.Context, reference string, at time.Time) error {
	query := `UPDATE payments
			  SET unadmitted_at = COALESCE(unadmitted_at, $3)
			  WHERE reference = $1 AND state = $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, reference, domain.PaymentStateSettled, at)
	if err != nil {
		return fmt.Errorf("flag unadmitted: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("flag unadmitted rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

// FlagIntegrityFault marks a Pending payment whose gateway amount disagreed
// with the stored one. Flagged payments are left out of the stale sweep.
func (r *PaymentRepository) FlagIntegrityFault(ctx context.Context, reference string, at time.Time) error {
	query := `UPDATE payments
			  SET integrity_fault_at = COALESCE(integrity_fault_at, $2)
			  WHERE reference = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, reference, at)
	if err != nil {
		return fmt.Errorf("flag integrity fault: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("flag integrity fault rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

// MarkReconciled records a sweep attempt so the next pass starts with
// payments checked least recently.
func (r *PaymentRepository) MarkReconciled(ctx context.Context, reference string, at time.Time) error {
	query := `UPDATE payments SET reconciled_at = $2 WHERE reference = $1`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, reference, at); err != nil {
		return fmt.Errorf("mark reconciled: %w", err)
	}
	return nil
}

func (r *PaymentRepository) ListStalePending(ctx context.Context, before time.Time, limit int) ([]*domain.PaymentIntent, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE state = $1 AND integrity_fault_at IS NULL AND created_at < $2
			  ORDER BY reconciled_at NULLS FIRST, created_at
			  LIMIT $3`

	return r.list(ctx, "list stale pending", query, domain.PaymentStatePending, before, limit)
}

func (r *PaymentRepository) ListSettledWithoutAdmission(
	ctx context.Context, before time.Time, limit int,
) ([]*domain.PaymentIntent, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments p
			  WHERE p.state = $1
			    AND p.unadmitted_at IS NULL
			    AND p.updated_at < $2
			    AND NOT EXISTS (
			        SELECT 1 FROM admissions a
			        WHERE a.event_id = p.event_id AND a.payer_id = p.payer_id
			    )
			  ORDER BY p.updated_at
			  LIMIT $3`

	return r.list(ctx, "list settled without admission", query, domain.PaymentStateSettled, before, limit)
}

func (r *PaymentRepository) ListUnadmitted(ctx context.Context) ([]*domain.PaymentIntent, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE state = $1 AND unadmitted_at IS NOT NULL
			  ORDER BY unadmitted_at`

	return r.list(ctx, "list unadmitted", query, domain.PaymentStateSettled)
}

func (r *PaymentRepository) list(ctx context.Context, op, query string, args ...any) ([]*domain.PaymentIntent, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var res []*domain.PaymentIntent
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func scanPayment(row scanner) (*domain.PaymentIntent, error) {
	var p domain.PaymentIntent
	if err := row.Scan(
		&p.Reference, &p.PayerID, &p.EventID, &p.AmountMinor, &p.State,
		&p.AuthorizationURL, &p.UnadmittedAt, &p.IntegrityFaultAt, &p.ReconciledAt,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
