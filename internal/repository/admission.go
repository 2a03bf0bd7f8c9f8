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

const admissionColumns = `ticket_id, event_id, payer_id, issued_at, consumed_at, delivered_at`

type AdmissionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAdmissionRepo(db *dbpg.DB) *AdmissionRepository {
	return &AdmissionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Admit inserts a into the event's admissions under a row lock on the event,
// so the count check and the insert are serialized per event.
//
// It returns the existing record together with ErrAlreadyAdmitted when the
// payer already holds a slot, and ErrCapacityExceeded when the event is full
// or closed. Taking the last slot closes the event.
func (r *AdmissionRepository) Admit(ctx context.Context, a *domain.Admission) (*domain.Admission, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var (
		capacity sql.NullInt64
		status   domain.EventStatus
	)
	lockQuery := `SELECT capacity, status FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, a.EventID).Scan(&capacity, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidUUID(err) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("lock event: %w", err)
	}

	existingQuery := `SELECT ` + admissionColumns + ` FROM admissions WHERE event_id = $1 AND payer_id = $2`
	existing, err := scanAdmission(tx.QueryRowContext(ctx, existingQuery, a.EventID, a.PayerID))
	switch {
	case err == nil:
		return existing, domain.ErrAlreadyAdmitted
	case !errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("get existing admission: %w", err)
	}

	switch status {
	case domain.EventStatusClosed:
		return nil, domain.ErrCapacityExceeded
	case domain.EventStatusCancelled:
		return nil, domain.ErrEventNotActive
	}

	var admitted int64
	if capacity.Valid {
		countQuery := `SELECT COUNT(*) FROM admissions WHERE event_id = $1`
		if err = tx.QueryRowContext(ctx, countQuery, a.EventID).Scan(&admitted); err != nil {
			return nil, fmt.Errorf("count admissions: %w", err)
		}

		if admitted >= capacity.Int64 {
			if err = closeEvent(ctx, tx, a.EventID); err != nil {
				return nil, err
			}
			if err = tx.Commit(); err != nil {
				return nil, fmt.Errorf("commit close: %w", err)
			}
			return nil, domain.ErrCapacityExceeded
		}
	}

	insertQuery := `INSERT INTO admissions (ticket_id, event_id, payer_id, issued_at)
					VALUES ($1, $2, $3, $4)`
	if _, err = tx.ExecContext(ctx, insertQuery, a.TicketID, a.EventID, a.PayerID, a.IssuedAt); err != nil {
		if isUniqueViolation(err) {
			_ = tx.Rollback()
			existing, getErr := r.GetByEventAndPayer(ctx, a.EventID, a.PayerID)
			if getErr != nil {
				return nil, fmt.Errorf("get admission after conflict: %w", getErr)
			}
			return existing, domain.ErrAlreadyAdmitted
		}
		return nil, fmt.Errorf("insert admission: %w", err)
	}

	if capacity.Valid && admitted+1 >= capacity.Int64 {
		if err = closeEvent(ctx, tx, a.EventID); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit admission: %w", err)
	}

	created := *a
	return &created, nil
}

func closeEvent(ctx context.Context, tx *sql.Tx, eventID string) error {
	query := `UPDATE events SET status = $2, updated_at = now() WHERE id = $1 AND status = $3`
	if _, err := tx.ExecContext(ctx, query, eventID, domain.EventStatusClosed, domain.EventStatusActive); err != nil {
		return fmt.Errorf("close event: %w", err)
	}
	return nil
}

func (r *AdmissionRepository) GetByTicketID(ctx context.Context, ticketID string) (*domain.Admission, error) {
	query := `SELECT ` + admissionColumns + ` FROM admissions WHERE ticket_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, ticketID)
	if err != nil {
		return nil, fmt.Errorf("get admission: %w", err)
	}

	a, err := scanAdmission(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidUUID(err) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan admission: %w", err)
	}
	return a, nil
}

func (r *AdmissionRepository) GetByEventAndPayer(ctx context.Context, eventID, payerID string) (*domain.Admission, error) {
	query := `SELECT ` + admissionColumns + ` FROM admissions WHERE event_id = $1 AND payer_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, payerID)
	if err != nil {
		return nil, fmt.Errorf("get admission: %w", err)
	}

	a, err := scanAdmission(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidUUID(err) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan admission: %w", err)
	}
	return a, nil
}

// Consume flips consumed_at from NULL to at. Only one concurrent caller can
// win; the others get ErrTicketAlreadyUsed.
func (r *AdmissionRepository) Consume(ctx context.Context, ticketID string, at time.Time) error {
	query := `UPDATE admissions SET consumed_at = $2 WHERE ticket_id = $1 AND consumed_at IS NULL`

	res, err := r.db.Master.ExecContext(ctx, query, ticketID, at)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrTicketNotFound
		}
		return fmt.Errorf("consume ticket: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("consume rows affected: %w", err)
	}
	if rows == 0 {
		if _, err = r.GetByTicketID(ctx, ticketID); err != nil {
			return err
		}
		return domain.ErrTicketAlreadyUsed
	}
	return nil
}

func (r *AdmissionRepository) MarkDelivered(ctx context.Context, ticketID string, at time.Time) error {
	query := `UPDATE admissions SET delivered_at = COALESCE(delivered_at, $2) WHERE ticket_id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, ticketID, at)
	if err != nil {
		return fmt.Errorf("mark delivered: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark delivered rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrTicketNotFound
	}
	return nil
}

func scanAdmission(row scanner) (*domain.Admission, error) {
	var a domain.Admission
	if err := row.Scan(&a.TicketID, &a.EventID, &a.PayerID, &a.IssuedAt, &a.ConsumedAt, &a.DeliveredAt); err != nil {
		return nil, err
	}
	return &a, nil
}
