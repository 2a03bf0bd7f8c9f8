package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nsien-prestige/Eventful-Backend/internal/domain"
	"github.com/nsien-prestige/Eventful-Backend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// TicketSigner mints and checks ticket tokens. It must be keyed with the
// ticket secret only, never with the gateway secret.
type TicketSigner interface {
	SignHex(message []byte) string
	VerifyHex(message []byte, tag string) error
}

// CapacityLedger admits payers against an event's capacity and mints their
// ticket tokens.
type CapacityLedger struct {
	admissions ports.AdmissionRepo
	signer     TicketSigner
	logger     logger.Logger
}

func NewCapacityLedger(admissions ports.AdmissionRepo, signer TicketSigner, logger logger.Logger) *CapacityLedger {
	return &CapacityLedger{
		admissions: admissions,
		signer:     signer,
		logger:     logger,
	}
}

// Admit grants payerID a slot on eventID. Re-admitting an admitted payer
// returns the existing record with domain.ErrAlreadyAdmitted; a full or
// closed event returns domain.ErrCapacityExceeded.
func (l *CapacityLedger) Admit(ctx context.Context, eventID, payerID string) (*domain.Admission, error) {
	rec := &domain.Admission{
		TicketID: uuid.New().String(),
		EventID:  eventID,
		PayerID:  payerID,
		IssuedAt: time.Now().UTC(),
	}

	admitted, err := l.admissions.Admit(ctx, rec)
	switch {
	case err == nil:
		l.logger.Info("payer admitted",
			logger.String("ticket_id", admitted.TicketID),
			logger.String("event_id", eventID),
			logger.String("payer_id", payerID),
		)
		return admitted, nil
	case errors.Is(err, domain.ErrAlreadyAdmitted):
		return admitted, err
	case errors.Is(err, domain.ErrCapacityExceeded), errors.Is(err, domain.ErrEventNotActive):
		l.logger.Warn("admission refused",
			logger.String("event_id", eventID),
			logger.String("payer_id", payerID),
			logger.String("reason", err.Error()),
		)
		return nil, err
	default:
		return nil, fmt.Errorf("admit: %w", err)
	}
}

// TicketFor derives the bearer token for an admission.
func (l *CapacityLedger) TicketFor(a *domain.Admission) *domain.Ticket {
	return &domain.Ticket{
		TicketID: a.TicketID,
		EventID:  a.EventID,
		Token:    l.signer.SignHex([]byte(a.TicketID)),
	}
}

// Authentic reports whether token was minted for ticketID.
func (l *CapacityLedger) Authentic(ticketID, token string) bool {
	return l.signer.VerifyHex([]byte(ticketID), token) == nil
}
