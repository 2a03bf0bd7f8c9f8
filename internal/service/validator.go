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

// TicketValidator performs the single-use door check.
type TicketValidator struct {
	admissions ports.AdmissionRepo
	events     ports.EventRepo
	ledger     *CapacityLedger
	logger     logger.Logger
}

func NewTicketValidator(
	admissions ports.AdmissionRepo,
	events ports.EventRepo,
	ledger *CapacityLedger,
	logger logger.Logger,
) *TicketValidator {
	return &TicketValidator{
		admissions: admissions,
		events:     events,
		ledger:     ledger,
		logger:     logger,
	}
}

// ScanForStaff checks that staffID owns the scanning event before scanning.
func (v *TicketValidator) ScanForStaff(ctx context.Context, in domain.ScanInput) (*domain.Admission, error) {
	event, err := v.events.GetByID(ctx, in.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.CreatorID != in.StaffID {
		return nil, fmt.Errorf("%w: not the event owner", domain.ErrForbidden)
	}
	return v.Scan(ctx, in.TicketID, in.Token, in.EventID)
}

// Scan validates a presented ticket for scannerEventID and consumes it.
// Exactly one of several concurrent scans of the same ticket succeeds.
//
// Checks run in the order not found, wrong event, forged, already used.
// The token is checked before the consumed flag, so a tampered token on a
// used ticket reads as forged rather than used. Authentic tokens get the
// same answer either way.
func (v *TicketValidator) Scan(ctx context.Context, ticketID, token, scannerEventID string) (*domain.Admission, error) {
	adm, err := v.admissions.GetByTicketID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	if adm.EventID != scannerEventID {
		return nil, domain.ErrWrongEvent
	}
	// Token before consumed flag: forgery is reported even on a used ticket.
	if !v.ledger.Authentic(ticketID, token) {
		v.logger.Warn("forged ticket presented",
			logger.String("ticket_id", ticketID),
			logger.String("event_id", scannerEventID),
		)
		return nil, domain.ErrTicketForged
	}
	if adm.Consumed() {
		return nil, domain.ErrTicketAlreadyUsed
	}

	now := time.Now().UTC()
	if err = v.admissions.Consume(ctx, ticketID, now); err != nil {
		if errors.Is(err, domain.ErrTicketAlreadyUsed) {
			return nil, err
		}
		return nil, fmt.Errorf("consume ticket: %w", err)
	}
	adm.ConsumedAt = &now

	v.logger.Info("ticket admitted at door",
		logger.String("ticket_id", ticketID),
		logger.String("event_id", scannerEventID),
		logger.String("payer_id", adm.PayerID),
	)
	return adm, nil
}
