package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/nsien-prestige/Eventful-Backend/internal/domain"
	"github.com/nsien-prestige/Eventful-Backend/internal/handler/dto"
	"github.com/nsien-prestige/Eventful-Backend/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

// SignatureHeader carries the gateway's hex HMAC of the raw webhook body.
const SignatureHeader = "x-paystack-signature"

type SettlementSvc interface {
	HandleNotification(ctx context.Context, rawBody []byte, signature string) (*domain.SettlementResult, error)
}

type CheckoutSvc interface {
	Checkout(ctx context.Context, in domain.CheckoutInput) (*domain.CheckoutSession, error)
	Verify(ctx context.Context, reference, payerID string) (*domain.PaymentStatus, error)
	Ticket(ctx context.Context, eventID, payerID string) (*domain.Ticket, error)
}

type ScanSvc interface {
	ScanForStaff(ctx context.Context, in domain.ScanInput) (*domain.Admission, error)
}

type ReconcileSvc interface {
	Unadmitted(ctx context.Context) ([]*domain.PaymentIntent, error)
}

type Handler struct {
	settlementService SettlementSvc
	checkoutService   CheckoutSvc
	scanService       ScanSvc
	reconcileService  ReconcileSvc
}

func NewHandler(settlementService SettlementSvc, checkoutService CheckoutSvc, scanService ScanSvc, reconcileService ReconcileSvc) *Handler {
	return &Handler{
		settlementService: settlementService,
		checkoutService:   checkoutService,
		scanService:       scanService,
		reconcileService:  reconcileService,
	}
}

// Webhooks

// PaystackWebhook must see the body exactly as sent, so it reads raw bytes
// and never binds JSON.
func (h *Handler) PaystackWebhook(c *ginext.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unreadable body"})
		return
	}

	res, err := h.settlementService.HandleNotification(c.Request.Context(), raw, c.GetHeader(SignatureHeader))
	if err != nil {
		c.Set("error", err.Error())
		switch {
		case errors.Is(err, domain.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid signature"})
		case errors.Is(err, domain.ErrMalformedNotification):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrIntegrityFault):
			// Redelivery would fail identically; the fault is already alerted.
			c.JSON(http.StatusOK, dto.WebhookAck{Status: "integrity_fault"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToWebhookAck(res))
}

// Payments

func (h *Handler) Checkout(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.CheckoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	session, err := h.checkoutService.Checkout(c.Request.Context(), domain.CheckoutInput{
		EventID:   eventID,
		PayerID:   middleware.UserID(c),
		Reference: req.Reference,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusCreated
	if session.AlreadyInitiated {
		status = http.StatusOK
	}
	c.JSON(status, dto.ToCheckoutResponse(session))
}

func (h *Handler) VerifyPayment(c *ginext.Context) {
	reference := c.Param("reference")
	if reference == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing reference"})
		return
	}

	status, err := h.checkoutService.Verify(c.Request.Context(), reference, middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentStatusResponse(status))
}

// Tickets

func (h *Handler) GetTicket(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	ticket, err := h.checkoutService.Ticket(c.Request.Context(), eventID, middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func (h *Handler) ScanTicket(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	adm, err := h.scanService.ScanForStaff(c.Request.Context(), domain.ScanInput{
		TicketID: req.TicketID,
		Token:    req.Token,
		EventID:  eventID,
		StaffID:  middleware.UserID(c),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToScanResponse(adm))
}

// Admin

func (h *Handler) ListUnadmitted(c *ginext.Context) {
	payments, err := h.reconcileService.Unadmitted(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, dto.ToPaymentResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyPaid),
		errors.Is(err, domain.ErrDuplicateReference),
		errors.Is(err, domain.ErrEventNotActive),
		errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrTicketAlreadyUsed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrWrongEvent),
		errors.Is(err, domain.ErrTicketForged),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrGatewayUnavailable):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "payment gateway unavailable"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
