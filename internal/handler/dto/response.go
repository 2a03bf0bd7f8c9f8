package dto

import (
	"time"

	"github.com/nsien-prestige/Eventful-Backend/internal/domain"
)

type WebhookAck struct {
	Status    string `json:"status"`
	Outcome   string `json:"outcome,omitempty"`
	Reference string `json:"reference,omitempty"`
}

type CheckoutResponse struct {
	Reference        string `json:"reference"`
	AuthorizationURL string `json:"authorization_url"`
	AmountMinor      int64  `json:"amount_minor"`
	AlreadyInitiated bool   `json:"already_initiated"`
}

type PaymentResponse struct {
	Reference    string  `json:"reference"`
	EventID      string  `json:"event_id"`
	PayerID      string  `json:"payer_id"`
	AmountMinor  int64   `json:"amount_minor"`
	State        string  `json:"state"`
	UnadmittedAt *string `json:"unadmitted_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type PaymentStatusResponse struct {
	Payment       PaymentResponse `json:"payment"`
	GatewayStatus string          `json:"gateway_status"`
}

type TicketResponse struct {
	TicketID string `json:"ticket_id"`
	EventID  string `json:"event_id"`
	Token    string `json:"token"`
}

type ScanResponse struct {
	Status     string `json:"status"`
	TicketID   string `json:"ticket_id"`
	PayerID    string `json:"payer_id"`
	ConsumedAt string `json:"consumed_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToWebhookAck(r *domain.SettlementResult) WebhookAck {
	return WebhookAck{
		Status:    "ok",
		Outcome:   string(r.Outcome),
		Reference: r.Reference,
	}
}

func ToCheckoutResponse(s *domain.CheckoutSession) CheckoutResponse {
	return CheckoutResponse{
		Reference:        s.Reference,
		AuthorizationURL: s.AuthorizationURL,
		AmountMinor:      s.AmountMinor,
		AlreadyInitiated: s.AlreadyInitiated,
	}
}

func ToPaymentResponse(p *domain.PaymentIntent) PaymentResponse {
	resp := PaymentResponse{
		Reference:   p.Reference,
		EventID:     p.EventID,
		PayerID:     p.PayerID,
		AmountMinor: p.AmountMinor,
		State:       string(p.State),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
	if p.UnadmittedAt != nil {
		at := p.UnadmittedAt.Format(time.RFC3339)
		resp.UnadmittedAt = &at
	}
	return resp
}

func ToPaymentStatusResponse(s *domain.PaymentStatus) PaymentStatusResponse {
	return PaymentStatusResponse{
		Payment:       ToPaymentResponse(s.Payment),
		GatewayStatus: s.GatewayStatus,
	}
}

func ToTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		TicketID: t.TicketID,
		EventID:  t.EventID,
		Token:    t.Token,
	}
}

func ToScanResponse(a *domain.Admission) ScanResponse {
	resp := ScanResponse{
		Status:   "valid",
		TicketID: a.TicketID,
		PayerID:  a.PayerID,
	}
	if a.ConsumedAt != nil {
		resp.ConsumedAt = a.ConsumedAt.Format(time.RFC3339)
	}
	return resp
}
