package domain

import "time"

type PaymentState string

const (
	PaymentStatePending PaymentState = "pending"
	PaymentStateSettled PaymentState = "settled"
	PaymentStateFailed  PaymentState = "failed"
)

func (s PaymentState) Terminal() bool {
	return s == PaymentStateSettled || s == PaymentStateFailed
}

// PaymentIntent is one checkout attempt, unique by Reference. State only
// moves Pending->Settled or Pending->Failed.
type PaymentIntent struct {
	Reference        string       `json:"reference"`
	PayerID          string       `json:"payer_id"`
	EventID          string       `json:"event_id"`
	AmountMinor      int64        `json:"amount_minor"`
	State            PaymentState `json:"state"`
	AuthorizationURL string       `json:"authorization_url,omitempty"`
	UnadmittedAt     *time.Time   `json:"unadmitted_at,omitempty"`
	IntegrityFaultAt *time.Time   `json:"integrity_fault_at,omitempty"`
	ReconciledAt     *time.Time   `json:"reconciled_at,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

type CheckoutInput struct {
	EventID   string
	PayerID   string
	Reference string
}

type CheckoutSession struct {
	Reference        string
	AuthorizationURL string
	AmountMinor      int64
	AlreadyInitiated bool
}

// GatewayCheckout is what the gateway needs to open a hosted checkout page.
type GatewayCheckout struct {
	Reference   string
	Email       string
	AmountMinor int64
}

// GatewayTransaction is the gateway's view of a transaction.
type GatewayTransaction struct {
	Reference   string
	Status      string
	AmountMinor int64
}

const (
	GatewayStatusSuccess   = "success"
	GatewayStatusFailed    = "failed"
	GatewayStatusAbandoned = "abandoned"
	GatewayStatusReversed  = "reversed"
)

type PaymentStatus struct {
	Payment       *PaymentIntent
	GatewayStatus string
}
