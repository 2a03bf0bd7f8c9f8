package domain

import "time"

// Admission is an attendee's slot against an event's capacity. One per
// (EventID, PayerID). ConsumedAt, once set, is never cleared.
type Admission struct {
	TicketID    string     `json:"ticket_id"`
	EventID     string     `json:"event_id"`
	PayerID     string     `json:"payer_id"`
	IssuedAt    time.Time  `json:"issued_at"`
	ConsumedAt  *time.Time `json:"consumed_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

func (a *Admission) Consumed() bool {
	return a.ConsumedAt != nil
}

// Ticket is the bearer pair handed to the holder. Token is recomputed from
// TicketID on demand and never stored.
type Ticket struct {
	TicketID string `json:"ticket_id"`
	EventID  string `json:"event_id"`
	Token    string `json:"token"`
}

type ScanInput struct {
	TicketID string
	Token    string
	EventID  string
	StaffID  string
}
