package domain

import "time"

type EventStatus string

const (
	EventStatusActive    EventStatus = "active"
	EventStatusClosed    EventStatus = "closed"
	EventStatusCancelled EventStatus = "cancelled"
)

// Event is the read-only capacity view of an event owned by the event
// management side. Capacity == nil means unbounded.
type Event struct {
	ID         string      `json:"id"`
	CreatorID  string      `json:"creator_id"`
	Title      string      `json:"title"`
	EventDate  time.Time   `json:"event_date"`
	PriceMinor int64       `json:"price_minor"`
	Capacity   *int        `json:"capacity"`
	Status     EventStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

func (e *Event) Unbounded() bool {
	return e.Capacity == nil
}

func (e *Event) Admitting() bool {
	return e.Status == EventStatusActive
}
