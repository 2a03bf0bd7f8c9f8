package domain

// NotificationChargeSuccess is the gateway event type asserting settlement.
const NotificationChargeSuccess = "charge.success"

// Notification is the parsed part of a gateway webhook this core acts on.
type Notification struct {
	Type        string
	Reference   string
	AmountMinor int64
}

type SettlementOutcome string

const (
	OutcomeIgnored          SettlementOutcome = "ignored"
	OutcomeUnknownReference SettlementOutcome = "unknown_reference"
	OutcomeDuplicate        SettlementOutcome = "duplicate"
	OutcomeStale            SettlementOutcome = "stale"
	OutcomeAdmitted         SettlementOutcome = "admitted"
	OutcomeUnadmitted       SettlementOutcome = "unadmitted"
)

// SettlementResult is the acknowledgement returned for a notification.
// Every outcome here resolves to a success response towards the gateway.
type SettlementResult struct {
	Outcome   SettlementOutcome
	Reference string
	Ticket    *Ticket
}

type ReconcileReport struct {
	Resumed    int
	Settled    int
	Failed     int
	Unadmitted int
	// IntegrityFaults counts amount mismatches flagged during the pass.
	IntegrityFaults int
	Errors          int
}
