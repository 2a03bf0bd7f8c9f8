package service

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/nsien-prestige/Eventful-Backend/internal/domain"
	"github.com/nsien-prestige/Eventful-Backend/internal/signing"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

const (
	testGatewayKey = "sk_test_gateway"
	testTicketKey  = "ticket-minting-key"
)

func newTestSigners(t *testing.T) (gateway, ticket *signing.Signer) {
	t.Helper()
	gateway, err := signing.NewSHA512(testGatewayKey)
	require.NoError(t, err)
	ticket, err = signing.NewSHA256(testTicketKey)
	require.NoError(t, err)
	return gateway, ticket
}

func syncSpawn(f func()) { f() }

// memDB serializes every operation behind one mutex, which is at least as
// strong as the row locks and conditional updates of the Postgres store.
type memDB struct {
	mu         sync.Mutex
	payments   map[string]*domain.PaymentIntent
	admissions map[string]*domain.Admission
	events     map[string]*domain.Event
	users      map[string]*domain.User
}

func newMemDB() *memDB {
	return &memDB{
		payments:   make(map[string]*domain.PaymentIntent),
		admissions: make(map[string]*domain.Admission),
		events:     make(map[string]*domain.Event),
		users:      make(map[string]*domain.User),
	}
}

func (db *memDB) addEvent(id, creatorID string, price int64, capacity *int) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.events[id] = &domain.Event{
		ID:         id,
		CreatorID:  creatorID,
		Title:      "event " + id,
		PriceMinor: price,
		Capacity:   capacity,
		Status:     domain.EventStatusActive,
	}
}

func (db *memDB) addUser(id string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.users[id] = &domain.User{ID: id, Username: id, Email: id + "@example.com"}
}

func (db *memDB) addPending(reference, payerID, eventID string, amount int64, createdAt time.Time) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.payments[reference] = &domain.PaymentIntent{
		Reference:   reference,
		PayerID:     payerID,
		EventID:     eventID,
		AmountMinor: amount,
		State:       domain.PaymentStatePending,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func (db *memDB) payment(reference string) domain.PaymentIntent {
	db.mu.Lock()
	defer db.mu.Unlock()
	return *db.payments[reference]
}

func (db *memDB) event(id string) domain.Event {
	db.mu.Lock()
	defer db.mu.Unlock()
	return *db.events[id]
}

func (db *memDB) admissionsFor(eventID string) []domain.Admission {
	db.mu.Lock()
	defer db.mu.Unlock()
	var out []domain.Admission
	for _, a := range db.admissions {
		if a.EventID == eventID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PayerID < out[j].PayerID })
	return out
}

func (db *memDB) admittedLocked(eventID, payerID string) *domain.Admission {
	for _, a := range db.admissions {
		if a.EventID == eventID && a.PayerID == payerID {
			return a
		}
	}
	return nil
}

type memPayments struct{ db *memDB }

func (r memPayments) CreatePending(_ context.Context, p *domain.PaymentIntent) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.payments[p.Reference]; ok {
		return domain.ErrDuplicateReference
	}
	p.State = domain.PaymentStatePending
	p.UpdatedAt = p.CreatedAt
	cp := *p
	r.db.payments[p.Reference] = &cp
	return nil
}

func (r memPayments) GetByReference(_ context.Context, reference string) (*domain.PaymentIntent, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p, ok := r.db.payments[reference]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	cp := *p
	return &cp, nil
}

func (r memPayments) Transition(_ context.Context, reference string, from, to domain.PaymentState) (*domain.PaymentIntent, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p, ok := r.db.payments[reference]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	if p.State != from {
		return nil, domain.ErrTransitionConflict
	}
	p.State = to
	p.UpdatedAt = time.Now().UTC()
	cp := *p
	return &cp, nil
}

func (r memPayments) FindSettled(_ context.Context, eventID, payerID string) (*domain.PaymentIntent, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, p := range r.db.payments {
		if p.EventID == eventID && p.PayerID == payerID && p.State == domain.PaymentStateSettled {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrPaymentNotFound
}

func (r memPayments) SetAuthorizationURL(_ context.Context, reference, url string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p, ok := r.db.payments[reference]
	if !ok {
		return domain.ErrPaymentNotFound
	}
	p.AuthorizationURL = url
	return nil
}

func (r memPayments) FlagUnadmitted(_ context.Context, reference string, at time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p, ok := r.db.payments[reference]
	if !ok {
		return domain.ErrPaymentNotFound
	}
	if p.State == domain.PaymentStateSettled && p.UnadmittedAt == nil {
		p.UnadmittedAt = &at
	}
	return nil
}

func (r memPayments) FlagIntegrityFault(_ context.Context, reference string, at time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p, ok := r.db.payments[reference]
	if !ok {
		return domain.ErrPaymentNotFound
	}
	if p.IntegrityFaultAt == nil {
		p.IntegrityFaultAt = &at
	}
	return nil
}

func (r memPayments) MarkReconciled(_ context.Context, reference string, at time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if p, ok := r.db.payments[reference]; ok {
		p.ReconciledAt = &at
	}
	return nil
}

// ListStalePending orders like the Postgres store: never-checked first,
// then least recently checked, then oldest.
func (r memPayments) ListStalePending(_ context.Context, before time.Time, limit int) ([]*domain.PaymentIntent, error) {
	out := r.list(0, func(p *domain.PaymentIntent) bool {
		return p.State == domain.PaymentStatePending &&
			p.IntegrityFaultAt == nil &&
			p.CreatedAt.Before(before)
	})
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].ReconciledAt, out[j].ReconciledAt
		switch {
		case a == nil && b != nil:
			return true
		case a != nil && b == nil:
			return false
		case a != nil && !a.Equal(*b):
			return a.Before(*b)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r memPayments) ListSettledWithoutAdmission(_ context.Context, before time.Time, limit int) ([]*domain.PaymentIntent, error) {
	return r.list(limit, func(p *domain.PaymentIntent) bool {
		return p.State == domain.PaymentStateSettled &&
			p.UnadmittedAt == nil &&
			p.UpdatedAt.Before(before) &&
			r.db.admittedLocked(p.EventID, p.PayerID) == nil
	}), nil
}

func (r memPayments) ListUnadmitted(_ context.Context) ([]*domain.PaymentIntent, error) {
	return r.list(0, func(p *domain.PaymentIntent) bool {
		return p.State == domain.PaymentStateSettled && p.UnadmittedAt != nil
	}), nil
}

func (r memPayments) list(limit int, match func(*domain.PaymentIntent) bool) []*domain.PaymentIntent {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*domain.PaymentIntent
	for _, p := range r.db.payments {
		if match(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Reference < out[j].Reference })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

type memAdmissions struct{ db *memDB }

func (r memAdmissions) Admit(_ context.Context, a *domain.Admission) (*domain.Admission, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	e, ok := r.db.events[a.EventID]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	if existing := r.db.admittedLocked(a.EventID, a.PayerID); existing != nil {
		cp := *existing
		return &cp, domain.ErrAlreadyAdmitted
	}
	switch e.Status {
	case domain.EventStatusClosed:
		return nil, domain.ErrCapacityExceeded
	case domain.EventStatusCancelled:
		return nil, domain.ErrEventNotActive
	}

	count := 0
	for _, x := range r.db.admissions {
		if x.EventID == a.EventID {
			count++
		}
	}
	if e.Capacity != nil && count >= *e.Capacity {
		e.Status = domain.EventStatusClosed
		return nil, domain.ErrCapacityExceeded
	}

	cp := *a
	r.db.admissions[a.TicketID] = &cp
	if e.Capacity != nil && count+1 >= *e.Capacity {
		e.Status = domain.EventStatusClosed
	}
	out := cp
	return &out, nil
}

func (r memAdmissions) GetByTicketID(_ context.Context, ticketID string) (*domain.Admission, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	a, ok := r.db.admissions[ticketID]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	cp := *a
	return &cp, nil
}

func (r memAdmissions) GetByEventAndPayer(_ context.Context, eventID, payerID string) (*domain.Admission, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	a := r.db.admittedLocked(eventID, payerID)
	if a == nil {
		return nil, domain.ErrTicketNotFound
	}
	cp := *a
	return &cp, nil
}

func (r memAdmissions) Consume(_ context.Context, ticketID string, at time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	a, ok := r.db.admissions[ticketID]
	if !ok {
		return domain.ErrTicketNotFound
	}
	if a.ConsumedAt != nil {
		return domain.ErrTicketAlreadyUsed
	}
	a.ConsumedAt = &at
	return nil
}

func (r memAdmissions) MarkDelivered(_ context.Context, ticketID string, at time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	a, ok := r.db.admissions[ticketID]
	if !ok {
		return domain.ErrTicketNotFound
	}
	if a.DeliveredAt == nil {
		a.DeliveredAt = &at
	}
	return nil
}

type memEvents struct{ db *memDB }

func (r memEvents) GetByID(_ context.Context, id string) (*domain.Event, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	e, ok := r.db.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	cp := *e
	return &cp, nil
}

type memUsers struct{ db *memDB }

func (r memUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

// recorder collects side effects the processor emits.
type recorder struct {
	mu          sync.Mutex
	published   []string
	issued      []string
	unadmitted  []string
	invalidated []string
}

func (r *recorder) Publish(_ context.Context, eventType string, _ []byte, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.published = append(r.published, eventType)
	return nil
}

func (r *recorder) NotifyTicketIssued(_ context.Context, user *domain.User, _ *domain.Event, _ *domain.Ticket) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.issued = append(r.issued, user.ID)
}

func (r *recorder) NotifySettlementUnadmitted(_ context.Context, user *domain.User, _ *domain.Event, _ *domain.PaymentIntent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unadmitted = append(r.unadmitted, user.ID)
}

func (r *recorder) InvalidateCreator(_ context.Context, creatorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalidated = append(r.invalidated, creatorID)
	return nil
}

func (r *recorder) count(eventType string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.published {
		if e == eventType {
			n++
		}
	}
	return n
}

type memCore struct {
	db        *memDB
	rec       *recorder
	gateway   *signing.Signer
	ledger    *CapacityLedger
	processor *SettlementProcessor
	validator *TicketValidator
}

func newMemCore(t *testing.T) *memCore {
	t.Helper()
	db := newMemDB()
	rec := &recorder{}
	gatewaySigner, ticketSigner := newTestSigners(t)
	log := newTestLogger(t)

	ledger := NewCapacityLedger(memAdmissions{db}, ticketSigner, log)
	processor := NewSettlementProcessor(
		memPayments{db}, memAdmissions{db}, memEvents{db}, memUsers{db},
		ledger, gatewaySigner,
		Sinks{Notifier: rec, Publisher: rec, Cache: rec},
		log,
	)
	processor.spawn = syncSpawn

	return &memCore{
		db:        db,
		rec:       rec,
		gateway:   gatewaySigner,
		ledger:    ledger,
		processor: processor,
		validator: NewTicketValidator(memAdmissions{db}, memEvents{db}, ledger, log),
	}
}

func chargeSuccess(reference string, amount int64) []byte {
	return []byte(`{"event":"charge.success","data":{"reference":"` + reference +
		`","amount":` + itoa(amount) + `,"status":"success","currency":"NGN"}}`)
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

func intPtr(n int) *int { return &n }
