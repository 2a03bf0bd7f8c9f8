package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nsien-prestige/Eventful-Backend/internal/domain"
	"github.com/nsien-prestige/Eventful-Backend/internal/service/ports/mocks"
	"github.com/nsien-prestige/Eventful-Backend/internal/signing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type settlementDeps struct {
	payments   *mocks.MockPaymentRepo
	admissions *mocks.MockAdmissionRepo
	events     *mocks.MockEventRepo
	users      *mocks.MockUserRepo
	notifier   *mocks.MockTicketNotifier
	publisher  *mocks.MockEventPublisher
	cache      *mocks.MockAnalyticsCache
	gateway    *signing.Signer
}

func newTestProcessor(t *testing.T) (*SettlementProcessor, settlementDeps) {
	t.Helper()
	gatewaySigner, ticketSigner := newTestSigners(t)
	deps := settlementDeps{
		payments:   mocks.NewMockPaymentRepo(t),
		admissions: mocks.NewMockAdmissionRepo(t),
		events:     mocks.NewMockEventRepo(t),
		users:      mocks.NewMockUserRepo(t),
		notifier:   mocks.NewMockTicketNotifier(t),
		publisher:  mocks.NewMockEventPublisher(t),
		cache:      mocks.NewMockAnalyticsCache(t),
		gateway:    gatewaySigner,
	}
	log := newTestLogger(t)
	ledger := NewCapacityLedger(deps.admissions, ticketSigner, log)

	p := NewSettlementProcessor(
		deps.payments, deps.admissions, deps.events, deps.users,
		ledger, gatewaySigner,
		Sinks{Notifier: deps.notifier, Publisher: deps.publisher, Cache: deps.cache},
		log,
	)
	p.spawn = syncSpawn
	return p, deps
}

func pendingIntent() *domain.PaymentIntent {
	return &domain.PaymentIntent{
		Reference:   "EVT_1",
		PayerID:     "p1",
		EventID:     "e1",
		AmountMinor: 5000,
		State:       domain.PaymentStatePending,
	}
}

func settledIntent() *domain.PaymentIntent {
	p := pendingIntent()
	p.State = domain.PaymentStateSettled
	return p
}

func TestSettlementProcessor_RejectsBadSignatureWithoutTouchingState(t *testing.T) {
	p, _ := newTestProcessor(t)
	body := chargeSuccess("EVT_1", 5000)

	_, err := p.HandleNotification(context.Background(), body, "00ff")

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestSettlementProcessor_RejectsSignatureFromTicketKey(t *testing.T) {
	p, _ := newTestProcessor(t)
	_, ticketSigner := newTestSigners(t)
	body := chargeSuccess("EVT_1", 5000)

	_, err := p.HandleNotification(context.Background(), body, ticketSigner.SignHex(body))

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestSettlementProcessor_RejectsReencodedBody(t *testing.T) {
	p, deps := newTestProcessor(t)
	body := chargeSuccess("EVT_1", 5000)
	sig := deps.gateway.SignHex(body)
	reencoded := append([]byte(" "), body...)

	_, err := p.HandleNotification(context.Background(), reencoded, sig)

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestSettlementProcessor_Malformed(t *testing.T) {
	p, deps := newTestProcessor(t)
	for _, body := range [][]byte{
		[]byte(`not json`),
		[]byte(`{"data":{"reference":"EVT_1"}}`),
		[]byte(`{"event":"charge.success","data":{"amount":5000}}`),
	} {
		_, err := p.HandleNotification(context.Background(), body, deps.gateway.SignHex(body))
		assert.ErrorIs(t, err, domain.ErrMalformedNotification, string(body))
	}
}

func TestSettlementProcessor_IgnoresOtherEventTypes(t *testing.T) {
	p, deps := newTestProcessor(t)
	body := []byte(`{"event":"transfer.success","data":{"reference":"TRF_1","amount":100}}`)

	res, err := p.HandleNotification(context.Background(), body, deps.gateway.SignHex(body))

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeIgnored, res.Outcome)
}

func TestSettlementProcessor_UnknownReferenceAcknowledged(t *testing.T) {
	p, deps := newTestProcessor(t)
	body := chargeSuccess("EVT_404", 5000)
	deps.payments.EXPECT().GetByReference(mock.Anything, "EVT_404").Return(nil, domain.ErrPaymentNotFound)

	res, err := p.HandleNotification(context.Background(), body, deps.gateway.SignHex(body))

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeUnknownReference, res.Outcome)
}

func TestSettlementProcessor_AmountMismatchIsIntegrityFault(t *testing.T) {
	p, deps := newTestProcessor(t)
	body := chargeSuccess("EVT_1", 100)
	deps.payments.EXPECT().GetByReference(mock.Anything, "EVT_1").Return(pendingIntent(), nil)
	deps.payments.EXPECT().FlagIntegrityFault(mock.Anything, "EVT_1", mock.Anything).Return(nil).Once()
	deps.publisher.EXPECT().Publish(mock.Anything, EventSettlementIntegrityErr, mock.Anything, "e1").Return(nil).Once()

	res, err := p.HandleNotification(context.Background(), body, deps.gateway.SignHex(body))

	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrIntegrityFault)
}

func TestSettlementProcessor_FlaggedFaultIsNotAlertedAgain(t *testing.T) {
	p, deps := newTestProcessor(t)
	body := chargeSuccess("EVT_1", 100)
	faulted := pendingIntent()
	at := time.Now().UTC()
	faulted.IntegrityFaultAt = &at
	deps.payments.EXPECT().GetByReference(mock.Anything, "EVT_1").Return(faulted, nil)

	res, err := p.HandleNotification(context.Background(), body, deps.gateway.SignHex(body))

	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrIntegrityFault)
}

func TestSettlementProcessor_AlreadySettledIsDuplicate(t *testing.T) {
	p, deps := newTestProcessor(t)
	body := chargeSuccess("EVT_1", 5000)
	deps.payments.EXPECT().GetByReference(mock.Anything, "EVT_1").Return(settledIntent(), nil)

	res, err := p.HandleNotification(context.Background(), body, deps.gateway.SignHex(body))

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDuplicate, res.Outcome)
}

func TestSettlementProcessor_FailedIntentIsStale(t *testing.T) {
	p, deps := newTestProcessor(t)
	body := chargeSuccess("EVT_1", 5000)
	failed := pendingIntent()
	failed.State = domain.PaymentStateFailed
	deps.payments.EXPECT().GetByReference(mock.Anything, "EVT_1").Return(failed, nil)

	res, err := p.HandleNotification(context.Background(), body, deps.gateway.SignHex(body))

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeStale, res.Outcome)
}

func TestSettlementProcessor_LostTransitionRaceIsDuplicate(t *testing.T) {
	p, deps := newTestProcessor(t)
	body := chargeSuccess("EVT_1", 5000)
	deps.payments.EXPECT().GetByReference(mock.Anything, "EVT_1").Return(pendingIntent(), nil)
	deps.payments.EXPECT().
		Transition(mock.Anything, "EVT_1", domain.PaymentStatePending, domain.PaymentStateSettled).
		Return(nil, domain.ErrTransitionConflict)

	res, err := p.HandleNotification(context.Background(), body, deps.gateway.SignHex(body))

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDuplicate, res.Outcome)
}

func TestSettlementProcessor_TransitionStoreErrorSurfaces(t *testing.T) {
	p, deps := newTestProcessor(t)
	body := chargeSuccess("EVT_1", 5000)
	dbErr := errors.New("db down")
	deps.payments.EXPECT().GetByReference(mock.Anything, "EVT_1").Return(pendingIntent(), nil)
	deps.payments.EXPECT().Transition(mock.Anything, "EVT_1", mock.Anything, mock.Anything).Return(nil, dbErr)

	_, err := p.HandleNotification(context.Background(), body, deps.gateway.SignHex(body))

	assert.ErrorIs(t, err, dbErr)
}

func TestSettlementProcessor_SettlesAndAdmits(t *testing.T) {
	p, deps := newTestProcessor(t)
	body := chargeSuccess("EVT_1", 5000)
	user := &domain.User{ID: "p1", Email: "p1@example.com"}
	event := &domain.Event{ID: "e1", CreatorID: "creator"}

	deps.payments.EXPECT().GetByReference(mock.Anything, "EVT_1").Return(pendingIntent(), nil)
	deps.payments.EXPECT().
		Transition(mock.Anything, "EVT_1", domain.PaymentStatePending, domain.PaymentStateSettled).
		Return(settledIntent(), nil)
	deps.admissions.EXPECT().Admit(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, a *domain.Admission) (*domain.Admission, error) { return a, nil })
	deps.admissions.EXPECT().MarkDelivered(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	deps.publisher.EXPECT().Publish(mock.Anything, EventPaymentSettled, mock.Anything, "e1").Return(nil)
	deps.publisher.EXPECT().Publish(mock.Anything, EventTicketIssued, mock.Anything, "e1").Return(nil)
	deps.users.EXPECT().GetByID(mock.Anything, "p1").Return(user, nil)
	deps.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	deps.notifier.EXPECT().NotifyTicketIssued(mock.Anything, user, event, mock.Anything).Return()
	deps.cache.EXPECT().InvalidateCreator(mock.Anything, "creator").Return(nil)

	res, err := p.HandleNotification(context.Background(), body, deps.gateway.SignHex(body))

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAdmitted, res.Outcome)
	require.NotNil(t, res.Ticket)
	assert.Equal(t, "e1", res.Ticket.EventID)
	assert.NotEmpty(t, res.Ticket.Token)
}

func TestSettlementProcessor_CapacityExceededFlagsUnadmitted(t *testing.T) {
	p, deps := newTestProcessor(t)
	body := chargeSuccess("EVT_1", 5000)
	user := &domain.User{ID: "p1"}
	event := &domain.Event{ID: "e1", CreatorID: "creator"}

	deps.payments.EXPECT().GetByReference(mock.Anything, "EVT_1").Return(pendingIntent(), nil)
	deps.payments.EXPECT().Transition(mock.Anything, "EVT_1", mock.Anything, mock.Anything).Return(settledIntent(), nil)
	deps.admissions.EXPECT().Admit(mock.Anything, mock.Anything).Return(nil, domain.ErrCapacityExceeded)
	deps.payments.EXPECT().FlagUnadmitted(mock.Anything, "EVT_1", mock.Anything).Return(nil)
	deps.publisher.EXPECT().Publish(mock.Anything, EventPaymentSettled, mock.Anything, "e1").Return(nil)
	deps.publisher.EXPECT().Publish(mock.Anything, EventSettlementUnadmitted, mock.Anything, "e1").Return(nil)
	deps.users.EXPECT().GetByID(mock.Anything, "p1").Return(user, nil)
	deps.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	deps.notifier.EXPECT().NotifySettlementUnadmitted(mock.Anything, user, event, mock.Anything).Return()

	res, err := p.HandleNotification(context.Background(), body, deps.gateway.SignHex(body))

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeUnadmitted, res.Outcome)
	assert.Nil(t, res.Ticket)
}

func TestSettlementProcessor_AlreadyAdmittedSkipsRedelivery(t *testing.T) {
	p, deps := newTestProcessor(t)
	delivered := time.Now().Add(-time.Minute)
	existing := &domain.Admission{TicketID: "t1", EventID: "e1", PayerID: "p1", DeliveredAt: &delivered}

	deps.admissions.EXPECT().Admit(mock.Anything, mock.Anything).Return(existing, domain.ErrAlreadyAdmitted)

	res, err := p.admitSettled(context.Background(), settledIntent())

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAdmitted, res.Outcome)
	assert.Equal(t, "t1", res.Ticket.TicketID)
}

func TestSettlementProcessor_SinkFailuresDoNotChangeOutcome(t *testing.T) {
	p, deps := newTestProcessor(t)
	body := chargeSuccess("EVT_1", 5000)
	sinkErr := errors.New("sink down")

	deps.payments.EXPECT().GetByReference(mock.Anything, "EVT_1").Return(pendingIntent(), nil)
	deps.payments.EXPECT().Transition(mock.Anything, "EVT_1", mock.Anything, mock.Anything).Return(settledIntent(), nil)
	deps.admissions.EXPECT().Admit(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, a *domain.Admission) (*domain.Admission, error) { return a, nil })
	deps.admissions.EXPECT().MarkDelivered(mock.Anything, mock.Anything, mock.Anything).Return(sinkErr)
	deps.publisher.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(sinkErr)
	deps.users.EXPECT().GetByID(mock.Anything, "p1").Return(nil, domain.ErrUserNotFound)

	res, err := p.HandleNotification(context.Background(), body, deps.gateway.SignHex(body))

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAdmitted, res.Outcome)
}

// gatedPublisher blocks every publish until release is closed.
type gatedPublisher struct {
	release   chan struct{}
	published atomic.Int32
}

func (g *gatedPublisher) Publish(context.Context, string, []byte, string) error {
	<-g.release
	g.published.Add(1)
	return nil
}

func TestSettlementProcessor_DrainWaitsForSideEffects(t *testing.T) {
	core := newMemCore(t)
	core.db.addEvent("e1", "creator", 5000, intPtr(5))
	core.db.addUser("p1")
	core.db.addPending("EVT_1", "p1", "e1", 5000, time.Now())

	gate := &gatedPublisher{release: make(chan struct{})}
	p := NewSettlementProcessor(
		memPayments{core.db}, memAdmissions{core.db}, memEvents{core.db}, memUsers{core.db},
		core.ledger, core.gateway,
		Sinks{Notifier: core.rec, Publisher: gate, Cache: core.rec},
		newTestLogger(t),
	)

	body := chargeSuccess("EVT_1", 5000)
	res, err := p.HandleNotification(context.Background(), body, core.gateway.SignHex(body))
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeAdmitted, res.Outcome)

	short, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, p.Drain(short), context.DeadlineExceeded)

	close(gate.release)
	require.NoError(t, p.Drain(context.Background()))

	// payment.settled and ticket.issued
	assert.Equal(t, int32(2), gate.published.Load())
	assert.Equal(t, []string{"p1"}, core.rec.issued)
}
