package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/nsien-prestige/Eventful-Backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityLedger_ConcurrentAdmitsNeverExceedCapacity(t *testing.T) {
	for _, tc := range []struct{ capacity, extra int }{
		{1, 0}, {1, 1}, {3, 5}, {10, 25},
	} {
		t.Run(fmt.Sprintf("C=%d,K=%d", tc.capacity, tc.extra), func(t *testing.T) {
			core := newMemCore(t)
			core.db.addEvent("e1", "creator", 5000, intPtr(tc.capacity))

			total := tc.capacity + tc.extra
			var (
				wg       sync.WaitGroup
				mu       sync.Mutex
				admitted int
				refused  int
			)
			start := make(chan struct{})
			for i := 0; i < total; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					<-start
					_, err := core.ledger.Admit(context.Background(), "e1", fmt.Sprintf("p%d", i))
					mu.Lock()
					defer mu.Unlock()
					switch {
					case err == nil:
						admitted++
					case errors.Is(err, domain.ErrCapacityExceeded):
						refused++
					default:
						t.Errorf("unexpected error: %v", err)
					}
				}(i)
			}
			close(start)
			wg.Wait()

			assert.Equal(t, tc.capacity, admitted)
			assert.Equal(t, tc.extra, refused)
			assert.Len(t, core.db.admissionsFor("e1"), tc.capacity)
			assert.Equal(t, domain.EventStatusClosed, core.db.event("e1").Status)
		})
	}
}

func TestCapacityLedger_UnboundedEventAdmitsEveryone(t *testing.T) {
	core := newMemCore(t)
	core.db.addEvent("e1", "creator", 5000, nil)

	for i := 0; i < 50; i++ {
		_, err := core.ledger.Admit(context.Background(), "e1", fmt.Sprintf("p%d", i))
		require.NoError(t, err)
	}

	assert.Len(t, core.db.admissionsFor("e1"), 50)
	assert.Equal(t, domain.EventStatusActive, core.db.event("e1").Status)
}

func TestSettlement_RepeatedDeliveryAdmitsOnce(t *testing.T) {
	for _, n := range []int{1, 2, 5, 20} {
		t.Run(fmt.Sprintf("N=%d", n), func(t *testing.T) {
			core := newMemCore(t)
			core.db.addEvent("e1", "creator", 5000, intPtr(10))
			core.db.addUser("p1")
			core.db.addPending("EVT_1_p1", "p1", "e1", 5000, time.Now())

			body := chargeSuccess("EVT_1_p1", 5000)
			sig := core.gateway.SignHex(body)

			var wg sync.WaitGroup
			start := make(chan struct{})
			errs := make(chan error, n)
			for i := 0; i < n; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					<-start
					_, err := core.processor.HandleNotification(context.Background(), body, sig)
					errs <- err
				}()
			}
			close(start)
			wg.Wait()
			close(errs)

			for err := range errs {
				assert.NoError(t, err)
			}
			assert.Equal(t, domain.PaymentStateSettled, core.db.payment("EVT_1_p1").State)
			assert.Len(t, core.db.admissionsFor("e1"), 1)
			assert.Equal(t, 1, core.rec.count(EventPaymentSettled))
			assert.Equal(t, 1, core.rec.count(EventTicketIssued))
		})
	}
}

func TestTicketValidator_ConcurrentScansConsumeOnce(t *testing.T) {
	core := newMemCore(t)
	core.db.addEvent("e1", "creator", 5000, intPtr(5))

	adm, err := core.ledger.Admit(context.Background(), "e1", "p1")
	require.NoError(t, err)
	ticket := core.ledger.TicketFor(adm)

	const scanners = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		valid   int
		used    int
		start   = make(chan struct{})
		unknown []error
	)
	for i := 0; i < scanners; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := core.validator.Scan(context.Background(), ticket.TicketID, ticket.Token, "e1")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				valid++
			case errors.Is(err, domain.ErrTicketAlreadyUsed):
				used++
			default:
				unknown = append(unknown, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Empty(t, unknown)
	assert.Equal(t, 1, valid)
	assert.Equal(t, scanners-1, used)
}

func TestScenario_DuplicateWebhookSingleAdmission(t *testing.T) {
	core := newMemCore(t)
	core.db.addEvent("e1", "creator", 5000, intPtr(1))
	core.db.addUser("p1")
	core.db.addPending("EVT_1", "p1", "e1", 5000, time.Now())

	body := chargeSuccess("EVT_1", 5000)
	sig := core.gateway.SignHex(body)

	first, err := core.processor.HandleNotification(context.Background(), body, sig)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAdmitted, first.Outcome)
	require.NotNil(t, first.Ticket)

	second, err := core.processor.HandleNotification(context.Background(), body, sig)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDuplicate, second.Outcome)

	admissions := core.db.admissionsFor("e1")
	require.Len(t, admissions, 1)
	assert.Equal(t, "p1", admissions[0].PayerID)
	assert.Equal(t, domain.PaymentStateSettled, core.db.payment("EVT_1").State)
}

func TestScenario_LastSlotRaceLeavesLoserFlagged(t *testing.T) {
	core := newMemCore(t)
	core.db.addEvent("e1", "creator", 5000, intPtr(1))
	core.db.addUser("p1")
	core.db.addUser("p2")
	core.db.addPending("EVT_1_p1", "p1", "e1", 5000, time.Now())
	core.db.addPending("EVT_1_p2", "p2", "e1", 5000, time.Now())

	refs := []string{"EVT_1_p1", "EVT_1_p2"}
	results := make([]*domain.SettlementResult, len(refs))
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i, ref := range refs {
		wg.Add(1)
		go func(i int, ref string) {
			defer wg.Done()
			body := chargeSuccess(ref, 5000)
			<-start
			res, err := core.processor.HandleNotification(context.Background(), body, core.gateway.SignHex(body))
			assert.NoError(t, err)
			results[i] = res
		}(i, ref)
	}
	close(start)
	wg.Wait()

	outcomes := map[domain.SettlementOutcome]int{}
	for _, r := range results {
		require.NotNil(t, r)
		outcomes[r.Outcome]++
	}
	assert.Equal(t, 1, outcomes[domain.OutcomeAdmitted])
	assert.Equal(t, 1, outcomes[domain.OutcomeUnadmitted])

	admissions := core.db.admissionsFor("e1")
	require.Len(t, admissions, 1)
	winner := admissions[0].PayerID
	loserRef := "EVT_1_p1"
	if winner == "p1" {
		loserRef = "EVT_1_p2"
	}

	loser := core.db.payment(loserRef)
	assert.Equal(t, domain.PaymentStateSettled, loser.State)
	assert.NotNil(t, loser.UnadmittedAt)
	assert.Equal(t, 1, core.rec.count(EventSettlementUnadmitted))
	assert.Len(t, core.rec.unadmitted, 1)

	unadmitted, err := memPayments{core.db}.ListUnadmitted(context.Background())
	require.NoError(t, err)
	require.Len(t, unadmitted, 1)
	assert.Equal(t, loserRef, unadmitted[0].Reference)
}

func TestScenario_ScanValidThenUsedThenForged(t *testing.T) {
	core := newMemCore(t)
	core.db.addEvent("e1", "creator", 5000, intPtr(1))

	adm, err := core.ledger.Admit(context.Background(), "e1", "p1")
	require.NoError(t, err)
	ticket := core.ledger.TicketFor(adm)

	scanned, err := core.validator.Scan(context.Background(), ticket.TicketID, ticket.Token, "e1")
	require.NoError(t, err)
	assert.True(t, scanned.Consumed())

	_, err = core.validator.Scan(context.Background(), ticket.TicketID, ticket.Token, "e1")
	assert.ErrorIs(t, err, domain.ErrTicketAlreadyUsed)

	tampered := []byte(ticket.Token)
	if tampered[len(tampered)-1] == 'a' {
		tampered[len(tampered)-1] = 'b'
	} else {
		tampered[len(tampered)-1] = 'a'
	}
	_, err = core.validator.Scan(context.Background(), ticket.TicketID, string(tampered), "e1")
	assert.ErrorIs(t, err, domain.ErrTicketForged)
}
