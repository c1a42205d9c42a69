package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-events/api/internal/models"
)

func newTestServices(t *testing.T, allowOvercapacity bool) (*EventService, *RegistrationService, *models.MemoryRepo) {
	t.Helper()
	repo := models.NewMemoryRepo()
	return NewEventService(repo, repo), NewRegistrationService(repo, repo, allowOvercapacity), repo
}

func createTestEvent(t *testing.T, es *EventService, capacity int) *models.Event {
	t.Helper()
	event, err := es.CreateEvent(context.Background(), &models.Event{
		Title:    "Tech Symposium",
		Date:     "2026-03-15",
		Capacity: capacity,
	})
	require.NoError(t, err)
	return event
}

func testRegistration(eventID, email string) *models.Registration {
	return &models.Registration{
		EventID:     eventID,
		StudentName: "Asha Rao",
		StudentID:   "CS-1042",
		Email:       email,
		Department:  "Computer Science",
		Year:        "3rd",
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("successful registration increments counter", func(t *testing.T) {
		es, rs, _ := newTestServices(t, false)
		event := createTestEvent(t, es, 10)

		reg, err := rs.Register(ctx, testRegistration(event.ID, "a@x.com"))
		require.NoError(t, err)
		assert.NotEmpty(t, reg.ID)
		assert.False(t, reg.RegisteredAt.IsZero())

		updated, err := es.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, updated.Registered)
	})

	t.Run("duplicate email rejected regardless of other fields", func(t *testing.T) {
		es, rs, _ := newTestServices(t, false)
		event := createTestEvent(t, es, 10)

		_, err := rs.Register(ctx, testRegistration(event.ID, "a@x.com"))
		require.NoError(t, err)

		second := testRegistration(event.ID, "a@x.com")
		second.StudentName = "Someone Else"
		second.StudentID = "EE-2001"
		_, err = rs.Register(ctx, second)
		assert.ErrorIs(t, err, models.ErrAlreadyRegistered)

		updated, err := es.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, updated.Registered)
	})

	t.Run("duplicate check normalizes case and whitespace", func(t *testing.T) {
		es, rs, _ := newTestServices(t, false)
		event := createTestEvent(t, es, 10)

		_, err := rs.Register(ctx, testRegistration(event.ID, "a@x.com"))
		require.NoError(t, err)

		_, err = rs.Register(ctx, testRegistration(event.ID, "  A@X.COM "))
		assert.ErrorIs(t, err, models.ErrAlreadyRegistered)
	})

	t.Run("unknown event creates nothing", func(t *testing.T) {
		_, rs, repo := newTestServices(t, false)

		_, err := rs.Register(ctx, testRegistration("no-such-event", "a@x.com"))
		assert.ErrorIs(t, err, models.ErrNotFound)

		regs, err := repo.ListRegistrations(ctx)
		require.NoError(t, err)
		assert.Empty(t, regs)
	})

	t.Run("missing required fields rejected", func(t *testing.T) {
		es, rs, _ := newTestServices(t, false)
		event := createTestEvent(t, es, 10)

		reg := testRegistration(event.ID, "a@x.com")
		reg.StudentName = "   "
		_, err := rs.Register(ctx, reg)
		assert.ErrorIs(t, err, models.ErrValidation)

		reg = testRegistration(event.ID, "not-an-email")
		_, err = rs.Register(ctx, reg)
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("full event rejected when capacity enforced", func(t *testing.T) {
		es, rs, repo := newTestServices(t, false)
		event := createTestEvent(t, es, 1)

		_, err := rs.Register(ctx, testRegistration(event.ID, "a@x.com"))
		require.NoError(t, err)

		_, err = rs.Register(ctx, testRegistration(event.ID, "b@x.com"))
		assert.ErrorIs(t, err, models.ErrEventFull)

		// The rejected registration must not linger in the roster.
		regs, err := repo.ListByEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.Len(t, regs, 1)

		updated, err := es.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, updated.Registered)
	})

	t.Run("over-capacity allowed when configured", func(t *testing.T) {
		es, rs, _ := newTestServices(t, true)
		event := createTestEvent(t, es, 1)

		_, err := rs.Register(ctx, testRegistration(event.ID, "a@x.com"))
		require.NoError(t, err)
		_, err = rs.Register(ctx, testRegistration(event.ID, "b@x.com"))
		require.NoError(t, err)

		updated, err := es.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, updated.Registered)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("cancel decrements counter", func(t *testing.T) {
		es, rs, _ := newTestServices(t, false)
		event := createTestEvent(t, es, 10)

		reg, err := rs.Register(ctx, testRegistration(event.ID, "a@x.com"))
		require.NoError(t, err)

		require.NoError(t, rs.Cancel(ctx, reg.ID))

		updated, err := es.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, updated.Registered)
	})

	t.Run("unknown registration leaves counters unchanged", func(t *testing.T) {
		es, rs, _ := newTestServices(t, false)
		event := createTestEvent(t, es, 10)
		_, err := rs.Register(ctx, testRegistration(event.ID, "a@x.com"))
		require.NoError(t, err)

		assert.ErrorIs(t, rs.Cancel(ctx, "no-such-registration"), models.ErrNotFound)

		updated, err := es.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, updated.Registered)
	})

	t.Run("double cancel decrements only once", func(t *testing.T) {
		es, rs, _ := newTestServices(t, false)
		event := createTestEvent(t, es, 10)

		first, err := rs.Register(ctx, testRegistration(event.ID, "a@x.com"))
		require.NoError(t, err)
		_, err = rs.Register(ctx, testRegistration(event.ID, "b@x.com"))
		require.NoError(t, err)

		require.NoError(t, rs.Cancel(ctx, first.ID))
		assert.ErrorIs(t, rs.Cancel(ctx, first.ID), models.ErrNotFound)

		updated, err := es.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, updated.Registered)
	})

	t.Run("counter never goes negative", func(t *testing.T) {
		es, rs, repo := newTestServices(t, false)
		event := createTestEvent(t, es, 10)

		reg, err := rs.Register(ctx, testRegistration(event.ID, "a@x.com"))
		require.NoError(t, err)
		require.NoError(t, rs.Cancel(ctx, reg.ID))

		// Force the floor directly: decrement on a zero counter is a no-op.
		require.NoError(t, repo.DecrementRegistered(ctx, event.ID))

		updated, err := es.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, updated.Registered)
	})
}

func TestListForEvent(t *testing.T) {
	ctx := context.Background()
	es, rs, _ := newTestServices(t, false)
	event := createTestEvent(t, es, 10)
	other := createTestEvent(t, es, 10)

	_, err := rs.Register(ctx, testRegistration(event.ID, "a@x.com"))
	require.NoError(t, err)
	_, err = rs.Register(ctx, testRegistration(other.ID, "a@x.com"))
	require.NoError(t, err)

	regs, err := rs.ListForEvent(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, event.ID, regs[0].EventID)

	_, err = rs.ListForEvent(ctx, "no-such-event")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

// The counter must match the live roster after any interleaving of
// register/cancel operations targeting one event.
func TestCounterConsistencyUnderConcurrency(t *testing.T) {
	ctx := context.Background()

	t.Run("concurrent registrations", func(t *testing.T) {
		es, rs, _ := newTestServices(t, false)
		event := createTestEvent(t, es, 1000)

		const workers = 100
		var wg sync.WaitGroup
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func(i int) {
				defer wg.Done()
				_, err := rs.Register(ctx, testRegistration(event.ID, fmt.Sprintf("student%d@x.com", i)))
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		updated, err := es.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		regs, err := rs.ListForEvent(ctx, event.ID)
		require.NoError(t, err)

		assert.Equal(t, workers, updated.Registered)
		assert.Equal(t, updated.Registered, len(regs))
	})

	t.Run("concurrent registrations for the last seat", func(t *testing.T) {
		es, rs, _ := newTestServices(t, false)
		event := createTestEvent(t, es, 1)

		const workers = 20
		var wg sync.WaitGroup
		var mu sync.Mutex
		successes := 0

		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func(i int) {
				defer wg.Done()
				if _, err := rs.Register(ctx, testRegistration(event.ID, fmt.Sprintf("student%d@x.com", i))); err == nil {
					mu.Lock()
					successes++
					mu.Unlock()
				}
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 1, successes)

		updated, err := es.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		regs, err := rs.ListForEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, updated.Registered)
		assert.Len(t, regs, 1)
	})

	t.Run("concurrent duplicate registrations", func(t *testing.T) {
		es, rs, _ := newTestServices(t, false)
		event := createTestEvent(t, es, 100)

		const workers = 20
		var wg sync.WaitGroup
		var mu sync.Mutex
		successes := 0

		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func() {
				defer wg.Done()
				if _, err := rs.Register(ctx, testRegistration(event.ID, "same@x.com")); err == nil {
					mu.Lock()
					successes++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, successes)

		updated, err := es.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, updated.Registered)
	})

	t.Run("racing double cancels never drive the counter negative", func(t *testing.T) {
		es, rs, _ := newTestServices(t, false)
		event := createTestEvent(t, es, 100)

		const regs = 50
		ids := make([]string, 0, regs)
		for i := 0; i < regs; i++ {
			reg, err := rs.Register(ctx, testRegistration(event.ID, fmt.Sprintf("student%d@x.com", i)))
			require.NoError(t, err)
			ids = append(ids, reg.ID)
		}

		// Two goroutines fight over every cancellation.
		var wg sync.WaitGroup
		wg.Add(2 * regs)
		for _, id := range ids {
			for j := 0; j < 2; j++ {
				go func(id string) {
					defer wg.Done()
					_ = rs.Cancel(ctx, id)
				}(id)
			}
		}
		wg.Wait()

		updated, err := es.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		roster, err := rs.ListForEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, updated.Registered)
		assert.Empty(t, roster)
	})

	t.Run("mixed register and cancel interleavings", func(t *testing.T) {
		es, rs, _ := newTestServices(t, false)
		event := createTestEvent(t, es, 1000)

		const pairs = 50
		var wg sync.WaitGroup
		wg.Add(pairs)
		for i := 0; i < pairs; i++ {
			go func(i int) {
				defer wg.Done()
				reg, err := rs.Register(ctx, testRegistration(event.ID, fmt.Sprintf("student%d@x.com", i)))
				if err != nil {
					return
				}
				if i%2 == 0 {
					_ = rs.Cancel(ctx, reg.ID)
				}
			}(i)
		}
		wg.Wait()

		updated, err := es.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		roster, err := rs.ListForEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, len(roster), updated.Registered)
	})
}

// The end-to-end scenario from the consistency model.
func TestRegistrationLifecycle(t *testing.T) {
	ctx := context.Background()
	es, rs, _ := newTestServices(t, false)
	event := createTestEvent(t, es, 2)

	first, err := rs.Register(ctx, testRegistration(event.ID, "a@x.com"))
	require.NoError(t, err)
	got, err := es.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Registered)

	_, err = rs.Register(ctx, testRegistration(event.ID, "a@x.com"))
	assert.ErrorIs(t, err, models.ErrAlreadyRegistered)
	got, err = es.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Registered)

	_, err = rs.Register(ctx, testRegistration(event.ID, "b@x.com"))
	require.NoError(t, err)
	got, err = es.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Registered)

	require.NoError(t, rs.Cancel(ctx, first.ID))
	got, err = es.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Registered)

	roster, err := rs.ListForEvent(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "b@x.com", roster[0].Email)
}
