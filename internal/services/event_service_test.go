package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-events/api/internal/models"
)

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("applies defaults and forces counter to zero", func(t *testing.T) {
		es, _, _ := newTestServices(t, false)

		event, err := es.CreateEvent(ctx, &models.Event{
			Title:      "Career Seminar",
			Date:       "2026-03-08",
			Registered: 42, // caller input must be ignored
		})
		require.NoError(t, err)

		assert.NotEmpty(t, event.ID)
		assert.Equal(t, models.DefaultCapacity, event.Capacity)
		assert.Equal(t, 0, event.Registered)
		assert.Equal(t, models.DefaultOrganizer, event.Organizer)
		assert.False(t, event.CreatedAt.IsZero())
	})

	t.Run("rejects missing title or date", func(t *testing.T) {
		es, _, _ := newTestServices(t, false)

		_, err := es.CreateEvent(ctx, &models.Event{Date: "2026-03-08"})
		assert.ErrorIs(t, err, models.ErrValidation)

		_, err = es.CreateEvent(ctx, &models.Event{Title: "No Date"})
		assert.ErrorIs(t, err, models.ErrValidation)

		_, err = es.CreateEvent(ctx, &models.Event{Title: "Bad Date", Date: "March 8th"})
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("keeps an explicit positive capacity", func(t *testing.T) {
		es, _, _ := newTestServices(t, false)

		event, err := es.CreateEvent(ctx, &models.Event{
			Title:    "Sports Meet",
			Date:     "2026-04-05",
			Capacity: 300,
		})
		require.NoError(t, err)
		assert.Equal(t, 300, event.Capacity)
	})
}

func TestUpdateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("merges partial fields", func(t *testing.T) {
		es, _, _ := newTestServices(t, false)
		event := createTestEvent(t, es, 100)

		updated, err := es.UpdateEvent(ctx, event.ID, map[string]interface{}{
			"location": "Seminar Hall B",
			"capacity": 250,
		})
		require.NoError(t, err)

		assert.Equal(t, "Seminar Hall B", updated.Location)
		assert.Equal(t, 250, updated.Capacity)
		assert.Equal(t, event.Title, updated.Title)
	})

	t.Run("cannot set the registered counter", func(t *testing.T) {
		es, rs, _ := newTestServices(t, false)
		event := createTestEvent(t, es, 100)
		_, err := rs.Register(ctx, testRegistration(event.ID, "a@x.com"))
		require.NoError(t, err)

		updated, err := es.UpdateEvent(ctx, event.ID, map[string]interface{}{
			"registered": 999,
			"title":      "Renamed",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, updated.Registered)
		assert.Equal(t, "Renamed", updated.Title)
	})

	t.Run("unknown event", func(t *testing.T) {
		es, _, _ := newTestServices(t, false)
		_, err := es.UpdateEvent(ctx, "no-such-event", map[string]interface{}{"title": "X"})
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("rejects an invalid replacement date", func(t *testing.T) {
		es, _, _ := newTestServices(t, false)
		event := createTestEvent(t, es, 100)

		_, err := es.UpdateEvent(ctx, event.ID, map[string]interface{}{"date": "next Tuesday"})
		assert.ErrorIs(t, err, models.ErrValidation)
	})
}

func TestDeleteEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("cascade removes the roster", func(t *testing.T) {
		es, rs, repo := newTestServices(t, false)
		event := createTestEvent(t, es, 100)
		other := createTestEvent(t, es, 100)

		_, err := rs.Register(ctx, testRegistration(event.ID, "a@x.com"))
		require.NoError(t, err)
		_, err = rs.Register(ctx, testRegistration(event.ID, "b@x.com"))
		require.NoError(t, err)
		kept, err := rs.Register(ctx, testRegistration(other.ID, "a@x.com"))
		require.NoError(t, err)

		require.NoError(t, es.DeleteEvent(ctx, event.ID))

		_, err = es.GetEvent(ctx, event.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)

		regs, err := repo.ListRegistrations(ctx)
		require.NoError(t, err)
		require.Len(t, regs, 1)
		assert.Equal(t, kept.ID, regs[0].ID)
	})

	t.Run("unknown event", func(t *testing.T) {
		es, _, _ := newTestServices(t, false)
		assert.ErrorIs(t, es.DeleteEvent(ctx, "no-such-event"), models.ErrNotFound)
	})
}

func TestSeedDemoData(t *testing.T) {
	ctx := context.Background()
	es, _, _ := newTestServices(t, false)

	seeded, err := es.SeedDemoData(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(models.DemoEvents()), seeded)

	events, err := es.ListEvents(ctx)
	require.NoError(t, err)
	for _, event := range events {
		assert.Equal(t, 0, event.Registered)
	}

	// Idempotent: a non-empty store is left alone.
	seeded, err = es.SeedDemoData(ctx)
	require.NoError(t, err)
	assert.Zero(t, seeded)
}
