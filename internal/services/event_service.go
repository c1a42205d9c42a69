package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/campus-events/api/internal/models"
)

type EventService struct {
	events        models.EventsRepo
	registrations models.RegistrationsRepo
}

func NewEventService(events models.EventsRepo, registrations models.RegistrationsRepo) *EventService {
	return &EventService{
		events:        events,
		registrations: registrations,
	}
}

// CreateEvent validates and persists a new event. Capacity defaults to 100
// when unset or non-positive, the organizer defaults to "Admin", and the
// registered counter always starts at zero regardless of caller input.
func (es *EventService) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	event.Title = strings.TrimSpace(event.Title)
	event.Date = strings.TrimSpace(event.Date)

	if err := models.Validate.Struct(event); err != nil {
		return nil, fmt.Errorf("%w: title and date are required", models.ErrValidation)
	}
	if _, err := time.Parse(models.EventDateLayout, event.Date); err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", models.ErrValidation)
	}

	if event.Capacity <= 0 {
		event.Capacity = models.DefaultCapacity
	}
	if strings.TrimSpace(event.Organizer) == "" {
		event.Organizer = models.DefaultOrganizer
	}
	event.Registered = 0

	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	return es.events.CreateEvent(ctx, event)
}

func (es *EventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: event ID is required", models.ErrValidation)
	}
	return es.events.GetEventByID(ctx, id)
}

func (es *EventService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return es.events.ListEvents(ctx)
}

// UpdateEvent merges the provided fields over the existing record. The
// registered counter belongs to the registration ledger and cannot be set
// here; identity and creation stamps are likewise ignored.
func (es *EventService) UpdateEvent(ctx context.Context, id string, fields map[string]interface{}) (*models.Event, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: event ID is required", models.ErrValidation)
	}
	if fields == nil {
		fields = map[string]interface{}{}
	}

	delete(fields, "id")
	delete(fields, "registered")
	delete(fields, "createdAt")
	delete(fields, "created_at")
	delete(fields, "updatedAt")

	if date, ok := fields["date"].(string); ok {
		if _, err := time.Parse(models.EventDateLayout, strings.TrimSpace(date)); err != nil {
			return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", models.ErrValidation)
		}
	}
	if title, ok := fields["title"].(string); ok && strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", models.ErrValidation)
	}

	fields["updated_at"] = time.Now().UTC()

	return es.events.UpdateEvent(ctx, id, fields)
}

// DeleteEvent removes the event and cascades to its registrations so no
// orphaned roster entries survive.
func (es *EventService) DeleteEvent(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: event ID is required", models.ErrValidation)
	}

	if err := es.events.DeleteEvent(ctx, id); err != nil {
		return err
	}
	if _, err := es.registrations.DeleteByEvent(ctx, id); err != nil {
		return fmt.Errorf("failed to remove registrations for deleted event: %w", err)
	}
	return nil
}

// SeedDemoData loads the starter catalogue when the store is empty.
func (es *EventService) SeedDemoData(ctx context.Context) (int, error) {
	existing, err := es.events.ListEvents(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	seeded := 0
	for _, event := range models.DemoEvents() {
		if _, err := es.CreateEvent(ctx, event); err != nil {
			return seeded, err
		}
		seeded++
	}
	return seeded, nil
}
