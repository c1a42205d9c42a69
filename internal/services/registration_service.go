package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/campus-events/api/internal/models"
)

type RegistrationService struct {
	events            models.EventsRepo
	registrations     models.RegistrationsRepo
	allowOvercapacity bool
}

func NewRegistrationService(events models.EventsRepo, registrations models.RegistrationsRepo, allowOvercapacity bool) *RegistrationService {
	return &RegistrationService{
		events:            events,
		registrations:     registrations,
		allowOvercapacity: allowOvercapacity,
	}
}

// Register creates a registration and advances the owning event's counter.
// The email is normalized before the duplicate check, the store enforces the
// (event, email) uniqueness, and the counter increment is atomic at the
// storage layer. If the increment fails after the registration was written,
// the registration is removed again so the roster and the counter cannot
// drift apart.
func (rs *RegistrationService) Register(ctx context.Context, reg *models.Registration) (*models.Registration, error) {
	reg.Email = models.NormalizeEmail(reg.Email)
	reg.StudentName = strings.TrimSpace(reg.StudentName)
	reg.EventID = strings.TrimSpace(reg.EventID)

	if err := models.Validate.Struct(reg); err != nil {
		return nil, fmt.Errorf("%w: eventId, studentName and a valid email are required", models.ErrValidation)
	}

	if _, err := rs.events.GetEventByID(ctx, reg.EventID); err != nil {
		return nil, err
	}

	reg.RegisteredAt = time.Now().UTC()

	created, err := rs.registrations.CreateRegistration(ctx, reg)
	if err != nil {
		return nil, err
	}

	if err := rs.events.IncrementRegistered(ctx, reg.EventID, !rs.allowOvercapacity); err != nil {
		// Compensate: the roster entry must not outlive a failed counter
		// update (full event, or event deleted since the existence check).
		if delErr := rs.registrations.DeleteRegistration(ctx, created.ID); delErr != nil && delErr != models.ErrNotFound {
			return nil, fmt.Errorf("failed to roll back registration %s: %v (after: %w)", created.ID, delErr, err)
		}
		return nil, err
	}

	return created, nil
}

// Cancel deletes a registration and decrements the owning event's counter,
// flooring at zero. Deleting first means a raced double-cancel decrements
// only once: the loser gets ErrNotFound from the delete.
func (rs *RegistrationService) Cancel(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: registration ID is required", models.ErrValidation)
	}

	reg, err := rs.registrations.GetRegistrationByID(ctx, id)
	if err != nil {
		return err
	}

	if err := rs.registrations.DeleteRegistration(ctx, id); err != nil {
		return err
	}

	if err := rs.events.DecrementRegistered(ctx, reg.EventID); err != nil && err != models.ErrNotFound {
		// The event itself being gone is fine: its counter went with it.
		return err
	}
	return nil
}

func (rs *RegistrationService) ListAll(ctx context.Context) ([]*models.Registration, error) {
	return rs.registrations.ListRegistrations(ctx)
}

// ListForEvent returns the roster for one event, failing with ErrNotFound
// when the event does not exist.
func (rs *RegistrationService) ListForEvent(ctx context.Context, eventID string) ([]*models.Registration, error) {
	if strings.TrimSpace(eventID) == "" {
		return nil, fmt.Errorf("%w: event ID is required", models.ErrValidation)
	}
	if _, err := rs.events.GetEventByID(ctx, eventID); err != nil {
		return nil, err
	}
	return rs.registrations.ListByEvent(ctx, eventID)
}
