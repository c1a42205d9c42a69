package services

import (
	"context"

	"github.com/campus-events/api/internal/models"
)

type CertificateService struct {
	events        models.EventsRepo
	registrations models.RegistrationsRepo
}

func NewCertificateService(events models.EventsRepo, registrations models.RegistrationsRepo) *CertificateService {
	return &CertificateService{
		events:        events,
		registrations: registrations,
	}
}

// Eligible returns the first floor(0.3*n) registrations of the given ordering.
// This is a placeholder policy standing in for real completion tracking; it
// is pure and mutates nothing.
func Eligible(regs []*models.Registration) []*models.Registration {
	return regs[:len(regs)*3/10]
}

// Certificates projects the eligible subset of the full roster into
// certificate entries, decorated with the event title where the event still
// exists. Recomputed on every call; nothing is persisted.
func (cs *CertificateService) Certificates(ctx context.Context) ([]*models.Certificate, error) {
	regs, err := cs.registrations.ListRegistrations(ctx)
	if err != nil {
		return nil, err
	}

	events, err := cs.events.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	titles := make(map[string]string, len(events))
	for _, event := range events {
		titles[event.ID] = event.Title
	}

	eligible := Eligible(regs)
	certs := make([]*models.Certificate, 0, len(eligible))
	for _, reg := range eligible {
		certs = append(certs, &models.Certificate{
			ID:             "cert-" + reg.ID,
			RegistrationID: reg.ID,
			EventID:        reg.EventID,
			StudentName:    reg.StudentName,
			StudentID:      reg.StudentID,
			EventTitle:     titles[reg.EventID],
			CompletedAt:    reg.RegisteredAt,
		})
	}
	return certs, nil
}
