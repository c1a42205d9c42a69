package models

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of EventsRepo and
// RegistrationsRepo. Every operation runs behind one mutex, which makes the
// store itself the serialization point for the (event, counter) pair and the
// (event_id, email) uniqueness check. It backs the test suite and the
// offline development mode.
type MemoryRepo struct {
	mu sync.Mutex

	events     map[string]*Event
	eventOrder []string

	regs     map[string]*Registration
	regOrder []string
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		events: make(map[string]*Event),
		regs:   make(map[string]*Registration),
	}
}

func (m *MemoryRepo) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	if err := event.BeforeCreate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *event
	m.events[cp.ID] = &cp
	m.eventOrder = append(m.eventOrder, cp.ID)
	return event, nil
}

func (m *MemoryRepo) GetEventByID(ctx context.Context, id string) (*Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	event, ok := m.events[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *event
	return &cp, nil
}

func (m *MemoryRepo) ListEvents(ctx context.Context) ([]*Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	events := make([]*Event, 0, len(m.eventOrder))
	for _, id := range m.eventOrder {
		if event, ok := m.events[id]; ok {
			cp := *event
			events = append(events, &cp)
		}
	}
	return events, nil
}

func (m *MemoryRepo) UpdateEvent(ctx context.Context, id string, fields map[string]interface{}) (*Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	event, ok := m.events[id]
	if !ok {
		return nil, ErrNotFound
	}

	for key, value := range fields {
		switch key {
		case "title":
			if v, ok := value.(string); ok {
				event.Title = v
			}
		case "description":
			if v, ok := value.(string); ok {
				event.Description = v
			}
		case "date":
			if v, ok := value.(string); ok {
				event.Date = v
			}
		case "time":
			if v, ok := value.(string); ok {
				event.Time = v
			}
		case "location":
			if v, ok := value.(string); ok {
				event.Location = v
			}
		case "organizer":
			if v, ok := value.(string); ok {
				event.Organizer = v
			}
		case "capacity":
			switch v := value.(type) {
			case int:
				event.Capacity = v
			case float64:
				event.Capacity = int(v)
			}
		case "updated_at":
			if v, ok := value.(time.Time); ok {
				event.UpdatedAt = v
			}
		}
	}

	cp := *event
	return &cp, nil
}

func (m *MemoryRepo) DeleteEvent(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.events[id]; !ok {
		return ErrNotFound
	}
	delete(m.events, id)
	for i, eid := range m.eventOrder {
		if eid == id {
			m.eventOrder = append(m.eventOrder[:i], m.eventOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MemoryRepo) IncrementRegistered(ctx context.Context, id string, enforceCapacity bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	event, ok := m.events[id]
	if !ok {
		return ErrNotFound
	}
	if enforceCapacity && event.Registered >= event.Capacity {
		return ErrEventFull
	}
	event.Registered++
	return nil
}

func (m *MemoryRepo) DecrementRegistered(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	event, ok := m.events[id]
	if !ok {
		return ErrNotFound
	}
	if event.Registered > 0 {
		event.Registered--
	}
	return nil
}

func (m *MemoryRepo) CreateRegistration(ctx context.Context, reg *Registration) (*Registration, error) {
	if err := reg.BeforeCreate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range m.regOrder {
		existing := m.regs[id]
		if existing != nil && existing.EventID == reg.EventID && existing.Email == reg.Email {
			return nil, ErrAlreadyRegistered
		}
	}

	cp := *reg
	m.regs[cp.ID] = &cp
	m.regOrder = append(m.regOrder, cp.ID)
	return reg, nil
}

func (m *MemoryRepo) GetRegistrationByID(ctx context.Context, id string) (*Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	reg, ok := m.regs[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *reg
	return &cp, nil
}

func (m *MemoryRepo) ListRegistrations(ctx context.Context) ([]*Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.collect(func(*Registration) bool { return true }), nil
}

func (m *MemoryRepo) ListByEvent(ctx context.Context, eventID string) ([]*Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.collect(func(r *Registration) bool { return r.EventID == eventID }), nil
}

func (m *MemoryRepo) collect(keep func(*Registration) bool) []*Registration {
	regs := []*Registration{}
	for _, id := range m.regOrder {
		if reg, ok := m.regs[id]; ok && keep(reg) {
			cp := *reg
			regs = append(regs, &cp)
		}
	}
	return regs
}

func (m *MemoryRepo) DeleteRegistration(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.regs[id]; !ok {
		return ErrNotFound
	}
	m.removeReg(id)
	return nil
}

func (m *MemoryRepo) DeleteByEvent(ctx context.Context, eventID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed int64
	for _, id := range append([]string(nil), m.regOrder...) {
		if reg, ok := m.regs[id]; ok && reg.EventID == eventID {
			m.removeReg(id)
			removed++
		}
	}
	return removed, nil
}

func (m *MemoryRepo) removeReg(id string) {
	delete(m.regs, id)
	for i, rid := range m.regOrder {
		if rid == id {
			m.regOrder = append(m.regOrder[:i], m.regOrder[i+1:]...)
			break
		}
	}
}
