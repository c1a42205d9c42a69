package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventsColName = "events"

	// DefaultCapacity is applied when an event is created without a
	// positive capacity.
	DefaultCapacity = 100

	// DefaultOrganizer is the display name used when none is provided.
	DefaultOrganizer = "Admin"

	// EventDateLayout is the calendar date format events are stored with.
	EventDateLayout = "2006-01-02"
)

type Event struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title" validate:"required"`
	Description string    `bson:"description" json:"description"`
	Date        string    `bson:"date" json:"date" validate:"required"` // YYYY-MM-DD
	Time        string    `bson:"time" json:"time"`                     // display string, e.g. "09:00 AM"
	Location    string    `bson:"location" json:"location"`
	Capacity    int       `bson:"capacity" json:"capacity"`
	Registered  int       `bson:"registered" json:"registered"`
	Organizer   string    `bson:"organizer" json:"organizer"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

func (e *Event) BeforeCreate() error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

// Remaining returns the number of open seats. It can be negative when
// over-capacity registration is allowed.
func (e *Event) Remaining() int {
	return e.Capacity - e.Registered
}

// IsFull reports whether no seats remain.
func (e *Event) IsFull() bool {
	return e.Registered >= e.Capacity
}
