package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const RegistrationsColName = "registrations"

type Registration struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	EventID      string    `bson:"event_id" json:"eventId" validate:"required"`
	StudentName  string    `bson:"student_name" json:"studentName" validate:"required"`
	StudentID    string    `bson:"student_id" json:"studentId"`
	Email        string    `bson:"email" json:"email" validate:"required,email"`
	Phone        string    `bson:"phone" json:"phone"`
	Department   string    `bson:"department" json:"department"`
	Year         string    `bson:"year" json:"year"` // "1st".."4th"
	RegisteredAt time.Time `bson:"registered_at" json:"registeredAt"`
}

func (r *Registration) BeforeCreate() error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

// NormalizeEmail lowercases and trims an address so the duplicate check
// treats two spellings of the same address as equal.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Certificate is a derived view over an eligible registration. It is never
// persisted; it is recomputed from the roster on every read.
type Certificate struct {
	ID             string    `json:"id"`
	RegistrationID string    `json:"registrationId"`
	EventID        string    `json:"eventId"`
	StudentName    string    `json:"studentName"`
	StudentID      string    `json:"studentId"`
	EventTitle     string    `json:"eventTitle"`
	CompletedAt    time.Time `json:"completedAt"`
}
