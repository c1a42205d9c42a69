package models

import "errors"

// ErrNotFound is returned when a requested event or registration does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyRegistered is returned when the same email registers twice for one event.
var ErrAlreadyRegistered = errors.New("already registered for this event")

// ErrEventFull is returned when capacity enforcement is on and no seats remain.
var ErrEventFull = errors.New("event is at full capacity")

// ErrValidation wraps input errors so handlers can answer 400 instead of 500.
var ErrValidation = errors.New("invalid input")
