// Package reservation owns the set of ticket reservations and their
// lifecycle.  Status changes go through an explicit state machine:
//
//	pendiente  -> confirmada            (payment completion)
//	confirmada -> usada                 (admission at showtime)
//	pendiente | confirmada -> cancelada (user cancellation)
//
// "usada" and "cancelada" are terminal.  Every operation either fully
// succeeds or leaves the store unchanged; the sentinel errors below let
// handlers map each failure to an HTTP status.
package reservation

import "errors"

// ErrNotFound is returned when an operation references a reservation
// id that does not exist (or belongs to another user).  Handlers
// translate it into HTTP 404.
var ErrNotFound = errors.New("reservation not found")

// ErrInvalidTransition is returned when a status change is not
// permitted from the reservation's current state, e.g. cancelling an
// already used or cancelled reservation.  Handlers translate it into
// HTTP 409.
var ErrInvalidTransition = errors.New("invalid status transition")
