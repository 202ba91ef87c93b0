package model

import "time"

// ReservationStatus enumerates the closed set of reservation states.
// The wire values are the Spanish strings the client renders verbatim.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pendiente"  // created, awaiting payment
	StatusConfirmed ReservationStatus = "confirmada" // paid, ticket valid
	StatusUsed      ReservationStatus = "usada"      // admitted at showtime (terminal)
	StatusCancelled ReservationStatus = "cancelada"  // cancelled by the user (terminal)
)

// Terminal reports whether no further transition is defined out of s.
func (s ReservationStatus) Terminal() bool {
	return s == StatusUsed || s == StatusCancelled
}

// Reservation records a ticket booking for one showing.  The showing
// reference and the seat set are immutable once the reservation is
// created; only Status changes afterwards, and only through the
// lifecycle operations of the reservation store.
//
// Fields:
//  ID         – identifier assigned by the booking flow (e.g. "R001").
//  UserID     – owning customer.
//  MovieTitle – film title of the booked showing.
//  Date       – showing date in ISO form (YYYY-MM-DD).
//  Time       – showing start time ("HH:MM").
//  Hall       – hall name (e.g. "Sala Premium 1").
//  Seats      – seat labels, non-empty, fixed at creation.
//  Format     – projection format: 2D, 3D or 4D.
//  PriceCents – total charged for the whole reservation, computed by
//               the booking flow at creation time (not per seat).
//  Status     – current lifecycle state.
//  QRCode     – asset path of the pre-rendered admission code, if any.
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last status change timestamp.
type Reservation struct {
	ID         string            `json:"id"`
	UserID     uint64            `json:"-"`
	MovieTitle string            `json:"pelicula"`
	Date       string            `json:"fecha"`
	Time       string            `json:"hora"`
	Hall       string            `json:"sala"`
	Seats      []string          `json:"asientos"`
	Format     string            `json:"formato"`
	PriceCents uint32            `json:"precio"`
	Status     ReservationStatus `json:"estado"`
	QRCode     string            `json:"codigo_qr,omitempty"`
	CreatedAt  time.Time         `json:"-"`
	UpdatedAt  time.Time         `json:"-"`
}
