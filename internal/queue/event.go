// Package queue defines the notification events exchanged over the
// message broker.  Core operations never send anything themselves;
// handlers publish these events after an operation returns, and the
// background consumer turns them into user-facing notification lines.
package queue

// Queue names, one per event type.
const (
	QueueOrderPlaced          = "order.placed"
	QueueReservationCancelled = "reservation.cancelled"
	QueueAccountRecovery      = "account.recovery"
)

// OrderPlacedEvent is published when a concession cart is checked out.
type OrderPlacedEvent struct {
	SessionID  string `json:"session_id"`
	UserID     uint64 `json:"user_id,omitempty"`
	ItemCount  int    `json:"item_count"`
	TotalCents uint64 `json:"total_cents"`
	PlacedAt   string `json:"placed_at"`
}

// ReservationCancelledEvent is published when a user cancels a ticket
// reservation.
type ReservationCancelledEvent struct {
	ReservationID string `json:"reservation_id"`
	UserID        uint64 `json:"user_id"`
	MovieTitle    string `json:"movie_title"`
	ShowDate      string `json:"show_date"`
	ShowTime      string `json:"show_time"`
	PriceCents    uint32 `json:"price_cents"`
	CancelledAt   string `json:"cancelled_at"`
}

// AccountRecoveryEvent is published when a password recovery is
// requested; a downstream mailer would act on it.
type AccountRecoveryEvent struct {
	Email       string `json:"email"`
	RequestedAt string `json:"requested_at"`
}
