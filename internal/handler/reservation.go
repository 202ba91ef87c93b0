package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cinemagico/customer-api/internal/middleware"
	"github.com/cinemagico/customer-api/internal/model"
	"github.com/cinemagico/customer-api/internal/queue"
	"github.com/cinemagico/customer-api/internal/reservation"
	queue_publisher "github.com/cinemagico/customer-api/internal/service"
)

// ReservationHandler exposes the "Mis Reservas" endpoints.  All routes
// require a JWT; the destructive cancel is expected to sit behind a
// yes/no confirmation in the client, which is why the handler itself
// performs it without further questions.
type ReservationHandler struct {
	Store *reservation.Store
}

func NewReservationHandler(s *reservation.Store) *ReservationHandler {
	return &ReservationHandler{Store: s}
}

// reservationView decorates a reservation with the derived display
// fields the client renders: status label, badge color and the long
// form date.
type reservationView struct {
	model.Reservation
	StatusLabel   string `json:"estado_texto"`
	StatusColor   string `json:"estado_color"`
	FormattedDate string `json:"fecha_texto"`
}

func viewOf(r model.Reservation) reservationView {
	return reservationView{
		Reservation:   r,
		StatusLabel:   reservation.StatusLabel(r.Status),
		StatusColor:   reservation.StatusColor(r.Status),
		FormattedDate: reservation.FormatShowingDate(r.Date),
	}
}

func viewsOf(rs []model.Reservation) []reservationView {
	out := make([]reservationView, 0, len(rs))
	for _, r := range rs {
		out = append(out, viewOf(r))
	}
	return out
}

// ListActive returns the user's confirmed and used reservations.
func (h *ReservationHandler) ListActive(c echo.Context) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": viewsOf(h.Store.ListActive(uid))})
}

// ListUpcoming returns the user's reservations still awaiting payment.
func (h *ReservationHandler) ListUpcoming(c echo.Context) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": viewsOf(h.Store.ListUpcoming(uid))})
}

// Get returns one reservation by id.
func (h *ReservationHandler) Get(c echo.Context) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	r, err := h.Store.Get(uid, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": viewOf(r)})
}

// Cancel transitions the reservation to cancelada and publishes the
// cancellation event.  Cancelling a used or already cancelled
// reservation is a conflict and leaves everything unchanged.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	r, err := h.Store.Cancel(uid, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		case errors.Is(err, reservation.ErrInvalidTransition):
			return c.JSON(http.StatusConflict, echo.Map{"error": "reservation cannot be cancelled"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel failed"})
	}
	_ = queue_publisher.PublishReservationCancelled(c.Request().Context(), queue.ReservationCancelledEvent{
		ReservationID: r.ID,
		UserID:        uid,
		MovieTitle:    r.MovieTitle,
		ShowDate:      r.Date,
		ShowTime:      r.Time,
		PriceCents:    r.PriceCents,
		CancelledAt:   time.Now().UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Reserva cancelada exitosamente",
		"item":    viewOf(r),
	})
}

// Ticket returns the data payload for ticket download and sharing.
// The PDF/QR generation and the share sheet live in the client; this
// endpoint only supplies what they render.
func (h *ReservationHandler) Ticket(c echo.Context) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	r, err := h.Store.Get(uid, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	}
	return c.JSON(http.StatusOK, reservation.TicketFor(r))
}
