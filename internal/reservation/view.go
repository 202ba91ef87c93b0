package reservation

import (
	"fmt"
	"time"

	"github.com/cinemagico/customer-api/internal/model"
)

// StatusLabel maps every reservation status to its display text.  The
// function is total over the closed enum; the fallback only covers
// defensive handling of unknown input and echoes the raw value.
func StatusLabel(status model.ReservationStatus) string {
	switch status {
	case model.StatusConfirmed:
		return "Confirmada"
	case model.StatusPending:
		return "Pendiente de Pago"
	case model.StatusCancelled:
		return "Cancelada"
	case model.StatusUsed:
		return "Usada"
	default:
		return string(status)
	}
}

// StatusColor maps every reservation status to the UI color token the
// client renders the badge with.  Total over the enum; "primary" is the
// defensive default for unknown input only.
func StatusColor(status model.ReservationStatus) string {
	switch status {
	case model.StatusConfirmed:
		return "success"
	case model.StatusPending:
		return "warning"
	case model.StatusCancelled:
		return "danger"
	case model.StatusUsed:
		return "medium"
	default:
		return "primary"
	}
}

// Spanish weekday and month names for date formatting.  The standard
// library formats dates in English only, so the es-CO long form is
// assembled from these tables.
var (
	weekdaysES = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}
	monthsES   = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"}
)

// FormatShowingDate renders an ISO date (YYYY-MM-DD) as the Spanish
// long form shown on tickets, e.g. "viernes, 15 de agosto de 2025".
// The result is stable for a given input; malformed input is returned
// unchanged so the client still has something to display.
func FormatShowingDate(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return fmt.Sprintf("%s, %d de %s de %d",
		weekdaysES[t.Weekday()], t.Day(), monthsES[t.Month()-1], t.Year())
}

// Ticket is the data payload an external ticket generator (PDF, QR,
// share sheet) consumes.  This service only supplies the data; file
// generation and sharing happen client-side.
type Ticket struct {
	Reservation   model.Reservation `json:"reserva"`
	StatusLabel   string            `json:"estado_texto"`
	StatusColor   string            `json:"estado_color"`
	FormattedDate string            `json:"fecha_texto"`
	ShareText     string            `json:"texto_compartir"`
}

// TicketFor assembles the ticket payload for a reservation, including
// the share message in the product's wording.
func TicketFor(r model.Reservation) Ticket {
	return Ticket{
		Reservation:   r,
		StatusLabel:   StatusLabel(r.Status),
		StatusColor:   StatusColor(r.Status),
		FormattedDate: FormatShowingDate(r.Date),
		ShareText:     fmt.Sprintf("Voy a ver %s el %s a las %s", r.MovieTitle, r.Date, r.Time),
	}
}
