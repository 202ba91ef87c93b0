package reservation

import "github.com/cinemagico/customer-api/internal/model"

// SeedDemo loads the demo reservations the client ships with so the
// "Mis Reservas" screens have content in development environments.
// R001/R002 are active (confirmada/usada) and R003 is an upcoming
// pendiente booking.  All are attached to the given user.
func SeedDemo(s *Store, userID uint64) {
	demo := []model.Reservation{
		{
			ID:         "R001",
			UserID:     userID,
			MovieTitle: "Los 4 Fantásticos: Primeros Pasos",
			Date:       "2025-08-15",
			Time:       "19:30",
			Hall:       "Sala Premium 1",
			Seats:      []string{"F5", "F6"},
			Format:     "3D",
			PriceCents: 42000,
			Status:     model.StatusConfirmed,
			QRCode:     "assets/images/cinemagico_qr.png",
		},
		{
			ID:         "R002",
			UserID:     userID,
			MovieTitle: "La hora de la desaparición",
			Date:       "2025-08-12",
			Time:       "21:00",
			Hall:       "Sala VIP 2",
			Seats:      []string{"C3", "C4"},
			Format:     "2D",
			PriceCents: 32000,
			Status:     model.StatusConfirmed,
			QRCode:     "assets/images/codigo_qr_2.png",
		},
		{
			ID:         "R003",
			UserID:     userID,
			MovieTitle: "Otro Viernes de Locos",
			Date:       "2025-08-20",
			Time:       "16:00",
			Hall:       "Sala 3",
			Seats:      []string{"H7", "H8", "H9"},
			Format:     "2D",
			PriceCents: 45000,
			Status:     model.StatusPending,
		},
	}
	for _, r := range demo {
		_ = s.Add(r)
	}
	// R002 was already admitted; move it to its terminal state through
	// the regular lifecycle so the seed obeys the same transition table.
	_, _ = s.MarkUsed(userID, "R002")
}
