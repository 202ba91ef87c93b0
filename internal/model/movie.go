package model

// Movie is a billboard entry: a film currently screening together with
// its showtimes and per-format pricing.  Billboard data is display
// material for the client; selecting a showtime starts the external
// booking flow that eventually produces a Reservation.
//
// Fields:
//  Title       – film title.
//  Genre       – comma separated genre list.
//  Duration    – human readable runtime (e.g. "115 min").
//  Image       – poster asset path.
//  TrailerURL  – external trailer link.
//  Price2D/3D/4D – ticket price per format in minor units; a zero
//                value means the format is not offered for this film.
//  Showtimes   – "HH:MM" start times offered on Date.
//  Date        – screening date in ISO form (YYYY-MM-DD).
type Movie struct {
	Title      string   `json:"titulo"`
	Genre      string   `json:"genero"`
	Duration   string   `json:"duracion"`
	Image      string   `json:"imagen"`
	TrailerURL string   `json:"trailer_url"`
	Price2D    uint32   `json:"precio_2d,omitempty"`
	Price3D    uint32   `json:"precio_3d,omitempty"`
	Price4D    uint32   `json:"precio_4d,omitempty"`
	Showtimes  []string `json:"horarios"`
	Date       string   `json:"fecha"`
}
