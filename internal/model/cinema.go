package model

// CinemaInfo is the static "about us" data block: corporate contact
// details, the service list and the team roster.  The client decides
// how to launch maps, dialer or mail with these values.
type CinemaInfo struct {
	Name      string       `json:"nombre"`
	Phone     string       `json:"telefono"`
	Email     string       `json:"email"`
	Latitude  float64      `json:"latitud"`
	Longitude float64      `json:"longitud"`
	Services  []Service    `json:"servicios"`
	Team      []TeamMember `json:"equipo"`
}

// Service is one amenity highlighted on the about page.
type Service struct {
	Icon        string `json:"icono"`
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
}

// TeamMember is one staff entry on the about page.
type TeamMember struct {
	Name       string `json:"nombre"`
	Role       string `json:"cargo"`
	Experience string `json:"experiencia"`
	Image      string `json:"imagen"`
}
