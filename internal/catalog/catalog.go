// Package catalog serves the static product data of the cinema: the
// concession catalog (combos, snacks, beverages) and the movie
// billboard.  The data is read-only after seeding; carts reference
// items by id and snapshot them at add time.
package catalog

import "github.com/cinemagico/customer-api/internal/model"

// Store is an in-memory catalog.  Item ids are unique across every
// section so a cart line's item reference is unambiguous.
type Store struct {
	sections map[model.CatalogSection][]model.CatalogItem
	byID     map[uint64]model.CatalogItem
	movies   []model.Movie
}

// NewStore returns a catalog populated with the current product data.
func NewStore() *Store {
	s := &Store{
		sections: make(map[model.CatalogSection][]model.CatalogItem),
		byID:     make(map[uint64]model.CatalogItem),
	}
	s.seed()
	return s
}

// Item looks an item up by id across all sections.
func (s *Store) Item(id uint64) (model.CatalogItem, bool) {
	it, ok := s.byID[id]
	return it, ok
}

// Section returns the items of one section in display order.
func (s *Store) Section(sec model.CatalogSection) ([]model.CatalogItem, bool) {
	items, ok := s.sections[sec]
	return items, ok
}

// Sections returns the whole concession catalog keyed by section.
func (s *Store) Sections() map[model.CatalogSection][]model.CatalogItem {
	return s.sections
}

// Movies returns the billboard in display order.
func (s *Store) Movies() []model.Movie {
	return s.movies
}

func (s *Store) add(sec model.CatalogSection, items ...model.CatalogItem) {
	for _, it := range items {
		if _, dup := s.byID[it.ID]; dup {
			// ids must be unique across combos, snacks and beverages
			panic("catalog: duplicate item id")
		}
		s.byID[it.ID] = it
		s.sections[sec] = append(s.sections[sec], it)
	}
}

func (s *Store) seed() {
	s.add(model.SectionCombos,
		model.CatalogItem{ID: 1, Name: "Combo Familiar", Description: "Crispetas grandes + 2 gaseosas medianas", PriceCents: 25000, Image: "assets/images/combo-familiar.jpg"},
		model.CatalogItem{ID: 2, Name: "Combo Pareja", Description: "Crispetas medianas + 2 gaseosas pequeñas", PriceCents: 18000, Image: "assets/images/combo-pareja.jpg"},
		model.CatalogItem{ID: 3, Name: "Combo Individual", Description: "Crispetas pequeñas + gaseosa pequeña", PriceCents: 12000, Image: "assets/images/combo-individual.jpg"},
	)
	s.add(model.SectionSnacks,
		model.CatalogItem{ID: 4, Name: "Crispetas Grandes", Description: "Crispetas con mantequilla", PriceCents: 8000, Image: "assets/images/popcorn-large.jpg"},
		model.CatalogItem{ID: 5, Name: "Nachos con Queso", Description: "Nachos crujientes con salsa de queso", PriceCents: 9500, Image: "assets/images/nachos.jpg"},
		model.CatalogItem{ID: 6, Name: "Hot Dog", Description: "Salchicha con salsas al gusto", PriceCents: 7000, Image: "assets/images/hotdog.jpg"},
	)
	s.add(model.SectionDrinks,
		model.CatalogItem{ID: 7, Name: "Gaseosa Grande", Description: "Coca-Cola, Pepsi, Sprite", PriceCents: 5500, Image: "assets/images/soda-large.jpg"},
		model.CatalogItem{ID: 8, Name: "Agua", Description: "Agua natural 500ml", PriceCents: 3000, Image: "assets/images/water.jpg"},
		model.CatalogItem{ID: 9, Name: "Jugo Natural", Description: "Naranja, mango o lulo", PriceCents: 4500, Image: "assets/images/juice.jpg"},
	)

	s.movies = []model.Movie{
		{Title: "Los 4 Fantásticos: Primeros Pasos", Genre: "Acción, Aventura, Ciencia Ficción", Duration: "115 min", Image: "assets/images/4fanta.jpg", TrailerURL: "https://www.youtube.com/watch?v=waf9snfaUFw", Price2D: 15000, Price3D: 20000, Price4D: 30000, Showtimes: []string{"14:30", "18:00", "21:30"}, Date: "2025-08-11"},
		{Title: "Amores Materialistas", Genre: "Comedia, Romance", Duration: "116 min", Image: "assets/images/amor-mat.jpg", TrailerURL: "https://www.youtube.com/watch?v=jJyMcGr6t18", Price2D: 14000, Showtimes: []string{"15:00", "17:45", "20:30"}, Date: "2025-08-11"},
		{Title: "La hora de la desaparición", Genre: "Misterio, Horror", Duration: "129 min", Image: "assets/images/lahora.jpg", TrailerURL: "https://www.youtube.com/watch?v=J3R3DyQZ1e8", Price2D: 16000, Showtimes: []string{"16:00", "19:15", "22:00"}, Date: "2025-08-11"},
		{Title: "Superman", Genre: "Acción, Aventura, Ciencia Ficción, Fantasía", Duration: "129 min", Image: "assets/images/superman.jpg", TrailerURL: "https://www.youtube.com/watch?v=0X_kBulSMjQ", Price2D: 14000, Price3D: 19000, Price4D: 30000, Showtimes: []string{"15:00", "17:45", "20:30"}, Date: "2025-08-11"},
		{Title: "Cómo Entrenar a Tu Dragón", Genre: "Aventura, Fantasía", Duration: "125 min", Image: "assets/images/entrenar.jpg", TrailerURL: "https://www.youtube.com/watch?v=liGB1ssYn38", Price2D: 14000, Price3D: 19000, Showtimes: []string{"15:00", "17:45", "20:30"}, Date: "2025-08-11"},
		{Title: "Otro Viernes de Locos", Genre: "Comedia, Fantasía, Familiar", Duration: "111 min", Image: "assets/images/delocos.jpg", TrailerURL: "https://www.youtube.com/watch?v=97ExuMBIE8Y", Price2D: 14000, Showtimes: []string{"13:30", "15:00", "17:30"}, Date: "2025-08-11"},
	}
}

// Info returns the static "about us" block: contact data, amenities
// and the team roster.
func Info() model.CinemaInfo {
	return model.CinemaInfo{
		Name:      "CineMágico",
		Phone:     "+571234567",
		Email:     "info@cinemagico.com",
		Latitude:  4.6097,
		Longitude: -74.0817,
		Services: []model.Service{
			{Icon: "film", Title: "Tecnología de Vanguardia", Description: "Proyectores 4K y sistema de sonido Dolby Atmos"},
			{Icon: "restaurant", Title: "Gastronomía Premium", Description: "Snacks gourmet y bebidas artesanales"},
			{Icon: "car", Title: "Parqueadero Gratuito", Description: "Estacionamiento seguro sin costo adicional"},
			{Icon: "accessibility", Title: "Accesibilidad Total", Description: "Instalaciones adaptadas para todos"},
		},
		Team: []model.TeamMember{
			{Name: "Daniel Mateus", Role: "Administrador", Experience: "10 años en la industria cinematográfica", Image: "assets/images/team-daniel.jpg"},
		},
	}
}
