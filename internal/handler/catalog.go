package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinemagico/customer-api/internal/catalog"
	"github.com/cinemagico/customer-api/internal/model"
)

// CatalogHandler serves the read-only product data: the concession
// catalog, the movie billboard and the "about us" block.  These routes
// sit behind the response cache middleware.
type CatalogHandler struct {
	Catalog *catalog.Store
}

func NewCatalogHandler(cat *catalog.Store) *CatalogHandler {
	return &CatalogHandler{Catalog: cat}
}

// List returns the whole concession catalog grouped by section.
func (h *CatalogHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Catalog.Sections())
}

// Section returns one catalog section (combos, snacks or bebidas).
func (h *CatalogHandler) Section(c echo.Context) error {
	sec := model.CatalogSection(c.Param("section"))
	items, ok := h.Catalog.Section(sec)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown section"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Movies returns the billboard.
func (h *CatalogHandler) Movies(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Catalog.Movies()})
}

// CinemaInfo returns the static contact, services and team data.
func (h *CatalogHandler) CinemaInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, catalog.Info())
}
