package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cinemagico/customer-api/internal/cart"
	"github.com/cinemagico/customer-api/internal/catalog"
	"github.com/cinemagico/customer-api/internal/middleware"
	"github.com/cinemagico/customer-api/internal/model"
	"github.com/cinemagico/customer-api/internal/queue"
	queue_publisher "github.com/cinemagico/customer-api/internal/service"
)

// CartHandler exposes the concession cart.  Carts are bound to the
// session cookie, so guests can build an order before signing in.  The
// engine itself never notifies anyone; the confirmation messages in
// the responses and the checkout event are this layer's additions.
type CartHandler struct {
	Catalog *catalog.Store
	Carts   *cart.Store
}

func NewCartHandler(cat *catalog.Store, carts *cart.Store) *CartHandler {
	return &CartHandler{Catalog: cat, Carts: carts}
}

type addItemReq struct {
	ItemID uint64 `json:"item_id"`
}

// cartResp is the snapshot returned after every cart operation.
type cartResp struct {
	Items   []model.CartLine `json:"items"`
	Total   uint64           `json:"total"`
	Message string           `json:"message,omitempty"`
}

func snapshot(ct *cart.Cart, msg string) cartResp {
	return cartResp{Items: ct.Lines(), Total: ct.Total(), Message: msg}
}

// Get returns the current cart contents and total.
func (h *CartHandler) Get(c echo.Context) error {
	ct := h.Carts.Get(middleware.SessionID(c))
	return c.JSON(http.StatusOK, snapshot(ct, ""))
}

// AddItem adds one unit of a catalog item to the session cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemReq
	if err := c.Bind(&req); err != nil || req.ItemID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "item_id is required"})
	}
	item, ok := h.Catalog.Item(req.ItemID)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
	}
	ct := h.Carts.Get(middleware.SessionID(c))
	ct.AddItem(item)
	return c.JSON(http.StatusOK, snapshot(ct, fmt.Sprintf("%s agregado al carrito", item.Name)))
}

// RemoveItem removes one unit of an item from the session cart.
// Removing an id that is not in the cart succeeds with no change.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}
	ct := h.Carts.Get(middleware.SessionID(c))
	ct.RemoveItem(id)
	return c.JSON(http.StatusOK, snapshot(ct, ""))
}

// Clear empties the session cart.
func (h *CartHandler) Clear(c echo.Context) error {
	ct := h.Carts.Get(middleware.SessionID(c))
	ct.Clear()
	return c.JSON(http.StatusOK, snapshot(ct, ""))
}

// Checkout places the order for the current cart, publishes the
// order.placed event and starts the next visit from an empty cart.
// Payment is handled elsewhere; this endpoint only closes the cart.
func (h *CartHandler) Checkout(c echo.Context) error {
	sid := middleware.SessionID(c)
	ct := h.Carts.Get(sid)
	if ct.Empty() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cart is empty"})
	}
	total := ct.Total()
	count := 0
	for _, l := range ct.Lines() {
		count += int(l.Quantity)
	}
	uid, _ := middleware.UserID(c)
	_ = queue_publisher.PublishOrderPlaced(c.Request().Context(), queue.OrderPlacedEvent{
		SessionID:  sid,
		UserID:     uid,
		ItemCount:  count,
		TotalCents: total,
		PlacedAt:   time.Now().UTC().Format(time.RFC3339),
	})
	h.Carts.Drop(sid)
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Pedido realizado",
		"total":   total,
	})
}
