package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinemagico/customer-api/internal/cart"
	"github.com/cinemagico/customer-api/internal/catalog"
	"github.com/cinemagico/customer-api/internal/handler"
	"github.com/cinemagico/customer-api/internal/model"
)

func newCartHandler() *handler.CartHandler {
	return handler.NewCartHandler(catalog.NewStore(), cart.NewStore())
}

// sessionCtx builds an echo context pre-bound to a session id, the way
// the session middleware leaves it.
func sessionCtx(t *testing.T, method, path, body, sid string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session_id", sid)
	return c, rec
}

type cartBody struct {
	Items []model.CartLine `json:"items"`
	Total uint64           `json:"total"`
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) cartBody {
	t.Helper()
	var b cartBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	return b
}

func TestCartAddAndGet(t *testing.T) {
	h := newCartHandler()

	c, rec := sessionCtx(t, http.MethodPost, "/v1/cart/items", `{"item_id": 1}`, "s1")
	require.NoError(t, h.AddItem(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Combo Familiar agregado al carrito")

	for i := 0; i < 2; i++ {
		c, rec = sessionCtx(t, http.MethodPost, "/v1/cart/items", `{"item_id": 6}`, "s1")
		require.NoError(t, h.AddItem(c))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	c, rec = sessionCtx(t, http.MethodGet, "/v1/cart", "", "s1")
	require.NoError(t, h.Get(c))
	b := decodeCart(t, rec)
	require.Len(t, b.Items, 2)
	assert.Equal(t, uint64(39000), b.Total)
}

func TestCartIsolatedPerSession(t *testing.T) {
	h := newCartHandler()

	c, _ := sessionCtx(t, http.MethodPost, "/v1/cart/items", `{"item_id": 4}`, "s1")
	require.NoError(t, h.AddItem(c))

	c, rec := sessionCtx(t, http.MethodGet, "/v1/cart", "", "s2")
	require.NoError(t, h.Get(c))
	assert.Empty(t, decodeCart(t, rec).Items)
}

func TestCartAddUnknownItem(t *testing.T) {
	h := newCartHandler()

	c, rec := sessionCtx(t, http.MethodPost, "/v1/cart/items", `{"item_id": 999}`, "s1")
	require.NoError(t, h.AddItem(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = sessionCtx(t, http.MethodPost, "/v1/cart/items", `{}`, "s1")
	require.NoError(t, h.AddItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartRemoveItem(t *testing.T) {
	h := newCartHandler()

	for i := 0; i < 2; i++ {
		c, _ := sessionCtx(t, http.MethodPost, "/v1/cart/items", `{"item_id": 8}`, "s1")
		require.NoError(t, h.AddItem(c))
	}

	c, rec := sessionCtx(t, http.MethodDelete, "/v1/cart/items/8", "", "s1")
	c.SetParamNames("id")
	c.SetParamValues("8")
	require.NoError(t, h.RemoveItem(c))
	b := decodeCart(t, rec)
	require.Len(t, b.Items, 1)
	assert.Equal(t, uint32(1), b.Items[0].Quantity)

	// removing an absent id succeeds with no change
	c, rec = sessionCtx(t, http.MethodDelete, "/v1/cart/items/999", "", "s1")
	c.SetParamNames("id")
	c.SetParamValues("999")
	require.NoError(t, h.RemoveItem(c))
	assert.Len(t, decodeCart(t, rec).Items, 1)
}

func TestCartClear(t *testing.T) {
	h := newCartHandler()

	c, _ := sessionCtx(t, http.MethodPost, "/v1/cart/items", `{"item_id": 2}`, "s1")
	require.NoError(t, h.AddItem(c))

	c, rec := sessionCtx(t, http.MethodDelete, "/v1/cart", "", "s1")
	require.NoError(t, h.Clear(c))
	b := decodeCart(t, rec)
	assert.Empty(t, b.Items)
	assert.Zero(t, b.Total)
}

func TestCheckoutEmptyCart(t *testing.T) {
	h := newCartHandler()

	c, rec := sessionCtx(t, http.MethodPost, "/v1/cart/checkout", "", "s1")
	require.NoError(t, h.Checkout(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutClosesCart(t *testing.T) {
	h := newCartHandler()

	c, _ := sessionCtx(t, http.MethodPost, "/v1/cart/items", `{"item_id": 3}`, "s1")
	require.NoError(t, h.AddItem(c))

	c, rec := sessionCtx(t, http.MethodPost, "/v1/cart/checkout", "", "s1")
	require.NoError(t, h.Checkout(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pedido realizado")

	// next visit starts from an empty cart
	c, rec = sessionCtx(t, http.MethodGet, "/v1/cart", "", "s1")
	require.NoError(t, h.Get(c))
	assert.Empty(t, decodeCart(t, rec).Items)
}
