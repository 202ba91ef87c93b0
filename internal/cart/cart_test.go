package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinemagico/customer-api/internal/cart"
	"github.com/cinemagico/customer-api/internal/model"
)

var (
	comboFamiliar = model.CatalogItem{ID: 1, Name: "Combo Familiar", PriceCents: 25000}
	hotDog        = model.CatalogItem{ID: 6, Name: "Hot Dog", PriceCents: 7000}
	agua          = model.CatalogItem{ID: 8, Name: "Agua", PriceCents: 3000}
)

// recompute sums the lines from scratch, independently of the cached
// total.
func recompute(c *cart.Cart) uint64 {
	var sum uint64
	for _, l := range c.Lines() {
		sum += uint64(l.Item.PriceCents) * uint64(l.Quantity)
	}
	return sum
}

func TestAddSameItemTwiceAggregatesOneLine(t *testing.T) {
	c := cart.New()
	c.AddItem(hotDog)
	c.AddItem(hotDog)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, uint32(2), lines[0].Quantity)
	assert.Equal(t, uint64(14000), c.Total())
}

func TestRemoveDecrementsThenDeletes(t *testing.T) {
	c := cart.New()
	c.AddItem(hotDog)
	c.AddItem(hotDog)

	c.RemoveItem(hotDog.ID)
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, uint32(1), lines[0].Quantity)

	// quantity 1 -> line disappears, never a quantity-zero line
	c.RemoveItem(hotDog.ID)
	assert.Empty(t, c.Lines())
	assert.Equal(t, uint64(0), c.Total())
}

func TestRemoveAbsentItemIsNoOp(t *testing.T) {
	c := cart.New()
	c.AddItem(agua)

	c.RemoveItem(999)
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, uint64(3000), c.Total())
}

func TestClearResetsEverything(t *testing.T) {
	c := cart.New()
	c.AddItem(comboFamiliar)
	c.AddItem(hotDog)
	c.AddItem(hotDog)

	c.Clear()
	assert.True(t, c.Empty())
	assert.Empty(t, c.Lines())
	assert.Equal(t, uint64(0), c.Total())
}

func TestTotalNeverDrifts(t *testing.T) {
	c := cart.New()
	ops := []func(){
		func() { c.AddItem(comboFamiliar) },
		func() { c.AddItem(hotDog) },
		func() { c.AddItem(hotDog) },
		func() { c.RemoveItem(comboFamiliar.ID) },
		func() { c.AddItem(agua) },
		func() { c.RemoveItem(999) },
		func() { c.AddItem(comboFamiliar) },
		func() { c.RemoveItem(hotDog.ID) },
		func() { c.AddItem(agua) },
	}
	for _, op := range ops {
		op()
		assert.Equal(t, recompute(c), c.Total())
	}
}

// One Combo Familiar plus two Hot Dogs: 25000 + 2*7000.
func TestSnackOrderTotal(t *testing.T) {
	c := cart.New()
	c.AddItem(comboFamiliar)
	c.AddItem(hotDog)
	c.AddItem(hotDog)

	assert.Equal(t, uint64(39000), c.Total())
	require.Len(t, c.Lines(), 2)
}

func TestLinesSnapshotIsACopy(t *testing.T) {
	c := cart.New()
	c.AddItem(agua)

	lines := c.Lines()
	lines[0].Quantity = 99
	assert.Equal(t, uint32(1), c.Lines()[0].Quantity)
}

func TestStoreKeepsOneCartPerSession(t *testing.T) {
	s := cart.NewStore()
	a := s.Get("session-a")
	b := s.Get("session-b")
	a.AddItem(hotDog)

	assert.True(t, b.Empty())
	assert.Same(t, a, s.Get("session-a"))

	s.Drop("session-a")
	assert.True(t, s.Get("session-a").Empty())
}
