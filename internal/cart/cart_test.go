package cart

import (
	"testing"

	"shackchat/internal/models"

	"github.com/stretchr/testify/assert"
)

func shackBurger() models.MenuItem {
	return models.MenuItem{Name: "ShackBurger", Category: "Burgers", Price: 6.99, Calories: 500}
}

func fries() models.MenuItem {
	return models.MenuItem{Name: "Fries", Category: "Fries", Price: 3.99, Calories: 470}
}

func cheeseFries() models.MenuItem {
	return models.MenuItem{Name: "Cheese Fries", Category: "Fries", Price: 4.99, Calories: 710}
}

// assertTotalInvariant checks that the running total equals the sum of the
// line subtotals after any sequence of mutations.
func assertTotalInvariant(t *testing.T, c *Cart) {
	t.Helper()
	sum := 0.0
	for _, line := range c.Lines() {
		sum += line.Subtotal()
	}
	assert.InDelta(t, sum, c.Total(), 1e-9)
}

func TestNewCartIsEmpty(t *testing.T) {
	c := New()
	assert.True(t, c.Empty())
	assert.Zero(t, c.Total())
	assert.Empty(t, c.Lines())
	assert.Equal(t, "Your order is currently empty.", c.Summary())
	assert.Equal(t, "None", c.OrderString())
}

func TestAddItemMergesCaseInsensitive(t *testing.T) {
	c := New()
	c.AddItem(shackBurger(), 1)

	duplicate := shackBurger()
	duplicate.Name = "shackburger"
	c.AddItem(duplicate, 2)

	lines := c.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, "ShackBurger", lines[0].Name)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.InDelta(t, 20.97, c.Total(), 1e-9)
	assertTotalInvariant(t, c)
}

func TestAddItemMergeKeepsPriceSnapshot(t *testing.T) {
	c := New()
	c.AddItem(shackBurger(), 1)

	repriced := shackBurger()
	repriced.Price = 7.49
	c.AddItem(repriced, 1)

	lines := c.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.InDelta(t, 6.99, lines[0].UnitPrice, 1e-9)
	assert.InDelta(t, 13.98, c.Total(), 1e-9)
	assertTotalInvariant(t, c)
}

func TestAddItemClampsQuantity(t *testing.T) {
	c := New()
	c.AddItem(fries(), 0)
	c.AddItem(shackBurger(), -3)

	for _, line := range c.Lines() {
		assert.GreaterOrEqual(t, line.Quantity, 1)
	}
	assertTotalInvariant(t, c)
}

func TestTotalTracksMutationSequence(t *testing.T) {
	c := New()
	c.AddItem(shackBurger(), 2)
	c.AddItem(fries(), 1)
	assertTotalInvariant(t, c)

	c.SetQuantity("fries", 3)
	assertTotalInvariant(t, c)

	c.RemoveItem("shackburger")
	assertTotalInvariant(t, c)

	c.AddItem(cheeseFries(), 1)
	assertTotalInvariant(t, c)

	assert.InDelta(t, 3*3.99+4.99, c.Total(), 1e-9)
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	c := New()
	c.AddItem(shackBurger(), 2)
	c.AddItem(fries(), 1)

	msg := c.SetQuantity("ShackBurger", 0)
	assert.Contains(t, msg, "I've removed ShackBurger from your order.")

	lines := c.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, "Fries", lines[0].Name)
	assertTotalInvariant(t, c)
}

func TestSetQuantityNegativeRemovesLine(t *testing.T) {
	c := New()
	c.AddItem(fries(), 2)

	c.SetQuantity("fries", -1)
	assert.True(t, c.Empty())
	assert.Zero(t, c.Total())
}

func TestSetQuantityUpdatesTotal(t *testing.T) {
	c := New()
	c.AddItem(shackBurger(), 1)

	msg := c.SetQuantity("shack", 4)
	assert.Contains(t, msg, "Now 4x ShackBurger")
	assert.InDelta(t, 27.96, c.Total(), 1e-9)
	assertTotalInvariant(t, c)
}

func TestSetQuantityNotFound(t *testing.T) {
	c := New()
	c.AddItem(fries(), 1)

	msg := c.SetQuantity("Hot Dog", 2)
	assert.Equal(t, "I couldn't find 'Hot Dog' in your current order.", msg)
	assert.Len(t, c.Lines(), 1)
	assert.InDelta(t, 3.99, c.Total(), 1e-9)
}

func TestRemoveItemBySubstring(t *testing.T) {
	c := New()
	c.AddItem(shackBurger(), 2)
	c.AddItem(fries(), 1)

	msg := c.RemoveItem("burger")
	assert.Contains(t, msg, "2x ShackBurger")

	lines := c.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, "Fries", lines[0].Name)
	assertTotalInvariant(t, c)
}

func TestRemoveItemFirstMatchWins(t *testing.T) {
	c := New()
	c.AddItem(cheeseFries(), 1)
	c.AddItem(fries(), 1)

	// "fries" matches both lines; insertion order breaks the tie.
	c.RemoveItem("fries")

	lines := c.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, "Fries", lines[0].Name)
}

func TestRemoveItemNotFound(t *testing.T) {
	c := New()
	msg := c.RemoveItem("Fries")
	assert.Equal(t, "I couldn't find 'Fries' in your current order.", msg)
}

func TestClearResetsTotalExactly(t *testing.T) {
	c := New()
	c.AddItem(shackBurger(), 3)
	c.AddItem(fries(), 2)

	msg := c.Clear()
	assert.Equal(t, "Your order has been cleared.", msg)
	assert.True(t, c.Empty())
	assert.Equal(t, 0.0, c.Total())
}

func TestSummaryListsLinesWithSubtotals(t *testing.T) {
	c := New()
	c.AddItem(shackBurger(), 2)
	c.AddItem(fries(), 1)

	summary := c.Summary()
	assert.Contains(t, summary, "(2x) ShackBurger — $13.98")
	assert.Contains(t, summary, "Fries — $3.99")
	assert.Contains(t, summary, "**Total: $17.97**")
}

func TestOrderString(t *testing.T) {
	c := New()
	c.AddItem(shackBurger(), 2)
	c.AddItem(fries(), 1)

	assert.Equal(t, "2x ShackBurger, Fries", c.OrderString())
	assert.Equal(t, []string{"ShackBurger", "Fries"}, c.ItemNames())
}
