package cart

import (
	"fmt"
	"strings"

	"shackchat/internal/models"
)

// Line is one entry in the order: a distinct menu item, its unit price
// snapshotted at add-time, and a quantity that is always at least 1.
type Line struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// Subtotal returns the line's contribution to the order total
func (l Line) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Cart holds the order state for one conversation session. Lines keep
// insertion order; the running total always equals the sum of line subtotals.
// A cart is owned by a single session and is not safe for concurrent use.
type Cart struct {
	lines []Line
	total float64
}

// New creates an empty cart
func New() *Cart {
	return &Cart{}
}

// Lines returns a copy of the cart lines in insertion order
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total returns the current order total
func (c *Cart) Total() float64 {
	return c.total
}

// Empty reports whether the cart has no lines
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// AddItem adds a menu item to the cart. If a line for the same item already
// exists (case-insensitive), its quantity is incremented instead of adding a
// duplicate line.
func (c *Cart) AddItem(item models.MenuItem, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.lines {
		if strings.EqualFold(c.lines[i].Name, item.Name) {
			// The merged line keeps its snapshotted unit price, so the total
			// grows by that price even if the catalog price changed since.
			c.lines[i].Quantity += quantity
			c.total += c.lines[i].UnitPrice * float64(quantity)
			return
		}
	}

	c.lines = append(c.lines, Line{
		Name:      item.Name,
		Category:  item.Category,
		UnitPrice: item.Price,
		Quantity:  quantity,
	})
	c.total += item.Price * float64(quantity)
}

// findLine locates a line by the permissive substring semantics: the search
// term need only be contained in the stored name. Ties break to the first
// matching line in insertion order.
func (c *Cart) findLine(itemName string) int {
	needle := strings.ToLower(itemName)
	for i := range c.lines {
		if strings.Contains(strings.ToLower(c.lines[i].Name), needle) {
			return i
		}
	}
	return -1
}

// SetQuantity updates the quantity of a line matched by substring. A new
// quantity of zero or less removes the line. Returns the confirmation to show
// the user, or a not-found message when nothing matches.
func (c *Cart) SetQuantity(itemName string, newQuantity int) string {
	i := c.findLine(itemName)
	if i < 0 {
		return fmt.Sprintf("I couldn't find '%s' in your current order.", itemName)
	}

	line := c.lines[i]
	if newQuantity <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		c.total -= line.Subtotal()
		return fmt.Sprintf("**I've removed %s from your order.**  \n  \n**Your total is now $%.2f**", line.Name, c.total)
	}

	c.total += line.UnitPrice * float64(newQuantity-line.Quantity)
	c.lines[i].Quantity = newQuantity
	return fmt.Sprintf("**I've updated your order:**  \n- Now %dx %s — $%.2f  \n  \n**Your total is now $%.2f**",
		newQuantity, line.Name, line.UnitPrice*float64(newQuantity), c.total)
}

// RemoveItem removes a line matched by substring and returns the confirmation
// message, or a not-found message when nothing matches.
func (c *Cart) RemoveItem(itemName string) string {
	i := c.findLine(itemName)
	if i < 0 {
		return fmt.Sprintf("I couldn't find '%s' in your current order.", itemName)
	}

	line := c.lines[i]
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	c.total -= line.Subtotal()

	quantityText := ""
	if line.Quantity > 1 {
		quantityText = fmt.Sprintf("%dx ", line.Quantity)
	}
	return fmt.Sprintf("**Removed from your order:**  \n- %s%s  \n  \n**Your total is now $%.2f**", quantityText, line.Name, c.total)
}

// Summary renders the full order with per-line subtotals and the grand total
func (c *Cart) Summary() string {
	if c.Empty() {
		return "Your order is currently empty."
	}

	var b strings.Builder
	b.WriteString("**Your current order:**  \n")
	for _, line := range c.lines {
		quantityText := ""
		if line.Quantity > 1 {
			quantityText = fmt.Sprintf("(%dx) ", line.Quantity)
		}
		fmt.Fprintf(&b, "- %s%s — $%.2f  \n", quantityText, line.Name, line.Subtotal())
	}
	fmt.Fprintf(&b, "  \n**Total: $%.2f**", c.total)
	return b.String()
}

// Clear empties the cart and resets the total to exactly zero
func (c *Cart) Clear() string {
	c.lines = nil
	c.total = 0
	return "Your order has been cleared."
}

// OrderString renders the cart as a short comma-separated list for LLM
// prompt context, or "None" when empty.
func (c *Cart) OrderString() string {
	if c.Empty() {
		return "None"
	}

	parts := make([]string, 0, len(c.lines))
	for _, line := range c.lines {
		if line.Quantity > 1 {
			parts = append(parts, fmt.Sprintf("%dx %s", line.Quantity, line.Name))
		} else {
			parts = append(parts, line.Name)
		}
	}
	return strings.Join(parts, ", ")
}

// ItemNames returns the stored item names in insertion order
func (c *Cart) ItemNames() []string {
	names := make([]string, len(c.lines))
	for i, line := range c.lines {
		names[i] = line.Name
	}
	return names
}
