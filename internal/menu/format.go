package menu

import (
	"fmt"
	"strings"

	"shackchat/internal/models"
)

// groupByCategory groups items by category preserving first-appearance order
func groupByCategory(items []models.MenuItem) ([]string, map[string][]models.MenuItem) {
	var order []string
	grouped := make(map[string][]models.MenuItem)
	for _, item := range items {
		if _, seen := grouped[item.Category]; !seen {
			order = append(order, item.Category)
		}
		grouped[item.Category] = append(grouped[item.Category], item)
	}
	return order, grouped
}

// PromptInfo renders the menu as plain text for grounding LLM prompts
func (c *Catalog) PromptInfo() string {
	order, grouped := groupByCategory(c.AllItems())

	var b strings.Builder
	b.WriteString("Shake Shack Menu Information:\n")
	for _, category := range order {
		fmt.Fprintf(&b, "\n%s:\n", category)
		for _, item := range grouped[category] {
			fmt.Fprintf(&b, "- %s: $%.2f, %d calories\n", item.Name, item.Price, item.Calories)
		}
	}
	return b.String()
}

// Formatted renders the menu as Markdown for display to the user
func (c *Catalog) Formatted() string {
	order, grouped := groupByCategory(c.AllItems())

	var b strings.Builder
	b.WriteString("# Shake Shack Menu\n\n")
	for _, category := range order {
		fmt.Fprintf(&b, "## %s\n\n", category)
		for _, item := range grouped[category] {
			fmt.Fprintf(&b, "- **%s** — $%.2f (%d calories)\n", item.Name, item.Price, item.Calories)
		}
		b.WriteString("\n")
	}
	return b.String()
}
