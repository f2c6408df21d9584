package chat

import (
	"context"

	"shackchat/internal/llm"
	"shackchat/internal/menu"
	"shackchat/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockLLM is a mock completion provider for testing
type MockLLM struct {
	mock.Mock
}

func (m *MockLLM) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	args := m.Called(ctx, messages)
	return args.String(0), args.Error(1)
}

func (m *MockLLM) SetTemperature(temperature float32) {}

func (m *MockLLM) SetMaxTokens(maxTokens int32) {}

// menuStore is an in-memory menu source for tests
type menuStore struct {
	items []models.MenuItem
}

func (s *menuStore) AllItems() ([]models.MenuItem, error) {
	return s.items, nil
}

func (s *menuStore) ItemsByCategory(category string) ([]models.MenuItem, error) {
	var out []models.MenuItem
	for _, item := range s.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out, nil
}

func testMenu() []models.MenuItem {
	return []models.MenuItem{
		{Name: "ShackBurger", Category: "Burgers", Price: 6.99, Calories: 500},
		{Name: "Cheeseburger", Category: "Burgers", Price: 6.49, Calories: 440},
		{Name: "Chicken Shack", Category: "Chicken", Price: 7.99, Calories: 590},
		{Name: "Fries", Category: "Fries", Price: 3.99, Calories: 470},
		{Name: "Cheese Fries", Category: "Fries", Price: 4.99, Calories: 710},
		{Name: "Chocolate Shake", Category: "Milkshakes", Price: 5.99, Calories: 750},
		{Name: "Shack-made Lemonade", Category: "Drinks", Price: 3.99, Calories: 220},
	}
}

func newTestCatalog() *menu.Catalog {
	return menu.NewCatalog(&menuStore{items: testMenu()})
}
