package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		text     string
		quantity int
		rest     string
	}{
		{"2 fries", 2, "fries"},
		{"10 shackburgers", 10, "shackburgers"},
		{"two shakes", 2, "shakes"},
		{"ten lemonades", 10, "lemonades"},
		{"a shackburger", 1, "shackburger"},
		{"an iced tea", 1, "iced tea"},
		{"3", 3, ""},
		{"three", 3, ""},
		{"fries", 1, "fries"},
		{"0 fries", 1, "0 fries"},
		{"", 1, ""},
	}

	for _, tc := range tests {
		quantity, rest := ParseQuantity(tc.text)
		assert.Equal(t, tc.quantity, quantity, "text %q", tc.text)
		assert.Equal(t, tc.rest, rest, "text %q", tc.text)
	}
}

func TestFindQuantity(t *testing.T) {
	tests := []struct {
		text     string
		quantity int
		found    bool
	}{
		{"make it 3 please", 3, true},
		{"change my fries to two", 2, true},
		{"Change my ShackBurger to 3", 3, true},
		{"actually make that five of them", 5, true},
		{"update the order a little", 0, false},
		{"remove the fries", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		quantity, found := FindQuantity(tc.text)
		assert.Equal(t, tc.found, found, "text %q", tc.text)
		if tc.found {
			assert.Equal(t, tc.quantity, quantity, "text %q", tc.text)
		}
	}
}
