package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntent(t *testing.T) {
	tests := []struct {
		label string
		want  Intent
	}{
		{"cart_inquiry", IntentCartInquiry},
		{"order_placement", IntentOrderPlacement},
		{"quantity_update", IntentQuantityUpdate},
		{"price_inquiry", IntentPriceInquiry},
		{"remove_item", IntentRemoveItem},
		{"general_question", IntentGeneralQuestion},
		{"  Remove_Item  ", IntentRemoveItem},
		{"ORDER_PLACEMENT", IntentOrderPlacement},
		{"make me a sandwich", IntentGeneralQuestion},
		{"", IntentGeneralQuestion},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ParseIntent(tc.label), "label %q", tc.label)
	}
}
