package models

import "strings"

// Intent represents the classified purpose of a user utterance
type Intent string

const (
	IntentCartInquiry     Intent = "cart_inquiry"
	IntentOrderPlacement  Intent = "order_placement"
	IntentQuantityUpdate  Intent = "quantity_update"
	IntentPriceInquiry    Intent = "price_inquiry"
	IntentRemoveItem      Intent = "remove_item"
	IntentGeneralQuestion Intent = "general_question"
)

// ParseIntent maps a raw label to a known intent. Labels that match none of
// the known intents fall back to general_question.
func ParseIntent(label string) Intent {
	switch Intent(strings.ToLower(strings.TrimSpace(label))) {
	case IntentCartInquiry:
		return IntentCartInquiry
	case IntentOrderPlacement:
		return IntentOrderPlacement
	case IntentQuantityUpdate:
		return IntentQuantityUpdate
	case IntentPriceInquiry:
		return IntentPriceInquiry
	case IntentRemoveItem:
		return IntentRemoveItem
	default:
		return IntentGeneralQuestion
	}
}
