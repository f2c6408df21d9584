package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"shackchat/internal/cart"
	"shackchat/internal/llm"
	"shackchat/internal/menu"
	"shackchat/internal/models"
	"shackchat/internal/monitoring"
)

// OrderSaver persists a finalized cart and returns an opaque order identifier
type OrderSaver interface {
	SaveOrder(lines []cart.Line, total float64) (string, error)
}

// ProviderFactory builds a completion provider for a user-supplied API key
type ProviderFactory func(apiKey string) (llm.Provider, error)

const noKeyMessage = "Please provide your OpenAI API key to use the chat functionality."

// shortcut is one literal-keyword check evaluated before classification.
// The list is ordered: the first matching shortcut handles the message.
type shortcut struct {
	name   string
	match  func(lower string) bool
	handle func(ctx context.Context, sess *Session, message string) string
}

// Router orchestrates one conversation turn: keyword shortcuts, intent
// classification, and the per-intent branches. It is stateless across turns;
// all conversation state lives in the Session passed into HandleMessage.
type Router struct {
	catalog   *menu.Catalog
	extractor *Extractor
	provider  llm.Provider // process-wide default, nil when no env key
	factory   ProviderFactory
	orders    OrderSaver
	monitor   *monitoring.Monitor
	shortcuts []shortcut
}

// NewRouter creates a conversation router. provider may be nil when no
// process-wide API key is configured; factory builds providers for
// session-supplied keys; orders may be nil when checkout persistence is
// unavailable.
func NewRouter(catalog *menu.Catalog, provider llm.Provider, factory ProviderFactory, orders OrderSaver, monitor *monitoring.Monitor) *Router {
	r := &Router{
		catalog:   catalog,
		extractor: NewExtractor(catalog),
		provider:  provider,
		factory:   factory,
		orders:    orders,
		monitor:   monitor,
	}

	// Priority list: evaluated top to bottom, first match wins.
	r.shortcuts = []shortcut{
		{"menu", containsKeyword("menu"), r.handleMenu},
		{"recommendation", containsKeyword("recommend", "suggest", "popular", "what's good", "whats good"), r.handleRecommendation},
		{"ingredients", containsKeyword("ingredient", "allergen", "allergy", "allergies", "gluten", "nutrition"), r.handleIngredients},
		{"clear", containsKeyword("clear my order", "clear the order", "clear order", "start over"), r.handleClear},
		{"checkout", containsKeyword("checkout", "check out", "finalize"), r.handleCheckout},
	}
	return r
}

func containsKeyword(keywords ...string) func(string) bool {
	return func(lower string) bool {
		for _, k := range keywords {
			if strings.Contains(lower, k) {
				return true
			}
		}
		return false
	}
}

// HandleMessage processes one user utterance and always returns a non-empty
// reply; internal failures surface as apology strings, never as errors.
func (r *Router) HandleMessage(ctx context.Context, sess *Session, message string) (reply string) {
	start := time.Now()
	defer func() {
		if reply == "" {
			reply = llm.FailureNone.Apology()
		}
		r.monitor.ObserveTurn(time.Since(start))
	}()

	lower := strings.ToLower(message)
	for _, sc := range r.shortcuts {
		if sc.match(lower) {
			r.monitor.RecordShortcut(sc.name)
			return sc.handle(ctx, sess, message)
		}
	}

	provider, ok := r.providerFor(sess)
	if !ok {
		return noKeyMessage
	}

	intent := ClassifyIntent(ctx, provider, message)
	r.monitor.RecordIntent(string(intent))

	switch intent {
	case models.IntentCartInquiry:
		return sess.Cart.Summary()
	case models.IntentQuantityUpdate:
		return r.handleQuantityUpdate(ctx, provider, sess, message)
	case models.IntentOrderPlacement:
		return r.handleOrderPlacement(ctx, provider, sess, message)
	case models.IntentPriceInquiry:
		return r.handlePriceInquiry(ctx, provider, message)
	case models.IntentRemoveItem:
		return r.handleRemoveItem(ctx, provider, sess, message)
	default:
		return r.handleGeneralQuestion(ctx, provider, sess, message)
	}
}

// providerFor resolves the completion provider for a session: a provider
// built from the session's own key wins over the process-wide default.
func (r *Router) providerFor(sess *Session) (llm.Provider, bool) {
	if key := sess.APIKey(); key != "" && r.factory != nil {
		if sess.provider != nil {
			return sess.provider, true
		}
		p, err := r.factory(key)
		if err == nil {
			sess.provider = p
			return p, true
		}
		log.Printf("failed to build provider for session key: %v", err)
	}
	if r.provider != nil {
		return r.provider, true
	}
	return nil, false
}

// Shortcut handlers

func (r *Router) handleMenu(_ context.Context, _ *Session, _ string) string {
	return r.catalog.Formatted()
}

func (r *Router) handleRecommendation(_ context.Context, _ *Session, _ string) string {
	var b strings.Builder
	b.WriteString("Here are some guest favorites:  \n")
	seen := make(map[string]bool)
	for _, item := range r.catalog.AllItems() {
		if seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		fmt.Fprintf(&b, "- **%s** (%s) — $%.2f  \n", item.Name, item.Category, item.Price)
	}
	b.WriteString("  \nJust say the word and I'll add any of them to your order.")
	return b.String()
}

func (r *Router) handleIngredients(_ context.Context, _ *Session, _ string) string {
	return "For detailed ingredient and allergen information, please visit https://www.shakeshack.com/allergies-nutrition/. " +
		"I can tell you the calories for anything on our menu if you ask about the item by name."
}

func (r *Router) handleClear(_ context.Context, sess *Session, _ string) string {
	return sess.Cart.Clear()
}

func (r *Router) handleCheckout(_ context.Context, sess *Session, _ string) string {
	if sess.Cart.Empty() {
		return "Cannot finalize an empty order."
	}
	if r.orders == nil {
		return "Sorry, checkout isn't available right now. Your order is still in your cart."
	}

	orderID, err := r.orders.SaveOrder(sess.Cart.Lines(), sess.Cart.Total())
	if err != nil {
		// The cart stays intact when the order was not persisted.
		log.Printf("error saving order: %v", err)
		return "Sorry, there was a problem saving your order. Please try again."
	}

	sess.Cart.Clear()
	return fmt.Sprintf("Thank you for your order! Your order ID is: %s", orderID)
}

// Intent branch handlers

func (r *Router) handleQuantityUpdate(ctx context.Context, provider llm.Provider, sess *Session, message string) string {
	// Heuristic first: a cart item named in the message plus an embedded
	// quantity settles it without a completion round-trip.
	lower := strings.ToLower(message)
	if quantity, ok := FindQuantity(message); ok {
		for _, name := range sess.Cart.ItemNames() {
			if strings.Contains(lower, strings.ToLower(name)) {
				return sess.Cart.SetQuantity(name, quantity)
			}
		}
	}

	res := llm.Call(ctx, provider, llm.BudgetExtract, updateQuantityPrompt(strings.Join(sess.Cart.ItemNames(), ", ")), message)
	if !res.OK() {
		r.monitor.RecordLLMFailure(res.Kind.String())
		return res.Kind.Apology()
	}

	payload := llm.StripFences(res.Text)
	var parsed struct {
		IsUpdate bool    `json:"is_update"`
		ItemName *string `json:"item_name"`
		Quantity *int    `json:"quantity"`
	}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		log.Printf("error parsing quantity update JSON: %v", err)
		return llm.FailureParse.Apology()
	}

	if !parsed.IsUpdate || parsed.Quantity == nil {
		return "I'm not sure which item you want to change. Please specify the item name and the new quantity."
	}

	if parsed.ItemName != nil && *parsed.ItemName != "" {
		return sess.Cart.SetQuantity(*parsed.ItemName, *parsed.Quantity)
	}
	if lines := sess.Cart.Lines(); len(lines) == 1 {
		// Only one item in the order, so update that.
		return sess.Cart.SetQuantity(lines[0].Name, *parsed.Quantity)
	}
	return "I'm not sure which item you want to change. Please specify the item name."
}

func (r *Router) handleOrderPlacement(ctx context.Context, provider llm.Provider, sess *Session, message string) string {
	items, notFound := r.extractor.Extract(ctx, provider, message)
	if len(items) == 0 && len(notFound) == 0 {
		return "I couldn't identify the menu items you want to order. Could you please try again with the exact item name from our menu?"
	}

	var b strings.Builder
	if len(items) > 0 {
		for _, it := range items {
			sess.Cart.AddItem(it.Item, it.Quantity)
		}

		b.WriteString("**Order Added Successfully**\n\nI've added the following to your order:\n\n")
		for _, it := range items {
			fmt.Fprintf(&b, "• %dx %s — $%.2f\n", it.Quantity, it.Item.Name, it.Item.Price*float64(it.Quantity))
		}
		fmt.Fprintf(&b, "\n**Your current total is $%.2f**", sess.Cart.Total())
	}

	if len(notFound) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "I couldn't find %s on our menu.", quotedList(notFound))
	}
	return b.String()
}

func (r *Router) handlePriceInquiry(ctx context.Context, provider llm.Provider, message string) string {
	// Direct substring scan over menu names before any completion call.
	lower := strings.ToLower(message)
	for _, item := range r.catalog.AllItems() {
		if strings.Contains(lower, strings.ToLower(item.Name)) {
			return priceReply(item)
		}
	}

	res := llm.Call(ctx, provider, llm.BudgetExtract, priceItemPrompt, message)
	if !res.OK() {
		r.monitor.RecordLLMFailure(res.Kind.String())
		return res.Kind.Apology()
	}

	if item, _, ok := r.catalog.Resolve(res.Text); ok {
		return priceReply(item)
	}
	return "I'm not sure which item you're asking about. Could you please specify the name of the menu item?"
}

func (r *Router) handleRemoveItem(ctx context.Context, provider llm.Provider, sess *Session, message string) string {
	// A cart line named directly in the message wins without a completion call.
	lower := strings.ToLower(message)
	for _, name := range sess.Cart.ItemNames() {
		if strings.Contains(lower, strings.ToLower(name)) {
			return sess.Cart.RemoveItem(name)
		}
	}

	res := llm.Call(ctx, provider, llm.BudgetExtract, removeItemPrompt(strings.Join(sess.Cart.ItemNames(), ", ")), message)
	if !res.OK() {
		r.monitor.RecordLLMFailure(res.Kind.String())
		return res.Kind.Apology()
	}

	name := strings.Trim(res.Text, `"' `)
	if name == "" {
		return "I'm not sure which item you want to remove. Could you please specify the exact item name?"
	}
	return sess.Cart.RemoveItem(name)
}

func (r *Router) handleGeneralQuestion(ctx context.Context, provider llm.Provider, sess *Session, message string) string {
	system := generalQuestionPrompt(sess.Cart.OrderString(), sess.Cart.Total(), r.catalog.PromptInfo())
	res := llm.Call(ctx, provider, llm.BudgetAnswer, system, message)
	if !res.OK() {
		r.monitor.RecordLLMFailure(res.Kind.String())
		return res.Kind.Apology()
	}
	return res.Text
}

func priceReply(item models.MenuItem) string {
	return fmt.Sprintf("The %s costs $%.2f and contains %d calories.", item.Name, item.Price, item.Calories)
}

func quotedList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	if len(quoted) == 1 {
		return quoted[0]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}
