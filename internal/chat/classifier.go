package chat

import (
	"context"
	"log"

	"shackchat/internal/llm"
	"shackchat/internal/models"
)

// ClassifyIntent maps a user utterance to one of the known intents using the
// completion provider. Any provider failure degrades to general_question so
// the conversation keeps going; classification never returns an error.
func ClassifyIntent(ctx context.Context, provider llm.Provider, utterance string) models.Intent {
	res := llm.Call(ctx, provider, llm.BudgetClassify, classifyIntentPrompt, utterance)
	if !res.OK() {
		log.Printf("intent classification failed (%s): %v", res.Kind, res.Err)
		return models.IntentGeneralQuestion
	}
	return models.ParseIntent(res.Text)
}
