package llm

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/ai/azopenai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChatMessages(t *testing.T) {
	messages := []Message{
		{Role: "system", Content: "you are a helpful assistant"},
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "hi there"},
	}

	chatMessages, err := buildChatMessages(messages)
	require.NoError(t, err)
	require.Len(t, chatMessages, 3)

	system, ok := chatMessages[0].(*azopenai.ChatRequestSystemMessage)
	require.True(t, ok)
	assert.NotNil(t, system.Content)

	user, ok := chatMessages[1].(*azopenai.ChatRequestUserMessage)
	require.True(t, ok)
	assert.NotNil(t, user.Content)

	assistant, ok := chatMessages[2].(*azopenai.ChatRequestAssistantMessage)
	require.True(t, ok)
	assert.NotNil(t, assistant.Content)
}

func TestBuildChatMessagesRejectsUnknownRole(t *testing.T) {
	_, err := buildChatMessages([]Message{{Role: "tool", Content: "output"}})
	assert.Error(t, err)
}

func TestNewAzureOpenAIProviderRequiresConfig(t *testing.T) {
	t.Setenv("AZURE_OPENAI_ENDPOINT", "")
	t.Setenv("AZURE_OPENAI_API_KEY", "")
	t.Setenv("AZURE_OPENAI_DEPLOYMENT_NAME", "")

	_, err := NewAzureOpenAIProvider()
	assert.Error(t, err)
}
