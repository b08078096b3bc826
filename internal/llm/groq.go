package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const groqBaseURL = "https://api.groq.com/openai/v1/chat/completions"

// Groq implements Client using Groq's OpenAI-compatible Chat Completions
// API. Useful as a fast fallback when no OpenAI key is configured.
type Groq struct {
	apiKey string
	client *http.Client
}

// NewGroq returns a Client that uses the Groq API with the given API key.
func NewGroq(apiKey string) *Groq {
	return &Groq{
		apiKey: apiKey,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Complete sends system and user messages to the Groq API and returns the
// assistant reply.
func (c *Groq) Complete(ctx context.Context, model, systemPrompt, userMessage string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("groq: API key not set")
	}
	return completeChat(ctx, c.client, groqBaseURL, c.apiKey, "groq", chatRequest{
		Model: model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
}
