// Package llm talks to chat-completion providers to turn a natural-language
// request into a raw scene description. Replies are treated as untrusted
// text; nothing here validates scene content.
package llm

import "context"

// Client sends a prompt to an LLM and returns the reply text.
// Model is provider-specific (e.g. "gpt-4o-mini", "llama-3.3-70b-versatile").
type Client interface {
	Complete(ctx context.Context, model, systemPrompt, userMessage string) (string, error)
}
