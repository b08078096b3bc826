package llm

import "context"

// Fallback tries Primary first; on any error it tries Secondary. Used so a
// missing or exhausted OpenAI key degrades to Groq instead of failing the
// generation outright.
type Fallback struct {
	Primary   Client
	Secondary Client
}

// Complete calls Primary.Complete; on any error, calls Secondary.Complete.
func (f *Fallback) Complete(ctx context.Context, model, systemPrompt, userMessage string) (string, error) {
	s, err := f.Primary.Complete(ctx, model, systemPrompt, userMessage)
	if err != nil && f.Secondary != nil {
		return f.Secondary.Complete(ctx, model, systemPrompt, userMessage)
	}
	return s, err
}
