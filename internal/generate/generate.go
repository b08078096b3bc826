// Package generate runs prompt-to-scene generations off the render thread.
// A Session owns the state shared between the prompt goroutine and the
// frame loop (model choice, last prompt, finished results) behind a mutex,
// so command handlers and an in-flight generation never race.
package generate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dreamscene/internal/attach"
	"dreamscene/internal/describe"
	"dreamscene/internal/llm"
	"dreamscene/internal/logger"
	"dreamscene/internal/pipeline"
)

const defaultTimeout = 90 * time.Second

// Session turns prompt lines into pipeline results. Prompt blocks for the
// LLM round trip and is meant to run on its own goroutine; everything else
// is safe to call from the frame loop.
type Session struct {
	client  llm.Client
	factory attach.Factory
	log     *logger.Logger
	results chan pipeline.Result
	timeout time.Duration

	mu         sync.Mutex
	model      string
	lastPrompt string
}

// NewSession returns a Session. client may be nil; prompts then log a
// warning and produce nothing, while Offer (e.g. loading from a file)
// still works.
func NewSession(client llm.Client, factory attach.Factory, model string, log *logger.Logger) *Session {
	return &Session{
		client:  client,
		factory: factory,
		log:     log,
		results: make(chan pipeline.Result, 1),
		timeout: defaultTimeout,
		model:   model,
	}
}

// Results delivers finished generations. Capacity one: a newer result
// replaces nothing, it is discarded with a log line if the frame loop has
// not drained the previous one yet.
func (s *Session) Results() <-chan pipeline.Result {
	return s.results
}

// Model returns the current model choice.
func (s *Session) Model() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model
}

// SetModel changes the model used by subsequent prompts. An in-flight
// generation keeps the model it started with.
func (s *Session) SetModel(model string) {
	s.mu.Lock()
	s.model = model
	s.mu.Unlock()
}

// Prompt generates a scene for line and offers the result. It records the
// line for Again first, so a failed generation can still be retried.
func (s *Session) Prompt(line string) {
	s.mu.Lock()
	s.lastPrompt = line
	model := s.model
	s.mu.Unlock()

	if s.client == nil {
		s.log.Warnf("no LLM configured; set OPENAI_API_KEY or GROQ_API_KEY in .env")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	reply, err := llm.GenerateScene(ctx, s.client, model, line)
	if err != nil {
		s.log.Warnf("generation failed: %v", err)
		return
	}
	raw, err := describe.ExtractJSON(reply)
	if err != nil {
		s.log.Warnf("reply unusable: %v", err)
		return
	}
	desc, err := describe.Decode([]byte(raw))
	if err != nil {
		s.log.Warnf("reply rejected: %v", err)
		return
	}
	s.Offer(pipeline.Build(desc, s.factory, s.log))
}

// Again re-runs the last prompt on a fresh goroutine. Errors when no
// prompt has been submitted yet.
func (s *Session) Again() error {
	s.mu.Lock()
	last := s.lastPrompt
	s.mu.Unlock()
	if last == "" {
		return fmt.Errorf("nothing to regenerate yet")
	}
	go s.Prompt(last)
	return nil
}

// Offer hands a finished result to the frame loop without blocking.
func (s *Session) Offer(res pipeline.Result) {
	select {
	case s.results <- res:
	default:
		s.log.Debugf("generation discarded: a newer one is pending")
	}
}
