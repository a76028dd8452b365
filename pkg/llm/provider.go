package llm

import (
	"context"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the response
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate sends a single prompt to the model (convenience method)
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}

// Complete is the shape every pipeline call uses: a system instruction
// plus optional user content. It exists so callers do not hand-build the
// two-message history at every call site.
func Complete(ctx context.Context, p LLMProvider, systemPrompt, userContent string, options ...Option) (string, error) {
	history := []Message{{Role: "system", Content: systemPrompt}}
	if userContent != "" {
		history = append(history, Message{Role: "user", Content: userContent})
	}
	return p.Chat(ctx, history, options...)
}
