package llm

import (
	"context"
	"log"
	"os"
	"path/filepath"
)

// trafficProvider wraps a provider and writes every round trip to a
// plain file logger, separate from the structured application log so
// raw prompts and completions can be tailed during prompt tuning.
type trafficProvider struct {
	inner  LLMProvider
	logger *log.Logger
}

// NewTrafficProvider decorates inner so all Chat and Generate calls are
// logged through logger.
func NewTrafficProvider(inner LLMProvider, logger *log.Logger) LLMProvider {
	return &trafficProvider{inner: inner, logger: logger}
}

// InitTrafficLogger opens the LLM traffic log file. Falls back to
// stdout when the file cannot be opened so traffic is never silently
// dropped.
func InitTrafficLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "llm_traffic.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[LLM] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}

func (p *trafficProvider) Chat(ctx context.Context, history []Message, options ...Option) (string, error) {
	for _, m := range history {
		p.logger.Printf("[REQUEST] role=%s chars=%d\n%s", m.Role, len(m.Content), m.Content)
	}

	reply, err := p.inner.Chat(ctx, history, options...)
	if err != nil {
		p.logger.Printf("[ERROR] chat failed: %v", err)
		return "", err
	}
	p.logger.Printf("[RESPONSE] chars=%d\n%s", len(reply), reply)
	return reply, nil
}

func (p *trafficProvider) Generate(ctx context.Context, prompt string, options ...Option) (string, error) {
	p.logger.Printf("[REQUEST] role=user chars=%d\n%s", len(prompt), prompt)

	reply, err := p.inner.Generate(ctx, prompt, options...)
	if err != nil {
		p.logger.Printf("[ERROR] generate failed: %v", err)
		return "", err
	}
	p.logger.Printf("[RESPONSE] chars=%d\n%s", len(reply), reply)
	return reply, nil
}
