package generativeAI

import (
	"context"
	"log/slog"
	"os"
)

// AIClient is the single upstream text-generation capability the orchestrator
// depends on. Failures here are fatal for the request; there is no fallback
// model.
type AIClient interface {
	// GenerateCompletion sends the system and user prompts and returns the
	// raw model text, unparsed.
	GenerateCompletion(ctx context.Context, system, user string) (string, error)
	// Configured reports whether credentials for the backend are present.
	Configured() bool
}

// Config selects the backend and model. Credentials always come from the
// environment, never from config files.
type Config struct {
	Provider string // "zhipu" (default) or "gemini"
	Model    string
	BaseURL  string // chat-completions endpoint override for zhipu
}

// NewAIClient picks the backend from config, preferring the OpenAI-compatible
// Zhipu endpoint. An unconfigured client is still returned so the server can
// start and report its state via the health endpoint.
func NewAIClient(ctx context.Context, cfg Config, logger *slog.Logger) (AIClient, error) {
	if cfg.Provider == "gemini" && os.Getenv("GOOGLE_GEMINI_API_KEY") != "" {
		return NewGeminiClient(ctx, cfg.Model)
	}

	client := NewZhipuClient(cfg)
	if !client.Configured() {
		logger.Warn("ZHIPU_API_KEY is not set; trip generation will fail until it is provided")
	}
	return client, nil
}
