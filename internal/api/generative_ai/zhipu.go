package generativeAI

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultZhipuBaseURL = "https://open.bigmodel.cn/api/paas/v4"
	defaultZhipuModel   = "glm-4"
)

// ZhipuClient talks to the Zhipu GLM chat-completions API, which is
// OpenAI-compatible, through the go-openai client with a base URL override.
type ZhipuClient struct {
	client *openai.Client
	model  string
	apiKey string
}

func NewZhipuClient(cfg Config) *ZhipuClient {
	apiKey := os.Getenv("ZHIPU_API_KEY")

	baseURL := cfg.BaseURL
	if env := os.Getenv("ZHIPU_API_URL"); env != "" {
		baseURL = env
	}
	if baseURL == "" {
		baseURL = defaultZhipuBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = defaultZhipuModel
	}

	clientCfg := openai.DefaultConfig(apiKey)
	clientCfg.BaseURL = baseURL

	return &ZhipuClient{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
		apiKey: apiKey,
	}
}

func (z *ZhipuClient) Configured() bool {
	return z.apiKey != ""
}

func (z *ZhipuClient) GenerateCompletion(ctx context.Context, system, user string) (string, error) {
	resp, err := z.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: z.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.7,
		MaxTokens:   4096,
	})
	if err != nil {
		return "", fmt.Errorf("zhipu chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("zhipu returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
