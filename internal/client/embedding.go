// 외부 임베딩 API 클라이언트 정의
//
// 프로바이더 선택 (EMBEDDING_PROVIDER):
//   - openai (default): text-embedding-3-small
//   - gemini: text-embedding-004

package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"
	"github.com/soc-nexus/backend/internal/config"
	"google.golang.org/genai"
)

const (
	defaultOpenAIModel = "text-embedding-3-small"
	defaultGeminiModel = "text-embedding-004"
)

// EmbeddingClient turns text into a fixed-length vector.
type EmbeddingClient interface {
	// EmbedText returns the vector and the model that produced it.
	EmbedText(ctx context.Context, text string) ([]float32, string, error)

	// CheckHealth probes the provider without touching the index.
	CheckHealth(ctx context.Context) error

	// Name labels the provider in error bodies ("OpenAI", "Gemini").
	Name() string
}

// NewEmbeddingClient builds the configured provider.
func NewEmbeddingClient(cfg config.EmbeddingConfig) (EmbeddingClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing EMBEDDING_API_KEY")
	}
	switch cfg.Provider {
	case "", "openai":
		return newOpenAIEmbedder(cfg), nil
	case "gemini":
		return newGeminiEmbedder(cfg)
	default:
		return nil, fmt.Errorf("unknown embedding provider: %s", cfg.Provider)
	}
}

type openAIEmbedder struct {
	client *openai.Client
	model  string
}

// httpClientFor bounds every provider round trip with the configured timeout.
func httpClientFor(cfg config.EmbeddingConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

func newOpenAIEmbedder(cfg config.EmbeddingConfig) *openAIEmbedder {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.HTTPClient = httpClientFor(cfg)

	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	return &openAIEmbedder{client: openai.NewClientWithConfig(clientCfg), model: model}
}

func (c *openAIEmbedder) EmbedText(ctx context.Context, text string) ([]float32, string, error) {
	res, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(c.model),
	})
	if err != nil {
		return nil, c.model, err
	}
	if len(res.Data) == 0 {
		return nil, c.model, fmt.Errorf("empty embedding result")
	}
	return res.Data[0].Embedding, c.model, nil
}

func (c *openAIEmbedder) CheckHealth(ctx context.Context) error {
	_, err := c.client.ListModels(ctx)
	return err
}

func (c *openAIEmbedder) Name() string { return "OpenAI" }

type geminiEmbedder struct {
	client *genai.Client
	model  string
}

func newGeminiEmbedder(cfg config.EmbeddingConfig) (*geminiEmbedder, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		HTTPClient: httpClientFor(cfg),
	})
	if err != nil {
		return nil, err
	}

	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}
	return &geminiEmbedder{client: client, model: model}, nil
}

func (c *geminiEmbedder) EmbedText(ctx context.Context, text string) ([]float32, string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}
	res, err := c.client.Models.EmbedContent(ctx, c.model, contents, nil)
	if err != nil {
		return nil, c.model, err
	}
	if res == nil || len(res.Embeddings) == 0 || res.Embeddings[0] == nil {
		return nil, c.model, fmt.Errorf("empty embedding result")
	}
	return res.Embeddings[0].Values, c.model, nil
}

func (c *geminiEmbedder) CheckHealth(ctx context.Context) error {
	_, _, err := c.EmbedText(ctx, "healthcheck")
	return err
}

func (c *geminiEmbedder) Name() string { return "Gemini" }
