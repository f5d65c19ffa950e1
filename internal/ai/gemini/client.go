package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pitchspark/pitchspark/internal/utils"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	defaultModel      = "gemini-2.5-flash"
	defaultMaxRetries = 3
	retryBaseDelay    = 2 * time.Second
)

// modelCaller is the slice of the genai SDK the generator needs.
type modelCaller interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Generator wraps the Google GenAI client to provide simple prompt-based interactions.
type Generator struct {
	models     modelCaller
	modelName  string
	maxRetries int
	retryDelay time.Duration
	logger     *zap.Logger
}

// NewGenerator creates a new Generator configured for the Gemini API backend.
func NewGenerator(ctx context.Context, apiKey, model string, maxRetries int, logger *zap.Logger) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{
		models:     client.Models,
		modelName:  model,
		maxRetries: maxRetries,
		retryDelay: retryBaseDelay,
		logger:     logger,
	}, nil
}

// GenerateContent sends the prompt to Gemini and returns the first
// textual response, retrying transient failures with linear backoff.
func (g *Generator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.models == nil {
		return "", errors.New("gemini generator is not initialized")
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	var lastErr error
	for attempt := 1; attempt <= g.maxRetries; attempt++ {
		output, err := g.generate(ctx, prompt)
		if err == nil {
			return output, nil
		}

		lastErr = err
		g.logger.Debug("gemini request failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", g.maxRetries),
			zap.Error(err),
		)

		if attempt == g.maxRetries {
			break
		}

		if err := utils.WaitFor(ctx, time.Duration(attempt)*g.retryDelay); err != nil {
			return "", err
		}
	}

	return "", fmt.Errorf("generate content after %d attempts: %w", g.maxRetries, lastErr)
}

func (g *Generator) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}

	return output, nil
}

func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.modelName
}
