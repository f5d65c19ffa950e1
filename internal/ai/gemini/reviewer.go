package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"github.com/pitchspark/pitchspark/internal/ai"
	"github.com/pitchspark/pitchspark/internal/utils"
	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed critique.md
var critiqueTemplate string

//go:embed rewrite.md
var rewriteTemplate string

const defaultMaxLogLength = 200

// Reviewer asks Gemini for a free-text critique and rewrites of career
// text. It implements ai.Reviewer.
type Reviewer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

// NewReviewer wires a content generator into an ai.Reviewer.
func NewReviewer(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Reviewer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Reviewer{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// critiquePayload mirrors the JSON schema requested by critique.md.
type critiquePayload struct {
	Summary     string   `mapstructure:"summary"`
	ActionItems []string `mapstructure:"action_items"`
}

// Critique sends the text to Gemini and parses the structured response.
func (r *Reviewer) Critique(ctx context.Context, text string) (*ai.Critique, error) {
	raw, err := r.generate(ctx, critiqueTemplate, text, "critique")
	if err != nil {
		return nil, err
	}

	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse critique response: %w", err)
	}

	var payload critiquePayload
	if err := mapstructure.Decode(data, &payload); err != nil {
		return nil, fmt.Errorf("decode critique response: %w", err)
	}

	items := make([]string, 0, len(payload.ActionItems))
	for _, item := range payload.ActionItems {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return &ai.Critique{
		Summary:     strings.TrimSpace(payload.Summary),
		ActionItems: items,
		Raw:         raw,
	}, nil
}

// Rewrite returns Gemini's free-form rewrites of the text.
func (r *Reviewer) Rewrite(ctx context.Context, text string) (string, error) {
	return r.generate(ctx, rewriteTemplate, text, "rewrite")
}

func (r *Reviewer) generate(ctx context.Context, template, text, kind string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("text to %s must not be empty", kind)
	}

	prompt := strings.ReplaceAll(template, "{{TEXT}}", text)

	r.logger.Debug("gemini generate content request",
		zap.String("kind", kind),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, r.maxLogLen)),
	)

	raw, err := r.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}

	r.logger.Debug("gemini generate content response",
		zap.String("kind", kind),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, r.maxLogLen)),
	)

	return raw, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
