package gemini

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type fakeModels struct {
	responses []fakeModelResponse
	calls     int
	prompts   []string
}

type fakeModelResponse struct {
	resp *genai.GenerateContentResponse
	err  error
}

func (f *fakeModels) GenerateContent(_ context.Context, _ string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	for _, content := range contents {
		for _, part := range content.Parts {
			f.prompts = append(f.prompts, part.Text)
		}
	}

	if f.calls >= len(f.responses) {
		return nil, errors.New("unexpected call")
	}
	res := f.responses[f.calls]
	f.calls++
	return res.resp, res.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{Text: text}},
			},
		}},
	}
}

func newTestGenerator(models *fakeModels, maxRetries int) *Generator {
	return &Generator{
		models:     models,
		modelName:  "test-model",
		maxRetries: maxRetries,
		retryDelay: 0,
		logger:     zap.NewNop(),
	}
}

func TestGeneratorReturnsFirstTextualResponse(t *testing.T) {
	models := &fakeModels{responses: []fakeModelResponse{
		{resp: textResponse("hello from gemini")},
	}}
	generator := newTestGenerator(models, 3)

	got, err := generator.GenerateContent(context.Background(), "say hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello from gemini" {
		t.Fatalf("unexpected output: %q", got)
	}
	if models.calls != 1 {
		t.Fatalf("expected 1 call, got %d", models.calls)
	}
}

func TestGeneratorRetriesOnFailure(t *testing.T) {
	models := &fakeModels{responses: []fakeModelResponse{
		{err: errors.New("temporary outage")},
		{resp: textResponse("recovered")},
	}}
	generator := newTestGenerator(models, 3)

	got, err := generator.GenerateContent(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "recovered" {
		t.Fatalf("unexpected output: %q", got)
	}
	if models.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", models.calls)
	}
}

func TestGeneratorGivesUpAfterMaxRetries(t *testing.T) {
	models := &fakeModels{responses: []fakeModelResponse{
		{err: errors.New("down")},
		{err: errors.New("down")},
	}}
	generator := newTestGenerator(models, 2)

	if _, err := generator.GenerateContent(context.Background(), "prompt"); err == nil {
		t.Fatalf("expected error after exhausting retries")
	}
	if models.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", models.calls)
	}
}

func TestGeneratorEmptyResponseIsError(t *testing.T) {
	models := &fakeModels{responses: []fakeModelResponse{
		{resp: &genai.GenerateContentResponse{}},
		{resp: &genai.GenerateContentResponse{}},
	}}
	generator := newTestGenerator(models, 2)

	if _, err := generator.GenerateContent(context.Background(), "prompt"); err == nil {
		t.Fatalf("expected error for empty response")
	}
}

func TestGeneratorRejectsEmptyPrompt(t *testing.T) {
	generator := newTestGenerator(&fakeModels{}, 1)

	if _, err := generator.GenerateContent(context.Background(), "   "); err == nil {
		t.Fatalf("expected error for empty prompt")
	}
}

func TestNewGeneratorRequiresAPIKey(t *testing.T) {
	if _, err := NewGenerator(context.Background(), "  ", "", 0, zap.NewNop()); err == nil {
		t.Fatalf("expected error for missing api key")
	}
}
