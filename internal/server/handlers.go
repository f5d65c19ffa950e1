package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/pitchspark/pitchspark/internal/ai"
	"github.com/pitchspark/pitchspark/internal/extract"
	"github.com/pitchspark/pitchspark/internal/review"
	"go.uber.org/zap"
)

type handlers struct {
	reviewer     ai.Reviewer
	logger       *zap.Logger
	maxBodyBytes int64
	version      string
}

type analyzeRequest struct {
	Text string `json:"text"`
}

type analyzeResponse struct {
	Score       int           `json:"score"`
	Suggestions []string      `json:"suggestions"`
	Critique    *critiqueJSON `json:"critique,omitempty"`
}

type critiqueJSON struct {
	Summary     string   `json:"summary"`
	ActionItems []string `json:"action_items"`
}

func (h *handlers) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}

	var req analyzeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	h.respond(w, r, req.Text)
}

func (h *handlers) handleAnalyzePDF(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	file, _, err := r.FormFile("resume")
	if err != nil {
		writeError(w, http.StatusBadRequest, "multipart field 'resume' is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading upload failed")
		return
	}

	text, err := extract.PDF(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		h.logger.Warn("pdf extraction failed", zap.Error(err))
		writeError(w, http.StatusBadRequest, "could not extract text from pdf")
		return
	}

	h.respond(w, r, text)
}

func (h *handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": h.version,
	})
}

// respond runs the core over text and attaches an AI critique when the
// client asked for one and a reviewer is configured. A score is always
// produced, even for empty text.
func (h *handlers) respond(w http.ResponseWriter, r *http.Request, text string) {
	report := review.Analyze(text)

	resp := &analyzeResponse{
		Score:       report.Score,
		Suggestions: report.Suggestions,
	}

	if wantsCritique(r) {
		if h.reviewer == nil {
			writeError(w, http.StatusBadRequest, "ai critique is not configured on this server")
			return
		}

		critique, err := h.reviewer.Critique(r.Context(), text)
		if err != nil {
			h.logger.Warn("ai critique failed", zap.Error(err))
			writeError(w, http.StatusBadGateway, "ai critique failed")
			return
		}

		resp.Critique = &critiqueJSON{
			Summary:     critique.Summary,
			ActionItems: critique.ActionItems,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "reading request body failed")
		return nil, false
	}
	return body, true
}

func wantsCritique(r *http.Request) bool {
	switch strings.ToLower(r.URL.Query().Get("critique")) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
