package intel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/warlord-os/warlord/internal/models"
)

// maxResponseSize limits the response body to prevent memory exhaustion.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

const defaultBaseURL = "https://generativelanguage.googleapis.com"

const systemInstruction = "You are a Grade 8 Exam Survival AI. Analyze the text provided by the user. " +
	"Return a JSON object formatted for a tactical study card. Keep it brutal, high-impact, and extremely concise. " +
	"Focus on high-weightage content. Use the specified JSON schema."

// responseSchema constrains the model to the card payload shape. All four
// fields are required; the list fields may be empty but must be present.
const responseSchema = `{
  "type": "OBJECT",
  "properties": {
    "title": {"type": "STRING", "description": "Highly tactical title for the chapter or topic."},
    "summary": {"type": "ARRAY", "items": {"type": "STRING"}, "description": "A list of bullet points covering core concepts."},
    "criticalFormulas": {"type": "ARRAY", "items": {"type": "STRING"}, "description": "Essential formulas or key definitions."},
    "traps": {"type": "ARRAY", "items": {"type": "STRING"}, "description": "Common mistakes students make."}
  },
  "required": ["title", "summary", "criticalFormulas", "traps"]
}`

// GeminiClient implements Generator against the Gemini generateContent API.
type GeminiClient struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
}

// Option configures a GeminiClient.
type Option func(*GeminiClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(g *GeminiClient) {
		g.httpClient = c
	}
}

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(url string) Option {
	return func(g *GeminiClient) {
		g.baseURL = strings.TrimRight(url, "/")
	}
}

// NewGeminiClient returns a client for the given model and API key.
func NewGeminiClient(apiKey, model string, opts ...Option) *GeminiClient {
	g := &GeminiClient{
		baseURL:    defaultBaseURL,
		model:      model,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string          `json:"responseMimeType"`
	ResponseSchema   json.RawMessage `json:"responseSchema"`
}

type geminiRequest struct {
	Contents          []geminiContent        `json:"contents"`
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate sends the raw notes to the model and parses the structured card
// payload out of the response.
func (g *GeminiClient) Generate(ctx context.Context, rawText string) (*models.CardPayload, error) {
	rawText = strings.TrimSpace(rawText)
	if rawText == "" {
		return nil, ErrEmptyInput
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: rawText}}},
		},
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: systemInstruction}}},
		GenerationConfig: geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   json.RawMessage(responseSchema),
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrRequestFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}

	var gr geminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: no candidates", ErrMalformedOutput)
	}

	text := strings.TrimSpace(gr.Candidates[0].Content.Parts[0].Text)
	var card models.CardPayload
	if err := json.Unmarshal([]byte(text), &card); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if err := validatePayload(&card); err != nil {
		return nil, err
	}
	return &card, nil
}

// validatePayload enforces the payload contract: a non-empty title and all
// three list fields present.
func validatePayload(p *models.CardPayload) error {
	if p.Title == "" {
		return fmt.Errorf("%w: missing title", ErrMalformedOutput)
	}
	if p.Summary == nil || p.CriticalFormulas == nil || p.Traps == nil {
		return fmt.Errorf("%w: missing list field", ErrMalformedOutput)
	}
	return nil
}
