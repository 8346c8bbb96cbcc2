package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is the Gemini Generative Language API client.
type Client struct {
	apiKey         string
	apiURL         string
	model          string
	fallbackModels []string
	httpClient     *http.Client
}

// NewClient creates a new Gemini API client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     DefaultAPIURL,
		model:      DefaultModel,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetAPIURL overrides the API endpoint. Used in tests.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// SetModel overrides the primary model.
func (c *Client) SetModel(model string) {
	if model != "" {
		c.model = model
	}
}

// SetFallbackModels sets models tried in order when the primary model is
// unavailable on the configured API version.
func (c *Client) SetFallbackModels(models []string) {
	c.fallbackModels = models
}

// SetTimeout overrides the per-request HTTP timeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.httpClient.Timeout = d
	}
}

// GenerateContent sends a content generation request to the Gemini API
// using the given model.
func (c *Client) GenerateContent(ctx context.Context, model string, req GenerateRequest) (*GenerateResponse, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.apiURL, model, c.apiKey)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &apiError{status: resp.StatusCode, body: string(raw), model: model}
	}

	var result GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode gemini response: %w", err)
	}

	return &result, nil
}

// GenerateReply builds a single-prompt request from history and system
// instructions, walks the model fallback chain, and returns the trimmed
// reply text.
func (c *Client) GenerateReply(ctx context.Context, req ReplyRequest) (string, error) {
	genReq := c.buildRequest(req)

	models := append([]string{c.model}, c.fallbackModels...)
	var lastErr error
	for _, model := range models {
		resp, err := c.GenerateContent(ctx, model, genReq)
		if err != nil {
			// Only a missing model is worth retrying on another model.
			var apiErr *apiError
			if errors.As(err, &apiErr) && apiErr.status == http.StatusNotFound {
				lastErr = err
				continue
			}
			return "", err
		}

		text := extractText(resp)
		if text == "" {
			return "", fmt.Errorf("gemini returned empty response for model %s", model)
		}
		return text, nil
	}

	if lastErr != nil {
		return "", lastErr
	}
	return "", fmt.Errorf("no gemini models configured")
}

func (c *Client) buildRequest(req ReplyRequest) GenerateRequest {
	genReq := GenerateRequest{}

	if req.SystemPrompt != "" {
		genReq.SystemInstruction = &Content{
			Parts: []Part{{Text: req.SystemPrompt}},
		}
	}

	for _, msg := range req.History {
		role := "user"
		if msg.Role == "assistant" || msg.Role == "model" {
			role = "model"
		}
		genReq.Contents = append(genReq.Contents, Content{
			Role:  role,
			Parts: []Part{{Text: msg.Content}},
		})
	}

	genReq.Contents = append(genReq.Contents, Content{
		Role:  "user",
		Parts: []Part{{Text: req.Prompt}},
	})

	if req.Temperature > 0 || req.MaxTokens > 0 {
		genReq.GenerationConfig = &GenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	return genReq
}

func extractText(resp *GenerateResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return ""
	}
	return strings.TrimSpace(parts[0].Text)
}

// apiError is a non-2xx response from the Gemini API.
type apiError struct {
	status int
	body   string
	model  string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("gemini API error %d for model %s: %s", e.status, e.model, e.body)
}
