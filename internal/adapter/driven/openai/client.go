// Package openai implements the ModelClient port against the OpenAI
// chat completions API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ericfisherdev/prreview/internal/domain/model"
	"github.com/ericfisherdev/prreview/internal/domain/port/driven"
)

const defaultBaseURL = "https://api.openai.com/v1/chat/completions"

// Compile-time interface satisfaction check.
var _ driven.ModelClient = (*Client)(nil)

// jsonModeModels lists model identifiers known to honor strict structured
// output. Selection is by exact identifier match, not capability probing.
var jsonModeModels = map[string]bool{
	"gpt-4o":             true,
	"gpt-4o-mini":        true,
	"gpt-4-turbo":        true,
	"gpt-4-1106-preview": true,
}

// Options is the sampling and transport configuration for the client.
type Options struct {
	Model            string
	Temperature      float64
	MaxTokens        int
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
	BaseURL          string // Defaults to the public chat completions endpoint.
}

// Client calls the OpenAI chat completions API and decodes the strict
// review payload the prompt demands.
type Client struct {
	apiKey string
	opts   Options
	client *http.Client
}

// NewClient creates a new OpenAI client. The HTTP client owns the timeout
// policy; a timed-out call surfaces as an error, which the pipeline treats
// as zero suggestions for the unit.
func NewClient(apiKey string, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	return &Client{
		apiKey: apiKey,
		opts:   opts,
		client: &http.Client{Timeout: 2 * time.Minute},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model            string          `json:"model"`
	Messages         []chatMessage   `json:"messages"`
	Temperature      float64         `json:"temperature"`
	MaxTokens        int             `json:"max_tokens"`
	TopP             float64         `json:"top_p"`
	FrequencyPenalty float64         `json:"frequency_penalty"`
	PresencePenalty  float64         `json:"presence_penalty"`
	ResponseFormat   *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// reviewPayload is the schema the prompt instructs the model to emit.
type reviewPayload struct {
	Reviews []reviewEntry `json:"reviews"`
}

type reviewEntry struct {
	LineNumber    flexString `json:"lineNumber"`
	ReviewComment string     `json:"reviewComment"`
}

// flexString accepts a JSON string or number and keeps its textual form.
// The line field stays untrusted text until reconciliation coerces it.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = flexString(n.String())
		return nil
	}
	*f = flexString(strings.TrimSpace(string(b)))
	return nil
}

// Review sends the prompt and returns the decoded suggestions. Any
// transport, HTTP, or payload failure is returned as an error; the caller
// maps that to "zero suggestions for this unit".
func (c *Client) Review(ctx context.Context, prompt string) ([]model.Suggestion, error) {
	body := chatRequest{
		Model:            c.opts.Model,
		Messages:         []chatMessage{{Role: "system", Content: prompt}},
		Temperature:      c.opts.Temperature,
		MaxTokens:        c.opts.MaxTokens,
		TopP:             c.opts.TopP,
		FrequencyPenalty: c.opts.FrequencyPenalty,
		PresencePenalty:  c.opts.PresencePenalty,
	}
	if jsonModeModels[c.opts.Model] {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	var content string
	err = retryWithBackoff(ctx, 3, func() error {
		var callErr error
		content, callErr = c.complete(ctx, payload)
		return callErr
	})
	if err != nil {
		return nil, err
	}

	return decodeSuggestions(content)
}

// complete performs one chat completions call and returns the first
// choice's message content.
func (c *Client) complete(ctx context.Context, payload []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", &rateLimitError{}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", &authError{message: string(respBody)}
	case resp.StatusCode >= 500:
		return "", &serverError{statusCode: resp.StatusCode, body: string(respBody)}
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return result.Choices[0].Message.Content, nil
}

// decodeSuggestions parses the model's answer into suggestions. A null or
// empty payload decodes to zero suggestions, never an error; only
// structurally invalid JSON fails.
func decodeSuggestions(content string) ([]model.Suggestion, error) {
	content = stripFences(content)
	if content == "" {
		return nil, nil
	}

	var payload reviewPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("parsing review payload: %w", err)
	}

	suggestions := make([]model.Suggestion, 0, len(payload.Reviews))
	for _, entry := range payload.Reviews {
		suggestions = append(suggestions, model.Suggestion{
			Line: string(entry.LineNumber),
			Body: entry.ReviewComment,
		})
	}
	return suggestions, nil
}

// stripFences removes a surrounding ```json code fence, which some models
// emit even when asked for bare JSON.
func stripFences(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimSuffix(content, "```")
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		content = content[i+1:]
	} else {
		content = ""
	}
	return strings.TrimSpace(content)
}
