package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"
)

const (
	geminiBaseURL      = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultGeminiModel = "gemini-2.0-flash"
)

// rate limiter for Gemini API calls (20 requests/second with burst capacity of 5)
var geminiRateLimiter = rate.NewLimiter(20, 5)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiChunk struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
}

// streams generateContent responses from the Gemini API
type GeminiStreamer struct {
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewGeminiStreamer(apiKey string) *GeminiStreamer {
	return &GeminiStreamer{
		apiKey:     apiKey,
		httpClient: providerHTTPClient,
		limiter:    geminiRateLimiter,
	}
}

func (s *GeminiStreamer) Stream(ctx context.Context, req ChatRequest, onChunk func(text string) error) error {
	model := req.ModelName
	if model == "" {
		model = defaultGeminiModel
	}

	contents := make([]geminiContent, 0, len(req.Messages))

	for _, m := range req.Messages {
		role := "user"
		if m.Role == "ai" {
			role = "model"
		}

		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: m.Text}},
		})
	}

	reqBody := geminiRequest{Contents: contents}

	if req.System != "" {
		reqBody.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.System}}}
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s:streamGenerateContent?alt=sse&key=%s",
		geminiBaseURL, url.PathEscape(model), url.QueryEscape(s.apiKey))

	httpReq, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	// rate limiting
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck
		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return forwardSSEChunks(resp.Body, func(data string) (bool, error) {
		var chunk geminiChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			return false, fmt.Errorf("failed to decode stream chunk: %w", err)
		}

		if len(chunk.Candidates) == 0 {
			return false, nil
		}

		candidate := chunk.Candidates[0]

		for _, part := range candidate.Content.Parts {
			if part.Text == "" {
				continue
			}

			if err := onChunk(part.Text); err != nil {
				return false, err
			}
		}

		return candidate.FinishReason != "", nil
	})
}
