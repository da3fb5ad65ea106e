package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/time/rate"
)

const (
	openAIChatCompletionsURL = "https://api.openai.com/v1/chat/completions"
	defaultGPTModel          = "gpt-4o-mini"
)

// rate limiter for OpenAI-compatible API calls (20 requests/second with burst capacity of 5)
var openAIRateLimiter = rate.NewLimiter(20, 5)

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
		FinishReason *string `json:"finish_reason"`
	} `json:"choices"`
}

// streams chat completions from any OpenAI-compatible endpoint; Grok
// reuses it with a different base URL
type OpenAIStreamer struct {
	apiKey       string
	baseURL      string
	defaultModel string
	httpClient   *http.Client
	limiter      *rate.Limiter
}

func NewOpenAIStreamer(apiKey string) *OpenAIStreamer {
	return &OpenAIStreamer{
		apiKey:       apiKey,
		baseURL:      openAIChatCompletionsURL,
		defaultModel: defaultGPTModel,
		httpClient:   providerHTTPClient,
		limiter:      openAIRateLimiter,
	}
}

func (s *OpenAIStreamer) Stream(ctx context.Context, req ChatRequest, onChunk func(text string) error) error {
	model := req.ModelName
	if model == "" {
		model = s.defaultModel
	}

	messages := make([]chatMessage, 0, len(req.Messages)+1)

	if req.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}

	for _, m := range req.Messages {
		role := "user"
		if m.Role == "ai" {
			role = "assistant"
		}

		messages = append(messages, chatMessage{Role: role, Content: m.Text})
	}

	reqBody := chatCompletionRequest{
		Model:    model,
		Messages: messages,
		Stream:   true,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", s.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)

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
		if data == "[DONE]" {
			return true, nil
		}

		var chunk chatCompletionChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			return false, fmt.Errorf("failed to decode stream chunk: %w", err)
		}

		if len(chunk.Choices) == 0 {
			return false, nil
		}

		if text := chunk.Choices[0].Delta.Content; text != "" {
			if err := onChunk(text); err != nil {
				return false, err
			}
		}

		return chunk.Choices[0].FinishReason != nil, nil
	})
}

// reads an SSE body line by line and hands each data payload to
// handle; handle returns done=true to stop cleanly
func forwardSSEChunks(body io.Reader, handle func(data string) (bool, error)) error {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if !strings.HasPrefix(line, "data:") {
			continue
		}

		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "" {
			continue
		}

		done, err := handle(data)
		if err != nil {
			return err
		}

		if done {
			return nil
		}
	}

	return scanner.Err()
}
