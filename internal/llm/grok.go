package llm

import (
	"golang.org/x/time/rate"
)

const (
	grokChatCompletionsURL = "https://api.x.ai/v1/chat/completions"
	defaultGrokModel       = "grok-2-latest"
)

// rate limiter for Grok API calls (10 requests/second with burst capacity of 5)
var grokRateLimiter = rate.NewLimiter(10, 5)

// Grok exposes an OpenAI-compatible chat completions endpoint, so the
// streamer is the OpenAI one pointed at x.ai
func NewGrokStreamer(apiKey string) *OpenAIStreamer {
	return &OpenAIStreamer{
		apiKey:       apiKey,
		baseURL:      grokChatCompletionsURL,
		defaultModel: defaultGrokModel,
		httpClient:   providerHTTPClient,
		limiter:      grokRateLimiter,
	}
}
