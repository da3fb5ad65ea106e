package llm

import (
	"fmt"
	"net/http"
	"time"
)

// shared HTTP client for all provider calls. No overall timeout:
// streamed completions can legitimately run for minutes, so only the
// connection phases are bounded.
var providerHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
	},
}

// creates a streamer for the persona's provider with the resolved API
// key (personal or system-wide)
func NewStreamer(provider Provider, apiKey string) (Streamer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("no API key for provider %s", provider)
	}

	switch provider {
	case ProviderGemini:
		return NewGeminiStreamer(apiKey), nil
	case ProviderGPT:
		return NewOpenAIStreamer(apiKey), nil
	case ProviderGrok:
		return NewGrokStreamer(apiKey), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
