package llm

import "context"

// represents different LLM providers
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderGPT    Provider = "gpt"
	ProviderGrok   Provider = "grok"
)

// is one turn of chat context sent upstream
type Message struct {
	Role string // "user" or "ai"
	Text string
}

// carries everything a provider needs for a single streamed completion
type ChatRequest struct {
	ModelName string
	System    string // persona instructions
	Messages  []Message
}

// Streamer produces a completion as a sequence of text chunks. onChunk
// is called once per chunk in arrival order; returning an error from it
// aborts the stream. The stream ends when Stream returns: nil for a
// clean upstream finish, an error otherwise.
type Streamer interface {
	Stream(ctx context.Context, req ChatRequest, onChunk func(text string) error) error
}
