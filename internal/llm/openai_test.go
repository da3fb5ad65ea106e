package llm

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardSSEChunks_ParsesDataLines(t *testing.T) {
	body := strings.NewReader("data: one\n\ndata: two\n\ndata: [DONE]\n\n")

	var seen []string
	err := forwardSSEChunks(body, func(data string) (bool, error) {
		if data == "[DONE]" {
			return true, nil
		}
		seen = append(seen, data)
		return false, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, seen)
}

func TestForwardSSEChunks_IgnoresCommentsAndBlankLines(t *testing.T) {
	body := strings.NewReader(": keepalive\n\nevent: message\ndata: payload\n\ndata:\n\n")

	var seen []string
	err := forwardSSEChunks(body, func(data string) (bool, error) {
		seen = append(seen, data)
		return false, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"payload"}, seen)
}

func TestForwardSSEChunks_StopsOnHandlerError(t *testing.T) {
	body := strings.NewReader("data: first\n\ndata: second\n\n")

	calls := 0
	err := forwardSSEChunks(body, func(data string) (bool, error) {
		calls++
		return false, fmt.Errorf("boom")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls, "handler error should stop the stream")
}

func TestForwardSSEChunks_StopsWhenDone(t *testing.T) {
	body := strings.NewReader("data: first\n\ndata: last\n\ndata: never\n\n")

	var seen []string
	err := forwardSSEChunks(body, func(data string) (bool, error) {
		seen = append(seen, data)
		return data == "last", nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "last"}, seen)
}

func TestNewStreamer_ByProvider(t *testing.T) {
	for _, provider := range []Provider{ProviderGemini, ProviderGPT, ProviderGrok} {
		streamer, err := NewStreamer(provider, "key")
		require.NoError(t, err, "provider %s", provider)
		assert.NotNil(t, streamer)
	}
}

func TestNewStreamer_RejectsMissingKey(t *testing.T) {
	_, err := NewStreamer(ProviderGemini, "")

	assert.Error(t, err)
}

func TestNewStreamer_RejectsUnknownProvider(t *testing.T) {
	_, err := NewStreamer(Provider("llama"), "key")

	assert.Error(t, err)
}
