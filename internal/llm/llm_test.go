package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/storenamer/internal/config"
)

const reply = "Luna Boutique\nStarlight Goods\n"

func TestNewRequiresAPIKey(t *testing.T) {
	for _, provider := range []string{config.ProviderGemini, config.ProviderOpenAI, config.ProviderAnthropic, ""} {
		_, err := New(config.Profile{Provider: provider})
		assert.ErrorIs(t, err, ErrNotConfigured, "provider %q", provider)
	}
}

func TestNewSelectsBackend(t *testing.T) {
	tests := []struct {
		profile config.Profile
		want    any
	}{
		{config.Profile{Provider: config.ProviderGemini, APIKey: "k"}, &GeminiGenerator{}},
		{config.Profile{Provider: config.ProviderOpenAI, APIKey: "k"}, &OpenAIGenerator{}},
		{config.Profile{Provider: config.ProviderAnthropic, APIKey: "k"}, &AnthropicGenerator{}},
		{config.Profile{Provider: config.ProviderOllama}, &OllamaGenerator{}},
	}

	for _, tt := range tests {
		t.Run(tt.profile.Provider, func(t *testing.T) {
			gen, err := New(tt.profile)
			require.NoError(t, err)
			assert.IsType(t, tt.want, gen)
		})
	}
}

func TestNewUnknownProvider(t *testing.T) {
	_, err := New(config.Profile{Provider: "mystery", APIKey: "k"})
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestGeneratorFunc(t *testing.T) {
	var gotModel, gotPrompt string
	gen := GeneratorFunc(func(_ context.Context, model, instruction string) (string, error) {
		gotModel, gotPrompt = model, instruction
		return "ok", nil
	})

	out, err := gen.Generate(context.Background(), "m", "p")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, "m", gotModel)
	assert.Equal(t, "p", gotPrompt)
}

func TestOpenAIGenerator(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"))
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"Luna Boutique\nStarlight Goods\n"},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	gen := NewOpenAIGenerator("sk-test", server.URL+"/v1")
	out, err := gen.Generate(context.Background(), "gpt-4o-mini", "describe")
	require.NoError(t, err)
	assert.Equal(t, reply, out)
	assert.Equal(t, "gpt-4o-mini", body["model"])
}

func TestOpenAIGeneratorNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","choices":[]}`))
	}))
	defer server.Close()

	gen := NewOpenAIGenerator("sk-test", server.URL+"/v1")
	_, err := gen.Generate(context.Background(), "gpt-4o-mini", "describe")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestOpenAIGeneratorHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	gen := NewOpenAIGenerator("sk-bad", server.URL+"/v1")
	_, err := gen.Generate(context.Background(), "gpt-4o-mini", "describe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestAnthropicGenerator(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/v1/messages"))
		assert.Equal(t, "ak-test", r.Header.Get("X-Api-Key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"claude-3-5-haiku-latest","content":[{"type":"text","text":"Luna Boutique\nStarlight Goods\n"}],"stop_reason":"end_turn","usage":{"input_tokens":10,"output_tokens":8}}`))
	}))
	defer server.Close()

	gen := NewAnthropicGenerator("ak-test", server.URL)
	out, err := gen.Generate(context.Background(), "claude-3-5-haiku-latest", "describe")
	require.NoError(t, err)
	assert.Equal(t, reply, out)
}

func TestAnthropicGeneratorDoesNotRetry(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"boom"}}`))
	}))
	defer server.Close()

	gen := NewAnthropicGenerator("ak-test", server.URL)
	_, err := gen.Generate(context.Background(), "claude-3-5-haiku-latest", "describe")
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestOllamaGenerator(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"llama3.2","response":"Luna Boutique\nStarlight Goods\n","done":true}`))
	}))
	defer server.Close()

	gen, err := NewOllamaGenerator(server.URL)
	require.NoError(t, err)

	out, err := gen.Generate(context.Background(), "llama3.2", "describe")
	require.NoError(t, err)
	assert.Equal(t, reply, out)
	assert.Equal(t, "describe", body["prompt"])
	assert.Equal(t, false, body["stream"])
}

func TestGeminiGenerator(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "gemini-1.5-flash:generateContent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Luna Boutique\nStarlight Goods\n"}]},"finishReason":"STOP"}]}`))
	}))
	defer server.Close()

	gen := NewGeminiGenerator("gm-test", server.URL)
	out, err := gen.Generate(context.Background(), "gemini-1.5-flash", "describe")
	require.NoError(t, err)
	assert.Equal(t, reply, out)
}

func TestGeminiGeneratorNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	gen := NewGeminiGenerator("gm-test", server.URL)
	_, err := gen.Generate(context.Background(), "gemini-1.5-flash", "describe")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}
