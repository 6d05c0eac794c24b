package openai

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mindful-campus-be/pkg/llm"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIProviderChat(t *testing.T) {
	var captured map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  You are not alone.  "}}]}`))
	}))
	defer srv.Close()

	p := NewOpenAIProvider("sk-test", srv.URL+"/v1/", "gpt-4o-mini", 5*time.Second)
	reply, err := p.Chat(context.Background(), []llm.Message{
		{Role: "system", Content: "be kind"},
		{Role: "user", Content: "hi"},
	}, llm.WithTemperature(0.6), llm.WithMaxTokens(220))

	require.NoError(t, err)
	assert.Equal(t, "You are not alone.", reply)
	assert.Equal(t, "gpt-4o-mini", captured["model"])
	assert.Equal(t, 0.6, captured["temperature"])
	assert.Equal(t, float64(220), captured["max_tokens"])

	messages, ok := captured["messages"].([]interface{})
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, map[string]interface{}{"role": "system", "content": "be kind"}, messages[0])
}

func TestOpenAIProviderFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{name: "server error", status: http.StatusInternalServerError, payload: `{"error":{"message":"down"}}`},
		{name: "unauthorized", status: http.StatusUnauthorized, payload: `{}`},
		{name: "malformed", status: http.StatusOK, payload: `not json`},
		{name: "no choices", status: http.StatusOK, payload: `{"choices":[]}`},
		{name: "error body", status: http.StatusOK, payload: `{"error":{"message":"quota"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.payload))
			}))
			defer srv.Close()

			p := NewOpenAIProvider("sk-test", srv.URL, "m", 5*time.Second)
			_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hello"}})
			assert.Error(t, err)
		})
	}
}

func TestOpenAIProviderTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"late"}}]}`))
	}))
	defer srv.Close()

	p := NewOpenAIProvider("sk-test", srv.URL, "m", 50*time.Millisecond)
	_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hello"}})
	assert.Error(t, err)
}
