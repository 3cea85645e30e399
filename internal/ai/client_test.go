package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "Day 1: squats."}},
			},
		})
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "test-model")

	reply, err := client.Complete(context.Background(), []Message{
		{Role: "system", Content: "You are a fitness coach."},
		{Role: "user", Content: "Plan my week."},
	})

	require.NoError(t, err)
	assert.Equal(t, "Day 1: squats.", reply)
}

func TestComplete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "invalid api key"},
		})
	}))
	defer server.Close()

	client := NewClient("bad-key", server.URL, "test-model")

	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})

	assert.ErrorContains(t, err, "invalid api key")
}

func TestComplete_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "test-model")

	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})

	assert.ErrorIs(t, err, ErrNoCompletion)
}
