package assistant_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/theater-dashboard/internal/assistant"
)

func TestAskReturnsAnswerText(t *testing.T) {
	var gotPath string
	var gotBody struct {
		Contents []struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "42 tickets sold"}}}},
			},
		})
	}))
	defer srv.Close()

	client := assistant.NewClient(srv.URL, "test-key", "test-model", 5*time.Second)
	answer, err := client.Ask(context.Background(), assistant.Question{
		Directors: 50, Plays: 50, Seats: 100, Tickets: 42,
		Text: "How many tickets were sold?",
	})

	require.NoError(t, err)
	assert.Equal(t, "42 tickets sold", answer)
	assert.Equal(t, "/v1beta/models/test-model:generateContent", gotPath)

	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	prompt := gotBody.Contents[0].Parts[0].Text
	assert.Contains(t, prompt, "Tickets sold: 42")
	assert.Contains(t, prompt, "How many tickets were sold?")
}

func TestAskMapsHTTPFailureToExternalService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := assistant.NewClient(srv.URL, "k", "m", 5*time.Second)
	_, err := client.Ask(context.Background(), assistant.Question{Text: "q"})
	assert.ErrorIs(t, err, assistant.ErrExternalService)
}

func TestAskMapsNetworkFailureToExternalService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := assistant.NewClient(srv.URL, "k", "m", time.Second)
	_, err := client.Ask(context.Background(), assistant.Question{Text: "q"})
	assert.ErrorIs(t, err, assistant.ErrExternalService)
}

func TestAskMapsEmptyResponseToExternalService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	client := assistant.NewClient(srv.URL, "k", "m", time.Second)
	_, err := client.Ask(context.Background(), assistant.Question{Text: "q"})
	assert.ErrorIs(t, err, assistant.ErrExternalService)
}
