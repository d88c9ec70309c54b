package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiService_GenerateText(t *testing.T) {
	defer gock.Off()

	gock.New(GeminiDefaultBaseURL).
		Post("/v1beta/models/gemini-1.5-flash:generateContent").
		MatchHeader("x-goog-api-key", "test-key").
		Reply(200).
		JSON(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": "Stock stable. "},
					{"text": "Surveiller le mil."},
				}}},
			},
		})

	svc := NewGeminiService("test-key", "gemini-1.5-flash")
	text, err := svc.GenerateText(context.Background(), "Analyse")
	require.NoError(t, err)
	assert.Equal(t, "Stock stable. Surveiller le mil.", text)
	assert.True(t, gock.IsDone())
}

func TestGeminiService_APIError(t *testing.T) {
	defer gock.Off()

	gock.New(GeminiDefaultBaseURL).
		Post("/v1beta/models/gemini-1.5-flash:generateContent").
		Reply(429).
		JSON(map[string]any{"error": map[string]any{"code": 429, "message": "quota"}})

	_, err := NewGeminiService("k", "gemini-1.5-flash").GenerateText(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota")
}

func TestGeminiService_EmptyCandidates(t *testing.T) {
	defer gock.Off()

	gock.New(GeminiDefaultBaseURL).
		Post("/v1beta/models/gemini-1.5-flash:generateContent").
		Reply(200).
		JSON(map[string]any{"candidates": []any{}})

	_, err := NewGeminiService("k", "gemini-1.5-flash").GenerateText(context.Background(), "x")
	assert.Error(t, err)
}

func TestGeminiService_MissingKey(t *testing.T) {
	_, err := NewGeminiService("", "gemini-1.5-flash").GenerateText(context.Background(), "x")
	assert.Error(t, err)
}

func TestGeminiService_ContextTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	svc := NewGeminiService("k", "gemini-1.5-flash").WithBaseURL(srv.URL)
	_, err := svc.GenerateText(ctx, "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
