package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cardify/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssistService_Suggest(t *testing.T) {
	var gotReq chatRequest
	var gotAuth string
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{
					"role":    "assistant",
					"content": "  Wishing you the happiest of birthdays!  ",
				}},
			},
		})
	}))
	defer stub.Close()

	svc := NewAssistServiceWithEndpoint("gsk_test", "llama-3.1-8b-instant", stub.URL)
	msg, err := svc.Suggest(context.Background(), AssistInput{
		Prompt:    "a birthday message for my sister",
		Category:  "birthday",
		Recipient: "Anna",
		Tone:      "warm",
	})
	require.NoError(t, err)

	assert.Equal(t, "Wishing you the happiest of birthdays!", msg)
	assert.Equal(t, "Bearer gsk_test", gotAuth)
	assert.Equal(t, "llama-3.1-8b-instant", gotReq.Model)
	assert.Equal(t, assistTemperature, gotReq.Temperature)
	assert.Equal(t, assistMaxTokens, gotReq.MaxTokens)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Contains(t, gotReq.Messages[1].Content, "a birthday message for my sister")
	assert.Contains(t, gotReq.Messages[1].Content, "Occasion: birthday")
	assert.Contains(t, gotReq.Messages[1].Content, "Recipient: Anna")
	assert.Contains(t, gotReq.Messages[1].Content, "Tone: warm")
}

func TestAssistService_Suggest_InvalidPrompt(t *testing.T) {
	svc := NewAssistService("gsk_test", "llama-3.1-8b-instant")

	tests := []struct {
		name   string
		prompt string
	}{
		{"Empty", ""},
		{"Whitespace Only", "   "},
		{"Too Long", strings.Repeat("a", maxPromptLen+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Suggest(context.Background(), AssistInput{Prompt: tt.prompt})
			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

func TestAssistService_Suggest_NotConfigured(t *testing.T) {
	svc := NewAssistService("", "llama-3.1-8b-instant")
	assert.False(t, svc.Enabled())

	_, err := svc.Suggest(context.Background(), AssistInput{Prompt: "hello"})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INTERNAL_ERROR", appErr.Code)
}

func TestAssistService_Suggest_UpstreamError(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "rate limit exceeded", "type": "rate_limit"},
		})
	}))
	defer stub.Close()

	svc := NewAssistServiceWithEndpoint("gsk_test", "llama-3.1-8b-instant", stub.URL)
	_, err := svc.Suggest(context.Background(), AssistInput{Prompt: "hello"})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INTERNAL_ERROR", appErr.Code)
}

func TestAssistService_Suggest_EmptyChoices(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer stub.Close()

	svc := NewAssistServiceWithEndpoint("gsk_test", "llama-3.1-8b-instant", stub.URL)
	_, err := svc.Suggest(context.Background(), AssistInput{Prompt: "hello"})
	assert.Error(t, err)
}
