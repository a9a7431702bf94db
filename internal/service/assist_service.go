package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cardify/internal/middleware"
	"cardify/internal/models"
	"cardify/internal/observability"
)

const (
	groqEndpoint = "https://api.groq.com/openai/v1/chat/completions"

	assistTemperature = 0.7
	assistMaxTokens   = 300
	assistTimeout     = 20 * time.Second

	maxPromptLen = 500
)

const assistSystemPrompt = "You are a greeting card writer. Write warm, personal, " +
	"concise card messages (2-4 sentences). Reply with the message text only, " +
	"no quotes and no preamble."

// AssistService generates card message suggestions through the Groq
// chat-completions API.
type AssistService struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

type AssistInput struct {
	Prompt    string `json:"userPrompt"`
	Category  string `json:"category"`
	Recipient string `json:"recipientName"`
	Sender    string `json:"senderName"`
	Tone      string `json:"tone"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func NewAssistService(apiKey, model string) *AssistService {
	return &AssistService{
		apiKey:   apiKey,
		model:    model,
		endpoint: groqEndpoint,
		client:   &http.Client{Timeout: assistTimeout},
	}
}

// NewAssistServiceWithEndpoint is used by tests to point at a stub server.
func NewAssistServiceWithEndpoint(apiKey, model, endpoint string) *AssistService {
	s := NewAssistService(apiKey, model)
	s.endpoint = endpoint
	return s
}

// Enabled reports whether an upstream API key is configured.
func (s *AssistService) Enabled() bool {
	return s.apiKey != ""
}

func (s *AssistService) Suggest(ctx context.Context, in AssistInput) (string, error) {
	in.Prompt = strings.TrimSpace(in.Prompt)
	if in.Prompt == "" {
		observability.AssistRequests.WithLabelValues("invalid").Inc()
		return "", models.NewValidationError("Prompt is required")
	}
	if len(in.Prompt) > maxPromptLen {
		observability.AssistRequests.WithLabelValues("invalid").Inc()
		return "", models.NewValidationError("Prompt too long (max 500 characters)")
	}
	if !s.Enabled() {
		observability.AssistRequests.WithLabelValues("disabled").Inc()
		return "", models.NewInternalError(fmt.Errorf("assist service is not configured"))
	}

	body, err := json.Marshal(chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: assistSystemPrompt},
			{Role: "user", Content: buildUserPrompt(in)},
		},
		Temperature: assistTemperature,
		MaxTokens:   assistMaxTokens,
	})
	if err != nil {
		return "", models.NewInternalError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", models.NewInternalError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		observability.AssistRequests.WithLabelValues("upstream_error").Inc()
		middleware.Logger.ErrorContext(ctx, "assist upstream request failed", "error", err)
		return "", models.NewInternalError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		observability.AssistRequests.WithLabelValues("upstream_error").Inc()
		return "", models.NewInternalError(err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		observability.AssistRequests.WithLabelValues("upstream_error").Inc()
		return "", models.NewInternalError(fmt.Errorf("decode assist response: %w", err))
	}
	if resp.StatusCode != http.StatusOK {
		observability.AssistRequests.WithLabelValues("upstream_error").Inc()
		msg := "assist upstream returned an error"
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		middleware.Logger.ErrorContext(ctx, "assist upstream error",
			"status", resp.StatusCode, "message", msg)
		return "", models.NewInternalError(fmt.Errorf("assist upstream status %d", resp.StatusCode))
	}
	if len(parsed.Choices) == 0 {
		observability.AssistRequests.WithLabelValues("upstream_error").Inc()
		return "", models.NewInternalError(fmt.Errorf("assist upstream returned no choices"))
	}

	suggestion := strings.TrimSpace(parsed.Choices[0].Message.Content)
	observability.AssistRequests.WithLabelValues("ok").Inc()
	return suggestion, nil
}

func buildUserPrompt(in AssistInput) string {
	var b strings.Builder
	b.WriteString(in.Prompt)
	if in.Category != "" {
		fmt.Fprintf(&b, "\nOccasion: %s", in.Category)
	}
	if in.Recipient != "" {
		fmt.Fprintf(&b, "\nRecipient: %s", in.Recipient)
	}
	if in.Sender != "" {
		fmt.Fprintf(&b, "\nFrom: %s", in.Sender)
	}
	if in.Tone != "" {
		fmt.Fprintf(&b, "\nTone: %s", in.Tone)
	}
	return b.String()
}
