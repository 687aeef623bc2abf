// Package llm provides an eino ChatModel backed by any OpenAI-compatible
// chat completion endpoint.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/juniordjimbi1/africacvpro-sub000/internal/logger"
)

// OpenAIChatModel is a minimal chat completion client. Two instances with
// different model names implement the primary/fallback pair used by the
// structured extractor.
type OpenAIChatModel struct {
	apiKey    string
	modelName string
	apiURL    string
	client    *http.Client
}

var (
	_ model.ChatModel            = (*OpenAIChatModel)(nil)
	_ model.ToolCallingChatModel = (*OpenAIChatModel)(nil)
)

// NewOpenAIChatModel builds a chat model client for one model identifier.
func NewOpenAIChatModel(apiKey, modelName, apiURL string) (*OpenAIChatModel, error) {
	if apiKey == "" {
		return nil, errors.New("llm api key is required")
	}
	if modelName == "" {
		return nil, errors.New("llm model name is required")
	}
	if apiURL == "" {
		apiURL = "https://api.openai.com/v1/chat/completions"
	}
	return &OpenAIChatModel{
		apiKey:    apiKey,
		modelName: modelName,
		apiURL:    apiURL,
		client:    &http.Client{Timeout: 90 * time.Second},
	}, nil
}

// ModelName returns the configured model identifier.
func (m *OpenAIChatModel) ModelName() string { return m.modelName }

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
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

// Generate sends the messages as one chat completion request and returns
// the assistant message.
func (m *OpenAIChatModel) Generate(ctx context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	reqBody := chatRequest{Model: m.modelName}
	for _, msg := range input {
		if msg == nil {
			continue
		}
		reqBody.Messages = append(reqBody.Messages, chatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat completion call (%s): %w", m.modelName, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read chat response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn().Int("status", resp.StatusCode).Str("model", m.modelName).Msg("chat completion returned non-2xx")
		return nil, fmt.Errorf("chat completion status %d (%s): %s", resp.StatusCode, m.modelName, truncate(string(body), 200))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode chat response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("chat completion error (%s): %s", m.modelName, parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices (%s)", m.modelName)
	}

	choice := parsed.Choices[0].Message
	return &schema.Message{
		Role:    schema.RoleType(choice.Role),
		Content: choice.Content,
	}, nil
}

// Stream is not supported; extraction always consumes full completions.
func (m *OpenAIChatModel) Stream(context.Context, []*schema.Message, ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming is not supported by this client")
}

// BindTools is accepted but ignored; extraction never calls tools.
func (m *OpenAIChatModel) BindTools([]*schema.ToolInfo) error {
	return nil
}

// WithTools returns the model unchanged; extraction never calls tools.
func (m *OpenAIChatModel) WithTools([]*schema.ToolInfo) (model.ToolCallingChatModel, error) {
	return m, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
