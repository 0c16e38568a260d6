package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/ewasteheroes/carbobot/internal/domain"
)

const (
	// chatTimeout bounds a single completion call. One attempt, no retry.
	chatTimeout = 60 * time.Second

	// healthTimeout bounds the model-list probe.
	healthTimeout = 5 * time.Second
)

// genOptions holds the fixed generation configuration.
var genOptions = Options{
	Temperature: 0.7,
	NumPredict:  500,
	TopK:        40,
	TopP:        0.95,
}

// Client talks to an Ollama-compatible backend.
type Client struct {
	baseURL      string
	model        string
	apiKey       string
	chatClient   *http.Client
	healthClient *http.Client
}

// NewClient creates a new backend client.
func NewClient(baseURL, model, apiKey string) *Client {
	return &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		model:        model,
		apiKey:       apiKey,
		chatClient:   &http.Client{Timeout: chatTimeout},
		healthClient: &http.Client{Timeout: healthTimeout},
	}
}

// Options is the generation configuration sent with every chat call.
type Options struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
	TopK        int     `json:"top_k"`
	TopP        float64 `json:"top_p"`
}

// ChatRequest is the backend chat-completion request body.
type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  Options       `json:"options"`
}

// ChatMessage is one message in the completion request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatResponse is the backend chat-completion response body.
type ChatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

// TagsResponse is the backend model-list response body.
type TagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// CheckHealth queries the model list and reports whether the configured
// model is present. Any failure returns false.
func (c *Client) CheckHealth(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}
	c.setHeaders(req)

	resp, err := c.healthClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	var tags TagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return false
	}

	for _, m := range tags.Models {
		if m.Name == c.model {
			return true
		}
	}
	return false
}

// ChatWithContext issues one blocking chat-completion call with the system
// prompt prepended to the history.
func (c *Client) ChatWithContext(ctx context.Context, systemPrompt string, history []domain.Turn) (string, error) {
	messages := make([]ChatMessage, 0, len(history)+1)
	messages = append(messages, ChatMessage{Role: string(domain.RoleSystem), Content: systemPrompt})
	for _, turn := range history {
		messages = append(messages, ChatMessage{Role: string(turn.Role), Content: turn.Content})
	}

	body, err := json.Marshal(ChatRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   false,
		Options:  genOptions,
	})
	if err != nil {
		return "", &InferenceError{Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", &InferenceError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	c.setHeaders(req)

	resp, err := c.chatClient.Do(req)
	if err != nil {
		var nerr net.Error
		if errors.As(err, &nerr) && nerr.Timeout() {
			return "", &InferenceError{Err: err}
		}
		return "", &ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &InferenceError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &InferenceError{Err: fmt.Errorf("backend error [%d]: %s", resp.StatusCode, string(respBody))}
	}

	var result ChatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", &InferenceError{Err: fmt.Errorf("failed to unmarshal response: %w", err)}
	}

	return result.Message.Content, nil
}

// setHeaders sets common request headers.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
