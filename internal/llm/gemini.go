package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/almonzeir/sudannnnn/internal/config"
)

const systemInstruction = `You are Dr. Sudani, a helpful medical assistant for Sudani Dar Meds pharmacy in Sudan. You speak in Sudanese Arabic dialect and provide medical guidance.

Key guidelines:
- Always remind users you're not a replacement for real medical consultation
- Provide helpful information about medications, symptoms, and general health
- Use Sudanese Arabic expressions and dialect naturally
- Be empathetic and understanding
- For serious symptoms, always recommend seeing a doctor
- You can help with medication information, dosages, side effects, and general health advice
- Keep responses conversational and friendly
- If unsure about something, admit it and suggest consulting a healthcare professional

Remember: You're here to help and inform, not to replace professional medical care.`

// historyWindow limits how many prior turns are folded into the prompt.
const historyWindow = 10

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient calls the Gemini generateContent REST API.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// NewGeminiClient creates a Gemini client from configuration.
func NewGeminiClient(cfg config.Gemini, log *zap.Logger) *GeminiClient {
	return &GeminiClient{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSec) * time.Second,
		},
		log: log,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Respond builds a persona prompt around the user message and up to the last
// ten turns of history, then calls the model.
func (c *GeminiClient) Respond(ctx context.Context, message string, history []Message) (string, error) {
	prompt := buildPrompt(message, history)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Error("Failed to close response body", zap.Error(err))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, payload)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

func buildPrompt(message string, history []Message) string {
	var b strings.Builder
	b.WriteString(systemInstruction)
	b.WriteString("\n\n")

	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	if len(history) > 0 {
		b.WriteString("Previous conversation context:\n")
		for _, msg := range history {
			role := "Dr. Sudani"
			if msg.Role == "user" {
				role = "User"
			}
			fmt.Fprintf(&b, "%s: %s\n", role, msg.Content)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Current user message: %s\n\nPlease respond as Dr. Sudani:", message)
	return b.String()
}
