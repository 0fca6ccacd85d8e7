package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/motaiot/siteapi/internal/config"
)

// Email is one transactional message for the Resend API.
type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// MailClient delivers transactional email through the Resend API.
type MailClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewMailClient creates a client from configuration.
func NewMailClient(cfg config.Config) *MailClient {
	return &MailClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    cfg.ResendBaseURL,
		apiKey:     cfg.ResendAPIKey,
	}
}

// Send delivers the email and returns the provider's message id.
func (c *MailClient) Send(ctx context.Context, email Email) (string, error) {
	payload, err := json.Marshal(email)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("resend returned %d: %s", resp.StatusCode, body)
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return "", fmt.Errorf("decode resend response: %w", err)
	}
	return created.ID, nil
}
