package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/octavioverge/DSP-MDS-new-sub000/internal/config"
)

// EmailNotifier posts messages to a transactional email HTTP API. The recipient is
// always the configured operator address.
type EmailNotifier struct {
	apiURL    string
	apiKey    string
	from      string
	recipient string
	client    *http.Client
}

type emailPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// NewEmailNotifier creates an email notifier from configuration
func NewEmailNotifier(cfg *config.EmailConfig) *EmailNotifier {
	timeout := cfg.TimeoutDuration()
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &EmailNotifier{
		apiURL:    cfg.APIURL,
		apiKey:    cfg.APIKey,
		from:      cfg.From,
		recipient: cfg.OperatorAddress,
		client:    &http.Client{Timeout: timeout},
	}
}

func (n *EmailNotifier) Notify(ctx context.Context, msg Message) error {
	if n.recipient == "" {
		return fmt.Errorf("email notifier: operator address is not configured")
	}

	body, err := json.Marshal(emailPayload{
		From:    n.from,
		To:      []string{n.recipient},
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
	})
	if err != nil {
		return fmt.Errorf("failed to encode email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+n.apiKey)

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email API returned %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}
	return nil
}
