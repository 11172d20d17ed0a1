package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/givewell/donation-service/internal/config/configs"
	"github.com/givewell/donation-service/internal/core/port"
)

// Client sends transactional email through the provider's HTTP API. It is
// an outbound adapter implementing port.Mailer; one request per message,
// no retries.
type Client struct {
	apiURL string
	apiKey string
	from   string
	http   *http.Client
}

// New builds a Client from the email config section.
func New(cfg configs.Email) *Client {
	return &Client{
		apiURL: cfg.APIURL,
		apiKey: cfg.APIKey,
		from:   cfg.From,
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send posts one email to the provider. Any non-2xx response is returned
// as an error carrying the provider's body text.
func (c *Client) Send(ctx context.Context, msg port.Message) error {
	body, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("email provider request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("email provider returned %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}
	return nil
}
