// Package email sends the daily expiry digest through Postmark.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/dukerupert/smartshopper/internal/model"
)

const defaultAPIURL = "https://api.postmarkapp.com/email"

// ErrNotConfigured is returned when the token, sender or recipients are missing.
var ErrNotConfigured = errors.New("email client not configured")

type Client struct {
	serverToken string
	fromEmail   string
	to          []string
	apiURL      string
	httpClient  *http.Client
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithAPIURL points the client at a different Postmark-compatible endpoint.
func WithAPIURL(u string) Option {
	return func(cl *Client) {
		cl.apiURL = u
	}
}

func NewClient(serverToken, fromEmail string, to []string, opts ...Option) *Client {
	c := &Client{
		serverToken: serverToken,
		fromEmail:   fromEmail,
		to:          to,
		apiURL:      defaultAPIURL,
		httpClient:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured returns true if the token, sender and at least one recipient are set.
func (c *Client) Configured() bool {
	return c.serverToken != "" && c.fromEmail != "" && len(c.to) > 0
}

type postmarkEmail struct {
	From     string `json:"From"`
	To       string `json:"To"`
	Subject  string `json:"Subject"`
	HtmlBody string `json:"HtmlBody"`
	TextBody string `json:"TextBody"`
	Tag      string `json:"Tag,omitempty"`
}

// SendExpiryDigest mails one summary of the given notices to every
// recipient. An empty list sends nothing.
func (c *Client) SendExpiryDigest(ctx context.Context, notices []model.ExpiryNotice) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	if len(notices) == 0 {
		return nil
	}

	expired := 0
	for _, n := range notices {
		if n.Severity == model.SeverityCritical {
			expired++
		}
	}
	subject := fmt.Sprintf("%d pantry items need attention", len(notices))
	if len(notices) == 1 {
		subject = "1 pantry item needs attention"
	}
	if expired > 0 {
		subject += fmt.Sprintf(" (%d expired)", expired)
	}

	var text, htm strings.Builder
	text.WriteString("Here is today's expiry summary:\n\n")
	htm.WriteString("<p>Here is today's expiry summary:</p><ul>")
	for _, n := range notices {
		fmt.Fprintf(&text, "- %s\n", n.Message)
		fmt.Fprintf(&htm, "<li>%s</li>", html.EscapeString(n.Message))
	}
	htm.WriteString("</ul>")

	return c.send(ctx, postmarkEmail{
		From:     c.fromEmail,
		To:       strings.Join(c.to, ","),
		Subject:  subject,
		HtmlBody: htm.String(),
		TextBody: text.String(),
		Tag:      "expiry-digest",
	})
}

func (c *Client) send(ctx context.Context, payload postmarkEmail) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Postmark-Server-Token", c.serverToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("postmark API error: status %d", resp.StatusCode)
	}
	return nil
}
