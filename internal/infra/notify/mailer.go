// Package notify implements the async notification sink: in-app notification
// rows plus best-effort transactional email.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"ledger/config"
	"ledger/internal/errors"
)

const mailerRequestTimeout = 10 * time.Second

// Mailer sends a single transactional email.
type Mailer interface {
	Send(ctx context.Context, toEmail, subject, body string) error
}

// httpMailer delivers mail through an HTTP send API.
type httpMailer struct {
	apiURL     string
	apiKey     string
	fromEmail  string
	fromName   string
	httpClient *http.Client
}

// NewHTTPMailer is the constructor for httpMailer.
func NewHTTPMailer(cfg *config.Config) (Mailer, error) {
	if cfg.Mailer == nil || cfg.Mailer.APIURL == "" {
		return nil, errors.New("mailer api url must be provided")
	}

	return &httpMailer{
		apiURL:    cfg.Mailer.APIURL,
		apiKey:    cfg.Mailer.APIKey,
		fromEmail: cfg.Mailer.FromEmail,
		fromName:  cfg.Mailer.FromName,
		httpClient: &http.Client{
			Timeout: mailerRequestTimeout,
		},
	}, nil
}

// Send posts a JSON payload to the send API.
func (m *httpMailer) Send(ctx context.Context, toEmail, subject, body string) error {
	reqBody := map[string]any{
		"from": map[string]string{
			"email": m.fromEmail,
			"name":  m.fromName,
		},
		"to": []map[string]string{
			{"email": toEmail},
		},
		"subject": subject,
		"text":    body,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return errors.Wrap(err, "marshal email request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, m.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return errors.Wrap(err, "create email request")
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.httpClient.Do(httpReq)
	if err != nil {
		return errors.Wrap(err, "send email request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		return errors.Errorf("mail API returned status %d: %s", resp.StatusCode, string(detail))
	}

	return nil
}
