package sms

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/fedcourts/docket-engine/internal/core/port"
	"github.com/fedcourts/docket-engine/internal/infra/config"
)

// Adapter implements port.SMSSender against a Twilio-compatible REST gateway
// for NEF recipients who opted into text delivery. No example repo in the
// reference pack carries an SMS client, so this talks to the gateway over
// net/http directly rather than adopting an unrelated third-party SDK.
type Adapter struct {
	cfg    config.SMSConfig
	client *http.Client
}

// New creates a new SMS sender.
func New(cfg config.SMSConfig) port.SMSSender {
	return &Adapter{cfg: cfg, client: &http.Client{}}
}

// Send posts a text message to the configured gateway.
func (a *Adapter) Send(ctx context.Context, req *port.SMSRequest) error {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", strings.TrimRight(a.cfg.APIBaseURL, "/"), a.cfg.AccountSID)

	form := url.Values{}
	form.Set("From", a.cfg.FromNumber)
	form.Set("To", req.To)
	form.Set("Body", req.Body)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("building sms request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.SetBasicAuth(a.cfg.AccountSID, a.cfg.AuthToken)

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("sending sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}

	slog.InfoContext(ctx, "sms sent", slog.String("to", req.To))
	return nil
}
