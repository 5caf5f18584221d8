package notify

//go:generate go run go.uber.org/mock/mockgen -source=./notify.go -destination=./mocks/notify_mock.go -package=mocks

import (
	"context"
	"dockhub/config"
	"dockhub/infras/otel"
	"dockhub/shared/constant"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	otelAttrProvider = "provider"
	maxErrorBody     = 512
)

var ErrNotConfigured = errors.New("notification provider is not configured")

// Email delivers a plain text email and returns the provider message id.
type Email interface {
	SendEmail(ctx context.Context, to, subject, body string) (string, error)
}

// SMS delivers a text message and returns the provider message id.
type SMS interface {
	SendSMS(ctx context.Context, to, body string) (string, error)
}

type emailClient struct {
	apiURL     string
	apiKey     string
	from       string
	httpClient *http.Client
	otel       otel.Otel
}

type smsClient struct {
	apiURL     string
	accountSID string
	authToken  string
	from       string
	httpClient *http.Client
	otel       otel.Otel
}

func newHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: time.Duration(cfg.External.TimeoutSeconds) * time.Second}
}

func NewEmail(cfg *config.Config, otel otel.Otel) Email {
	return &emailClient{
		apiURL:     cfg.External.Email.APIURL,
		apiKey:     cfg.External.Email.APIKey,
		from:       cfg.External.Email.From,
		httpClient: newHTTPClient(cfg),
		otel:       otel,
	}
}

func NewSMS(cfg *config.Config, otel otel.Otel) SMS {
	return &smsClient{
		apiURL:     cfg.External.SMS.APIURL,
		accountSID: cfg.External.SMS.AccountSID,
		authToken:  cfg.External.SMS.AuthToken,
		from:       cfg.External.SMS.From,
		httpClient: newHTTPClient(cfg),
		otel:       otel,
	}
}

type emailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

type providerResponse struct {
	ID  string `json:"id"`
	SID string `json:"sid"`
}

func (c *emailClient) SendEmail(ctx context.Context, to, subject, body string) (id string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".SendEmail")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrProvider, "email")

	if c.apiURL == "" || c.apiKey == "" {
		return "", ErrNotConfigured
	}

	payload, err := json.Marshal(emailRequest{From: c.from, To: []string{to}, Subject: subject, Text: body})
	if err != nil {
		return "", fmt.Errorf("failed to encode email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, strings.NewReader(string(payload)))
	if err != nil {
		return "", fmt.Errorf("failed to create email request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+c.apiKey)
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	res, err := do(c.httpClient, req)
	if err != nil {
		log.Error().Err(err).Msg("email provider request failed")

		return "", err
	}

	return res.ID, nil
}

func (c *smsClient) SendSMS(ctx context.Context, to, body string) (id string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".SendSMS")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrProvider, "sms")

	if c.apiURL == "" || c.accountSID == "" {
		return "", ErrNotConfigured
	}

	endpoint, err := url.JoinPath(c.apiURL, "Accounts", c.accountSID, "Messages.json")
	if err != nil {
		return "", fmt.Errorf("invalid sms provider url: %w", err)
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.from)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create sms request: %w", err)
	}

	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeFormURLEncoded)

	res, err := do(c.httpClient, req)
	if err != nil {
		log.Error().Err(err).Msg("sms provider request failed")

		return "", err
	}

	return res.SID, nil
}

// do sends the request once. Notifications are not retried.
func do(client *http.Client, req *http.Request) (providerResponse, error) {
	var res providerResponse

	resp, err := client.Do(req)
	if err != nil {
		return res, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return res, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}

		return res, fmt.Errorf("provider returned status %d: %s", resp.StatusCode, string(body))
	}

	if len(body) > 0 {
		if err = json.Unmarshal(body, &res); err != nil {
			return res, fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return res, nil
}
