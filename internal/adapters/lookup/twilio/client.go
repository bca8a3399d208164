// Package twilio binds the caller name lookup to the Twilio Lookup v2 API
package twilio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"callerverify/internal/platform/config"
	"callerverify/internal/platform/logger"
	"callerverify/internal/services/resolver/domain"
)

const (
	providerID     = "twilio"
	baseURLDefault = "https://lookups.twilio.com"
	defaultTimeout = 10 * time.Second
	defaultUA      = "callerverify"
)

// Options configures the Client
type Options struct {
	BaseURL    string
	AccountSID string
	AuthToken  string
	UserAgent  string
	Timeout    time.Duration
}

// FromConfig reads TWILIO_* keys from the root config
func FromConfig(cfg config.Conf) Options {
	tw := cfg.Prefix("TWILIO_")
	return Options{
		BaseURL:    tw.MayString("BASE_URL", baseURLDefault),
		AccountSID: tw.MayString("ACCOUNT_SID", ""),
		AuthToken:  tw.MayString("AUTH_TOKEN", ""),
		Timeout:    tw.MayDuration("TIMEOUT", defaultTimeout),
	}
}

// Client performs caller name lookups, one request per call and no retries
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("twilio"),
	}
}

// HasCredentials reports whether both the account sid and auth token are set
func (c *Client) HasCredentials() bool {
	return c.opts.AccountSID != "" && c.opts.AuthToken != ""
}

// WarnIfUnconfigured logs a startup warning when credentials are missing
func (c *Client) WarnIfUnconfigured() bool {
	if c.HasCredentials() {
		return false
	}
	c.log.Warn().Msg("TWILIO_ACCOUNT_SID and TWILIO_AUTH_TOKEN are not set; caller name lookups will fail")
	return true
}

type lookupResponse struct {
	PhoneNumber string `json:"phone_number"`
	Valid       *bool  `json:"valid"`
	CallerName  *struct {
		CallerName *string `json:"caller_name"`
		CallerType *string `json:"caller_type"`
		ErrorCode  *int    `json:"error_code"`
	} `json:"caller_name"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// Lookup implements domain.LookupProvider
func (c *Client) Lookup(ctx context.Context, phone string) (domain.CallerInfo, error) {
	if !c.HasCredentials() {
		return domain.CallerInfo{}, domain.NewProviderError(domain.ErrorAuthentication, providerID, "account credentials are not configured", nil)
	}

	u := c.opts.BaseURL + "/v2/PhoneNumbers/" + url.PathEscape(phone) + "?Fields=caller_name"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.CallerInfo{}, domain.NewProviderError(domain.ErrorBadData, providerID, "build request", err)
	}
	req.SetBasicAuth(c.opts.AccountSID, c.opts.AuthToken)
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return domain.CallerInfo{}, transportError(err)
	}
	defer func() { _ = drainAndClose(resp.Body) }()

	c.log.Debug().
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("caller name lookup")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.CallerInfo{}, statusError(resp)
	}

	var body lookupResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err != nil {
		return domain.CallerInfo{}, domain.NewProviderError(domain.ErrorBadData, providerID, "decode response", err)
	}
	if body.Valid != nil && !*body.Valid {
		return domain.CallerInfo{}, domain.NewProviderError(domain.ErrorBadData, providerID, fmt.Sprintf("invalid phone number %q", phone), nil)
	}

	var info domain.CallerInfo
	if cn := body.CallerName; cn != nil {
		if cn.CallerName != nil {
			info.CallerName = *cn.CallerName
		}
		if cn.CallerType != nil {
			info.CallerType = *cn.CallerType
		}
	}
	return info, nil
}

// statusError maps a non-2xx reply onto the provider error taxonomy
func statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	msg := strings.TrimSpace(string(raw))
	var er errorResponse
	if json.Unmarshal(raw, &er) == nil && er.Message != "" {
		msg = er.Message
		if er.Code != 0 {
			msg = fmt.Sprintf("%s (code %d)", er.Message, er.Code)
		}
	}
	se := &StatusError{Status: resp.StatusCode, Body: msg}
	return domain.NewProviderError(categoryForStatus(resp.StatusCode), providerID, msg, se)
}

func categoryForStatus(status int) domain.ErrorCategory {
	switch {
	case status == http.StatusBadRequest:
		return domain.ErrorBadData
	case status == http.StatusNotFound:
		return domain.ErrorNotFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return domain.ErrorAuthentication
	case status == http.StatusTooManyRequests:
		return domain.ErrorRateLimited
	case status >= 500:
		return domain.ErrorProviderOutage
	default:
		return domain.ErrorInternal
	}
}

// transportError classifies failures that happen before a status is read
func transportError(err error) error {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return domain.NewProviderError(domain.ErrorTimeout, providerID, "request timed out", err)
	}
	return domain.NewProviderError(domain.ErrorProviderOutage, providerID, "request failed", err)
}
