package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/alvisk/encode-spoonOS-sub000/internal/core/domain"
	"github.com/alvisk/encode-spoonOS-sub000/internal/core/ports"
	"github.com/alvisk/encode-spoonOS-sub000/internal/metrics"

	"github.com/rs/zerolog"
)

// PaymentHeader is the x402 payment authorization header relayed to the
// agent when the client retries a paywalled call.
const PaymentHeader = "X-Payment"

const (
	invokePath      = "/x402/invoke/analyze"
	voicePath       = "/api/v2/voice/announce"
	voiceStatusPath = "/api/v2/voice/status"
)

// invalidResponseBody is synthesized when the agent returns non-JSON.
var invalidResponseBody = json.RawMessage(`{"error":"Invalid response"}`)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client forwards requests to the hosted SpoonOS agent service. It holds no
// state: payment verification and agent logic live entirely upstream.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates an agent gateway client.
func NewClient(baseURL string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        log,
	}
}

// Invoke forwards a client body plus an optional payment header to the
// paywalled invoke endpoint and relays status and body verbatim. The returned
// error covers transport failure only; upstream error statuses come back as
// an AgentResult.
func (c *Client) Invoke(ctx context.Context, body []byte, paymentHeader string) (*ports.AgentResult, error) {
	// Lenient inbound handling: a missing or malformed body is forwarded as
	// an empty object, never rejected.
	if !json.Valid(body) || len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+invokePath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if paymentHeader != "" {
		req.Header.Set(PaymentHeader, paymentHeader)
	}

	result, err := c.relay(req, "invoke")
	if err != nil {
		return nil, err
	}

	if result.Status == http.StatusPaymentRequired {
		if pr := domain.ParsePaymentRequired(result.Body); pr != nil && len(pr.Accepts) > 0 {
			c.log.Info().
				Str("network", pr.Accepts[0].Network).
				Str("amount", pr.Accepts[0].MaxAmountRequired).
				Str("asset", pr.Accepts[0].Asset).
				Msg("agent requires payment")
		}
	}

	return result, nil
}

// Announce forwards a voice announcement to the agent's TTS sub-service.
func (c *Client) Announce(ctx context.Context, announcement domain.VoiceAnnouncement) (*ports.AgentResult, error) {
	body, err := json.Marshal(announcement)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+voicePath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.relay(req, "voice_announce")
}

// Status fetches the voice service status.
func (c *Client) Status(ctx context.Context) (*ports.AgentResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+voiceStatusPath, nil)
	if err != nil {
		return nil, err
	}

	return c.relay(req, "voice_status")
}

// relay performs the round trip. Whatever the status, a non-JSON upstream
// body becomes a synthesized error object rather than a parse failure.
func (c *Client) relay(req *http.Request, operation string) (*ports.AgentResult, error) {
	start := time.Now()
	metrics.UpstreamCallsTotal.WithLabelValues("agent", operation).Inc()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("agent", operation, "transport").Inc()
		return nil, err
	}
	defer resp.Body.Close()

	metrics.UpstreamLatency.WithLabelValues("agent", operation).Observe(time.Since(start).Seconds())

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("agent", operation, "read").Inc()
		return nil, err
	}

	body := json.RawMessage(raw)
	if !json.Valid(raw) {
		c.log.Warn().
			Str("operation", operation).
			Int("status", resp.StatusCode).
			Msg("agent returned non-JSON body")
		body = invalidResponseBody
	}

	return &ports.AgentResult{
		Status: resp.StatusCode,
		Body:   body,
	}, nil
}
