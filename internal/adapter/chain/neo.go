package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/alvisk/encode-spoonOS-sub000/internal/core/domain"
	"github.com/alvisk/encode-spoonOS-sub000/internal/core/ports"
	"github.com/alvisk/encode-spoonOS-sub000/internal/metrics"

	"github.com/rs/zerolog"
)

// NeoRPC implements ports.NeoClient over Neo N3 JSON-RPC.
type NeoRPC struct {
	endpoint   string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewNeoRPC creates a Neo N3 JSON-RPC client.
func NewNeoRPC(endpoint string, httpClient HTTPClient, log zerolog.Logger) *NeoRPC {
	return &NeoRPC{
		endpoint:   endpoint,
		httpClient: httpClient,
		log:        log,
	}
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rawNeoBalance struct {
	AssetHash string `json:"assethash"`
	Amount    string `json:"amount"`
}

type rawNeoTransfer struct {
	Timestamp       int64  `json:"timestamp"` // milliseconds
	AssetHash       string `json:"assethash"`
	TransferAddress string `json:"transferaddress"`
	Amount          string `json:"amount"`
	TxHash          string `json:"txhash"`
}

// NEP17Balances fetches the NEP-17 balance list for an address.
func (c *NeoRPC) NEP17Balances(ctx context.Context, address string) ([]domain.NeoBalance, error) {
	result, err := c.call(ctx, "getnep17balances", []any{address})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Balance []rawNeoBalance `json:"balance"`
	}
	if err := json.Unmarshal(result, &parsed); err != nil {
		return nil, &ports.UpstreamProtocolError{Payload: err.Error()}
	}

	balances := make([]domain.NeoBalance, 0, len(parsed.Balance))
	for _, b := range parsed.Balance {
		balances = append(balances, domain.NeoBalance{
			AssetHash: b.AssetHash,
			Amount:    b.Amount,
		})
	}
	return balances, nil
}

// NEP17Transfers fetches transfers within the [start, end] window. Neo N3
// RPC expects millisecond timestamps.
func (c *NeoRPC) NEP17Transfers(ctx context.Context, address string, start, end time.Time) (*domain.NeoTransfers, error) {
	result, err := c.call(ctx, "getnep17transfers", []any{address, start.UnixMilli(), end.UnixMilli()})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Sent     []rawNeoTransfer `json:"sent"`
		Received []rawNeoTransfer `json:"received"`
	}
	if err := json.Unmarshal(result, &parsed); err != nil {
		return nil, &ports.UpstreamProtocolError{Payload: err.Error()}
	}

	out := &domain.NeoTransfers{
		Sent:     make([]domain.NeoTransfer, 0, len(parsed.Sent)),
		Received: make([]domain.NeoTransfer, 0, len(parsed.Received)),
	}
	for _, t := range parsed.Sent {
		out.Sent = append(out.Sent, toNeoTransfer(t))
	}
	for _, t := range parsed.Received {
		out.Received = append(out.Received, toNeoTransfer(t))
	}
	return out, nil
}

func toNeoTransfer(t rawNeoTransfer) domain.NeoTransfer {
	return domain.NeoTransfer{
		TxHash:          t.TxHash,
		AssetHash:       t.AssetHash,
		Amount:          t.Amount,
		TransferAddress: t.TransferAddress,
		Timestamp:       time.UnixMilli(t.Timestamp).UTC(),
	}
}

// call issues one JSON-RPC 2.0 request.
func (c *NeoRPC) call(ctx context.Context, method string, params []any) (json.RawMessage, error) {
	payload, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"method":  method,
		"params":  params,
		"id":      1,
	})
	if err != nil {
		return nil, err
	}

	start := time.Now()
	metrics.UpstreamCallsTotal.WithLabelValues("neo-rpc", method).Inc()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("neo-rpc", method, "transport").Inc()
		return nil, err
	}
	defer resp.Body.Close()

	metrics.UpstreamLatency.WithLabelValues("neo-rpc", method).Observe(time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.UpstreamErrorsTotal.WithLabelValues("neo-rpc", method, "http").Inc()
		return nil, &ports.UpstreamHTTPError{Status: resp.StatusCode}
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("neo-rpc", method, "decode").Inc()
		return nil, &ports.UpstreamProtocolError{Payload: err.Error()}
	}

	if rpcResp.Error != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("neo-rpc", method, "protocol").Inc()
		c.log.Warn().
			Str("method", method).
			Int("code", rpcResp.Error.Code).
			Str("message", rpcResp.Error.Message).
			Msg("neo rpc error envelope")
		payload, _ := json.Marshal(rpcResp.Error)
		return nil, &ports.UpstreamProtocolError{Payload: string(payload)}
	}

	return rpcResp.Result, nil
}
