package chain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/alvisk/encode-spoonOS-sub000/internal/core/domain"
	"github.com/alvisk/encode-spoonOS-sub000/internal/core/ports"
	"github.com/alvisk/encode-spoonOS-sub000/internal/metrics"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// explorerPageSize bounds every list call to the most recent N entries.
const explorerPageSize = 50

// ExplorerClient implements ports.ExplorerClient against an Etherscan-style
// block explorer REST API. Every call is a single round trip with no retry
// and no caching.
type ExplorerClient struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewExplorerClient creates an explorer client. apiKey may be empty; it only
// raises upstream rate limits.
func NewExplorerClient(baseURL, apiKey string, httpClient HTTPClient, log zerolog.Logger) *ExplorerClient {
	return &ExplorerClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		log:        log,
	}
}

// explorerEnvelope is the Etherscan-style response wrapper. Result shape
// depends on the action: a bare integer string for balance lookups, an array
// for list actions.
type explorerEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

type rawEvmTx struct {
	Hash      string `json:"hash"`
	From      string `json:"from"`
	To        string `json:"to"`
	Value     string `json:"value"`
	TimeStamp string `json:"timeStamp"`
	IsError   string `json:"isError"`
}

type rawTokenTx struct {
	Hash            string `json:"hash"`
	From            string `json:"from"`
	To              string `json:"to"`
	ContractAddress string `json:"contractAddress"`
	TokenSymbol     string `json:"tokenSymbol"`
	TokenDecimal    string `json:"tokenDecimal"`
	Value           string `json:"value"`
	TimeStamp       string `json:"timeStamp"`
}

// NativeBalance returns the native-asset balance in wei.
func (c *ExplorerClient) NativeBalance(ctx context.Context, address string) (string, error) {
	result, err := c.request(ctx, "balance", url.Values{
		"module":  {"account"},
		"action":  {"balance"},
		"address": {address},
		"tag":     {"latest"},
	})
	if err != nil {
		return "", err
	}

	var balance string
	if err := json.Unmarshal(result, &balance); err != nil {
		return "", &ports.UpstreamProtocolError{Payload: string(result)}
	}
	return balance, nil
}

// Transactions returns the most recent native transactions, newest first.
func (c *ExplorerClient) Transactions(ctx context.Context, address string) ([]domain.EvmTransaction, error) {
	result, err := c.request(ctx, "txlist", url.Values{
		"module":     {"account"},
		"action":     {"txlist"},
		"address":    {address},
		"page":       {"1"},
		"offset":     {strconv.Itoa(explorerPageSize)},
		"sort":       {"desc"},
		"startblock": {"0"},
		"endblock":   {"99999999"},
	})
	if err != nil {
		return nil, err
	}

	var raw []rawEvmTx
	if err := json.Unmarshal(result, &raw); err != nil {
		// "No transactions found" comes back with a non-array result.
		return nil, nil
	}

	txs := make([]domain.EvmTransaction, 0, len(raw))
	for _, tx := range raw {
		txs = append(txs, domain.EvmTransaction{
			Hash:      tx.Hash,
			From:      tx.From,
			To:        tx.To,
			ValueWei:  tx.Value,
			Timestamp: parseUnixSeconds(tx.TimeStamp),
			Failed:    tx.IsError == "1",
		})
	}
	return txs, nil
}

// TokenTransfers returns the most recent ERC-20 transfers, newest first.
func (c *ExplorerClient) TokenTransfers(ctx context.Context, address string) ([]domain.EvmTokenTransfer, error) {
	result, err := c.request(ctx, "tokentx", url.Values{
		"module":  {"account"},
		"action":  {"tokentx"},
		"address": {address},
		"page":    {"1"},
		"offset":  {strconv.Itoa(explorerPageSize)},
		"sort":    {"desc"},
	})
	if err != nil {
		return nil, err
	}

	var raw []rawTokenTx
	if err := json.Unmarshal(result, &raw); err != nil {
		return nil, nil
	}

	transfers := make([]domain.EvmTokenTransfer, 0, len(raw))
	for _, tx := range raw {
		decimals := 18
		if d, err := strconv.Atoi(tx.TokenDecimal); err == nil && d >= 0 {
			decimals = d
		}
		transfers = append(transfers, domain.EvmTokenTransfer{
			Hash:      tx.Hash,
			From:      tx.From,
			To:        tx.To,
			Contract:  tx.ContractAddress,
			Symbol:    tx.TokenSymbol,
			Value:     tx.Value,
			Decimals:  decimals,
			Timestamp: parseUnixSeconds(tx.TimeStamp),
		})
	}
	return transfers, nil
}

// TokenBalance returns the current balance of one token contract in base
// units.
func (c *ExplorerClient) TokenBalance(ctx context.Context, contract, address string) (string, error) {
	result, err := c.request(ctx, "tokenbalance", url.Values{
		"module":          {"account"},
		"action":          {"tokenbalance"},
		"contractaddress": {contract},
		"address":         {address},
		"tag":             {"latest"},
	})
	if err != nil {
		return "", err
	}

	var balance string
	if err := json.Unmarshal(result, &balance); err != nil {
		return "", &ports.UpstreamProtocolError{Payload: string(result)}
	}
	return balance, nil
}

// request issues one explorer call and unwraps the envelope.
func (c *ExplorerClient) request(ctx context.Context, operation string, params url.Values) (json.RawMessage, error) {
	if c.apiKey != "" {
		params.Set("apikey", c.apiKey)
	}

	start := time.Now()
	metrics.UpstreamCallsTotal.WithLabelValues("explorer", operation).Inc()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("User-Agent", "WalletGuardian/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("explorer", operation, "transport").Inc()
		return nil, err
	}
	defer resp.Body.Close()

	metrics.UpstreamLatency.WithLabelValues("explorer", operation).Observe(time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.UpstreamErrorsTotal.WithLabelValues("explorer", operation, "http").Inc()
		return nil, &ports.UpstreamHTTPError{Status: resp.StatusCode}
	}

	var env explorerEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("explorer", operation, "decode").Inc()
		return nil, &ports.UpstreamProtocolError{Payload: err.Error()}
	}

	// Empty result sets still report status "0"; only treat other envelope
	// errors as protocol failures.
	if env.Status == "0" && env.Message != "No transactions found" {
		metrics.UpstreamErrorsTotal.WithLabelValues("explorer", operation, "protocol").Inc()
		c.log.Warn().
			Str("operation", operation).
			Str("message", env.Message).
			Msg("explorer error envelope")
		return nil, &ports.UpstreamProtocolError{Payload: env.Message}
	}

	return env.Result, nil
}

func parseUnixSeconds(s string) time.Time {
	sec, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}
