package ports

import (
	"context"
	"fmt"
	"time"

	"github.com/alvisk/encode-spoonOS-sub000/internal/core/domain"
)

// --- Chain Client Ports ---

// ExplorerClient issues REST calls against an Etherscan-style block explorer
// API for EVM chains. Each call is a single best-effort round trip: no retry,
// no backoff, no caching.
type ExplorerClient interface {
	// NativeBalance returns the native-asset balance in wei (integer string).
	NativeBalance(ctx context.Context, address string) (string, error)
	// Transactions returns the most recent native transactions, bounded to a
	// fixed page size.
	Transactions(ctx context.Context, address string) ([]domain.EvmTransaction, error)
	// TokenTransfers returns the most recent ERC-20 transfers, bounded to a
	// fixed page size.
	TokenTransfers(ctx context.Context, address string) ([]domain.EvmTokenTransfer, error)
	// TokenBalance returns the current balance of one token contract in base
	// units (integer string).
	TokenBalance(ctx context.Context, contract, address string) (string, error)
}

// NeoClient issues JSON-RPC calls against a Neo N3 node.
type NeoClient interface {
	NEP17Balances(ctx context.Context, address string) ([]domain.NeoBalance, error)
	NEP17Transfers(ctx context.Context, address string, start, end time.Time) (*domain.NeoTransfers, error)
}

// --- Typed upstream failures ---

// UpstreamHTTPError reports a non-2xx HTTP response from a collaborator.
type UpstreamHTTPError struct {
	Status int
}

func (e *UpstreamHTTPError) Error() string {
	return fmt.Sprintf("upstream returned http %d", e.Status)
}

// UpstreamProtocolError reports an error envelope embedded in an
// otherwise-successful HTTP response (e.g. a JSON-RPC error field).
type UpstreamProtocolError struct {
	Payload string
}

func (e *UpstreamProtocolError) Error() string {
	return fmt.Sprintf("upstream protocol error: %s", e.Payload)
}
