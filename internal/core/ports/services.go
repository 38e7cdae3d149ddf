package ports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/alvisk/encode-spoonOS-sub000/internal/core/domain"
)

// --- Service Ports (Business Logic) ---

// ScanService performs a live balance scan and produces a wallet snapshot.
type ScanService interface {
	Scan(ctx context.Context, address string) (*domain.WalletSnapshot, error)
}

// ActivityService fetches and normalizes recent transfer history.
type ActivityService interface {
	RecentActivity(ctx context.Context, address string) ([]domain.ActivityRecord, error)
}

// DemoData serves the hardcoded demo dataset. All values live in memory and
// never change at runtime.
type DemoData interface {
	Wallets() []domain.WalletSnapshot
	WalletByAddress(address string) *domain.WalletSnapshot
	Alerts() []domain.Alert
	Summary() domain.Summary
}

// AgentResult is an upstream agent response relayed to the client: the
// status code and an already-parsed JSON body.
type AgentResult struct {
	Status int
	Body   json.RawMessage
}

// AgentGateway forwards requests to the hosted SpoonOS agent. Invoke relays
// the client body plus an optional x402 payment header verbatim; the returned
// error covers only transport failure, upstream error statuses come back as
// an AgentResult.
type AgentGateway interface {
	Invoke(ctx context.Context, body []byte, paymentHeader string) (*AgentResult, error)
}

// VoiceGateway forwards announcements to the agent's voice/TTS sub-service.
type VoiceGateway interface {
	Announce(ctx context.Context, req domain.VoiceAnnouncement) (*AgentResult, error)
	Status(ctx context.Context) (*AgentResult, error)
}

// PricingProvider supplies nominal USD prices for native assets. The default
// implementation is a fixed constant; injected so valuation can be made real
// without touching aggregation logic.
type PricingProvider interface {
	NativeUSD(symbol string) float64
}

// WalletCache is a short-TTL cache of computed responses keyed by operation
// and address. Get returns nil, nil on a miss. A nil WalletCache means
// caching is disabled and every request recomputes from upstream.
type WalletCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
