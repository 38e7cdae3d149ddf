package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/alvisk/encode-spoonOS-sub000/internal/core/domain"
	"github.com/alvisk/encode-spoonOS-sub000/internal/core/ports"
	"github.com/alvisk/encode-spoonOS-sub000/internal/metrics"
	"github.com/alvisk/encode-spoonOS-sub000/pkg/apperror"
)

type scanService struct {
	explorer ports.ExplorerClient
	neo      ports.NeoClient
	pricing  ports.PricingProvider
	cache    ports.WalletCache // nil disables caching
	cacheTTL time.Duration
	log      zerolog.Logger
}

// NewScanService creates the live balance scanner. cache may be nil, in which
// case every scan recomputes from upstream.
func NewScanService(
	explorer ports.ExplorerClient,
	neo ports.NeoClient,
	pricing ports.PricingProvider,
	cache ports.WalletCache,
	cacheTTL time.Duration,
	log zerolog.Logger,
) ports.ScanService {
	return &scanService{
		explorer: explorer,
		neo:      neo,
		pricing:  pricing,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log.With().Str("service", "scan").Logger(),
	}
}

// Scan classifies the address, fetches live balances from the matching chain
// and derives a snapshot. Any upstream failure aborts the whole scan.
func (s *scanService) Scan(ctx context.Context, address string) (*domain.WalletSnapshot, error) {
	cacheKey := "snapshot:" + address
	if cached := s.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	chain := domain.ClassifyAddress(address)

	var (
		total    float64
		balances []domain.AssetBalance
		err      error
	)
	switch chain {
	case domain.ChainEthereum:
		total, balances, err = s.scanEvm(ctx, address)
	default:
		total, balances, err = s.scanNeo(ctx, address)
	}
	if err != nil {
		metrics.ScansTotal.WithLabelValues(string(chain), "error").Inc()
		s.log.Error().Err(err).Str("address", address).Str("chain", string(chain)).Msg("live scan failed")
		return nil, apperror.ErrLiveScanFailed(err)
	}
	metrics.ScansTotal.WithLabelValues(string(chain), "success").Inc()

	snapshot := &domain.WalletSnapshot{
		Address:    address,
		Label:      "Live Scan " + shortAddress(address),
		TotalValue: total,
		RiskScore:  domain.RiskScore(total),
		Chains:     []domain.Chain{chain},
		LastActive: time.Now().UTC(),
		Tags:       []string{"live-scan"},
		Balances:   balances,
	}
	s.toCache(ctx, cacheKey, snapshot)

	s.log.Info().
		Str("address", address).
		Str("chain", string(chain)).
		Float64("total_value", total).
		Int("risk_score", snapshot.RiskScore).
		Msg("wallet scanned")
	return snapshot, nil
}

// scanEvm values the native balance at the fixed ETH price and every held
// token at face amount. The native balance and the transfer history used for
// token discovery are independent calls, issued concurrently.
func (s *scanService) scanEvm(ctx context.Context, address string) (float64, []domain.AssetBalance, error) {
	var (
		wg          sync.WaitGroup
		nativeWei   string
		transfers   []domain.EvmTokenTransfer
		nativeErr   error
		transferErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		nativeWei, nativeErr = s.explorer.NativeBalance(ctx, address)
	}()
	go func() {
		defer wg.Done()
		transfers, transferErr = s.explorer.TokenTransfers(ctx, address)
	}()
	wg.Wait()
	if nativeErr != nil {
		return 0, nil, fmt.Errorf("native balance: %w", nativeErr)
	}
	if transferErr != nil {
		return 0, nil, fmt.Errorf("token transfers: %w", transferErr)
	}

	native := domain.FromBaseUnits(nativeWei, 18)
	total := native * s.pricing.NativeUSD("ETH")

	var balances []domain.AssetBalance
	if native > 0 {
		balances = append(balances, domain.AssetBalance{Symbol: "ETH", Amount: native})
	}

	// Token contracts are discovered from transfer history, first appearance
	// order preserved. A failed per-token balance lookup skips that token
	// rather than failing the scan.
	type tokenInfo struct {
		symbol   string
		decimals int
	}
	seen := make(map[string]tokenInfo)
	var order []string
	for _, t := range transfers {
		if t.Contract == "" {
			continue
		}
		if _, ok := seen[t.Contract]; ok {
			continue
		}
		seen[t.Contract] = tokenInfo{symbol: t.Symbol, decimals: t.Decimals}
		order = append(order, t.Contract)
	}

	for _, contract := range order {
		info := seen[contract]
		raw, err := s.explorer.TokenBalance(ctx, contract, address)
		if err != nil {
			s.log.Warn().Err(err).Str("contract", contract).Msg("token balance lookup failed, skipping")
			continue
		}
		amount := domain.FromBaseUnits(raw, info.decimals)
		if amount <= 0 {
			continue
		}
		symbol := info.symbol
		if symbol == "" {
			symbol = "???"
		}
		balances = append(balances, domain.AssetBalance{Symbol: symbol, Amount: amount})
		total += amount
	}

	return total, balances, nil
}

// scanNeo sums NEP-17 holdings at face amount using the fixed 8-decimal
// divisor.
func (s *scanService) scanNeo(ctx context.Context, address string) (float64, []domain.AssetBalance, error) {
	entries, err := s.neo.NEP17Balances(ctx, address)
	if err != nil {
		return 0, nil, fmt.Errorf("nep17 balances: %w", err)
	}

	var (
		total    float64
		balances []domain.AssetBalance
	)
	for _, e := range entries {
		amount := domain.FromBaseUnits(e.Amount, domain.NeoAssetDecimals)
		if amount <= 0 {
			continue
		}
		balances = append(balances, domain.AssetBalance{
			Symbol: domain.NeoAssetSymbol(e.AssetHash),
			Amount: amount,
		})
		total += amount
	}
	return total, balances, nil
}

func (s *scanService) fromCache(ctx context.Context, key string) *domain.WalletSnapshot {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		return nil
	}
	if raw == nil {
		return nil
	}
	var snapshot domain.WalletSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache entry corrupt, ignoring")
		return nil
	}
	return &snapshot
}

func (s *scanService) toCache(ctx context.Context, key string, snapshot *domain.WalletSnapshot) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// shortAddress abbreviates an address for display labels.
func shortAddress(address string) string {
	if len(address) <= 12 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
