package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/alvisk/encode-spoonOS-sub000/internal/core/domain"
	"github.com/alvisk/encode-spoonOS-sub000/internal/core/ports"
	"github.com/alvisk/encode-spoonOS-sub000/pkg/apperror"
)

// neoActivityLookback bounds the Neo transfer window. The explorer endpoints
// page instead, so EVM has no explicit time bound.
const neoActivityLookback = 30 * 24 * time.Hour

type activityService struct {
	explorer ports.ExplorerClient
	neo      ports.NeoClient
	pricing  ports.PricingProvider
	cache    ports.WalletCache // nil disables caching
	cacheTTL time.Duration
	log      zerolog.Logger
}

// NewActivityService creates the live transfer-history fetcher. cache may be
// nil, in which case every request recomputes from upstream.
func NewActivityService(
	explorer ports.ExplorerClient,
	neo ports.NeoClient,
	pricing ports.PricingProvider,
	cache ports.WalletCache,
	cacheTTL time.Duration,
	log zerolog.Logger,
) ports.ActivityService {
	return &activityService{
		explorer: explorer,
		neo:      neo,
		pricing:  pricing,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log.With().Str("service", "activity").Logger(),
	}
}

// RecentActivity fetches raw transfer history from the matching chain and
// returns it deduplicated, newest first.
func (s *activityService) RecentActivity(ctx context.Context, address string) ([]domain.ActivityRecord, error) {
	cacheKey := "activity:" + address
	if cached := s.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	chain := domain.ClassifyAddress(address)

	var (
		records []domain.ActivityRecord
		err     error
	)
	switch chain {
	case domain.ChainEthereum:
		records, err = s.evmActivity(ctx, address)
	default:
		records, err = s.neoActivity(ctx, address)
	}
	if err != nil {
		s.log.Error().Err(err).Str("address", address).Str("chain", string(chain)).Msg("activity fetch failed")
		return nil, apperror.ErrLiveActivityFailed(err)
	}

	records = domain.NormalizeActivity(records)
	s.toCache(ctx, cacheKey, records)

	s.log.Info().
		Str("address", address).
		Str("chain", string(chain)).
		Int("records", len(records)).
		Msg("activity fetched")
	return records, nil
}

// evmActivity merges native transactions and token transfers. The two lists
// are independent calls, issued concurrently and awaited jointly: either
// failure fails the request.
func (s *activityService) evmActivity(ctx context.Context, address string) ([]domain.ActivityRecord, error) {
	var (
		wg          sync.WaitGroup
		txs         []domain.EvmTransaction
		transfers   []domain.EvmTokenTransfer
		txErr       error
		transferErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		txs, txErr = s.explorer.Transactions(ctx, address)
	}()
	go func() {
		defer wg.Done()
		transfers, transferErr = s.explorer.TokenTransfers(ctx, address)
	}()
	wg.Wait()
	if txErr != nil {
		return nil, fmt.Errorf("transactions: %w", txErr)
	}
	if transferErr != nil {
		return nil, fmt.Errorf("token transfers: %w", transferErr)
	}

	ethPrice := s.pricing.NativeUSD("ETH")
	records := make([]domain.ActivityRecord, 0, len(txs)+len(transfers))
	for i, tx := range txs {
		if tx.Failed {
			continue
		}
		dir := evmDirection(tx.To, address)
		amount := domain.FromBaseUnits(tx.ValueWei, 18)
		records = append(records, domain.ActivityRecord{
			ID:        domain.ActivityID(tx.Hash, dir, "ETH", i),
			TxHash:    tx.Hash,
			Direction: dir,
			Token:     "ETH",
			Amount:    amount,
			USDValue:  amount * ethPrice,
			Chain:     domain.ChainEthereum,
			Timestamp: tx.Timestamp,
		})
	}
	for i, t := range transfers {
		dir := evmDirection(t.To, address)
		amount := domain.FromBaseUnits(t.Value, t.Decimals)
		symbol := t.Symbol
		if symbol == "" {
			symbol = "???"
		}
		records = append(records, domain.ActivityRecord{
			ID:        domain.ActivityID(t.Hash, dir, symbol, i),
			TxHash:    t.Hash,
			Direction: dir,
			Token:     symbol,
			Amount:    amount,
			USDValue:  amount,
			Chain:     domain.ChainEthereum,
			Timestamp: t.Timestamp,
		})
	}
	return records, nil
}

// neoActivity flattens the sent and received lists of the bounded transfer
// window into directional records.
func (s *activityService) neoActivity(ctx context.Context, address string) ([]domain.ActivityRecord, error) {
	end := time.Now().UTC()
	start := end.Add(-neoActivityLookback)
	transfers, err := s.neo.NEP17Transfers(ctx, address, start, end)
	if err != nil {
		return nil, fmt.Errorf("nep17 transfers: %w", err)
	}

	records := make([]domain.ActivityRecord, 0, len(transfers.Sent)+len(transfers.Received))
	for i, t := range transfers.Sent {
		records = append(records, neoRecord(t, domain.DirectionSend, i))
	}
	for i, t := range transfers.Received {
		records = append(records, neoRecord(t, domain.DirectionReceive, i))
	}
	return records, nil
}

func neoRecord(t domain.NeoTransfer, dir domain.Direction, index int) domain.ActivityRecord {
	symbol := domain.NeoAssetSymbol(t.AssetHash)
	amount := domain.FromBaseUnits(t.Amount, domain.NeoAssetDecimals)
	return domain.ActivityRecord{
		ID:        domain.ActivityID(t.TxHash, dir, symbol, index),
		TxHash:    t.TxHash,
		Direction: dir,
		Token:     symbol,
		Amount:    amount,
		USDValue:  amount,
		Chain:     domain.ChainNeoN3,
		Timestamp: t.Timestamp,
	}
}

// evmDirection compares the transfer recipient with the queried address,
// case-insensitive since explorers mix checksum casing.
func evmDirection(to, address string) domain.Direction {
	if strings.EqualFold(to, address) {
		return domain.DirectionReceive
	}
	return domain.DirectionSend
}

func (s *activityService) fromCache(ctx context.Context, key string) []domain.ActivityRecord {
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
	var records []domain.ActivityRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache entry corrupt, ignoring")
		return nil
	}
	return records
}

func (s *activityService) toCache(ctx context.Context, key string, records []domain.ActivityRecord) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}
