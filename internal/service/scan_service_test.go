package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alvisk/encode-spoonOS-sub000/internal/core/domain"
	"github.com/alvisk/encode-spoonOS-sub000/internal/core/ports/mocks"
	"github.com/alvisk/encode-spoonOS-sub000/pkg/apperror"
	"github.com/alvisk/encode-spoonOS-sub000/pkg/logger"
)

const (
	evmAddr = "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb1"
	neoAddr = "NikhQp1aAD1YFCiwknhM5LQQebj4464bCJ"
)

func TestScanService_EvmScan(t *testing.T) {
	ctrl := gomock.NewController(t)
	explorer := mocks.NewMockExplorerClient(ctrl)
	neo := mocks.NewMockNeoClient(ctrl)

	explorer.EXPECT().NativeBalance(gomock.Any(), evmAddr).Return("2000000000000000000", nil)
	explorer.EXPECT().TokenTransfers(gomock.Any(), evmAddr).Return([]domain.EvmTokenTransfer{
		{Hash: "0xa1", Contract: "0xusdc", Symbol: "USDC", Value: "50000000", Decimals: 6},
		{Hash: "0xa2", Contract: "0xusdc", Symbol: "USDC", Value: "1000000", Decimals: 6},
		{Hash: "0xa3", Contract: "0xdai", Symbol: "DAI", Value: "3000000000000000000", Decimals: 18},
	}, nil)
	explorer.EXPECT().TokenBalance(gomock.Any(), "0xusdc", evmAddr).Return("150000000", nil)
	explorer.EXPECT().TokenBalance(gomock.Any(), "0xdai", evmAddr).Return("7000000000000000000", nil)

	svc := NewScanService(explorer, neo, NewFixedPricing(), nil, 0, logger.Nop())
	snapshot, err := svc.Scan(context.Background(), evmAddr)
	require.NoError(t, err)

	// 2 ETH at the fixed price plus 150 USDC and 7 DAI at face value.
	assert.InDelta(t, 2*3400.0+150+7, snapshot.TotalValue, 1e-9)
	assert.Equal(t, evmAddr, snapshot.Address)
	assert.Equal(t, []domain.Chain{domain.ChainEthereum}, snapshot.Chains)
	assert.Equal(t, []string{"live-scan"}, snapshot.Tags)
	assert.Equal(t, domain.RiskScore(snapshot.TotalValue), snapshot.RiskScore)
	assert.WithinDuration(t, time.Now(), snapshot.LastActive, 5*time.Second)

	require.Len(t, snapshot.Balances, 3)
	assert.Equal(t, domain.AssetBalance{Symbol: "ETH", Amount: 2}, snapshot.Balances[0])
	assert.Equal(t, domain.AssetBalance{Symbol: "USDC", Amount: 150}, snapshot.Balances[1])
	assert.Equal(t, domain.AssetBalance{Symbol: "DAI", Amount: 7}, snapshot.Balances[2])
}

func TestScanService_EvmTokenLookupFailureSkipsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	explorer := mocks.NewMockExplorerClient(ctrl)

	explorer.EXPECT().NativeBalance(gomock.Any(), evmAddr).Return("1000000000000000000", nil)
	explorer.EXPECT().TokenTransfers(gomock.Any(), evmAddr).Return([]domain.EvmTokenTransfer{
		{Hash: "0xa1", Contract: "0xbad", Symbol: "BAD", Value: "1", Decimals: 18},
		{Hash: "0xa2", Contract: "0xzero", Symbol: "ZRO", Value: "1", Decimals: 18},
	}, nil)
	explorer.EXPECT().TokenBalance(gomock.Any(), "0xbad", evmAddr).Return("", errors.New("rate limited"))
	explorer.EXPECT().TokenBalance(gomock.Any(), "0xzero", evmAddr).Return("0", nil)

	svc := NewScanService(explorer, mocks.NewMockNeoClient(ctrl), NewFixedPricing(), nil, 0, logger.Nop())
	snapshot, err := svc.Scan(context.Background(), evmAddr)
	require.NoError(t, err)

	// Failed and zero-balance tokens are dropped, the scan itself succeeds.
	assert.InDelta(t, 3400.0, snapshot.TotalValue, 1e-9)
	require.Len(t, snapshot.Balances, 1)
	assert.Equal(t, "ETH", snapshot.Balances[0].Symbol)
}

func TestScanService_NeoScan(t *testing.T) {
	ctrl := gomock.NewController(t)
	neo := mocks.NewMockNeoClient(ctrl)

	neo.EXPECT().NEP17Balances(gomock.Any(), neoAddr).Return([]domain.NeoBalance{
		{AssetHash: "0xef4073a0f2b305a38ec4050e4d3d28bc40ea63f5", Amount: "120000000000"},
		{AssetHash: "0xd2a4cff31913016155e38e474a2c06d08be276cf", Amount: "2550000000"},
		{AssetHash: "0xdead", Amount: "0"},
	}, nil)

	svc := NewScanService(mocks.NewMockExplorerClient(ctrl), neo, NewFixedPricing(), nil, 0, logger.Nop())
	snapshot, err := svc.Scan(context.Background(), neoAddr)
	require.NoError(t, err)

	assert.Equal(t, []domain.Chain{domain.ChainNeoN3}, snapshot.Chains)
	assert.InDelta(t, 1200+25.5, snapshot.TotalValue, 1e-9)
	require.Len(t, snapshot.Balances, 2)
	assert.Equal(t, domain.AssetBalance{Symbol: "NEO", Amount: 1200}, snapshot.Balances[0])
	assert.Equal(t, domain.AssetBalance{Symbol: "GAS", Amount: 25.5}, snapshot.Balances[1])
}

func TestScanService_UpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	explorer := mocks.NewMockExplorerClient(ctrl)

	explorer.EXPECT().NativeBalance(gomock.Any(), evmAddr).Return("", errors.New("connection refused"))
	explorer.EXPECT().TokenTransfers(gomock.Any(), evmAddr).Return(nil, nil)

	svc := NewScanService(explorer, mocks.NewMockNeoClient(ctrl), NewFixedPricing(), nil, 0, logger.Nop())
	_, err := svc.Scan(context.Background(), evmAddr)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "live_scan_failed", appErr.Kind)
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPStatus)
}

func TestScanService_CacheHitSkipsUpstream(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockWalletCache(ctrl)

	stored := domain.WalletSnapshot{Address: evmAddr, TotalValue: 42, RiskScore: 71}
	raw, err := json.Marshal(stored)
	require.NoError(t, err)
	cache.EXPECT().Get(gomock.Any(), "snapshot:"+evmAddr).Return(raw, nil)

	// No explorer expectations: a cache hit must not touch upstream.
	svc := NewScanService(mocks.NewMockExplorerClient(ctrl), mocks.NewMockNeoClient(ctrl), NewFixedPricing(), cache, time.Minute, logger.Nop())
	snapshot, err := svc.Scan(context.Background(), evmAddr)
	require.NoError(t, err)
	assert.Equal(t, stored.TotalValue, snapshot.TotalValue)
	assert.Equal(t, stored.RiskScore, snapshot.RiskScore)
}

func TestScanService_CacheMissPopulates(t *testing.T) {
	ctrl := gomock.NewController(t)
	explorer := mocks.NewMockExplorerClient(ctrl)
	cache := mocks.NewMockWalletCache(ctrl)

	cache.EXPECT().Get(gomock.Any(), "snapshot:"+evmAddr).Return(nil, nil)
	explorer.EXPECT().NativeBalance(gomock.Any(), evmAddr).Return("1000000000000000000", nil)
	explorer.EXPECT().TokenTransfers(gomock.Any(), evmAddr).Return(nil, nil)
	cache.EXPECT().Set(gomock.Any(), "snapshot:"+evmAddr, gomock.Any(), time.Minute).Return(nil)

	svc := NewScanService(explorer, mocks.NewMockNeoClient(ctrl), NewFixedPricing(), cache, time.Minute, logger.Nop())
	snapshot, err := svc.Scan(context.Background(), evmAddr)
	require.NoError(t, err)
	assert.InDelta(t, 3400.0, snapshot.TotalValue, 1e-9)
}

func TestScanService_CacheErrorsAreNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	explorer := mocks.NewMockExplorerClient(ctrl)
	cache := mocks.NewMockWalletCache(ctrl)

	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))
	explorer.EXPECT().NativeBalance(gomock.Any(), evmAddr).Return("1000000000000000000", nil)
	explorer.EXPECT().TokenTransfers(gomock.Any(), evmAddr).Return(nil, nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	svc := NewScanService(explorer, mocks.NewMockNeoClient(ctrl), NewFixedPricing(), cache, time.Minute, logger.Nop())
	snapshot, err := svc.Scan(context.Background(), evmAddr)
	require.NoError(t, err)
	assert.NotNil(t, snapshot)
}

func TestShortAddress(t *testing.T) {
	assert.Equal(t, "0x742d...bEb1", shortAddress(evmAddr))
	assert.Equal(t, "short", shortAddress("short"))
}
