package service

import (
	"context"
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

func TestActivityService_EvmMergesAndSorts(t *testing.T) {
	ctrl := gomock.NewController(t)
	explorer := mocks.NewMockExplorerClient(ctrl)

	base := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	explorer.EXPECT().Transactions(gomock.Any(), evmAddr).Return([]domain.EvmTransaction{
		{Hash: "0xt1", To: evmAddr, ValueWei: "1000000000000000000", Timestamp: base},
		{Hash: "0xfail", To: evmAddr, ValueWei: "5", Timestamp: base, Failed: true},
		{Hash: "0xt2", To: "0xsomeoneelse", ValueWei: "500000000000000000", Timestamp: base.Add(2 * time.Hour)},
	}, nil)
	explorer.EXPECT().TokenTransfers(gomock.Any(), evmAddr).Return([]domain.EvmTokenTransfer{
		{Hash: "0xt3", To: "0x742D35CC6634C0532925A3B844BC9E7595F0BEB1", Symbol: "USDC", Value: "25000000", Decimals: 6, Timestamp: base.Add(time.Hour)},
	}, nil)

	svc := NewActivityService(explorer, mocks.NewMockNeoClient(ctrl), NewFixedPricing(), nil, 0, logger.Nop())
	records, err := svc.RecentActivity(context.Background(), evmAddr)
	require.NoError(t, err)

	// Failed transaction dropped, remainder newest first.
	require.Len(t, records, 3)
	assert.Equal(t, "0xt2", records[0].TxHash)
	assert.Equal(t, "0xt3", records[1].TxHash)
	assert.Equal(t, "0xt1", records[2].TxHash)

	assert.Equal(t, domain.DirectionSend, records[0].Direction)
	assert.InDelta(t, 0.5*3400, records[0].USDValue, 1e-9)

	// Recipient matching ignores checksum casing.
	assert.Equal(t, domain.DirectionReceive, records[1].Direction)
	assert.Equal(t, "USDC", records[1].Token)
	assert.InDelta(t, 25, records[1].USDValue, 1e-9)

	assert.Equal(t, domain.DirectionReceive, records[2].Direction)
	assert.Equal(t, "ETH", records[2].Token)
	assert.InDelta(t, 3400, records[2].USDValue, 1e-9)
}

func TestActivityService_EvmEitherFailureFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	explorer := mocks.NewMockExplorerClient(ctrl)

	explorer.EXPECT().Transactions(gomock.Any(), evmAddr).Return(nil, nil)
	explorer.EXPECT().TokenTransfers(gomock.Any(), evmAddr).Return(nil, errors.New("explorer down"))

	svc := NewActivityService(explorer, mocks.NewMockNeoClient(ctrl), NewFixedPricing(), nil, 0, logger.Nop())
	_, err := svc.RecentActivity(context.Background(), evmAddr)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "live_activity_failed", appErr.Kind)
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPStatus)
}

func TestActivityService_NeoWindowAndDirections(t *testing.T) {
	ctrl := gomock.NewController(t)
	neo := mocks.NewMockNeoClient(ctrl)

	base := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	gasHash := "0xd2a4cff31913016155e38e474a2c06d08be276cf"
	neo.EXPECT().
		NEP17Transfers(gomock.Any(), neoAddr, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, start, end time.Time) (*domain.NeoTransfers, error) {
			assert.WithinDuration(t, time.Now(), end, 5*time.Second)
			assert.WithinDuration(t, end.Add(-30*24*time.Hour), start, 5*time.Second)
			return &domain.NeoTransfers{
				Sent: []domain.NeoTransfer{
					{TxHash: "0xn1", AssetHash: gasHash, Amount: "150000000", Timestamp: base},
				},
				Received: []domain.NeoTransfer{
					{TxHash: "0xn2", AssetHash: gasHash, Amount: "40000000", Timestamp: base.Add(time.Hour)},
				},
			}, nil
		})

	svc := NewActivityService(mocks.NewMockExplorerClient(ctrl), neo, NewFixedPricing(), nil, 0, logger.Nop())
	records, err := svc.RecentActivity(context.Background(), neoAddr)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "0xn2", records[0].TxHash)
	assert.Equal(t, domain.DirectionReceive, records[0].Direction)
	assert.Equal(t, "GAS", records[0].Token)
	assert.InDelta(t, 0.4, records[0].Amount, 1e-9)
	assert.Equal(t, domain.ChainNeoN3, records[0].Chain)

	assert.Equal(t, domain.DirectionSend, records[1].Direction)
	assert.InDelta(t, 1.5, records[1].Amount, 1e-9)
}

func TestActivityService_DeduplicatesByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	explorer := mocks.NewMockExplorerClient(ctrl)

	base := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	// Same hash twice in the native list at the same index-distinct positions
	// stays, but identical IDs would collapse. Two distinct token transfers in
	// one transaction keep separate indexes.
	explorer.EXPECT().Transactions(gomock.Any(), evmAddr).Return(nil, nil)
	explorer.EXPECT().TokenTransfers(gomock.Any(), evmAddr).Return([]domain.EvmTokenTransfer{
		{Hash: "0xdup", To: evmAddr, Symbol: "USDC", Value: "1000000", Decimals: 6, Timestamp: base},
		{Hash: "0xdup", To: evmAddr, Symbol: "USDC", Value: "1000000", Decimals: 6, Timestamp: base},
	}, nil)

	svc := NewActivityService(explorer, mocks.NewMockNeoClient(ctrl), NewFixedPricing(), nil, 0, logger.Nop())
	records, err := svc.RecentActivity(context.Background(), evmAddr)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.NotEqual(t, records[0].ID, records[1].ID)
}

func TestActivityService_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockWalletCache(ctrl)

	cache.EXPECT().Get(gomock.Any(), "activity:"+evmAddr).
		Return([]byte(`[{"id":"0xa-send-ETH-0","txHash":"0xa","direction":"send","token":"ETH","amount":1,"usdValue":3400,"chain":"ethereum","timestamp":"2026-08-20T12:00:00Z"}]`), nil)

	svc := NewActivityService(mocks.NewMockExplorerClient(ctrl), mocks.NewMockNeoClient(ctrl), NewFixedPricing(), cache, time.Minute, logger.Nop())
	records, err := svc.RecentActivity(context.Background(), evmAddr)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "0xa", records[0].TxHash)
}
