package service

import (
	"strings"
	"time"

	"github.com/alvisk/encode-spoonOS-sub000/internal/core/domain"
	"github.com/alvisk/encode-spoonOS-sub000/internal/core/ports"
)

// demoData holds the hardcoded showcase dataset. Built once at startup with
// timestamps anchored to boot time so the data always reads as recent; the
// values never change afterwards.
type demoData struct {
	wallets []domain.WalletSnapshot
	alerts  []domain.Alert
	summary domain.Summary
}

// NewDemoData builds the static demo dataset.
func NewDemoData() ports.DemoData {
	now := time.Now().UTC()
	wallets := []domain.WalletSnapshot{
		{
			Address:    "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb1",
			Label:      "DeFi Whale",
			TotalValue: 2847300,
			RiskScore:  domain.RiskScore(2847300),
			Chains:     []domain.Chain{domain.ChainEthereum},
			LastActive: now.Add(-42 * time.Minute),
			Tags:       []string{"high-value", "defi"},
			Balances: []domain.AssetBalance{
				{Symbol: "ETH", Amount: 612.4},
				{Symbol: "USDC", Amount: 765140},
			},
		},
		{
			Address:    "0x9f8E2a1b5C44d07A6f3b21e85c09D8a4B1f6E3c7",
			Label:      "Treasury Multisig",
			TotalValue: 510200,
			RiskScore:  domain.RiskScore(510200),
			Chains:     []domain.Chain{domain.ChainEthereum},
			LastActive: now.Add(-6 * time.Hour),
			Tags:       []string{"multisig", "treasury"},
			Balances: []domain.AssetBalance{
				{Symbol: "ETH", Amount: 150.02},
			},
		},
		{
			Address:    "NikhQp1aAD1YFCiwknhM5LQQebj4464bCJ",
			Label:      "Neo Validator",
			TotalValue: 18240,
			RiskScore:  domain.RiskScore(18240),
			Chains:     []domain.Chain{domain.ChainNeoN3},
			LastActive: now.Add(-3 * time.Hour),
			Tags:       []string{"validator"},
			Balances: []domain.AssetBalance{
				{Symbol: "NEO", Amount: 1200},
				{Symbol: "GAS", Amount: 17040},
			},
		},
		{
			Address:    "0x1C7b44a5F3d09E85b2aD6f0e91c38B74d2A5c6F0",
			Label:      "Compromised Hot Wallet",
			TotalValue: 12.83,
			RiskScore:  domain.RiskScore(12.83),
			Chains:     []domain.Chain{domain.ChainEthereum},
			LastActive: now.Add(-8 * time.Minute),
			Tags:       []string{"flagged", "drained"},
			Balances: []domain.AssetBalance{
				{Symbol: "ETH", Amount: 0.0037},
			},
		},
	}

	alerts := []domain.Alert{
		{
			ID:            "5f1c9a4e-8c6a-4f02-b7d1-2e94a0c3d8b1",
			WalletAddress: wallets[3].Address,
			Severity:      domain.SeverityCritical,
			Title:         "Drain pattern detected",
			Description:   "Outgoing transfers to a known sweeper contract within the last hour.",
			Timestamp:     now.Add(-9 * time.Minute),
		},
		{
			ID:            "c3a07d12-41bb-45e9-9c64-f70d5e8b2a93",
			WalletAddress: wallets[0].Address,
			Severity:      domain.SeverityWarning,
			Title:         "Unlimited approval granted",
			Description:   "ERC-20 allowance of max uint256 granted to an unverified contract.",
			Timestamp:     now.Add(-2 * time.Hour),
		},
		{
			ID:            "9b2e6f58-0d3c-4a71-8e15-6c48b1d97f02",
			WalletAddress: wallets[2].Address,
			Severity:      domain.SeverityInfo,
			Title:         "New counterparty",
			Description:   "First NEP-17 transfer involving a previously unseen address.",
			Timestamp:     now.Add(-26 * time.Hour),
			Acknowledged:  true,
		},
	}

	var totalValue float64
	var riskSum int
	activeAlerts := 0
	for _, w := range wallets {
		totalValue += w.TotalValue
		riskSum += w.RiskScore
	}
	for _, a := range alerts {
		if !a.Acknowledged {
			activeAlerts++
		}
	}

	return &demoData{
		wallets: wallets,
		alerts:  alerts,
		summary: domain.Summary{
			WalletsMonitored: len(wallets),
			ActiveAlerts:     activeAlerts,
			ContractsScanned: 128,
			TotalValueUSD:    totalValue,
			AverageRiskScore: riskSum / len(wallets),
		},
	}
}

func (d *demoData) Wallets() []domain.WalletSnapshot {
	return d.wallets
}

// WalletByAddress returns the matching demo snapshot or nil. EVM addresses
// compare case-insensitively, Neo addresses are case-sensitive base58.
func (d *demoData) WalletByAddress(address string) *domain.WalletSnapshot {
	for i := range d.wallets {
		w := &d.wallets[i]
		if w.Address == address {
			return w
		}
		if domain.ClassifyAddress(address) == domain.ChainEthereum && strings.EqualFold(w.Address, address) {
			return w
		}
	}
	return nil
}

func (d *demoData) Alerts() []domain.Alert {
	return d.alerts
}

func (d *demoData) Summary() domain.Summary {
	return d.summary
}
