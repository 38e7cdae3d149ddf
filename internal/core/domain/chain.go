package domain

import (
	"strings"
	"time"
)

// Per-chain transfer records. Each chain adapter parses its own upstream wire
// format into these typed variants at the boundary; aggregation code never
// sees raw explorer or JSON-RPC shapes.

// EvmTransaction is a native-asset transaction from the explorer txlist.
type EvmTransaction struct {
	Hash      string
	From      string
	To        string
	ValueWei  string // integer string, 18 decimals
	Timestamp time.Time
	Failed    bool // isError flag from the explorer
}

// EvmTokenTransfer is an ERC-20 transfer from the explorer tokentx list.
type EvmTokenTransfer struct {
	Hash      string
	From      string
	To        string
	Contract  string
	Symbol    string
	Value     string // integer string, token base units
	Decimals  int    // per-transfer reported, 18 when absent or unparseable
	Timestamp time.Time
}

// NeoBalance is one entry from getnep17balances.
type NeoBalance struct {
	AssetHash string
	Amount    string // integer string, base units
}

// NeoTransfer is one entry from getnep17transfers.
type NeoTransfer struct {
	TxHash          string
	AssetHash       string
	Amount          string // integer string, base units
	TransferAddress string
	Timestamp       time.Time
}

// NeoTransfers holds the two raw lists getnep17transfers returns.
type NeoTransfers struct {
	Sent     []NeoTransfer
	Received []NeoTransfer
}

// neoAssetSymbols maps well-known NEP-17 asset hashes to their symbols.
// Both NEO and GAS use an 8-decimal divisor in display conversion.
var neoAssetSymbols = map[string]string{
	"0xef4073a0f2b305a38ec4050e4d3d28bc40ea63f5": "NEO",
	"0xd2a4cff31913016155e38e474a2c06d08be276cf": "GAS",
}

// NeoAssetDecimals is the fixed divisor applied to raw NEP-17 amounts.
const NeoAssetDecimals = 8

// NeoAssetSymbol resolves a NEP-17 asset hash to its symbol, falling back to
// the raw hash string for unknown assets.
func NeoAssetSymbol(assetHash string) string {
	if sym, ok := neoAssetSymbols[normalizeAssetHash(assetHash)]; ok {
		return sym
	}
	return assetHash
}

func normalizeAssetHash(hash string) string {
	lower := strings.ToLower(hash)
	if strings.HasPrefix(lower, "0x") {
		return lower
	}
	return "0x" + lower
}
