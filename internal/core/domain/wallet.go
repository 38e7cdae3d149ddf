package domain

import (
	"math"
	"regexp"
	"strconv"
	"time"
)

// Chain identifies a supported blockchain.
type Chain string

const (
	ChainEthereum Chain = "ethereum"
	ChainNeoN3    Chain = "neo3"
)

var evmAddressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// ClassifyAddress decides which chain an address belongs to by shape alone:
// a 40-hex-character 0x-prefixed string is EVM, everything else is treated as
// Neo N3. No checksum verification.
func ClassifyAddress(address string) Chain {
	if evmAddressRe.MatchString(address) {
		return ChainEthereum
	}
	return ChainNeoN3
}

// AssetBalance is a single per-asset balance entry in a snapshot.
type AssetBalance struct {
	Symbol string  `json:"symbol"`
	Amount float64 `json:"amount"`
}

// WalletSnapshot is the derived, non-persisted view of a wallet returned to
// clients. Nothing here survives the request; live snapshots are recomputed
// on every call.
type WalletSnapshot struct {
	Address    string         `json:"address"`
	Label      string         `json:"label"`
	TotalValue float64        `json:"totalValue"` // nominal USD
	RiskScore  int            `json:"riskScore"`
	Chains     []Chain        `json:"chains"`
	LastActive time.Time      `json:"lastActive"`
	Tags       []string       `json:"tags"`
	Balances   []AssetBalance `json:"balances"`
}

const (
	riskScoreMin = 5
	riskScoreMax = 95
)

// RiskScore derives the placeholder risk heuristic from a nominal balance:
// lower balance means higher nominal risk. Always within [5, 95].
// This is not a real risk model.
func RiskScore(totalValue float64) int {
	raw := 95 - math.Log10(totalValue+1)*15
	score := int(math.Round(raw))
	if score < riskScoreMin {
		return riskScoreMin
	}
	if score > riskScoreMax {
		return riskScoreMax
	}
	return score
}

// FromBaseUnits converts a raw integer amount string to a display amount
// using the given number of decimals. Returns 0 for unparseable input.
func FromBaseUnits(raw string, decimals int) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v / math.Pow10(decimals)
}
