package domain

import (
	"fmt"
	"sort"
	"time"
)

// Direction is the movement direction of a transfer relative to the queried
// address.
type Direction string

const (
	DirectionSend    Direction = "send"
	DirectionReceive Direction = "receive"
)

// ActivityRecord is one normalized transfer in a wallet's recent history.
// USDValue is approximate: the EVM native asset uses a fixed price constant,
// everything else is valued at face amount.
type ActivityRecord struct {
	ID        string    `json:"id"`
	TxHash    string    `json:"txHash"`
	Direction Direction `json:"direction"`
	Token     string    `json:"token"`
	Amount    float64   `json:"amount"`
	USDValue  float64   `json:"usdValue"`
	Chain     Chain     `json:"chain"`
	Timestamp time.Time `json:"timestamp"`
}

// ActivityID derives the stable record identifier. Two transfers sharing a
// transaction hash stay distinct as long as direction, token, or index
// differ.
func ActivityID(txHash string, dir Direction, token string, index int) string {
	return fmt.Sprintf("%s-%s-%s-%d", txHash, dir, token, index)
}

// NormalizeActivity deduplicates by ID (first occurrence wins) and sorts the
// result by timestamp descending. The input slice is not modified.
func NormalizeActivity(records []ActivityRecord) []ActivityRecord {
	seen := make(map[string]struct{}, len(records))
	out := make([]ActivityRecord, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}
