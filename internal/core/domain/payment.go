package domain

import "encoding/json"

// PaymentRequirements is one x402 payment option returned by the agent on a
// 402 response. Request-scoped: parsed for logging, never stored. The signed
// payment header itself is constructed client-side.
type PaymentRequirements struct {
	Scheme            string            `json:"scheme"`
	Network           string            `json:"network"`
	MaxAmountRequired string            `json:"maxAmountRequired"` // integer string, smallest unit
	PayTo             string            `json:"payTo"`
	Asset             string            `json:"asset"`
	Extra             *PaymentAssetInfo `json:"extra,omitempty"`
}

// PaymentAssetInfo carries optional asset metadata in the requirements.
type PaymentAssetInfo struct {
	Name     string `json:"name,omitempty"`
	Currency string `json:"currency,omitempty"`
	Decimals int    `json:"decimals,omitempty"`
}

// PaymentRequired is the x402 envelope wrapping the accepted payment options.
type PaymentRequired struct {
	X402Version int                   `json:"x402Version"`
	Accepts     []PaymentRequirements `json:"accepts"`
	Error       string                `json:"error,omitempty"`
}

// ParsePaymentRequired attempts to decode an x402 requirements envelope from
// a 402 response body. Returns nil when the body is not such an envelope.
func ParsePaymentRequired(body []byte) *PaymentRequired {
	var pr PaymentRequired
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil
	}
	if len(pr.Accepts) == 0 {
		return nil
	}
	return &pr
}
