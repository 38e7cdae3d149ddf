package service

import "github.com/alvisk/encode-spoonOS-sub000/internal/core/ports"

// fixedEthUSD is the placeholder ETH/USD price applied to the EVM native
// asset. Everything else is valued at face amount in the absence of real
// price data.
const fixedEthUSD = 3400.0

// fixedPricing implements ports.PricingProvider with hardcoded values.
// Injected rather than inlined so a real price feed can replace it without
// touching aggregation logic.
type fixedPricing struct {
	prices map[string]float64
}

// NewFixedPricing creates the default pricing provider.
func NewFixedPricing() ports.PricingProvider {
	return &fixedPricing{
		prices: map[string]float64{
			"ETH": fixedEthUSD,
		},
	}
}

// NativeUSD returns the nominal USD price for a native asset symbol.
// Unknown symbols are valued at face amount.
func (p *fixedPricing) NativeUSD(symbol string) float64 {
	if price, ok := p.prices[symbol]; ok {
		return price
	}
	return 1
}
