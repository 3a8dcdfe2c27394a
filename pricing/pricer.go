package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cmgoes/zigzag-frontend/rollup"
)

// divPrecision bounds intermediate quotient digits before the final
// significant-digit rounding.
const divPrecision = 24

// FeeSchedule maps an asset symbol to the fixed protocol fee charged when
// that asset is on the sell side of an order.
type FeeSchedule map[string]decimal.Decimal

// Fee looks up the fee for an asset. A missing entry is a configuration
// error, not a zero fee.
func (f FeeSchedule) Fee(asset string) (decimal.Decimal, error) {
	fee, ok := f[asset]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", rollup.ErrUnknownFeeAsset, asset)
	}
	return fee, nil
}

// stableBases are the 6-decimal stable coins whose order amounts go
// through the two-stage truncation rule.
var stableBases = map[string]bool{
	"USDC": true,
	"USDT": true,
}

// PricedOrder carries fee-inclusive quantities and the effective price an
// order will actually clear at. Immutable once computed.
type PricedOrder struct {
	BaseAsset  string
	QuoteAsset string

	TokenBuy  string
	TokenSell string

	BuyQuantity         decimal.Decimal
	SellQuantity        decimal.Decimal
	SellQuantityWithFee decimal.Decimal
	EffectivePrice      decimal.Decimal
}

// Price computes fee-inclusive quantities for a requested trade. Pure: no
// side effects, safe to call concurrently.
func Price(product string, side rollup.Side, price, amount decimal.Decimal, fees FeeSchedule) (PricedOrder, error) {
	if side != rollup.SideBuy && side != rollup.SideSell {
		return PricedOrder{}, fmt.Errorf("%w: %q", rollup.ErrInvalidSide, side)
	}

	parts := strings.Split(product, "-")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return PricedOrder{}, fmt.Errorf("%w: malformed product %q", rollup.ErrInvalidOrder, product)
	}
	base, quote := parts[0], parts[1]

	// Positive quantities keep the effective-price divisions well defined.
	if price.Sign() <= 0 {
		return PricedOrder{}, fmt.Errorf("%w: price %s", rollup.ErrInvalidOrder, price)
	}
	if amount.Sign() <= 0 {
		return PricedOrder{}, fmt.Errorf("%w: amount %s", rollup.ErrInvalidOrder, amount)
	}

	if stableBases[base] {
		amount = TruncateStableAmount(amount)
	}
	price = RoundSig(price, 8)

	po := PricedOrder{BaseAsset: base, QuoteAsset: quote}

	switch side {
	case rollup.SideBuy:
		po.TokenBuy, po.TokenSell = base, quote
		po.BuyQuantity = amount
		po.SellQuantity = amount.Mul(price)
	case rollup.SideSell:
		po.TokenSell, po.TokenBuy = base, quote
		po.BuyQuantity = amount.Mul(price)
		po.SellQuantity = amount
	}

	fee, err := fees.Fee(po.TokenSell)
	if err != nil {
		return PricedOrder{}, err
	}
	po.SellQuantityWithFee = po.SellQuantity.Add(fee)

	switch side {
	case rollup.SideBuy:
		po.EffectivePrice = RoundSig(po.SellQuantityWithFee.DivRound(po.BuyQuantity, divPrecision), 6)
	case rollup.SideSell:
		po.EffectivePrice = RoundSig(po.BuyQuantity.DivRound(po.SellQuantityWithFee, divPrecision), 6)
	}

	return po, nil
}
