package wallet

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/cmgoes/zigzag-frontend/rollup"
)

// StaticTokenSet encodes decimal amounts into integer minor units from a
// fixed asset -> decimals table.
type StaticTokenSet map[string]int32

// DefaultTokenSet covers the assets the venue currently lists.
func DefaultTokenSet() StaticTokenSet {
	return StaticTokenSet{
		"ETH":  18,
		"USDC": 6,
		"USDT": 6,
	}
}

func (ts StaticTokenSet) ParseToken(asset string, amount string) (*big.Int, error) {
	decimals, ok := ts[asset]
	if !ok {
		return nil, fmt.Errorf("unknown token %q", asset)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parsing %s amount: %w", asset, err)
	}
	scaled := d.Shift(decimals)
	if !scaled.IsInteger() {
		return nil, fmt.Errorf("amount %s exceeds %d decimals of %s", amount, decimals, asset)
	}
	return scaled.BigInt(), nil
}

var _ rollup.TokenSet = StaticTokenSet{}
