package order

import (
	"context"
	"fmt"
	"time"

	"github.com/cmgoes/zigzag-frontend/logger"
	"github.com/cmgoes/zigzag-frontend/pricing"
	"github.com/cmgoes/zigzag-frontend/rollup"
)

// DefaultExpiry bounds how long a built order stays valid.
const DefaultExpiry = 180 * time.Second

// submitMethod is the relayer operation for new orders.
const submitMethod = "submitorder"

// Builder assembles time-bounded, protocol-valid orders from priced
// quantities and hands them to the relay. The wallet SDK does the actual
// order signing; the builder's job ends at correct inputs.
type Builder struct {
	relay  rollup.RelayTransport
	logger logger.Logger
	now    func() time.Time
}

func NewBuilder(relay rollup.RelayTransport, logger logger.Logger) *Builder {
	return &Builder{
		relay:  relay,
		logger: logger,
		now:    time.Now,
	}
}

// Build constructs a signed order expiring after the given duration
// (DefaultExpiry when zero). The amount is the fee-inclusive sell
// quantity at six significant digits, encoded into the token's integer
// minor units. The ratio follows the product's base/quote order
// regardless of trade side.
func (b *Builder) Build(ctx context.Context, wallet rollup.Wallet, tokens rollup.TokenSet, po pricing.PricedOrder, expiry time.Duration) (*rollup.SignedOrder, error) {
	if expiry <= 0 {
		expiry = DefaultExpiry
	}
	validUntil := b.now().Unix() + int64(expiry/time.Second)

	amountStr := pricing.RoundSig(po.SellQuantityWithFee, 6).String()
	amount, err := tokens.ParseToken(po.TokenSell, amountStr)
	if err != nil {
		return nil, fmt.Errorf("encoding %s amount %s: %w", po.TokenSell, amountStr, err)
	}

	signed, err := wallet.GetOrder(ctx, rollup.OrderParams{
		TokenSell: po.TokenSell,
		TokenBuy:  po.TokenBuy,
		Amount:    amount,
		Ratio: rollup.TokenRatio{
			BaseAsset:  po.BaseAsset,
			QuoteAsset: po.QuoteAsset,
			QuotePrice: po.EffectivePrice,
		},
		ValidUntil: validUntil,
	})
	if err != nil {
		return nil, fmt.Errorf("wallet order construction: %w", err)
	}
	return signed, nil
}

// Submit notifies the relayer of a built order. Fire-and-forget: a relay
// failure is surfaced as ErrSubmissionFailed but the order the caller
// already holds stays valid. Not idempotent; duplicate submission dedup
// is the relayer's concern.
func (b *Builder) Submit(signed *rollup.SignedOrder, networkID int64) error {
	if err := b.relay.Send(submitMethod, []any{networkID, signed}); err != nil {
		b.logger.Error("order_submit_failed", "network", networkID, "err", err)
		return fmt.Errorf("%w: %v", rollup.ErrSubmissionFailed, err)
	}
	b.logger.Info("order_submitted", "network", networkID, "token_sell", signed.TokenSell, "token_buy", signed.TokenBuy)
	return nil
}
