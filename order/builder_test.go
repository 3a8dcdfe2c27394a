package order

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmgoes/zigzag-frontend/logger"
	"github.com/cmgoes/zigzag-frontend/pricing"
	"github.com/cmgoes/zigzag-frontend/rollup"
)

type fakeRelay struct {
	method string
	params []any
	err    error
	calls  int
}

func (f *fakeRelay) Send(method string, params []any) error {
	f.calls++
	f.method = method
	f.params = params
	return f.err
}

type fakeTokens struct {
	asset  string
	amount string
}

func (f *fakeTokens) ParseToken(asset, amount string) (*big.Int, error) {
	f.asset = asset
	f.amount = amount
	return big.NewInt(2_005_000_000), nil
}

type fakeWallet struct {
	params rollup.OrderParams
	calls  int
}

func (f *fakeWallet) SetSigningKey(context.Context, rollup.SigningKeyParams) (rollup.ReceiptHandle, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeWallet) IsSigningKeySet(context.Context) (bool, error) { return true, nil }

func (f *fakeWallet) GetAccountState(context.Context) (rollup.AccountState, error) {
	return rollup.AccountState{}, nil
}

func (f *fakeWallet) GetOrder(_ context.Context, params rollup.OrderParams) (*rollup.SignedOrder, error) {
	f.calls++
	f.params = params
	return &rollup.SignedOrder{
		TokenSell:  params.TokenSell,
		TokenBuy:   params.TokenBuy,
		Amount:     params.Amount,
		Ratio:      params.Ratio,
		ValidUntil: params.ValidUntil,
	}, nil
}

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func testPricedOrder(t *testing.T) pricing.PricedOrder {
	t.Helper()
	return pricing.PricedOrder{
		BaseAsset:           "ETH",
		QuoteAsset:          "USDC",
		TokenBuy:            "ETH",
		TokenSell:           "USDC",
		BuyQuantity:         mustDec(t, "1"),
		SellQuantity:        mustDec(t, "2000"),
		SellQuantityWithFee: mustDec(t, "2005"),
		EffectivePrice:      mustDec(t, "2005"),
	}
}

func newTestBuilder(relay rollup.RelayTransport, at int64) *Builder {
	b := NewBuilder(relay, *logger.NewLogger())
	b.now = func() time.Time { return time.Unix(at, 0) }
	return b
}

func TestBuildValidUntil(t *testing.T) {
	for _, at := range []int64{1_700_000_000, 1_764_322_187, 42} {
		b := newTestBuilder(&fakeRelay{}, at)
		wallet := &fakeWallet{}

		signed, err := b.Build(context.Background(), wallet, &fakeTokens{}, testPricedOrder(t), 0)
		require.NoError(t, err)
		assert.Equal(t, at+180, signed.ValidUntil)
	}
}

func TestBuildAmountEncoding(t *testing.T) {
	tokens := &fakeTokens{}
	b := newTestBuilder(&fakeRelay{}, 1_700_000_000)

	po := testPricedOrder(t)
	po.SellQuantityWithFee = mustDec(t, "2005.123456")

	signed, err := b.Build(context.Background(), &fakeWallet{}, tokens, po, 0)
	require.NoError(t, err)

	// Encoding input is the fee-inclusive sell quantity at six
	// significant digits.
	assert.Equal(t, "USDC", tokens.asset)
	assert.Equal(t, "2005.12", tokens.amount)
	assert.Equal(t, big.NewInt(2_005_000_000), signed.Amount)
}

func TestBuildRatioFollowsProduct(t *testing.T) {
	wallet := &fakeWallet{}
	b := newTestBuilder(&fakeRelay{}, 1_700_000_000)

	// Sell side: tokenSell is the base asset, but the ratio still reads
	// base:1 quote:effectivePrice.
	po := pricing.PricedOrder{
		BaseAsset:           "ETH",
		QuoteAsset:          "USDC",
		TokenSell:           "ETH",
		TokenBuy:            "USDC",
		BuyQuantity:         mustDec(t, "2000"),
		SellQuantity:        mustDec(t, "1"),
		SellQuantityWithFee: mustDec(t, "1.002"),
		EffectivePrice:      mustDec(t, "1996.01"),
	}

	_, err := b.Build(context.Background(), wallet, &fakeTokens{}, po, 0)
	require.NoError(t, err)

	assert.Equal(t, "ETH", wallet.params.Ratio.BaseAsset)
	assert.Equal(t, "USDC", wallet.params.Ratio.QuoteAsset)
	assert.True(t, wallet.params.Ratio.QuotePrice.Equal(mustDec(t, "1996.01")))
}

func TestBuildCustomExpiry(t *testing.T) {
	b := newTestBuilder(&fakeRelay{}, 1_700_000_000)

	signed, err := b.Build(context.Background(), &fakeWallet{}, &fakeTokens{}, testPricedOrder(t), 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, int64(1_700_000_030), signed.ValidUntil)
}

func TestSubmitFrame(t *testing.T) {
	relay := &fakeRelay{}
	b := newTestBuilder(relay, 1_700_000_000)

	signed := &rollup.SignedOrder{TokenSell: "USDC", TokenBuy: "ETH", Amount: big.NewInt(1)}
	require.NoError(t, b.Submit(signed, 1000))

	assert.Equal(t, "submitorder", relay.method)
	require.Len(t, relay.params, 2)
	assert.Equal(t, int64(1000), relay.params[0])
	assert.Same(t, signed, relay.params[1])
}

func TestSubmitFailure(t *testing.T) {
	relay := &fakeRelay{err: errors.New("connection reset")}
	b := newTestBuilder(relay, 1_700_000_000)

	err := b.Submit(&rollup.SignedOrder{Amount: big.NewInt(1)}, 1)
	assert.ErrorIs(t, err, rollup.ErrSubmissionFailed)
}
