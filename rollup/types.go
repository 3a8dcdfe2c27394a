package rollup

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Side is the order direction as encoded on the wire.
type Side string

const (
	SideBuy  Side = "b"
	SideSell Side = "s"
)

// ParseSide validates a caller-supplied side string.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case SideBuy, SideSell:
		return Side(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSide, s)
}

// SignatureScheme identifies how the base-chain signature over the seed
// message was produced. The rollup protocol recognizes plain ECDSA
// signatures and contract-wallet (EIP-1271) signatures.
type SignatureScheme string

const (
	SchemeECDSA   SignatureScheme = "EthereumSignature"
	SchemeEIP1271 SignatureScheme = "EIP1271Signature"
)

// AuthType selects the authorization sub-type used when registering a
// signing key on the rollup.
type AuthType string

const AuthTypeECDSALegacyMessage AuthType = "ECDSALegacyMessage"

// Seed is the deterministic secret derived from a base-chain signature.
// It lives for one sign-in session and must never be persisted or logged.
type Seed []byte

// AccountState is a read-only snapshot of a rollup account. Snapshots are
// replaced wholesale on every query, never mutated in place.
type AccountState struct {
	// ID is nil while the account is unregistered on the rollup.
	ID            *int64
	Balances      map[string]*big.Int
	SigningKeySet bool
}

// Registered reports whether the rollup has assigned the account an id.
func (s AccountState) Registered() bool {
	return s.ID != nil
}

// Balance returns the committed minor-unit balance for an asset, or nil
// when the asset has no entry.
func (s AccountState) Balance(asset string) *big.Int {
	return s.Balances[asset]
}

// OrderRequest is the caller's trade intent, validated before any pricing
// or network work happens.
type OrderRequest struct {
	Product string // "BASE-QUOTE"
	Side    Side
	Price   decimal.Decimal
	Amount  decimal.Decimal
}

// TokenRatio is the protocol's normalized two-asset price representation:
// one unit of the base asset against the effective quote price. Pair order
// follows the product's declared base/quote, not the trade side.
type TokenRatio struct {
	BaseAsset  string
	QuoteAsset string
	QuotePrice decimal.Decimal
}

// OrderParams are the inputs handed to the wallet SDK, which produces the
// cryptographically signed order.
type OrderParams struct {
	TokenSell  string
	TokenBuy   string
	Amount     *big.Int
	Ratio      TokenRatio
	ValidUntil int64
}

// SignedOrder is the wire-ready order artifact. This layer constructs it
// once and hands ownership to the relay transport.
type SignedOrder struct {
	TokenSell  string     `json:"tokenSell"`
	TokenBuy   string     `json:"tokenBuy"`
	Amount     *big.Int   `json:"amount"`
	Ratio      TokenRatio `json:"ratio"`
	ValidUntil int64      `json:"validUntil"`
	Signature  []byte     `json:"signature,omitempty"`
}
