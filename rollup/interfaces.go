package rollup

import (
	"context"
	"math/big"
)

// Wallet is the rollup-native wallet construct bound to one account. The
// wallet SDK owns key material and order signing; this layer only feeds it
// correctly-priced, correctly-expiring inputs.
type Wallet interface {
	SetSigningKey(ctx context.Context, params SigningKeyParams) (ReceiptHandle, error)
	IsSigningKeySet(ctx context.Context) (bool, error)
	GetAccountState(ctx context.Context) (AccountState, error)
	GetOrder(ctx context.Context, params OrderParams) (*SignedOrder, error)
}

// SigningKeyParams selects the fee asset and authorization sub-type for a
// one-time signing-key registration.
type SigningKeyParams struct {
	FeeToken string
	AuthType AuthType
}

// ReceiptHandle tracks an in-flight rollup transaction. Activation is not
// complete until AwaitReceipt returns.
type ReceiptHandle interface {
	AwaitReceipt(ctx context.Context) error
}

// TokenSet converts decimal asset amounts into the protocol's integer
// minor-unit representation.
type TokenSet interface {
	ParseToken(asset string, amount string) (*big.Int, error)
}

// NetworkProvider is a connection to one rollup network.
type NetworkProvider interface {
	TokenSet() TokenSet
}

// NetworkResolver resolves a rollup network name to a provider instance.
type NetworkResolver interface {
	Resolve(ctx context.Context, name string) (NetworkProvider, error)
}

// RelayTransport carries fire-and-forget notifications to the relayer.
// Send failure does not retract anything already returned to the caller.
type RelayTransport interface {
	Send(method string, params []any) error
}

// NotificationSink receives informational and error display events. It is
// advisory only; correctness never depends on it.
type NotificationSink interface {
	Info(event, message string)
	Error(event, message string)
}
