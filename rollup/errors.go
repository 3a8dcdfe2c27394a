package rollup

import "errors"

// Error taxonomy for the sign-in and order flows. None of these are
// retried at this layer; callers decide on retry, backoff, or messaging.
var (
	// ErrProviderUnavailable - the rollup network provider could not be
	// constructed. Fatal to sign-in.
	ErrProviderUnavailable = errors.New("rollup provider unavailable")

	// ErrSigningFailed - the base-chain signer rejected or errored. Fatal
	// to the current flow; a new sign-in must be initiated by the caller.
	ErrSigningFailed = errors.New("signing failed")

	// ErrAccountNotFound - activation ran but no account id is resolvable.
	// The account must be funded externally before trying again.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidSide - bad order parameter, surfaced before any pricing or
	// network call.
	ErrInvalidSide = errors.New("invalid side")

	// ErrInvalidOrder - malformed product or non-positive price/amount.
	// Surfaced before any network call.
	ErrInvalidOrder = errors.New("invalid order parameters")

	// ErrUnknownFeeAsset - the fee schedule has no entry for the sell
	// asset. Configuration error, fatal.
	ErrUnknownFeeAsset = errors.New("unknown fee asset")

	// ErrActivationFailed - the signing-key registration request failed.
	ErrActivationFailed = errors.New("activation failed")

	// ErrSubmissionFailed - the relay call failed. Does not invalidate an
	// already-built order.
	ErrSubmissionFailed = errors.New("order submission failed")
)
