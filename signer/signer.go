package signer

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// BaseChainSigner abstracts the user's base-chain wallet. Implementations
// typically proxy an interactive wallet, so SignBytes may block on user
// approval for an unbounded time; cancellation is the caller's ctx.
type BaseChainSigner interface {
	// SignBytes signs the canonical signable bytes of a message. The
	// signer applies its own envelope; this layer never adds one.
	SignBytes(ctx context.Context, msg []byte) ([]byte, error)

	Address() common.Address

	// Network returns the signer's chain context. ok is false when the
	// signer has no attached provider, in which case seed derivation
	// falls back to the primary chain.
	Network(ctx context.Context) (chainID int64, ok bool, err error)
}
