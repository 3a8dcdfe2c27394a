package signer

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/cmgoes/zigzag-frontend/rollup"
)

// disclosureMessage is part of the protocol contract. Any deviation,
// including the conditional chain-id suffix, derives a seed incompatible
// with the account registered under the canonical message.
const disclosureMessage = "Access rollup account.\n\nOnly sign this message for a trusted client!"

const primaryChainID = 1

// DisclosureMessage builds the exact message the user is asked to sign.
// The chain-id suffix appears only off the primary chain.
func DisclosureMessage(chainID int64) string {
	if chainID == primaryChainID {
		return disclosureMessage
	}
	return fmt.Sprintf("%s\nChain ID: %d.", disclosureMessage, chainID)
}

// SignableBytes is the canonical signable encoding of the disclosure
// message: its UTF-8 bytes, with no personal-sign wrapping. The signer
// collaborator applies whatever envelope its wallet requires.
func SignableBytes(message string) []byte {
	return []byte(message)
}

// DeriveSeed produces the deterministic rollup account seed for one
// sign-in session: the raw bytes of the signer's signature over the
// disclosure message, plus the signature scheme the rollup should verify
// it under. Signer rejection and network-context failure both surface as
// ErrSigningFailed; the caller starts a fresh sign-in to retry.
func DeriveSeed(ctx context.Context, s BaseChainSigner) (rollup.Seed, rollup.SignatureScheme, error) {
	chainID := int64(primaryChainID)
	if id, ok, err := s.Network(ctx); err != nil {
		return nil, "", fmt.Errorf("%w: resolving network context: %v", rollup.ErrSigningFailed, err)
	} else if ok {
		chainID = id
	}

	message := DisclosureMessage(chainID)

	signature, err := s.SignBytes(ctx, SignableBytes(message))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", rollup.ErrSigningFailed, err)
	}

	scheme := ClassifyScheme(message, signature, s.Address())

	return rollup.Seed(signature), scheme, nil
}

// ClassifyScheme decides which signature scheme the rollup protocol should
// verify the seed signature under. A 65-byte signature that ECDSA-recovers
// to the signer address, over either the raw or the personal-message
// digest of the disclosure message, is a plain Ethereum signature.
// Anything else is treated as a contract-wallet (EIP-1271) signature.
func ClassifyScheme(message string, signature []byte, addr common.Address) rollup.SignatureScheme {
	if len(signature) != 65 {
		return rollup.SchemeEIP1271
	}

	digests := [][]byte{
		crypto.Keccak256([]byte(message)),
		accounts.TextHash([]byte(message)),
	}
	for _, digest := range digests {
		if recovers(digest, signature, addr) {
			return rollup.SchemeECDSA
		}
	}
	return rollup.SchemeEIP1271
}

func recovers(digest, signature []byte, addr common.Address) bool {
	sig := make([]byte, len(signature))
	copy(sig, signature)
	if sig[64] >= 27 {
		sig[64] -= 27
	}
	pub, err := crypto.SigToPub(digest, sig)
	if err != nil {
		return false
	}
	return crypto.PubkeyToAddress(*pub) == addr
}
