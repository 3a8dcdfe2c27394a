package client

import (
	"context"
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/cmgoes/zigzag-frontend/signer"
)

// LocalSigner is a headless BaseChainSigner backed by a raw private key.
// Interactive wallets satisfy the same interface through their own
// bindings; this one exists for bots and tests.
type LocalSigner struct {
	privateKey *ecdsa.PrivateKey
	chainID    int64
}

func NewLocalSigner(privateKeyHex string, chainID int64) (*LocalSigner, error) {
	if len(privateKeyHex) > 2 && privateKeyHex[:2] == "0x" {
		privateKeyHex = privateKeyHex[2:]
	}

	privateKey, err := crypto.HexToECDSA(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	return &LocalSigner{privateKey: privateKey, chainID: chainID}, nil
}

// SignBytes signs the personal-message digest of msg, the envelope an
// injected browser wallet would apply to the same bytes.
func (s *LocalSigner) SignBytes(_ context.Context, msg []byte) ([]byte, error) {
	sig, err := crypto.Sign(accounts.TextHash(msg), s.privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %w", err)
	}
	sig[64] += 27
	return sig, nil
}

func (s *LocalSigner) Address() common.Address {
	return crypto.PubkeyToAddress(s.privateKey.PublicKey)
}

func (s *LocalSigner) Network(context.Context) (int64, bool, error) {
	if s.chainID == 0 {
		return 0, false, nil
	}
	return s.chainID, true, nil
}

var _ signer.BaseChainSigner = (*LocalSigner)(nil)
