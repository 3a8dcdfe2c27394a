package wallet

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/cmgoes/zigzag-frontend/rollup"
	"github.com/cmgoes/zigzag-frontend/signer"
)

// Paper implementations simulate the rollup wallet SDK for offline runs
// and tests. They honor the collaborator contracts (receipt before
// activation completes, wholesale state snapshots) without touching a
// network.

type PaperNetwork struct {
	Name   string
	Tokens StaticTokenSet
}

func (n *PaperNetwork) TokenSet() rollup.TokenSet { return n.Tokens }

// PaperResolver resolves names against a fixed set of paper networks.
type PaperResolver map[string]*PaperNetwork

func (r PaperResolver) Resolve(_ context.Context, name string) (rollup.NetworkProvider, error) {
	n, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown rollup network %q", name)
	}
	return n, nil
}

// PaperFactory builds paper wallets seeded with a fixed account state.
type PaperFactory struct {
	// AccountID of nil simulates an unregistered account.
	AccountID     *int64
	Balances      map[string]*big.Int
	SigningKeySet bool
}

func (f *PaperFactory) FromEthSigner(_ context.Context, _ signer.BaseChainSigner, _ rollup.NetworkProvider, seed rollup.Seed, scheme rollup.SignatureScheme) (rollup.Wallet, error) {
	return &PaperWallet{
		seed:      seed,
		scheme:    scheme,
		accountID: f.AccountID,
		balances:  f.Balances,
		keySet:    f.SigningKeySet,
	}, nil
}

type PaperWallet struct {
	seed      rollup.Seed
	scheme    rollup.SignatureScheme
	accountID *int64
	balances  map[string]*big.Int
	keySet    bool

	// LastSigningKey records the most recent activation request.
	LastSigningKey rollup.SigningKeyParams
}

func (w *PaperWallet) GetAccountState(context.Context) (rollup.AccountState, error) {
	balances := make(map[string]*big.Int, len(w.balances))
	for asset, amount := range w.balances {
		balances[asset] = new(big.Int).Set(amount)
	}
	return rollup.AccountState{
		ID:            w.accountID,
		Balances:      balances,
		SigningKeySet: w.keySet,
	}, nil
}

func (w *PaperWallet) IsSigningKeySet(context.Context) (bool, error) {
	return w.keySet, nil
}

func (w *PaperWallet) SetSigningKey(_ context.Context, params rollup.SigningKeyParams) (rollup.ReceiptHandle, error) {
	w.LastSigningKey = params
	return paperReceipt{wallet: w}, nil
}

// paperReceipt finalizes instantly; the key counts as registered only
// once the receipt is awaited, matching the real SDK's contract.
type paperReceipt struct {
	wallet *PaperWallet
}

func (r paperReceipt) AwaitReceipt(context.Context) error {
	r.wallet.keySet = true
	return nil
}

func (w *PaperWallet) GetOrder(_ context.Context, params rollup.OrderParams) (*rollup.SignedOrder, error) {
	digest := crypto.Keccak256(
		w.seed,
		[]byte(params.TokenSell),
		[]byte(params.TokenBuy),
		params.Amount.Bytes(),
		[]byte(fmt.Sprintf("%s/%s@%s#%d",
			params.Ratio.BaseAsset, params.Ratio.QuoteAsset, params.Ratio.QuotePrice, params.ValidUntil)),
	)
	return &rollup.SignedOrder{
		TokenSell:  params.TokenSell,
		TokenBuy:   params.TokenBuy,
		Amount:     params.Amount,
		Ratio:      params.Ratio,
		ValidUntil: params.ValidUntil,
		Signature:  digest,
	}, nil
}
