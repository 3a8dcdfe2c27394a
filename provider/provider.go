package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cmgoes/zigzag-frontend/logger"
	"github.com/cmgoes/zigzag-frontend/order"
	"github.com/cmgoes/zigzag-frontend/pricing"
	"github.com/cmgoes/zigzag-frontend/rollup"
	"github.com/cmgoes/zigzag-frontend/signer"
)

// SignInCapable is the account-side capability of a rollup backend.
type SignInCapable interface {
	SignIn(ctx context.Context) (rollup.AccountState, error)
	GetAccountState(ctx context.Context) (rollup.AccountState, error)
}

// OrderSubmittable is the trading-side capability of a rollup backend.
type OrderSubmittable interface {
	SubmitOrder(ctx context.Context, product, side string, price, amount decimal.Decimal) (*rollup.SignedOrder, error)
}

// WalletFactory builds the rollup wallet construct from a derived seed.
// Implemented by the wallet SDK binding, not by this layer.
type WalletFactory interface {
	FromEthSigner(ctx context.Context, ethSigner signer.BaseChainSigner, network rollup.NetworkProvider, seed rollup.Seed, scheme rollup.SignatureScheme) (rollup.Wallet, error)
}

// Config pins the provider to one rollup deployment.
type Config struct {
	// NetworkID is the rollup-side identifier sent alongside orders.
	NetworkID int64
	// RollupNetwork is the name handed to the network resolver.
	RollupNetwork string
	// ActivationNotice is the advisory text emitted before the one-time
	// activation transaction. Empty means no notice.
	ActivationNotice string
}

// Provider is one sign-in session against a rollup backend. Session state
// (wallet, account snapshot) is owned by the instance; concurrent sessions
// are separate Provider values and never share state.
type Provider struct {
	cfg       Config
	ethSigner signer.BaseChainSigner
	wallets   WalletFactory
	resolver  rollup.NetworkResolver
	builder   *order.Builder
	fees      pricing.FeeSchedule
	sink      rollup.NotificationSink
	logger    logger.Logger

	network rollup.NetworkProvider
	wallet  rollup.Wallet
	state   rollup.AccountState
}

func New(cfg Config, ethSigner signer.BaseChainSigner, wallets WalletFactory, resolver rollup.NetworkResolver, builder *order.Builder, fees pricing.FeeSchedule, sink rollup.NotificationSink, logger logger.Logger) *Provider {
	return &Provider{
		cfg:       cfg,
		ethSigner: ethSigner,
		wallets:   wallets,
		resolver:  resolver,
		builder:   builder,
		fees:      fees,
		sink:      sink,
		logger:    logger,
	}
}

var (
	_ SignInCapable    = (*Provider)(nil)
	_ OrderSubmittable = (*Provider)(nil)
)

// SignIn establishes the session: resolves the network, derives the seed,
// builds the wallet, and activates the signing key when it is not yet
// registered. The returned snapshot reflects the post-activation account.
func (p *Provider) SignIn(ctx context.Context) (rollup.AccountState, error) {
	network, err := p.resolver.Resolve(ctx, p.cfg.RollupNetwork)
	if err != nil {
		p.sink.Error("provider_unavailable", "The rollup network is down. Try again later")
		return rollup.AccountState{}, fmt.Errorf("%w: %v", rollup.ErrProviderUnavailable, err)
	}
	p.network = network

	seed, scheme, err := signer.DeriveSeed(ctx, p.ethSigner)
	if err != nil {
		return rollup.AccountState{}, err
	}
	p.logger.Debug("seed_derived", "scheme", scheme, "seed_len", len(seed))

	wallet, err := p.wallets.FromEthSigner(ctx, p.ethSigner, network, seed, scheme)
	if err != nil {
		return rollup.AccountState{}, fmt.Errorf("building rollup wallet: %w", err)
	}
	p.wallet = wallet

	state, err := wallet.GetAccountState(ctx)
	if err != nil {
		return rollup.AccountState{}, err
	}
	if !state.Registered() {
		p.sink.Error("account_not_found", "Account not found. Please use the Wallet to deposit funds before trying again.")
		return rollup.AccountState{}, rollup.ErrAccountNotFound
	}

	keySet, err := wallet.IsSigningKeySet(ctx)
	if err != nil {
		return rollup.AccountState{}, err
	}
	if !keySet {
		if err := p.activate(ctx, state); err != nil {
			return rollup.AccountState{}, err
		}
		// Snapshots are replaced wholesale, never patched: re-query so the
		// returned state reflects the registered key.
		state, err = wallet.GetAccountState(ctx)
		if err != nil {
			return rollup.AccountState{}, err
		}
	}

	p.state = state
	p.logger.Info("signed_in", "account_id", *state.ID, "network", p.cfg.RollupNetwork)
	return state, nil
}

// GetAccountState returns a fresh snapshot, or the zero AccountState when
// no session is established yet.
func (p *Provider) GetAccountState(ctx context.Context) (rollup.AccountState, error) {
	if p.wallet == nil {
		return rollup.AccountState{}, nil
	}
	state, err := p.wallet.GetAccountState(ctx)
	if err != nil {
		return rollup.AccountState{}, err
	}
	p.state = state
	return state, nil
}

// SubmitOrder prices the requested trade fee-inclusively, builds a signed
// order expiring in three minutes, and notifies the relayer. The order is
// returned to the caller even when the relay notification fails; the two
// are not transactionally linked.
func (p *Provider) SubmitOrder(ctx context.Context, product, side string, price, amount decimal.Decimal) (*rollup.SignedOrder, error) {
	sd, err := rollup.ParseSide(side)
	if err != nil {
		return nil, err
	}

	if p.wallet == nil || p.network == nil {
		return nil, errors.New("sign in before submitting orders")
	}
	if !p.state.Registered() {
		return nil, rollup.ErrAccountNotFound
	}

	priced, err := pricing.Price(product, sd, price, amount, p.fees)
	if err != nil {
		return nil, err
	}

	signed, err := p.builder.Build(ctx, p.wallet, p.network.TokenSet(), priced, order.DefaultExpiry)
	if err != nil {
		return nil, err
	}

	if err := p.builder.Submit(signed, p.cfg.NetworkID); err != nil {
		p.sink.Error("order_submission_failed", "Order relay failed; the order may not have reached the relayer.")
	}
	return signed, nil
}
