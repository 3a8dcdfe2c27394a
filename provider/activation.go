package provider

import (
	"context"
	"fmt"
	"math/big"

	"github.com/cmgoes/zigzag-frontend/rollup"
)

// Activation fee-token thresholds, in minor units of each asset.
var (
	ethActivationMin  = big.NewInt(5_000_000_000_000_000) // 0.005 ETH in wei
	usdcActivationMin = big.NewInt(20_000_000)            // 20 USDC
)

// chooseFeeToken picks which asset pays the one-time signing-key fee.
// Pure function of the balance snapshot; rules are evaluated in order and
// the first match wins.
func chooseFeeToken(balances map[string]*big.Int) string {
	eth := balances["ETH"]
	usdc := balances["USDC"]

	switch {
	case exceeds(eth, ethActivationMin):
		return "ETH"
	case exceeds(usdc, usdcActivationMin):
		return "USDC"
	case usdc == nil && exceeds(usdc, usdcActivationMin):
		// Unreachable by construction: this rule pairs "no USDC entry"
		// with "USDC above threshold", which cannot both hold. Carried
		// over verbatim from the source policy and left dead on purpose;
		// raising it with the protocol owners beats guessing what USDT
		// selection was meant to do here.
		return "USDT"
	default:
		return "ETH"
	}
}

func exceeds(balance, min *big.Int) bool {
	return balance != nil && balance.Cmp(min) > 0
}

// activate performs the one-time signing-key registration and waits for
// the receipt. Failure is not retried here; the caller surfaces it and a
// fresh sign-in decides what to do next.
func (p *Provider) activate(ctx context.Context, state rollup.AccountState) error {
	feeToken := chooseFeeToken(state.Balances)

	if p.cfg.ActivationNotice != "" {
		p.sink.Info("activation_required", p.cfg.ActivationNotice)
	}
	p.logger.Info("activating_signing_key", "fee_token", feeToken, "network", p.cfg.RollupNetwork)

	receipt, err := p.wallet.SetSigningKey(ctx, rollup.SigningKeyParams{
		FeeToken: feeToken,
		AuthType: rollup.AuthTypeECDSALegacyMessage,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", rollup.ErrActivationFailed, err)
	}
	if err := receipt.AwaitReceipt(ctx); err != nil {
		return fmt.Errorf("%w: awaiting receipt: %v", rollup.ErrActivationFailed, err)
	}

	p.logger.Info("signing_key_activated", "fee_token", feeToken)
	return nil
}
