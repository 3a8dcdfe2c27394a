package main

import (
	"context"
	"math/big"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/cmgoes/zigzag-frontend/client"
	"github.com/cmgoes/zigzag-frontend/config"
	"github.com/cmgoes/zigzag-frontend/logger"
	"github.com/cmgoes/zigzag-frontend/notify"
	"github.com/cmgoes/zigzag-frontend/order"
	"github.com/cmgoes/zigzag-frontend/provider"
	"github.com/cmgoes/zigzag-frontend/wallet"
)

func main() {
	logger := logger.NewLogger()

	// Load .env file if it exists (optional)
	_ = godotenv.Load()

	cfg := config.Default()
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			logger.Error("config_load_failed", "path", path, "err", err)
			return
		}
		cfg = loaded
	}

	networkID := int64(getEnvInt("NETWORK_ID", 1))
	network, ok := cfg.NetworkByID(networkID)
	if !ok {
		logger.Error("unknown_network", "network_id", networkID)
		return
	}

	fees, err := cfg.FeeSchedule()
	if err != nil {
		logger.Error("bad_fee_schedule", "err", err)
		return
	}

	privateKey := os.Getenv("PRIVATE_KEY")
	if privateKey == "" {
		logger.Error("missing_config", "msg", "PRIVATE_KEY environment variable is required")
		return
	}
	ethSigner, err := client.NewLocalSigner(privateKey, network.ChainID)
	if err != nil {
		logger.Error("bad_private_key", "err", err)
		return
	}

	relay := client.NewRelayClient(network.RelayURL, *logger)
	if err := relay.Connect(); err != nil {
		// Orders are still built and returned when the relay is down;
		// only the fire-and-forget notification is lost.
		logger.Warn("relay_unreachable", "url", network.RelayURL, "err", err)
	} else {
		defer relay.Close()
	}

	// Paper wallet backend: simulates the rollup SDK so the full sign-in
	// and order flow runs without funds at risk. A live deployment swaps
	// in the SDK's WalletFactory and NetworkResolver bindings.
	accountID := int64(getEnvInt("PAPER_ACCOUNT_ID", 418297))
	factory := &wallet.PaperFactory{
		AccountID: &accountID,
		Balances: map[string]*big.Int{
			"ETH":  big.NewInt(0).Mul(big.NewInt(2), big.NewInt(1e18)),
			"USDC": big.NewInt(5_000_000_000),
		},
	}
	resolver := wallet.PaperResolver{
		network.RollupName: {Name: network.RollupName, Tokens: wallet.DefaultTokenSet()},
	}

	builder := order.NewBuilder(relay, *logger)
	sink := notify.NewLogSink(*logger)

	prov := provider.New(provider.Config{
		NetworkID:        network.NetworkID,
		RollupNetwork:    network.RollupName,
		ActivationNotice: network.ActivationNotice,
	}, ethSigner, factory, resolver, builder, fees, sink, *logger)

	ctx := context.Background()

	state, err := prov.SignIn(ctx)
	if err != nil {
		logger.Error("sign_in_failed", "err", err)
		return
	}
	logger.Info("account_ready", "account_id", *state.ID, "signing_key_set", state.SigningKeySet)

	product := getEnvString("PRODUCT", "ETH-USDC")
	side := getEnvString("SIDE", "s")
	price, err := decimal.NewFromString(getEnvString("PRICE", "2000"))
	if err != nil {
		logger.Error("bad_price", "err", err)
		return
	}
	amount, err := decimal.NewFromString(getEnvString("AMOUNT", "0.5"))
	if err != nil {
		logger.Error("bad_amount", "err", err)
		return
	}

	signed, err := prov.SubmitOrder(ctx, product, side, price, amount)
	if err != nil {
		logger.Error("submit_order_failed", "err", err)
		return
	}
	logger.Info("order_built", logger.LogFieldsToArgs(map[string]interface{}{
		"token_sell":  signed.TokenSell,
		"token_buy":   signed.TokenBuy,
		"amount":      signed.Amount.String(),
		"valid_until": signed.ValidUntil,
	})...)
}

func getEnvString(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultValue
}
