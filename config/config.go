package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/cmgoes/zigzag-frontend/pricing"
)

// Network describes one rollup deployment the client can target.
type Network struct {
	Name string `yaml:"name"`
	// ChainID is the base-chain id the network settles on.
	ChainID int64 `yaml:"chainId"`
	// NetworkID is the rollup-side network identifier sent to the relayer.
	NetworkID int64 `yaml:"networkId"`
	// RollupName is the name the network resolver understands.
	RollupName string `yaml:"rollupName"`
	RelayURL   string `yaml:"relayUrl"`
	// ActivationNotice is the user-facing advisory shown before the
	// one-time signing-key transaction. Fee magnitude differs per network,
	// so the text lives here rather than in code.
	ActivationNotice string `yaml:"activationNotice"`
}

// Config is the client's static configuration: the network registry and
// the per-asset fee schedule.
type Config struct {
	Networks []Network         `yaml:"networks"`
	Fees     map[string]string `yaml:"fees"`
}

// Load reads and parses a yaml config file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Default returns the built-in registry for the primary and secondary
// deployments, used when no config file is supplied.
func Default() *Config {
	return &Config{
		Networks: []Network{
			{
				Name:             "mainnet",
				ChainID:          1,
				NetworkID:        1,
				RollupName:       "mainnet",
				RelayURL:         "wss://zigzag-exchange.herokuapp.com",
				ActivationNotice: "You need to sign a one-time transaction to activate your rollup account. The fee for this tx will be ~0.003 ETH (~$15)",
			},
			{
				Name:             "rinkeby",
				ChainID:          4,
				NetworkID:        1000,
				RollupName:       "rinkeby",
				RelayURL:         "wss://secret-thicket-93345.herokuapp.com",
				ActivationNotice: "You need to sign a one-time transaction to activate your rollup account.",
			},
		},
		Fees: map[string]string{
			"ETH":  "0.002",
			"USDC": "5",
			"USDT": "5",
		},
	}
}

// NetworkByID finds a network by its rollup-side identifier.
func (c *Config) NetworkByID(id int64) (Network, bool) {
	for _, n := range c.Networks {
		if n.NetworkID == id {
			return n, true
		}
	}
	return Network{}, false
}

// FeeSchedule parses the configured fee strings into exact decimals.
func (c *Config) FeeSchedule() (pricing.FeeSchedule, error) {
	fees := make(pricing.FeeSchedule, len(c.Fees))
	for asset, s := range c.Fees {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("fee for %s: %w", asset, err)
		}
		fees[asset] = d
	}
	return fees, nil
}
