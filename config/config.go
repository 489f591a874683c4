package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/polypuls3/polypulse/resolver"
)

// Config contains all necessary polypulse configurations
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	DataSource     resolver.Config `mapstructure:"data_source"`
	DefaultChainID uint64          `mapstructure:"default_chain_id"`
	// Voter is the identity used when a call does not name one. The zero address means no identity is connected.
	Voter common.Address `mapstructure:"voter"`

	MaxConcurrentReads int           `mapstructure:"max_concurrent_reads"`
	IndexTimeout       time.Duration `mapstructure:"index_http_timeout"`

	Gateway GatewayConfig `mapstructure:"gateway"`
	Chains  []ChainConfig `mapstructure:"chain"`
}

// ChainConfig locates the poll contract and the index of a chain. A zero contract address leaves
// the contract unconfigured and an empty index URL leaves the index unconfigured.
type ChainConfig struct {
	ID              uint64         `mapstructure:"id"`
	Name            string         `mapstructure:"name"`
	RPCAddr         string         `mapstructure:"rpc_addr"`
	ContractAddress common.Address `mapstructure:"contract_address"`
	IndexURL        string         `mapstructure:"index_url"`
}

// GatewayConfig is the configuration of the HTTP read gateway
type GatewayConfig struct {
	ListenAddr   string        `mapstructure:"listen_addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Metrics      bool          `mapstructure:"metrics"`
}

// DefaultConfig returns a configurations populated with default values
func DefaultConfig() Config {
	return Config{
		LogLevel:           "info",
		LogFormat:          "plain",
		DataSource:         resolver.DefaultConfig(),
		DefaultChainID:     80002,
		MaxConcurrentReads: 8,
		IndexTimeout:       10 * time.Second,
		Gateway:            DefaultGatewayConfig(),
		Chains:             DefaultChains(),
	}
}

// DefaultGatewayConfig returns a configurations populated with default values
func DefaultGatewayConfig() GatewayConfig {
	return GatewayConfig{
		ListenAddr:   "127.0.0.1:8080",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		Metrics:      true,
	}
}

// DefaultChains returns the chains the poll contract is known on
func DefaultChains() []ChainConfig {
	return []ChainConfig{
		{
			ID:      137,
			Name:    "Polygon",
			RPCAddr: "https://polygon-rpc.com",
			// not deployed yet
			ContractAddress: common.Address{},
		},
		{
			ID:              80002,
			Name:            "Polygon Amoy",
			RPCAddr:         "https://rpc-amoy.polygon.technology",
			ContractAddress: common.HexToAddress("0x23044915b2922847950737c8dF5fCCaebCFe6ECe"),
		},
	}
}

// Chain returns the configuration of the given chain
func (c Config) Chain(id uint64) (ChainConfig, bool) {
	for _, chain := range c.Chains {
		if chain.ID == id {
			return chain, true
		}
	}

	return ChainConfig{}, false
}

// ValidateBasic returns an error if the config is not usable
func (c Config) ValidateBasic() error {
	if err := c.DataSource.ValidateBasic(); err != nil {
		return fmt.Errorf("data_source: %w", err)
	}

	if c.MaxConcurrentReads <= 0 {
		return fmt.Errorf("max_concurrent_reads must be positive")
	}

	seen := make(map[uint64]bool)
	for _, chain := range c.Chains {
		if chain.ID == 0 {
			return fmt.Errorf("chain %s has no id", chain.Name)
		}

		if seen[chain.ID] {
			return fmt.Errorf("chain %d is configured more than once", chain.ID)
		}
		seen[chain.ID] = true

		if chain.IndexURL != "" {
			if _, err := url.ParseRequestURI(chain.IndexURL); err != nil {
				return fmt.Errorf("chain %d: invalid index_url: %w", chain.ID, err)
			}
		}
	}

	return nil
}
