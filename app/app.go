package app

import (
	"context"
	"fmt"
	"net/http"

	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/polypuls3/polypulse/config"
	"github.com/polypuls3/polypulse/query"
	"github.com/polypuls3/polypulse/reader/contract"
	"github.com/polypuls3/polypulse/reader/contract/rpc"
	"github.com/polypuls3/polypulse/reader/index"
	"github.com/polypuls3/polypulse/resolver"
)

// RPCDialer connects to an EVM JSON-RPC endpoint
type RPCDialer func(ctx context.Context, url string) (rpc.Client, error)

// IndexDialer returns a client for an index endpoint
type IndexDialer func(url string, httpClient *http.Client) index.Client

// App wires the readers, the resolver and the query service for a configuration
type App struct {
	Config   config.Config
	Contract *contract.Reader
	Index    *index.Reader
	Resolver *resolver.Resolver
	Service  *query.Service

	logger          log.Logger
	cleanupCommands []func()
}

// Option customizes how an App connects to its backends
type Option func(*options)

type options struct {
	dialRPC   RPCDialer
	dialIndex IndexDialer
	identity  query.Identity
}

// WithRPCDialer replaces the JSON-RPC dialer
func WithRPCDialer(dial RPCDialer) Option {
	return func(o *options) { o.dialRPC = dial }
}

// WithIndexDialer replaces the index client constructor
func WithIndexDialer(dial IndexDialer) Option {
	return func(o *options) { o.dialIndex = dial }
}

// WithIdentity replaces the identity configured by the voter address
func WithIdentity(identity query.Identity) Option {
	return func(o *options) { o.identity = identity }
}

// New connects to every configured chain and returns the wired App. A chain whose RPC cannot be reached
// is left without a contract reader so the index can still serve it.
func New(ctx context.Context, logger log.Logger, cfg config.Config, opts ...Option) (*App, error) {
	if err := cfg.ValidateBasic(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := options{dialRPC: rpc.NewClient, dialIndex: index.NewClient}
	for _, opt := range opts {
		opt(&o)
	}

	if o.identity == nil {
		o.identity = query.NoIdentity{}
		if cfg.Voter != (common.Address{}) {
			o.identity = query.StaticIdentity(cfg.Voter)
		}
	}

	a := &App{Config: cfg, logger: logger}

	rpcs := make(map[uint64]rpc.Client)
	addresses := make(map[uint64]common.Address)
	indexes := make(map[uint64]index.Client)
	httpClient := &http.Client{Timeout: cfg.IndexTimeout}

	for _, chain := range cfg.Chains {
		if chain.IndexURL != "" {
			indexes[chain.ID] = o.dialIndex(chain.IndexURL, httpClient)
			logger.Debug("created index client", "chain", chain.Name, "url", chain.IndexURL)
		}

		if chain.ContractAddress == (common.Address{}) || chain.RPCAddr == "" {
			logger.Debug(fmt.Sprintf("poll contract is not configured for chain %s. Skipping...", chain.Name))
			continue
		}

		client, err := o.dialRPC(ctx, chain.RPCAddr)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to create an RPC connection for chain %s. Verify your RPC config.", chain.Name), "error", err)
			continue
		}

		// clean up rpc connection on shutdown
		a.cleanupCommands = append(a.cleanupCommands, client.Close)

		rpcs[chain.ID] = client
		addresses[chain.ID] = chain.ContractAddress
		logger.Info(fmt.Sprintf("successfully connected to poll contract on chain %s", chain.Name), "address", chain.ContractAddress.Hex())
	}

	a.Contract = contract.NewReader(logger, rpcs, addresses).WithMaxConcurrentReads(cfg.MaxConcurrentReads)
	a.Index = index.NewReader(logger, indexes)

	r, err := resolver.New(logger, cfg.DataSource, a.Contract, a.Index)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Resolver = r
	a.Service = query.NewService(logger, r, a.Index, o.identity)

	return a, nil
}

// ChainID returns the given chain id, or the configured default if it is zero
func (a *App) ChainID(chainID uint64) uint64 {
	if chainID == 0 {
		return a.Config.DefaultChainID
	}

	return chainID
}

// Close releases all backend connections
func (a *App) Close() {
	for _, cleanup := range a.cleanupCommands {
		cleanup()
	}
	a.cleanupCommands = nil
}
