package rpc

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/axelarnetwork/utils/monads/results"
)

//go:generate moq -out ./mock/client.go -pkg mock . Client

// CallResult is a custom type that allows moq to correctly generate the mock for
// results.Result with []byte.
type CallResult results.Result[[]byte]

// Result converts back to results.Result[[]byte]
func (r CallResult) Result() results.Result[[]byte] {
	return results.Result[[]byte](r)
}

// Client provides read-only contract calls to EVM JSON-RPC endpoints
type Client interface {
	// CallContract executes a message call against the given block, or the latest block if blockNumber is nil
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	// BatchCallContract executes the given message calls against the latest block in a single JSON-RPC batch.
	// Each call succeeds or fails independently.
	BatchCallContract(ctx context.Context, msgs []ethereum.CallMsg) ([]CallResult, error)
	// Close closes the client connection
	Close()
}

// NewClient returns an EVM JSON-RPC client
func NewClient(ctx context.Context, url string) (Client, error) {
	rpc, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, err
	}

	ethereumClient, err := NewEthereumClient(ctx, ethclient.NewClient(rpc), rpc)
	if err != nil {
		return nil, err
	}

	return ethereumClient, nil
}
