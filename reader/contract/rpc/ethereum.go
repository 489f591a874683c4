package rpc

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/axelarnetwork/utils/monads/results"
	"github.com/axelarnetwork/utils/slices"
)

//go:generate moq -out ./mock/ethereum.go -pkg mock . EthereumJSONRPCClient JSONRPCClient

// EthereumJSONRPCClient represents the functionality of github.com/ethereum/go-ethereum/ethclient.Client
type EthereumJSONRPCClient interface {
	BlockNumber(ctx context.Context) (uint64, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	Close()
}

// JSONRPCClient represents the functionality of github.com/ethereum/go-ethereum/rpc.Client
type JSONRPCClient interface {
	BatchCallContext(ctx context.Context, b []rpc.BatchElem) error
}

// EthereumClient is a JSON-RPC client of any Ethereum-compatible chain
type EthereumClient struct {
	EthereumJSONRPCClient
	rpc JSONRPCClient
}

// NewEthereumClient is the constructor
func NewEthereumClient(ctx context.Context, ethClient EthereumJSONRPCClient, rpc JSONRPCClient) (*EthereumClient, error) {
	client := &EthereumClient{
		EthereumJSONRPCClient: ethClient,
		rpc:                   rpc,
	}
	// validate that the given url implements standard ethereum JSON-RPC
	if _, err := client.BlockNumber(ctx); err != nil {
		return nil, err
	}

	return client, nil
}

// BatchCallContract executes the given message calls against the latest block in a single JSON-RPC batch
func (c *EthereumClient) BatchCallContract(ctx context.Context, msgs []ethereum.CallMsg) ([]CallResult, error) {
	if len(msgs) == 0 {
		return nil, nil
	}

	batch := slices.Map(msgs, func(msg ethereum.CallMsg) rpc.BatchElem {
		var result hexutil.Bytes
		return rpc.BatchElem{
			Method: "eth_call",
			Args:   []interface{}{toCallArg(msg), toBlockNumArg(nil)},
			Result: &result,
		}
	})

	if err := c.rpc.BatchCallContext(ctx, batch); err != nil {
		return nil, fmt.Errorf("unable to send batch request: %v", err)
	}

	return slices.Map(batch, func(elem rpc.BatchElem) CallResult {
		if elem.Error != nil {
			return CallResult(results.FromErr[[]byte](elem.Error))
		}
		return CallResult(results.FromOk([]byte(*elem.Result.(*hexutil.Bytes))))
	}), nil
}

// copied from https://github.com/ethereum/go-ethereum/blob/v1.10.26/ethclient/ethclient.go#L536
func toBlockNumArg(number *big.Int) string {
	if number == nil {
		return "latest"
	}

	return hexutil.EncodeBig(number)
}

// copied from https://github.com/ethereum/go-ethereum/blob/v1.10.26/ethclient/ethclient.go#L571
func toCallArg(msg ethereum.CallMsg) interface{} {
	arg := map[string]interface{}{
		"from": msg.From,
		"to":   msg.To,
	}
	if len(msg.Data) > 0 {
		arg["data"] = hexutil.Bytes(msg.Data)
	}
	if msg.Value != nil {
		arg["value"] = (*hexutil.Big)(msg.Value)
	}
	if msg.Gas != 0 {
		arg["gas"] = hexutil.Uint64(msg.Gas)
	}
	if msg.GasPrice != nil {
		arg["gasPrice"] = (*hexutil.Big)(msg.GasPrice)
	}

	return arg
}
