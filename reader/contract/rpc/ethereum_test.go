package rpc_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/utils/funcs"
	. "github.com/axelarnetwork/utils/test"
	"github.com/polypuls3/polypulse/reader/contract/rpc"
	"github.com/polypuls3/polypulse/reader/contract/rpc/mock"
	"github.com/polypuls3/polypulse/testutils/rand"
)

type rpcError struct{ msg string }

func (e rpcError) Error() string  { return e.msg }
func (e rpcError) ErrorCode() int { return 3 }

func TestNewEthereumClient(t *testing.T) {
	ethClient := &mock.EthereumJSONRPCClientMock{
		BlockNumberFunc: func(context.Context) (uint64, error) { return 0, errors.New("not an ethereum node") },
	}

	_, err := rpc.NewEthereumClient(context.Background(), ethClient, &mock.JSONRPCClientMock{})
	assert.Error(t, err)
}

func TestEthereumClient_BatchCallContract(t *testing.T) {
	var (
		rpcClient *mock.JSONRPCClientMock
		client    *rpc.EthereumClient
		msgs      []ethereum.CallMsg
		callData  map[string][]byte
	)

	givenClient := Given("an ethereum client", func() {
		ethClient := &mock.EthereumJSONRPCClientMock{
			BlockNumberFunc: func(context.Context) (uint64, error) { return 100, nil },
		}
		rpcClient = &mock.JSONRPCClientMock{}
		client = funcs.Must(rpc.NewEthereumClient(context.Background(), ethClient, rpcClient))

		to := rand.Address()
		msgs = []ethereum.CallMsg{
			{To: &to, Data: rand.Bytes(36)},
			{To: &to, Data: rand.Bytes(36)},
			{To: &to, Data: rand.Bytes(36)},
		}
		callData = map[string][]byte{}
		for _, msg := range msgs {
			callData[hexutil.Encode(msg.Data)] = rand.Bytes(32)
		}
	})

	givenClient.
		When("the batch request fails", func() {
			rpcClient.BatchCallContextFunc = func(context.Context, []gethrpc.BatchElem) error {
				return errors.New("connection refused")
			}
		}).
		Then("should return an error", func(t *testing.T) {
			_, err := client.BatchCallContract(context.Background(), msgs)
			assert.Error(t, err)
		}).
		Run(t)

	givenClient.
		When("one of the calls reverts", func() {
			rpcClient.BatchCallContextFunc = func(_ context.Context, batch []gethrpc.BatchElem) error {
				for i, elem := range batch {
					assert.Equal(t, "eth_call", elem.Method)
					assert.Equal(t, "latest", elem.Args[1])

					if i == 1 {
						batch[i].Error = rpcError{"execution reverted"}
						continue
					}

					arg := elem.Args[0].(map[string]interface{})
					*elem.Result.(*hexutil.Bytes) = callData[hexutil.Encode(arg["data"].(hexutil.Bytes))]
				}

				return nil
			}
		}).
		Then("should return the other results in order", func(t *testing.T) {
			res, err := client.BatchCallContract(context.Background(), msgs)
			assert.NoError(t, err)
			assert.Len(t, res, len(msgs))

			assert.NoError(t, res[0].Result().Err())
			assert.Equal(t, callData[hexutil.Encode(msgs[0].Data)], res[0].Result().Ok())
			assert.Error(t, res[1].Result().Err())
			assert.NoError(t, res[2].Result().Err())
			assert.Equal(t, callData[hexutil.Encode(msgs[2].Data)], res[2].Result().Ok())

			assert.Len(t, rpcClient.BatchCallContextCalls(), 1)
		}).
		Run(t)

	givenClient.
		When("there is nothing to call", func() {
			rpcClient.BatchCallContextFunc = func(context.Context, []gethrpc.BatchElem) error {
				panic("should not send an empty batch")
			}
		}).
		Then("should not send a request", func(t *testing.T) {
			res, err := client.BatchCallContract(context.Background(), nil)
			assert.NoError(t, err)
			assert.Empty(t, res)
		}).
		Run(t)
}

func TestEthereumClient_CallContract(t *testing.T) {
	expected := rand.Bytes(32)
	ethClient := &mock.EthereumJSONRPCClientMock{
		BlockNumberFunc: func(context.Context) (uint64, error) { return 100, nil },
		CallContractFunc: func(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
			return expected, nil
		},
	}

	client := funcs.Must(rpc.NewEthereumClient(context.Background(), ethClient, &mock.JSONRPCClientMock{}))
	to := common.Address{}

	actual, err := client.CallContract(context.Background(), ethereum.CallMsg{To: &to}, nil)
	assert.NoError(t, err)
	assert.Equal(t, expected, actual)
	assert.Len(t, ethClient.CallContractCalls(), 1)
}
