package chain

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const accountsABIJSON = `[
{"type":"function","name":"getWalletAddress","stateMutability":"view",
 "inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"address"}]},
{"type":"function","name":"getDataEncryptionKey","stateMutability":"view",
 "inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"bytes"}]},
{"type":"function","name":"setAccount","stateMutability":"nonpayable",
 "inputs":[{"name":"name","type":"string"},{"name":"dataEncryptionKey","type":"bytes"},{"name":"walletAddress","type":"address"}],
 "outputs":[]},
{"type":"function","name":"setAccount","stateMutability":"nonpayable",
 "inputs":[{"name":"name","type":"string"},{"name":"dataEncryptionKey","type":"bytes"},{"name":"walletAddress","type":"address"},
  {"name":"v","type":"uint8"},{"name":"r","type":"bytes32"},{"name":"s","type":"bytes32"}],
 "outputs":[]}
]`

const attestationsABIJSON = `[
{"type":"function","name":"lookupAccountsForIdentifier","stateMutability":"view",
 "inputs":[{"name":"identifier","type":"bytes32"}],"outputs":[{"name":"","type":"address[]"}]},
{"type":"function","name":"getAttestationStats","stateMutability":"view",
 "inputs":[{"name":"identifier","type":"bytes32"},{"name":"account","type":"address"}],
 "outputs":[{"name":"completed","type":"uint32"},{"name":"requested","type":"uint32"}]}
]`

const metaTxWalletABIJSON = `[
{"type":"function","name":"nonce","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
{"type":"function","name":"executeMetaTransaction","stateMutability":"nonpayable",
 "inputs":[{"name":"destination","type":"address"},{"name":"value","type":"uint256"},{"name":"data","type":"bytes"},
  {"name":"v","type":"uint8"},{"name":"r","type":"bytes32"},{"name":"s","type":"bytes32"}],
 "outputs":[{"name":"","type":"bytes"}]}
]`

const erc20ABIJSON = `[
{"type":"function","name":"balanceOf","stateMutability":"view",
 "inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}
]`

// setAccountWithSigner is the name go-ethereum gives the second setAccount
// overload.
const setAccountWithSigner = "setAccount0"

var (
	accountsABI     = mustParseABI(accountsABIJSON)
	attestationsABI = mustParseABI(attestationsABIJSON)
	metaTxWalletABI = mustParseABI(metaTxWalletABIJSON)
	erc20ABI        = mustParseABI(erc20ABIJSON)
)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("invalid contract abi: %v", err))
	}
	return parsed
}

// call packs method, runs eth_call against contract and unpacks the outputs.
func call(ctx context.Context, backend Backend, contract common.Address, parsed abi.ABI, method string, args ...any) ([]any, error) {
	data, err := parsed.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("packing %s: %w", method, err)
	}
	out, err := backend.CallContract(ctx, ethereum.CallMsg{To: &contract, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", method, err)
	}
	values, err := parsed.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("unpacking %s: %w", method, err)
	}
	return values, nil
}
