package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Balances implements ports.BalanceReader.
type Balances struct {
	backend     Backend
	stableToken common.Address
	hasStable   bool
}

// NewBalances reads native balances and, when stableTokenAddress is set, the
// stable token balance.
func NewBalances(backend Backend, stableTokenAddress string) *Balances {
	return &Balances{
		backend:     backend,
		stableToken: common.HexToAddress(stableTokenAddress),
		hasStable:   common.IsHexAddress(stableTokenAddress),
	}
}

// StableBalance returns nil when no stable token is configured.
func (b *Balances) StableBalance(ctx context.Context, address string) (*big.Int, error) {
	if !b.hasStable {
		return nil, nil
	}
	values, err := call(ctx, b.backend, b.stableToken, erc20ABI, "balanceOf", common.HexToAddress(address))
	if err != nil {
		return nil, err
	}
	return values[0].(*big.Int), nil
}

func (b *Balances) NativeBalance(ctx context.Context, address string) (*big.Int, error) {
	balance, err := b.backend.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, fmt.Errorf("reading native balance: %w", err)
	}
	return balance, nil
}
