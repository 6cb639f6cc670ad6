// Package chain talks to a Celo-compatible JSON-RPC node: contract reads,
// call data for writes, meta-transaction wrapping and transaction submission.
package chain

import (
	"context"
	"fmt"
	"math/big"

	"wallet-identity/config"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Backend is the part of *ethclient.Client the adapters use.
type Backend interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// Dial connects to the node and checks it serves the configured chain.
func Dial(ctx context.Context, cfg config.ChainConfig, log zerolog.Logger) (*ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dialing rpc: %w", err)
	}
	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("reading chain id: %w", err)
	}
	if chainID.Int64() != cfg.ChainID {
		client.Close()
		return nil, fmt.Errorf("rpc serves chain %s, configured %d", chainID, cfg.ChainID)
	}

	log.Info().
		Str("rpc_url", cfg.RPCURL).
		Int64("chain_id", cfg.ChainID).
		Msg("Chain RPC connection established")
	return client, nil
}

// RateLimitedBackend throttles every RPC made through it.
type RateLimitedBackend struct {
	next    Backend
	limiter *rate.Limiter
}

// NewRateLimitedBackend allows perSecond calls with the given burst.
// A non-positive rate disables throttling.
func NewRateLimitedBackend(next Backend, perSecond float64, burst int) *RateLimitedBackend {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedBackend{next: next, limiter: rate.NewLimiter(limit, burst)}
}

func (b *RateLimitedBackend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if err := b.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return b.next.CallContract(ctx, call, blockNumber)
}

func (b *RateLimitedBackend) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	if err := b.limiter.Wait(ctx); err != nil {
		return 0, err
	}
	return b.next.EstimateGas(ctx, call)
}

func (b *RateLimitedBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	if err := b.limiter.Wait(ctx); err != nil {
		return 0, err
	}
	return b.next.PendingNonceAt(ctx, account)
}

func (b *RateLimitedBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	if err := b.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return b.next.SuggestGasPrice(ctx)
}

func (b *RateLimitedBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := b.limiter.Wait(ctx); err != nil {
		return err
	}
	return b.next.SendTransaction(ctx, tx)
}

func (b *RateLimitedBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	if err := b.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return b.next.TransactionReceipt(ctx, txHash)
}

func (b *RateLimitedBackend) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	if err := b.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return b.next.BalanceAt(ctx, account, blockNumber)
}

func (b *RateLimitedBackend) ChainID(ctx context.Context) (*big.Int, error) {
	if err := b.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return b.next.ChainID(ctx)
}

// HealthCheck implements ports.HealthChecker for the RPC node.
type HealthCheck struct {
	backend Backend
}

func NewHealthCheck(backend Backend) *HealthCheck {
	return &HealthCheck{backend: backend}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	_, err := h.backend.ChainID(ctx)
	return err
}

func (h *HealthCheck) Name() string {
	return "chain"
}
