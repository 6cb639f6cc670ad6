package chain

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"wallet-identity/internal/core/domain"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testWalletKey = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	accountsAddr  = "0x7d21685C17607338b313a7174bAb6620baD0aaB7"
	attestAddr    = "0xdC553892cdeeeD9f575aa0FBA099e5847fd88D20"
	stableAddr    = "0x874069Fa1Eb16D44d622F2e0Ca25eeA172369bC1"
	mtwAddr       = "0x4444444444444444444444444444444444444444"
	otherAddr     = "0x1111111111111111111111111111111111111111"
	testChainID   = 44787
)

var testPhoneHash = "0xb9942324340b7bb364ddf94c6626c09efbb3d6f0fa2fbf0770064dad7c318a1e"

// fakeBackend answers eth_call by method selector and records submissions.
type fakeBackend struct {
	mu        sync.Mutex
	calls     map[string]func(data []byte) ([]byte, error)
	sent      []*types.Transaction
	receipts  int
	gas       uint64
	nonce     uint64
	balance   *big.Int
	estimates []ethereum.CallMsg
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{calls: make(map[string]func([]byte) ([]byte, error)), gas: 90_000, balance: big.NewInt(0)}
}

func (f *fakeBackend) on(parsed abi.ABI, method string, fn func(args []any) ([]any, error)) {
	m := parsed.Methods[method]
	f.calls[string(m.ID)] = func(data []byte) ([]byte, error) {
		args, err := m.Inputs.Unpack(data[4:])
		if err != nil {
			return nil, err
		}
		out, err := fn(args)
		if err != nil {
			return nil, err
		}
		return m.Outputs.Pack(out...)
	}
}

func (f *fakeBackend) CallContract(_ context.Context, call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	fn, ok := f.calls[string(call.Data[:4])]
	if !ok {
		return nil, errors.New("execution reverted")
	}
	return fn(call.Data)
}

func (f *fakeBackend) EstimateGas(_ context.Context, call ethereum.CallMsg) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.estimates = append(f.estimates, call)
	return f.gas, nil
}

func (f *fakeBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return f.nonce, nil
}

func (f *fakeBackend) SuggestGasPrice(context.Context) (*big.Int, error) {
	return big.NewInt(5_000_000_000), nil
}

func (f *fakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, tx)
	return nil
}

// TransactionReceipt reports the transaction as pending once before mining it.
func (f *fakeBackend) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.receipts++
	if f.receipts < 2 {
		return nil, ethereum.NotFound
	}
	return &types.Receipt{TxHash: hash, BlockNumber: big.NewInt(77), Status: types.ReceiptStatusSuccessful}, nil
}

func (f *fakeBackend) BalanceAt(context.Context, common.Address, *big.Int) (*big.Int, error) {
	return f.balance, nil
}

func (f *fakeBackend) ChainID(context.Context) (*big.Int, error) {
	return big.NewInt(testChainID), nil
}

func newTestWallet(t *testing.T, backend Backend) *KeyWallet {
	t.Helper()
	w, err := NewKeyWallet(backend, "0x"+testWalletKey, WalletOptions{
		ChainID:             testChainID,
		ReceiptPollInterval: time.Millisecond,
		ReceiptTimeout:      time.Second,
	}, zerolog.Nop())
	require.NoError(t, err)
	return w
}

func TestAccounts_Reads(t *testing.T) {
	backend := newFakeBackend()
	wallet := common.HexToAddress(otherAddr)
	dek := common.FromHex("0x03c574017726e2006eb8f78ec5d6b0790c727ce586f6653af588620b769f380d02")
	backend.on(accountsABI, "getWalletAddress", func(args []any) ([]any, error) {
		if args[0].(common.Address) == common.HexToAddress(mtwAddr) {
			return []any{wallet}, nil
		}
		return []any{common.Address{}}, nil
	})
	backend.on(accountsABI, "getDataEncryptionKey", func(args []any) ([]any, error) {
		if args[0].(common.Address) == common.HexToAddress(mtwAddr) {
			return []any{dek}, nil
		}
		return []any{[]byte{}}, nil
	})
	accounts := NewAccounts(backend, accountsAddr)
	ctx := context.Background()

	got, err := accounts.GetWalletAddress(ctx, mtwAddr)
	require.NoError(t, err)
	assert.Equal(t, wallet.Hex(), got)

	got, err = accounts.GetWalletAddress(ctx, otherAddr)
	require.NoError(t, err)
	assert.Empty(t, got, "zero address means unset")

	key, err := accounts.GetDataEncryptionKey(ctx, mtwAddr)
	require.NoError(t, err)
	assert.Equal(t, "0x03c574017726e2006eb8f78ec5d6b0790c727ce586f6653af588620b769f380d02", key)

	key, err = accounts.GetDataEncryptionKey(ctx, otherAddr)
	require.NoError(t, err)
	assert.Empty(t, key)
}

func TestAccounts_SetAccountTx(t *testing.T) {
	accounts := NewAccounts(newFakeBackend(), accountsAddr)

	t.Run("without proof", func(t *testing.T) {
		tx, err := accounts.SetAccountTx("", domain.PlaceholderDEK, otherAddr, nil)
		require.NoError(t, err)
		assert.Equal(t, common.HexToAddress(accountsAddr).Hex(), tx.To)
		assert.Equal(t, accountsABI.Methods["setAccount"].ID, tx.Data[:4])

		args, err := accountsABI.Methods["setAccount"].Inputs.Unpack(tx.Data[4:])
		require.NoError(t, err)
		assert.Equal(t, common.FromHex(domain.PlaceholderDEK), args[1])
		assert.Equal(t, common.HexToAddress(otherAddr), args[2])
	})

	t.Run("with proof", func(t *testing.T) {
		proof := &domain.ProofOfPossession{V: 28, R: [32]byte{1}, S: [32]byte{2}}
		tx, err := accounts.SetAccountTx("", domain.PlaceholderDEK, otherAddr, proof)
		require.NoError(t, err)
		assert.Equal(t, accountsABI.Methods[setAccountWithSigner].ID, tx.Data[:4])

		args, err := accountsABI.Methods[setAccountWithSigner].Inputs.Unpack(tx.Data[4:])
		require.NoError(t, err)
		assert.Equal(t, uint8(28), args[3])
		assert.Equal(t, [32]byte{1}, args[4])
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := accounts.SetAccountTx("", domain.PlaceholderDEK, "nope", nil)
		assert.Error(t, err)
		_, err = accounts.SetAccountTx("", "0xzz", otherAddr, nil)
		assert.Error(t, err)
	})
}

func TestAccounts_EstimateGas(t *testing.T) {
	backend := newFakeBackend()
	accounts := NewAccounts(backend, accountsAddr)
	tx := &domain.TxObject{To: accountsAddr, Data: []byte{1, 2}}

	gas, err := accounts.EstimateGas(context.Background(), otherAddr, tx)
	require.NoError(t, err)
	assert.Equal(t, uint64(90_000), gas)
	require.Len(t, backend.estimates, 1)
	assert.Equal(t, common.HexToAddress(otherAddr), backend.estimates[0].From)
}

func TestAttestationRule(t *testing.T) {
	rule := AttestationRule{Required: 3, Threshold: 0.25}
	assert.True(t, rule.Verified(3, 3))
	assert.True(t, rule.Verified(3, 12))
	assert.False(t, rule.Verified(3, 13))
	assert.False(t, rule.Verified(2, 2))
	assert.False(t, AttestationRule{Threshold: 0.1}.Verified(0, 0))
	assert.True(t, AttestationRule{}.Verified(0, 0))
}

func TestAttestations(t *testing.T) {
	backend := newFakeBackend()
	verified := common.HexToAddress(mtwAddr)
	unverified := common.HexToAddress(otherAddr)
	backend.on(attestationsABI, "lookupAccountsForIdentifier", func(args []any) ([]any, error) {
		assert.Equal(t, common.HexToHash(testPhoneHash), common.Hash(args[0].([32]byte)))
		return []any{[]common.Address{unverified, verified}}, nil
	})
	backend.on(attestationsABI, "getAttestationStats", func(args []any) ([]any, error) {
		if args[1].(common.Address) == verified {
			return []any{uint32(3), uint32(4)}, nil
		}
		return []any{uint32(1), uint32(5)}, nil
	})
	attestations := NewAttestations(backend, attestAddr, AttestationRule{Required: 3, Threshold: 0.25}, 4)
	ctx := context.Background()

	accounts, err := attestations.LookupAccountsForIdentifier(ctx, testPhoneHash)
	require.NoError(t, err)
	assert.Equal(t, []string{unverified.Hex(), verified.Hex()}, accounts)

	kept, err := attestations.FilterNonVerifiedAddresses(ctx, accounts, testPhoneHash)
	require.NoError(t, err)
	assert.Equal(t, []string{verified.Hex()}, kept)

	_, err = attestations.LookupAccountsForIdentifier(ctx, "0x1234")
	assert.Error(t, err)
}

func TestKeyWallet_SignProofOfPossession(t *testing.T) {
	w := newTestWallet(t, newFakeBackend())

	proof, err := w.SignProofOfPossession(context.Background(), mtwAddr, w.Address())
	require.NoError(t, err)
	assert.Contains(t, []uint8{27, 28}, proof.V)

	sig := append(append(proof.R[:], proof.S[:]...), proof.V-27)
	digest := crypto.Keccak256(common.HexToAddress(mtwAddr).Bytes())
	hash := crypto.Keccak256([]byte("\x19Ethereum Signed Message:\n32"), digest)
	pub, err := crypto.SigToPub(hash, sig)
	require.NoError(t, err)
	assert.Equal(t, w.Address(), crypto.PubkeyToAddress(*pub).Hex())

	_, err = w.SignProofOfPossession(context.Background(), mtwAddr, otherAddr)
	assert.Error(t, err, "only the local key can sign")
}

func TestKeyWallet_SendTransaction(t *testing.T) {
	backend := newFakeBackend()
	backend.nonce = 7
	w := newTestWallet(t, backend)
	txCtx := domain.NewTransactionContext("test", "send")

	receipt, err := w.SendTransaction(context.Background(),
		&domain.TxObject{To: accountsAddr, Data: []byte{9}}, w.Address(), txCtx)
	require.NoError(t, err)
	assert.True(t, receipt.Succeeded())
	assert.Equal(t, uint64(77), receipt.BlockNumber)
	assert.GreaterOrEqual(t, backend.receipts, 2)

	require.Len(t, backend.sent, 1)
	sent := backend.sent[0]
	assert.Equal(t, uint64(7), sent.Nonce())
	assert.Equal(t, uint64(90_000), sent.Gas())
	assert.Equal(t, sent.Hash().Hex(), receipt.TxHash)
	from, err := types.Sender(types.LatestSignerForChainID(big.NewInt(testChainID)), sent)
	require.NoError(t, err)
	assert.Equal(t, w.Address(), from.Hex())

	_, err = w.SendTransaction(context.Background(), &domain.TxObject{To: accountsAddr}, otherAddr, txCtx)
	assert.Error(t, err)
}

type stuckBackend struct{ *fakeBackend }

func (stuckBackend) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	return nil, ethereum.NotFound
}

func TestKeyWallet_ReceiptTimeout(t *testing.T) {
	backend := stuckBackend{newFakeBackend()}
	w, err := NewKeyWallet(backend, testWalletKey, WalletOptions{
		ChainID:             testChainID,
		ReceiptPollInterval: time.Millisecond,
		ReceiptTimeout:      20 * time.Millisecond,
	}, zerolog.Nop())
	require.NoError(t, err)

	_, err = w.SendTransaction(context.Background(), &domain.TxObject{To: accountsAddr, Gas: 21000}, w.Address(), domain.TransactionContext{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// flakyBackend fails the first receipt reads the way a node behind a load
// balancer sometimes does.
type flakyBackend struct {
	*fakeBackend
	failures int
}

func (f *flakyBackend) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	failing := f.failures > 0
	if failing {
		f.failures--
	}
	f.mu.Unlock()
	if failing {
		return nil, errors.New("502 bad gateway")
	}
	return f.fakeBackend.TransactionReceipt(ctx, hash)
}

func TestKeyWallet_ReceiptSurvivesTransientErrors(t *testing.T) {
	backend := &flakyBackend{fakeBackend: newFakeBackend(), failures: 3}
	w := newTestWallet(t, backend)

	receipt, err := w.SendTransaction(context.Background(), &domain.TxObject{To: accountsAddr, Gas: 21000}, w.Address(), domain.TransactionContext{})
	require.NoError(t, err)
	assert.True(t, receipt.Succeeded())
	assert.Equal(t, 0, backend.failures)
}

func TestKeyWallet_ReceiptTimeoutKeepsLastError(t *testing.T) {
	backend := &flakyBackend{fakeBackend: newFakeBackend(), failures: 1 << 30}
	w, err := NewKeyWallet(backend, testWalletKey, WalletOptions{
		ChainID:             testChainID,
		ReceiptPollInterval: time.Millisecond,
		ReceiptTimeout:      20 * time.Millisecond,
	}, zerolog.Nop())
	require.NoError(t, err)

	_, err = w.SendTransaction(context.Background(), &domain.TxObject{To: accountsAddr, Gas: 21000}, w.Address(), domain.TransactionContext{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "502 bad gateway")
}

func TestKeyWallet_SignPersonalMessage(t *testing.T) {
	w := newTestWallet(t, newFakeBackend())
	message := []byte("GET /v1/profile")

	out, err := w.SignPersonalMessage(context.Background(), message, w.Address())
	require.NoError(t, err)
	sig := common.FromHex(out)
	require.Len(t, sig, 65)
	assert.Contains(t, []byte{27, 28}, sig[64])

	sig[64] -= 27
	hash := crypto.Keccak256([]byte("\x19Ethereum Signed Message:\n15"), message)
	pub, err := crypto.SigToPub(hash, sig)
	require.NoError(t, err)
	assert.Equal(t, w.Address(), crypto.PubkeyToAddress(*pub).Hex())

	_, err = w.SignPersonalMessage(context.Background(), message, otherAddr)
	assert.Error(t, err)
}

func TestKeyWallet_SendsLegacyTransactions(t *testing.T) {
	backend := newFakeBackend()
	w := newTestWallet(t, backend)

	_, err := w.SendTransaction(context.Background(), &domain.TxObject{To: accountsAddr, Gas: 21000}, w.Address(), domain.TransactionContext{})
	require.NoError(t, err)
	require.Len(t, backend.sent, 1)
	assert.Equal(t, uint8(types.LegacyTxType), backend.sent[0].Type())
	assert.Equal(t, int64(5_000_000_000), backend.sent[0].GasPrice().Int64())
}

func TestMetaTxWallet_WrapMetaTransaction(t *testing.T) {
	backend := newFakeBackend()
	backend.on(metaTxWalletABI, "nonce", func([]any) ([]any, error) {
		return []any{big.NewInt(3)}, nil
	})
	w := newTestWallet(t, backend)
	mtw := NewMetaTxWallet(backend, w, testChainID)
	inner := &domain.TxObject{To: accountsAddr, Data: []byte{0xca, 0xfe}}

	wrapped, err := mtw.WrapMetaTransaction(context.Background(), mtwAddr, inner, w.Address())
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(mtwAddr).Hex(), wrapped.To)

	method := metaTxWalletABI.Methods["executeMetaTransaction"]
	require.True(t, bytes.Equal(method.ID, wrapped.Data[:4]))
	args, err := method.Inputs.Unpack(wrapped.Data[4:])
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(accountsAddr), args[0])
	assert.Equal(t, []byte{0xca, 0xfe}, args[2])

	hash, err := mtw.executeMetaTransactionHash(common.HexToAddress(mtwAddr), common.HexToAddress(accountsAddr),
		big.NewInt(0), inner.Data, big.NewInt(3))
	require.NoError(t, err)
	r, s := args[4].([32]byte), args[5].([32]byte)
	sig := append(append(r[:], s[:]...), args[3].(uint8)-27)
	pub, err := crypto.SigToPub(hash, sig)
	require.NoError(t, err)
	assert.Equal(t, w.Address(), crypto.PubkeyToAddress(*pub).Hex())
}

func TestMetaTxWallet_HashDependsOnNonce(t *testing.T) {
	mtw := NewMetaTxWallet(newFakeBackend(), nil, testChainID)
	a, err := mtw.executeMetaTransactionHash(common.HexToAddress(mtwAddr), common.HexToAddress(accountsAddr), big.NewInt(0), nil, big.NewInt(1))
	require.NoError(t, err)
	b, err := mtw.executeMetaTransactionHash(common.HexToAddress(mtwAddr), common.HexToAddress(accountsAddr), big.NewInt(0), nil, big.NewInt(2))
	require.NoError(t, err)
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestBalances(t *testing.T) {
	backend := newFakeBackend()
	backend.balance = big.NewInt(42)
	backend.on(erc20ABI, "balanceOf", func([]any) ([]any, error) {
		return []any{big.NewInt(1_000)}, nil
	})
	ctx := context.Background()

	withStable := NewBalances(backend, stableAddr)
	stable, err := withStable.StableBalance(ctx, otherAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(1_000), stable.Int64())

	native, err := withStable.NativeBalance(ctx, otherAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(42), native.Int64())

	stable, err = NewBalances(backend, "").StableBalance(ctx, otherAddr)
	require.NoError(t, err)
	assert.Nil(t, stable)
}

func TestRateLimitedBackend(t *testing.T) {
	limited := NewRateLimitedBackend(newFakeBackend(), 1, 1)

	_, err := limited.ChainID(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = limited.ChainID(ctx)
	assert.Error(t, err, "second call must wait past the deadline")

	unlimited := NewRateLimitedBackend(newFakeBackend(), 0, 0)
	for i := 0; i < 5; i++ {
		_, err := unlimited.ChainID(context.Background())
		require.NoError(t, err)
	}
}

func TestHealthCheck(t *testing.T) {
	hc := NewHealthCheck(newFakeBackend())
	assert.Equal(t, "chain", hc.Name())
	assert.NoError(t, hc.Ping(context.Background()))
}
