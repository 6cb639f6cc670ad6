package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"time"

	"wallet-identity/internal/core/domain"
	"wallet-identity/pkg/logger"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"
)

// WalletOptions tunes receipt polling.
type WalletOptions struct {
	ChainID             int64
	ReceiptPollInterval time.Duration
	ReceiptTimeout      time.Duration
}

// KeyWallet signs with the local wallet key and implements ports.TxSender.
type KeyWallet struct {
	backend Backend
	key     *ecdsa.PrivateKey
	address common.Address
	chainID *big.Int
	opts    WalletOptions
	log     zerolog.Logger
}

// NewKeyWallet loads the hex private key of the wallet.
func NewKeyWallet(backend Backend, privateKeyHex string, opts WalletOptions, log zerolog.Logger) (*KeyWallet, error) {
	key, err := crypto.HexToECDSA(domain.StripLeading0x(privateKeyHex))
	if err != nil {
		return nil, fmt.Errorf("parsing wallet key: %w", err)
	}
	if opts.ReceiptPollInterval <= 0 {
		opts.ReceiptPollInterval = time.Second
	}
	if opts.ReceiptTimeout <= 0 {
		opts.ReceiptTimeout = 2 * time.Minute
	}
	return &KeyWallet{
		backend: backend,
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		chainID: big.NewInt(opts.ChainID),
		opts:    opts,
		log:     logger.Component(log, "chain/wallet"),
	}, nil
}

// Address returns the wallet address.
func (w *KeyWallet) Address() string {
	return w.address.Hex()
}

func (w *KeyWallet) checkSigner(signer string) error {
	if !domain.EqAddress(signer, w.address.Hex()) {
		return fmt.Errorf("no key for signer %s", signer)
	}
	return nil
}

// SignHash signs a 32-byte digest as signer. V is returned as 27 or 28.
func (w *KeyWallet) SignHash(signer string, hash []byte) (*domain.ProofOfPossession, error) {
	if err := w.checkSigner(signer); err != nil {
		return nil, err
	}
	sig, err := crypto.Sign(hash, w.key)
	if err != nil {
		return nil, fmt.Errorf("signing: %w", err)
	}
	proof := &domain.ProofOfPossession{V: sig[64] + 27}
	copy(proof.R[:], sig[:32])
	copy(proof.S[:], sig[32:64])
	return proof, nil
}

// SignProofOfPossession signs keccak256(account) as a personal message,
// proving the signer key authorizes the account.
func (w *KeyWallet) SignProofOfPossession(_ context.Context, account, signer string) (*domain.ProofOfPossession, error) {
	if !common.IsHexAddress(account) {
		return nil, fmt.Errorf("invalid account address %q", account)
	}
	digest := crypto.Keccak256(common.HexToAddress(account).Bytes())
	return w.SignHash(signer, accounts.TextHash(digest))
}

// SignPersonalMessage signs message with the personal_sign prefix.
func (w *KeyWallet) SignPersonalMessage(_ context.Context, message []byte, signer string) (string, error) {
	proof, err := w.SignHash(signer, accounts.TextHash(message))
	if err != nil {
		return "", err
	}
	sig := make([]byte, 0, 65)
	sig = append(append(append(sig, proof.R[:]...), proof.S[:]...), proof.V)
	return hexutil.Encode(sig), nil
}

// SendTransaction signs tx as from, submits it and waits for the receipt.
// Transactions are legacy typed and priced with SuggestGasPrice.
func (w *KeyWallet) SendTransaction(ctx context.Context, tx *domain.TxObject, from string, txCtx domain.TransactionContext) (*domain.TxReceipt, error) {
	if err := w.checkSigner(from); err != nil {
		return nil, err
	}
	to := common.HexToAddress(tx.To)
	value := tx.Value
	if value == nil {
		value = new(big.Int)
	}

	nonce, err := w.backend.PendingNonceAt(ctx, w.address)
	if err != nil {
		return nil, fmt.Errorf("reading nonce: %w", err)
	}
	gasPrice, err := w.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading gas price: %w", err)
	}
	gas := tx.Gas
	if gas == 0 {
		gas, err = w.backend.EstimateGas(ctx, ethereum.CallMsg{From: w.address, To: &to, Data: tx.Data, Value: value})
		if err != nil {
			return nil, fmt.Errorf("estimating gas: %w", err)
		}
	}

	signed, err := types.SignTx(types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       &to,
		Value:    value,
		Data:     tx.Data,
	}), types.LatestSignerForChainID(w.chainID), w.key)
	if err != nil {
		return nil, fmt.Errorf("signing transaction: %w", err)
	}
	if err := w.backend.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("sending transaction: %w", err)
	}

	w.log.Info().
		Str("tx_id", txCtx.ID).
		Str("tag", txCtx.Tag).
		Str("tx_hash", signed.Hash().Hex()).
		Uint64("nonce", nonce).
		Msg(txCtx.Description)

	receipt, err := w.waitMined(ctx, signed.Hash())
	if err != nil {
		return nil, err
	}
	return &domain.TxReceipt{
		TxHash:      receipt.TxHash.Hex(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		Status:      receipt.Status,
	}, nil
}

// waitMined polls until the receipt shows up or ReceiptTimeout passes. RPC
// errors other than NotFound are retried on the next tick.
func (w *KeyWallet) waitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, w.opts.ReceiptTimeout)
	defer cancel()

	ticker := time.NewTicker(w.opts.ReceiptPollInterval)
	defer ticker.Stop()
	var lastErr error
	for {
		receipt, err := w.backend.TransactionReceipt(ctx, hash)
		switch {
		case err == nil:
			return receipt, nil
		case errors.Is(err, ethereum.NotFound):
		default:
			lastErr = err
			w.log.Debug().Err(err).Str("tx_hash", hash.Hex()).Msg("receipt retrieval failed")
		}
		select {
		case <-ctx.Done():
			if lastErr != nil {
				return nil, fmt.Errorf("waiting for %s: %w (last error: %v)", hash.Hex(), ctx.Err(), lastErr)
			}
			return nil, fmt.Errorf("waiting for %s: %w", hash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}
