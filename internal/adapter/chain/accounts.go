package chain

import (
	"context"
	"fmt"

	"wallet-identity/internal/core/domain"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Accounts implements ports.AccountsContract.
type Accounts struct {
	backend Backend
	address common.Address
}

// NewAccounts binds the Accounts registry deployed at address.
func NewAccounts(backend Backend, address string) *Accounts {
	return &Accounts{backend: backend, address: common.HexToAddress(address)}
}

// GetWalletAddress returns "" when the account has no wallet set.
func (a *Accounts) GetWalletAddress(ctx context.Context, account string) (string, error) {
	values, err := call(ctx, a.backend, a.address, accountsABI, "getWalletAddress", common.HexToAddress(account))
	if err != nil {
		return "", err
	}
	wallet := values[0].(common.Address)
	if wallet == (common.Address{}) {
		return "", nil
	}
	return wallet.Hex(), nil
}

// GetDataEncryptionKey returns the registered public DEK as 0x hex, or "".
func (a *Accounts) GetDataEncryptionKey(ctx context.Context, account string) (string, error) {
	values, err := call(ctx, a.backend, a.address, accountsABI, "getDataEncryptionKey", common.HexToAddress(account))
	if err != nil {
		return "", err
	}
	key := values[0].([]byte)
	if len(key) == 0 {
		return "", nil
	}
	return hexutil.Encode(key), nil
}

// SetAccountTx builds setAccount call data. With a proof the overload that
// authorizes walletAddress as signer is used.
func (a *Accounts) SetAccountTx(name, dataEncryptionKey, walletAddress string, proof *domain.ProofOfPossession) (*domain.TxObject, error) {
	if !common.IsHexAddress(walletAddress) {
		return nil, fmt.Errorf("invalid wallet address %q", walletAddress)
	}
	key, err := hexutil.Decode(domain.EnsureLeading0x(dataEncryptionKey))
	if err != nil {
		return nil, fmt.Errorf("invalid data encryption key: %w", err)
	}

	var data []byte
	if proof == nil {
		data, err = accountsABI.Pack("setAccount", name, key, common.HexToAddress(walletAddress))
	} else {
		data, err = accountsABI.Pack(setAccountWithSigner, name, key, common.HexToAddress(walletAddress),
			proof.V, proof.R, proof.S)
	}
	if err != nil {
		return nil, fmt.Errorf("packing setAccount: %w", err)
	}
	return &domain.TxObject{To: a.address.Hex(), Data: data}, nil
}

// EstimateGas estimates tx sent from the given address.
func (a *Accounts) EstimateGas(ctx context.Context, from string, tx *domain.TxObject) (uint64, error) {
	to := common.HexToAddress(tx.To)
	gas, err := a.backend.EstimateGas(ctx, ethereum.CallMsg{
		From:  common.HexToAddress(from),
		To:    &to,
		Data:  tx.Data,
		Value: tx.Value,
	})
	if err != nil {
		return 0, fmt.Errorf("estimating gas: %w", err)
	}
	return gas, nil
}
