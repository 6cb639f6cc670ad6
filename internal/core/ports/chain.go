package ports

import (
	"context"
	"math/big"

	"wallet-identity/internal/core/domain"
)

// AccountsContract reads and builds writes for the on-chain Accounts registry.
// Empty strings stand for unset values.
type AccountsContract interface {
	GetWalletAddress(ctx context.Context, account string) (string, error)
	GetDataEncryptionKey(ctx context.Context, account string) (string, error)
	// SetAccountTx builds setAccount. A nil proof targets the overload
	// without signer authorization.
	SetAccountTx(name, dataEncryptionKey, walletAddress string, proof *domain.ProofOfPossession) (*domain.TxObject, error)
	EstimateGas(ctx context.Context, from string, tx *domain.TxObject) (uint64, error)
}

// AttestationsContract resolves phone hashes to attested accounts.
type AttestationsContract interface {
	LookupAccountsForIdentifier(ctx context.Context, phoneHash string) ([]string, error)
	// FilterNonVerifiedAddresses keeps only accounts that completed enough attestations.
	FilterNonVerifiedAddresses(ctx context.Context, accounts []string, phoneHash string) ([]string, error)
}

// MetaTxWallet wraps calls so they execute through a meta-transaction wallet.
type MetaTxWallet interface {
	WrapMetaTransaction(ctx context.Context, mtwAddress string, inner *domain.TxObject, signer string) (*domain.TxObject, error)
}

// TxSender signs and submits transactions on behalf of the local wallet and
// blocks until they are mined.
type TxSender interface {
	SendTransaction(ctx context.Context, tx *domain.TxObject, from string, txCtx domain.TransactionContext) (*domain.TxReceipt, error)
	SignProofOfPossession(ctx context.Context, account, signer string) (*domain.ProofOfPossession, error)
	// SignPersonalMessage returns the 65-byte personal_sign signature, hex encoded.
	SignPersonalMessage(ctx context.Context, message []byte, signer string) (string, error)
}

// BalanceReader reports balances. A nil balance means unknown.
type BalanceReader interface {
	StableBalance(ctx context.Context, address string) (*big.Int, error)
	NativeBalance(ctx context.Context, address string) (*big.Int, error)
}

// Relayer submits registrations paid for by a third party.
type Relayer interface {
	SetAccount(ctx context.Context, accountAddress, name, dataEncryptionKey, walletAddress string) (*domain.TxReceipt, error)
}
