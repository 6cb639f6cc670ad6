package domain

import (
	"math/big"

	"github.com/google/uuid"
)

// FeedItemKind is the GraphQL typename of a wallet feed item.
type FeedItemKind string

const (
	FeedItemTokenTransfer FeedItemKind = "TokenTransfer"
	FeedItemTokenExchange FeedItemKind = "TokenExchange"
)

// TokenTransactionType describes the direction of a feed item.
type TokenTransactionType string

const (
	TokenTransactionSent             TokenTransactionType = "SENT"
	TokenTransactionReceived         TokenTransactionType = "RECEIVED"
	TokenTransactionEscrowSent       TokenTransactionType = "ESCROW_SENT"
	TokenTransactionEscrowReceived   TokenTransactionType = "ESCROW_RECEIVED"
	TokenTransactionFaucet           TokenTransactionType = "FAUCET"
	TokenTransactionVerificationFee  TokenTransactionType = "VERIFICATION_FEE"
	TokenTransactionInviteSent       TokenTransactionType = "INVITE_SENT"
	TokenTransactionInviteReceived   TokenTransactionType = "INVITE_RECEIVED"
	TokenTransactionNetworkFee       TokenTransactionType = "NETWORK_FEE"
	TokenTransactionExchange         TokenTransactionType = "EXCHANGE"
	TokenTransactionPayPrefill       TokenTransactionType = "PAY_PREFILL"
	TokenTransactionVerificationRwd  TokenTransactionType = "VERIFICATION_REWARD"
	TokenTransactionInviteRefund     TokenTransactionType = "INVITE_REFUND"
	TokenTransactionEscrowRefund     TokenTransactionType = "ESCROW_REFUND"
	TokenTransactionVerificationSent TokenTransactionType = "VERIFICATION_SENT"
)

// FeedTransaction is one item of the wallet's transaction feed.
// For received transfers Address is the sender.
type FeedTransaction struct {
	Typename FeedItemKind         `json:"__typename"`
	Type     TokenTransactionType `json:"type"`
	Hash     string               `json:"hash"`
	Address  string               `json:"address"`
	Comment  string               `json:"comment"`
}

// IsReceivedTransfer reports whether the item is an incoming token transfer.
func (t FeedTransaction) IsReceivedTransfer() bool {
	return t.Typename == FeedItemTokenTransfer && t.Type == TokenTransactionReceived
}

// TxObject is an unsigned contract call.
type TxObject struct {
	To    string   `json:"to"`
	Data  []byte   `json:"data"`
	Value *big.Int `json:"value,omitempty"`
	Gas   uint64   `json:"gas,omitempty"`
}

// TxReceipt is the mined outcome of a transaction.
type TxReceipt struct {
	TxHash      string `json:"tx_hash"`
	BlockNumber uint64 `json:"block_number"`
	Status      uint64 `json:"status"`
}

// Succeeded returns true if the transaction executed without reverting.
func (r *TxReceipt) Succeeded() bool {
	return r != nil && r.Status == 1
}

// TransactionContext labels a submitted transaction for logs and tracking.
type TransactionContext struct {
	ID          string `json:"id"`
	Tag         string `json:"tag"`
	Description string `json:"description"`
}

// NewTransactionContext creates a context with a fresh id.
func NewTransactionContext(tag, description string) TransactionContext {
	return TransactionContext{
		ID:          uuid.New().String(),
		Tag:         tag,
		Description: description,
	}
}
