package dto

import "wallet-identity/internal/core/domain"

// EncryptCommentRequest is the request body for comment encryption.
type EncryptCommentRequest struct {
	Comment              string `json:"comment" binding:"required" sanitize:"-"`
	ToAddress            string `json:"to_address" binding:"required,address"`
	FromAddress          string `json:"from_address" binding:"required,address"`
	IncludePhoneMetadata bool   `json:"include_phone_metadata"`
}

// EncryptCommentResponse carries the ciphertext, or the original comment when
// encryption was skipped.
type EncryptCommentResponse struct {
	Comment string `json:"comment"`
}

// DecryptCommentRequest is the request body for comment decryption.
type DecryptCommentRequest struct {
	Comment  string `json:"comment" binding:"required" sanitize:"-"`
	IsSender bool   `json:"is_sender"`
}

// FeedTransaction is one wallet feed item submitted for the metadata check.
type FeedTransaction struct {
	Typename string `json:"__typename" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Hash     string `json:"hash"`
	Address  string `json:"address" binding:"required,address"`
	Comment  string `json:"comment" sanitize:"-"`
}

// CheckTransactionsRequest is the request body for the identity metadata check.
type CheckTransactionsRequest struct {
	Transactions []FeedTransaction `json:"transactions" binding:"required,max=500,dive"`
}

// CheckTransactionsResponse reports how many claims were verified and recorded.
type CheckTransactionsResponse struct {
	VerifiedClaims int `json:"verified_claims"`
}

// SelfPhoneDetailsRequest sets the number and pepper embedded in outgoing comments.
type SelfPhoneDetailsRequest struct {
	E164Number string `json:"e164_number" binding:"required,e164_number"`
	Pepper     string `json:"pepper" binding:"required,pepper"`
}

// DataEncryptionKeyResponse is the registered public DEK of an address.
type DataEncryptionKeyResponse struct {
	Address           string  `json:"address"`
	DataEncryptionKey *string `json:"data_encryption_key"`
}

// CreateDEKRequest derives the account DEK from the backup mnemonic.
type CreateDEKRequest struct {
	Mnemonic string `json:"mnemonic" binding:"required"`
}

// CreateDEKResponse returns the public half of the new DEK.
type CreateDEKResponse struct {
	PublicKey string `json:"public_key"`
}

// RegistrationResponse reports the registration state reached.
type RegistrationResponse struct {
	State domain.DEKRegistrationState `json:"state"`
}

// RelayedRegistrationRequest is the request body for sponsored registration.
type RelayedRegistrationRequest struct {
	AccountAddress string `json:"account_address" binding:"required,address"`
	WalletAddress  string `json:"wallet_address" binding:"required,address"`
}

// GasEstimateResponse is the gas needed to register a DEK.
type GasEstimateResponse struct {
	WalletAddress string `json:"wallet_address"`
	Gas           uint64 `json:"gas"`
}

// AuthSignerQuery selects the account whose auth signer is requested.
type AuthSignerQuery struct {
	AccountAddress string `form:"account_address" binding:"required,address"`
	WalletAddress  string `form:"wallet_address" binding:"required,address"`
}

// AuthSignRequest asks for a request signature on behalf of an account.
// WalletAddress defaults to the local wallet.
type AuthSignRequest struct {
	AccountAddress string `json:"account_address" binding:"required,address"`
	WalletAddress  string `json:"wallet_address" binding:"omitempty,address"`
	Message        string `json:"message" binding:"required,max=4096"`
}

// ToDomain converts the feed items for the identity service.
func (r CheckTransactionsRequest) ToDomain() []domain.FeedTransaction {
	out := make([]domain.FeedTransaction, len(r.Transactions))
	for i, tx := range r.Transactions {
		out[i] = domain.FeedTransaction{
			Typename: domain.FeedItemKind(tx.Typename),
			Type:     domain.TokenTransactionType(tx.Type),
			Hash:     tx.Hash,
			Address:  tx.Address,
			Comment:  tx.Comment,
		}
	}
	return out
}
