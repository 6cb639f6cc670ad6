package ports

import (
	"context"
	"time"

	"wallet-identity/internal/core/domain"
)

// CommentCipher is the hybrid public-key cipher for transfer comments.
// Failures are reported through ok=false and never panic.
type CommentCipher interface {
	Encrypt(plaintext string, recipientPublicKey, senderPublicKey []byte) (ciphertext string, ok bool)
	Decrypt(ciphertext string, privateKey []byte, isSender bool) (plaintext string, ok bool)
}

// KeySealer encrypts key material before it is persisted. The associated
// data binds a sealed value to its owner.
type KeySealer interface {
	Seal(plaintext, associatedData string) (string, error)
	Open(sealed, associatedData string) (string, error)
}

// DecryptionCache memoizes decrypt results. Get returns nil on a miss.
type DecryptionCache interface {
	Get(ctx context.Context, key string) (*domain.DecryptedComment, error)
	Set(ctx context.Context, key string, value domain.DecryptedComment) error
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// RateLimitStore counts requests per key in fixed windows.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// Locker grants short-lived exclusive leases across processes.
type Locker interface {
	// TryLock returns false when the key is already held.
	TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}

// SignatureService signs outgoing relayer requests with HMAC-SHA256.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	BuildCanonicalString(method, path string, timestamp int64, body string) string
}

// TokenService handles JWT session tokens for the local wallet.
type TokenService interface {
	Generate(walletAddress string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	WalletAddress string
}

// --- Service Ports (Business Logic) ---

// DEKFetcher resolves the registered DEK public key of an address.
type DEKFetcher interface {
	// FetchDataEncryptionKey returns nil when the address has no DEK.
	FetchDataEncryptionKey(ctx context.Context, walletAddress string) ([]byte, error)
}

// CommentService encrypts outgoing and decrypts incoming transfer comments.
type CommentService interface {
	EncryptComment(ctx context.Context, req EncryptCommentRequest) (string, error)
	DecryptComment(ctx context.Context, comment, dataEncryptionKey string, isSender bool) domain.DecryptedComment
}

// EncryptCommentRequest holds input for comment encryption.
type EncryptCommentRequest struct {
	Comment              string
	ToAddress            string
	FromAddress          string
	IncludePhoneMetadata bool
}

// IdentityService verifies phone number claims and reconciles local mappings.
type IdentityService interface {
	// CheckTransactionsForIdentityMetadata never fails; it reports how many
	// claims were verified and recorded.
	CheckTransactionsForIdentityMetadata(ctx context.Context, txs []domain.FeedTransaction) int
	VerifyIdentityMetadata(ctx context.Context, claims []domain.IdentityMetadata) ([]domain.IdentityMetadata, error)
	UpdatePhoneNumberMappings(ctx context.Context, verified []domain.IdentityMetadata) error
	GetNumberMapping(ctx context.Context, e164Number string) (*domain.NumberMapping, error)
	SetSelfPhoneDetails(ctx context.Context, details domain.PhoneNumberHashDetails) error
}

// DEKService manages the data encryption key and its on-chain registration.
type DEKService interface {
	DEKFetcher
	// RegisterAccountDEK swallows failures and reports the state reached.
	RegisterAccountDEK(ctx context.Context) domain.DEKRegistrationState
	// RegisterWalletAndDEKViaRelayer surfaces every failure to the caller.
	RegisterWalletAndDEKViaRelayer(ctx context.Context, accountAddress, walletAddress string) (domain.DEKRegistrationState, error)
	IsAccountUpToDate(ctx context.Context, accountAddress, walletAddress, dataEncryptionKey string) (bool, error)
	CreateAccountDEK(ctx context.Context, mnemonic string) (string, error)
	EstimateRegisterDEKGas(ctx context.Context, walletAddress string) (uint64, error)
	GetAuthSignerForAccount(ctx context.Context, accountAddress, walletAddress string) (*domain.AuthSigner, error)
	// SignForAuth signs message with the key GetAuthSignerForAccount selects.
	SignForAuth(ctx context.Context, accountAddress, walletAddress, message string) (*domain.AuthSignature, error)
	GetDataEncryptionKey(ctx context.Context) (string, error)
}
