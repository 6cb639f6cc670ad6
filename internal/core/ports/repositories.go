package ports

import (
	"context"

	"wallet-identity/internal/core/domain"
)

// MappingStore persists the phone number mappings learned from verified
// identity metadata.
type MappingStore interface {
	GetE164NumberToSalt(ctx context.Context) (domain.E164NumberToSalt, error)
	GetE164NumberToAddress(ctx context.Context) (domain.E164NumberToAddress, error)
	// GetNumberMapping returns nil when the number is unknown.
	GetNumberMapping(ctx context.Context, e164Number string) (*domain.NumberMapping, error)
	// UpdateE164NumberSalts stores salts for new numbers. Replacing a cached
	// salt with a different one fails with domain.ErrSaltConflict.
	UpdateE164NumberSalts(ctx context.Context, salts domain.E164NumberToSalt) error
	// UpdateE164NumberAddresses adds to the address set of every number in
	// e164ToAddress and merges addressToE164 into the inverse map.
	UpdateE164NumberAddresses(ctx context.Context, e164ToAddress domain.E164NumberToAddress, addressToE164 domain.AddressToE164Number) error
}

// AccountStore holds the local account's key material and registration flags.
// Missing values are returned as zero values, not errors.
type AccountStore interface {
	GetAccount(ctx context.Context) (*domain.Account, error)
	GetDataEncryptionKey(ctx context.Context) (string, error)
	SetDataEncryptionKey(ctx context.Context, privateKey string) error
	IsDEKRegistered(ctx context.Context) (bool, error)
	SetDEKRegistered(ctx context.Context, registered bool) error
	GetSelfPhoneDetails(ctx context.Context) (*domain.PhoneNumberHashDetails, error)
	SetSelfPhoneDetails(ctx context.Context, details domain.PhoneNumberHashDetails) error
	GetWalletToAccountAddress(ctx context.Context) (domain.WalletToAccountAddress, error)
	UpdateWalletToAccountAddress(ctx context.Context, updates domain.WalletToAccountAddress) error
	UpdateAddressDEK(ctx context.Context, address string, dek string) error
}
