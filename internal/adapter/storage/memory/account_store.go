package memory

import (
	"context"
	"sync"

	"wallet-identity/internal/core/domain"
)

// AccountStore implements ports.AccountStore in memory for one account.
type AccountStore struct {
	mu             sync.RWMutex
	account        domain.Account
	dek            string
	dekRegistered  bool
	self           *domain.PhoneNumberHashDetails
	walletAccounts domain.WalletToAccountAddress
	addressDEKs    domain.AddressToDataEncryptionKey
}

func NewAccountStore(account domain.Account) *AccountStore {
	account.WalletAddress = domain.NormalizeAddress(account.WalletAddress)
	if account.MTWAddress != "" {
		account.MTWAddress = domain.NormalizeAddress(account.MTWAddress)
	}
	return &AccountStore{
		account:        account,
		walletAccounts: make(domain.WalletToAccountAddress),
		addressDEKs:    make(domain.AddressToDataEncryptionKey),
	}
}

func (s *AccountStore) GetAccount(_ context.Context) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account := s.account
	return &account, nil
}

func (s *AccountStore) GetDataEncryptionKey(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dek, nil
}

func (s *AccountStore) SetDataEncryptionKey(_ context.Context, privateKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dek = privateKey
	return nil
}

func (s *AccountStore) IsDEKRegistered(_ context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dekRegistered, nil
}

func (s *AccountStore) SetDEKRegistered(_ context.Context, registered bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dekRegistered = registered
	return nil
}

func (s *AccountStore) GetSelfPhoneDetails(_ context.Context) (*domain.PhoneNumberHashDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.self == nil {
		return nil, nil
	}
	details := *s.self
	return &details, nil
}

func (s *AccountStore) SetSelfPhoneDetails(_ context.Context, details domain.PhoneNumberHashDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.self = &details
	return nil
}

func (s *AccountStore) GetWalletToAccountAddress(_ context.Context) (domain.WalletToAccountAddress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(domain.WalletToAccountAddress, len(s.walletAccounts))
	for k, v := range s.walletAccounts {
		out[k] = v
	}
	return out, nil
}

func (s *AccountStore) UpdateWalletToAccountAddress(_ context.Context, updates domain.WalletToAccountAddress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range updates {
		s.walletAccounts[domain.NormalizeAddress(k)] = domain.NormalizeAddress(v)
	}
	return nil
}

func (s *AccountStore) UpdateAddressDEK(_ context.Context, address string, dek string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addressDEKs[domain.NormalizeAddress(address)] = dek
	return nil
}

// AddressDEK returns the last public DEK recorded for address.
func (s *AccountStore) AddressDEK(address string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dek, ok := s.addressDEKs[domain.NormalizeAddress(address)]
	return dek, ok
}
