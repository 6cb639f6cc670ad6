// Package memory provides process-local stores for development and tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"wallet-identity/internal/core/domain"
)

// MappingStore implements ports.MappingStore in memory.
type MappingStore struct {
	mu        sync.RWMutex
	salts     domain.E164NumberToSalt
	addresses domain.E164NumberToAddress
	numbers   domain.AddressToE164Number
}

func NewMappingStore() *MappingStore {
	return &MappingStore{
		salts:     make(domain.E164NumberToSalt),
		addresses: make(domain.E164NumberToAddress),
		numbers:   make(domain.AddressToE164Number),
	}
}

func (s *MappingStore) GetE164NumberToSalt(_ context.Context) (domain.E164NumberToSalt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(domain.E164NumberToSalt, len(s.salts))
	for k, v := range s.salts {
		out[k] = v
	}
	return out, nil
}

func (s *MappingStore) GetE164NumberToAddress(_ context.Context) (domain.E164NumberToAddress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(domain.E164NumberToAddress, len(s.addresses))
	for k, v := range s.addresses {
		out[k] = slices.Clone(v)
	}
	return out, nil
}

func (s *MappingStore) GetNumberMapping(_ context.Context, e164Number string) (*domain.NumberMapping, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	salt, addresses := s.salts[e164Number], s.addresses[e164Number]
	if salt == "" && len(addresses) == 0 {
		return nil, nil
	}
	return &domain.NumberMapping{E164Number: e164Number, Salt: salt, Addresses: slices.Clone(addresses)}, nil
}

func (s *MappingStore) UpdateE164NumberSalts(_ context.Context, salts domain.E164NumberToSalt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range salts {
		if cached, ok := s.salts[k]; ok && cached != v {
			return fmt.Errorf("salt of %s: %w", k, domain.ErrSaltConflict)
		}
	}
	for k, v := range salts {
		s.salts[k] = v
	}
	return nil
}

func (s *MappingStore) UpdateE164NumberAddresses(_ context.Context, e164ToAddress domain.E164NumberToAddress, addressToE164 domain.AddressToE164Number) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range e164ToAddress {
		for _, address := range v {
			if !slices.Contains(s.addresses[k], address) {
				s.addresses[k] = append(s.addresses[k], address)
			}
		}
	}
	for k, v := range addressToE164 {
		s.numbers[k] = v
	}
	return nil
}

// AddressToE164Number returns a copy of the inverse map.
func (s *MappingStore) AddressToE164Number() domain.AddressToE164Number {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(domain.AddressToE164Number, len(s.numbers))
	for k, v := range s.numbers {
		out[k] = v
	}
	return out
}
