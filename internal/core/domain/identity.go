package domain

import "errors"

// ErrSaltConflict is returned by a store asked to replace the cached salt of
// a number with a different one.
var ErrSaltConflict = errors.New("number already has a different salt")

// IdentityMetadata is a phone number claim extracted from a received comment.
// PhoneHash is filled in during verification.
type IdentityMetadata struct {
	Address    string `json:"address"`
	E164Number string `json:"e164_number"`
	Salt       string `json:"salt"`
	PhoneHash  string `json:"phone_hash,omitempty"`
}

// E164NumberToSalt caches the salt for each known number.
type E164NumberToSalt map[string]string

// E164NumberToAddress lists the addresses known to belong to a number.
type E164NumberToAddress map[string][]string

// AddressToE164Number is the inverse mapping. Later writes win.
type AddressToE164Number map[string]string

// WalletToAccountAddress maps a signing wallet to the account it is registered under.
type WalletToAccountAddress map[string]string

// AddressToDataEncryptionKey caches the last DEK read for an account.
type AddressToDataEncryptionKey map[string]string

// NumberMapping is the cached view of a single phone number.
type NumberMapping struct {
	E164Number string   `json:"e164_number"`
	Salt       string   `json:"salt,omitempty"`
	Addresses  []string `json:"addresses"`
}
