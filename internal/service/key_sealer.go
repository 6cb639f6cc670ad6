package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for passphrase-derived sealing keys.
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64MB
	argon2Threads = 4
	argon2KeyLen  = 32
)

// AESKeySealer implements ports.KeySealer using AES-256-GCM.
type AESKeySealer struct {
	aead cipher.AEAD
}

// NewAESKeySealer creates a sealer from a 64-character hex key.
func NewAESKeySealer(hexKey string) (*AESKeySealer, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("decoding sealing key: %w", err)
	}
	return newAESKeySealer(key)
}

// NewPassphraseKeySealer derives the sealing key from a passphrase with
// Argon2id. The salt binds the key to one installation, typically the wallet
// address, so the same passphrase seals differently per account.
func NewPassphraseKeySealer(passphrase, salt string) (*AESKeySealer, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("sealing passphrase is empty")
	}
	if len(salt) < 8 {
		return nil, fmt.Errorf("sealing salt must be at least 8 bytes")
	}
	key := argon2.IDKey([]byte(passphrase), []byte(salt), argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
	return newAESKeySealer(key)
}

func newAESKeySealer(key []byte) (*AESKeySealer, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("sealing key must be 32 bytes, got %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	return &AESKeySealer{aead: aead}, nil
}

// Seal returns hex(nonce ‖ ciphertext). An empty plaintext seals to "" so
// unset keys stay recognisable in storage.
func (s *AESKeySealer) Seal(plaintext, associatedData string) (string, error) {
	if plaintext == "" {
		return "", nil
	}
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}
	sealed := s.aead.Seal(nonce, nonce, []byte(plaintext), []byte(associatedData))
	return hex.EncodeToString(sealed), nil
}

// Open reverses Seal. The associated data must match the one used to seal.
func (s *AESKeySealer) Open(sealed, associatedData string) (string, error) {
	if sealed == "" {
		return "", nil
	}
	raw, err := hex.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("decoding sealed value: %w", err)
	}
	nonceSize := s.aead.NonceSize()
	if len(raw) < nonceSize {
		return "", fmt.Errorf("sealed value too short")
	}
	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, []byte(associatedData))
	if err != nil {
		return "", fmt.Errorf("opening sealed value: %w", err)
	}
	return string(plaintext), nil
}
