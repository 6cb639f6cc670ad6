package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdsa"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/crypto/ecies"
	"github.com/rs/zerolog"
)

const (
	sessionKeySize = 16
	// ephemeral public key (65) + iv (16) + encrypted session key (16) + mac (32)
	eciesBlockSize = 65 + aes.BlockSize + sessionKeySize + sha256.Size
	bodyOverhead   = aes.BlockSize + sha256.Size
	minCipherSize  = 2*eciesBlockSize + bodyOverhead
)

var errCiphertextTooShort = errors.New("ciphertext too short")

// ECIESCommentCipher implements ports.CommentCipher.
//
// Layout, base64 encoded:
//
//	ECIES(recipient, sessionKey) | ECIES(sender, sessionKey) | iv | AES-128-CTR(body) | HMAC-SHA256(iv|body)
//
// Both parties recover the same session key from their own block, so the
// sender can read what it sent.
type ECIESCommentCipher struct {
	rand io.Reader
	log  zerolog.Logger
}

// NewECIESCommentCipher creates a cipher backed by crypto/rand.
func NewECIESCommentCipher(log zerolog.Logger) *ECIESCommentCipher {
	return &ECIESCommentCipher{rand: rand.Reader, log: log}
}

// Encrypt encrypts plaintext for the recipient and the sender. Public keys may
// be compressed (33 bytes) or uncompressed (65 bytes).
func (c *ECIESCommentCipher) Encrypt(plaintext string, recipientPublicKey, senderPublicKey []byte) (string, bool) {
	out, err := c.encrypt([]byte(plaintext), recipientPublicKey, senderPublicKey)
	if err != nil {
		c.log.Error().Err(err).Msg("comment encryption failed")
		return "", false
	}
	return base64.StdEncoding.EncodeToString(out), true
}

// Decrypt recovers the plaintext using the private key of either party.
// isSender selects the block that was sealed for the caller.
func (c *ECIESCommentCipher) Decrypt(ciphertext string, privateKey []byte, isSender bool) (string, bool) {
	plaintext, err := c.decrypt(ciphertext, privateKey, isSender)
	if err != nil {
		c.log.Debug().Err(err).Bool("is_sender", isSender).Msg("comment decryption failed")
		return "", false
	}
	return plaintext, true
}

func (c *ECIESCommentCipher) encrypt(data, recipientPublicKey, senderPublicKey []byte) ([]byte, error) {
	recipient, err := parsePublicKey(recipientPublicKey)
	if err != nil {
		return nil, fmt.Errorf("recipient key: %w", err)
	}
	sender, err := parsePublicKey(senderPublicKey)
	if err != nil {
		return nil, fmt.Errorf("sender key: %w", err)
	}

	sessionKey := make([]byte, sessionKeySize)
	if _, err := io.ReadFull(c.rand, sessionKey); err != nil {
		return nil, fmt.Errorf("generating session key: %w", err)
	}

	toRecipient, err := ecies.Encrypt(c.rand, ecies.ImportECDSAPublic(recipient), sessionKey, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("sealing session key for recipient: %w", err)
	}
	toSender, err := ecies.Encrypt(c.rand, ecies.ImportECDSAPublic(sender), sessionKey, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("sealing session key for sender: %w", err)
	}

	body, err := c.sealBody(sessionKey, data)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(toRecipient)+len(toSender)+len(body))
	out = append(out, toRecipient...)
	out = append(out, toSender...)
	return append(out, body...), nil
}

func (c *ECIESCommentCipher) decrypt(ciphertext string, privateKey []byte, isSender bool) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("decoding base64: %w", err)
	}
	if len(raw) < minCipherSize {
		return "", errCiphertextTooShort
	}

	key, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return "", fmt.Errorf("parsing private key: %w", err)
	}

	block := raw[:eciesBlockSize]
	if isSender {
		block = raw[eciesBlockSize : 2*eciesBlockSize]
	}
	sessionKey, err := ecies.ImportECDSA(key).Decrypt(block, nil, nil)
	if err != nil {
		return "", fmt.Errorf("opening session key: %w", err)
	}
	if len(sessionKey) != sessionKeySize {
		return "", fmt.Errorf("unexpected session key size %d", len(sessionKey))
	}

	data, err := openBody(sessionKey, raw[2*eciesBlockSize:])
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errors.New("plaintext is not valid UTF-8")
	}
	return string(data), nil
}

func (c *ECIESCommentCipher) sealBody(sessionKey, data []byte) ([]byte, error) {
	block, err := aes.NewCipher(sessionKey)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	out := make([]byte, aes.BlockSize+len(data), aes.BlockSize+len(data)+sha256.Size)
	iv := out[:aes.BlockSize]
	if _, err := io.ReadFull(c.rand, iv); err != nil {
		return nil, fmt.Errorf("generating iv: %w", err)
	}
	cipher.NewCTR(block, iv).XORKeyStream(out[aes.BlockSize:], data)

	return append(out, bodyMAC(sessionKey, out)...), nil
}

func openBody(sessionKey, body []byte) ([]byte, error) {
	if len(body) < bodyOverhead {
		return nil, errCiphertextTooShort
	}
	signed, mac := body[:len(body)-sha256.Size], body[len(body)-sha256.Size:]
	if !hmac.Equal(mac, bodyMAC(sessionKey, signed)) {
		return nil, errors.New("message authentication failed")
	}

	block, err := aes.NewCipher(sessionKey)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	iv, encrypted := signed[:aes.BlockSize], signed[aes.BlockSize:]
	data := make([]byte, len(encrypted))
	cipher.NewCTR(block, iv).XORKeyStream(data, encrypted)
	return data, nil
}

// bodyMAC keys HMAC-SHA256 with SHA-256(sessionKey).
func bodyMAC(sessionKey, signed []byte) []byte {
	macKey := sha256.Sum256(sessionKey)
	mac := hmac.New(sha256.New, macKey[:])
	mac.Write(signed)
	return mac.Sum(nil)
}

func parsePublicKey(b []byte) (*ecdsa.PublicKey, error) {
	switch len(b) {
	case 33:
		return crypto.DecompressPubkey(b)
	case 65:
		return crypto.UnmarshalPubkey(b)
	default:
		return nil, fmt.Errorf("unexpected public key length %d", len(b))
	}
}
