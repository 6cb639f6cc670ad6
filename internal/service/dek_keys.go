package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"
)

// DEKDerivationPath is the change-1 branch of the Celo account path.
const DEKDerivationPath = "m/44'/52752'/0'/1/0"

const hdHardenedOffset = uint32(0x80000000)

// DeriveDEK derives the data encryption private key from a BIP39 mnemonic.
// The result is 0x-prefixed hex.
func DeriveDEK(mnemonic string) (string, error) {
	seed, err := bip39.NewSeedWithErrorChecking(strings.TrimSpace(mnemonic), "")
	if err != nil {
		return "", err
	}
	path, err := accounts.ParseDerivationPath(DEKDerivationPath)
	if err != nil {
		return "", fmt.Errorf("invalid hd path %q: %w", DEKDerivationPath, err)
	}

	key, chainCode, err := deriveBIP32Master(seed)
	if err != nil {
		return "", err
	}
	for _, index := range path {
		key, chainCode, err = deriveBIP32Child(key, chainCode, index)
		if err != nil {
			return "", err
		}
	}
	return hexutil.Encode(key), nil
}

// CompressedPublicKey returns the 33-byte compressed public key of a hex
// private key, 0x-prefixed. This is the value registered on-chain.
func CompressedPublicKey(privateKeyHex string) (string, error) {
	key, err := crypto.ToECDSA(common.FromHex(privateKeyHex))
	if err != nil {
		return "", fmt.Errorf("parsing private key: %w", err)
	}
	return hexutil.Encode(crypto.CompressPubkey(&key.PublicKey)), nil
}

// SignWithDEK signs a hex digest with the DEK and returns the DER signature
// as a JSON byte array. Non-hex messages are hashed with SHA-256 first.
func SignWithDEK(message, privateKeyHex string) (string, error) {
	priv, _ := btcec.PrivKeyFromBytes(common.FromHex(privateKeyHex))
	if priv == nil || priv.Key.IsZero() {
		return "", fmt.Errorf("invalid private key")
	}

	digest, err := hexutil.Decode(message)
	if err != nil {
		sum := sha256.Sum256([]byte(message))
		digest = sum[:]
	}

	der := ecdsa.Sign(priv, digest).Serialize()
	asInts := make([]int, len(der))
	for i, b := range der {
		asInts[i] = int(b)
	}
	out, err := json.Marshal(asInts)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func deriveBIP32Master(seed []byte) ([]byte, []byte, error) {
	mac := hmac.New(sha512.New, []byte("Bitcoin seed"))
	mac.Write(seed)
	sum := mac.Sum(nil)
	key := make([]byte, 32)
	chainCode := make([]byte, 32)
	copy(key, sum[:32])
	copy(chainCode, sum[32:])
	if err := validateBIP32Scalar(key); err != nil {
		return nil, nil, fmt.Errorf("invalid bip32 master key: %w", err)
	}
	return key, chainCode, nil
}

func deriveBIP32Child(parentKey []byte, parentChainCode []byte, index uint32) ([]byte, []byte, error) {
	if len(parentKey) != 32 || len(parentChainCode) != 32 {
		return nil, nil, fmt.Errorf("invalid bip32 parent key material")
	}

	data := make([]byte, 37)
	if index >= hdHardenedOffset {
		copy(data[1:33], parentKey)
	} else {
		priv, _ := btcec.PrivKeyFromBytes(parentKey)
		copy(data[:33], priv.PubKey().SerializeCompressed())
	}
	binary.BigEndian.PutUint32(data[33:], index)

	mac := hmac.New(sha512.New, parentChainCode)
	mac.Write(data)
	sum := mac.Sum(nil)

	curveN := btcec.S256().Params().N
	il := new(big.Int).SetBytes(sum[:32])
	if il.Sign() == 0 || il.Cmp(curveN) >= 0 {
		return nil, nil, fmt.Errorf("invalid bip32 child scalar")
	}
	child := new(big.Int).Add(il, new(big.Int).SetBytes(parentKey))
	child.Mod(child, curveN)
	if child.Sign() == 0 {
		return nil, nil, fmt.Errorf("invalid bip32 child key: zero")
	}

	childKey := make([]byte, 32)
	child.FillBytes(childKey)
	childChainCode := make([]byte, 32)
	copy(childChainCode, sum[32:])
	return childKey, childChainCode, nil
}

func validateBIP32Scalar(key []byte) error {
	if len(key) != 32 {
		return fmt.Errorf("invalid scalar length %d", len(key))
	}
	v := new(big.Int).SetBytes(key)
	if v.Sign() == 0 || v.Cmp(btcec.S256().Params().N) >= 0 {
		return fmt.Errorf("scalar out of range")
	}
	return nil
}
