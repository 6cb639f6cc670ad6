package chain

import (
	"context"
	"fmt"
	"math/big"

	"wallet-identity/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// HashSigner signs 32-byte digests on behalf of signer.
type HashSigner interface {
	SignHash(signer string, hash []byte) (*domain.ProofOfPossession, error)
}

// MetaTxWallet implements ports.MetaTxWallet for MetaTransactionWallet
// contracts.
type MetaTxWallet struct {
	backend Backend
	signer  HashSigner
	chainID int64
}

func NewMetaTxWallet(backend Backend, signer HashSigner, chainID int64) *MetaTxWallet {
	return &MetaTxWallet{backend: backend, signer: signer, chainID: chainID}
}

// WrapMetaTransaction signs inner for the wallet's current nonce and returns
// the executeMetaTransaction call that runs it.
func (m *MetaTxWallet) WrapMetaTransaction(ctx context.Context, mtwAddress string, inner *domain.TxObject, signer string) (*domain.TxObject, error) {
	mtw := common.HexToAddress(mtwAddress)
	values, err := call(ctx, m.backend, mtw, metaTxWalletABI, "nonce")
	if err != nil {
		return nil, err
	}
	nonce := values[0].(*big.Int)

	value := inner.Value
	if value == nil {
		value = new(big.Int)
	}
	hash, err := m.executeMetaTransactionHash(mtw, common.HexToAddress(inner.To), value, inner.Data, nonce)
	if err != nil {
		return nil, err
	}
	sig, err := m.signer.SignHash(signer, hash)
	if err != nil {
		return nil, fmt.Errorf("signing meta transaction: %w", err)
	}

	data, err := metaTxWalletABI.Pack("executeMetaTransaction",
		common.HexToAddress(inner.To), value, inner.Data, sig.V, sig.R, sig.S)
	if err != nil {
		return nil, fmt.Errorf("packing executeMetaTransaction: %w", err)
	}
	return &domain.TxObject{To: mtw.Hex(), Data: data}, nil
}

func (m *MetaTxWallet) executeMetaTransactionHash(mtw, destination common.Address, value *big.Int, data []byte, nonce *big.Int) ([]byte, error) {
	typed := apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": {
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			"ExecuteMetaTransaction": {
				{Name: "destination", Type: "address"},
				{Name: "value", Type: "uint256"},
				{Name: "data", Type: "bytes"},
				{Name: "nonce", Type: "uint256"},
			},
		},
		PrimaryType: "ExecuteMetaTransaction",
		Domain: apitypes.TypedDataDomain{
			Name:              "MetaTransactionWallet",
			Version:           "1.1",
			ChainId:           math.NewHexOrDecimal256(m.chainID),
			VerifyingContract: mtw.Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"destination": destination.Hex(),
			"value":       value.String(),
			"data":        hexutil.Encode(data),
			"nonce":       nonce.String(),
		},
	}
	hash, _, err := apitypes.TypedDataAndHash(typed)
	if err != nil {
		return nil, fmt.Errorf("hashing meta transaction: %w", err)
	}
	return hash, nil
}
