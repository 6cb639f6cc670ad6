package handler

import (
	"wallet-identity/internal/adapter/http/dto"
	"wallet-identity/internal/core/ports"
	"wallet-identity/pkg/apperror"
	"wallet-identity/pkg/response"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gin-gonic/gin"
)

// DEKHandler handles data encryption key endpoints.
type DEKHandler struct {
	deks          ports.DEKService
	walletAddress string
}

// NewDEKHandler creates a new DEKHandler. walletAddress is the local wallet,
// used when a request names none.
func NewDEKHandler(deks ports.DEKService, walletAddress string) *DEKHandler {
	return &DEKHandler{deks: deks, walletAddress: walletAddress}
}

// Get handles GET /api/v1/dek/:address.
func (h *DEKHandler) Get(c *gin.Context) {
	address := c.Param("address")
	if !common.IsHexAddress(address) {
		response.Error(c, apperror.ErrInvalidAddress())
		return
	}

	key, err := h.deks.FetchDataEncryptionKey(c.Request.Context(), address)
	if err != nil {
		response.Error(c, apperror.ErrChainUnavailable(err))
		return
	}

	resp := dto.DataEncryptionKeyResponse{Address: address}
	if key != nil {
		encoded := hexutil.Encode(key)
		resp.DataEncryptionKey = &encoded
	}
	response.OK(c, resp)
}

// Create handles POST /api/v1/dek.
func (h *DEKHandler) Create(c *gin.Context) {
	var req dto.CreateDEKRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	publicKey, err := h.deks.CreateAccountDEK(c.Request.Context(), req.Mnemonic)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.CreateDEKResponse{PublicKey: publicKey})
}

// Register handles POST /api/v1/dek/register. Anything short of REGISTERED
// is reported as 202 since the next attempt may complete it.
func (h *DEKHandler) Register(c *gin.Context) {
	state := h.deks.RegisterAccountDEK(c.Request.Context())
	if state.IsTerminal() {
		response.OK(c, dto.RegistrationResponse{State: state})
		return
	}
	response.Accepted(c, dto.RegistrationResponse{State: state})
}

// RegisterRelayed handles POST /api/v1/dek/register/relayed.
func (h *DEKHandler) RegisterRelayed(c *gin.Context) {
	var req dto.RelayedRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidAddress())
		return
	}
	dto.SanitizeStruct(&req)

	state, err := h.deks.RegisterWalletAndDEKViaRelayer(c.Request.Context(), req.AccountAddress, req.WalletAddress)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.RegistrationResponse{State: state})
}

// EstimateGas handles GET /api/v1/dek/gas?wallet_address=.
func (h *DEKHandler) EstimateGas(c *gin.Context) {
	wallet := c.DefaultQuery("wallet_address", h.walletAddress)
	if !common.IsHexAddress(wallet) {
		response.Error(c, apperror.ErrInvalidAddress())
		return
	}

	gas, err := h.deks.EstimateRegisterDEKGas(c.Request.Context(), wallet)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.GasEstimateResponse{WalletAddress: wallet, Gas: gas})
}

// AuthSigner handles GET /api/v1/dek/auth-signer.
func (h *DEKHandler) AuthSigner(c *gin.Context) {
	var query dto.AuthSignerQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, apperror.ErrInvalidAddress())
		return
	}

	signer, err := h.deks.GetAuthSignerForAccount(c.Request.Context(), query.AccountAddress, query.WalletAddress)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, signer)
}

// AuthSign handles POST /api/v1/dek/auth-sign.
func (h *DEKHandler) AuthSign(c *gin.Context) {
	var req dto.AuthSignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if req.WalletAddress == "" {
		req.WalletAddress = h.walletAddress
	}

	sig, err := h.deks.SignForAuth(c.Request.Context(), req.AccountAddress, req.WalletAddress, req.Message)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sig)
}

