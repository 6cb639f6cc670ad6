package handler

import (
	"wallet-identity/internal/adapter/http/dto"
	"wallet-identity/internal/core/domain"
	"wallet-identity/internal/core/ports"
	"wallet-identity/pkg/apperror"
	"wallet-identity/pkg/response"

	"github.com/gin-gonic/gin"
)

// IdentityHandler handles phone number metadata endpoints.
type IdentityHandler struct {
	identity ports.IdentityService
}

// NewIdentityHandler creates a new IdentityHandler.
func NewIdentityHandler(identity ports.IdentityService) *IdentityHandler {
	return &IdentityHandler{identity: identity}
}

// CheckTransactions handles POST /api/v1/identity/transactions.
func (h *IdentityHandler) CheckTransactions(c *gin.Context) {
	var req dto.CheckTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	verified := h.identity.CheckTransactionsForIdentityMetadata(c.Request.Context(), req.ToDomain())
	response.OK(c, dto.CheckTransactionsResponse{VerifiedClaims: verified})
}

// GetNumber handles GET /api/v1/identity/numbers/:e164.
func (h *IdentityHandler) GetNumber(c *gin.Context) {
	mapping, err := h.identity.GetNumberMapping(c.Request.Context(), c.Param("e164"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, mapping)
}

// SetSelf handles PUT /api/v1/identity/self.
func (h *IdentityHandler) SetSelf(c *gin.Context) {
	var req dto.SelfPhoneDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidPhoneNumber())
		return
	}

	details := domain.PhoneNumberHashDetails{E164Number: req.E164Number, Pepper: req.Pepper}
	if err := h.identity.SetSelfPhoneDetails(c.Request.Context(), details); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"e164_number": req.E164Number})
}
