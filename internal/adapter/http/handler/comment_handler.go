package handler

import (
	"wallet-identity/internal/adapter/http/dto"
	"wallet-identity/internal/core/ports"
	"wallet-identity/pkg/apperror"
	"wallet-identity/pkg/response"

	"github.com/gin-gonic/gin"
)

// CommentHandler handles comment encryption endpoints.
type CommentHandler struct {
	comments ports.CommentService
	deks     ports.DEKService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments ports.CommentService, deks ports.DEKService) *CommentHandler {
	return &CommentHandler{comments: comments, deks: deks}
}

// Encrypt handles POST /api/v1/comments/encrypt.
func (h *CommentHandler) Encrypt(c *gin.Context) {
	var req dto.EncryptCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidComment(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	comment, err := h.comments.EncryptComment(c.Request.Context(), ports.EncryptCommentRequest{
		Comment:              req.Comment,
		ToAddress:            req.ToAddress,
		FromAddress:          req.FromAddress,
		IncludePhoneMetadata: req.IncludePhoneMetadata,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.EncryptCommentResponse{Comment: comment})
}

// Decrypt handles POST /api/v1/comments/decrypt with the local account's DEK.
func (h *CommentHandler) Decrypt(c *gin.Context) {
	var req dto.DecryptCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidComment(err.Error()))
		return
	}

	dek, err := h.deks.GetDataEncryptionKey(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.comments.DecryptComment(c.Request.Context(), req.Comment, dek, req.IsSender))
}
