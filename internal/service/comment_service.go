package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"wallet-identity/internal/core/domain"
	"wallet-identity/internal/core/ports"
	"wallet-identity/pkg/apperror"
	"wallet-identity/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
)

// CommentOptions tunes the comment pipeline.
type CommentOptions struct {
	EncryptionEnabled    bool
	PhoneMetadataEnabled bool
	MaxCommentLength     int
}

// CommentServiceImpl implements ports.CommentService.
type CommentServiceImpl struct {
	cipher   ports.CommentCipher
	deks     ports.DEKFetcher
	accounts ports.AccountStore
	cache    ports.DecryptionCache
	opts     CommentOptions
	metrics  *Metrics
	log      zerolog.Logger
}

// NewCommentService creates a new CommentServiceImpl.
func NewCommentService(
	cipher ports.CommentCipher,
	deks ports.DEKFetcher,
	accounts ports.AccountStore,
	cache ports.DecryptionCache,
	opts CommentOptions,
	metrics *Metrics,
	log zerolog.Logger,
) *CommentServiceImpl {
	if opts.MaxCommentLength <= 0 {
		opts.MaxCommentLength = domain.DefaultMaxCommentLength
	}
	return &CommentServiceImpl{
		cipher:   cipher,
		deks:     deks,
		accounts: accounts,
		cache:    cache,
		opts:     opts,
		metrics:  metrics,
		log:      logger.Component(log, "identity/commentEncryption"),
	}
}

// EncryptComment encrypts a comment for both parties of a transfer. It falls
// back to the plain comment whenever either party has no DEK or the cipher
// fails, so a payment is never blocked by encryption.
func (s *CommentServiceImpl) EncryptComment(ctx context.Context, req ports.EncryptCommentRequest) (string, error) {
	if !s.opts.EncryptionEnabled || req.Comment == "" || req.ToAddress == "" || req.FromAddress == "" {
		return req.Comment, nil
	}
	if !common.IsHexAddress(req.ToAddress) || !common.IsHexAddress(req.FromAddress) {
		return "", apperror.ErrInvalidAddress()
	}

	fromKey, err := s.deks.FetchDataEncryptionKey(ctx, req.FromAddress)
	if err != nil {
		return "", apperror.ErrChainUnavailable(fmt.Errorf("fetching sender DEK: %w", err))
	}
	toKey, err := s.deks.FetchDataEncryptionKey(ctx, req.ToAddress)
	if err != nil {
		return "", apperror.ErrChainUnavailable(fmt.Errorf("fetching recipient DEK: %w", err))
	}
	if fromKey == nil || toKey == nil {
		s.log.Debug().
			Bool("sender_has_dek", fromKey != nil).
			Bool("recipient_has_dek", toKey != nil).
			Msg("missing DEK, sending comment unencrypted")
		s.metrics.CommentsEncrypted.WithLabelValues("plaintext").Inc()
		return req.Comment, nil
	}

	toEncrypt := req.Comment
	if s.opts.PhoneMetadataEnabled && req.IncludePhoneMetadata {
		details, err := s.accounts.GetSelfPhoneDetails(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("could not load own phone details, skipping metadata")
		} else {
			toEncrypt = domain.EmbedPhoneNumberMetadata(req.Comment, details)
		}
	}

	ciphertext, ok := s.cipher.Encrypt(toEncrypt, toKey, fromKey)
	if !ok {
		s.log.Error().Msg("encryption failed, returning raw comment")
		s.metrics.CommentsEncrypted.WithLabelValues("failed").Inc()
		return req.Comment, nil
	}

	s.metrics.CommentsEncrypted.WithLabelValues("encrypted").Inc()
	return ciphertext, nil
}

// DecryptComment is memoized on (comment, key, isSender). Cache errors only
// cost a recomputation.
func (s *CommentServiceImpl) DecryptComment(ctx context.Context, comment, dataEncryptionKey string, isSender bool) domain.DecryptedComment {
	key := domain.DecryptionCacheKey(comment, dataEncryptionKey, isSender)

	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Msg("decryption cache read failed, recomputing")
	}
	if cached != nil {
		s.metrics.CommentsDecrypted.WithLabelValues("cached").Inc()
		return *cached
	}

	result := s.decrypt(comment, dataEncryptionKey, isSender)
	if err := s.cache.Set(ctx, key, result); err != nil {
		s.log.Warn().Err(err).Msg("decryption cache write failed")
	}
	return result
}

func (s *CommentServiceImpl) decrypt(comment, dataEncryptionKey string, isSender bool) domain.DecryptedComment {
	if !s.opts.EncryptionEnabled || comment == "" || dataEncryptionKey == "" {
		return domain.DecryptedComment{Comment: comment}
	}

	plaintext, ok := s.cipher.Decrypt(comment, common.FromHex(dataEncryptionKey), isSender)
	if ok {
		s.metrics.CommentsDecrypted.WithLabelValues("decrypted").Inc()
		return domain.ExtractPhoneNumberMetadata(plaintext)
	}

	// Unencrypted comments from older clients are short enough to show.
	if utf8.RuneCountInString(comment) <= s.opts.MaxCommentLength {
		s.metrics.CommentsDecrypted.WithLabelValues("raw").Inc()
		return domain.DecryptedComment{Comment: comment}
	}

	s.log.Error().Int("length", len(comment)).Msg("decrypting long comment failed, hiding it")
	s.metrics.CommentsDecrypted.WithLabelValues("hidden").Inc()
	return domain.DecryptedComment{Comment: domain.CommentUnavailable, Hidden: true}
}
