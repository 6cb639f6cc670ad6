package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-identity/internal/core/domain"
	"wallet-identity/internal/core/ports"
	"wallet-identity/pkg/apperror"
	"wallet-identity/pkg/logger"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	defaultWalletLookupConcurrency = 8

	mappingsLockKey = "identity:mappings"
	// mappingsLockTTL bounds one reconciliation; mappingsLockWait bounds how
	// long a second writer queues behind it.
	mappingsLockTTL   = 30 * time.Second
	mappingsLockWait  = 10 * time.Second
	mappingsLockRetry = 25 * time.Millisecond
)

// IdentityServiceImpl implements ports.IdentityService.
type IdentityServiceImpl struct {
	accounts          ports.AccountStore
	mappings          ports.MappingStore
	comments          ports.CommentService
	attestations      ports.AttestationsContract
	accountsContract  ports.AccountsContract
	lock              ports.Locker
	lookupConcurrency int
	metrics           *Metrics
	log               zerolog.Logger
}

// NewIdentityService creates a new IdentityServiceImpl.
func NewIdentityService(
	accounts ports.AccountStore,
	mappings ports.MappingStore,
	comments ports.CommentService,
	attestations ports.AttestationsContract,
	accountsContract ports.AccountsContract,
	lock ports.Locker,
	lookupConcurrency int,
	metrics *Metrics,
	log zerolog.Logger,
) *IdentityServiceImpl {
	if lookupConcurrency <= 0 {
		lookupConcurrency = defaultWalletLookupConcurrency
	}
	return &IdentityServiceImpl{
		accounts:          accounts,
		mappings:          mappings,
		comments:          comments,
		attestations:      attestations,
		accountsContract:  accountsContract,
		lock:              lock,
		lookupConcurrency: lookupConcurrency,
		metrics:           metrics,
		log:               logger.Component(log, "identity/commentEncryption"),
	}
}

// CheckTransactionsForIdentityMetadata scans received transfers for phone
// number claims, verifies them on-chain and records the verified ones.
// Failures are logged and never escape.
func (s *IdentityServiceImpl) CheckTransactionsForIdentityMetadata(ctx context.Context, txs []domain.FeedTransaction) int {
	if len(txs) == 0 {
		return 0
	}

	dek, err := s.accounts.GetDataEncryptionKey(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("error checking transactions for identity metadata")
		return 0
	}
	if dek == "" {
		s.log.Error().Msg("missing DEK, cannot check transactions for identity metadata")
		return 0
	}

	claims := s.findIdentityMetadataInComments(ctx, txs, dek)
	if len(claims) == 0 {
		return 0
	}

	verified, err := s.VerifyIdentityMetadata(ctx, claims)
	if err != nil {
		s.log.Error().Err(err).Msg("error checking transactions for identity metadata")
		return 0
	}
	if err := s.UpdatePhoneNumberMappings(ctx, verified); err != nil {
		s.log.Error().Err(err).Msg("error checking transactions for identity metadata")
		return 0
	}
	return len(verified)
}

func (s *IdentityServiceImpl) findIdentityMetadataInComments(ctx context.Context, txs []domain.FeedTransaction, dek string) []domain.IdentityMetadata {
	var claims []domain.IdentityMetadata
	for _, tx := range txs {
		if !tx.IsReceivedTransfer() || tx.Comment == "" {
			continue
		}
		decrypted := s.comments.DecryptComment(ctx, tx.Comment, dek, false)
		if !decrypted.HasPhoneMetadata() {
			continue
		}
		claims = append(claims, domain.IdentityMetadata{
			Address:    tx.Address,
			E164Number: decrypted.E164Number,
			Salt:       decrypted.Salt,
		})
	}
	return claims
}

// VerifyIdentityMetadata keeps the claims whose phone hash is attested by an
// account controlled by the claimed address. A claim that cannot be checked
// is dropped; only cancellation aborts the batch.
func (s *IdentityServiceImpl) VerifyIdentityMetadata(ctx context.Context, claims []domain.IdentityMetadata) ([]domain.IdentityMetadata, error) {
	verified := make([]domain.IdentityMetadata, 0, len(claims))
	for _, claim := range claims {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		claim.PhoneHash = domain.PhoneHash(claim.E164Number, claim.Salt)
		ok, err := s.verifyClaim(ctx, claim)
		if err != nil {
			s.log.Warn().Err(err).
				Str("address", claim.Address).
				Str("e164", logger.MaskE164(claim.E164Number)).
				Msg("could not verify identity metadata, dropping claim")
			s.metrics.IdentityClaims.WithLabelValues("error").Inc()
			continue
		}
		if !ok {
			s.metrics.IdentityClaims.WithLabelValues("rejected").Inc()
			continue
		}
		s.metrics.IdentityClaims.WithLabelValues("verified").Inc()
		verified = append(verified, claim)
	}
	return verified, nil
}

func (s *IdentityServiceImpl) verifyClaim(ctx context.Context, claim domain.IdentityMetadata) (bool, error) {
	accounts, err := s.attestations.LookupAccountsForIdentifier(ctx, claim.PhoneHash)
	if err != nil {
		return false, fmt.Errorf("looking up accounts: %w", err)
	}
	verifiedAccounts, err := s.attestations.FilterNonVerifiedAddresses(ctx, accounts, claim.PhoneHash)
	if err != nil {
		return false, fmt.Errorf("filtering verified accounts: %w", err)
	}
	if len(verifiedAccounts) == 0 {
		s.log.Warn().
			Str("e164", logger.MaskE164(claim.E164Number)).
			Msg("phone number is not verified")
		return false, nil
	}

	wallets, err := s.walletAddresses(ctx, verifiedAccounts)
	if err != nil {
		return false, err
	}
	for _, wallet := range wallets {
		if wallet != "" && domain.EqAddress(wallet, claim.Address) {
			return true, nil
		}
	}

	s.log.Warn().
		Str("address", claim.Address).
		Str("e164", logger.MaskE164(claim.E164Number)).
		Msg("claimed address does not match any on-chain wallet for this number")
	return false, nil
}

// walletAddresses resolves each account's wallet concurrently, preserving order.
func (s *IdentityServiceImpl) walletAddresses(ctx context.Context, accounts []string) ([]string, error) {
	wallets := make([]string, len(accounts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.lookupConcurrency)
	for i, account := range accounts {
		g.Go(func() error {
			wallet, err := s.accountsContract.GetWalletAddress(gctx, account)
			if err != nil {
				return fmt.Errorf("wallet address of %s: %w", account, err)
			}
			wallets[i] = wallet
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return wallets, nil
}

// UpdatePhoneNumberMappings merges verified claims into the cached mappings.
// A number keeps the first salt it was seen with; claims carrying a different
// salt are dropped. Addresses accumulate across the whole batch. The read and
// the write happen under the mappings lock, so concurrent batches serialize.
func (s *IdentityServiceImpl) UpdatePhoneNumberMappings(ctx context.Context, verified []domain.IdentityMetadata) error {
	if len(verified) == 0 {
		return nil
	}

	if err := s.lockMappings(ctx); err != nil {
		return apperror.InternalError(err)
	}
	defer func() {
		if err := s.lock.Unlock(context.WithoutCancel(ctx), mappingsLockKey); err != nil {
			s.log.Warn().Err(err).Msg("could not release mappings lock")
		}
	}()

	knownSalts, err := s.mappings.GetE164NumberToSalt(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("loading salts: %w", err))
	}
	knownAddresses, err := s.mappings.GetE164NumberToAddress(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("loading addresses: %w", err))
	}

	saltUpdates := domain.E164NumberToSalt{}
	e164ToAddressUpdates := domain.E164NumberToAddress{}
	addressToE164Updates := domain.AddressToE164Number{}

	for _, claim := range verified {
		salt, ok := saltUpdates[claim.E164Number]
		if !ok {
			salt = knownSalts[claim.E164Number]
		}
		if salt != "" && salt != claim.Salt {
			s.log.Warn().
				Str("e164", logger.MaskE164(claim.E164Number)).
				Str("address", claim.Address).
				Msg("salt does not match the cached salt for this number, skipping")
			s.metrics.MappingConflicts.Inc()
			continue
		}

		address := domain.NormalizeAddress(claim.Address)
		addresses, ok := e164ToAddressUpdates[claim.E164Number]
		if !ok {
			addresses = append([]string(nil), knownAddresses[claim.E164Number]...)
		}
		e164ToAddressUpdates[claim.E164Number] = appendAddress(addresses, address)
		addressToE164Updates[address] = claim.E164Number
		saltUpdates[claim.E164Number] = claim.Salt
	}

	if err := s.mappings.UpdateE164NumberSalts(ctx, saltUpdates); err != nil {
		if errors.Is(err, domain.ErrSaltConflict) {
			s.metrics.MappingConflicts.Inc()
		}
		return apperror.ErrDatabaseError(fmt.Errorf("updating salts: %w", err))
	}
	if err := s.mappings.UpdateE164NumberAddresses(ctx, e164ToAddressUpdates, addressToE164Updates); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("updating addresses: %w", err))
	}
	return nil
}

// lockMappings waits for the mappings lease until mappingsLockWait elapses or
// ctx is done.
func (s *IdentityServiceImpl) lockMappings(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, mappingsLockWait)
	defer cancel()

	ticker := time.NewTicker(mappingsLockRetry)
	defer ticker.Stop()
	for {
		locked, err := s.lock.TryLock(ctx, mappingsLockKey, mappingsLockTTL)
		if err != nil {
			return fmt.Errorf("taking mappings lock: %w", err)
		}
		if locked {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for mappings lock: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

func appendAddress(addresses []string, address string) []string {
	for _, a := range addresses {
		if domain.EqAddress(a, address) {
			return addresses
		}
	}
	return append(addresses, address)
}

// GetNumberMapping returns the cached salt and addresses of a number.
func (s *IdentityServiceImpl) GetNumberMapping(ctx context.Context, e164Number string) (*domain.NumberMapping, error) {
	if !domain.IsE164Number(e164Number) {
		return nil, apperror.ErrInvalidPhoneNumber()
	}
	mapping, err := s.mappings.GetNumberMapping(ctx, e164Number)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if mapping == nil {
		return nil, apperror.ErrNotFound("Phone number")
	}
	return mapping, nil
}

// SetSelfPhoneDetails stores the user's own number and pepper, which are
// embedded in outgoing comments.
func (s *IdentityServiceImpl) SetSelfPhoneDetails(ctx context.Context, details domain.PhoneNumberHashDetails) error {
	if !domain.IsE164Number(details.E164Number) {
		return apperror.ErrInvalidPhoneNumber()
	}
	if !domain.IsValidSalt(details.Pepper) {
		return apperror.Validation(fmt.Sprintf("pepper must be %d base64 characters", domain.SaltLength))
	}
	details.PhoneHash = domain.PhoneHash(details.E164Number, details.Pepper)
	if err := s.accounts.SetSelfPhoneDetails(ctx, details); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	return nil
}
