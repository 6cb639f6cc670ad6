package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"wallet-identity/internal/adapter/storage/memory"
	"wallet-identity/internal/core/domain"
	"wallet-identity/internal/core/ports/mocks"
	"wallet-identity/pkg/apperror"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	aliceNumber  = "+15551234567"
	aliceSalt    = "abcDEF0123456"
	aliceHash    = "0xb9942324340b7bb364ddf94c6626c09efbb3d6f0fa2fbf0770064dad7c318a1e"
	aliceWallet  = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	aliceAccount = "0xacc0000000000000000000000000000000000001"
	bobWallet    = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

type identitySetup struct {
	accounts     *mocks.MockAccountStore
	mappings     *mocks.MockMappingStore
	comments     *mocks.MockCommentService
	attestations *mocks.MockAttestationsContract
	chain        *mocks.MockAccountsContract
	lock         *mocks.MockLocker
	metrics      *Metrics
	svc          *IdentityServiceImpl
}

func newIdentitySetup(t *testing.T) *identitySetup {
	ctrl := gomock.NewController(t)
	s := &identitySetup{
		accounts:     mocks.NewMockAccountStore(ctrl),
		mappings:     mocks.NewMockMappingStore(ctrl),
		comments:     mocks.NewMockCommentService(ctrl),
		attestations: mocks.NewMockAttestationsContract(ctrl),
		chain:        mocks.NewMockAccountsContract(ctrl),
		lock:         mocks.NewMockLocker(ctrl),
		metrics:      newTestMetrics(),
	}
	s.lock.EXPECT().TryLock(gomock.Any(), mappingsLockKey, mappingsLockTTL).Return(true, nil).AnyTimes()
	s.lock.EXPECT().Unlock(gomock.Any(), mappingsLockKey).Return(nil).AnyTimes()
	s.svc = NewIdentityService(s.accounts, s.mappings, s.comments, s.attestations, s.chain, s.lock, 4, s.metrics, newTestLogger())
	return s
}

func (s *identitySetup) expectAttested(hash string, accounts []string, wallets map[string]string) {
	s.attestations.EXPECT().LookupAccountsForIdentifier(gomock.Any(), hash).Return(accounts, nil)
	s.attestations.EXPECT().FilterNonVerifiedAddresses(gomock.Any(), accounts, hash).Return(accounts, nil)
	for account, wallet := range wallets {
		s.chain.EXPECT().GetWalletAddress(gomock.Any(), account).Return(wallet, nil)
	}
}

func aliceClaim(address string) domain.IdentityMetadata {
	return domain.IdentityMetadata{Address: address, E164Number: aliceNumber, Salt: aliceSalt}
}

func TestVerifyIdentityMetadata_MatchingWallet(t *testing.T) {
	s := newIdentitySetup(t)
	s.expectAttested(aliceHash, []string{aliceAccount}, map[string]string{aliceAccount: "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"})

	got, err := s.svc.VerifyIdentityMetadata(context.Background(), []domain.IdentityMetadata{aliceClaim(aliceWallet)})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, aliceHash, got[0].PhoneHash)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.IdentityClaims.WithLabelValues("verified")))
}

func TestVerifyIdentityMetadata_AnyOfSeveralAccounts(t *testing.T) {
	s := newIdentitySetup(t)
	other := "0xacc0000000000000000000000000000000000002"
	s.expectAttested(aliceHash, []string{other, aliceAccount}, map[string]string{
		other:        bobWallet,
		aliceAccount: aliceWallet,
	})

	got, err := s.svc.VerifyIdentityMetadata(context.Background(), []domain.IdentityMetadata{aliceClaim(aliceWallet)})

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestVerifyIdentityMetadata_NumberNotVerified(t *testing.T) {
	s := newIdentitySetup(t)
	s.attestations.EXPECT().LookupAccountsForIdentifier(gomock.Any(), aliceHash).Return([]string{aliceAccount}, nil)
	s.attestations.EXPECT().FilterNonVerifiedAddresses(gomock.Any(), []string{aliceAccount}, aliceHash).Return(nil, nil)

	got, err := s.svc.VerifyIdentityMetadata(context.Background(), []domain.IdentityMetadata{aliceClaim(aliceWallet)})

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.IdentityClaims.WithLabelValues("rejected")))
}

func TestVerifyIdentityMetadata_AddressMismatch(t *testing.T) {
	s := newIdentitySetup(t)
	s.expectAttested(aliceHash, []string{aliceAccount}, map[string]string{aliceAccount: aliceWallet})

	got, err := s.svc.VerifyIdentityMetadata(context.Background(), []domain.IdentityMetadata{aliceClaim(bobWallet)})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestVerifyIdentityMetadata_ErrorsDropOnlyThatClaim(t *testing.T) {
	s := newIdentitySetup(t)
	bobNumber, bobSalt := "+4915112345678", "Zz09+/Zz09+/Q"
	bobHash := domain.PhoneHash(bobNumber, bobSalt)

	s.attestations.EXPECT().LookupAccountsForIdentifier(gomock.Any(), bobHash).Return(nil, errors.New("rpc timeout"))
	s.expectAttested(aliceHash, []string{aliceAccount}, map[string]string{aliceAccount: aliceWallet})

	got, err := s.svc.VerifyIdentityMetadata(context.Background(), []domain.IdentityMetadata{
		{Address: bobWallet, E164Number: bobNumber, Salt: bobSalt},
		aliceClaim(aliceWallet),
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, aliceWallet, got[0].Address)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.IdentityClaims.WithLabelValues("error")))
}

func TestVerifyIdentityMetadata_WalletLookupError(t *testing.T) {
	s := newIdentitySetup(t)
	s.attestations.EXPECT().LookupAccountsForIdentifier(gomock.Any(), aliceHash).Return([]string{aliceAccount}, nil)
	s.attestations.EXPECT().FilterNonVerifiedAddresses(gomock.Any(), gomock.Any(), aliceHash).Return([]string{aliceAccount}, nil)
	s.chain.EXPECT().GetWalletAddress(gomock.Any(), aliceAccount).Return("", errors.New("rpc down"))

	got, err := s.svc.VerifyIdentityMetadata(context.Background(), []domain.IdentityMetadata{aliceClaim(aliceWallet)})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestVerifyIdentityMetadata_Cancelled(t *testing.T) {
	s := newIdentitySetup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.svc.VerifyIdentityMetadata(ctx, []domain.IdentityMetadata{aliceClaim(aliceWallet)})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestUpdatePhoneNumberMappings_NewNumber(t *testing.T) {
	s := newIdentitySetup(t)
	s.mappings.EXPECT().GetE164NumberToSalt(gomock.Any()).Return(domain.E164NumberToSalt{}, nil)
	s.mappings.EXPECT().GetE164NumberToAddress(gomock.Any()).Return(domain.E164NumberToAddress{}, nil)
	s.mappings.EXPECT().UpdateE164NumberSalts(gomock.Any(), domain.E164NumberToSalt{aliceNumber: aliceSalt}).Return(nil)
	s.mappings.EXPECT().UpdateE164NumberAddresses(gomock.Any(),
		domain.E164NumberToAddress{aliceNumber: {aliceWallet}},
		domain.AddressToE164Number{aliceWallet: aliceNumber},
	).Return(nil)

	err := s.svc.UpdatePhoneNumberMappings(context.Background(), []domain.IdentityMetadata{aliceClaim(aliceWallet)})

	assert.NoError(t, err)
}

func TestUpdatePhoneNumberMappings_SameBatchAddressesAccumulate(t *testing.T) {
	s := newIdentitySetup(t)
	existing := "0xcccccccccccccccccccccccccccccccccccccccc"
	s.mappings.EXPECT().GetE164NumberToSalt(gomock.Any()).Return(domain.E164NumberToSalt{aliceNumber: aliceSalt}, nil)
	s.mappings.EXPECT().GetE164NumberToAddress(gomock.Any()).Return(domain.E164NumberToAddress{aliceNumber: {existing}}, nil)
	s.mappings.EXPECT().UpdateE164NumberSalts(gomock.Any(), domain.E164NumberToSalt{aliceNumber: aliceSalt}).Return(nil)
	s.mappings.EXPECT().UpdateE164NumberAddresses(gomock.Any(),
		domain.E164NumberToAddress{aliceNumber: {existing, aliceWallet, bobWallet}},
		domain.AddressToE164Number{aliceWallet: aliceNumber, bobWallet: aliceNumber},
	).Return(nil)

	err := s.svc.UpdatePhoneNumberMappings(context.Background(), []domain.IdentityMetadata{
		aliceClaim(aliceWallet),
		aliceClaim(bobWallet),
		aliceClaim("0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"),
	})

	assert.NoError(t, err)
}

func TestUpdatePhoneNumberMappings_ConflictingCachedSalt(t *testing.T) {
	s := newIdentitySetup(t)
	s.mappings.EXPECT().GetE164NumberToSalt(gomock.Any()).Return(domain.E164NumberToSalt{aliceNumber: "ZZZZZZZZZZZZZ"}, nil)
	s.mappings.EXPECT().GetE164NumberToAddress(gomock.Any()).Return(domain.E164NumberToAddress{}, nil)
	s.mappings.EXPECT().UpdateE164NumberSalts(gomock.Any(), domain.E164NumberToSalt{}).Return(nil)
	s.mappings.EXPECT().UpdateE164NumberAddresses(gomock.Any(), domain.E164NumberToAddress{}, domain.AddressToE164Number{}).Return(nil)

	err := s.svc.UpdatePhoneNumberMappings(context.Background(), []domain.IdentityMetadata{aliceClaim(aliceWallet)})

	assert.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.MappingConflicts))
}

func TestUpdatePhoneNumberMappings_ConflictWithinBatch(t *testing.T) {
	s := newIdentitySetup(t)
	s.mappings.EXPECT().GetE164NumberToSalt(gomock.Any()).Return(domain.E164NumberToSalt{}, nil)
	s.mappings.EXPECT().GetE164NumberToAddress(gomock.Any()).Return(domain.E164NumberToAddress{}, nil)
	s.mappings.EXPECT().UpdateE164NumberSalts(gomock.Any(), domain.E164NumberToSalt{aliceNumber: aliceSalt}).Return(nil)
	s.mappings.EXPECT().UpdateE164NumberAddresses(gomock.Any(),
		domain.E164NumberToAddress{aliceNumber: {aliceWallet}},
		domain.AddressToE164Number{aliceWallet: aliceNumber},
	).Return(nil)

	err := s.svc.UpdatePhoneNumberMappings(context.Background(), []domain.IdentityMetadata{
		aliceClaim(aliceWallet),
		{Address: bobWallet, E164Number: aliceNumber, Salt: "ZZZZZZZZZZZZZ"},
	})

	assert.NoError(t, err)
}

func TestUpdatePhoneNumberMappings_Empty(t *testing.T) {
	s := newIdentitySetup(t)

	assert.NoError(t, s.svc.UpdatePhoneNumberMappings(context.Background(), nil))
}

func TestUpdatePhoneNumberMappings_StoreError(t *testing.T) {
	s := newIdentitySetup(t)
	s.mappings.EXPECT().GetE164NumberToSalt(gomock.Any()).Return(nil, errors.New("db down"))

	err := s.svc.UpdatePhoneNumberMappings(context.Background(), []domain.IdentityMetadata{aliceClaim(aliceWallet)})

	assert.True(t, apperror.HasCode(err, "SYS_001"))
}

// slowMappingStore widens the window between reading and writing the
// mappings so that unserialized batches would interleave.
type slowMappingStore struct {
	*memory.MappingStore
	delay time.Duration
}

func (s slowMappingStore) GetE164NumberToAddress(ctx context.Context) (domain.E164NumberToAddress, error) {
	time.Sleep(s.delay)
	return s.MappingStore.GetE164NumberToAddress(ctx)
}

func newSerializedIdentityService(t *testing.T, store *memory.MappingStore) *IdentityServiceImpl {
	ctrl := gomock.NewController(t)
	return NewIdentityService(
		mocks.NewMockAccountStore(ctrl),
		slowMappingStore{MappingStore: store, delay: 50 * time.Millisecond},
		mocks.NewMockCommentService(ctrl),
		mocks.NewMockAttestationsContract(ctrl),
		mocks.NewMockAccountsContract(ctrl),
		memory.NewLocker(),
		4, newTestMetrics(), newTestLogger(),
	)
}

func runConcurrently(t *testing.T, fns ...func() error) {
	t.Helper()
	errs := make([]error, len(fns))
	var wg sync.WaitGroup
	for i, fn := range fns {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = fn()
		}()
	}
	wg.Wait()
	for _, err := range errs {
		assert.NoError(t, err)
	}
}

func TestUpdatePhoneNumberMappings_ConcurrentBatchesKeepEveryAddress(t *testing.T) {
	store := memory.NewMappingStore()
	svc := newSerializedIdentityService(t, store)
	ctx := context.Background()

	runConcurrently(t,
		func() error { return svc.UpdatePhoneNumberMappings(ctx, []domain.IdentityMetadata{aliceClaim(aliceWallet)}) },
		func() error { return svc.UpdatePhoneNumberMappings(ctx, []domain.IdentityMetadata{aliceClaim(bobWallet)}) },
	)

	mapping, err := store.GetNumberMapping(ctx, aliceNumber)
	require.NoError(t, err)
	require.NotNil(t, mapping)
	assert.Equal(t, aliceSalt, mapping.Salt)
	assert.ElementsMatch(t, []string{aliceWallet, bobWallet}, mapping.Addresses)
	assert.Equal(t, aliceNumber, store.AddressToE164Number()[aliceWallet])
	assert.Equal(t, aliceNumber, store.AddressToE164Number()[bobWallet])
}

func TestUpdatePhoneNumberMappings_ConcurrentConflictingSaltsKeepTheFirst(t *testing.T) {
	store := memory.NewMappingStore()
	svc := newSerializedIdentityService(t, store)
	ctx := context.Background()
	otherSalt := "ZZZZZZZZZZZZZ"

	runConcurrently(t,
		func() error { return svc.UpdatePhoneNumberMappings(ctx, []domain.IdentityMetadata{aliceClaim(aliceWallet)}) },
		func() error {
			return svc.UpdatePhoneNumberMappings(ctx, []domain.IdentityMetadata{
				{Address: bobWallet, E164Number: aliceNumber, Salt: otherSalt},
			})
		},
	)

	mapping, err := store.GetNumberMapping(ctx, aliceNumber)
	require.NoError(t, err)
	require.NotNil(t, mapping)
	switch mapping.Salt {
	case aliceSalt:
		assert.Equal(t, []string{aliceWallet}, mapping.Addresses)
	case otherSalt:
		assert.Equal(t, []string{bobWallet}, mapping.Addresses)
	default:
		t.Fatalf("unexpected salt %q", mapping.Salt)
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.metrics.MappingConflicts))
}

func TestUpdatePhoneNumberMappings_LockHeldElsewhere(t *testing.T) {
	ctrl := gomock.NewController(t)
	lock := mocks.NewMockLocker(ctrl)
	lock.EXPECT().TryLock(gomock.Any(), mappingsLockKey, mappingsLockTTL).Return(false, nil).MinTimes(1)
	mappings := mocks.NewMockMappingStore(ctrl)
	svc := NewIdentityService(mocks.NewMockAccountStore(ctrl), mappings, mocks.NewMockCommentService(ctrl),
		mocks.NewMockAttestationsContract(ctrl), mocks.NewMockAccountsContract(ctrl), lock, 4, newTestMetrics(), newTestLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	err := svc.UpdatePhoneNumberMappings(ctx, []domain.IdentityMetadata{aliceClaim(aliceWallet)})

	assert.True(t, apperror.HasCode(err, "SYS_001"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestUpdatePhoneNumberMappings_StoreRejectsSaltConflict(t *testing.T) {
	s := newIdentitySetup(t)
	s.mappings.EXPECT().GetE164NumberToSalt(gomock.Any()).Return(domain.E164NumberToSalt{}, nil)
	s.mappings.EXPECT().GetE164NumberToAddress(gomock.Any()).Return(domain.E164NumberToAddress{}, nil)
	s.mappings.EXPECT().UpdateE164NumberSalts(gomock.Any(), gomock.Any()).Return(domain.ErrSaltConflict)

	err := s.svc.UpdatePhoneNumberMappings(context.Background(), []domain.IdentityMetadata{aliceClaim(aliceWallet)})

	assert.ErrorIs(t, err, domain.ErrSaltConflict)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.MappingConflicts))
}

func TestCheckTransactionsForIdentityMetadata_FullPipeline(t *testing.T) {
	s := newIdentitySetup(t)
	txs := []domain.FeedTransaction{
		{Typename: domain.FeedItemTokenTransfer, Type: domain.TokenTransactionReceived, Address: aliceWallet, Comment: "CT1"},
		{Typename: domain.FeedItemTokenTransfer, Type: domain.TokenTransactionSent, Address: bobWallet, Comment: "CT2"},
		{Typename: domain.FeedItemTokenTransfer, Type: domain.TokenTransactionReceived, Address: bobWallet, Comment: "CT3"},
		{Typename: domain.FeedItemTokenExchange, Type: domain.TokenTransactionReceived, Address: bobWallet, Comment: "CT4"},
		{Typename: domain.FeedItemTokenTransfer, Type: domain.TokenTransactionReceived, Address: bobWallet},
	}

	s.accounts.EXPECT().GetDataEncryptionKey(gomock.Any()).Return("0xdek", nil)
	s.comments.EXPECT().DecryptComment(gomock.Any(), "CT1", "0xdek", false).
		Return(domain.DecryptedComment{Comment: "hi", E164Number: aliceNumber, Salt: aliceSalt})
	s.comments.EXPECT().DecryptComment(gomock.Any(), "CT3", "0xdek", false).
		Return(domain.DecryptedComment{Comment: "no metadata"})
	s.expectAttested(aliceHash, []string{aliceAccount}, map[string]string{aliceAccount: aliceWallet})
	s.mappings.EXPECT().GetE164NumberToSalt(gomock.Any()).Return(domain.E164NumberToSalt{}, nil)
	s.mappings.EXPECT().GetE164NumberToAddress(gomock.Any()).Return(domain.E164NumberToAddress{}, nil)
	s.mappings.EXPECT().UpdateE164NumberSalts(gomock.Any(), gomock.Any()).Return(nil)
	s.mappings.EXPECT().UpdateE164NumberAddresses(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	assert.Equal(t, 1, s.svc.CheckTransactionsForIdentityMetadata(context.Background(), txs))
}

func TestCheckTransactionsForIdentityMetadata_MissingDEK(t *testing.T) {
	s := newIdentitySetup(t)
	s.accounts.EXPECT().GetDataEncryptionKey(gomock.Any()).Return("", nil)

	got := s.svc.CheckTransactionsForIdentityMetadata(context.Background(), []domain.FeedTransaction{
		{Typename: domain.FeedItemTokenTransfer, Type: domain.TokenTransactionReceived, Comment: "CT"},
	})

	assert.Zero(t, got)
}

func TestCheckTransactionsForIdentityMetadata_EmptyBatch(t *testing.T) {
	s := newIdentitySetup(t)

	assert.Zero(t, s.svc.CheckTransactionsForIdentityMetadata(context.Background(), nil))
}

func TestCheckTransactionsForIdentityMetadata_SwallowsStoreErrors(t *testing.T) {
	s := newIdentitySetup(t)
	s.accounts.EXPECT().GetDataEncryptionKey(gomock.Any()).Return("0xdek", nil)
	s.comments.EXPECT().DecryptComment(gomock.Any(), "CT1", "0xdek", false).
		Return(domain.DecryptedComment{Comment: "hi", E164Number: aliceNumber, Salt: aliceSalt})
	s.expectAttested(aliceHash, []string{aliceAccount}, map[string]string{aliceAccount: aliceWallet})
	s.mappings.EXPECT().GetE164NumberToSalt(gomock.Any()).Return(nil, errors.New("db down"))

	got := s.svc.CheckTransactionsForIdentityMetadata(context.Background(), []domain.FeedTransaction{
		{Typename: domain.FeedItemTokenTransfer, Type: domain.TokenTransactionReceived, Address: aliceWallet, Comment: "CT1"},
	})

	assert.Zero(t, got)
}

func TestGetNumberMapping(t *testing.T) {
	s := newIdentitySetup(t)
	mapping := &domain.NumberMapping{E164Number: aliceNumber, Salt: aliceSalt, Addresses: []string{aliceWallet}}
	s.mappings.EXPECT().GetNumberMapping(gomock.Any(), aliceNumber).Return(mapping, nil)
	s.mappings.EXPECT().GetNumberMapping(gomock.Any(), "+4930123456").Return(nil, nil)

	got, err := s.svc.GetNumberMapping(context.Background(), aliceNumber)
	require.NoError(t, err)
	assert.Equal(t, mapping, got)

	_, err = s.svc.GetNumberMapping(context.Background(), "+4930123456")
	assert.True(t, apperror.HasCode(err, "RES_001"))

	_, err = s.svc.GetNumberMapping(context.Background(), "5551234")
	assert.True(t, apperror.HasCode(err, "IDN_001"))
}

func TestSetSelfPhoneDetails(t *testing.T) {
	s := newIdentitySetup(t)
	s.accounts.EXPECT().SetSelfPhoneDetails(gomock.Any(), domain.PhoneNumberHashDetails{
		E164Number: aliceNumber, Pepper: aliceSalt, PhoneHash: aliceHash,
	}).Return(nil)

	require.NoError(t, s.svc.SetSelfPhoneDetails(context.Background(), domain.PhoneNumberHashDetails{
		E164Number: aliceNumber, Pepper: aliceSalt,
	}))

	err := s.svc.SetSelfPhoneDetails(context.Background(), domain.PhoneNumberHashDetails{E164Number: aliceNumber, Pepper: "short"})
	assert.True(t, apperror.HasCode(err, "CMT_001"))

	err = s.svc.SetSelfPhoneDetails(context.Background(), domain.PhoneNumberHashDetails{E164Number: "555", Pepper: aliceSalt})
	assert.True(t, apperror.HasCode(err, "IDN_001"))
}
