package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"wallet-identity/internal/core/domain"
	"wallet-identity/internal/core/ports"
	"wallet-identity/pkg/apperror"
	"wallet-identity/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	dekTag = "web3/dataEncryptionKey"

	registrationLockKey    = "dek-registration"
	defaultRegistrationTTL = 3 * time.Minute
)

var errRegistrationNotReflected = errors.New("set account mined but chain state is not up to date")

// DEKOptions toggles optional DEK behaviour.
type DEKOptions struct {
	// UseDEKForAuth lets a registered DEK sign requests instead of the wallet key.
	UseDEKForAuth bool
	// RegistrationLockTTL bounds how long one registration attempt holds the
	// lock. It should outlast the receipt timeout.
	RegistrationLockTTL time.Duration
}

// DEKServiceImpl implements ports.DEKService.
type DEKServiceImpl struct {
	store    ports.AccountStore
	accounts ports.AccountsContract
	mtw      ports.MetaTxWallet
	sender   ports.TxSender
	balances ports.BalanceReader
	relayer  ports.Relayer
	lock     ports.Locker
	opts     DEKOptions
	metrics  *Metrics
	log      zerolog.Logger
}

// NewDEKService creates a new DEKServiceImpl.
func NewDEKService(
	store ports.AccountStore,
	accounts ports.AccountsContract,
	mtw ports.MetaTxWallet,
	sender ports.TxSender,
	balances ports.BalanceReader,
	relayer ports.Relayer,
	lock ports.Locker,
	opts DEKOptions,
	metrics *Metrics,
	log zerolog.Logger,
) *DEKServiceImpl {
	if opts.RegistrationLockTTL <= 0 {
		opts.RegistrationLockTTL = defaultRegistrationTTL
	}
	return &DEKServiceImpl{
		store:    store,
		accounts: accounts,
		mtw:      mtw,
		sender:   sender,
		balances: balances,
		relayer:  relayer,
		lock:     lock,
		opts:     opts,
		metrics:  metrics,
		log:      logger.Component(log, dekTag),
	}
}

// RegisterAccountDEK registers the wallet and DEK on-chain, paid by the user.
// It is safe to call before every payment: once registered it is a no-op, and
// failures are logged and retried on the next call.
func (s *DEKServiceImpl) RegisterAccountDEK(ctx context.Context) domain.DEKRegistrationState {
	locked, err := s.lock.TryLock(ctx, registrationLockKey, s.opts.RegistrationLockTTL)
	if err != nil {
		s.log.Error().Err(err).Msg("could not take registration lock, will retry")
		return domain.DEKStateUnregistered
	}
	if !locked {
		s.log.Debug().Msg("registration already in progress")
		return domain.DEKStateSubmitting
	}
	defer s.unlock(ctx)

	state, err := s.registerAccountDEK(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("state", string(state)).Msg("failure registering DEK, will retry")
		s.metrics.DEKRegistrations.WithLabelValues("user_funded", "failed").Inc()
		return domain.DEKStateUnregistered
	}
	s.metrics.DEKRegistrations.WithLabelValues("user_funded", string(state)).Inc()
	return state
}

func (s *DEKServiceImpl) registerAccountDEK(ctx context.Context) (domain.DEKRegistrationState, error) {
	registered, err := s.store.IsDEKRegistered(ctx)
	if err != nil {
		return domain.DEKStateUnregistered, fmt.Errorf("reading registration flag: %w", err)
	}
	if registered {
		s.log.Debug().Msg("DEK already registered, skipping")
		return domain.DEKStateRegistered, nil
	}

	account, err := s.store.GetAccount(ctx)
	if err != nil {
		return domain.DEKStateUnregistered, fmt.Errorf("reading account: %w", err)
	}
	if account == nil || account.WalletAddress == "" {
		return domain.DEKStateUnregistered, errors.New("no local account")
	}

	funded, err := s.hasFunds(ctx, account.WalletAddress)
	if err != nil {
		return domain.DEKStateUnregistered, err
	}
	if !funded {
		s.log.Debug().Msg("no balance yet, deferring DEK registration")
		return domain.DEKStateUnregistered, nil
	}

	publicKey, err := s.publicDataKey(ctx)
	if err != nil {
		return domain.DEKStateUnregistered, err
	}

	upToDate, err := s.IsAccountUpToDate(ctx, account.AccountAddress(), account.WalletAddress, publicKey)
	if err != nil {
		return domain.DEKStateChecking, err
	}
	if upToDate {
		s.log.Debug().Msg("account already up to date on-chain")
		return domain.DEKStateRegistered, s.markRegistered(ctx)
	}

	if err := s.sendUserFundedSetAccountTx(ctx, *account, publicKey); err != nil {
		return domain.DEKStateSubmitting, err
	}

	confirmed, err := s.IsAccountUpToDate(ctx, account.AccountAddress(), account.WalletAddress, publicKey)
	if err != nil {
		return domain.DEKStateSubmitting, err
	}
	if !confirmed {
		return domain.DEKStateSubmitting, errRegistrationNotReflected
	}
	return domain.DEKStateRegistered, s.markRegistered(ctx)
}

// hasFunds is true when either the stable token or the native balance is
// known and non-zero.
func (s *DEKServiceImpl) hasFunds(ctx context.Context, wallet string) (bool, error) {
	var stable, native *big.Int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stable, err = s.balances.StableBalance(gctx, wallet)
		return err
	})
	g.Go(func() error {
		var err error
		native, err = s.balances.NativeBalance(gctx, wallet)
		return err
	})
	if err := g.Wait(); err != nil {
		return false, fmt.Errorf("reading balances: %w", err)
	}
	return isPositive(stable) || isPositive(native), nil
}

func isPositive(v *big.Int) bool {
	return v != nil && v.Sign() > 0
}

func (s *DEKServiceImpl) sendUserFundedSetAccountTx(ctx context.Context, account domain.Account, publicKey string) error {
	txCtx := domain.NewTransactionContext(dekTag, "Set wallet address & DEK")
	accountAddress := account.AccountAddress()

	var tx *domain.TxObject
	if account.MTWAddress != "" {
		proof, err := s.sender.SignProofOfPossession(ctx, accountAddress, account.WalletAddress)
		if err != nil {
			return fmt.Errorf("signing proof of possession: %w", err)
		}
		inner, err := s.accounts.SetAccountTx("", publicKey, account.WalletAddress, proof)
		if err != nil {
			return fmt.Errorf("building setAccount: %w", err)
		}
		tx, err = s.mtw.WrapMetaTransaction(ctx, account.MTWAddress, inner, account.WalletAddress)
		if err != nil {
			return fmt.Errorf("wrapping meta transaction: %w", err)
		}
	} else {
		var err error
		tx, err = s.accounts.SetAccountTx("", publicKey, account.WalletAddress, nil)
		if err != nil {
			return fmt.Errorf("building setAccount: %w", err)
		}
	}

	receipt, err := s.sender.SendTransaction(ctx, tx, account.WalletAddress, txCtx)
	if err != nil {
		return fmt.Errorf("sending setAccount: %w", err)
	}
	if !receipt.Succeeded() {
		return fmt.Errorf("setAccount reverted in %s", receipt.TxHash)
	}
	s.log.Info().Str("tx_id", txCtx.ID).Str("tx_hash", receipt.TxHash).Msg("set wallet address and DEK")

	return s.store.UpdateWalletToAccountAddress(ctx, domain.WalletToAccountAddress{
		domain.NormalizeAddress(account.WalletAddress): domain.NormalizeAddress(accountAddress),
	})
}

// RegisterWalletAndDEKViaRelayer registers through the sponsoring relayer
// during onboarding. Unlike RegisterAccountDEK every failure is returned.
func (s *DEKServiceImpl) RegisterWalletAndDEKViaRelayer(ctx context.Context, accountAddress, walletAddress string) (domain.DEKRegistrationState, error) {
	if !common.IsHexAddress(accountAddress) || !common.IsHexAddress(walletAddress) {
		return domain.DEKStateUnregistered, apperror.ErrInvalidAddress()
	}

	publicKey, err := s.publicDataKey(ctx)
	if err != nil {
		return domain.DEKStateUnregistered, err
	}

	locked, err := s.lock.TryLock(ctx, registrationLockKey, s.opts.RegistrationLockTTL)
	if err != nil {
		return domain.DEKStateUnregistered, apperror.InternalError(err)
	}
	if !locked {
		return domain.DEKStateSubmitting, apperror.ErrRegistrationInProgress()
	}
	defer s.unlock(ctx)

	upToDate, err := s.IsAccountUpToDate(ctx, accountAddress, walletAddress, publicKey)
	if err != nil {
		return domain.DEKStateChecking, apperror.ErrChainUnavailable(err)
	}

	if !upToDate {
		receipt, err := s.relayer.SetAccount(ctx, accountAddress, "", publicKey, walletAddress)
		if err != nil {
			s.metrics.DEKRegistrations.WithLabelValues("relayed", "failed").Inc()
			return domain.DEKStateSubmitting, apperror.ErrRelayerRegistration(err)
		}
		if !receipt.Succeeded() {
			s.metrics.DEKRegistrations.WithLabelValues("relayed", "failed").Inc()
			return domain.DEKStateSubmitting, apperror.ErrRelayerRegistration(fmt.Errorf("transaction %s reverted", receipt.TxHash))
		}
		s.log.Info().Str("tx_hash", receipt.TxHash).Msg("relayer set wallet address and DEK")

		if err := s.store.UpdateWalletToAccountAddress(ctx, domain.WalletToAccountAddress{
			domain.NormalizeAddress(walletAddress): domain.NormalizeAddress(accountAddress),
		}); err != nil {
			return domain.DEKStateSubmitting, apperror.ErrDatabaseError(err)
		}
	}

	if err := s.markRegistered(ctx); err != nil {
		return domain.DEKStateSubmitting, apperror.ErrDatabaseError(err)
	}
	s.metrics.DEKRegistrations.WithLabelValues("relayed", string(domain.DEKStateRegistered)).Inc()
	return domain.DEKStateRegistered, nil
}

// IsAccountUpToDate reports whether the account already has this wallet and
// DEK on-chain. Missing inputs or unset on-chain values mean "not up to date".
func (s *DEKServiceImpl) IsAccountUpToDate(ctx context.Context, accountAddress, walletAddress, dataEncryptionKey string) (bool, error) {
	if accountAddress == "" || dataEncryptionKey == "" {
		return false, nil
	}

	var onchainWallet, onchainDEK string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		onchainWallet, err = s.accounts.GetWalletAddress(gctx, accountAddress)
		return err
	})
	g.Go(func() error {
		var err error
		onchainDEK, err = s.accounts.GetDataEncryptionKey(gctx, accountAddress)
		return err
	})
	if err := g.Wait(); err != nil {
		return false, fmt.Errorf("reading account state: %w", err)
	}

	return onchainWallet != "" && onchainDEK != "" &&
		domain.EqAddress(onchainWallet, walletAddress) &&
		domain.EqAddress(onchainDEK, dataEncryptionKey), nil
}

// FetchDataEncryptionKey resolves the DEK of a wallet, following the
// wallet-to-account mapping when one is known, and caches what it read.
func (s *DEKServiceImpl) FetchDataEncryptionKey(ctx context.Context, walletAddress string) ([]byte, error) {
	mapping, err := s.store.GetWalletToAccountAddress(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading wallet mapping: %w", err)
	}
	account := walletAddress
	if mapped := mapping[domain.NormalizeAddress(walletAddress)]; mapped != "" {
		account = mapped
	}

	dek, err := s.accounts.GetDataEncryptionKey(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("reading DEK of %s: %w", account, err)
	}
	if err := s.store.UpdateAddressDEK(ctx, domain.NormalizeAddress(account), dek); err != nil {
		s.log.Warn().Err(err).Str("address", account).Msg("could not cache DEK")
	}
	if dek == "" {
		return nil, nil
	}
	return common.FromHex(dek), nil
}

// CreateAccountDEK derives the DEK from the account mnemonic and stores it.
// It returns the public key to register.
func (s *DEKServiceImpl) CreateAccountDEK(ctx context.Context, mnemonic string) (string, error) {
	privateKey, err := DeriveDEK(mnemonic)
	if err != nil {
		return "", apperror.ErrInvalidMnemonic(err)
	}
	publicKey, err := CompressedPublicKey(privateKey)
	if err != nil {
		return "", apperror.InternalError(err)
	}
	if err := s.store.SetDataEncryptionKey(ctx, privateKey); err != nil {
		return "", apperror.ErrDatabaseError(err)
	}
	s.log.Info().Str("dek", logger.MaskKey(publicKey)).Msg("created account DEK")
	return publicKey, nil
}

// EstimateRegisterDEKGas estimates setAccount with a placeholder key, so it
// works before the user's DEK exists.
func (s *DEKServiceImpl) EstimateRegisterDEKGas(ctx context.Context, walletAddress string) (uint64, error) {
	if !common.IsHexAddress(walletAddress) {
		return 0, apperror.ErrInvalidAddress()
	}
	tx, err := s.accounts.SetAccountTx("", domain.PlaceholderDEK, walletAddress, nil)
	if err != nil {
		return 0, apperror.InternalError(err)
	}
	gas, err := s.accounts.EstimateGas(ctx, walletAddress, tx)
	if err != nil {
		return 0, apperror.ErrInsufficientBalance(err)
	}
	return gas, nil
}

// GetAuthSignerForAccount picks the DEK as request signer when it is
// registered for the account, and the wallet key otherwise.
// RawKey is the DEK public key; the private key never leaves the service.
func (s *DEKServiceImpl) GetAuthSignerForAccount(ctx context.Context, accountAddress, walletAddress string) (*domain.AuthSigner, error) {
	_, publicKey, err := s.authKey(ctx, accountAddress, walletAddress)
	if err != nil {
		return nil, err
	}
	if publicKey == "" {
		return &domain.AuthSigner{Method: domain.AuthMethodWalletKey}, nil
	}
	return &domain.AuthSigner{Method: domain.AuthMethodEncryptionKey, RawKey: publicKey}, nil
}

// SignForAuth signs message for a remote service. A registered DEK yields a
// DER signature encoded as a JSON byte array, the wallet key a personal_sign
// signature.
func (s *DEKServiceImpl) SignForAuth(ctx context.Context, accountAddress, walletAddress, message string) (*domain.AuthSignature, error) {
	if message == "" {
		return nil, apperror.Validation("message is required")
	}
	privateKey, publicKey, err := s.authKey(ctx, accountAddress, walletAddress)
	if err != nil {
		return nil, err
	}

	if privateKey != "" {
		sig, err := SignWithDEK(message, privateKey)
		if err != nil {
			return nil, apperror.InternalError(err)
		}
		return &domain.AuthSignature{Method: domain.AuthMethodEncryptionKey, Signer: publicKey, Signature: sig}, nil
	}

	sig, err := s.sender.SignPersonalMessage(ctx, []byte(message), walletAddress)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return &domain.AuthSignature{Method: domain.AuthMethodWalletKey, Signer: walletAddress, Signature: sig}, nil
}

// authKey returns the DEK key pair when it may sign for the account, and
// empty strings when the wallet key must sign instead.
func (s *DEKServiceImpl) authKey(ctx context.Context, accountAddress, walletAddress string) (string, string, error) {
	if !s.opts.UseDEKForAuth {
		return "", "", nil
	}
	privateKey, err := s.store.GetDataEncryptionKey(ctx)
	if err != nil {
		return "", "", apperror.ErrDatabaseError(err)
	}
	if privateKey == "" {
		return "", "", nil
	}
	publicKey, err := CompressedPublicKey(privateKey)
	if err != nil {
		return "", "", apperror.InternalError(err)
	}
	upToDate, err := s.IsAccountUpToDate(ctx, accountAddress, walletAddress, publicKey)
	if err != nil {
		return "", "", apperror.ErrChainUnavailable(err)
	}
	if !upToDate {
		return "", "", nil
	}
	return privateKey, publicKey, nil
}

// GetDataEncryptionKey returns the stored private DEK.
func (s *DEKServiceImpl) GetDataEncryptionKey(ctx context.Context) (string, error) {
	privateKey, err := s.store.GetDataEncryptionKey(ctx)
	if err != nil {
		return "", apperror.ErrDatabaseError(err)
	}
	if privateKey == "" {
		return "", apperror.ErrDEKMissing()
	}
	return privateKey, nil
}

func (s *DEKServiceImpl) publicDataKey(ctx context.Context) (string, error) {
	privateKey, err := s.GetDataEncryptionKey(ctx)
	if err != nil {
		return "", err
	}
	publicKey, err := CompressedPublicKey(privateKey)
	if err != nil {
		return "", apperror.InternalError(err)
	}
	return publicKey, nil
}

func (s *DEKServiceImpl) unlock(ctx context.Context) {
	if err := s.lock.Unlock(context.WithoutCancel(ctx), registrationLockKey); err != nil {
		s.log.Warn().Err(err).Msg("could not release registration lock")
	}
}

func (s *DEKServiceImpl) markRegistered(ctx context.Context) error {
	if err := s.store.SetDEKRegistered(ctx, true); err != nil {
		return fmt.Errorf("saving registration flag: %w", err)
	}
	return nil
}
