package postgres

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"wallet-identity/internal/core/domain"
	"wallet-identity/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountStore for the account owning
// walletAddress. The private DEK is sealed before it is written.
type AccountRepo struct {
	pool   Pool
	sealer ports.KeySealer
	wallet string
}

// NewAccountRepo creates a new AccountRepo bound to one wallet.
func NewAccountRepo(pool Pool, sealer ports.KeySealer, walletAddress string) *AccountRepo {
	return &AccountRepo{
		pool:   pool,
		sealer: sealer,
		wallet: domain.NormalizeAddress(walletAddress),
	}
}

// EnsureAccount creates the account row and records its meta-transaction
// wallet, if any.
func (r *AccountRepo) EnsureAccount(ctx context.Context, mtwAddress string) error {
	query := `INSERT INTO accounts (wallet_address, mtw_address) VALUES ($1, $2)
		ON CONFLICT (wallet_address) DO UPDATE SET mtw_address = EXCLUDED.mtw_address, updated_at = NOW()`

	if mtwAddress != "" {
		mtwAddress = domain.NormalizeAddress(mtwAddress)
	}
	if _, err := r.pool.Exec(ctx, query, r.wallet, mtwAddress); err != nil {
		return fmt.Errorf("ensure account: %w", err)
	}
	return nil
}

// GetAccount returns the bound account. Without a row only the wallet is set.
func (r *AccountRepo) GetAccount(ctx context.Context) (*domain.Account, error) {
	account := &domain.Account{WalletAddress: r.wallet}
	err := r.pool.QueryRow(ctx,
		`SELECT mtw_address FROM accounts WHERE wallet_address = $1`, r.wallet,
	).Scan(&account.MTWAddress)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return account, nil
}

// GetDataEncryptionKey returns the unsealed private DEK, or "" when unset.
func (r *AccountRepo) GetDataEncryptionKey(ctx context.Context) (string, error) {
	var sealed string
	err := r.pool.QueryRow(ctx,
		`SELECT data_encryption_key FROM accounts WHERE wallet_address = $1`, r.wallet,
	).Scan(&sealed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get data encryption key: %w", err)
	}
	key, err := r.sealer.Open(sealed, r.wallet)
	if err != nil {
		return "", fmt.Errorf("unseal data encryption key: %w", err)
	}
	return key, nil
}

// SetDataEncryptionKey seals and stores the private DEK.
func (r *AccountRepo) SetDataEncryptionKey(ctx context.Context, privateKey string) error {
	sealed, err := r.sealer.Seal(privateKey, r.wallet)
	if err != nil {
		return fmt.Errorf("seal data encryption key: %w", err)
	}
	query := `INSERT INTO accounts (wallet_address, data_encryption_key) VALUES ($1, $2)
		ON CONFLICT (wallet_address) DO UPDATE SET data_encryption_key = EXCLUDED.data_encryption_key, updated_at = NOW()`

	if _, err := r.pool.Exec(ctx, query, r.wallet, sealed); err != nil {
		return fmt.Errorf("set data encryption key: %w", err)
	}
	return nil
}

// IsDEKRegistered reports the registration flag.
func (r *AccountRepo) IsDEKRegistered(ctx context.Context) (bool, error) {
	var registered bool
	err := r.pool.QueryRow(ctx,
		`SELECT dek_registered FROM accounts WHERE wallet_address = $1`, r.wallet,
	).Scan(&registered)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("get dek registered: %w", err)
	}
	return registered, nil
}

// SetDEKRegistered sets the registration flag.
func (r *AccountRepo) SetDEKRegistered(ctx context.Context, registered bool) error {
	query := `INSERT INTO accounts (wallet_address, dek_registered) VALUES ($1, $2)
		ON CONFLICT (wallet_address) DO UPDATE SET dek_registered = EXCLUDED.dek_registered, updated_at = NOW()`

	if _, err := r.pool.Exec(ctx, query, r.wallet, registered); err != nil {
		return fmt.Errorf("set dek registered: %w", err)
	}
	return nil
}

// GetSelfPhoneDetails returns the user's own verified number, or nil.
func (r *AccountRepo) GetSelfPhoneDetails(ctx context.Context) (*domain.PhoneNumberHashDetails, error) {
	d := &domain.PhoneNumberHashDetails{}
	err := r.pool.QueryRow(ctx,
		`SELECT e164_number, pepper, phone_hash FROM accounts WHERE wallet_address = $1`, r.wallet,
	).Scan(&d.E164Number, &d.Pepper, &d.PhoneHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get self phone details: %w", err)
	}
	if d.E164Number == "" {
		return nil, nil
	}
	return d, nil
}

// SetSelfPhoneDetails stores the user's own verified number.
func (r *AccountRepo) SetSelfPhoneDetails(ctx context.Context, details domain.PhoneNumberHashDetails) error {
	query := `INSERT INTO accounts (wallet_address, e164_number, pepper, phone_hash) VALUES ($1, $2, $3, $4)
		ON CONFLICT (wallet_address) DO UPDATE SET e164_number = EXCLUDED.e164_number,
		pepper = EXCLUDED.pepper, phone_hash = EXCLUDED.phone_hash, updated_at = NOW()`

	if _, err := r.pool.Exec(ctx, query, r.wallet, details.E164Number, details.Pepper, details.PhoneHash); err != nil {
		return fmt.Errorf("set self phone details: %w", err)
	}
	return nil
}

// GetWalletToAccountAddress loads the wallet to account address map.
func (r *AccountRepo) GetWalletToAccountAddress(ctx context.Context) (domain.WalletToAccountAddress, error) {
	rows, err := r.pool.Query(ctx, `SELECT wallet_address, account_address FROM wallet_account_addresses`)
	if err != nil {
		return nil, fmt.Errorf("query wallet accounts: %w", err)
	}
	defer rows.Close()

	mapping := make(domain.WalletToAccountAddress)
	for rows.Next() {
		var wallet, account string
		if err := rows.Scan(&wallet, &account); err != nil {
			return nil, fmt.Errorf("scan wallet account: %w", err)
		}
		mapping[wallet] = account
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallet accounts: %w", err)
	}
	return mapping, nil
}

// UpdateWalletToAccountAddress merges updates into the map. Keys and values
// are stored lowercase.
func (r *AccountRepo) UpdateWalletToAccountAddress(ctx context.Context, updates domain.WalletToAccountAddress) error {
	if len(updates) == 0 {
		return nil
	}
	query := `INSERT INTO wallet_account_addresses (wallet_address, account_address) VALUES ($1, $2)
		ON CONFLICT (wallet_address) DO UPDATE SET account_address = EXCLUDED.account_address`

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		for _, wallet := range slices.Sorted(maps.Keys(updates)) {
			if _, err := tx.Exec(ctx, query,
				domain.NormalizeAddress(wallet), domain.NormalizeAddress(updates[wallet])); err != nil {
				return fmt.Errorf("upsert account of %s: %w", wallet, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("update wallet accounts: %w", err)
	}
	return nil
}

// UpdateAddressDEK records the public DEK last read for an address.
func (r *AccountRepo) UpdateAddressDEK(ctx context.Context, address string, dek string) error {
	query := `INSERT INTO address_data_encryption_keys (address, data_encryption_key, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (address) DO UPDATE SET data_encryption_key = EXCLUDED.data_encryption_key, updated_at = NOW()`

	if _, err := r.pool.Exec(ctx, query, domain.NormalizeAddress(address), dek); err != nil {
		return fmt.Errorf("update address dek: %w", err)
	}
	return nil
}
