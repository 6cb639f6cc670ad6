package postgres

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"wallet-identity/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// MappingRepo implements ports.MappingStore.
type MappingRepo struct {
	pool Pool
}

// NewMappingRepo creates a new MappingRepo.
func NewMappingRepo(pool Pool) *MappingRepo {
	return &MappingRepo{pool: pool}
}

// GetE164NumberToSalt loads every known number salt.
func (r *MappingRepo) GetE164NumberToSalt(ctx context.Context) (domain.E164NumberToSalt, error) {
	rows, err := r.pool.Query(ctx, `SELECT e164_number, salt FROM e164_number_salts`)
	if err != nil {
		return nil, fmt.Errorf("query number salts: %w", err)
	}
	defer rows.Close()

	salts := make(domain.E164NumberToSalt)
	for rows.Next() {
		var number, salt string
		if err := rows.Scan(&number, &salt); err != nil {
			return nil, fmt.Errorf("scan number salt: %w", err)
		}
		salts[number] = salt
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate number salts: %w", err)
	}
	return salts, nil
}

// GetE164NumberToAddress loads every number's address list.
func (r *MappingRepo) GetE164NumberToAddress(ctx context.Context) (domain.E164NumberToAddress, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT e164_number, address FROM e164_number_addresses ORDER BY e164_number, address`)
	if err != nil {
		return nil, fmt.Errorf("query number addresses: %w", err)
	}
	defer rows.Close()

	addresses := make(domain.E164NumberToAddress)
	for rows.Next() {
		var number, address string
		if err := rows.Scan(&number, &address); err != nil {
			return nil, fmt.Errorf("scan number address: %w", err)
		}
		addresses[number] = append(addresses[number], address)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate number addresses: %w", err)
	}
	return addresses, nil
}

// GetNumberMapping returns the salt and addresses of one number, or nil when
// nothing is known about it.
func (r *MappingRepo) GetNumberMapping(ctx context.Context, e164Number string) (*domain.NumberMapping, error) {
	mapping := &domain.NumberMapping{E164Number: e164Number}

	err := r.pool.QueryRow(ctx,
		`SELECT salt FROM e164_number_salts WHERE e164_number = $1`, e164Number,
	).Scan(&mapping.Salt)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get number salt: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT address FROM e164_number_addresses WHERE e164_number = $1 ORDER BY address`, e164Number)
	if err != nil {
		return nil, fmt.Errorf("query addresses of number: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var address string
		if err := rows.Scan(&address); err != nil {
			return nil, fmt.Errorf("scan address of number: %w", err)
		}
		mapping.Addresses = append(mapping.Addresses, address)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate addresses of number: %w", err)
	}

	if mapping.Salt == "" && len(mapping.Addresses) == 0 {
		return nil, nil
	}
	return mapping, nil
}

// UpdateE164NumberSalts inserts all salts in one transaction. A cached salt is
// never replaced: rewriting the same salt is a no-op and a different one
// aborts the batch with domain.ErrSaltConflict.
func (r *MappingRepo) UpdateE164NumberSalts(ctx context.Context, salts domain.E164NumberToSalt) error {
	if len(salts) == 0 {
		return nil
	}
	query := `INSERT INTO e164_number_salts (e164_number, salt, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (e164_number) DO UPDATE SET updated_at = NOW()
		WHERE e164_number_salts.salt = EXCLUDED.salt`

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		for _, number := range slices.Sorted(maps.Keys(salts)) {
			tag, err := tx.Exec(ctx, query, number, salts[number])
			if err != nil {
				return fmt.Errorf("insert salt of %s: %w", number, err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("salt of %s: %w", number, domain.ErrSaltConflict)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("update number salts: %w", err)
	}
	return nil
}

// UpdateE164NumberAddresses adds the given addresses to each number's set and
// points every address in addressToE164 at its number, in one transaction.
// Addresses are never removed, so concurrent writers cannot drop each other's.
func (r *MappingRepo) UpdateE164NumberAddresses(ctx context.Context, e164ToAddress domain.E164NumberToAddress, addressToE164 domain.AddressToE164Number) error {
	if len(e164ToAddress) == 0 && len(addressToE164) == 0 {
		return nil
	}

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		for _, number := range slices.Sorted(maps.Keys(e164ToAddress)) {
			for _, address := range e164ToAddress[number] {
				if _, err := tx.Exec(ctx,
					`INSERT INTO e164_number_addresses (e164_number, address) VALUES ($1, $2)
					ON CONFLICT DO NOTHING`, number, address); err != nil {
					return fmt.Errorf("insert address of %s: %w", number, err)
				}
			}
		}
		for _, address := range slices.Sorted(maps.Keys(addressToE164)) {
			if _, err := tx.Exec(ctx,
				`INSERT INTO address_e164_numbers (address, e164_number, updated_at) VALUES ($1, $2, NOW())
				ON CONFLICT (address) DO UPDATE SET e164_number = EXCLUDED.e164_number, updated_at = NOW()`,
				address, addressToE164[address]); err != nil {
				return fmt.Errorf("upsert number of %s: %w", address, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("update number addresses: %w", err)
	}
	return nil
}
