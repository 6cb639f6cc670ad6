package chain

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"
)

// AttestationRule decides when an account counts as verified for a number.
type AttestationRule struct {
	Required  uint32
	Threshold float64
}

// Verified applies the rule to completed out of total requested attestations.
func (r AttestationRule) Verified(completed, total uint32) bool {
	fraction := 0.0
	if total >= 1 {
		fraction = float64(completed) / float64(total)
	}
	return completed >= r.Required && fraction >= r.Threshold
}

// Attestations implements ports.AttestationsContract.
type Attestations struct {
	backend     Backend
	address     common.Address
	rule        AttestationRule
	concurrency int
}

// NewAttestations binds the Attestations contract deployed at address.
func NewAttestations(backend Backend, address string, rule AttestationRule, concurrency int) *Attestations {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Attestations{
		backend:     backend,
		address:     common.HexToAddress(address),
		rule:        rule,
		concurrency: concurrency,
	}
}

// LookupAccountsForIdentifier returns the accounts that requested
// attestations for phoneHash.
func (a *Attestations) LookupAccountsForIdentifier(ctx context.Context, phoneHash string) ([]string, error) {
	identifier, err := identifierBytes(phoneHash)
	if err != nil {
		return nil, err
	}
	values, err := call(ctx, a.backend, a.address, attestationsABI, "lookupAccountsForIdentifier", identifier)
	if err != nil {
		return nil, err
	}
	found := values[0].([]common.Address)
	accounts := make([]string, len(found))
	for i, account := range found {
		accounts[i] = account.Hex()
	}
	return accounts, nil
}

// FilterNonVerifiedAddresses keeps, in order, the accounts whose attestation
// stats satisfy the rule.
func (a *Attestations) FilterNonVerifiedAddresses(ctx context.Context, accounts []string, phoneHash string) ([]string, error) {
	identifier, err := identifierBytes(phoneHash)
	if err != nil {
		return nil, err
	}

	verified := make([]bool, len(accounts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, account := range accounts {
		g.Go(func() error {
			values, err := call(gctx, a.backend, a.address, attestationsABI, "getAttestationStats",
				identifier, common.HexToAddress(account))
			if err != nil {
				return err
			}
			verified[i] = a.rule.Verified(values[0].(uint32), values[1].(uint32))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(accounts))
	for i, account := range accounts {
		if verified[i] {
			out = append(out, account)
		}
	}
	return out, nil
}

func identifierBytes(phoneHash string) ([32]byte, error) {
	var identifier [32]byte
	raw := common.FromHex(phoneHash)
	if len(raw) != len(identifier) {
		return identifier, fmt.Errorf("phone hash must be 32 bytes, got %d", len(raw))
	}
	copy(identifier[:], raw)
	return identifier, nil
}
