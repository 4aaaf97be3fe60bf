package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoMembers is returned when a vault would end up without members.
var ErrNoMembers = errors.New("vault has no members")

// Vault is a shared custody account with a fixed member set and an approval threshold.
type Vault struct {
	ID                 string
	Name               string
	Members            []Address
	SignaturesRequired int
	Balance            Amount
	CreatedAt          time.Time
	// OwnerAddress is the ledger account holding the vault resources.
	OwnerAddress Address
}

// Member is a vault participant as submitted at creation time.
type Member struct {
	Address Address
	Name    string
}

// NewVault builds a vault with de-duplicated members and a threshold clamped to 1..len(members).
func NewVault(
	id, name string,
	owner Address,
	members []Address,
	signaturesRequired int,
	balance Amount,
	createdAt time.Time,
) (Vault, error) {
	unique := make([]Address, 0, len(members))
	for _, m := range members {
		if !containsAddress(unique, m) {
			unique = append(unique, m)
		}
	}
	if len(unique) == 0 {
		return Vault{}, fmt.Errorf("vault %s: %w", id, ErrNoMembers)
	}
	return Vault{
		ID:                 id,
		Name:               name,
		Members:            unique,
		SignaturesRequired: clampThreshold(signaturesRequired, len(unique)),
		Balance:            balance,
		CreatedAt:          createdAt,
		OwnerAddress:       owner,
	}, nil
}

// IsMember reports whether a is one of the vault members.
func (v Vault) IsMember(a Address) bool {
	return containsAddress(v.Members, a)
}

// Clone returns a deep copy.
func (v Vault) Clone() Vault {
	v.Members = cloneAddresses(v.Members)
	return v
}

func clampThreshold(required, members int) int {
	if required < 1 {
		return 1
	}
	if required > members {
		return members
	}
	return required
}
