// Package model holds the vault domain types shared by the ledger, store and services.
package model

import (
	"fmt"
	"strings"
)

// Address is a ledger account address in lowercase 0x-prefixed hex form.
type Address string

// SystemActor attributes activity produced by the session itself, such as expiry.
const SystemActor Address = "system"

const maxAddressHexLen = 64

// ParseAddress validates and normalizes a raw account address.
func ParseAddress(raw string) (Address, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if !strings.HasPrefix(value, "0x") {
		return "", fmt.Errorf("address %q: missing 0x prefix", raw)
	}
	digits := value[2:]
	if digits == "" || len(digits) > maxAddressHexLen {
		return "", fmt.Errorf("address %q: invalid length", raw)
	}
	for _, r := range digits {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			return "", fmt.Errorf("address %q: invalid hex digit %q", raw, r)
		}
	}
	return Address(value), nil
}

// MustParseAddress is ParseAddress for constants and tests.
func MustParseAddress(raw string) Address {
	a, err := ParseAddress(raw)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Address) String() string {
	return string(a)
}

func containsAddress(list []Address, a Address) bool {
	for _, item := range list {
		if item == a {
			return true
		}
	}
	return false
}

func cloneAddresses(list []Address) []Address {
	if list == nil {
		return nil
	}
	out := make([]Address, len(list))
	copy(out, list)
	return out
}
