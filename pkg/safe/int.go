// Package safe provides helpers for numeric conversions of ledger integers with overflow checks.
package safe

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Int converts an unsigned ledger integer to int with range validation.
func Int[T ~uint | ~uint32 | ~uint64](v T) (int, error) {
	if uint64(v) > math.MaxInt {
		return 0, fmt.Errorf("value %d out of int range", uint64(v))
	}
	return int(v), nil
}

// Int64 converts an unsigned ledger integer to int64 with range validation.
func Int64[T ~uint | ~uint32 | ~uint64](v T) (int64, error) {
	if uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", uint64(v))
	}
	return int64(v), nil
}

// ParseUint64 parses a ledger u64 which is serialized either as a JSON string or
// as a bare number. Surrounding quotes are accepted.
func ParseUint64(raw string) (uint64, error) {
	value := strings.Trim(strings.TrimSpace(raw), `"`)
	if value == "" {
		return 0, fmt.Errorf("empty u64 value")
	}
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse u64 %q: %w", raw, err)
	}
	return v, nil
}
