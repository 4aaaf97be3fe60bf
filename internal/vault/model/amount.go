package model

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value in ledger base units.
type Amount uint64

// BaseUnitsPerDisplayUnit is the fixed scale between display amounts and base units.
const BaseUnitsPerDisplayUnit = 100_000_000

const displayExponent = -8

var displayScale = decimal.New(1, -displayExponent)

// AmountFromDisplay converts a display decimal into base units.
// Values with more precision than one base unit are refused rather than rounded.
func AmountFromDisplay(d decimal.Decimal) (Amount, error) {
	if d.IsNegative() {
		return 0, fmt.Errorf("amount %s is negative", d)
	}
	scaled := d.Mul(displayScale)
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, fmt.Errorf("amount %s exceeds base unit precision", d)
	}
	units := scaled.BigInt()
	if !units.IsUint64() {
		return 0, fmt.Errorf("amount %s overflows base units", d)
	}
	return Amount(units.Uint64()), nil
}

// ParseAmount parses a display amount such as "12.5".
func ParseAmount(raw string) (Amount, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	return AmountFromDisplay(d)
}

// Display returns the amount in display units.
func (a Amount) Display() decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(a)), displayExponent)
}

func (a Amount) String() string {
	return a.Display().String()
}

// Sub subtracts b, saturating at zero.
func (a Amount) Sub(b Amount) Amount {
	if b >= a {
		return 0
	}
	return a - b
}
