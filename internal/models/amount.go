package models

import (
	"github.com/shopspring/decimal"
)

// MinorUnitExponent is the number of decimal places the provider encodes in
// its integer amounts (cents for fiat, hundredths for stablecoins).
const MinorUnitExponent = 2

// MinAmount is the smallest human amount accepted for a conversion.
var MinAmount = decimal.New(1, -MinorUnitExponent)

// ToMinorUnits converts a human decimal amount into the provider's integer
// minor units, rounding half up. This is the only place amounts are scaled
// on the way out. Amounts whose minor units do not fit in an int64 are a
// validation error.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	minor := amount.Shift(MinorUnitExponent).Round(0).BigInt()
	if !minor.IsInt64() {
		return 0, ValidationError("amount %s is out of range", amount.String())
	}
	return minor.Int64(), nil
}

// FromMinorUnits converts provider minor units back into a human amount.
// This is the only place amounts are scaled on the way in.
func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -MinorUnitExponent)
}
