package payment

import "github.com/shopspring/decimal"

// minorUnitExponent is the number of decimal places between major and minor units
const minorUnitExponent = 2

// ToMinorUnits converts a major unit amount (e.g. dollars) to the gateway's
// integer minor units, truncating anything below one minor unit. The
// conversion works on the shortest decimal form of the float, so 0.29 becomes
// 29 rather than 28.
func ToMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Shift(minorUnitExponent).IntPart()
}

// ToMajorUnits converts gateway minor units back to major units
func ToMajorUnits(amount int64) float64 {
	return decimal.New(amount, -minorUnitExponent).InexactFloat64()
}
