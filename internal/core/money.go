package core

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// round2 rounds half away from zero on the decimal representation of x,
// so 1.005 becomes 1.01 rather than the binary-float 1.00.
func round2(x float64) float64 {
	return roundDec(decimal.NewFromFloat(x))
}

func roundDec(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func dec(x float64) decimal.Decimal {
	return decimal.NewFromFloat(x)
}

// pct returns base * percent / 100 without rounding.
func pct(base decimal.Decimal, percent float64) decimal.Decimal {
	return base.Mul(dec(percent)).Div(hundred)
}

// Round2 is exported for callers that format amounts outside the engine.
func Round2(x float64) float64 { return round2(x) }
