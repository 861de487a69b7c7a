package core

import "github.com/shopspring/decimal"

// DepreciationRate is the fixed annual loss of vehicle value.
const DepreciationRate = 0.10

var retainedPerYear = decimal.NewFromInt(1).Sub(decimal.NewFromFloat(DepreciationRate))

// Vehicle is the insured vehicle as captured on a quote or policy.
type Vehicle struct {
	OriginalCost float64 `json:"original_cost" validate:"gte=0"`
	ModelYear    int     `json:"model_year" validate:"required,gte=1900"`
}

// VehicleAge is the whole number of years since the model year.
// A model year in the future counts as a new vehicle.
func VehicleAge(modelYear, currentYear int) int {
	return max(currentYear-modelYear, 0)
}

// VehicleValue depreciates originalCost by DepreciationRate for every year of age.
// Inputs are assumed validated; the result never exceeds originalCost.
func VehicleValue(originalCost float64, modelYear, currentYear int) float64 {
	age := VehicleAge(modelYear, currentYear)
	factor := retainedPerYear.Pow(decimal.NewFromInt(int64(age)))
	return roundDec(dec(originalCost).Mul(factor))
}
