package core

import "fmt"

// PremiumComputation is the immutable result of pricing one vehicle.
// Every amount has been rounded to 2 decimals exactly once.
type PremiumComputation struct {
	VehicleValue      float64 `json:"vehicle_value"`
	VehicleRateAmount float64 `json:"vehicle_rate_amount"`
	BasicPremium      float64 `json:"basic_premium"`
	PremiumAfterTax   float64 `json:"premium_after_tax"`
	WithAON           bool    `json:"with_aon"`
	AONCost           float64 `json:"aon_cost"`
	TotalPremium      float64 `json:"total_premium"`
}

// RateAmount is the vehicle-rate premium component, floored at zero.
func RateAmount(ratePercent, currentValue float64) float64 {
	return max(roundDec(pct(dec(currentValue), ratePercent)), 0)
}

// BasicPremium sums the fixed coverage line items.
func BasicPremium(bodilyInjury, propertyDamage, personalAccident float64) float64 {
	return roundDec(dec(bodilyInjury).Add(dec(propertyDamage)).Add(dec(personalAccident)))
}

// ApplyTax adds VAT, documentary stamp and local government tax, each taken
// as a percentage of basicPremium (not of each other).
func ApplyTax(basicPremium, vatPercent, docStampPercent, localGovPercent float64) float64 {
	base := dec(basicPremium)
	total := base.
		Add(pct(base, vatPercent)).
		Add(pct(base, docStampPercent)).
		Add(pct(base, localGovPercent))
	return roundDec(total)
}

// ActOfNatureCost prices the AON rider against the vehicle value.
func ActOfNatureCost(vehicleValue, aonPercent float64) float64 {
	return roundDec(pct(dec(vehicleValue), aonPercent))
}

// ApplyCommission marks totalAmount up by commissionPercent.
func ApplyCommission(totalAmount, commissionPercent float64) float64 {
	base := dec(totalAmount)
	return roundDec(base.Add(pct(base, commissionPercent)))
}

// CommissionInput is a standalone commission calculation request.
type CommissionInput struct {
	TotalAmount       float64 `json:"total_amount" validate:"gte=0"`
	CommissionPercent float64 `json:"commission_percent" validate:"gte=0,lte=100"`
}

type CommissionResult struct {
	TotalAmount         float64 `json:"total_amount"`
	CommissionPercent   float64 `json:"commission_percent"`
	TotalWithCommission float64 `json:"total_with_commission"`
}

func (in CommissionInput) Apply() (CommissionResult, error) {
	if err := validateStruct(in); err != nil {
		return CommissionResult{}, err
	}
	return CommissionResult{
		TotalAmount:         in.TotalAmount,
		CommissionPercent:   in.CommissionPercent,
		TotalWithCommission: ApplyCommission(in.TotalAmount, in.CommissionPercent),
	}, nil
}

// ComputePremium runs the full quote pipeline. Each step consumes the rounded
// output of the step before it. The AON rider is added after tax and is not taxed.
func ComputePremium(v Vehicle, rt RateTable, withAON bool, currentYear int) (PremiumComputation, error) {
	if err := rt.Validate(); err != nil {
		return PremiumComputation{}, fmt.Errorf("%w: %q: %v", ErrCannotQuote, rt.VehicleType, err)
	}

	value := VehicleValue(v.OriginalCost, v.ModelYear, currentYear)
	rateAmount := RateAmount(rt.VehicleRatePercent, value)
	basic := roundDec(dec(BasicPremium(rt.BodilyInjury, rt.PropertyDamage, rt.PersonalAccident)).Add(dec(rateAmount)))
	afterTax := ApplyTax(basic, rt.VATPercent, rt.DocumentaryStampPercent, rt.LocalGovTaxPercent)

	aon := 0.0
	if withAON {
		aon = ActOfNatureCost(value, rt.ActOfNaturePercent)
	}

	return PremiumComputation{
		VehicleValue:      value,
		VehicleRateAmount: rateAmount,
		BasicPremium:      basic,
		PremiumAfterTax:   afterTax,
		WithAON:           withAON,
		AONCost:           aon,
		TotalPremium:      roundDec(dec(afterTax).Add(dec(aon))),
	}, nil
}
