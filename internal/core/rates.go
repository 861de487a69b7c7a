package core

import (
	"context"
	"fmt"
)

// RateTable holds the externally configured pricing inputs for one vehicle type.
// Amounts are in currency units; *Percent fields are plain percentages (12 means 12%).
type RateTable struct {
	VehicleType             string  `json:"vehicle_type"`
	Description             string  `json:"description,omitempty"`
	VehicleRatePercent      float64 `json:"vehicle_rate_percent"`
	BodilyInjury            float64 `json:"bodily_injury"`
	PropertyDamage          float64 `json:"property_damage"`
	PersonalAccident        float64 `json:"personal_accident"`
	VATPercent              float64 `json:"vat_percent"`
	DocumentaryStampPercent float64 `json:"documentary_stamp_percent"`
	LocalGovTaxPercent      float64 `json:"local_gov_tax_percent"`
	ActOfNaturePercent      float64 `json:"act_of_nature_percent"`
}

type RateTableRepo interface {
	List(ctx context.Context) ([]RateTable, error)
	GetByVehicleType(ctx context.Context, vehicleType string) (RateTable, error)
	Upsert(ctx context.Context, rt RateTable) error
}

func (rt RateTable) Validate() error {
	if rt.VehicleType == "" {
		return fmt.Errorf("%w: missing vehicle type", ErrValidation)
	}
	fields := []struct {
		name string
		v    float64
	}{
		{"vehicle_rate_percent", rt.VehicleRatePercent},
		{"bodily_injury", rt.BodilyInjury},
		{"property_damage", rt.PropertyDamage},
		{"personal_accident", rt.PersonalAccident},
		{"vat_percent", rt.VATPercent},
		{"documentary_stamp_percent", rt.DocumentaryStampPercent},
		{"local_gov_tax_percent", rt.LocalGovTaxPercent},
		{"act_of_nature_percent", rt.ActOfNaturePercent},
	}
	for _, f := range fields {
		// NaN fails this comparison too.
		if !(f.v >= 0) {
			return fmt.Errorf("%w: %s must be >= 0", ErrValidation, f.name)
		}
	}
	return nil
}

var (
	ErrRateTableNotFound = fmt.Errorf("%w: rate table not found", ErrNotFound)
	// ErrCannotQuote is returned instead of pricing with substituted zero rates.
	ErrCannotQuote = fmt.Errorf("%w: cannot compute premium for this vehicle type", ErrNotFound)
)
