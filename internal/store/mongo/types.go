package mongo

import (
	"time"

	"github.com/MrKriegler/go-motor-portal/internal/core"
)

const (
	ColRateTables   = "rate_tables"
	ColQuotations   = "quotations"
	ColPolicies     = "policies"
	ColInstallments = "payment_installments"
	ColPenalties    = "penalties"
	ColClaims       = "claims"
	ColCounters     = "counters"
)

type VehicleDoc struct {
	OriginalCost float64 `bson:"original_cost"`
	ModelYear    int     `bson:"model_year"`
}

type PremiumDoc struct {
	VehicleValue      float64 `bson:"vehicle_value"`
	VehicleRateAmount float64 `bson:"vehicle_rate_amount"`
	BasicPremium      float64 `bson:"basic_premium"`
	PremiumAfterTax   float64 `bson:"premium_after_tax"`
	WithAON           bool    `bson:"with_aon"`
	AONCost           float64 `bson:"aon_cost"`
	TotalPremium      float64 `bson:"total_premium"`
}

func toVehicleDoc(v core.Vehicle) VehicleDoc {
	return VehicleDoc{OriginalCost: v.OriginalCost, ModelYear: v.ModelYear}
}

func (d VehicleDoc) toCore() core.Vehicle {
	return core.Vehicle{OriginalCost: d.OriginalCost, ModelYear: d.ModelYear}
}

func toPremiumDoc(p core.PremiumComputation) PremiumDoc {
	return PremiumDoc(p)
}

func (d PremiumDoc) toCore() core.PremiumComputation {
	return core.PremiumComputation(d)
}

// RateTable, keyed by vehicle type.
type RateTableDoc struct {
	VehicleType             string  `bson:"_id"`
	Description             string  `bson:"description,omitempty"`
	VehicleRatePercent      float64 `bson:"vehicle_rate_percent"`
	BodilyInjury            float64 `bson:"bodily_injury"`
	PropertyDamage          float64 `bson:"property_damage"`
	PersonalAccident        float64 `bson:"personal_accident"`
	VATPercent              float64 `bson:"vat_percent"`
	DocumentaryStampPercent float64 `bson:"documentary_stamp_percent"`
	LocalGovTaxPercent      float64 `bson:"local_gov_tax_percent"`
	ActOfNaturePercent      float64 `bson:"act_of_nature_percent"`
}

func fromRateTableDoc(d RateTableDoc) core.RateTable {
	return core.RateTable(d)
}

func toRateTableDoc(rt core.RateTable) RateTableDoc {
	return RateTableDoc(rt)
}

type QuotationDoc struct {
	ID          string     `bson:"_id"`
	Number      string     `bson:"number"`
	VehicleType string     `bson:"vehicle_type"`
	Vehicle     VehicleDoc `bson:"vehicle"`
	Premium     PremiumDoc `bson:"premium"`
	CreatedAt   time.Time  `bson:"created_at"`
}

func toQuotationDoc(q core.Quotation) QuotationDoc {
	return QuotationDoc{
		ID:          q.ID,
		Number:      q.Number,
		VehicleType: q.VehicleType,
		Vehicle:     toVehicleDoc(q.Vehicle),
		Premium:     toPremiumDoc(q.Premium),
		CreatedAt:   q.CreatedAt,
	}
}

func fromQuotationDoc(d QuotationDoc) core.Quotation {
	return core.Quotation{
		ID:          d.ID,
		Number:      d.Number,
		VehicleType: d.VehicleType,
		Vehicle:     d.Vehicle.toCore(),
		Premium:     d.Premium.toCore(),
		CreatedAt:   d.CreatedAt,
	}
}

type PolicyDoc struct {
	ID              string     `bson:"_id"`
	Number          string     `bson:"number"`
	HolderName      string     `bson:"holder_name"`
	HolderEmail     string     `bson:"holder_email"`
	VehicleType     string     `bson:"vehicle_type"`
	Vehicle         VehicleDoc `bson:"vehicle"`
	PlateNumber     string     `bson:"plate_number,omitempty"`
	Premium         PremiumDoc `bson:"premium"`
	ClaimableAmount float64    `bson:"claimable_amount"`
	Status          string     `bson:"status"`
	EffectiveDate   time.Time  `bson:"effective_date"`
	ExpiryDate      time.Time  `bson:"expiry_date"`
	IssuedAt        time.Time  `bson:"issued_at"`
}

func toPolicyDoc(p core.Policy) PolicyDoc {
	return PolicyDoc{
		ID:              p.ID,
		Number:          p.Number,
		HolderName:      p.HolderName,
		HolderEmail:     p.HolderEmail,
		VehicleType:     p.VehicleType,
		Vehicle:         toVehicleDoc(p.Vehicle),
		PlateNumber:     p.PlateNumber,
		Premium:         toPremiumDoc(p.Premium),
		ClaimableAmount: p.ClaimableAmount,
		Status:          string(p.Status),
		EffectiveDate:   p.EffectiveDate,
		ExpiryDate:      p.ExpiryDate,
		IssuedAt:        p.IssuedAt,
	}
}

func fromPolicyDoc(d PolicyDoc) core.Policy {
	return core.Policy{
		ID:              d.ID,
		Number:          d.Number,
		HolderName:      d.HolderName,
		HolderEmail:     d.HolderEmail,
		VehicleType:     d.VehicleType,
		Vehicle:         d.Vehicle.toCore(),
		PlateNumber:     d.PlateNumber,
		Premium:         d.Premium.toCore(),
		ClaimableAmount: d.ClaimableAmount,
		Status:          core.PolicyStatus(d.Status),
		EffectiveDate:   d.EffectiveDate,
		ExpiryDate:      d.ExpiryDate,
		IssuedAt:        d.IssuedAt,
	}
}

type InstallmentDoc struct {
	ID             string     `bson:"_id"`
	PolicyID       string     `bson:"policy_id"`
	Seq            int        `bson:"seq"`
	AmountToBePaid float64    `bson:"amount_to_be_paid"`
	DueDate        time.Time  `bson:"due_date"`
	IsPaid         bool       `bson:"is_paid"`
	PaidAmount     *float64   `bson:"paid_amount,omitempty"`
	PaidAt         *time.Time `bson:"paid_at,omitempty"`
}

func fromInstallmentDoc(d InstallmentDoc) core.Installment {
	return core.Installment(d)
}

func toInstallmentDoc(i core.Installment) InstallmentDoc {
	return InstallmentDoc(i)
}

// PenaltyDoc.IsPaid is left unset by the penalty job until settlement.
type PenaltyDoc struct {
	ID            string    `bson:"_id"`
	InstallmentID string    `bson:"installment_id"`
	PenaltyAmount float64   `bson:"penalty_amount"`
	IsPaid        *bool     `bson:"is_paid,omitempty"`
	CreatedAt     time.Time `bson:"created_at"`
}

func fromPenaltyDoc(d PenaltyDoc) core.Penalty {
	return core.Penalty{
		ID:            d.ID,
		InstallmentID: d.InstallmentID,
		PenaltyAmount: d.PenaltyAmount,
		Paid:          core.PaidStateOf(d.IsPaid),
		CreatedAt:     d.CreatedAt,
	}
}

func toPenaltyDoc(p core.Penalty) PenaltyDoc {
	doc := PenaltyDoc{
		ID:            p.ID,
		InstallmentID: p.InstallmentID,
		PenaltyAmount: p.PenaltyAmount,
		CreatedAt:     p.CreatedAt,
	}
	if p.Paid == core.PenaltyPaid {
		paid := true
		doc.IsPaid = &paid
	}
	return doc
}

type ClaimDoc struct {
	ID              string    `bson:"_id"`
	PolicyID        string    `bson:"policy_id"`
	Status          string    `bson:"status"`
	IncidentDate    time.Time `bson:"incident_date"`
	Description     string    `bson:"description"`
	EstimatedAmount float64   `bson:"estimated_amount"`
	ApprovedAmount  *float64  `bson:"approved_amount,omitempty"`
	CreatedAt       time.Time `bson:"created_at"`
}

func toClaimDoc(c core.Claim) ClaimDoc {
	return ClaimDoc{
		ID:              c.ID,
		PolicyID:        c.PolicyID,
		Status:          string(c.Status),
		IncidentDate:    c.IncidentDate,
		Description:     c.Description,
		EstimatedAmount: c.EstimatedAmount,
		ApprovedAmount:  c.ApprovedAmount,
		CreatedAt:       c.CreatedAt,
	}
}

func fromClaimDoc(d ClaimDoc) core.Claim {
	return core.Claim{
		ID:              d.ID,
		PolicyID:        d.PolicyID,
		Status:          core.ClaimStatus(d.Status),
		IncidentDate:    d.IncidentDate,
		Description:     d.Description,
		EstimatedAmount: d.EstimatedAmount,
		ApprovedAmount:  d.ApprovedAmount,
		CreatedAt:       d.CreatedAt,
	}
}
