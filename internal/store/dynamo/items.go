package dynamo

import (
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/MrKriegler/go-motor-portal/internal/core"
)

// sortableTime is fixed width and always UTC so range keys compare lexically.
const sortableTime = "2006-01-02T15:04:05.000000000Z"

func formatSortable(t time.Time) string {
	return t.UTC().Format(sortableTime)
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func isConditionCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

type VehicleItem struct {
	OriginalCost float64 `dynamodbav:"original_cost"`
	ModelYear    int     `dynamodbav:"model_year"`
}

type PremiumItem struct {
	VehicleValue      float64 `dynamodbav:"vehicle_value"`
	VehicleRateAmount float64 `dynamodbav:"vehicle_rate_amount"`
	BasicPremium      float64 `dynamodbav:"basic_premium"`
	PremiumAfterTax   float64 `dynamodbav:"premium_after_tax"`
	WithAON           bool    `dynamodbav:"with_aon"`
	AONCost           float64 `dynamodbav:"aon_cost"`
	TotalPremium      float64 `dynamodbav:"total_premium"`
}

type RateTableItem struct {
	VehicleType             string  `dynamodbav:"vehicle_type"`
	Description             string  `dynamodbav:"description,omitempty"`
	VehicleRatePercent      float64 `dynamodbav:"vehicle_rate_percent"`
	BodilyInjury            float64 `dynamodbav:"bodily_injury"`
	PropertyDamage          float64 `dynamodbav:"property_damage"`
	PersonalAccident        float64 `dynamodbav:"personal_accident"`
	VATPercent              float64 `dynamodbav:"vat_percent"`
	DocumentaryStampPercent float64 `dynamodbav:"documentary_stamp_percent"`
	LocalGovTaxPercent      float64 `dynamodbav:"local_gov_tax_percent"`
	ActOfNaturePercent      float64 `dynamodbav:"act_of_nature_percent"`
}

func (i RateTableItem) ToCore() core.RateTable {
	return core.RateTable(i)
}

type QuotationItem struct {
	ID          string      `dynamodbav:"id"`
	Number      string      `dynamodbav:"number"`
	VehicleType string      `dynamodbav:"vehicle_type"`
	Vehicle     VehicleItem `dynamodbav:"vehicle"`
	Premium     PremiumItem `dynamodbav:"premium"`
	CreatedYear int         `dynamodbav:"created_year"`
	CreatedAt   string      `dynamodbav:"created_at"`
}

func (i QuotationItem) ToCore() core.Quotation {
	createdAt, _ := time.Parse(sortableTime, i.CreatedAt)
	return core.Quotation{
		ID:          i.ID,
		Number:      i.Number,
		VehicleType: i.VehicleType,
		Vehicle:     core.Vehicle(i.Vehicle),
		Premium:     core.PremiumComputation(i.Premium),
		CreatedAt:   createdAt,
	}
}

func quotationItemFromCore(q core.Quotation) QuotationItem {
	return QuotationItem{
		ID:          q.ID,
		Number:      q.Number,
		VehicleType: q.VehicleType,
		Vehicle:     VehicleItem(q.Vehicle),
		Premium:     PremiumItem(q.Premium),
		CreatedYear: q.CreatedAt.UTC().Year(),
		CreatedAt:   formatSortable(q.CreatedAt),
	}
}

type PolicyItem struct {
	ID              string      `dynamodbav:"id"`
	Number          string      `dynamodbav:"number"`
	HolderName      string      `dynamodbav:"holder_name"`
	HolderEmail     string      `dynamodbav:"holder_email"`
	VehicleType     string      `dynamodbav:"vehicle_type"`
	Vehicle         VehicleItem `dynamodbav:"vehicle"`
	PlateNumber     string      `dynamodbav:"plate_number,omitempty"`
	Premium         PremiumItem `dynamodbav:"premium"`
	ClaimableAmount float64     `dynamodbav:"claimable_amount"`
	Status          string      `dynamodbav:"status"`
	EffectiveDate   string      `dynamodbav:"effective_date"`
	ExpiryDate      string      `dynamodbav:"expiry_date"`
	IssuedAt        string      `dynamodbav:"issued_at"`
}

func (i PolicyItem) ToCore() core.Policy {
	return core.Policy{
		ID:              i.ID,
		Number:          i.Number,
		HolderName:      i.HolderName,
		HolderEmail:     i.HolderEmail,
		VehicleType:     i.VehicleType,
		Vehicle:         core.Vehicle(i.Vehicle),
		PlateNumber:     i.PlateNumber,
		Premium:         core.PremiumComputation(i.Premium),
		ClaimableAmount: i.ClaimableAmount,
		Status:          core.PolicyStatus(i.Status),
		EffectiveDate:   parseTime(i.EffectiveDate),
		ExpiryDate:      parseTime(i.ExpiryDate),
		IssuedAt:        parseTime(i.IssuedAt),
	}
}

func policyItemFromCore(p core.Policy) PolicyItem {
	return PolicyItem{
		ID:              p.ID,
		Number:          p.Number,
		HolderName:      p.HolderName,
		HolderEmail:     p.HolderEmail,
		VehicleType:     p.VehicleType,
		Vehicle:         VehicleItem(p.Vehicle),
		PlateNumber:     p.PlateNumber,
		Premium:         PremiumItem(p.Premium),
		ClaimableAmount: p.ClaimableAmount,
		Status:          string(p.Status),
		EffectiveDate:   formatTime(p.EffectiveDate),
		ExpiryDate:      formatTime(p.ExpiryDate),
		IssuedAt:        formatTime(p.IssuedAt),
	}
}

type InstallmentItem struct {
	PolicyID       string   `dynamodbav:"policy_id"`
	Seq            int      `dynamodbav:"seq"`
	ID             string   `dynamodbav:"id"`
	AmountToBePaid float64  `dynamodbav:"amount_to_be_paid"`
	DueDate        string   `dynamodbav:"due_date"`
	IsPaid         bool     `dynamodbav:"is_paid"`
	PaidAmount     *float64 `dynamodbav:"paid_amount,omitempty"`
	PaidAt         string   `dynamodbav:"paid_at,omitempty"`
}

func (i InstallmentItem) ToCore() core.Installment {
	inst := core.Installment{
		ID:             i.ID,
		PolicyID:       i.PolicyID,
		Seq:            i.Seq,
		AmountToBePaid: i.AmountToBePaid,
		DueDate:        parseTime(i.DueDate),
		IsPaid:         i.IsPaid,
		PaidAmount:     i.PaidAmount,
	}
	if i.PaidAt != "" {
		paidAt := parseTime(i.PaidAt)
		inst.PaidAt = &paidAt
	}
	return inst
}

func installmentItemFromCore(inst core.Installment) InstallmentItem {
	item := InstallmentItem{
		PolicyID:       inst.PolicyID,
		Seq:            inst.Seq,
		ID:             inst.ID,
		AmountToBePaid: inst.AmountToBePaid,
		DueDate:        formatTime(inst.DueDate),
		IsPaid:         inst.IsPaid,
		PaidAmount:     inst.PaidAmount,
	}
	if inst.PaidAt != nil {
		item.PaidAt = formatTime(*inst.PaidAt)
	}
	return item
}

// PenaltyItem.IsPaid stays absent until the penalty is settled.
type PenaltyItem struct {
	InstallmentID string  `dynamodbav:"installment_id"`
	ID            string  `dynamodbav:"id"`
	PenaltyAmount float64 `dynamodbav:"penalty_amount"`
	IsPaid        *bool   `dynamodbav:"is_paid,omitempty"`
	CreatedAt     string  `dynamodbav:"created_at"`
}

func (i PenaltyItem) ToCore() core.Penalty {
	return core.Penalty{
		ID:            i.ID,
		InstallmentID: i.InstallmentID,
		PenaltyAmount: i.PenaltyAmount,
		Paid:          core.PaidStateOf(i.IsPaid),
		CreatedAt:     parseTime(i.CreatedAt),
	}
}

func penaltyItemFromCore(p core.Penalty) PenaltyItem {
	item := PenaltyItem{
		InstallmentID: p.InstallmentID,
		ID:            p.ID,
		PenaltyAmount: p.PenaltyAmount,
		CreatedAt:     formatTime(p.CreatedAt),
	}
	if p.Paid == core.PenaltyPaid {
		paid := true
		item.IsPaid = &paid
	}
	return item
}

// ClaimItem is keyed by policy with sk = created_at#id, so a query returns
// claims oldest first.
type ClaimItem struct {
	PolicyID        string   `dynamodbav:"policy_id"`
	SK              string   `dynamodbav:"sk"`
	ID              string   `dynamodbav:"id"`
	Status          string   `dynamodbav:"status"`
	IncidentDate    string   `dynamodbav:"incident_date"`
	Description     string   `dynamodbav:"description"`
	EstimatedAmount float64  `dynamodbav:"estimated_amount"`
	ApprovedAmount  *float64 `dynamodbav:"approved_amount,omitempty"`
	CreatedAt       string   `dynamodbav:"created_at"`
}

func (i ClaimItem) ToCore() core.Claim {
	return core.Claim{
		ID:              i.ID,
		PolicyID:        i.PolicyID,
		Status:          core.ClaimStatus(i.Status),
		IncidentDate:    parseTime(i.IncidentDate),
		Description:     i.Description,
		EstimatedAmount: i.EstimatedAmount,
		ApprovedAmount:  i.ApprovedAmount,
		CreatedAt:       parseTime(i.CreatedAt),
	}
}

func claimItemFromCore(c core.Claim) ClaimItem {
	return ClaimItem{
		PolicyID:        c.PolicyID,
		SK:              formatSortable(c.CreatedAt) + "#" + c.ID,
		ID:              c.ID,
		Status:          string(c.Status),
		IncidentDate:    formatTime(c.IncidentDate),
		Description:     c.Description,
		EstimatedAmount: c.EstimatedAmount,
		ApprovedAmount:  c.ApprovedAmount,
		CreatedAt:       formatTime(c.CreatedAt),
	}
}
