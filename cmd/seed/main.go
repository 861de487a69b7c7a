package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/MrKriegler/go-motor-portal/internal/core"
	"github.com/MrKriegler/go-motor-portal/internal/platform/config"
	"github.com/MrKriegler/go-motor-portal/internal/platform/logging"
	"github.com/MrKriegler/go-motor-portal/internal/store"
)

func main() {
	cfg := config.MustLoad()
	log := logging.New(cfg.Env)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	backend, err := store.Open(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open store", "db_type", cfg.DBType, "err", err)
		os.Exit(1)
	}
	defer backend.Close(ctx)

	log.Info("seeding rate tables")
	seedRates(ctx, log, backend.Rates)

	log.Info("seeding demo policies")
	seedPolicies(ctx, log, backend, time.Now())

	log.Info("done seeding")
}

func seedRates(ctx context.Context, log *slog.Logger, repo core.RateTableRepo) {
	tables := []core.RateTable{
		{
			VehicleType:             "sedan",
			Description:             "Private sedan / hatchback",
			VehicleRatePercent:      1.5,
			BodilyInjury:            1250,
			PropertyDamage:          1750,
			PersonalAccident:        1000,
			VATPercent:              12,
			DocumentaryStampPercent: 12.5,
			LocalGovTaxPercent:      0.2,
			ActOfNaturePercent:      0.5,
		},
		{
			VehicleType:             "suv",
			Description:             "Sport utility vehicle / crossover",
			VehicleRatePercent:      1.7,
			BodilyInjury:            1500,
			PropertyDamage:          2000,
			PersonalAccident:        1000,
			VATPercent:              12,
			DocumentaryStampPercent: 12.5,
			LocalGovTaxPercent:      0.2,
			ActOfNaturePercent:      0.5,
		},
		{
			VehicleType:             "pickup",
			Description:             "Light pickup truck",
			VehicleRatePercent:      1.8,
			BodilyInjury:            1500,
			PropertyDamage:          2250,
			PersonalAccident:        1000,
			VATPercent:              12,
			DocumentaryStampPercent: 12.5,
			LocalGovTaxPercent:      0.2,
			ActOfNaturePercent:      0.6,
		},
		{
			VehicleType:             "motorcycle",
			Description:             "Motorcycle / scooter",
			VehicleRatePercent:      2.5,
			BodilyInjury:            500,
			PropertyDamage:          750,
			PersonalAccident:        500,
			VATPercent:              12,
			DocumentaryStampPercent: 12.5,
			LocalGovTaxPercent:      0.2,
			ActOfNaturePercent:      0.25,
		},
	}

	for _, rt := range tables {
		if err := repo.Upsert(ctx, rt); err != nil {
			log.Error("failed to seed rate table", "vehicle_type", rt.VehicleType, "err", err)
			continue
		}
		log.Info("seeded rate table", "vehicle_type", rt.VehicleType)
	}
}

type demoPolicy struct {
	policy    core.Policy
	insts     []core.Installment
	penalties []core.Penalty
	claims    []core.Claim
}

func seedPolicies(ctx context.Context, log *slog.Logger, b *store.Backend, now time.Time) {
	for _, d := range demoPolicies(now) {
		if err := b.Policies.Create(ctx, d.policy); err != nil {
			if errors.Is(err, core.ErrConflict) {
				log.Info("policy already seeded", "policy_number", d.policy.Number)
				continue
			}
			log.Error("failed to seed policy", "policy_number", d.policy.Number, "err", err)
			continue
		}
		if err := b.Installments.SeedLedger(ctx, d.insts, d.penalties); err != nil {
			log.Error("failed to seed ledger", "policy_number", d.policy.Number, "err", err)
		}
		for _, c := range d.claims {
			if err := b.Claims.Create(ctx, c); err != nil {
				log.Error("failed to seed claim", "policy_number", d.policy.Number, "err", err)
			}
		}
		log.Info("seeded policy",
			"policy_number", d.policy.Number,
			"installments", len(d.insts),
			"claims", len(d.claims),
		)
	}
}

func demoPolicies(now time.Time) []demoPolicy {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	vehicle := core.Vehicle{OriginalCost: 500000, ModelYear: now.Year() - 3}
	premium, _ := core.ComputePremium(vehicle, core.RateTable{
		VehicleType:             "sedan",
		VehicleRatePercent:      1.5,
		BodilyInjury:            1250,
		PropertyDamage:          1750,
		PersonalAccident:        1000,
		VATPercent:              12,
		DocumentaryStampPercent: 12.5,
		LocalGovTaxPercent:      0.2,
		ActOfNaturePercent:      0.5,
	}, true, now.Year())
	quarter := core.Round2(premium.TotalPremium / 4)

	paidAt := today.AddDate(0, -2, 0)
	insts := []core.Installment{
		{ID: "demo-inst-1", PolicyID: "demo-policy-1", Seq: 1, AmountToBePaid: quarter, DueDate: today.AddDate(0, -2, 0), IsPaid: true, PaidAmount: &quarter, PaidAt: &paidAt},
		{ID: "demo-inst-2", PolicyID: "demo-policy-1", Seq: 2, AmountToBePaid: quarter, DueDate: today.AddDate(0, 0, -20)},
		{ID: "demo-inst-3", PolicyID: "demo-policy-1", Seq: 3, AmountToBePaid: quarter, DueDate: today.AddDate(0, 1, 0)},
		{ID: "demo-inst-4", PolicyID: "demo-policy-1", Seq: 4, AmountToBePaid: quarter, DueDate: today.AddDate(0, 4, 0)},
	}

	return []demoPolicy{
		{
			policy: core.Policy{
				ID:              "demo-policy-1",
				Number:          "POL-DEMO-0001",
				HolderName:      "Ana Reyes",
				HolderEmail:     "ana.reyes@example.com",
				VehicleType:     "sedan",
				Vehicle:         vehicle,
				PlateNumber:     "ABC 1234",
				Premium:         premium,
				ClaimableAmount: 250000,
				Status:          core.PolicyStatusActive,
				EffectiveDate:   today.AddDate(0, -3, 0),
				ExpiryDate:      today.AddDate(1, -3, 0),
				IssuedAt:        today.AddDate(0, -3, 0),
			},
			insts: insts,
			penalties: []core.Penalty{
				{ID: "demo-pen-1", InstallmentID: "demo-inst-2", PenaltyAmount: 150, Paid: core.PenaltyUnpaid, CreatedAt: today.AddDate(0, 0, -10)},
			},
			claims: []core.Claim{
				{
					ID:              "demo-claim-1",
					PolicyID:        "demo-policy-1",
					Status:          core.ClaimStatusCompleted,
					IncidentDate:    today.AddDate(0, -2, -5),
					Description:     "Side mirror replaced after parking lot collision",
					EstimatedAmount: 8500,
					CreatedAt:       today.AddDate(0, -2, -4),
				},
			},
		},
		{
			policy: core.Policy{
				ID:              "demo-policy-2",
				Number:          "POL-DEMO-0002",
				HolderName:      "Ben Cruz",
				HolderEmail:     "ben.cruz@example.com",
				VehicleType:     "sedan",
				Vehicle:         vehicle,
				Premium:         premium,
				ClaimableAmount: 0,
				Status:          core.PolicyStatusActive,
				EffectiveDate:   today.AddDate(0, -6, 0),
				ExpiryDate:      today.AddDate(1, -6, 0),
				IssuedAt:        today.AddDate(0, -6, 0),
			},
		},
	}
}
