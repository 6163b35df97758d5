package domain

import (
	"errors"
	"testing"
)

func validBiometrics() UserBiometrics {
	return UserBiometrics{
		Sex:           SexFemale,
		AgeYears:      25,
		HeightCM:      165,
		WeightKG:      60,
		ActivityLevel: ActivityVeryActive,
		GoalDirection: GoalGain,

		WeeklyRateKcalPerDay: 250,
	}
}

func TestValidateBiometrics_FieldRanges(t *testing.T) {
	cases := []struct {
		name  string
		mutFn func(b *UserBiometrics)
		field string
	}{
		{"unknown sex", func(b *UserBiometrics) { b.Sex = "other" }, "sex"},
		{"age too low", func(b *UserBiometrics) { b.AgeYears = 12 }, "age_years"},
		{"age too high", func(b *UserBiometrics) { b.AgeYears = 121 }, "age_years"},
		{"height too low", func(b *UserBiometrics) { b.HeightCM = 99 }, "height_cm"},
		{"height too high", func(b *UserBiometrics) { b.HeightCM = 251 }, "height_cm"},
		{"weight too low", func(b *UserBiometrics) { b.WeightKG = 29 }, "weight_kg"},
		{"weight too high", func(b *UserBiometrics) { b.WeightKG = 301 }, "weight_kg"},
		{"bad direction", func(b *UserBiometrics) { b.GoalDirection = "bulk" }, "goal_direction"},
		{"negative rate", func(b *UserBiometrics) { b.WeeklyRateKcalPerDay = -100 }, "weekly_rate_kcal_per_day"},
		{"rate too high", func(b *UserBiometrics) { b.WeeklyRateKcalPerDay = 1500 }, "weekly_rate_kcal_per_day"},
		{"split not 100", func(b *UserBiometrics) { b.MacroSplit = &MacroSplit{CarbsPct: 50, ProteinPct: 30, FatPct: 30} }, "macro_split"},
		{"negative split pct", func(b *UserBiometrics) { b.MacroSplit = &MacroSplit{CarbsPct: 120, ProteinPct: -20, FatPct: 0} }, "macro_split"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := validBiometrics()
			tc.mutFn(&b)
			err := ValidateBiometrics(b)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("expected %q violation, got %q", tc.field, verr.Field)
			}
		})
	}
}

func TestValidateBiometrics_AcceptsBoundaries(t *testing.T) {
	b := validBiometrics()
	b.AgeYears = MinAgeYears
	b.HeightCM = MaxHeightCM
	b.WeightKG = MinWeightKG
	b.WeeklyRateKcalPerDay = MaxWeeklyRateKcalPerDay
	if err := ValidateBiometrics(b); err != nil {
		t.Fatalf("expected boundary values to validate, got %v", err)
	}
}

// Unknown activity levels validate fine: the engine handles the fallback.
func TestValidateBiometrics_ActivityLevelNotChecked(t *testing.T) {
	b := validBiometrics()
	b.ActivityLevel = "astronaut"
	if err := ValidateBiometrics(b); err != nil {
		t.Fatalf("expected unknown activity level to pass validation, got %v", err)
	}
}

func TestSplit_DefaultsWhenNil(t *testing.T) {
	b := validBiometrics()
	if b.Split() != DefaultMacroSplit {
		t.Fatalf("expected default split, got %+v", b.Split())
	}
	custom := MacroSplit{CarbsPct: 40, ProteinPct: 30, FatPct: 30}
	b.MacroSplit = &custom
	if b.Split() != custom {
		t.Fatalf("expected custom split, got %+v", b.Split())
	}
}
