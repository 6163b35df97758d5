package domain

import "fmt"

// Rangos aceptados para biometria. Fuera de estos rangos la formula sigue
// siendo lineal y bien definida, pero el valor no es plausible para una
// persona real y casi siempre es un error de captura.
const (
	MinAgeYears = 13
	MaxAgeYears = 120
	MinHeightCM = 100.0
	MaxHeightCM = 250.0
	MinWeightKG = 30.0
	MaxWeightKG = 300.0

	// MaxWeeklyRateKcalPerDay limits the daily surplus/deficit a client can
	// request. 1000 kcal/day corresponds to roughly 1 kg/week.
	MaxWeeklyRateKcalPerDay = 1000
)

// ValidationError señala un campo de biometria fuera de rango. Se resuelve
// antes de invocar el motor; el motor asume entrada ya validada.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidateBiometrics revisa rangos numericos y la coherencia del macro split.
// El activity level NO se valida aca: un valor desconocido cae al factor
// sedentario dentro del motor (comportamiento documentado del cliente movil).
func ValidateBiometrics(b UserBiometrics) error {
	if b.Sex != SexMale && b.Sex != SexFemale {
		return &ValidationError{Field: "sex", Reason: "must be male or female"}
	}
	if b.AgeYears < MinAgeYears || b.AgeYears > MaxAgeYears {
		return &ValidationError{Field: "age_years", Reason: fmt.Sprintf("must be between %d and %d", MinAgeYears, MaxAgeYears)}
	}
	if b.HeightCM < MinHeightCM || b.HeightCM > MaxHeightCM {
		return &ValidationError{Field: "height_cm", Reason: fmt.Sprintf("must be between %.0f and %.0f", MinHeightCM, MaxHeightCM)}
	}
	if b.WeightKG < MinWeightKG || b.WeightKG > MaxWeightKG {
		return &ValidationError{Field: "weight_kg", Reason: fmt.Sprintf("must be between %.0f and %.0f", MinWeightKG, MaxWeightKG)}
	}
	switch b.GoalDirection {
	case GoalLose, GoalMaintain, GoalGain:
	default:
		return &ValidationError{Field: "goal_direction", Reason: "must be lose, maintain or gain"}
	}
	if b.WeeklyRateKcalPerDay < 0 {
		return &ValidationError{Field: "weekly_rate_kcal_per_day", Reason: "must not be negative"}
	}
	if b.WeeklyRateKcalPerDay > MaxWeeklyRateKcalPerDay {
		return &ValidationError{Field: "weekly_rate_kcal_per_day", Reason: fmt.Sprintf("must not exceed %d", MaxWeeklyRateKcalPerDay)}
	}
	if b.MacroSplit != nil {
		s := *b.MacroSplit
		if s.CarbsPct < 0 || s.ProteinPct < 0 || s.FatPct < 0 {
			return &ValidationError{Field: "macro_split", Reason: "percentages must not be negative"}
		}
		if s.Sum() != 100 {
			return &ValidationError{Field: "macro_split", Reason: "percentages must sum to 100"}
		}
	}
	return nil
}
