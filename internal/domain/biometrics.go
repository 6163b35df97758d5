package domain

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtraActive      ActivityLevel = "extra_active"

	// ActivityActive es un alias historico de moderately_active que los
	// clientes moviles viejos siguen enviando.
	ActivityActive ActivityLevel = "active"
)

type GoalDirection string

const (
	GoalLose     GoalDirection = "lose"
	GoalMaintain GoalDirection = "maintain"
	GoalGain     GoalDirection = "gain"
)

// MacroSplit reparte las calorias diarias en porcentajes. Siempre suma 100.
type MacroSplit struct {
	CarbsPct   int `json:"carbs_pct"`
	ProteinPct int `json:"protein_pct"`
	FatPct     int `json:"fat_pct"`
}

// DefaultMacroSplit aplica cuando el usuario no eligio un reparto propio.
var DefaultMacroSplit = MacroSplit{CarbsPct: 45, ProteinPct: 25, FatPct: 30}

func (m MacroSplit) Sum() int {
	return m.CarbsPct + m.ProteinPct + m.FatPct
}

// UserBiometrics es la entrada del motor de nutricion. Inmutable por llamada:
// cada edicion de perfil arma un snapshot nuevo en lugar de mutar el anterior.
type UserBiometrics struct {
	Sex           Sex           `json:"sex"`
	AgeYears      int           `json:"age_years"`
	HeightCM      float64       `json:"height_cm"`
	WeightKG      float64       `json:"weight_kg"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	GoalDirection GoalDirection `json:"goal_direction"`

	// WeeklyRateKcalPerDay is the magnitude of the daily calorie delta implied
	// by the chosen weekly weight-change pace. Always >= 0; the sign comes
	// from GoalDirection.
	WeeklyRateKcalPerDay int `json:"weekly_rate_kcal_per_day"`

	// MacroSplit is optional; nil means DefaultMacroSplit.
	MacroSplit *MacroSplit `json:"macro_split,omitempty"`
}

// Split resuelve el reparto efectivo de macros.
func (b UserBiometrics) Split() MacroSplit {
	if b.MacroSplit != nil {
		return *b.MacroSplit
	}
	return DefaultMacroSplit
}
