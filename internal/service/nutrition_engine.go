package service

import (
	"math"

	"macrotrack/internal/domain"
)

// NutritionEngine encapsula el calculo determinista de BMR, TDEE, objetivo
// calorico y gramos de macros. Sin estado, sin I/O: seguro para uso
// concurrente desde cualquier handler.
type NutritionEngine struct{}

// DefaultNutritionEngine permite uso directo sin instanciar.
var DefaultNutritionEngine = NutritionEngine{}

// activityFactors es la tabla canonica de multiplicadores de actividad.
// Valores de contrato, no afinables. "active" es alias de moderately_active.
var activityFactors = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:        1.40,
	domain.ActivityLightlyActive:    1.60,
	domain.ActivityModeratelyActive: 1.80,
	domain.ActivityActive:           1.80,
	domain.ActivityVeryActive:       2.00,
	domain.ActivityExtraActive:      2.20,
}

// sedentaryFactor es el fallback para niveles no reconocidos.
const sedentaryFactor = 1.40

const (
	kcalPerGramCarbs   = 4
	kcalPerGramProtein = 4
	kcalPerGramFat     = 9
)

// ComputeBMR calcula el gasto en reposo con Mifflin-St Jeor:
// 10*peso + 6.25*altura - 5*edad + C, con C=+5 hombre / -161 mujer.
// Sin redondeo en esta etapa; la validacion de rangos es del caller.
func (NutritionEngine) ComputeBMR(sex domain.Sex, weightKG, heightCM float64, ageYears int) float64 {
	bmr := 10*weightKG + 6.25*heightCM - 5*float64(ageYears)
	if sex == domain.SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr
}

// ComputeTDEE escala el BMR por el factor de actividad. Un nivel no
// reconocido cae al factor sedentario (1.40) y devuelve known=false para que
// el caller registre el fallback en lugar de dejarlo pasar en silencio.
func (NutritionEngine) ComputeTDEE(bmr float64, level domain.ActivityLevel) (tdee float64, known bool) {
	factor, ok := activityFactors[level]
	if !ok {
		factor = sedentaryFactor
	}
	return bmr * factor, ok
}

// ComputeCalorieGoal ajusta el TDEE por el delta diario con signo segun la
// direccion del objetivo y redondea al multiplo de 10 mas cercano. No aplica
// piso ni techo: el caller ya valido la tasa contra un rango seguro.
func (NutritionEngine) ComputeCalorieGoal(tdee float64, direction domain.GoalDirection, weeklyRateKcalPerDay int) int {
	delta := 0
	switch direction {
	case domain.GoalLose:
		delta = -weeklyRateKcalPerDay
	case domain.GoalGain:
		delta = weeklyRateKcalPerDay
	}
	raw := tdee + float64(delta)
	return int(math.Round(raw/10)) * 10
}

// ComputeMacroGrams reparte el objetivo calorico segun el split y convierte a
// gramos (4 kcal/g carbohidratos y proteina, 9 kcal/g grasa). Cada valor se
// redondea por separado y no se renormaliza la suma; la deriva de unos pocos
// kcal respecto del objetivo es aceptada.
func (NutritionEngine) ComputeMacroGrams(calorieGoal int, split domain.MacroSplit) domain.MacroGrams {
	goal := float64(calorieGoal)
	return domain.MacroGrams{
		CarbsG:   int(math.Round(goal * float64(split.CarbsPct) / 100 / kcalPerGramCarbs)),
		ProteinG: int(math.Round(goal * float64(split.ProteinPct) / 100 / kcalPerGramProtein)),
		FatG:     int(math.Round(goal * float64(split.FatPct) / 100 / kcalPerGramFat)),
	}
}

// Calculate encadena los cuatro calculos y arma el snapshot de targets.
// Puro y determinista: misma biometria, mismo resultado, siempre.
// activityKnown=false indica que se uso el fallback sedentario.
func (e NutritionEngine) Calculate(b domain.UserBiometrics) (targets domain.NutritionTargets, activityKnown bool) {
	bmr := e.ComputeBMR(b.Sex, b.WeightKG, b.HeightCM, b.AgeYears)
	tdee, known := e.ComputeTDEE(bmr, b.ActivityLevel)
	goal := e.ComputeCalorieGoal(tdee, b.GoalDirection, b.WeeklyRateKcalPerDay)
	return domain.NutritionTargets{
		BMRKcal:         int(math.Round(bmr)),
		TDEEKcal:        int(math.Round(tdee)),
		CalorieGoalKcal: goal,
		Macros:          e.ComputeMacroGrams(goal, b.Split()),
	}, known
}
