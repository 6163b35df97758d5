package domain

// MacroGrams son los objetivos diarios en gramos por macronutriente.
type MacroGrams struct {
	CarbsG   int `json:"carbs_g"`
	ProteinG int `json:"protein_g"`
	FatG     int `json:"fat_g"`
}

// NutritionTargets es la salida del motor de nutricion: un snapshot derivado
// de UserBiometrics. No tiene ciclo de vida propio: se recalcula y se
// reemplaza entero cada vez que cambia la biometria, nunca se edita campo a
// campo. La fuente de verdad siempre es UserBiometrics.
type NutritionTargets struct {
	BMRKcal         int        `json:"bmr_kcal"`
	TDEEKcal        int        `json:"tdee_kcal"`
	CalorieGoalKcal int        `json:"calorie_goal_kcal"`
	Macros          MacroGrams `json:"macro_grams"`
}

// KcalSum devuelve las calorias implicadas por los gramos de macros
// (4 kcal/g carbohidratos y proteina, 9 kcal/g grasa). Por el redondeo
// independiente puede diferir unos pocos kcal de CalorieGoalKcal.
func (m MacroGrams) KcalSum() int {
	return m.CarbsG*4 + m.ProteinG*4 + m.FatG*9
}
