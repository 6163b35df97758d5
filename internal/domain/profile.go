package domain

import "time"

// Profile agrupa la biometria del usuario, sus objetivos derivados y las
// preferencias de onboarding. Targets siempre es consistente con Biometrics:
// el servicio de perfil recalcula y sobreescribe Targets en cada mutacion.
type Profile struct {
	UserID     string           `json:"user_id"`
	Biometrics UserBiometrics   `json:"biometrics"`
	Targets    NutritionTargets `json:"targets"`

	// Onboarding preference fields. Opaque to the nutrition engine; stored
	// alongside the biometrics and echoed back to clients as-is.
	GoalTags []string `json:"goal_tags,omitempty"`
	Barriers []string `json:"barriers,omitempty"`
	Habits   []string `json:"habits,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
