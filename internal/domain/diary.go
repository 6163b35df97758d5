package domain

import "time"

const (
	EntryTypeFood     = "food"
	EntryTypeExercise = "exercise"
)

// DiaryEntry es un item del diario: comida consumida o ejercicio realizado.
// Para ejercicio, Calories son las calorias quemadas y los macros van en nil.
type DiaryEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Calories  int       `json:"calories"`
	ProteinG  *float64  `json:"protein_g,omitempty"`
	CarbsG    *float64  `json:"carbs_g,omitempty"`
	FatG      *float64  `json:"fat_g,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DaySummary compara lo registrado en un dia contra los targets vigentes.
// Net = comida - ejercicio; Remaining = objetivo - net.
type DaySummary struct {
	Date             string           `json:"date"`
	Targets          NutritionTargets `json:"targets"`
	CaloriesFood     int              `json:"calories_food"`
	CaloriesExercise int              `json:"calories_exercise"`
	NetCalories      int              `json:"net_calories"`
	CaloriesLeft     int              `json:"calories_left"`
	ProteinG         float64          `json:"protein_g"`
	CarbsG           float64          `json:"carbs_g"`
	FatG             float64          `json:"fat_g"`
	Entries          []DiaryEntry     `json:"entries"`
}
