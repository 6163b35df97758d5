package domain

import "time"

// WeightEntry es una medicion de peso por dia. Una sola entrada por fecha:
// registrar de nuevo la misma fecha pisa el valor anterior.
type WeightEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	WeightKG  float64   `json:"weight_kg"`
	CreatedAt time.Time `json:"created_at"`
}
