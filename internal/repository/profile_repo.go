package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"macrotrack/internal/domain"
)

// ProfileRepository persiste el perfil: biometria, targets derivados y
// preferencias de onboarding. Los targets se escriben siempre junto con la
// biometria que los produjo, nunca por separado.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile domain.Profile) error
	GetByUserID(ctx context.Context, userID string) (domain.Profile, error)
}

// PgProfileRepository implementa ProfileRepository usando pgxpool.
type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

func (r *PgProfileRepository) Upsert(ctx context.Context, p domain.Profile) error {
	const query = `
		INSERT INTO profiles (
			user_id, sex, age_years, height_cm, weight_kg,
			activity_level, goal_direction, weekly_rate_kcal_per_day,
			carbs_pct, protein_pct, fat_pct,
			bmr_kcal, tdee_kcal, calorie_goal_kcal,
			carbs_g, protein_g, fat_g,
			goal_tags, barriers, habits,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		ON CONFLICT (user_id) DO UPDATE SET
			sex = EXCLUDED.sex,
			age_years = EXCLUDED.age_years,
			height_cm = EXCLUDED.height_cm,
			weight_kg = EXCLUDED.weight_kg,
			activity_level = EXCLUDED.activity_level,
			goal_direction = EXCLUDED.goal_direction,
			weekly_rate_kcal_per_day = EXCLUDED.weekly_rate_kcal_per_day,
			carbs_pct = EXCLUDED.carbs_pct,
			protein_pct = EXCLUDED.protein_pct,
			fat_pct = EXCLUDED.fat_pct,
			bmr_kcal = EXCLUDED.bmr_kcal,
			tdee_kcal = EXCLUDED.tdee_kcal,
			calorie_goal_kcal = EXCLUDED.calorie_goal_kcal,
			carbs_g = EXCLUDED.carbs_g,
			protein_g = EXCLUDED.protein_g,
			fat_g = EXCLUDED.fat_g,
			goal_tags = EXCLUDED.goal_tags,
			barriers = EXCLUDED.barriers,
			habits = EXCLUDED.habits,
			updated_at = EXCLUDED.updated_at
	`
	var carbsPct, proteinPct, fatPct *int
	if s := p.Biometrics.MacroSplit; s != nil {
		carbsPct, proteinPct, fatPct = &s.CarbsPct, &s.ProteinPct, &s.FatPct
	}
	_, err := r.pool.Exec(ctx, query,
		p.UserID,
		string(p.Biometrics.Sex),
		p.Biometrics.AgeYears,
		p.Biometrics.HeightCM,
		p.Biometrics.WeightKG,
		string(p.Biometrics.ActivityLevel),
		string(p.Biometrics.GoalDirection),
		p.Biometrics.WeeklyRateKcalPerDay,
		carbsPct,
		proteinPct,
		fatPct,
		p.Targets.BMRKcal,
		p.Targets.TDEEKcal,
		p.Targets.CalorieGoalKcal,
		p.Targets.Macros.CarbsG,
		p.Targets.Macros.ProteinG,
		p.Targets.Macros.FatG,
		p.GoalTags,
		p.Barriers,
		p.Habits,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PgProfileRepository) GetByUserID(ctx context.Context, userID string) (domain.Profile, error) {
	const query = `
		SELECT user_id, sex, age_years, height_cm, weight_kg,
			activity_level, goal_direction, weekly_rate_kcal_per_day,
			carbs_pct, protein_pct, fat_pct,
			bmr_kcal, tdee_kcal, calorie_goal_kcal,
			carbs_g, protein_g, fat_g,
			goal_tags, barriers, habits,
			created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	var (
		p          domain.Profile
		carbsPct   *int
		proteinPct *int
		fatPct     *int
	)
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.UserID,
		&p.Biometrics.Sex,
		&p.Biometrics.AgeYears,
		&p.Biometrics.HeightCM,
		&p.Biometrics.WeightKG,
		&p.Biometrics.ActivityLevel,
		&p.Biometrics.GoalDirection,
		&p.Biometrics.WeeklyRateKcalPerDay,
		&carbsPct,
		&proteinPct,
		&fatPct,
		&p.Targets.BMRKcal,
		&p.Targets.TDEEKcal,
		&p.Targets.CalorieGoalKcal,
		&p.Targets.Macros.CarbsG,
		&p.Targets.Macros.ProteinG,
		&p.Targets.Macros.FatG,
		&p.GoalTags,
		&p.Barriers,
		&p.Habits,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Profile{}, err
	}
	if err == nil && carbsPct != nil && proteinPct != nil && fatPct != nil {
		p.Biometrics.MacroSplit = &domain.MacroSplit{
			CarbsPct:   *carbsPct,
			ProteinPct: *proteinPct,
			FatPct:     *fatPct,
		}
	}
	return p, err
}
