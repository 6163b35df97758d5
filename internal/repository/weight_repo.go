package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"macrotrack/internal/domain"
)

// WeightRepository define el contrato de persistencia para el registro de peso.
type WeightRepository interface {
	Upsert(ctx context.Context, entry domain.WeightEntry) (domain.WeightEntry, error)
	ListRange(ctx context.Context, userID, start, end string) ([]domain.WeightEntry, error)
	Delete(ctx context.Context, userID, id string) error
}

// PgWeightRepository implementa WeightRepository usando pgxpool.
type PgWeightRepository struct {
	pool *pgxpool.Pool
}

func NewPgWeightRepository(pool *pgxpool.Pool) *PgWeightRepository {
	return &PgWeightRepository{pool: pool}
}

// Upsert inserta o pisa la entrada del dia. UNIQUE(user_id, date) garantiza
// una sola medicion por fecha.
func (r *PgWeightRepository) Upsert(ctx context.Context, e domain.WeightEntry) (domain.WeightEntry, error) {
	const query = `
		INSERT INTO weight_entries (id, user_id, date, weight_kg, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, date) DO UPDATE SET weight_kg = EXCLUDED.weight_kg
		RETURNING id, user_id, to_char(date, 'YYYY-MM-DD'), weight_kg, created_at
	`
	var out domain.WeightEntry
	err := r.pool.QueryRow(ctx, query,
		e.ID,
		e.UserID,
		e.Date,
		e.WeightKG,
		e.CreatedAt,
	).Scan(
		&out.ID,
		&out.UserID,
		&out.Date,
		&out.WeightKG,
		&out.CreatedAt,
	)
	return out, err
}

func (r *PgWeightRepository) ListRange(ctx context.Context, userID, start, end string) ([]domain.WeightEntry, error) {
	const query = `
		SELECT id, user_id, to_char(date, 'YYYY-MM-DD'), weight_kg, created_at
		FROM weight_entries
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`
	rows, err := r.pool.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.WeightEntry{}
	for rows.Next() {
		var e domain.WeightEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.WeightKG, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PgWeightRepository) Delete(ctx context.Context, userID, id string) error {
	const query = `
		DELETE FROM weight_entries
		WHERE id = $1 AND user_id = $2
	`
	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
