package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"macrotrack/internal/domain"
)

// DiaryRepository define el contrato de persistencia para el diario.
type DiaryRepository interface {
	Create(ctx context.Context, entry domain.DiaryEntry) error
	ListByDate(ctx context.Context, userID, date string) ([]domain.DiaryEntry, error)
	Delete(ctx context.Context, userID, id string) error
}

// PgDiaryRepository implementa DiaryRepository usando pgxpool.
type PgDiaryRepository struct {
	pool *pgxpool.Pool
}

func NewPgDiaryRepository(pool *pgxpool.Pool) *PgDiaryRepository {
	return &PgDiaryRepository{pool: pool}
}

func (r *PgDiaryRepository) Create(ctx context.Context, e domain.DiaryEntry) error {
	const query = `
		INSERT INTO diary_entries (id, user_id, date, name, type, calories, protein_g, carbs_g, fat_g, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		e.ID,
		e.UserID,
		e.Date,
		e.Name,
		e.Type,
		e.Calories,
		e.ProteinG,
		e.CarbsG,
		e.FatG,
		e.CreatedAt,
	)
	return err
}

func (r *PgDiaryRepository) ListByDate(ctx context.Context, userID, date string) ([]domain.DiaryEntry, error) {
	const query = `
		SELECT id, user_id, to_char(date, 'YYYY-MM-DD'), name, type, calories, protein_g, carbs_g, fat_g, created_at
		FROM diary_entries
		WHERE user_id = $1 AND date = $2
		ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, userID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.DiaryEntry{}
	for rows.Next() {
		var e domain.DiaryEntry
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Date,
			&e.Name,
			&e.Type,
			&e.Calories,
			&e.ProteinG,
			&e.CarbsG,
			&e.FatG,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PgDiaryRepository) Delete(ctx context.Context, userID, id string) error {
	const query = `
		DELETE FROM diary_entries
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
