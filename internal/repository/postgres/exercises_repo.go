package postgres

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baharkarakas/exercise-tracker/internal/models"
)

type exercisesRepo struct{ pool *pgxpool.Pool }

func (r *exercisesRepo) Create(ctx context.Context, e *models.Exercise) error {
	if err := e.Validate(); err != nil {
		return err
	}
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO exercises(id, user_id, description, duration, date) VALUES($1,$2,$3,$4,$5)`,
		id, e.UserID, e.Description, e.Duration.Minutes, e.Date,
	)
	if err != nil {
		return err
	}
	e.ID = id
	return nil
}

// Find keeps insertion order through the seq column; no other ordering is applied.
func (r *exercisesRepo) Find(ctx context.Context, f models.LogFilter) ([]models.Exercise, error) {
	var (
		sb   strings.Builder
		args = []any{f.UserID}
	)
	sb.WriteString(`SELECT id, description, duration, date FROM exercises WHERE user_id=$1`)
	if f.From != nil {
		args = append(args, *f.From)
		sb.WriteString(` AND date >= $` + strconv.Itoa(len(args)))
	}
	if f.To != nil {
		args = append(args, *f.To)
		sb.WriteString(` AND date <= $` + strconv.Itoa(len(args)))
	}
	sb.WriteString(` ORDER BY seq`)
	if f.Limit > 0 {
		args = append(args, f.Limit)
		sb.WriteString(` LIMIT $` + strconv.Itoa(len(args)))
	}

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Exercise{}
	for rows.Next() {
		var (
			e        models.Exercise
			duration int
			date     time.Time
		)
		if err := rows.Scan(&e.ID, &e.Description, &duration, &date); err != nil {
			return nil, err
		}
		e.Duration = models.Minutes(duration)
		e.Date = date.UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}
