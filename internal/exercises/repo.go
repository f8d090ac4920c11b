package exercises

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkovacevic/fitlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrExerciseNotFound = errors.New("exercise not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// List returns the whole exercise catalog, ordered by name.
func (r *Repo) List(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    id, name, muscle_group
			FROM exercises
			ORDER BY name
		`,
	)
	if err != nil {
		return nil, fmt.Errorf("exercises [query]: %w", err)
	}
	defer rows.Close()

	var catalog []Exercise
	for rows.Next() {
		var exercise Exercise
		if err := rows.Scan(
			&exercise.ID,
			&exercise.Name,
			&exercise.MuscleGroup,
		); err != nil {
			return nil, fmt.Errorf("exercises [rows scan]: %w", err)
		}
		catalog = append(catalog, exercise)
	}

	span.SetAttributes(attribute.Int("exercises.count", len(catalog)))
	return catalog, nil
}

// Get returns a single catalog entry.
func (r *Repo) Get(ctx context.Context, id int) (_ Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exercise Exercise
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
			    id, name, muscle_group
			FROM exercises
			WHERE id = $1
		`,
		id,
	).Scan(
		&exercise.ID,
		&exercise.Name,
		&exercise.MuscleGroup,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Exercise{}, ErrExerciseNotFound
	}
	if err != nil {
		return Exercise{}, fmt.Errorf("exercise [query row]: %w", err)
	}

	return exercise, nil
}
