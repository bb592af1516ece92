package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/model"
)

type SkillRepository struct {
	pool *pgxpool.Pool
}

func NewSkillRepository(pool *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{pool: pool}
}

// List returns skills in insertion order, same as the users listing.
func (r *SkillRepository) List(ctx context.Context) ([]model.Skill, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, level, created_at, updated_at FROM skills ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	skills := make([]model.Skill, 0)
	for rows.Next() {
		var s model.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Level, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *SkillRepository) FindByID(ctx context.Context, id string) (model.Skill, error) {
	var s model.Skill
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, level, created_at, updated_at FROM skills WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Level, &s.CreatedAt, &s.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Skill{}, model.ErrSkillNotFound
	}
	if err != nil {
		return model.Skill{}, fmt.Errorf("find skill by id: %w", err)
	}
	return s, nil
}

func (r *SkillRepository) Create(ctx context.Context, s model.Skill) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO skills (id, name, level, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.Name, s.Level, s.CreatedAt, s.UpdatedAt)
	if isUniqueViolation(err) {
		return model.ErrDuplicateSkill
	}
	if err != nil {
		return fmt.Errorf("create skill: %w", err)
	}
	return nil
}

func (r *SkillRepository) Update(ctx context.Context, s model.Skill) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE skills SET name = $2, level = $3, updated_at = $4 WHERE id = $1`,
		s.ID, s.Name, s.Level, s.UpdatedAt)
	if isUniqueViolation(err) {
		return model.ErrDuplicateSkill
	}
	if err != nil {
		return fmt.Errorf("update skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSkillNotFound
	}
	return nil
}

func (r *SkillRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSkillNotFound
	}
	return nil
}
