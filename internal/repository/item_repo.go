package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/model"
)

type ItemRepository struct {
	pool *pgxpool.Pool
}

func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

// List returns all portfolio items in display order (sort_key ascending).
func (r *ItemRepository) List(ctx context.Context) ([]model.Item, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, showcase_path, title, link, description, tech, item_type, sort_key, created_at, updated_at
		 FROM items ORDER BY sort_key`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]model.Item, 0)
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.ShowcasePath, &it.Title, &it.Link, &it.Description,
			&it.Tech, &it.Type, &it.SortKey, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *ItemRepository) FindByID(ctx context.Context, id string) (model.Item, error) {
	var it model.Item
	err := r.pool.QueryRow(ctx,
		`SELECT id, showcase_path, title, link, description, tech, item_type, sort_key, created_at, updated_at
		 FROM items WHERE id = $1`, id).
		Scan(&it.ID, &it.ShowcasePath, &it.Title, &it.Link, &it.Description,
			&it.Tech, &it.Type, &it.SortKey, &it.CreatedAt, &it.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Item{}, model.ErrItemNotFound
	}
	if err != nil {
		return model.Item{}, fmt.Errorf("find item by id: %w", err)
	}
	return it, nil
}

func (r *ItemRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM items WHERE title = $1)`, title).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check item title exists: %w", err)
	}
	return exists, nil
}

func (r *ItemRepository) Create(ctx context.Context, it model.Item) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO items (id, showcase_path, title, link, description, tech, item_type, sort_key, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		it.ID, it.ShowcasePath, it.Title, it.Link, it.Description, it.Tech, it.Type, it.SortKey, it.CreatedAt, it.UpdatedAt)
	if isUniqueViolation(err) {
		return model.ErrDuplicateTitle
	}
	if err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

func (r *ItemRepository) Update(ctx context.Context, it model.Item) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE items SET showcase_path = $2, title = $3, link = $4, description = $5,
		        tech = $6, item_type = $7, sort_key = $8, updated_at = $9
		 WHERE id = $1`,
		it.ID, it.ShowcasePath, it.Title, it.Link, it.Description, it.Tech, it.Type, it.SortKey, it.UpdatedAt)
	if isUniqueViolation(err) {
		return model.ErrDuplicateTitle
	}
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrItemNotFound
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrItemNotFound
	}
	return nil
}
