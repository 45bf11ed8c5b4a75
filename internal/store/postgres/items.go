package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minta-io/minta/internal/core"
)

var _ core.ItemStore = (*ItemStore)(nil)

// ItemStore persists items in Postgres.
type ItemStore struct {
	pool *pgxpool.Pool
}

func NewItemStore(pool *pgxpool.Pool) (*ItemStore, error) {
	s := &ItemStore{pool: pool}
	if err := s.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ItemStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS items (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT ''
);
`)
	return err
}

func (s *ItemStore) Create(ctx context.Context, item core.Item) (core.Item, error) {
	row := s.pool.QueryRow(ctx, `
INSERT INTO items (name, description)
VALUES ($1, $2)
RETURNING id
`, strings.TrimSpace(item.Name), item.Description)
	if err := row.Scan(&item.ID); err != nil {
		return core.Item{}, err
	}
	return item, nil
}

func (s *ItemStore) Get(ctx context.Context, id int64) (core.Item, error) {
	row := s.pool.QueryRow(ctx, `
SELECT id, name, description FROM items WHERE id = $1
`, id)
	var item core.Item
	if err := row.Scan(&item.ID, &item.Name, &item.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return core.Item{}, core.ErrItemNotFound
		}
		return core.Item{}, err
	}
	return item, nil
}

func (s *ItemStore) Update(ctx context.Context, item core.Item) (core.Item, error) {
	tag, err := s.pool.Exec(ctx, `
UPDATE items SET name = $2, description = $3 WHERE id = $1
`, item.ID, strings.TrimSpace(item.Name), item.Description)
	if err != nil {
		return core.Item{}, err
	}
	if tag.RowsAffected() == 0 {
		return core.Item{}, core.ErrItemNotFound
	}
	return item, nil
}

func (s *ItemStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrItemNotFound
	}
	return nil
}

func (s *ItemStore) List(ctx context.Context) ([]core.Item, error) {
	rows, err := s.pool.Query(ctx, `
SELECT id, name, description FROM items ORDER BY id
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]core.Item, 0)
	for rows.Next() {
		var item core.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Description); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
