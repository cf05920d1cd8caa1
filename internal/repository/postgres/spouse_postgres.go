package postgres

import (
	"context"
	"database/sql"
	"errors"

	"spouseshowcase/internal/model"
	"spouseshowcase/internal/repository"
	"spouseshowcase/internal/schema"
)

// SpousePostgres is a PostgreSQL implementation of repository.SpouseRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type SpousePostgres struct {
	db *sql.DB
}

// NewSpousePostgres creates a new SpousePostgres repository.
func NewSpousePostgres(db *sql.DB) *SpousePostgres {
	return &SpousePostgres{db: db}
}

var _ repository.SpouseRepository = (*SpousePostgres)(nil)

// List returns all rows without an ORDER BY, so the order is whatever the
// table scan yields (insertion order in practice).
func (r *SpousePostgres) List(ctx context.Context) ([]model.Spouse, error) {
	const q = `SELECT id, user_name, spouse_name, image_data FROM spouses`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, repository.ListError(err)
	}
	defer rows.Close()

	items := make([]model.Spouse, 0)
	for rows.Next() {
		var s model.Spouse
		if err := rows.Scan(&s.ID, &s.UserName, &s.SpouseName, &s.ImageData); err != nil {
			return nil, repository.ListError(err)
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.ListError(err)
	}
	return items, nil
}

// Create inserts a row and returns it as stored, including the SERIAL id.
func (r *SpousePostgres) Create(ctx context.Context, in schema.SpouseInput) (*model.Spouse, error) {
	const q = `
		INSERT INTO spouses (user_name, spouse_name, image_data)
		VALUES ($1, $2, $3)
		RETURNING id, user_name, spouse_name, image_data
	`
	row := r.db.QueryRowContext(ctx, q, in.UserName, in.SpouseName, in.ImageData)

	var out model.Spouse
	if err := row.Scan(&out.ID, &out.UserName, &out.SpouseName, &out.ImageData); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.CreateError(repository.ErrNoRowReturned)
		}
		return nil, repository.CreateError(err)
	}
	return &out, nil
}
