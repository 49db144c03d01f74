// Package sqldb implements the repositories on top of storage.Gateway.
package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"wordquiz/internal/domain"
	"wordquiz/internal/storage"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	gw *storage.Gateway
}

// NewWordRepo creates a new word repository
func NewWordRepo(gw *storage.Gateway) *WordRepo {
	return &WordRepo{gw: gw}
}

// Save inserts a word pair and returns its generated id
func (r *WordRepo) Save(ctx context.Context, english, finnish string) (int64, error) {
	query := `INSERT INTO words (english, finnish) VALUES ($1, $2)`
	return r.gw.Insert(ctx, query, english, finnish)
}

// FindAll returns every stored word ordered by id
func (r *WordRepo) FindAll(ctx context.Context) ([]domain.Word, error) {
	query := `
		SELECT id, english, finnish
		FROM words
		ORDER BY id
	`

	rows, err := r.gw.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	words := []domain.Word{}
	for rows.Next() {
		var w domain.Word
		if err := rows.Scan(&w.ID, &w.English, &w.Finnish); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// FindByID returns the word with the given id, or nil if there is none
func (r *WordRepo) FindByID(ctx context.Context, id int64) (*domain.Word, error) {
	var w domain.Word
	query := `
		SELECT id, english, finnish
		FROM words
		WHERE id = $1
	`
	err := r.gw.QueryRow(ctx, query, id).Scan(&w.ID, &w.English, &w.Finnish)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &w, nil
}

// DeleteByID deletes a word and reports whether a row was removed
func (r *WordRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM words WHERE id = $1`
	affected, err := r.gw.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// UpdateByID replaces both fields of a word and reports whether the row exists
func (r *WordRepo) UpdateByID(ctx context.Context, id int64, english, finnish string) (bool, error) {
	query := `
		UPDATE words
		SET english = $1, finnish = $2
		WHERE id = $3
	`
	affected, err := r.gw.Exec(ctx, query, english, finnish, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
