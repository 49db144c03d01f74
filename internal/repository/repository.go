package repository

import (
	"context"

	"wordquiz/internal/domain"
)

// WordRepository defines word data operations
type WordRepository interface {
	Save(ctx context.Context, english, finnish string) (int64, error)
	FindAll(ctx context.Context) ([]domain.Word, error)
	FindByID(ctx context.Context, id int64) (*domain.Word, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
	UpdateByID(ctx context.Context, id int64, english, finnish string) (bool, error)
}
