package service

import (
	"context"

	"wordquiz/internal/domain"
	"wordquiz/internal/repository"
	"wordquiz/internal/validation"
)

// WordService validates word operations and runs them against the repository.
// Driver errors are returned as *domain.StorageError, missing rows as *domain.NotFoundError.
type WordService struct {
	wordRepo repository.WordRepository
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository) *WordService {
	return &WordService{wordRepo: wordRepo}
}

// Save validates and stores a new word, returning it with its generated id
func (s *WordService) Save(ctx context.Context, word domain.Word) (domain.Word, error) {
	if errs := validation.ValidateWord(word); errs != nil {
		return domain.Word{}, &domain.ValidationError{Errors: errs}
	}

	id, err := s.wordRepo.Save(ctx, word.English, word.Finnish)
	if err != nil {
		return domain.Word{}, &domain.StorageError{Op: "save", Err: err}
	}

	return domain.Word{ID: id, English: word.English, Finnish: word.Finnish}, nil
}

// FindAll returns every stored word
func (s *WordService) FindAll(ctx context.Context) ([]domain.Word, error) {
	words, err := s.wordRepo.FindAll(ctx)
	if err != nil {
		return nil, &domain.StorageError{Op: "find_all", Err: err}
	}
	if words == nil {
		words = []domain.Word{}
	}
	return words, nil
}

// FindByID returns a single word
func (s *WordService) FindByID(ctx context.Context, id int64) (domain.Word, error) {
	if errs := validation.ValidateID(id); errs != nil {
		return domain.Word{}, &domain.ValidationError{Errors: errs}
	}

	word, err := s.wordRepo.FindByID(ctx, id)
	if err != nil {
		return domain.Word{}, &domain.StorageError{Op: "find_by_id", Err: err}
	}
	if word == nil {
		return domain.Word{}, &domain.NotFoundError{ID: id}
	}

	return domain.Word{ID: word.ID, English: word.English, Finnish: word.Finnish}, nil
}

// DeleteByID removes a word
func (s *WordService) DeleteByID(ctx context.Context, id int64) error {
	if errs := validation.ValidateID(id); errs != nil {
		return &domain.ValidationError{Errors: errs}
	}

	found, err := s.wordRepo.DeleteByID(ctx, id)
	if err != nil {
		return &domain.StorageError{Op: "delete_by_id", Err: err}
	}
	if !found {
		return &domain.NotFoundError{ID: id}
	}
	return nil
}

// UpdateByID replaces english and finnish of an existing word
func (s *WordService) UpdateByID(ctx context.Context, id int64, word domain.Word) (domain.Word, error) {
	errs := validation.ValidateID(id)
	errs = append(errs, validation.ValidateWord(word)...)
	if len(errs) > 0 {
		return domain.Word{}, &domain.ValidationError{Errors: errs}
	}

	found, err := s.wordRepo.UpdateByID(ctx, id, word.English, word.Finnish)
	if err != nil {
		return domain.Word{}, &domain.StorageError{Op: "update_by_id", Err: err}
	}
	if !found {
		return domain.Word{}, &domain.NotFoundError{ID: id}
	}

	return domain.Word{ID: id, English: word.English, Finnish: word.Finnish}, nil
}
