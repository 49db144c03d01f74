package testutil

import (
	"wordquiz/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWord creates a test word
func NewTestWord(id int64, english, finnish string) *domain.Word {
	return &domain.Word{
		ID:      id,
		English: english,
		Finnish: finnish,
	}
}
