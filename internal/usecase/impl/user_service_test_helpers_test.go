package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"stayscape/config"
	"stayscape/internal/domain/repository"
	mockRepo "stayscape/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(policy string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
			TokenTTL:   time.Hour,
		},
		Booking: &config.BookingConfig{
			ConflictPolicy: policy,
			CleaningFee:    50,
			ServiceFeeRate: 0.12,
		},
		Review: &config.ReviewConfig{
			MinRating: 1,
			MaxRating: 10,
		},
	}
}

func day(d int) time.Time {
	return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
}

// runInTx makes the mocked transaction manager call fn with the mocked factory.
func runInTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
