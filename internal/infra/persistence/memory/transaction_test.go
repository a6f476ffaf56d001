package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"stayscape/internal/domain/entity"
	"stayscape/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProperty(t *testing.T, store *Store) *entity.Property {
	t.Helper()

	property := &entity.Property{Title: "Beach house", Price: 100, Guests: 4, HostID: 1}
	require.NoError(t, NewPropertyRepository(store).CreateProperty(context.Background(), property))

	return property
}

func TestTransactionManager_RollbackUndoesWrites(t *testing.T) {
	store := NewStore()
	property := seedProperty(t, store)
	txManager := NewTransactionManager(store)
	ctx := context.Background()
	boom := errors.New("boom")

	err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.BookingRepository().CreateBooking(ctx, &entity.Booking{PropertyID: property.ID}); err != nil {
			return err
		}
		rating := 9
		if err := f.PropertyRepository().UpdateRatingSummary(ctx, property.ID, entity.RatingSummary{Rating: &rating, ReviewCount: 1}); err != nil {
			return err
		}
		if err := f.FavoriteRepository().DeleteFavorite(ctx, 1, property.ID); !errors.Is(err, repository.ErrFavoriteNotFound) {
			return err
		}

		return boom
	})

	require.ErrorIs(t, err, boom)

	bookings, err := NewBookingRepository(store).FindBookingsByProperty(ctx, property.ID)
	require.NoError(t, err)
	assert.Empty(t, bookings)

	stored, err := NewPropertyRepository(store).FindPropertyByID(ctx, property.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Rating)
	assert.Zero(t, stored.ReviewCount)
}

func TestTransactionManager_RollbackRestoresDeletedProperty(t *testing.T) {
	store := NewStore()
	property := seedProperty(t, store)
	ctx := context.Background()

	err := NewTransactionManager(store).Execute(ctx, func(f repository.RepositoryFactory) error {
		require.NoError(t, f.PropertyRepository().DeleteProperty(ctx, property.ID))

		return errors.New("abort")
	})
	require.Error(t, err)

	_, err = NewPropertyRepository(store).FindPropertyByID(ctx, property.ID)
	assert.NoError(t, err)
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	store := NewStore()
	property := seedProperty(t, store)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = NewTransactionManager(store).Execute(ctx, func(f repository.RepositoryFactory) error {
			_, _ = f.PropertyRepository().LockPropertyByID(ctx, property.ID)
			_ = f.ReviewRepository().CreateReview(ctx, &entity.Review{PropertyID: property.ID, Rating: 5})
			panic("unexpected")
		})
	})

	reviews, err := NewReviewRepository(store).FindReviewsByProperty(ctx, property.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	// The lock must have been released by the panicking unit of work.
	lockCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	err = NewTransactionManager(store).Execute(lockCtx, func(f repository.RepositoryFactory) error {
		_, err := f.PropertyRepository().LockPropertyByID(lockCtx, property.ID)
		return err
	})
	assert.NoError(t, err)
}

func TestTransactionManager_LockIsReentrant(t *testing.T) {
	store := NewStore()
	property := seedProperty(t, store)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := NewTransactionManager(store).Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.PropertyRepository().LockPropertyByID(ctx, property.ID); err != nil {
			return err
		}
		_, err := f.PropertyRepository().LockPropertyByID(ctx, property.ID)

		return err
	})

	assert.NoError(t, err)
}

func TestTransactionManager_LockWaitHonoursContext(t *testing.T) {
	store := NewStore()
	property := seedProperty(t, store)
	txManager := NewTransactionManager(store)

	locked := make(chan struct{})
	done := make(chan struct{})
	go func() {
		_ = txManager.Execute(context.Background(), func(f repository.RepositoryFactory) error {
			_, err := f.PropertyRepository().LockPropertyByID(context.Background(), property.ID)
			close(locked)
			<-done
			return err
		})
	}()
	<-locked
	defer close(done)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		_, err := f.PropertyRepository().LockPropertyByID(ctx, property.ID)
		return err
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTransactionManager_LockSerializesCheckThenInsert(t *testing.T) {
	store := NewStore()
	property := seedProperty(t, store)
	txManager := NewTransactionManager(store)
	ctx := context.Background()

	stay := entity.NewDateRange(
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
	)

	const workers = 16
	var accepted atomic.Int32
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			_ = txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
				if _, err := f.PropertyRepository().LockPropertyByID(ctx, property.ID); err != nil {
					return err
				}
				existing, err := f.BookingRepository().FindBookingsByProperty(ctx, property.ID)
				if err != nil {
					return err
				}
				for _, b := range existing {
					if b.Range().Overlaps(stay) {
						return errors.New("conflict")
					}
				}
				// Widen the race window.
				time.Sleep(time.Millisecond)
				accepted.Add(1)

				return f.BookingRepository().CreateBooking(ctx, &entity.Booking{
					PropertyID: property.ID,
					UserID:     userID,
					StartDate:  stay.Start,
					EndDate:    stay.End,
					Status:     entity.BookingStatusPending,
				})
			})
		}(int64(i + 1))
	}
	wg.Wait()

	assert.Equal(t, int32(1), accepted.Load())
	bookings, err := NewBookingRepository(store).FindBookingsByProperty(ctx, property.ID)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}
