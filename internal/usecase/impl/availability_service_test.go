package impl

import (
	"context"
	"testing"

	"stayscape/internal/domain/entity"
	domainerrors "stayscape/internal/domain/errors"
	"stayscape/internal/domain/repository"
	mockRepo "stayscape/internal/mocks/repository"
	"stayscape/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type availabilityServiceFixtures struct {
	service      usecase.AvailabilityUsecase
	propertyRepo *mockRepo.MockPropertyRepository
	bookingRepo  *mockRepo.MockBookingRepository
}

func createTestAvailabilityService(t *testing.T, policy string) availabilityServiceFixtures {
	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	bookingRepo := mockRepo.NewMockBookingRepository(t)

	service, err := NewAvailabilityService(AvailabilityServiceParams{
		PropertyRepo: propertyRepo,
		BookingRepo:  bookingRepo,
		Config:       newTestConfig(policy),
		Logger:       newDiscardLogger(),
	})
	require.NoError(t, err)

	return availabilityServiceFixtures{
		service:      service,
		propertyRepo: propertyRepo,
		bookingRepo:  bookingRepo,
	}
}

func TestAvailabilityService_HasConflict_JuneScenario(t *testing.T) {
	fx := createTestAvailabilityService(t, "")
	ctx := context.Background()

	fx.bookingRepo.EXPECT().
		FindBookingsByProperty(ctx, int64(1)).
		Return([]*entity.Booking{
			{ID: 1, PropertyID: 1, StartDate: day(1), EndDate: day(5), Status: entity.BookingStatusPending},
		}, nil)

	conflict, err := fx.service.HasConflict(ctx, 1, day(5), day(10))
	require.NoError(t, err)
	assert.False(t, conflict, "back-to-back stay must be free")

	conflict, err = fx.service.HasConflict(ctx, 1, day(4), day(6))
	require.NoError(t, err)
	assert.True(t, conflict)
}

func TestAvailabilityService_HasConflict_Policies(t *testing.T) {
	bookings := []*entity.Booking{
		{ID: 1, PropertyID: 1, StartDate: day(1), EndDate: day(5), Status: entity.BookingStatusCancelled},
		{ID: 2, PropertyID: 1, StartDate: day(10), EndDate: day(12), Status: entity.BookingStatusCompleted},
	}

	tests := []struct {
		policy        string
		wantCancelled bool
		wantCompleted bool
	}{
		{policy: "all", wantCancelled: true, wantCompleted: true},
		{policy: "ignore_cancelled", wantCancelled: false, wantCompleted: true},
		{policy: "ignore_inactive", wantCancelled: false, wantCompleted: false},
	}

	for _, tt := range tests {
		t.Run(tt.policy, func(t *testing.T) {
			fx := createTestAvailabilityService(t, tt.policy)
			ctx := context.Background()

			fx.bookingRepo.EXPECT().FindBookingsByProperty(ctx, int64(1)).Return(bookings, nil)

			conflict, err := fx.service.HasConflict(ctx, 1, day(2), day(3))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCancelled, conflict)

			conflict, err = fx.service.HasConflict(ctx, 1, day(11), day(13))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCompleted, conflict)
		})
	}
}

func TestAvailabilityService_CheckAvailability(t *testing.T) {
	t.Run("property not found", func(t *testing.T) {
		fx := createTestAvailabilityService(t, "")
		ctx := context.Background()

		fx.propertyRepo.EXPECT().FindPropertyByID(ctx, int64(9)).Return(nil, repository.ErrPropertyNotFound)

		_, err := fx.service.CheckAvailability(ctx, 9, day(1), day(2))
		assert.ErrorIs(t, err, domainerrors.ErrPropertyNotFound)
	})

	t.Run("invalid range is rejected before bookings are read", func(t *testing.T) {
		fx := createTestAvailabilityService(t, "")
		ctx := context.Background()

		fx.propertyRepo.EXPECT().FindPropertyByID(ctx, int64(1)).Return(&entity.Property{ID: 1}, nil)

		_, err := fx.service.CheckAvailability(ctx, 1, day(5), day(5))
		assert.ErrorIs(t, err, domainerrors.ErrInvalidDateRange)
	})

	t.Run("available", func(t *testing.T) {
		fx := createTestAvailabilityService(t, "")
		ctx := context.Background()

		fx.propertyRepo.EXPECT().FindPropertyByID(ctx, int64(1)).Return(&entity.Property{ID: 1}, nil)
		fx.bookingRepo.EXPECT().FindBookingsByProperty(ctx, int64(1)).Return([]*entity.Booking{
			{ID: 1, StartDate: day(1), EndDate: day(5)},
		}, nil)

		out, err := fx.service.CheckAvailability(ctx, 1, day(5), day(8))
		require.NoError(t, err)
		assert.True(t, out.Available)
		assert.Equal(t, int64(1), out.PropertyID)
	})
}

func TestAvailabilityService_BlockedRanges(t *testing.T) {
	fx := createTestAvailabilityService(t, "ignore_cancelled")
	ctx := context.Background()

	fx.propertyRepo.EXPECT().FindPropertyByID(ctx, int64(1)).Return(&entity.Property{ID: 1}, nil)
	fx.bookingRepo.EXPECT().FindBookingsByProperty(ctx, int64(1)).Return([]*entity.Booking{
		{ID: 1, StartDate: day(20), EndDate: day(22), Status: entity.BookingStatusConfirmed},
		{ID: 2, StartDate: day(1), EndDate: day(5), Status: entity.BookingStatusCancelled},
		{ID: 3, StartDate: day(6), EndDate: day(8), Status: entity.BookingStatusPending},
	}, nil)

	ranges, err := fx.service.BlockedRanges(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []entity.DateRange{
		entity.NewDateRange(day(6), day(8)),
		entity.NewDateRange(day(20), day(22)),
	}, ranges)
}

func TestNewAvailabilityService_UnknownPolicy(t *testing.T) {
	_, err := NewAvailabilityService(AvailabilityServiceParams{
		PropertyRepo: mockRepo.NewMockPropertyRepository(t),
		BookingRepo:  mockRepo.NewMockBookingRepository(t),
		Config:       newTestConfig("first_come"),
		Logger:       newDiscardLogger(),
	})
	assert.Error(t, err)
}
