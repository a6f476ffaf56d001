package memory

import (
	"context"

	"stayscape/internal/domain/entity"
	"stayscape/internal/domain/repository"
)

type bookingRepository struct {
	store *Store
	uow   *unitOfWork
}

// NewBookingRepository creates a booking repository outside any unit of work.
func NewBookingRepository(store *Store) repository.BookingRepository {
	return &bookingRepository{store: store}
}

func (r *bookingRepository) CreateBooking(_ context.Context, booking *entity.Booking) error {
	r.store.stamp(&booking.CreatedAt)

	created := r.store.bookings.Create(booking)
	r.uow.onRollback(func() { r.store.bookings.Delete(created.ID) })

	return nil
}

func (r *bookingRepository) FindBookingByID(_ context.Context, id int64) (*entity.Booking, error) {
	booking, ok := r.store.bookings.Get(id)
	if !ok {
		return nil, repository.ErrBookingNotFound
	}

	return booking, nil
}

func (r *bookingRepository) FindBookingsByProperty(_ context.Context, propertyID int64) ([]*entity.Booking, error) {
	return r.store.bookings.Where(func(b *entity.Booking) bool {
		return b.PropertyID == propertyID
	}), nil
}

func (r *bookingRepository) FindBookingsByUser(_ context.Context, userID int64) ([]*entity.Booking, error) {
	return r.store.bookings.Where(func(b *entity.Booking) bool {
		return b.UserID == userID
	}), nil
}

func (r *bookingRepository) UpdateBookingStatus(_ context.Context, id int64, status entity.BookingStatus) (*entity.Booking, error) {
	before, after, ok := r.store.bookings.Update(id, func(b *entity.Booking) {
		b.Status = status
	})
	if !ok {
		return nil, repository.ErrBookingNotFound
	}
	r.uow.onRollback(func() { r.store.bookings.Restore(before) })

	return after, nil
}
