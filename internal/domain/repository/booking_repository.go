package repository

import (
	"context"

	"stayscape/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrBookingNotFound is returned when a booking is not found.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository defines the interface for booking-related database operations.
type BookingRepository interface {
	// CreateBooking persists a new booking and assigns its ID.
	CreateBooking(ctx context.Context, booking *entity.Booking) error

	// FindBookingByID retrieves a booking by its ID.
	FindBookingByID(ctx context.Context, id int64) (*entity.Booking, error)

	// FindBookingsByProperty retrieves all bookings of a property, whatever their status.
	FindBookingsByProperty(ctx context.Context, propertyID int64) ([]*entity.Booking, error)

	// FindBookingsByUser retrieves all bookings placed by a user.
	FindBookingsByUser(ctx context.Context, userID int64) ([]*entity.Booking, error)

	// UpdateBookingStatus overwrites the status of a booking.
	UpdateBookingStatus(ctx context.Context, id int64, status entity.BookingStatus) (*entity.Booking, error)
}
