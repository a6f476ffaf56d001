package usecase

import (
	"context"
	"time"

	"stayscape/internal/domain/entity"
)

// CreateBookingInput defines the data required to place a booking.
type CreateBookingInput struct {
	PropertyID int64
	UserID     int64
	StartDate  time.Time
	EndDate    time.Time
	Guests     int
	TotalPrice int
}

// UpdateBookingStatusInput defines a status change requested by a user.
type UpdateBookingStatusInput struct {
	BookingID int64
	ActorID   int64
	Status    entity.BookingStatus
}

// Quote is the server-side price breakdown of a stay.
type Quote struct {
	PropertyID   int64 `json:"property_id"`
	Nights       int   `json:"nights"`
	NightlyPrice int   `json:"nightly_price"`
	Subtotal     int   `json:"subtotal"`
	CleaningFee  int   `json:"cleaning_fee"`
	ServiceFee   int   `json:"service_fee"`
	Total        int   `json:"total"`
}

// BookingUsecase defines the interface for the booking lifecycle.
type BookingUsecase interface {
	CreateBooking(ctx context.Context, input *CreateBookingInput) (*entity.Booking, error)
	UpdateBookingStatus(ctx context.Context, input *UpdateBookingStatusInput) (*entity.Booking, error)
	QuoteBooking(ctx context.Context, propertyID int64, start, end time.Time) (*Quote, error)
	GetBooking(ctx context.Context, bookingID, actorID int64) (*entity.Booking, error)
	ListUserBookings(ctx context.Context, userID int64) ([]*entity.Booking, error)
	ListPropertyBookings(ctx context.Context, propertyID, actorID int64) ([]*entity.Booking, error)

	// BookingCheckInQR renders a PNG check-in code for a confirmed booking.
	BookingCheckInQR(ctx context.Context, bookingID, actorID int64) ([]byte, error)
}
