package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"stayscape/config"
	deliverycontext "stayscape/internal/delivery/context"
	"stayscape/internal/domain/entity"
	domainerrors "stayscape/internal/domain/errors"
	"stayscape/internal/domain/repository"
	"stayscape/internal/domain/service"
	"stayscape/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultCleaningFee    = 50
	defaultServiceFeeRate = 0.12
)

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	txManager      repository.TransactionManager
	propertyRepo   repository.PropertyRepository
	bookingRepo    repository.BookingRepository
	qrService      service.QRCodeService
	publisher      service.EventPublisher
	policy         entity.ConflictPolicy
	cleaningFee    int
	serviceFeeRate float64
	recomputeTotal bool
	logger         *slog.Logger
}

// BookingServiceParams holds dependencies for BookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PropertyRepo repository.PropertyRepository
	BookingRepo  repository.BookingRepository
	QRService    service.QRCodeService
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewBookingService creates a new booking service.
func NewBookingService(params BookingServiceParams) (usecase.BookingUsecase, error) {
	policy, err := conflictPolicy(params.Config)
	if err != nil {
		return nil, err
	}

	srv := &bookingService{
		txManager:      params.TxManager,
		propertyRepo:   params.PropertyRepo,
		bookingRepo:    params.BookingRepo,
		qrService:      params.QRService,
		publisher:      params.Publisher,
		policy:         policy,
		cleaningFee:    defaultCleaningFee,
		serviceFeeRate: defaultServiceFeeRate,
		logger:         params.Logger,
	}

	if params.Config != nil && params.Config.Booking != nil {
		srv.cleaningFee = params.Config.Booking.CleaningFee
		srv.serviceFeeRate = params.Config.Booking.ServiceFeeRate
		srv.recomputeTotal = params.Config.Booking.RecomputeTotalPrice
	}

	return srv, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBooking places a pending booking after checking the dates against existing bookings.
// The property stays locked from the conflict check until the booking is written.
func (srv *bookingService) CreateBooking(ctx context.Context, input *usecase.CreateBookingInput) (*entity.Booking, error) {
	stay := entity.NewDateRange(input.StartDate, input.EndDate)

	var created *entity.Booking
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		property, err := repoFactory.PropertyRepository().LockPropertyByID(ctx, input.PropertyID)
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return domainerrors.ErrPropertyNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock property")
		}

		if !stay.IsValid() {
			return domainerrors.ErrInvalidDateRange
		}

		bookingRepo := repoFactory.BookingRepository()
		existing, err := bookingRepo.FindBookingsByProperty(ctx, property.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find bookings by property")
		}

		if conflict := findConflict(existing, stay, srv.policy, 0); conflict != nil {
			srv.log(ctx).Info("Booking rejected, dates overlap",
				slog.Int64("propertyID", property.ID),
				slog.Int64("conflictingBookingID", conflict.ID))

			return domainerrors.ErrBookingConflict
		}

		totalPrice := input.TotalPrice
		if srv.recomputeTotal {
			totalPrice = srv.quote(property, stay).Total
		}

		booking := &entity.Booking{
			PropertyID: property.ID,
			UserID:     input.UserID,
			StartDate:  input.StartDate,
			EndDate:    input.EndDate,
			Guests:     input.Guests,
			TotalPrice: totalPrice,
			Status:     entity.BookingStatusPending,
		}
		if err := bookingRepo.CreateBooking(ctx, booking); err != nil {
			return errors.Wrap(err, "failed to create booking")
		}

		created = booking

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute create booking transaction")
	}

	srv.log(ctx).Info("Booking created",
		slog.Int64("bookingID", created.ID),
		slog.Int64("propertyID", created.PropertyID),
		slog.Int64("userID", created.UserID))

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventBookingCreated, created.PropertyID, created.UserID, map[string]any{
		"booking_id":  created.ID,
		"start_date":  created.StartDate,
		"end_date":    created.EndDate,
		"guests":      created.Guests,
		"total_price": created.TotalPrice,
	})

	return created, nil
}

// UpdateBookingStatus overwrites the status of a booking on behalf of its guest or the property's host.
func (srv *bookingService) UpdateBookingStatus(ctx context.Context, input *usecase.UpdateBookingStatusInput) (*entity.Booking, error) {
	var (
		updated  *entity.Booking
		previous entity.BookingStatus
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookingRepo := repoFactory.BookingRepository()

		booking, err := srv.findBookingIn(ctx, bookingRepo, input.BookingID)
		if err != nil {
			return err
		}

		if !input.Status.IsValid() {
			return domainerrors.ErrInvalidBookingStatus.WithDetails("unknown status " + input.Status.String())
		}

		property, err := repoFactory.PropertyRepository().LockPropertyByID(ctx, booking.PropertyID)
		if err != nil && !errors.Is(err, repository.ErrPropertyNotFound) {
			return errors.Wrap(err, "failed to lock property")
		}

		// The first read only locates the property; decide on the status seen under the lock.
		booking, err = srv.findBookingIn(ctx, bookingRepo, input.BookingID)
		if err != nil {
			return err
		}

		if !booking.IsOwnedBy(input.ActorID) && !property.IsHostedBy(input.ActorID) {
			return domainerrors.ErrBookingForbidden
		}

		// A booking whose dates were freed may have been overlapped since.
		if !srv.policy.Blocks(booking.Status) && srv.policy.Blocks(input.Status) {
			siblings, err := bookingRepo.FindBookingsByProperty(ctx, booking.PropertyID)
			if err != nil {
				return errors.Wrap(err, "failed to find bookings by property")
			}
			if findConflict(siblings, booking.Range(), srv.policy, booking.ID) != nil {
				return domainerrors.ErrBookingConflict
			}
		}

		previous = booking.Status
		updated, err = bookingRepo.UpdateBookingStatus(ctx, booking.ID, input.Status)
		if err != nil {
			return errors.Wrap(err, "failed to update booking status")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update booking status transaction")
	}

	srv.log(ctx).Info("Booking status updated",
		slog.Int64("bookingID", updated.ID),
		slog.String("from", previous.String()),
		slog.String("to", updated.Status.String()),
		slog.Int64("actorID", input.ActorID))

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventBookingStatusChanged, updated.PropertyID, input.ActorID, map[string]any{
		"booking_id": updated.ID,
		"from":       previous.String(),
		"to":         updated.Status.String(),
	})

	return updated, nil
}

func (srv *bookingService) findBookingIn(ctx context.Context, bookingRepo repository.BookingRepository, id int64) (*entity.Booking, error) {
	booking, err := bookingRepo.FindBookingByID(ctx, id)
	if errors.Is(err, repository.ErrBookingNotFound) {
		return nil, domainerrors.ErrBookingNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find booking")
	}

	return booking, nil
}

// QuoteBooking prices a stay: nights times the nightly price, the cleaning fee and the service fee.
func (srv *bookingService) QuoteBooking(ctx context.Context, propertyID int64, start, end time.Time) (*usecase.Quote, error) {
	property, err := srv.findProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	stay := entity.NewDateRange(start, end)
	if !stay.IsValid() {
		return nil, domainerrors.ErrInvalidDateRange
	}

	return srv.quote(property, stay), nil
}

func (srv *bookingService) quote(property *entity.Property, stay entity.DateRange) *usecase.Quote {
	nights := stay.Nights()
	subtotal := nights * property.Price
	serviceFee := int(math.Round(srv.serviceFeeRate * float64(subtotal)))

	return &usecase.Quote{
		PropertyID:   property.ID,
		Nights:       nights,
		NightlyPrice: property.Price,
		Subtotal:     subtotal,
		CleaningFee:  srv.cleaningFee,
		ServiceFee:   serviceFee,
		Total:        subtotal + srv.cleaningFee + serviceFee,
	}
}

// GetBooking returns a booking to its guest or to the property's host.
func (srv *bookingService) GetBooking(ctx context.Context, bookingID, actorID int64) (*entity.Booking, error) {
	booking, err := srv.bookingRepo.FindBookingByID(ctx, bookingID)
	if errors.Is(err, repository.ErrBookingNotFound) {
		return nil, domainerrors.ErrBookingNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find booking")
	}

	if booking.IsOwnedBy(actorID) {
		return booking, nil
	}

	property, err := srv.propertyRepo.FindPropertyByID(ctx, booking.PropertyID)
	if err != nil && !errors.Is(err, repository.ErrPropertyNotFound) {
		return nil, errors.Wrap(err, "failed to find property")
	}
	if !property.IsHostedBy(actorID) {
		return nil, domainerrors.ErrBookingForbidden
	}

	return booking, nil
}

// ListUserBookings returns the bookings placed by a user.
func (srv *bookingService) ListUserBookings(ctx context.Context, userID int64) ([]*entity.Booking, error) {
	bookings, err := srv.bookingRepo.FindBookingsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find bookings by user")
	}

	return bookings, nil
}

// ListPropertyBookings returns every booking of a property to its host.
func (srv *bookingService) ListPropertyBookings(ctx context.Context, propertyID, actorID int64) ([]*entity.Booking, error) {
	property, err := srv.findProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if !property.IsHostedBy(actorID) {
		return nil, domainerrors.ErrForbidden.WithDetails("only the host can list bookings of a property")
	}

	bookings, err := srv.bookingRepo.FindBookingsByProperty(ctx, propertyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find bookings by property")
	}

	return bookings, nil
}

// BookingCheckInQR renders the check-in pass of a confirmed booking.
func (srv *bookingService) BookingCheckInQR(ctx context.Context, bookingID, actorID int64) ([]byte, error) {
	booking, err := srv.GetBooking(ctx, bookingID, actorID)
	if err != nil {
		return nil, err
	}

	if booking.Status != entity.BookingStatusConfirmed {
		return nil, domainerrors.ErrBookingNotConfirmed
	}

	png, err := srv.qrService.GenerateCheckInQR(booking.ID, booking.PropertyID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate check-in QR code", slog.Int64("bookingID", booking.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate check-in QR code")
	}

	return png, nil
}

func (srv *bookingService) findProperty(ctx context.Context, propertyID int64) (*entity.Property, error) {
	property, err := srv.propertyRepo.FindPropertyByID(ctx, propertyID)
	if errors.Is(err, repository.ErrPropertyNotFound) {
		return nil, domainerrors.ErrPropertyNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find property")
	}

	return property, nil
}
