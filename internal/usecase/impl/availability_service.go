package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"stayscape/config"
	deliverycontext "stayscape/internal/delivery/context"
	"stayscape/internal/domain/entity"
	domainerrors "stayscape/internal/domain/errors"
	"stayscape/internal/domain/repository"
	"stayscape/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// availabilityService implements the AvailabilityUsecase interface.
type availabilityService struct {
	propertyRepo repository.PropertyRepository
	bookingRepo  repository.BookingRepository
	policy       entity.ConflictPolicy
	logger       *slog.Logger
}

// AvailabilityServiceParams holds dependencies for AvailabilityService, injected by Fx.
type AvailabilityServiceParams struct {
	fx.In

	PropertyRepo repository.PropertyRepository
	BookingRepo  repository.BookingRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAvailabilityService creates a new availability service.
func NewAvailabilityService(params AvailabilityServiceParams) (usecase.AvailabilityUsecase, error) {
	policy, err := conflictPolicy(params.Config)
	if err != nil {
		return nil, err
	}

	return &availabilityService{
		propertyRepo: params.PropertyRepo,
		bookingRepo:  params.BookingRepo,
		policy:       policy,
		logger:       params.Logger,
	}, nil
}

func conflictPolicy(cfg *config.Config) (entity.ConflictPolicy, error) {
	if cfg == nil || cfg.Booking == nil {
		return entity.ConflictPolicyAll, nil
	}

	policy, err := entity.ParseConflictPolicy(cfg.Booking.ConflictPolicy)
	if err != nil {
		return "", errors.Wrap(err, "invalid booking configuration")
	}

	return policy, nil
}

// findConflict returns the first booking that blocks r under the policy, or nil.
// The booking with skipID is ignored so a booking never conflicts with itself.
func findConflict(bookings []*entity.Booking, r entity.DateRange, policy entity.ConflictPolicy, skipID int64) *entity.Booking {
	for _, b := range bookings {
		if b.ID == skipID || !policy.Blocks(b.Status) {
			continue
		}
		if b.Range().Overlaps(r) {
			return b
		}
	}

	return nil
}

func (srv *availabilityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HasConflict reports whether [start, end) overlaps any blocking booking of the property.
func (srv *availabilityService) HasConflict(ctx context.Context, propertyID int64, start, end time.Time) (bool, error) {
	bookings, err := srv.bookingRepo.FindBookingsByProperty(ctx, propertyID)
	if err != nil {
		return false, errors.Wrap(err, "failed to find bookings by property")
	}

	return findConflict(bookings, entity.NewDateRange(start, end), srv.policy, 0) != nil, nil
}

// CheckAvailability validates the request and reports whether the dates are free.
func (srv *availabilityService) CheckAvailability(ctx context.Context, propertyID int64, start, end time.Time) (*usecase.AvailabilityOutput, error) {
	if _, err := srv.propertyRepo.FindPropertyByID(ctx, propertyID); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property")
	}

	if !entity.NewDateRange(start, end).IsValid() {
		return nil, domainerrors.ErrInvalidDateRange
	}

	conflict, err := srv.HasConflict(ctx, propertyID, start, end)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Checked availability",
		slog.Int64("propertyID", propertyID),
		slog.Time("start", start),
		slog.Time("end", end),
		slog.Bool("available", !conflict))

	return &usecase.AvailabilityOutput{
		PropertyID: propertyID,
		StartDate:  start,
		EndDate:    end,
		Available:  !conflict,
	}, nil
}

// BlockedRanges returns the occupied ranges of a property for calendar display.
func (srv *availabilityService) BlockedRanges(ctx context.Context, propertyID int64) ([]entity.DateRange, error) {
	if _, err := srv.propertyRepo.FindPropertyByID(ctx, propertyID); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property")
	}

	bookings, err := srv.bookingRepo.FindBookingsByProperty(ctx, propertyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find bookings by property")
	}

	ranges := make([]entity.DateRange, 0, len(bookings))
	for _, b := range bookings {
		if srv.policy.Blocks(b.Status) {
			ranges = append(ranges, b.Range())
		}
	}

	slices.SortFunc(ranges, func(a, b entity.DateRange) int {
		return a.Start.Compare(b.Start)
	})

	return ranges, nil
}
