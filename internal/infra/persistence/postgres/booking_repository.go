package postgres

import (
	"context"

	"stayscape/internal/domain/entity"
	domainerrors "stayscape/internal/domain/errors"
	"stayscape/internal/domain/repository"
	"stayscape/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookingRepository implements the repository.BookingRepository interface.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// CreateBooking persists a new booking.
func (repo *bookingRepository) CreateBooking(ctx context.Context, booking *entity.Booking) error {
	bookingM := fromBookingDomain(booking)

	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
	}

	booking.ID = bookingM.ID
	booking.CreatedAt = bookingM.CreatedAt

	return nil
}

// FindBookingByID retrieves a booking by ID.
func (repo *bookingRepository) FindBookingByID(ctx context.Context, id int64) (*entity.Booking, error) {
	var bookingM model.BookingModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&bookingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking by id")
	}

	return toBookingDomain(&bookingM), nil
}

// FindBookingsByProperty retrieves every booking of a property.
func (repo *bookingRepository) FindBookingsByProperty(ctx context.Context, propertyID int64) ([]*entity.Booking, error) {
	return repo.findWhere(ctx, "property_id = ?", propertyID)
}

// FindBookingsByUser retrieves every booking placed by a user.
func (repo *bookingRepository) FindBookingsByUser(ctx context.Context, userID int64) ([]*entity.Booking, error) {
	return repo.findWhere(ctx, "user_id = ?", userID)
}

func (repo *bookingRepository) findWhere(ctx context.Context, query string, arg any) ([]*entity.Booking, error) {
	var bookingModels []*model.BookingModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		Order("id ASC").
		Find(&bookingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find bookings")
	}

	bookings := make([]*entity.Booking, 0, len(bookingModels))
	for _, bookingM := range bookingModels {
		bookings = append(bookings, toBookingDomain(bookingM))
	}

	return bookings, nil
}

// UpdateBookingStatus overwrites the status and returns the updated booking.
func (repo *bookingRepository) UpdateBookingStatus(ctx context.Context, id int64, status entity.BookingStatus) (*entity.Booking, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update booking status")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrBookingNotFound
	}

	return repo.FindBookingByID(ctx, id)
}

// --- Mapper Functions ---

func toBookingDomain(data *model.BookingModel) *entity.Booking {
	if data == nil {
		return nil
	}

	return &entity.Booking{
		ID:         data.ID,
		PropertyID: data.PropertyID,
		UserID:     data.UserID,
		StartDate:  data.StartDate.UTC(),
		EndDate:    data.EndDate.UTC(),
		Guests:     data.Guests,
		TotalPrice: data.TotalPrice,
		Status:     entity.BookingStatus(data.Status),
		CreatedAt:  data.CreatedAt,
	}
}

func fromBookingDomain(data *entity.Booking) *model.BookingModel {
	if data == nil {
		return nil
	}

	return &model.BookingModel{
		ID:         data.ID,
		PropertyID: data.PropertyID,
		UserID:     data.UserID,
		StartDate:  data.StartDate,
		EndDate:    data.EndDate,
		Guests:     data.Guests,
		TotalPrice: data.TotalPrice,
		Status:     data.Status.String(),
		CreatedAt:  data.CreatedAt,
	}
}
