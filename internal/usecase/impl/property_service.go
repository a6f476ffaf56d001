package impl

import (
	"context"
	"log/slog"

	deliverycontext "stayscape/internal/delivery/context"
	"stayscape/internal/domain/entity"
	domainerrors "stayscape/internal/domain/errors"
	"stayscape/internal/domain/repository"
	"stayscape/internal/domain/service"
	"stayscape/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const metersPerKm = 1000.0

// propertyService implements the PropertyUsecase interface.
type propertyService struct {
	propertyRepo repository.PropertyRepository
	cache        service.PropertyCache
	logger       *slog.Logger
}

// PropertyServiceParams holds dependencies for PropertyService, injected by Fx.
type PropertyServiceParams struct {
	fx.In

	PropertyRepo repository.PropertyRepository
	Cache        service.PropertyCache
	Logger       *slog.Logger
}

// NewPropertyService creates a new property service.
func NewPropertyService(params PropertyServiceParams) usecase.PropertyUsecase {
	return &propertyService{
		propertyRepo: params.PropertyRepo,
		cache:        params.Cache,
		logger:       params.Logger,
	}
}

func (srv *propertyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProperty lists a new property for the host. Rating fields always start empty.
func (srv *propertyService) CreateProperty(ctx context.Context, hostID int64, input *usecase.PropertyInput) (*entity.Property, error) {
	property := &entity.Property{
		Title:        input.Title,
		Description:  input.Description,
		Price:        input.Price,
		Location:     input.Location,
		City:         input.City,
		State:        input.State,
		Country:      input.Country,
		Bedrooms:     input.Bedrooms,
		Bathrooms:    input.Bathrooms,
		Guests:       input.Guests,
		Images:       input.Images,
		Amenities:    input.Amenities,
		HostID:       hostID,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		PropertyType: input.PropertyType,
	}

	if err := srv.propertyRepo.CreateProperty(ctx, property); err != nil {
		srv.log(ctx).Error("Failed to create property", slog.Int64("hostID", hostID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create property")
	}

	srv.log(ctx).Info("Property created", slog.Int64("propertyID", property.ID), slog.Int64("hostID", hostID))

	return property, nil
}

// GetProperty reads through the property cache.
func (srv *propertyService) GetProperty(ctx context.Context, id int64) (*entity.Property, error) {
	if property, ok := srv.cache.Get(ctx, id); ok {
		return property, nil
	}

	property, err := srv.findProperty(ctx, id)
	if err != nil {
		return nil, err
	}

	srv.cache.Set(ctx, property)

	return property, nil
}

// UpdateProperty applies a patch on behalf of the host.
func (srv *propertyService) UpdateProperty(ctx context.Context, id, actorID int64, patch repository.PropertyPatch) (*entity.Property, error) {
	if err := srv.authorizeHost(ctx, id, actorID); err != nil {
		return nil, err
	}

	property, err := srv.propertyRepo.UpdateProperty(ctx, id, patch)
	if errors.Is(err, repository.ErrPropertyNotFound) {
		return nil, domainerrors.ErrPropertyNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update property")
	}

	srv.cache.Invalidate(ctx, id)
	srv.log(ctx).Info("Property updated", slog.Int64("propertyID", id))

	return property, nil
}

// DeleteProperty removes a listing on behalf of the host. Bookings, reviews and favorites stay.
func (srv *propertyService) DeleteProperty(ctx context.Context, id, actorID int64) error {
	if err := srv.authorizeHost(ctx, id, actorID); err != nil {
		return err
	}

	err := srv.propertyRepo.DeleteProperty(ctx, id)
	if errors.Is(err, repository.ErrPropertyNotFound) {
		return domainerrors.ErrPropertyNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete property")
	}

	srv.cache.Invalidate(ctx, id)
	srv.log(ctx).Info("Property deleted", slog.Int64("propertyID", id))

	return nil
}

// ListProperties applies the store filter, then the optional proximity search.
// Properties without coordinates never match a proximity search.
func (srv *propertyService) ListProperties(ctx context.Context, input *usecase.ListPropertiesInput) ([]*entity.Property, error) {
	properties, err := srv.propertyRepo.ListProperties(ctx, input.Filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list properties")
	}

	if input.Near == nil {
		return properties, nil
	}

	radiusKm := input.RadiusKm
	if radiusKm <= 0 {
		radiusKm = usecase.DefaultSearchRadiusKm
	}

	center := orb.Point{input.Near.Longitude, input.Near.Latitude}
	nearby := make([]*entity.Property, 0, len(properties))
	for _, p := range properties {
		if !p.HasCoordinates() {
			continue
		}
		if geo.DistanceHaversine(center, orb.Point{*p.Longitude, *p.Latitude}) <= radiusKm*metersPerKm {
			nearby = append(nearby, p)
		}
	}

	return nearby, nil
}

// ListHostProperties returns the listings owned by a host.
func (srv *propertyService) ListHostProperties(ctx context.Context, hostID int64) ([]*entity.Property, error) {
	properties, err := srv.propertyRepo.ListProperties(ctx, repository.PropertyFilter{HostID: &hostID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list host properties")
	}

	return properties, nil
}

func (srv *propertyService) findProperty(ctx context.Context, id int64) (*entity.Property, error) {
	property, err := srv.propertyRepo.FindPropertyByID(ctx, id)
	if errors.Is(err, repository.ErrPropertyNotFound) {
		return nil, domainerrors.ErrPropertyNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find property")
	}

	return property, nil
}

func (srv *propertyService) authorizeHost(ctx context.Context, id, actorID int64) error {
	property, err := srv.findProperty(ctx, id)
	if err != nil {
		return err
	}

	if !property.IsHostedBy(actorID) {
		srv.log(ctx).Warn("Rejected property change from non-host", slog.Int64("propertyID", id), slog.Int64("actorID", actorID))

		return domainerrors.ErrForbidden.WithDetails("only the host can change this property")
	}

	return nil
}
