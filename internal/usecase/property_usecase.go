package usecase

import (
	"context"

	"stayscape/internal/domain/entity"
	"stayscape/internal/domain/repository"
)

// PropertyInput holds the client-supplied fields of a new listing.
type PropertyInput struct {
	Title        string   `validate:"required,max=200"`
	Description  string   `validate:"required"`
	Price        int      `validate:"gte=0"`
	Location     string   `validate:"required"`
	City         string   `validate:"required"`
	State        string   `validate:"required"`
	Country      string   `validate:"required"`
	Bedrooms     int      `validate:"gte=0"`
	Bathrooms    int      `validate:"gte=0"`
	Guests       int      `validate:"gte=1"`
	Images       []string `validate:"dive,url"`
	Amenities    []string
	Latitude     *float64 `validate:"omitempty,latitude"`
	Longitude    *float64 `validate:"omitempty,longitude"`
	PropertyType string   `validate:"required"`
}

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// ListPropertiesInput combines store-level filters with a proximity search.
type ListPropertiesInput struct {
	Filter   repository.PropertyFilter
	Near     *GeoPoint
	RadiusKm float64 // Defaults to DefaultSearchRadiusKm when Near is set.
}

// DefaultSearchRadiusKm bounds a proximity search without an explicit radius.
const DefaultSearchRadiusKm = 25.0

// PropertyUsecase defines the interface for the listing catalogue.
type PropertyUsecase interface {
	CreateProperty(ctx context.Context, hostID int64, input *PropertyInput) (*entity.Property, error)
	GetProperty(ctx context.Context, id int64) (*entity.Property, error)
	UpdateProperty(ctx context.Context, id, actorID int64, patch repository.PropertyPatch) (*entity.Property, error)
	DeleteProperty(ctx context.Context, id, actorID int64) error
	ListProperties(ctx context.Context, input *ListPropertiesInput) ([]*entity.Property, error)
	ListHostProperties(ctx context.Context, hostID int64) ([]*entity.Property, error)
}
