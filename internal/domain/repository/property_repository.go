package repository

import (
	"context"

	"stayscape/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrPropertyNotFound is returned when a property is not found.
var ErrPropertyNotFound = errors.New("property not found")

// PropertyFilter narrows ListProperties. Zero-valued fields are ignored.
type PropertyFilter struct {
	Search       string // Case-insensitive substring over title, description, location, city, state, country.
	MinPrice     *int
	MaxPrice     *int
	Bedrooms     *int // Minimum bedrooms.
	Bathrooms    *int // Minimum bathrooms.
	PropertyType string
	Location     string // Case-insensitive substring over city, state, country.
	HostID       *int64
}

// PropertyPatch lists the client-editable fields of a property. Nil fields are left unchanged.
type PropertyPatch struct {
	Title        *string
	Description  *string
	Price        *int
	Location     *string
	City         *string
	State        *string
	Country      *string
	Bedrooms     *int
	Bathrooms    *int
	Guests       *int
	Images       []string
	Amenities    []string
	Latitude     *float64
	Longitude    *float64
	PropertyType *string
}

// PropertyRepository defines the interface for property-related database operations.
type PropertyRepository interface {
	// CreateProperty persists a new property and assigns its ID.
	CreateProperty(ctx context.Context, property *entity.Property) error

	// FindPropertyByID retrieves a property by its ID.
	FindPropertyByID(ctx context.Context, id int64) (*entity.Property, error)

	// LockPropertyByID retrieves a property and holds exclusive access to it until
	// the surrounding unit of work ends. Outside a unit of work it behaves like FindPropertyByID.
	LockPropertyByID(ctx context.Context, id int64) (*entity.Property, error)

	// ListProperties returns properties matching the filter ordered by ID.
	ListProperties(ctx context.Context, filter PropertyFilter) ([]*entity.Property, error)

	// UpdateProperty applies a patch to the client-editable fields.
	UpdateProperty(ctx context.Context, id int64, patch PropertyPatch) (*entity.Property, error)

	// UpdateRatingSummary overwrites the derived rating fields.
	UpdateRatingSummary(ctx context.Context, id int64, summary entity.RatingSummary) error

	// DeleteProperty removes a property. Bookings, reviews and favorites are left in place.
	DeleteProperty(ctx context.Context, id int64) error
}
