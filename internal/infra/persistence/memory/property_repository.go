package memory

import (
	"context"
	"strings"

	"stayscape/internal/domain/entity"
	"stayscape/internal/domain/repository"
)

type propertyRepository struct {
	store *Store
	uow   *unitOfWork
}

// NewPropertyRepository creates a property repository outside any unit of work.
func NewPropertyRepository(store *Store) repository.PropertyRepository {
	return &propertyRepository{store: store}
}

func (r *propertyRepository) CreateProperty(_ context.Context, property *entity.Property) error {
	r.store.stamp(&property.CreatedAt)
	property.Rating = nil
	property.ReviewCount = 0

	created := r.store.properties.Create(property)
	r.uow.onRollback(func() { r.store.properties.Delete(created.ID) })

	return nil
}

func (r *propertyRepository) FindPropertyByID(_ context.Context, id int64) (*entity.Property, error) {
	property, ok := r.store.properties.Get(id)
	if !ok {
		return nil, repository.ErrPropertyNotFound
	}

	return property, nil
}

// LockPropertyByID takes the property's mutex before reading it. The mutex is held
// until the unit of work ends, so a missing property still serializes callers on its ID.
func (r *propertyRepository) LockPropertyByID(ctx context.Context, id int64) (*entity.Property, error) {
	if err := r.uow.lockProperty(ctx, id); err != nil {
		return nil, err
	}

	return r.FindPropertyByID(ctx, id)
}

func (r *propertyRepository) ListProperties(_ context.Context, filter repository.PropertyFilter) ([]*entity.Property, error) {
	return r.store.properties.Where(func(p *entity.Property) bool {
		return matchesFilter(p, filter)
	}), nil
}

func (r *propertyRepository) UpdateProperty(_ context.Context, id int64, patch repository.PropertyPatch) (*entity.Property, error) {
	before, after, ok := r.store.properties.Update(id, func(p *entity.Property) {
		applyPatch(p, patch)
	})
	if !ok {
		return nil, repository.ErrPropertyNotFound
	}
	r.uow.onRollback(func() { r.store.properties.Restore(before) })

	return after, nil
}

func (r *propertyRepository) UpdateRatingSummary(_ context.Context, id int64, summary entity.RatingSummary) error {
	before, _, ok := r.store.properties.Update(id, func(p *entity.Property) {
		p.Rating = summary.Rating
		p.ReviewCount = summary.ReviewCount
	})
	if !ok {
		return repository.ErrPropertyNotFound
	}
	r.uow.onRollback(func() { r.store.properties.Restore(before) })

	return nil
}

func (r *propertyRepository) DeleteProperty(_ context.Context, id int64) error {
	removed, ok := r.store.properties.Delete(id)
	if !ok {
		return repository.ErrPropertyNotFound
	}
	r.uow.onRollback(func() { r.store.properties.Restore(removed) })

	return nil
}

func applyPatch(p *entity.Property, patch repository.PropertyPatch) {
	setIf(&p.Title, patch.Title)
	setIf(&p.Description, patch.Description)
	setIf(&p.Price, patch.Price)
	setIf(&p.Location, patch.Location)
	setIf(&p.City, patch.City)
	setIf(&p.State, patch.State)
	setIf(&p.Country, patch.Country)
	setIf(&p.Bedrooms, patch.Bedrooms)
	setIf(&p.Bathrooms, patch.Bathrooms)
	setIf(&p.Guests, patch.Guests)
	setIf(&p.PropertyType, patch.PropertyType)
	if patch.Images != nil {
		p.Images = append([]string(nil), patch.Images...)
	}
	if patch.Amenities != nil {
		p.Amenities = append([]string(nil), patch.Amenities...)
	}
	if patch.Latitude != nil {
		lat := *patch.Latitude
		p.Latitude = &lat
	}
	if patch.Longitude != nil {
		lon := *patch.Longitude
		p.Longitude = &lon
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func matchesFilter(p *entity.Property, f repository.PropertyFilter) bool {
	if f.HostID != nil && p.HostID != *f.HostID {
		return false
	}

	// A search term replaces the structured filters.
	if f.Search != "" {
		return containsFold(f.Search, p.Title, p.Description, p.Location, p.City, p.State, p.Country)
	}

	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Bedrooms != nil && p.Bedrooms < *f.Bedrooms {
		return false
	}
	if f.Bathrooms != nil && p.Bathrooms < *f.Bathrooms {
		return false
	}
	if f.PropertyType != "" && p.PropertyType != f.PropertyType {
		return false
	}
	if f.Location != "" && !containsFold(f.Location, p.City, p.State, p.Country) {
		return false
	}

	return true
}

func containsFold(needle string, fields ...string) bool {
	needle = strings.ToLower(needle)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}

	return false
}
