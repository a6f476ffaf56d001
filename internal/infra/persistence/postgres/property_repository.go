package postgres

import (
	"context"
	"encoding/json"
	"strings"

	"stayscape/internal/domain/entity"
	domainerrors "stayscape/internal/domain/errors"
	"stayscape/internal/domain/repository"
	"stayscape/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// propertyRepository implements the repository.PropertyRepository interface.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository is the constructor for propertyRepository.
func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

// CreateProperty persists a new property. Derived rating fields always start empty.
func (repo *propertyRepository) CreateProperty(ctx context.Context, property *entity.Property) error {
	property.Rating = nil
	property.ReviewCount = 0

	propertyM, err := fromPropertyDomain(property)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(propertyM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required property information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create property")
	}

	property.ID = propertyM.ID
	property.CreatedAt = propertyM.CreatedAt

	return nil
}

// FindPropertyByID retrieves a property by ID.
func (repo *propertyRepository) FindPropertyByID(ctx context.Context, id int64) (*entity.Property, error) {
	return repo.findByID(ctx, repo.db.WithContext(ctx), id)
}

// LockPropertyByID reads the property row with SELECT ... FOR UPDATE.
// The row lock lasts until the surrounding transaction ends.
func (repo *propertyRepository) LockPropertyByID(ctx context.Context, id int64) (*entity.Property, error) {
	return repo.findByID(ctx, repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (repo *propertyRepository) findByID(_ context.Context, q *gorm.DB, id int64) (*entity.Property, error) {
	var propertyM model.PropertyModel

	if err := q.Where("id = ?", id).First(&propertyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property by id")
	}

	return toPropertyDomain(&propertyM)
}

// ListProperties returns properties matching the filter ordered by ID.
func (repo *propertyRepository) ListProperties(ctx context.Context, filter repository.PropertyFilter) ([]*entity.Property, error) {
	var propertyModels []*model.PropertyModel

	if err := applyPropertyFilter(repo.db.WithContext(ctx), filter).
		Order("id ASC").
		Find(&propertyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list properties")
	}

	properties := make([]*entity.Property, 0, len(propertyModels))
	for _, propertyM := range propertyModels {
		property, err := toPropertyDomain(propertyM)
		if err != nil {
			return nil, err
		}
		properties = append(properties, property)
	}

	return properties, nil
}

// UpdateProperty applies the non-nil patch fields and returns the updated row.
func (repo *propertyRepository) UpdateProperty(ctx context.Context, id int64, patch repository.PropertyPatch) (*entity.Property, error) {
	updates, err := patchColumns(patch)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.PropertyModel{}).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update property")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrPropertyNotFound
		}
	}

	return repo.FindPropertyByID(ctx, id)
}

// UpdateRatingSummary overwrites rating and review_count.
func (repo *propertyRepository) UpdateRatingSummary(ctx context.Context, id int64, summary entity.RatingSummary) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating":       summary.Rating,
			"review_count": summary.ReviewCount,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update rating summary")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

// DeleteProperty removes a property row. Dependent rows are kept.
func (repo *propertyRepository) DeleteProperty(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PropertyModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete property")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

func applyPropertyFilter(q *gorm.DB, f repository.PropertyFilter) *gorm.DB {
	if f.HostID != nil {
		q = q.Where("host_id = ?", *f.HostID)
	}

	// A search term replaces the structured filters.
	if f.Search != "" {
		like := "%" + escapeLike(f.Search) + "%"

		return q.Where(
			"(title ILIKE ? OR description ILIKE ? OR location ILIKE ? OR city ILIKE ? OR state ILIKE ? OR country ILIKE ?)",
			like, like, like, like, like, like,
		)
	}

	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.Bedrooms != nil {
		q = q.Where("bedrooms >= ?", *f.Bedrooms)
	}
	if f.Bathrooms != nil {
		q = q.Where("bathrooms >= ?", *f.Bathrooms)
	}
	if f.PropertyType != "" {
		q = q.Where("property_type = ?", f.PropertyType)
	}
	if f.Location != "" {
		like := "%" + escapeLike(f.Location) + "%"
		q = q.Where("(city ILIKE ? OR state ILIKE ? OR country ILIKE ?)", like, like, like)
	}

	return q
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func patchColumns(patch repository.PropertyPatch) (map[string]any, error) {
	updates := make(map[string]any)
	setColumn(updates, "title", patch.Title)
	setColumn(updates, "description", patch.Description)
	setColumn(updates, "price", patch.Price)
	setColumn(updates, "location", patch.Location)
	setColumn(updates, "city", patch.City)
	setColumn(updates, "state", patch.State)
	setColumn(updates, "country", patch.Country)
	setColumn(updates, "bedrooms", patch.Bedrooms)
	setColumn(updates, "bathrooms", patch.Bathrooms)
	setColumn(updates, "guests", patch.Guests)
	setColumn(updates, "latitude", patch.Latitude)
	setColumn(updates, "longitude", patch.Longitude)
	setColumn(updates, "property_type", patch.PropertyType)

	if patch.Images != nil {
		images, err := toJSONList(patch.Images)
		if err != nil {
			return nil, err
		}
		updates["images"] = images
	}
	if patch.Amenities != nil {
		amenities, err := toJSONList(patch.Amenities)
		if err != nil {
			return nil, err
		}
		updates["amenities"] = amenities
	}

	return updates, nil
}

func setColumn[T any](updates map[string]any, column string, value *T) {
	if value != nil {
		updates[column] = *value
	}
}

func toJSONList(values []string) (datatypes.JSON, error) {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode list column")
	}

	return datatypes.JSON(raw), nil
}

func fromJSONList(raw datatypes.JSON) ([]string, error) {
	values := []string{}
	if len(raw) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, errors.Wrap(err, "failed to decode list column")
	}

	return values, nil
}

// --- Mapper Functions ---

func toPropertyDomain(data *model.PropertyModel) (*entity.Property, error) {
	images, err := fromJSONList(data.Images)
	if err != nil {
		return nil, err
	}
	amenities, err := fromJSONList(data.Amenities)
	if err != nil {
		return nil, err
	}

	return &entity.Property{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		Price:        data.Price,
		Location:     data.Location,
		City:         data.City,
		State:        data.State,
		Country:      data.Country,
		Bedrooms:     data.Bedrooms,
		Bathrooms:    data.Bathrooms,
		Guests:       data.Guests,
		Images:       images,
		Amenities:    amenities,
		HostID:       data.HostID,
		Rating:       data.Rating,
		ReviewCount:  data.ReviewCount,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		PropertyType: data.PropertyType,
		CreatedAt:    data.CreatedAt,
	}, nil
}

func fromPropertyDomain(data *entity.Property) (*model.PropertyModel, error) {
	images, err := toJSONList(data.Images)
	if err != nil {
		return nil, err
	}
	amenities, err := toJSONList(data.Amenities)
	if err != nil {
		return nil, err
	}

	return &model.PropertyModel{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		Price:        data.Price,
		Location:     data.Location,
		City:         data.City,
		State:        data.State,
		Country:      data.Country,
		Bedrooms:     data.Bedrooms,
		Bathrooms:    data.Bathrooms,
		Guests:       data.Guests,
		Images:       images,
		Amenities:    amenities,
		HostID:       data.HostID,
		Rating:       data.Rating,
		ReviewCount:  data.ReviewCount,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		PropertyType: data.PropertyType,
		CreatedAt:    data.CreatedAt,
	}, nil
}
