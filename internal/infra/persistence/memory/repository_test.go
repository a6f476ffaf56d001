package memory

import (
	"context"
	"testing"

	"stayscape/internal/domain/entity"
	"stayscape/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestUserRepository_DuplicateUsername(t *testing.T) {
	repo := NewUserRepository(NewStore())
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, &entity.User{Username: "alice"}))
	err := repo.CreateUser(ctx, &entity.User{Username: "Alice"})

	assert.ErrorIs(t, err, repository.ErrDuplicateUsername)

	found, err := repo.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.ID)
	assert.False(t, found.CreatedAt.IsZero())

	_, err = repo.FindUserByID(ctx, 5)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestPropertyRepository_CreateResetsDerivedFields(t *testing.T) {
	repo := NewPropertyRepository(NewStore())
	ctx := context.Background()

	property := &entity.Property{Title: "Loft", Rating: intPtr(10), ReviewCount: 3}
	require.NoError(t, repo.CreateProperty(ctx, property))

	stored, err := repo.FindPropertyByID(ctx, property.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Rating)
	assert.Zero(t, stored.ReviewCount)
}

func TestPropertyRepository_ListProperties(t *testing.T) {
	repo := NewPropertyRepository(NewStore())
	ctx := context.Background()

	for _, p := range []*entity.Property{
		{Title: "Cozy Cabin", City: "Aspen", State: "CO", Country: "USA", Price: 150, Bedrooms: 2, Bathrooms: 1, PropertyType: "cabin", HostID: 1},
		{Title: "City Loft", City: "New York", State: "NY", Country: "USA", Price: 300, Bedrooms: 1, Bathrooms: 1, PropertyType: "apartment", HostID: 2},
		{Title: "Beach Villa", Description: "Ocean views", City: "Malibu", State: "CA", Country: "USA", Price: 500, Bedrooms: 4, Bathrooms: 3, PropertyType: "villa", HostID: 1},
	} {
		require.NoError(t, repo.CreateProperty(ctx, p))
	}

	tests := []struct {
		name   string
		filter repository.PropertyFilter
		want   []string
	}{
		{name: "no filter", filter: repository.PropertyFilter{}, want: []string{"Cozy Cabin", "City Loft", "Beach Villa"}},
		{name: "search matches description", filter: repository.PropertyFilter{Search: "ocean"}, want: []string{"Beach Villa"}},
		{name: "search ignores structured filters", filter: repository.PropertyFilter{Search: "loft", MinPrice: intPtr(1000)}, want: []string{"City Loft"}},
		{name: "price window", filter: repository.PropertyFilter{MinPrice: intPtr(150), MaxPrice: intPtr(300)}, want: []string{"Cozy Cabin", "City Loft"}},
		{name: "minimum bedrooms", filter: repository.PropertyFilter{Bedrooms: intPtr(2)}, want: []string{"Cozy Cabin", "Beach Villa"}},
		{name: "minimum bathrooms", filter: repository.PropertyFilter{Bathrooms: intPtr(2)}, want: []string{"Beach Villa"}},
		{name: "property type", filter: repository.PropertyFilter{PropertyType: "apartment"}, want: []string{"City Loft"}},
		{name: "location", filter: repository.PropertyFilter{Location: "ny"}, want: []string{"City Loft"}},
		{name: "host", filter: repository.PropertyFilter{HostID: func() *int64 { v := int64(1); return &v }()}, want: []string{"Cozy Cabin", "Beach Villa"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ListProperties(ctx, tt.filter)
			require.NoError(t, err)

			titles := make([]string, 0, len(got))
			for _, p := range got {
				titles = append(titles, p.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestPropertyRepository_UpdateProperty(t *testing.T) {
	repo := NewPropertyRepository(NewStore())
	ctx := context.Background()

	property := &entity.Property{Title: "Old", Price: 100, Images: []string{"a.jpg"}}
	require.NoError(t, repo.CreateProperty(ctx, property))

	title := "New"
	updated, err := repo.UpdateProperty(ctx, property.ID, repository.PropertyPatch{Title: &title, Images: []string{"b.jpg", "c.jpg"}})
	require.NoError(t, err)

	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, 100, updated.Price)
	assert.Equal(t, []string{"b.jpg", "c.jpg"}, updated.Images)

	_, err = repo.UpdateProperty(ctx, 404, repository.PropertyPatch{})
	assert.ErrorIs(t, err, repository.ErrPropertyNotFound)
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	repo := NewBookingRepository(NewStore())
	ctx := context.Background()

	booking := &entity.Booking{PropertyID: 1, UserID: 2, Status: entity.BookingStatusPending}
	require.NoError(t, repo.CreateBooking(ctx, booking))

	updated, err := repo.UpdateBookingStatus(ctx, booking.ID, entity.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, updated.Status)

	byUser, err := repo.FindBookingsByUser(ctx, 2)
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, entity.BookingStatusConfirmed, byUser[0].Status)

	_, err = repo.UpdateBookingStatus(ctx, 99, entity.BookingStatusCancelled)
	assert.ErrorIs(t, err, repository.ErrBookingNotFound)
}

func TestFavoriteRepository_Idempotent(t *testing.T) {
	repo := NewFavoriteRepository(NewStore())
	ctx := context.Background()

	first, err := repo.CreateFavorite(ctx, &entity.Favorite{UserID: 1, PropertyID: 2})
	require.NoError(t, err)
	second, err := repo.CreateFavorite(ctx, &entity.Favorite{UserID: 1, PropertyID: 2})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	list, err := repo.FindFavoritesByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.DeleteFavorite(ctx, 1, 2))
	assert.ErrorIs(t, repo.DeleteFavorite(ctx, 1, 2), repository.ErrFavoriteNotFound)
}
