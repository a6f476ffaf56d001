package repository

import "context"

// TransactionManager defines the interface for managing units of work.
// This allows the use case layer to handle transactions without depending on a specific store.
type TransactionManager interface {
	// Execute runs a function within a unit of work.
	// If the function returns an error, all writes are rolled back. Otherwise, they're committed.
	// Exclusive locks taken through the factory are held until Execute returns.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a single unit of work.
type RepositoryFactory interface {
	UserRepository() UserRepository
	PropertyRepository() PropertyRepository
	BookingRepository() BookingRepository
	ReviewRepository() ReviewRepository
	FavoriteRepository() FavoriteRepository
}
