package memory

import (
	"context"

	"stayscape/internal/domain/repository"
)

// unitOfWork tracks the locks and undo steps of one Execute call.
// A nil *unitOfWork means "no unit of work": locks are skipped and nothing is recorded.
type unitOfWork struct {
	store *Store
	held  []int64
	undo  []func()
}

func (u *unitOfWork) lockProperty(ctx context.Context, id int64) error {
	if u == nil {
		return nil
	}
	for _, h := range u.held {
		if h == id {
			return nil
		}
	}
	if err := u.store.locks.acquire(ctx, id); err != nil {
		return err
	}
	u.held = append(u.held, id)

	return nil
}

func (u *unitOfWork) onRollback(fn func()) {
	if u == nil {
		return
	}
	u.undo = append(u.undo, fn)
}

func (u *unitOfWork) rollback() {
	for i := len(u.undo) - 1; i >= 0; i-- {
		u.undo[i]()
	}
	u.undo = nil
}

func (u *unitOfWork) releaseLocks() {
	for _, id := range u.held {
		u.store.locks.release(id)
	}
	u.held = nil
}

// repositoryFactory hands out repositories bound to a unit of work.
type repositoryFactory struct {
	store *Store
	uow   *unitOfWork
}

// UserRepository returns the user repository bound to the unit of work.
func (f *repositoryFactory) UserRepository() repository.UserRepository {
	return &userRepository{store: f.store, uow: f.uow}
}

// PropertyRepository returns the property repository bound to the unit of work.
func (f *repositoryFactory) PropertyRepository() repository.PropertyRepository {
	return &propertyRepository{store: f.store, uow: f.uow}
}

// BookingRepository returns the booking repository bound to the unit of work.
func (f *repositoryFactory) BookingRepository() repository.BookingRepository {
	return &bookingRepository{store: f.store, uow: f.uow}
}

// ReviewRepository returns the review repository bound to the unit of work.
func (f *repositoryFactory) ReviewRepository() repository.ReviewRepository {
	return &reviewRepository{store: f.store, uow: f.uow}
}

// FavoriteRepository returns the favorite repository bound to the unit of work.
func (f *repositoryFactory) FavoriteRepository() repository.FavoriteRepository {
	return &favoriteRepository{store: f.store, uow: f.uow}
}

// transactionManager implements repository.TransactionManager on top of a Store.
type transactionManager struct {
	store *Store
}

// NewTransactionManager creates a transaction manager for the store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn in a unit of work. Property locks taken inside fn are held until
// Execute returns, and every write is undone if fn fails or panics.
// Writes are visible to other readers before Execute returns.
func (tm *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	uow := &unitOfWork{store: tm.store}
	defer uow.releaseLocks()

	defer func() {
		if r := recover(); r != nil {
			uow.rollback()
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{store: tm.store, uow: uow}); err != nil {
		uow.rollback()

		return err
	}

	return nil
}
