package memory

import (
	"context"
	"strings"

	"stayscape/internal/domain/entity"
	"stayscape/internal/domain/repository"
)

type userRepository struct {
	store *Store
	uow   *unitOfWork
}

// NewUserRepository creates a user repository outside any unit of work.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

// CreateUser stores the user unless the username is taken (compared case-insensitively).
func (r *userRepository) CreateUser(_ context.Context, user *entity.User) error {
	r.store.stamp(&user.CreatedAt)

	created, ok := r.store.users.CreateUnique(user, func(existing *entity.User) bool {
		return strings.EqualFold(existing.Username, user.Username)
	})
	if !ok {
		return repository.ErrDuplicateUsername
	}

	r.uow.onRollback(func() { r.store.users.Delete(created.ID) })

	return nil
}

// FindUserByID retrieves a user by ID.
func (r *userRepository) FindUserByID(_ context.Context, id int64) (*entity.User, error) {
	user, ok := r.store.users.Get(id)
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

// FindUserByUsername retrieves a user by username.
func (r *userRepository) FindUserByUsername(_ context.Context, username string) (*entity.User, error) {
	user, ok := r.store.users.First(func(u *entity.User) bool {
		return strings.EqualFold(u.Username, username)
	})
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}
