package repository

import (
	"context"
	"errors"

	"github.com/blaisecz/mood-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository stores mood tracker users. Mood and journal entries
// reference users by ID and are removed with them.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// GetByID loads the user along with the home timezone applied to their entries.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// Exists guards entry and insight routes that only need the ID checked.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var found bool
	err := r.db.WithContext(ctx).
		Raw("SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)", id).
		Scan(&found).Error
	return found, err
}
