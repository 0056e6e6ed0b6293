package auth

import (
	"context"

	"bookease/internal/domain"
)

// UserRepository is the slice of the identity store the auth service uses.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type tokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}
