package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/plateful/plateful-server/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type BookmarkRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.SavedRecipes, error)
	Replace(ctx context.Context, userID uuid.UUID, recipeIDs []domain.RecipeID) (*domain.SavedRecipes, error)
}

type Repositories struct {
	User     UserRepository
	Bookmark BookmarkRepository
}
