package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/plateful/plateful-server/internal/domain"
	"github.com/plateful/plateful-server/internal/repository"
	"gorm.io/gorm"
)

// BookmarkService applies toggle semantics to a user's saved-recipe set.
// Toggle is a read-modify-write over the full sequence, so operations are
// serialized per user to keep concurrent toggles from dropping each other.
type BookmarkService struct {
	bookmarkRepo repository.BookmarkRepository

	mu        sync.Mutex
	userLocks map[uuid.UUID]*sync.Mutex
}

func NewBookmarkService(bookmarkRepo repository.BookmarkRepository) *BookmarkService {
	return &BookmarkService{
		bookmarkRepo: bookmarkRepo,
		userLocks:    make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *BookmarkService) userLock(userID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	return lock
}

// Get returns the user's saved recipe ids in addition order. A user with no
// saved recipes gets an empty sequence, not an error.
func (s *BookmarkService) Get(ctx context.Context, userID uuid.UUID) ([]domain.RecipeID, error) {
	saved, err := s.bookmarkRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []domain.RecipeID{}, nil
		}
		return nil, err
	}
	return []domain.RecipeID(saved.RecipeIDs), nil
}

// Toggle removes recipeID if the user already saved it, otherwise appends it
// at the end, and returns the resulting sequence. Toggling twice in a row
// restores the original sequence.
func (s *BookmarkService) Toggle(ctx context.Context, userID uuid.UUID, recipeID domain.RecipeID) ([]domain.RecipeID, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	current, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := make([]domain.RecipeID, 0, len(current)+1)
	removed := false
	for _, id := range current {
		if id == recipeID {
			removed = true
			continue
		}
		updated = append(updated, id)
	}
	if !removed {
		updated = append(updated, recipeID)
	}

	saved, err := s.bookmarkRepo.Replace(ctx, userID, updated)
	if err != nil {
		return nil, err
	}

	return []domain.RecipeID(saved.RecipeIDs), nil
}
