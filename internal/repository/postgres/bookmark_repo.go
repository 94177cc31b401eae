package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/plateful/plateful-server/internal/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type bookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) *bookmarkRepository {
	return &bookmarkRepository{db: db}
}

func (r *bookmarkRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.SavedRecipes, error) {
	var saved domain.SavedRecipes
	err := r.db.WithContext(ctx).First(&saved, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Replace upserts the full recipe-id sequence for a user. The unique index on
// user_id keeps this to one record per user even when the row is created
// lazily on the first toggle.
func (r *bookmarkRepository) Replace(ctx context.Context, userID uuid.UUID, recipeIDs []domain.RecipeID) (*domain.SavedRecipes, error) {
	saved := &domain.SavedRecipes{
		ID:        uuid.New(),
		UserID:    userID,
		RecipeIDs: datatypes.NewJSONSlice(recipeIDs),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"recipe_ids", "updated_at"}),
	}).Create(saved).Error
	if err != nil {
		return nil, err
	}

	return saved, nil
}
