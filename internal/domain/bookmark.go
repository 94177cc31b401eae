package domain

import (
	"encoding/json"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RecipeID is an identifier assigned by the external recipe API. The API
// serves numeric ids, but the value is opaque to us and compared as text.
type RecipeID string

// jsonNumber matches the JSON number grammar.
var jsonNumber = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// UnmarshalJSON accepts both JSON numbers and JSON strings.
func (r *RecipeID) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*r = RecipeID(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = RecipeID(s)
	return nil
}

// MarshalJSON re-emits numeric ids as JSON numbers so values round-trip the
// way the recipe API serves them; everything else is a string.
func (r RecipeID) MarshalJSON() ([]byte, error) {
	if jsonNumber.MatchString(string(r)) {
		return []byte(r), nil
	}
	return json.Marshal(string(r))
}

// SavedRecipes holds the ordered, duplicate-free sequence of recipe ids a
// user has bookmarked. At most one record exists per user, enforced by the
// unique index on user_id.
type SavedRecipes struct {
	ID        uuid.UUID                     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID                     `json:"userId" gorm:"type:uuid;uniqueIndex;not null"`
	RecipeIDs datatypes.JSONSlice[RecipeID] `json:"recipeId" gorm:"type:jsonb;default:'[]'"`
	CreatedAt time.Time                     `json:"createdAt"`
	UpdatedAt time.Time                     `json:"updatedAt"`
}
