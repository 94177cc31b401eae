package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/plateful/plateful-server/internal/domain"
	"github.com/plateful/plateful-server/internal/service"
)

type BookmarkHandler struct {
	bookmarkService *service.BookmarkService
}

func NewBookmarkHandler(bookmarkService *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarkService: bookmarkService}
}

type ToggleRequest struct {
	RecipeID domain.RecipeID `json:"recipeId"`
}

// GetSavedRecipes returns the user's saved recipe ids in addition order.
func (h *BookmarkHandler) GetSavedRecipes(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	recipeIDs, err := h.bookmarkService.Get(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR [bookmarks.GetSavedRecipes] failed to get saved recipes: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recipeIDs)
}

// ToggleSavedRecipe adds the recipe id if absent, removes it if present, and
// returns the resulting sequence.
func (h *BookmarkHandler) ToggleSavedRecipe(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	var req ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	recipeIDs, err := h.bookmarkService.Toggle(r.Context(), userID, req.RecipeID)
	if err != nil {
		log.Printf("ERROR [bookmarks.ToggleSavedRecipe] failed to toggle saved recipe: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recipeIDs)
}
