package types

import (
	"time"

	"github.com/recipebook-dev/recipebook/internal/models"
)

type UserResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type ProfileResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio,omitempty"`
}

type IngredientResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// RecipeResponse carries the owner's id and the resolved ingredient names,
// never internal ingredient ids.
type RecipeResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Difficulty  string    `json:"difficulty,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	OwnerID     uint      `json:"owner_id"`
	Ingredients []string  `json:"ingredients"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
	}
}

func NewProfileResponse(profile *models.UserProfile) ProfileResponse {
	return ProfileResponse{
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Bio:       profile.Bio,
	}
}

func NewIngredientResponse(ingredient *models.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:   ingredient.ID,
		Name: ingredient.Name,
	}
}

func NewRecipeResponse(recipe *models.Recipe) RecipeResponse {
	names := make([]string, 0, len(recipe.Ingredients))

	for _, ingredient := range recipe.Ingredients {
		names = append(names, ingredient.Name)
	}

	return RecipeResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		Description: recipe.Description,
		Difficulty:  recipe.Difficulty,
		CreatedAt:   recipe.CreatedAt,
		OwnerID:     recipe.OwnerID,
		Ingredients: names,
	}
}

func NewRecipeResponses(recipes []models.Recipe) []RecipeResponse {
	responses := make([]RecipeResponse, 0, len(recipes))

	for i := range recipes {
		responses = append(responses, NewRecipeResponse(&recipes[i]))
	}

	return responses
}
