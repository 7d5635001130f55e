package services

import (
	"errors"

	"github.com/recipebook-dev/recipebook/internal/apperrors"
	"github.com/recipebook-dev/recipebook/internal/models"
	"gorm.io/gorm"
)

// RecipeService manages recipes. It depends on the user and ingredient
// services for ownership and association lookups; neither of them ever calls
// back into it.
type RecipeService struct {
	db          *gorm.DB
	users       *UserService
	ingredients *IngredientService
}

func NewRecipeService(db *gorm.DB, users *UserService, ingredients *IngredientService) *RecipeService {
	return &RecipeService{db: db, users: users, ingredients: ingredients}
}

// RecipeUpdate carries a sparse update: nil means "leave unchanged". An
// empty IngredientIDs slice also means "leave the association set alone";
// only a non-empty slice replaces it.
type RecipeUpdate struct {
	Title         *string
	Description   *string
	Difficulty    *string
	IngredientIDs []uint
}

// Create persists a recipe under an existing owner. Ingredient ids that do
// not resolve are dropped from the association set rather than failing the
// whole operation.
func (s *RecipeService) Create(title, description, difficulty string, ownerID uint, ingredientIDs []uint) (*models.Recipe, error) {
	var recipe models.Recipe

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.users.mustExist(tx, ownerID); err != nil {
			return err
		}

		recipe = models.Recipe{
			Title:       title,
			Description: description,
			Difficulty:  difficulty,
			OwnerID:     ownerID,
		}

		if len(ingredientIDs) > 0 {
			ingredients, err := s.ingredients.findAllByIDs(tx, ingredientIDs)
			if err != nil {
				return err
			}
			recipe.Ingredients = ingredients
		}

		// Omit stops the create from re-saving the ingredient rows; only
		// the join rows are written.
		return tx.Omit("Ingredients.*").Create(&recipe).Error
	})

	if err != nil {
		return nil, err
	}

	return &recipe, nil
}

func (s *RecipeService) GetByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe

	if err := s.db.Preload("Ingredients").First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Recipe", id)
		}
		return nil, err
	}

	return &recipe, nil
}

// List returns every recipe, or only one owner's when ownerID is non-nil.
func (s *RecipeService) List(ownerID *uint) ([]models.Recipe, error) {
	query := s.db.Preload("Ingredients").Order("id")

	if ownerID != nil {
		query = query.Where("owner_id = ?", *ownerID)
	}

	var recipes []models.Recipe

	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}

	return recipes, nil
}

// Update applies a sparse update. A non-empty IngredientIDs replaces the
// entire association set with whatever those ids resolve to; the owner is
// immutable here.
func (s *RecipeService) Update(id uint, req RecipeUpdate) (*models.Recipe, error) {
	var recipe models.Recipe

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Ingredients").First(&recipe, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("Recipe", id)
			}
			return err
		}

		if req.Title != nil {
			recipe.Title = *req.Title
		}

		if req.Description != nil {
			recipe.Description = *req.Description
		}

		if req.Difficulty != nil {
			recipe.Difficulty = *req.Difficulty
		}

		if len(req.IngredientIDs) > 0 {
			ingredients, err := s.ingredients.findAllByIDs(tx, req.IngredientIDs)
			if err != nil {
				return err
			}

			if err := tx.Model(&recipe).Association("Ingredients").Replace(&ingredients); err != nil {
				return err
			}

			recipe.Ingredients = ingredients
		}

		return tx.Omit("Ingredients", "Owner").Save(&recipe).Error
	})

	if err != nil {
		return nil, err
	}

	return &recipe, nil
}

// Delete removes the recipe and its association rows. Users and ingredients
// are untouched.
func (s *RecipeService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe

		if err := tx.First(&recipe, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("Recipe", id)
			}
			return err
		}

		if err := tx.Model(&recipe).Association("Ingredients").Clear(); err != nil {
			return err
		}

		return tx.Delete(&recipe).Error
	})
}
