package services

import (
	"errors"

	"github.com/recipebook-dev/recipebook/internal/apperrors"
	"github.com/recipebook-dev/recipebook/internal/models"
	"gorm.io/gorm"
)

// IngredientService manages the shared ingredient vocabulary. Names are unique
// across the whole catalog (exact, case-sensitive match).
type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

func (s *IngredientService) Create(name string) (*models.Ingredient, error) {
	var ingredient models.Ingredient

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Ingredient

		err := tx.Where("name = ?", name).First(&existing).Error

		if err == nil {
			return apperrors.NewDuplicate("Ingredient already exists")
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		ingredient = models.Ingredient{Name: name}
		return tx.Create(&ingredient).Error
	})

	if err != nil {
		return nil, err
	}

	return &ingredient, nil
}

func (s *IngredientService) GetByID(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient

	if err := s.db.First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Ingredient", id)
		}
		return nil, err
	}

	return &ingredient, nil
}

func (s *IngredientService) List() ([]models.Ingredient, error) {
	var ingredients []models.Ingredient

	if err := s.db.Order("id").Find(&ingredients).Error; err != nil {
		return nil, err
	}

	return ingredients, nil
}

// Delete removes the ingredient and every recipe association that references
// it. Recipes themselves are untouched.
func (s *IngredientService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var ingredient models.Ingredient

		if err := tx.First(&ingredient, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("Ingredient", id)
			}
			return err
		}

		if err := tx.Model(&ingredient).Association("Recipes").Clear(); err != nil {
			return err
		}

		return tx.Delete(&ingredient).Error
	})
}

// findAllByIDs resolves an id set against the catalog inside the caller's
// transaction. Unknown ids resolve to nothing rather than failing.
func (s *IngredientService) findAllByIDs(tx *gorm.DB, ids []uint) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient

	if err := tx.Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, err
	}

	return ingredients, nil
}
