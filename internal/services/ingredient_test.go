package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/recipebook-dev/recipebook/internal/apperrors"
	"github.com/recipebook-dev/recipebook/internal/models"
)

type IngredientServiceSuite struct {
	suite.Suite
	db  *gorm.DB
	svc *IngredientService
}

func (s *IngredientServiceSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.svc = NewIngredientService(s.db)
}

func TestIngredientServiceSuite(t *testing.T) {
	suite.Run(t, new(IngredientServiceSuite))
}

func (s *IngredientServiceSuite) TestCreateAndGet() {
	created, err := s.svc.Create("Flour")
	s.Require().NoError(err)
	s.NotZero(created.ID)

	found, err := s.svc.GetByID(created.ID)
	s.Require().NoError(err)
	s.Equal("Flour", found.Name)
}

func (s *IngredientServiceSuite) TestGetUnknownID() {
	_, err := s.svc.GetByID(999)

	var notFound *apperrors.NotFoundError
	s.Require().ErrorAs(err, &notFound)
	s.Equal("Ingredient", notFound.Resource)
}

func (s *IngredientServiceSuite) TestDuplicateNameRejected() {
	_, err := s.svc.Create("Flour")
	s.Require().NoError(err)

	_, err = s.svc.Create("Flour")

	var duplicate *apperrors.DuplicateResourceError
	s.Require().ErrorAs(err, &duplicate)

	var count int64
	s.Require().NoError(s.db.Model(&models.Ingredient{}).Count(&count).Error)
	s.EqualValues(1, count)
}

func (s *IngredientServiceSuite) TestNameMatchIsCaseSensitive() {
	_, err := s.svc.Create("Flour")
	s.Require().NoError(err)

	_, err = s.svc.Create("flour")
	s.Require().NoError(err)
}

func (s *IngredientServiceSuite) TestListOrderedByID() {
	for _, name := range []string{"Salt", "Flour", "Butter"} {
		_, err := s.svc.Create(name)
		s.Require().NoError(err)
	}

	ingredients, err := s.svc.List()
	s.Require().NoError(err)
	s.Require().Len(ingredients, 3)
	s.Equal("Salt", ingredients[0].Name)
	s.Equal("Butter", ingredients[2].Name)
}

func (s *IngredientServiceSuite) TestDeleteUnknownID() {
	err := s.svc.Delete(42)

	var notFound *apperrors.NotFoundError
	s.Require().ErrorAs(err, &notFound)
}

func (s *IngredientServiceSuite) TestDeleteDropsRecipeAssociations() {
	users := NewUserService(s.db)
	recipes := NewRecipeService(s.db, users, s.svc)

	owner, err := users.Register("cook@example.com", "cook", "secret-pw1")
	s.Require().NoError(err)

	flour, err := s.svc.Create("Flour")
	s.Require().NoError(err)
	butter, err := s.svc.Create("Butter")
	s.Require().NoError(err)

	recipe, err := recipes.Create("Shortbread", "", "easy", owner.ID, []uint{flour.ID, butter.ID})
	s.Require().NoError(err)
	s.EqualValues(2, joinRowCount(s.T(), s.db))

	s.Require().NoError(s.svc.Delete(flour.ID))

	_, err = s.svc.GetByID(flour.ID)
	var notFound *apperrors.NotFoundError
	s.Require().ErrorAs(err, &notFound)

	// The recipe survives with only its remaining ingredient.
	reloaded, err := recipes.GetByID(recipe.ID)
	s.Require().NoError(err)
	s.Require().Len(reloaded.Ingredients, 1)
	s.Equal("Butter", reloaded.Ingredients[0].Name)
	s.EqualValues(1, joinRowCount(s.T(), s.db))
}
