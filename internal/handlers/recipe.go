package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/recipebook-dev/recipebook/db"
	"github.com/recipebook-dev/recipebook/internal/services"
	"github.com/recipebook-dev/recipebook/internal/types"
)

type CreateRecipeRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	Difficulty    string `json:"difficulty"`
	OwnerID       uint   `json:"owner_id" binding:"required"`
	IngredientIDs []uint `json:"ingredient_ids"`
}

type UpdateRecipeRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Difficulty    *string `json:"difficulty"`
	IngredientIDs []uint  `json:"ingredient_ids"`
}

func newRecipeService() *services.RecipeService {
	return services.NewRecipeService(db.DB, services.NewUserService(db.DB), services.NewIngredientService(db.DB))
}

func CreateRecipe(ctx *gin.Context) {
	var body CreateRecipeRequest

	if err := ctx.BindJSON(&body); err != nil {
		respondBindError(ctx)
		return
	}

	recipe, err := newRecipeService().Create(body.Title, body.Description, body.Difficulty, body.OwnerID, body.IngredientIDs)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.NewRecipeResponse(recipe))
}

func GetRecipe(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")

	if !ok {
		return
	}

	recipe, err := newRecipeService().GetByID(id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewRecipeResponse(recipe))
}

func ListRecipes(ctx *gin.Context) {
	var ownerID *uint

	if raw := ctx.Query("ownerId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "VALIDATION_ERROR", "message": "Invalid ownerId"})
			return
		}
		id := uint(parsed)
		ownerID = &id
	}

	recipes, err := newRecipeService().List(ownerID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewRecipeResponses(recipes))
}

func UpdateRecipe(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")

	if !ok {
		return
	}

	var body UpdateRecipeRequest

	if err := ctx.BindJSON(&body); err != nil {
		respondBindError(ctx)
		return
	}

	recipe, err := newRecipeService().Update(id, services.RecipeUpdate{
		Title:         body.Title,
		Description:   body.Description,
		Difficulty:    body.Difficulty,
		IngredientIDs: body.IngredientIDs,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewRecipeResponse(recipe))
}

func DeleteRecipe(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")

	if !ok {
		return
	}

	if err := newRecipeService().Delete(id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
