package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recipebook-dev/recipebook/db"
	"github.com/recipebook-dev/recipebook/internal/services"
	"github.com/recipebook-dev/recipebook/internal/types"
)

type CreateIngredientRequest struct {
	Name string `json:"name" binding:"required"`
}

func CreateIngredient(ctx *gin.Context) {
	var body CreateIngredientRequest

	if err := ctx.BindJSON(&body); err != nil {
		respondBindError(ctx)
		return
	}

	ingredient, err := services.NewIngredientService(db.DB).Create(body.Name)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.NewIngredientResponse(ingredient))
}

func GetIngredient(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")

	if !ok {
		return
	}

	ingredient, err := services.NewIngredientService(db.DB).GetByID(id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewIngredientResponse(ingredient))
}

func ListIngredients(ctx *gin.Context) {
	ingredients, err := services.NewIngredientService(db.DB).List()

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.IngredientResponse, 0, len(ingredients))

	for i := range ingredients {
		response = append(response, types.NewIngredientResponse(&ingredients[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func DeleteIngredient(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")

	if !ok {
		return
	}

	if err := services.NewIngredientService(db.DB).Delete(id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
