package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/recipebook-dev/recipebook/db"
	"github.com/recipebook-dev/recipebook/internal/services"
	"github.com/recipebook-dev/recipebook/internal/types"
)

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Username *string `json:"username"`
	Password *string `json:"password" binding:"omitempty,min=8"`
}

func CreateUser(ctx *gin.Context) {
	var body CreateUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		respondBindError(ctx)
		return
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	user, err := services.NewUserService(db.DB).Register(body.Email, body.Username, body.Password)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"user": types.NewUserResponse(user)})
}

func GetUser(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "user_id")

	if !ok {
		return
	}

	user, err := services.NewUserService(db.DB).GetByID(userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": types.NewUserResponse(user)})
}

func UpdateUser(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "user_id")

	if !ok {
		return
	}

	var body UpdateUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		respondBindError(ctx)
		return
	}

	if body.Email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*body.Email))
		body.Email = &normalized
	}

	user, err := services.NewUserService(db.DB).Update(userID, services.UserUpdate{
		Email:    body.Email,
		Username: body.Username,
		Password: body.Password,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": types.NewUserResponse(user)})
}

func DeleteUser(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "user_id")

	if !ok {
		return
	}

	if err := services.NewUserService(db.DB).Delete(userID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func ListUserRecipes(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "user_id")

	if !ok {
		return
	}

	recipes, err := services.NewUserService(db.DB).ListRecipes(userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewRecipeResponses(recipes))
}
