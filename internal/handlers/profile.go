package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recipebook-dev/recipebook/db"
	"github.com/recipebook-dev/recipebook/internal/services"
	"github.com/recipebook-dev/recipebook/internal/types"
)

type CreateProfileRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Bio       string `json:"bio"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
}

func CreateProfile(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "user_id")

	if !ok {
		return
	}

	var body CreateProfileRequest

	if err := ctx.BindJSON(&body); err != nil {
		respondBindError(ctx)
		return
	}

	profile, err := services.NewUserService(db.DB).CreateProfile(userID, body.FirstName, body.LastName, body.Bio)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"profile": types.NewProfileResponse(profile)})
}

func UpdateProfile(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "user_id")

	if !ok {
		return
	}

	var body UpdateProfileRequest

	if err := ctx.BindJSON(&body); err != nil {
		respondBindError(ctx)
		return
	}

	profile, err := services.NewUserService(db.DB).UpdateProfile(userID, services.ProfileUpdate{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Bio:       body.Bio,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"profile": types.NewProfileResponse(profile)})
}
