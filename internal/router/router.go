package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/recipebook-dev/recipebook/internal/handlers"
	"github.com/recipebook-dev/recipebook/internal/middleware"
	"github.com/recipebook-dev/recipebook/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/login", handlers.LoginUser)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		users := api.Group("/users")
		{
			users.POST("", handlers.CreateUser)
			users.GET("/:user_id", handlers.GetUser)
			users.PUT("/:user_id", handlers.UpdateUser)
			users.DELETE("/:user_id", handlers.DeleteUser)
			users.GET("/:user_id/recipes", handlers.ListUserRecipes)

			// Profile endpoints
			users.POST("/:user_id/profile", handlers.CreateProfile)
			users.PUT("/:user_id/profile", handlers.UpdateProfile)
		}

		ingredients := api.Group("/ingredients")
		{
			ingredients.POST("", handlers.CreateIngredient)
			ingredients.GET("", handlers.ListIngredients)
			ingredients.GET("/:id", handlers.GetIngredient)
			ingredients.DELETE("/:id", handlers.DeleteIngredient)
		}

		recipes := api.Group("/recipes")
		{
			recipes.POST("", handlers.CreateRecipe)
			recipes.GET("", handlers.ListRecipes)
			recipes.GET("/:id", handlers.GetRecipe)
			recipes.PUT("/:id", handlers.UpdateRecipe)
			recipes.DELETE("/:id", handlers.DeleteRecipe)
		}
	}

	return r
}
