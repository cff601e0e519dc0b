package handlers

import (
	"recipe-api-backend/middleware"
	"recipe-api-backend/utils"

	"github.com/gin-gonic/gin"
)

// API groups the handlers and registers every route. Everything under the
// protected group requires a valid bearer token before any handler runs.
type API struct {
	Users       *UserHandler
	Tags        *TagHandler
	Ingredients *IngredientHandler
	Recipes     *RecipeHandler
	JWT         *utils.JWTManager
}

func (a *API) Register(router *gin.Engine) {
	public := router.Group("/api")
	{
		public.POST("/users", a.Users.CreateUser)
		public.POST("/users/token", a.Users.CreateToken)
	}

	protected := router.Group("/api")
	protected.Use(middleware.RequireAuth(a.JWT))
	{
		protected.GET("/users/me", a.Users.Me)
		protected.PATCH("/users/me", a.Users.UpdateMe)

		protected.GET("/tags", a.Tags.ListTags)
		protected.POST("/tags", a.Tags.CreateTag)
		protected.PATCH("/tags/:id", a.Tags.UpdateTag)
		protected.DELETE("/tags/:id", a.Tags.DeleteTag)

		protected.GET("/ingredients", a.Ingredients.ListIngredients)
		protected.POST("/ingredients", a.Ingredients.CreateIngredient)
		protected.PATCH("/ingredients/:id", a.Ingredients.UpdateIngredient)
		protected.DELETE("/ingredients/:id", a.Ingredients.DeleteIngredient)

		protected.GET("/recipes", a.Recipes.ListRecipes)
		protected.POST("/recipes", a.Recipes.CreateRecipe)
		protected.GET("/recipes/:id", a.Recipes.GetRecipe)
		protected.PATCH("/recipes/:id", a.Recipes.PatchRecipe)
		protected.PUT("/recipes/:id", a.Recipes.ReplaceRecipe)
		protected.DELETE("/recipes/:id", a.Recipes.DeleteRecipe)
		protected.POST("/recipes/:id/upload-image", a.Recipes.UploadImage)
	}
}
