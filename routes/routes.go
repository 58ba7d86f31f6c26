package routes

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"platter/ratelim"
	"platter/recipes"
)

func AddRecipeRoutes(router *httprouter.Router) {
	router.GET("/api/v1/recipes", ratelim.RateLimit(recipes.GetRecipes))
	router.GET("/api/v1/recipes/search", ratelim.RateLimit(recipes.SearchRecipes))
	router.GET("/api/v1/recipes/filter", ratelim.RateLimit(recipes.FilterRecipes))
	router.GET("/api/v1/recipes/suggest", ratelim.RateLimit(recipes.SuggestRecipes))
	router.GET("/api/v1/recipes/cuisines", recipes.GetCuisines)
	router.GET("/api/v1/recipes/recipe/:id", recipes.GetRecipe)
}

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/*filepath", http.Dir("static"))
}
