package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/foodplanner/backend/internal/service"
)

// defaultMatchThreshold is the minimum match percentage for threshold-mode
// suggestions when the client does not supply one.
const defaultMatchThreshold = 0.5

type RecipeHandler struct {
	recipes     *service.RecipeService
	ingredients *service.IngredientService
}

func NewRecipeHandler(recipes *service.RecipeService, ingredients *service.IngredientService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, ingredients: ingredients}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/chat/recipes", h.ChatRecipes)

	recipes := router.Group("/recipes")
	{
		recipes.GET("/suggest", h.Suggest)
		recipes.GET("/search", h.Search)
		recipes.GET("/favorites", h.ListFavorites)
		recipes.POST("/favorite", h.Favorite)
		recipes.DELETE("/favorite", h.Unfavorite)
		recipes.GET("/:id", h.Get)
	}
}

// Suggest is threshold mode: recipes whose ingredient overlap with the
// user's tracked list meets the threshold, best match first.
func (h *RecipeHandler) Suggest(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required"})
		return
	}

	threshold := defaultMatchThreshold
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Threshold must be a number"})
			return
		}
		threshold = parsed
	}

	names, err := h.ingredients.Names(username)
	if err != nil {
		log.Printf("Loading ingredients for %q failed: %v", username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ingredients: " + err.Error()})
		return
	}

	catalog, err := h.recipes.AllWithIngredients()
	if err != nil {
		log.Printf("Loading recipe catalog failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": service.SuggestByThreshold(names, catalog, threshold),
	})
}

// ChatRecipes is the match-count mode: up to five recipes ranked by how many
// of the submitted ingredients they use, regardless of threshold.
func (h *RecipeHandler) ChatRecipes(c *gin.Context) {
	var req ChatRecipesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if len(req.Ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ingredients are required"})
		return
	}

	catalog, err := h.recipes.AllWithIngredients()
	if err != nil {
		log.Printf("Loading recipe catalog failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": service.SuggestByMatchCount(req.Ingredients, catalog),
	})
}

func (h *RecipeHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	recipe, ingredients, err := h.recipes.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		log.Printf("Fetching recipe %d failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": RecipeDetail{
		Recipe:       *recipe,
		Instructions: recipe.Instructions,
		Ingredients:  ingredients,
	}})
}

func (h *RecipeHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
		return
	}

	recipes, err := h.recipes.Search(query)
	if err != nil {
		log.Printf("Recipe search %q failed: %v", query, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search recipes: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) ListFavorites(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required"})
		return
	}

	recipes, err := h.recipes.ListFavorites(username)
	if err != nil {
		log.Printf("Listing favorites for %q failed: %v", username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorite recipes: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) Favorite(c *gin.Context) {
	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Username == "" || req.RecipeID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and recipe_id are required"})
		return
	}

	if !h.recipes.AddFavorite(req.Username, uint(req.RecipeID)) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe added to favorites"})
}

func (h *RecipeHandler) Unfavorite(c *gin.Context) {
	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Username == "" || req.RecipeID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and recipe_id are required"})
		return
	}

	if !h.recipes.RemoveFavorite(req.Username, uint(req.RecipeID)) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe removed from favorites"})
}
