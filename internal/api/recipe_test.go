package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestReturnsRankedMatches(t *testing.T) {
	router := setupRouter(t)
	signupUser(t, router, "alice")

	w := performJSON(router, http.MethodPost, "/api/add_ingredients", gin.H{
		"username":    "alice",
		"ingredients": []string{"bread", "avocado", "salt", "pepper"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(router, http.MethodGet, "/api/recipes/suggest?username=alice", nil)
	require.Equal(t, http.StatusOK, w.Code)

	recipes := decodeBody(t, w)["recipes"].([]interface{})
	require.Len(t, recipes, 2)
	top := recipes[0].(map[string]interface{})
	assert.Equal(t, "Avocado Toast", top["name"])
	assert.Equal(t, 1.0, top["match_percentage"])
}

func TestSuggestRespectsThresholdParam(t *testing.T) {
	router := setupRouter(t)
	signupUser(t, router, "alice")

	w := performJSON(router, http.MethodPost, "/api/add_ingredients", gin.H{
		"username":    "alice",
		"ingredients": []string{"bread", "avocado", "salt", "pepper"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(router, http.MethodGet, "/api/recipes/suggest?username=alice&threshold=0.75", nil)
	require.Equal(t, http.StatusOK, w.Code)

	recipes := decodeBody(t, w)["recipes"].([]interface{})
	require.Len(t, recipes, 1)
	assert.Equal(t, "Avocado Toast", recipes[0].(map[string]interface{})["name"])
}

func TestSuggestEmptyPantry(t *testing.T) {
	router := setupRouter(t)
	signupUser(t, router, "alice")

	w := performJSON(router, http.MethodGet, "/api/recipes/suggest?username=alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["recipes"])
}

func TestSuggestRequiresUsername(t *testing.T) {
	router := setupRouter(t)

	w := performJSON(router, http.MethodGet, "/api/recipes/suggest", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatRecipesIgnoresThreshold(t *testing.T) {
	router := setupRouter(t)

	// One ingredient out of four: well below the default threshold, still
	// ranked in match-count mode.
	w := performJSON(router, http.MethodPost, "/api/chat/recipes", gin.H{
		"username":    "alice",
		"ingredients": []string{"eggs"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	recipes := decodeBody(t, w)["recipes"].([]interface{})
	require.Len(t, recipes, 1)
	got := recipes[0].(map[string]interface{})
	assert.Equal(t, "Scrambled Eggs", got["name"])
	assert.Equal(t, 0.25, got["match_percentage"])
	assert.Contains(t, got["missing_ingredients"], "butter")
}

func TestChatRecipesRequiresIngredients(t *testing.T) {
	router := setupRouter(t)

	w := performJSON(router, http.MethodPost, "/api/chat/recipes", gin.H{
		"username":    "alice",
		"ingredients": []string{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRecipe(t *testing.T) {
	router := setupRouter(t)

	w := performJSON(router, http.MethodGet, "/api/recipes/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	recipe := decodeBody(t, w)["recipe"].(map[string]interface{})
	assert.Equal(t, "Avocado Toast", recipe["name"])

	instructions := recipe["instructions"].(string)
	assert.True(t, strings.HasPrefix(instructions, "1. Toast the bread\n"))
	assert.Len(t, strings.Split(instructions, "\n"), 4)

	ingredients := recipe["ingredients"].([]interface{})
	assert.Len(t, ingredients, 4)
}

func TestGetRecipeNotFound(t *testing.T) {
	router := setupRouter(t)

	w := performJSON(router, http.MethodGet, "/api/recipes/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performJSON(router, http.MethodGet, "/api/recipes/not-a-number", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchRecipes(t *testing.T) {
	router := setupRouter(t)

	w := performJSON(router, http.MethodGet, "/api/recipes/search?q=toast", nil)
	require.Equal(t, http.StatusOK, w.Code)

	recipes := decodeBody(t, w)["recipes"].([]interface{})
	require.Len(t, recipes, 1)
	assert.Equal(t, "Avocado Toast", recipes[0].(map[string]interface{})["name"])
}

func TestSearchRequiresQuery(t *testing.T) {
	router := setupRouter(t)

	w := performJSON(router, http.MethodGet, "/api/recipes/search", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFavoriteRoundTrip(t *testing.T) {
	router := setupRouter(t)
	signupUser(t, router, "alice")

	w := performJSON(router, http.MethodPost, "/api/recipes/favorite", gin.H{
		"username":  "alice",
		"recipe_id": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(router, http.MethodGet, "/api/recipes/favorites?username=alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	recipes := decodeBody(t, w)["recipes"].([]interface{})
	require.Len(t, recipes, 1)
	assert.Equal(t, "Avocado Toast", recipes[0].(map[string]interface{})["name"])

	w = performJSON(router, http.MethodDelete, "/api/recipes/favorite", gin.H{
		"username":  "alice",
		"recipe_id": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(router, http.MethodGet, "/api/recipes/favorites?username=alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["recipes"])
}

func TestFavoriteAcceptsStringRecipeID(t *testing.T) {
	router := setupRouter(t)
	signupUser(t, router, "alice")

	// The detail page sends the route parameter as-is, so recipe_id arrives
	// as a JSON string.
	w := performJSON(router, http.MethodPost, "/api/recipes/favorite", gin.H{
		"username":  "alice",
		"recipe_id": "1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(router, http.MethodGet, "/api/recipes/favorites?username=alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	recipes := decodeBody(t, w)["recipes"].([]interface{})
	require.Len(t, recipes, 1)

	w = performJSON(router, http.MethodDelete, "/api/recipes/favorite", gin.H{
		"username":  "alice",
		"recipe_id": "1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(router, http.MethodGet, "/api/recipes/favorites?username=alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["recipes"])
}

func TestFavoriteMissingFields(t *testing.T) {
	router := setupRouter(t)

	w := performJSON(router, http.MethodPost, "/api/recipes/favorite", gin.H{
		"username": "alice",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFavoritesRequireUsername(t *testing.T) {
	router := setupRouter(t)

	w := performJSON(router, http.MethodGet, "/api/recipes/favorites", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
