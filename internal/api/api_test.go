package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/foodplanner/backend/internal/models"
	"github.com/foodplanner/backend/internal/service"
)

func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.FavoriteRecipe{},
	))

	authService := service.NewAuthService(db)
	ingredientService := service.NewIngredientService(db, authService)
	recipeService := service.NewRecipeService(db, nil)
	require.NoError(t, recipeService.SeedIfEmpty())

	router := gin.New()
	root := router.Group("/api")
	NewAuthHandler(authService).RegisterRoutes(root)
	NewIngredientHandler(ingredientService).RegisterRoutes(root)
	NewRecipeHandler(recipeService, ingredientService).RegisterRoutes(root)

	return router
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func signupUser(t *testing.T, router *gin.Engine, username string) {
	w := performJSON(router, http.MethodPost, "/api/signup", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "hunter2",
	})
	require.Equal(t, http.StatusOK, w.Code)
}
