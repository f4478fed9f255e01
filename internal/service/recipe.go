package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/foodplanner/backend/internal/models"
)

var ErrRecipeNotFound = errors.New("recipe not found")

// catalogCacheKey holds the serialized catalog in Redis. The catalog is
// immutable after seeding, so the cache can never go stale.
const (
	catalogCacheKey = "recipe_catalog"
	catalogCacheTTL = time.Hour
)

// RecipeService owns the fixed recipe catalog and per-user favorites. The
// Redis client is optional; when nil (or on any cache error) catalog reads go
// straight to the database.
type RecipeService struct {
	db    *gorm.DB
	cache *redis.Client
}

func NewRecipeService(db *gorm.DB, cache *redis.Client) *RecipeService {
	return &RecipeService{db: db, cache: cache}
}

type seedRecipe struct {
	name         string
	description  string
	instructions string
	ingredients  []string
}

var sampleRecipes = []seedRecipe{
	{
		name:         "Avocado Toast",
		description:  "Simple and delicious avocado on toast",
		instructions: "1. Toast the bread\n2. Mash the avocado with a fork\n3. Spread avocado on toast\n4. Add salt and pepper to taste",
		ingredients:  []string{"bread", "avocado", "salt", "pepper"},
	},
	{
		name:         "Scrambled Eggs",
		description:  "Classic fluffy scrambled eggs",
		instructions: "1. Beat eggs in a bowl\n2. Heat butter in a pan\n3. Pour eggs into pan\n4. Stir gently until cooked",
		ingredients:  []string{"eggs", "butter", "salt", "pepper"},
	},
}

// SeedIfEmpty inserts the built-in sample recipes when the catalog has no
// rows. Once any recipe exists the call is a no-op, so repeated startups
// never duplicate the catalog.
func (s *RecipeService) SeedIfEmpty() error {
	var count int64
	if err := s.db.Model(&models.Recipe{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, seed := range sampleRecipes {
		recipe := models.Recipe{
			Name:         seed.name,
			Description:  seed.description,
			Instructions: seed.instructions,
		}
		if err := s.db.Create(&recipe).Error; err != nil {
			return err
		}
		for _, name := range seed.ingredients {
			row := models.RecipeIngredient{
				RecipeID: recipe.ID,
				Name:     name,
			}
			if err := s.db.Create(&row).Error; err != nil {
				return err
			}
		}
	}
	log.Printf("Seeded recipe catalog with %d sample recipes", len(sampleRecipes))
	return nil
}

// GetByID returns one recipe with its ingredient rows.
func (s *RecipeService) GetByID(id uint) (*models.Recipe, []models.RecipeIngredient, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrRecipeNotFound
		}
		return nil, nil, err
	}

	ingredients := []models.RecipeIngredient{}
	if err := s.db.Where("recipe_id = ?", id).Find(&ingredients).Error; err != nil {
		return nil, nil, err
	}
	return &recipe, ingredients, nil
}

// Search matches the query as a case-insensitive substring of the recipe
// name or description.
func (s *RecipeService) Search(query string) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	like := "%" + strings.ToLower(query) + "%"
	err := s.db.
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like).
		Find(&recipes).Error
	return recipes, err
}

// AllWithIngredients loads the full catalog with each recipe's ingredient
// names for the matching engine. Recipes without ingredient rows are left
// out; their match ratio is undefined.
func (s *RecipeService) AllWithIngredients() ([]RecipeWithIngredients, error) {
	if cached, ok := s.catalogFromCache(); ok {
		return cached, nil
	}

	recipes := []models.Recipe{}
	if err := s.db.Order("id").Find(&recipes).Error; err != nil {
		return nil, err
	}

	rows := []models.RecipeIngredient{}
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	byRecipe := make(map[uint][]string)
	for _, row := range rows {
		byRecipe[row.RecipeID] = append(byRecipe[row.RecipeID], row.Name)
	}

	catalog := []RecipeWithIngredients{}
	for _, recipe := range recipes {
		names := byRecipe[recipe.ID]
		if len(names) == 0 {
			continue
		}
		catalog = append(catalog, RecipeWithIngredients{Recipe: recipe, Ingredients: names})
	}

	s.catalogToCache(catalog)
	return catalog, nil
}

func (s *RecipeService) catalogFromCache() ([]RecipeWithIngredients, bool) {
	if s.cache == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	payload, err := s.cache.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Recipe catalog cache read failed: %v", err)
		}
		return nil, false
	}
	catalog := []RecipeWithIngredients{}
	if err := json.Unmarshal(payload, &catalog); err != nil {
		log.Printf("Recipe catalog cache decode failed: %v", err)
		return nil, false
	}
	return catalog, true
}

func (s *RecipeService) catalogToCache(catalog []RecipeWithIngredients) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(catalog)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := s.cache.Set(ctx, catalogCacheKey, payload, catalogCacheTTL).Err(); err != nil {
		log.Printf("Recipe catalog cache write failed: %v", err)
	}
}

// AddFavorite records a favorite for the user. Duplicates are permitted.
// Returns false when the store rejects the insert.
func (s *RecipeService) AddFavorite(username string, recipeID uint) bool {
	fav := models.FavoriteRecipe{
		Username: username,
		RecipeID: recipeID,
	}
	if err := s.db.Create(&fav).Error; err != nil {
		log.Printf("Error adding favorite recipe: %v", err)
		return false
	}
	return true
}

// RemoveFavorite deletes every favorite row for the pair. Returns false when
// the store rejects the delete.
func (s *RecipeService) RemoveFavorite(username string, recipeID uint) bool {
	err := s.db.
		Where("username = ? AND recipe_id = ?", username, recipeID).
		Delete(&models.FavoriteRecipe{}).Error
	if err != nil {
		log.Printf("Error removing favorite recipe: %v", err)
		return false
	}
	return true
}

// ListFavorites returns the recipes the user has favorited, joined through
// the catalog.
func (s *RecipeService) ListFavorites(username string) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	err := s.db.Model(&models.Recipe{}).
		Joins("JOIN user_favorite_recipes ufr ON ufr.recipe_id = recipes.id").
		Where("ufr.username = ?", username).
		Find(&recipes).Error
	return recipes, err
}
