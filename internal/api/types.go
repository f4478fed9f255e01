package api

import (
	"encoding/json"
	"strconv"

	"github.com/foodplanner/backend/internal/models"
)

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// IngredientInput accepts both the bare-string form ("bread") and the object
// form ({"name": "bread", "checked": true}); clients send both shapes.
type IngredientInput struct {
	Name    string
	Checked bool
}

func (i *IngredientInput) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		i.Name = name
		i.Checked = false
		return nil
	}

	var obj struct {
		Name    string `json:"name"`
		Checked bool   `json:"checked"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	i.Name = obj.Name
	i.Checked = obj.Checked
	return nil
}

type AddIngredientsRequest struct {
	Username    string            `json:"username"`
	Ingredients []IngredientInput `json:"ingredients"`
}

type UpdateIngredientStatusRequest struct {
	Username    string            `json:"username"`
	Ingredients []IngredientInput `json:"ingredients"`
}

type RemoveIngredientRequest struct {
	Username   string `json:"username"`
	Ingredient string `json:"ingredient"`
}

type ChatRecipesRequest struct {
	Username    string   `json:"username"`
	Ingredients []string `json:"ingredients"`
}

// RecipeID accepts both the numeric form (1) and the string form ("1");
// clients built from route parameters send the latter.
type RecipeID uint

func (r *RecipeID) UnmarshalJSON(data []byte) error {
	var n uint
	if err := json.Unmarshal(data, &n); err == nil {
		*r = RecipeID(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return err
	}
	*r = RecipeID(parsed)
	return nil
}

type FavoriteRequest struct {
	Username string   `json:"username"`
	RecipeID RecipeID `json:"recipe_id"`
}

// RecipeDetail is the full recipe payload with its ingredient lines. The
// instruction text stays a single newline-joined string; clients split it.
type RecipeDetail struct {
	models.Recipe
	Instructions string                    `json:"instructions"`
	Ingredients  []models.RecipeIngredient `json:"ingredients"`
}
