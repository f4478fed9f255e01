package models

import "time"

// Recipe is a catalog entry. The catalog is seeded once at startup and has no
// create/update/delete endpoint, so rows are immutable after seeding.
// Instructions holds the newline-joined step list as seeded.
type Recipe struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	PreparationTime int       `json:"preparation_time"`
	CookingTime     int       `json:"cooking_time"`
	Servings        int       `json:"servings"`
	Difficulty      string    `gorm:"size:50" json:"difficulty"`
	ImageURL        string    `gorm:"size:255" json:"image_url"`
	Instructions    string    `gorm:"type:text;not null" json:"-"`
	CreatedAt       time.Time `json:"created_at"`
}

// RecipeIngredient is one line of a recipe's ingredient list. Quantity and
// unit are free text and may be empty.
type RecipeIngredient struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	RecipeID uint   `gorm:"not null;index" json:"-"`
	Name     string `gorm:"column:ingredient;not null" json:"ingredient"`
	Quantity string `gorm:"size:50" json:"quantity,omitempty"`
	Unit     string `gorm:"size:50" json:"unit,omitempty"`
}

// FavoriteRecipe associates a user with a recipe they favorited. Duplicate
// pairs are permitted; removal deletes every matching row.
type FavoriteRecipe struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;not null;index" json:"username"`
	RecipeID  uint      `gorm:"not null;index" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the historical table name for favorites.
func (FavoriteRecipe) TableName() string {
	return "user_favorite_recipes"
}
