package service

import (
	"gorm.io/gorm"

	"github.com/foodplanner/backend/internal/models"
)

// IngredientItem is one entry in a batch add or status update.
type IngredientItem struct {
	Name    string
	Checked bool
}

// IngredientService owns each user's tracked ingredient list. Names are not
// unique per user: adds never deduplicate, and name-keyed updates and removes
// affect every row sharing the name.
type IngredientService struct {
	db   *gorm.DB
	auth *AuthService
}

func NewIngredientService(db *gorm.DB, auth *AuthService) *IngredientService {
	return &IngredientService{db: db, auth: auth}
}

// Add inserts each item as a new row for the user. The user must exist.
// Rows are inserted one at a time without a wrapping transaction; a failure
// partway through leaves the earlier inserts in place.
func (s *IngredientService) Add(username string, items []IngredientItem) error {
	exists, err := s.auth.UserExists(username)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}

	for _, item := range items {
		row := models.Ingredient{
			Username: username,
			Name:     item.Name,
			Checked:  item.Checked,
		}
		if err := s.db.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// List returns the user's ingredients, most recently added first. Rows
// created within the same timestamp tick fall back to ID order so the
// result is deterministic.
func (s *IngredientService) List(username string) ([]models.Ingredient, error) {
	ingredients := []models.Ingredient{}
	err := s.db.
		Where("username = ?", username).
		Order("created_at DESC").
		Order("id DESC").
		Find(&ingredients).Error
	return ingredients, err
}

// SetChecked updates the checked flag on every row matching the name.
func (s *IngredientService) SetChecked(username, name string, checked bool) error {
	return s.db.Model(&models.Ingredient{}).
		Where("username = ? AND name = ?", username, name).
		Update("checked", checked).Error
}

// Remove deletes every row matching the name.
func (s *IngredientService) Remove(username, name string) error {
	return s.db.
		Where("username = ? AND name = ?", username, name).
		Delete(&models.Ingredient{}).Error
}

// Names returns just the ingredient names for a user, for the matching
// engine.
func (s *IngredientService) Names(username string) ([]string, error) {
	names := []string{}
	err := s.db.Model(&models.Ingredient{}).
		Where("username = ?", username).
		Pluck("name", &names).Error
	return names, err
}
