package models

import "time"

// Ingredient is one tracked pantry item for a user. There is deliberately no
// uniqueness constraint on (username, name): the same name may appear more
// than once, and name-keyed updates and deletes touch every matching row.
type Ingredient struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;not null;index" json:"username"`
	Name      string    `gorm:"not null" json:"name"`
	Checked   bool      `gorm:"not null;default:false" json:"checked"`
	CreatedAt time.Time `json:"created_at"`
}
