package models

import "time"

// User is keyed by username; emails are unique across accounts. The password
// is stored verbatim and compared verbatim (see service.AuthService, which is
// the single place a hashing scheme could be substituted).
type User struct {
	Username  string    `gorm:"primaryKey;size:50" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
