package models

import "time"

type Location struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Phone        string   `json:"phone,omitempty"`
	Role         UserRole `json:"role"`
	Location     Location `json:"location"`
	// Skills is a comma-separated list, only meaningful for fundis.
	Skills    string    `json:"skills,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type RefreshToken struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}
