package model

import "time"

// User is a Randorium account. Passwords, dice and prompts all work without
// one; signing in only adds a roll history and a shelf of saved prompts.
type User struct {
	ID        int64
	Email     string
	AuthHash  string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Activity is filled by repository reads, never written.
	Activity Activity
}

// Activity counts what an account has stored.
type Activity struct {
	Rolls        int `json:"rolls"`
	SavedPrompts int `json:"saved_prompts"`
}

// RegisterRequest and LoginRequest share the email/password shape.
type (
	RegisterRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
)

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is what /auth/me and the auth endpoints expose. AuthHash never leaves the server.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	Activity  Activity  `json:"activity"`
}
