package models

// User represents a registered account
type User struct {
	ID           string `json:"id" db:"id"`
	Email        string `json:"email" db:"email"` // unique across all users
	Name         string `json:"name" db:"name"`
	PasswordHash string `json:"-" db:"password_hash"`
	Salt         string `json:"-" db:"salt"`
	CreatedAt    string `json:"created_at" db:"created_at"` // ISO-8601
}

// Account is the public projection of a user returned by register and login.
type Account struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// UserDetails is the profile view returned to the settings screen.
type UserDetails struct {
	ID        string `json:"id" db:"id"`
	Email     string `json:"email" db:"email"`
	Name      string `json:"name" db:"name"`
	CreatedAt string `json:"created_at" db:"created_at"`
}
