package models

// LocationCard represents a standalone question/answer pair anchored to
// GPS coordinates. Location cards belong to a user directly, not to a deck.
type LocationCard struct {
	ID        string  `json:"id" db:"id"`
	Title     string  `json:"title" db:"title"`
	Question  string  `json:"question" db:"question"`
	Answer    string  `json:"answer" db:"answer"`
	Notes     string  `json:"notes" db:"notes"`
	Latitude  float64 `json:"latitude" db:"latitude"`   // decimal degrees
	Longitude float64 `json:"longitude" db:"longitude"` // decimal degrees
	UserID    string  `json:"user_id" db:"user_id"`
	CreatedAt string  `json:"created_at" db:"created_at"` // ISO-8601
}
