package models

// Card represents a front/back content pair belonging to a deck
type Card struct {
	ID         string `json:"id" db:"id"`
	Front      string `json:"front" db:"front"`
	Back       string `json:"back" db:"back"`
	Notes      string `json:"notes" db:"notes"`
	FrontImage string `json:"front_image" db:"front_image"` // opaque image reference, may be empty
	BackImage  string `json:"back_image" db:"back_image"`
	DeckID     string `json:"deck_id" db:"deck_id"`
}
