package models

// DefaultIcon is stored when the caller supplies a non-string icon
// payload (bundled-asset handles are a presentation concept and are not
// persisted).
const DefaultIcon = "default_icon"

// Deck represents a named collection of cards with a daily-practice counter
type Deck struct {
	ID    string `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
	// Subtitle and Progress are recomputed from live card counts on
	// every read; the stored columns are a display cache only.
	Subtitle       string  `json:"subtitle" db:"subtitle"`
	Progress       float64 `json:"progress" db:"progress"`
	Icon           string  `json:"icon" db:"icon"`
	CardsPerDay    int     `json:"cards_per_day" db:"cards_per_day"` // informational target, not enforced
	UserID         string  `json:"user_id" db:"user_id"`
	CardCountToday int     `json:"card_count_today" db:"card_count_today"`
	LastUpdated    string  `json:"last_updated" db:"last_updated"` // ISO-8601, date of last counter touch
	Cards          []Card  `json:"cards" db:"-"`
}

// DeckProgress is the result of incrementing a deck's daily counter.
type DeckProgress struct {
	NewCount int     `json:"newCount"`
	Progress float64 `json:"progress"`
}
