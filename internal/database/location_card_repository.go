package database

import (
	"fmt"

	"github.com/example/flashdeck/internal/ident"
	"github.com/example/flashdeck/pkg/models"
)

// LocationCardRepository handles database operations for
// location-anchored cards. Location cards are independent of decks.
type LocationCardRepository struct {
	db *DB
}

// NewLocationCardRepository creates a new repository instance
func NewLocationCardRepository(db *DB) *LocationCardRepository {
	return &LocationCardRepository{db: db}
}

// SaveLocationCard inserts a location card, assigning its id. The
// coordinates come straight from the device; no range validation
// happens here. CreatedAt defaults to now when the caller leaves it empty.
func (r *LocationCardRepository) SaveLocationCard(card models.LocationCard) (*models.LocationCard, error) {
	card.ID = ident.New()
	if card.CreatedAt == "" {
		card.CreatedAt = nowISO()
	}

	query := r.db.Rebind(`
		INSERT INTO location_cards (id, title, question, answer, notes, latitude, longitude, user_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.Exec(query, card.ID, card.Title, card.Question, card.Answer,
		card.Notes, card.Latitude, card.Longitude, card.UserID, card.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save location card: %w", err)
	}
	return &card, nil
}

// ListLocationCardsForUser returns the user's location cards, most
// recent first. The descending created_at order is part of the contract.
func (r *LocationCardRepository) ListLocationCardsForUser(userID string) ([]models.LocationCard, error) {
	cards := []models.LocationCard{}
	query := r.db.Rebind(`
		SELECT id, title, question, answer, notes, latitude, longitude, user_id, created_at
		FROM location_cards WHERE user_id = ?
		ORDER BY created_at DESC
	`)
	if err := r.db.Select(&cards, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list location cards: %w", err)
	}
	return cards, nil
}

// DeleteLocationCard removes a location card by id and returns the
// number of rows deleted. An absent id is a no-op success with count 0.
func (r *LocationCardRepository) DeleteLocationCard(cardID string) (int, error) {
	res, err := r.db.Exec(r.db.Rebind(`DELETE FROM location_cards WHERE id = ?`), cardID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete location card: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to delete location card: %w", err)
	}
	return int(n), nil
}
