package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/example/flashdeck/internal/ident"
	"github.com/example/flashdeck/pkg/models"
)

// CardRepository handles database operations for cards
type CardRepository struct {
	db *DB
}

// NewCardRepository creates a new repository instance
func NewCardRepository(db *DB) *CardRepository {
	return &CardRepository{db: db}
}

// AddCard inserts a new card into the deck, assigning its id. Notes and
// image references may be empty.
func (r *CardRepository) AddCard(deckID string, card models.Card) (*models.Card, error) {
	card.ID = ident.New()
	card.DeckID = deckID

	query := r.db.Rebind(`
		INSERT INTO cards (id, front, back, notes, front_image, back_image, deck_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.Exec(query, card.ID, card.Front, card.Back, card.Notes,
		card.FrontImage, card.BackImage, card.DeckID)
	if err != nil {
		return nil, fmt.Errorf("failed to add card: %w", err)
	}
	return &card, nil
}

// ListCardsForDeck returns the cards belonging to deckID. No ordering
// is part of the contract.
func (r *CardRepository) ListCardsForDeck(deckID string) ([]models.Card, error) {
	cards := []models.Card{}
	query := r.db.Rebind(`
		SELECT id, front, back, notes, front_image, back_image, deck_id
		FROM cards WHERE deck_id = ?
	`)
	if err := r.db.Select(&cards, query, deckID); err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

// DeleteCard removes a card by id and returns the number of rows
// deleted. An absent id is a no-op success with count 0.
func (r *CardRepository) DeleteCard(cardID string) (int, error) {
	res, err := r.db.Exec(r.db.Rebind(`DELETE FROM cards WHERE id = ?`), cardID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete card: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to delete card: %w", err)
	}
	return int(n), nil
}

// deleteForDecks removes every card belonging to any of deckIDs in one
// batched statement, inside the caller's transaction.
func deleteForDecks(tx *sqlx.Tx, deckIDs []string) (int, error) {
	if len(deckIDs) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In(`DELETE FROM cards WHERE deck_id IN (?)`, deckIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to build card delete: %w", err)
	}
	res, err := tx.Exec(tx.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete cards: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to delete cards: %w", err)
	}
	return int(n), nil
}
