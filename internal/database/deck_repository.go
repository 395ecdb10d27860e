package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/flashdeck/internal/errs"
	"github.com/example/flashdeck/internal/ident"
	"github.com/example/flashdeck/pkg/models"
)

// DeckRepository handles database operations for decks, including the
// daily-counter rollover and progress computation.
type DeckRepository struct {
	db    *DB
	cards *CardRepository
}

// NewDeckRepository creates a new repository instance. The card
// repository supplies live card totals for progress computation.
func NewDeckRepository(db *DB, cards *CardRepository) *DeckRepository {
	return &DeckRepository{db: db, cards: cards}
}

// AddDeck creates a deck for the user with a zeroed daily counter. An
// empty icon stores the default sentinel; icon payloads that are not
// plain strings never reach this layer.
func (r *DeckRepository) AddDeck(userID, title, icon string, cardsPerDay int) (*models.Deck, error) {
	if icon == "" {
		icon = models.DefaultIcon
	}

	deck := models.Deck{
		ID:             ident.New(),
		Title:          title,
		Subtitle:       "today: 0/0 cards",
		Progress:       0,
		Icon:           icon,
		CardsPerDay:    cardsPerDay,
		UserID:         userID,
		CardCountToday: 0,
		LastUpdated:    nowISO(),
		Cards:          []models.Card{},
	}

	query := r.db.Rebind(`
		INSERT INTO decks (id, title, subtitle, progress, icon, cards_per_day, user_id, card_count_today, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.Exec(query, deck.ID, deck.Title, deck.Subtitle, deck.Progress,
		deck.Icon, deck.CardsPerDay, deck.UserID, deck.CardCountToday, deck.LastUpdated)
	if err != nil {
		return nil, fmt.Errorf("failed to add deck: %w", err)
	}
	return &deck, nil
}

// ListDecksForUser returns the user's decks with the daily rollover
// applied and the derived fields recomputed from live card counts. The
// stored subtitle/progress columns are never trusted on read.
func (r *DeckRepository) ListDecksForUser(userID string) ([]models.Deck, error) {
	decks := []models.Deck{}
	query := r.db.Rebind(`
		SELECT id, title, subtitle, progress, icon, cards_per_day, user_id, card_count_today, last_updated
		FROM decks WHERE user_id = ?
	`)
	if err := r.db.Select(&decks, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}

	for i := range decks {
		deck := &decks[i]

		if !sameDay(deck.LastUpdated) {
			deck.CardCountToday = 0
			deck.LastUpdated = nowISO()
			_, err := r.db.Exec(
				r.db.Rebind(`UPDATE decks SET card_count_today = 0, last_updated = ? WHERE id = ?`),
				deck.LastUpdated, deck.ID,
			)
			if err != nil {
				return nil, fmt.Errorf("failed to persist daily reset: %w", err)
			}
		}

		cards, err := r.cards.ListCardsForDeck(deck.ID)
		if err != nil {
			return nil, err
		}
		deck.Cards = cards

		total := len(cards)
		deck.Subtitle = fmt.Sprintf("today: %d/%d cards", deck.CardCountToday, total)
		if total > 0 {
			deck.Progress = float64(deck.CardCountToday) / float64(total)
		} else {
			deck.Progress = 0
		}
	}

	return decks, nil
}

// IncrementCardCountToday applies the daily rollover, bumps the deck's
// counter by one and returns the new count with progress recomputed
// against the live card total. The read-modify-write runs in a single
// transaction so concurrent increments serialize. Returns
// errs.ErrDeckNotFound if no deck row matches.
func (r *DeckRepository) IncrementCardCountToday(deckID string) (*models.DeckProgress, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var deck models.Deck
	query := tx.Rebind(`
		SELECT id, title, subtitle, progress, icon, cards_per_day, user_id, card_count_today, last_updated
		FROM decks WHERE id = ?
	`)
	err = tx.Get(&deck, query, deckID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrDeckNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get deck: %w", err)
	}

	count := deck.CardCountToday
	if !sameDay(deck.LastUpdated) {
		count = 0
	}
	newCount := count + 1

	_, err = tx.Exec(
		tx.Rebind(`UPDATE decks SET card_count_today = ?, last_updated = ? WHERE id = ?`),
		newCount, nowISO(), deckID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to increment card count: %w", err)
	}

	var total int
	if err := tx.Get(&total, tx.Rebind(`SELECT COUNT(*) FROM cards WHERE deck_id = ?`), deckID); err != nil {
		return nil, fmt.Errorf("failed to count cards: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit increment: %w", err)
	}

	progress := 0.0
	if total > 0 {
		progress = float64(newCount) / float64(total)
	}
	return &models.DeckProgress{NewCount: newCount, Progress: progress}, nil
}

// DeleteDeck removes the deck together with all of its cards, children
// first, in one transaction. Returns the number of cards deleted.
// Deleting an absent deck is a no-op success.
func (r *DeckRepository) DeleteDeck(deckID string) (int, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(tx.Rebind(`DELETE FROM cards WHERE deck_id = ?`), deckID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete deck cards: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to delete deck cards: %w", err)
	}

	if _, err := tx.Exec(tx.Rebind(`DELETE FROM decks WHERE id = ?`), deckID); err != nil {
		return 0, fmt.Errorf("failed to delete deck: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit deck delete: %w", err)
	}
	return int(deleted), nil
}

// RolloverStaleDecks zeroes the daily counter of every deck whose
// last-activity date is not today. The read paths apply the same reset
// lazily; this bulk form backs the scheduled midnight sweep and is
// idempotent. Returns the number of decks reset.
func (r *DeckRepository) RolloverStaleDecks() (int, error) {
	today := time.Now().Format("2006-01-02")
	query := r.db.Rebind(`
		UPDATE decks SET card_count_today = 0, last_updated = ?
		WHERE substr(last_updated, 1, 10) <> ?
	`)
	res, err := r.db.Exec(query, nowISO(), today)
	if err != nil {
		return 0, fmt.Errorf("failed to roll over decks: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to roll over decks: %w", err)
	}
	return int(n), nil
}
