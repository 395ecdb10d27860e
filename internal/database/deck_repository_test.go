package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/example/flashdeck/internal/errs"
	"github.com/example/flashdeck/pkg/models"
)

func newDeckFixture(t *testing.T) (*DB, *UserRepository, *DeckRepository, *CardRepository, *models.Account) {
	t.Helper()
	db := newTestDB(t)
	users := NewUserRepository(db)
	cards := NewCardRepository(db)
	decks := NewDeckRepository(db, cards)
	account := registerTestUser(t, users, "a@b.com")
	return db, users, decks, cards, account
}

func TestAddDeckDefaults(t *testing.T) {
	_, _, decks, _, account := newDeckFixture(t)

	deck, err := decks.AddDeck(account.ID, "Spanish", "", 10)
	require.NoError(t, err)
	require.NotEmpty(t, deck.ID)
	require.Equal(t, "today: 0/0 cards", deck.Subtitle)
	require.Equal(t, 0.0, deck.Progress)
	require.Equal(t, models.DefaultIcon, deck.Icon)
	require.Equal(t, 10, deck.CardsPerDay)
	require.Equal(t, 0, deck.CardCountToday)
	require.Empty(t, deck.Cards)
	require.NotEmpty(t, deck.LastUpdated)
}

func TestListDecksComputesProgress(t *testing.T) {
	_, _, decks, cards, account := newDeckFixture(t)

	deck, err := decks.AddDeck(account.ID, "Spanish", "🇪🇸", 10)
	require.NoError(t, err)

	_, err = cards.AddCard(deck.ID, models.Card{Front: "Hola", Back: "Hello"})
	require.NoError(t, err)
	_, err = cards.AddCard(deck.ID, models.Card{Front: "Adiós", Back: "Goodbye"})
	require.NoError(t, err)

	_, err = decks.IncrementCardCountToday(deck.ID)
	require.NoError(t, err)

	listed, err := decks.ListDecksForUser(account.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, "today: 1/2 cards", listed[0].Subtitle)
	require.Equal(t, 0.5, listed[0].Progress)
	require.Len(t, listed[0].Cards, 2)
	require.Equal(t, "🇪🇸", listed[0].Icon)
}

func TestListDecksAppliesDailyRollover(t *testing.T) {
	db, _, decks, _, account := newDeckFixture(t)

	deck, err := decks.AddDeck(account.ID, "Spanish", "", 10)
	require.NoError(t, err)
	backdateDeck(t, db, deck.ID, 1, 5)

	listed, err := decks.ListDecksForUser(account.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, 0, listed[0].CardCountToday)

	reset, err := time.Parse(time.RFC3339, listed[0].LastUpdated)
	require.NoError(t, err)
	require.Equal(t, time.Now().Format("2006-01-02"), reset.In(time.Local).Format("2006-01-02"))

	// The reset is persisted, not just a view transform.
	var stored int
	require.NoError(t, db.Get(&stored, `SELECT card_count_today FROM decks WHERE id = ?`, deck.ID))
	require.Equal(t, 0, stored)
}

func TestIncrementAppliesDailyRollover(t *testing.T) {
	db, _, decks, cards, account := newDeckFixture(t)

	deck, err := decks.AddDeck(account.ID, "Spanish", "", 10)
	require.NoError(t, err)
	_, err = cards.AddCard(deck.ID, models.Card{Front: "Hola", Back: "Hello"})
	require.NoError(t, err)

	// Ten days stale behaves the same as one day stale.
	backdateDeck(t, db, deck.ID, 10, 5)

	progress, err := decks.IncrementCardCountToday(deck.ID)
	require.NoError(t, err)
	require.Equal(t, 1, progress.NewCount)
	require.Equal(t, 1.0, progress.Progress)
}

func TestIncrementSameDayAccumulates(t *testing.T) {
	_, _, decks, cards, account := newDeckFixture(t)

	deck, err := decks.AddDeck(account.ID, "Spanish", "", 10)
	require.NoError(t, err)
	for _, front := range []string{"uno", "dos", "tres", "cuatro"} {
		_, err = cards.AddCard(deck.ID, models.Card{Front: front, Back: front})
		require.NoError(t, err)
	}

	first, err := decks.IncrementCardCountToday(deck.ID)
	require.NoError(t, err)
	require.Equal(t, 1, first.NewCount)

	second, err := decks.IncrementCardCountToday(deck.ID)
	require.NoError(t, err)
	require.Equal(t, 2, second.NewCount)
	require.Equal(t, 0.5, second.Progress)
}

func TestIncrementDeckNotFound(t *testing.T) {
	_, _, decks, _, _ := newDeckFixture(t)

	_, err := decks.IncrementCardCountToday("no-such-deck")
	require.ErrorIs(t, err, errs.ErrDeckNotFound)
}

func TestIncrementWithNoCardsReportsZeroProgress(t *testing.T) {
	_, _, decks, _, account := newDeckFixture(t)

	deck, err := decks.AddDeck(account.ID, "Empty", "", 5)
	require.NoError(t, err)

	progress, err := decks.IncrementCardCountToday(deck.ID)
	require.NoError(t, err)
	require.Equal(t, 1, progress.NewCount)
	require.Equal(t, 0.0, progress.Progress)
}

func TestDeleteDeck(t *testing.T) {
	_, _, decks, cards, account := newDeckFixture(t)

	deck, err := decks.AddDeck(account.ID, "Spanish", "", 10)
	require.NoError(t, err)
	for _, front := range []string{"uno", "dos", "tres"} {
		_, err = cards.AddCard(deck.ID, models.Card{Front: front, Back: front})
		require.NoError(t, err)
	}

	deleted, err := decks.DeleteDeck(deck.ID)
	require.NoError(t, err)
	require.Equal(t, 3, deleted)

	remaining, err := cards.ListCardsForDeck(deck.ID)
	require.NoError(t, err)
	require.Empty(t, remaining)

	listed, err := decks.ListDecksForUser(account.ID)
	require.NoError(t, err)
	require.Empty(t, listed)

	// Deleting again is a no-op success.
	deleted, err = decks.DeleteDeck(deck.ID)
	require.NoError(t, err)
	require.Equal(t, 0, deleted)
}

func TestRolloverStaleDecks(t *testing.T) {
	db, _, decks, _, account := newDeckFixture(t)

	stale, err := decks.AddDeck(account.ID, "Stale", "", 10)
	require.NoError(t, err)
	fresh, err := decks.AddDeck(account.ID, "Fresh", "", 10)
	require.NoError(t, err)

	backdateDeck(t, db, stale.ID, 3, 7)
	_, err = decks.IncrementCardCountToday(fresh.ID)
	require.NoError(t, err)

	reset, err := decks.RolloverStaleDecks()
	require.NoError(t, err)
	require.Equal(t, 1, reset)

	var counts = map[string]int{}
	rows, err := db.Queryx(`SELECT id, card_count_today FROM decks`)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var id string
		var count int
		require.NoError(t, rows.Scan(&id, &count))
		counts[id] = count
	}
	require.Equal(t, 0, counts[stale.ID])
	require.Equal(t, 1, counts[fresh.ID])
}

func TestPracticeSessionEndToEnd(t *testing.T) {
	_, _, decks, cards, account := newDeckFixture(t)

	deck, err := decks.AddDeck(account.ID, "Spanish", "", 10)
	require.NoError(t, err)

	_, err = cards.AddCard(deck.ID, models.Card{Front: "Hola", Back: "Hello"})
	require.NoError(t, err)

	progress, err := decks.IncrementCardCountToday(deck.ID)
	require.NoError(t, err)
	require.Equal(t, 1, progress.NewCount)
	require.Equal(t, 1.0, progress.Progress)

	listed, err := decks.ListDecksForUser(account.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, "today: 1/1 cards", listed[0].Subtitle)
	require.Equal(t, 1.0, listed[0].Progress)
}
