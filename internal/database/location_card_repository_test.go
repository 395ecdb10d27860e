package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/example/flashdeck/pkg/models"
)

func TestSaveAndListLocationCards(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	locations := NewLocationCardRepository(db)
	account := registerTestUser(t, users, "a@b.com")

	older := time.Now().Add(-2 * time.Hour).Format(time.RFC3339)
	newer := time.Now().Add(-1 * time.Hour).Format(time.RFC3339)

	_, err := locations.SaveLocationCard(models.LocationCard{
		Title:     "Museum",
		Question:  "Year founded?",
		Answer:    "1857",
		Latitude:  53.3498,
		Longitude: -6.2603,
		UserID:    account.ID,
		CreatedAt: older,
	})
	require.NoError(t, err)

	saved, err := locations.SaveLocationCard(models.LocationCard{
		Title:     "Bridge",
		Question:  "River below?",
		Answer:    "Liffey",
		Notes:     "walking tour",
		Latitude:  53.3466,
		Longitude: -6.2635,
		UserID:    account.ID,
		CreatedAt: newer,
	})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	listed, err := locations.ListLocationCardsForUser(account.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	// Most recent first is contractual.
	require.Equal(t, "Bridge", listed[0].Title)
	require.Equal(t, "Museum", listed[1].Title)
	require.Equal(t, 53.3466, listed[0].Latitude)
	require.Equal(t, -6.2635, listed[0].Longitude)
	require.Equal(t, "walking tour", listed[0].Notes)
}

func TestSaveLocationCardDefaultsCreatedAt(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	locations := NewLocationCardRepository(db)
	account := registerTestUser(t, users, "a@b.com")

	saved, err := locations.SaveLocationCard(models.LocationCard{
		Title:     "Cafe",
		Question:  "Best order?",
		Answer:    "Flat white",
		Latitude:  53.34,
		Longitude: -6.26,
		UserID:    account.ID,
	})
	require.NoError(t, err)
	_, err = time.Parse(time.RFC3339, saved.CreatedAt)
	require.NoError(t, err)
}

func TestDeleteLocationCard(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	locations := NewLocationCardRepository(db)
	account := registerTestUser(t, users, "a@b.com")

	saved, err := locations.SaveLocationCard(models.LocationCard{
		Title:     "Museum",
		Question:  "Q",
		Answer:    "A",
		Latitude:  1,
		Longitude: 2,
		UserID:    account.ID,
	})
	require.NoError(t, err)

	deleted, err := locations.DeleteLocationCard(saved.ID)
	require.NoError(t, err)
	require.Equal(t, 1, deleted)

	deleted, err = locations.DeleteLocationCard(saved.ID)
	require.NoError(t, err)
	require.Equal(t, 0, deleted)
}
