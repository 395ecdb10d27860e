package database

import "fmt"

// DeleteUserAndAllData removes the user together with every deck they
// own and every card in those decks, children first (cards, decks,
// user row), inside one transaction. Deleting an absent user is a
// no-op success.
//
// Location cards are intentionally left in place: account deletion has
// always orphaned them, and removing them here is a product decision,
// not a cleanup.
func (r *UserRepository) DeleteUserAndAllData(userID string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	deckIDs := []string{}
	if err := tx.Select(&deckIDs, tx.Rebind(`SELECT id FROM decks WHERE user_id = ?`), userID); err != nil {
		return fmt.Errorf("failed to list user decks: %w", err)
	}

	if _, err := deleteForDecks(tx, deckIDs); err != nil {
		return err
	}

	if _, err := tx.Exec(tx.Rebind(`DELETE FROM decks WHERE user_id = ?`), userID); err != nil {
		return fmt.Errorf("failed to delete user decks: %w", err)
	}

	if _, err := tx.Exec(tx.Rebind(`DELETE FROM users WHERE id = ?`), userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit user delete: %w", err)
	}
	return nil
}
