package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/flashdeck/internal/crypto"
	"github.com/example/flashdeck/internal/errs"
	"github.com/example/flashdeck/internal/ident"
	"github.com/example/flashdeck/pkg/models"
)

// UserRepository handles database operations for user accounts
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new repository instance
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// Register creates a new account and returns its public projection.
// Returns errs.ErrDuplicateEmail if the email is already registered.
func (r *UserRepository) Register(email, password, name string) (*models.Account, error) {
	// Format validation is the caller's concern; only emptiness is rejected here.
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	salt, err := crypto.NewSalt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	id := ident.New()
	query := r.db.Rebind(`
		INSERT INTO users (id, email, name, password_hash, salt, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	_, err = r.db.Exec(query, id, email, name, crypto.HashPassword(password, salt), salt, nowISO())
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errs.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return &models.Account{ID: id, Email: email, DisplayName: name}, nil
}

// Login verifies the credentials for email and returns the matching
// account. Returns errs.ErrUserNotFound when no row matches the email
// and errs.ErrWrongPassword when the digests differ. Read-only.
func (r *UserRepository) Login(email, password string) (*models.Account, error) {
	var user models.User
	query := r.db.Rebind(`
		SELECT id, email, name, password_hash, salt, created_at
		FROM users WHERE email = ?
	`)
	err := r.db.Get(&user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !crypto.VerifyPassword(password, user.Salt, user.PasswordHash) {
		return nil, errs.ErrWrongPassword
	}

	return &models.Account{ID: user.ID, Email: user.Email, DisplayName: user.Name}, nil
}

// UpdateUsername changes the display name. Returns errs.ErrNotFound if
// no user row matches.
func (r *UserRepository) UpdateUsername(userID, newName string) error {
	res, err := r.db.Exec(r.db.Rebind(`UPDATE users SET name = ? WHERE id = ?`), newName, userID)
	if err != nil {
		return fmt.Errorf("failed to update username: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update username: %w", err)
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// UpdateEmail changes the account email. Returns errs.ErrDuplicateEmail
// if another user already owns newEmail (the owning user is excluded by
// id), errs.ErrNotFound if no user row matches.
func (r *UserRepository) UpdateEmail(userID, newEmail string) error {
	var taken int
	query := r.db.Rebind(`SELECT COUNT(*) FROM users WHERE email = ? AND id <> ?`)
	if err := r.db.Get(&taken, query, newEmail, userID); err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if taken > 0 {
		return errs.ErrDuplicateEmail
	}

	res, err := r.db.Exec(r.db.Rebind(`UPDATE users SET email = ? WHERE id = ?`), newEmail, userID)
	if err != nil {
		// Backstop for a registration racing the check above.
		if isUniqueViolation(err) {
			return errs.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update email: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update email: %w", err)
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// UpdatePassword re-verifies the current password before storing a new
// digest under a fresh salt. Returns errs.ErrWrongPassword on mismatch
// and errs.ErrUserNotFound if no user row matches.
func (r *UserRepository) UpdatePassword(userID, currentPassword, newPassword string) error {
	var user models.User
	query := r.db.Rebind(`
		SELECT id, email, name, password_hash, salt, created_at
		FROM users WHERE id = ?
	`)
	err := r.db.Get(&user, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if !crypto.VerifyPassword(currentPassword, user.Salt, user.PasswordHash) {
		return errs.ErrWrongPassword
	}

	salt, err := crypto.NewSalt()
	if err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}
	_, err = r.db.Exec(
		r.db.Rebind(`UPDATE users SET password_hash = ?, salt = ? WHERE id = ?`),
		crypto.HashPassword(newPassword, salt), salt, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// GetDetails returns the profile view for userID. Returns
// errs.ErrNotFound if no user row matches.
func (r *UserRepository) GetDetails(userID string) (*models.UserDetails, error) {
	var details models.UserDetails
	query := r.db.Rebind(`SELECT id, email, name, created_at FROM users WHERE id = ?`)
	err := r.db.Get(&details, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user details: %w", err)
	}
	return &details, nil
}

// DeleteRow removes just the user row. Deleting an absent row is a
// no-op success. Most callers want DeleteUserAndAllData instead.
func (r *UserRepository) DeleteRow(userID string) error {
	_, err := r.db.Exec(r.db.Rebind(`DELETE FROM users WHERE id = ?`), userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
