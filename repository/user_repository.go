package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/models"
)

// UserRepository handles remote store operations for user accounts.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(database *sql.DB) *UserRepository {
	return &UserRepository{db: database}
}

// Ensure UserRepository implements UserRepositoryInterface
var _ UserRepositoryInterface = (*UserRepository)(nil)

// FetchAll returns every user profile ordered by email.
func (r *UserRepository) FetchAll(ctx context.Context) ([]models.UserProfile, error) {
	query := `
		SELECT id, email, display_name, role, tickets, created_at
		FROM user_profiles
		ORDER BY email
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user profiles: %w", err)
	}
	defer rows.Close()

	var users []models.UserProfile
	for rows.Next() {
		var u models.UserProfile
		err := rows.Scan(&u.ID, &u.Email, &u.DisplayName, &u.Role, &u.Tickets, &u.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user profile: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Upsert writes the full user row, inserting or overwriting by id.
func (r *UserRepository) Upsert(ctx context.Context, u *models.UserProfile) error {
	query := `
		INSERT INTO user_profiles (id, email, display_name, role, tickets, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			display_name = EXCLUDED.display_name,
			role = EXCLUDED.role,
			tickets = EXCLUDED.tickets
	`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Email, u.DisplayName,
		u.Role, u.Tickets, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert user profile %s: %w", u.ID, err)
	}
	return nil
}

// CreditTickets adds loyalty tickets to the account matching the given email.
// Crediting an unknown email affects zero rows and is reported as an error so
// the caller does not mark the order as distributed.
func (r *UserRepository) CreditTickets(ctx context.Context, email string, tickets int) error {
	query := `UPDATE user_profiles SET tickets = tickets + $1 WHERE lower(email) = lower($2)`
	res, err := r.db.ExecContext(ctx, query, tickets, email)
	if err != nil {
		return fmt.Errorf("failed to credit tickets: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check credited rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no account found for %s", email)
	}
	return nil
}
