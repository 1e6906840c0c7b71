package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/models"
)

// ProducerRepository handles remote store operations for producers.
type ProducerRepository struct {
	db *sql.DB
}

// NewProducerRepository creates a new ProducerRepository.
func NewProducerRepository(database *sql.DB) *ProducerRepository {
	return &ProducerRepository{db: database}
}

// Ensure ProducerRepository implements ProducerRepositoryInterface
var _ ProducerRepositoryInterface = (*ProducerRepository)(nil)

// FetchAll returns every producer ordered by name.
func (r *ProducerRepository) FetchAll(ctx context.Context) ([]models.Producer, error) {
	query := `
		SELECT id, name, description, address, email, phone, image_url
		FROM producers
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch producers: %w", err)
	}
	defer rows.Close()

	var producers []models.Producer
	for rows.Next() {
		var p models.Producer
		err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Address,
			&p.Email, &p.Phone, &p.ImageURL)
		if err != nil {
			return nil, fmt.Errorf("failed to scan producer: %w", err)
		}
		producers = append(producers, p)
	}
	return producers, rows.Err()
}

// Upsert writes the full producer row, inserting or overwriting by id.
func (r *ProducerRepository) Upsert(ctx context.Context, p *models.Producer) error {
	query := `
		INSERT INTO producers (id, name, description, address, email, phone, image_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			address = EXCLUDED.address,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			image_url = EXCLUDED.image_url
	`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.Description,
		p.Address, p.Email, p.Phone, p.ImageURL)
	if err != nil {
		return fmt.Errorf("failed to upsert producer %s: %w", p.ID, err)
	}
	return nil
}

// Delete removes a producer from the remote store.
func (r *ProducerRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM producers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete producer %s: %w", id, err)
	}
	return nil
}
