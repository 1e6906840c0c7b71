package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/models"
)

// AppRecordRepository handles remote store operations for the generic
// key/value records.
type AppRecordRepository struct {
	db *sql.DB
}

// NewAppRecordRepository creates a new AppRecordRepository.
func NewAppRecordRepository(database *sql.DB) *AppRecordRepository {
	return &AppRecordRepository{db: database}
}

// Ensure AppRecordRepository implements AppRecordRepositoryInterface
var _ AppRecordRepositoryInterface = (*AppRecordRepository)(nil)

// FetchAll returns every record ordered by key.
func (r *AppRecordRepository) FetchAll(ctx context.Context) ([]models.AppRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value, updated_at FROM app_records ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch app records: %w", err)
	}
	defer rows.Close()

	var records []models.AppRecord
	for rows.Next() {
		var rec models.AppRecord
		if err := rows.Scan(&rec.Key, &rec.Value, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan app record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Upsert writes a record, inserting or overwriting by key.
func (r *AppRecordRepository) Upsert(ctx context.Context, rec *models.AppRecord) error {
	query := `
		INSERT INTO app_records (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = now()
	`
	if _, err := r.db.ExecContext(ctx, query, rec.Key, []byte(rec.Value)); err != nil {
		return fmt.Errorf("failed to upsert app record %s: %w", rec.Key, err)
	}
	return nil
}

// Delete removes a record from the remote store.
func (r *AppRecordRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM app_records WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to delete app record %s: %w", key, err)
	}
	return nil
}
