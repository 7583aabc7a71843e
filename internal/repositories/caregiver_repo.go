package repositories

import (
	"context"
	"fmt"

	"github.com/careguard/careguard-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresCaregiverRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCaregiverRepository(pool *pgxpool.Pool) *PostgresCaregiverRepository {
	return &PostgresCaregiverRepository{pool: pool}
}

func (r *PostgresCaregiverRepository) Create(ctx context.Context, caregiver *models.Caregiver) error {
	query := `INSERT INTO caregivers (user_id, name, phone)
	          VALUES ($1, $2, $3)
	          RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query, caregiver.UserID, caregiver.Name, caregiver.Phone).
		Scan(&caregiver.ID, &caregiver.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create caregiver: %w", err)
	}
	return nil
}

func (r *PostgresCaregiverRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Caregiver, error) {
	query := `SELECT id, user_id, name, phone, created_at
	          FROM caregivers
	          WHERE user_id = $1
	          ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query caregivers: %w", err)
	}
	defer rows.Close()

	caregivers := []*models.Caregiver{}
	for rows.Next() {
		var caregiver models.Caregiver
		err := rows.Scan(&caregiver.ID, &caregiver.UserID, &caregiver.Name, &caregiver.Phone, &caregiver.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan caregiver: %w", err)
		}
		caregivers = append(caregivers, &caregiver)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read caregivers: %w", err)
	}
	return caregivers, nil
}

func (r *PostgresCaregiverRepository) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	query := `DELETE FROM caregivers WHERE id = $1 AND user_id = $2`

	result, err := r.pool.Exec(ctx, query, id, requesterID)
	if err != nil {
		return fmt.Errorf("failed to delete caregiver: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
