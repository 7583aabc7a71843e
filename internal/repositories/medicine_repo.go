package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/careguard/careguard-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresMedicineRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresMedicineRepository(pool *pgxpool.Pool) *PostgresMedicineRepository {
	return &PostgresMedicineRepository{pool: pool}
}

func (r *PostgresMedicineRepository) Create(ctx context.Context, medicine *models.Medicine) error {
	query := `INSERT INTO medicines (user_id, name, time, frequency, taken)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		medicine.UserID,
		medicine.Name,
		medicine.Time,
		medicine.Frequency,
		medicine.Taken,
	).Scan(&medicine.ID, &medicine.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create medicine: %w", err)
	}
	return nil
}

func (r *PostgresMedicineRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Medicine, error) {
	query := `SELECT id, user_id, name, time, frequency, taken, created_at
	          FROM medicines
	          WHERE user_id = $1
	          ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query medicines: %w", err)
	}
	defer rows.Close()

	medicines := []*models.Medicine{}
	for rows.Next() {
		var medicine models.Medicine
		err := rows.Scan(
			&medicine.ID,
			&medicine.UserID,
			&medicine.Name,
			&medicine.Time,
			&medicine.Frequency,
			&medicine.Taken,
			&medicine.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan medicine: %w", err)
		}
		medicines = append(medicines, &medicine)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read medicines: %w", err)
	}
	return medicines, nil
}

func (r *PostgresMedicineRepository) SetTaken(ctx context.Context, id, requesterID uuid.UUID, taken bool) (*models.Medicine, error) {
	query := `UPDATE medicines SET taken = $1
	          WHERE id = $2 AND user_id = $3
	          RETURNING id, user_id, name, time, frequency, taken, created_at`

	var medicine models.Medicine
	err := r.pool.QueryRow(ctx, query, taken, id, requesterID).Scan(
		&medicine.ID,
		&medicine.UserID,
		&medicine.Name,
		&medicine.Time,
		&medicine.Frequency,
		&medicine.Taken,
		&medicine.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update medicine: %w", err)
	}
	return &medicine, nil
}

func (r *PostgresMedicineRepository) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	query := `DELETE FROM medicines WHERE id = $1 AND user_id = $2`

	result, err := r.pool.Exec(ctx, query, id, requesterID)
	if err != nil {
		return fmt.Errorf("failed to delete medicine: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
