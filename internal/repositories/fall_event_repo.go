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

type PostgresFallEventRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresFallEventRepository(pool *pgxpool.Pool) *PostgresFallEventRepository {
	return &PostgresFallEventRepository{pool: pool}
}

func (r *PostgresFallEventRepository) Create(ctx context.Context, userID uuid.UUID) (*models.FallEvent, error) {
	query := `INSERT INTO fall_events (user_id, detected, status)
	          VALUES ($1, TRUE, $2)
	          RETURNING id, user_id, detected, status, timestamp`

	var event models.FallEvent
	err := r.pool.QueryRow(ctx, query, userID, models.FallStatusPending).Scan(
		&event.ID,
		&event.UserID,
		&event.Detected,
		&event.Status,
		&event.Timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create fall event: %w", err)
	}
	return &event, nil
}

func (r *PostgresFallEventRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.FallEvent, error) {
	query := `SELECT id, user_id, detected, status, timestamp
	          FROM fall_events
	          WHERE user_id = $1
	          ORDER BY timestamp DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query fall events: %w", err)
	}
	defer rows.Close()

	events := []*models.FallEvent{}
	for rows.Next() {
		var event models.FallEvent
		err := rows.Scan(&event.ID, &event.UserID, &event.Detected, &event.Status, &event.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fall event: %w", err)
		}
		events = append(events, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fall events: %w", err)
	}
	return events, nil
}

// UpdateStatus transitions an event to a terminal status. The ownership
// check is part of the WHERE clause so an event belonging to another user
// is indistinguishable from a missing one.
func (r *PostgresFallEventRepository) UpdateStatus(ctx context.Context, id, requesterID uuid.UUID, status string) (*models.FallEvent, error) {
	query := `UPDATE fall_events SET status = $1
	          WHERE id = $2 AND user_id = $3
	          RETURNING id, user_id, detected, status, timestamp`

	var event models.FallEvent
	err := r.pool.QueryRow(ctx, query, status, id, requesterID).Scan(
		&event.ID,
		&event.UserID,
		&event.Detected,
		&event.Status,
		&event.Timestamp,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update fall event: %w", err)
	}
	return &event, nil
}
