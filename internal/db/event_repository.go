package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hueforge/huebuild/internal/models"
)

// Event repository errors.
var (
	ErrInvalidEvent = errors.New("invalid event")
)

// EventRepository handles the append-only theme event log.
type EventRepository struct {
	db *DB
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{db: db}
}

// EventQuery defines filters for listing events.
type EventQuery struct {
	Type  *models.EventType // Filter by event type
	Since *time.Time        // Events at or after this time (inclusive)
	Limit int               // Max results to return
}

// Append adds an event to the log, assigning an id and timestamp when
// the caller left them empty.
func (r *EventRepository) Append(ctx context.Context, event *models.ThemeEvent) error {
	if event == nil || event.Type == "" {
		return ErrInvalidEvent
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	var payload any
	if len(event.Payload) > 0 {
		payload = string(event.Payload)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO theme_events (id, type, payload, created_at)
		VALUES (?, ?, ?, ?)
	`,
		event.ID,
		string(event.Type),
		payload,
		event.Timestamp.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert theme event: %w", err)
	}

	return nil
}

// List returns events matching the query, most recent first.
func (r *EventRepository) List(ctx context.Context, q EventQuery) ([]*models.ThemeEvent, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 100
	}

	query := `SELECT id, type, payload, created_at FROM theme_events WHERE 1=1`
	args := []any{}

	if q.Type != nil {
		query += ` AND type = ?`
		args = append(args, string(*q.Type))
	}
	if q.Since != nil {
		query += ` AND created_at >= ?`
		args = append(args, q.Since.UTC().Format(time.RFC3339))
	}
	query += ` ORDER BY created_at DESC, id LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query theme events: %w", err)
	}
	defer rows.Close()

	events := make([]*models.ThemeEvent, 0)
	for rows.Next() {
		var (
			event     models.ThemeEvent
			eventType string
			payload   *string
			createdAt string
		)
		if err := rows.Scan(&event.ID, &eventType, &payload, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan theme event: %w", err)
		}
		event.Type = models.EventType(eventType)
		if payload != nil {
			event.Payload = []byte(*payload)
		}
		ts, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse event timestamp: %w", err)
		}
		event.Timestamp = ts
		events = append(events, &event)
	}

	return events, rows.Err()
}
