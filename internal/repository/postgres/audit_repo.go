package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"veridoc/internal/domain"
	"veridoc/internal/port"
)

type auditRepo struct {
	db *sqlx.DB
}

// NewAuditRepo creates a new PostgreSQL-backed AuditRepository. The table
// carries a bigserial seq column so entries have a stable total order even
// when timestamps collide; there is no UPDATE or DELETE path.
func NewAuditRepo(db *sqlx.DB) port.AuditRepository {
	return &auditRepo{db: db}
}

type auditRow struct {
	ID          uuid.UUID          `db:"id"`
	DocumentID  uuid.UUID          `db:"document_id"`
	Seq         int64              `db:"seq"`
	Timestamp   time.Time          `db:"timestamp"`
	Actor       string             `db:"actor"`
	Role        domain.UserRole    `db:"role"`
	Action      domain.AuditAction `db:"action"`
	Description string             `db:"description"`
	Metadata    json.RawMessage    `db:"metadata"`
}

func (r *auditRepo) Append(ctx context.Context, event *domain.AuditEvent) error {
	metadata := json.RawMessage("{}")
	if len(event.Metadata) > 0 {
		encoded, err := json.Marshal(event.Metadata)
		if err != nil {
			return fmt.Errorf("auditRepo.Append: %w", err)
		}
		metadata = encoded
	}

	var seq int64
	err := r.db.GetContext(ctx, &seq,
		`INSERT INTO audit_events (id, document_id, timestamp, actor, role, action, description, metadata)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING seq`,
		event.ID, event.DocumentID, event.Timestamp, event.Actor, event.Role,
		event.Action, event.Description, metadata)
	if err != nil {
		return fmt.Errorf("auditRepo.Append: %w", err)
	}
	event.Seq = seq
	return nil
}

func (r *auditRepo) ListByDocument(ctx context.Context, documentID uuid.UUID, filter *domain.AuditFilter) ([]domain.AuditEvent, error) {
	query := "SELECT * FROM audit_events WHERE document_id = $1"
	args := []interface{}{documentID}

	if filter != nil && filter.Search != "" {
		query += fmt.Sprintf(" AND (action ILIKE $%d OR description ILIKE $%d OR actor ILIKE $%d)",
			len(args)+1, len(args)+1, len(args)+1)
		args = append(args, "%"+filter.Search+"%")
	}
	if filter != nil && filter.Actor != "" {
		query += fmt.Sprintf(" AND actor = $%d", len(args)+1)
		args = append(args, filter.Actor)
	}
	// seq is the insertion order; timestamps can collide or skew.
	query += " ORDER BY seq ASC"

	var rows []auditRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("auditRepo.ListByDocument: %w", err)
	}

	events := make([]domain.AuditEvent, 0, len(rows))
	for _, row := range rows {
		event := domain.AuditEvent{
			ID:          row.ID,
			DocumentID:  row.DocumentID,
			Seq:         row.Seq,
			Timestamp:   row.Timestamp,
			Actor:       row.Actor,
			Role:        row.Role,
			Action:      row.Action,
			Description: row.Description,
		}
		if len(row.Metadata) > 0 && string(row.Metadata) != "{}" {
			if err := json.Unmarshal(row.Metadata, &event.Metadata); err != nil {
				return nil, fmt.Errorf("auditRepo.ListByDocument metadata: %w", err)
			}
		}
		events = append(events, event)
	}
	return events, nil
}
