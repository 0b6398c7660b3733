package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"veridoc/internal/domain"
	"veridoc/internal/port"
)

type documentRepo struct {
	db *sqlx.DB
}

// NewDocumentRepo creates a new PostgreSQL-backed DocumentRepository.
func NewDocumentRepo(db *sqlx.DB) port.DocumentRepository {
	return &documentRepo{db: db}
}

// documentRow is the flat row shape for the documents table. The nested
// collections are stored as JSONB so the aggregate is replaced in a single
// UPDATE and readers never see it half-written.
type documentRow struct {
	ID               uuid.UUID             `db:"id"`
	Title            string                `db:"title"`
	DocumentNumber   string                `db:"document_number"`
	DocumentCategory string                `db:"document_category"`
	DocumentType     string                `db:"document_type"`
	DocumentSecurity domain.SecurityLevel  `db:"document_security"`
	CreatedBy        string                `db:"created_by"`
	DateCreated      time.Time             `db:"date_created"`
	IssuedBy         string                `db:"issued_by"`
	IssuerRole       domain.UserRole       `db:"issuer_role"`
	DateOfIssue      time.Time             `db:"date_of_issue"`
	EffectiveFrom    time.Time             `db:"effective_from"`
	NextReviewDate   time.Time             `db:"next_review_date"`
	Status           domain.DocumentStatus `db:"status"`
	Versions         json.RawMessage       `db:"versions"`
	Lifecycle        json.RawMessage       `db:"lifecycle"`
	WorkflowConfig   json.RawMessage       `db:"workflow_config"`
	CreatedAt        time.Time             `db:"created_at"`
	UpdatedAt        time.Time             `db:"updated_at"`
}

func toRow(doc *domain.DocumentRecord) (*documentRow, error) {
	versions, err := json.Marshal(doc.Versions)
	if err != nil {
		return nil, fmt.Errorf("marshaling versions: %w", err)
	}
	lifecycle, err := json.Marshal(doc.Lifecycle)
	if err != nil {
		return nil, fmt.Errorf("marshaling lifecycle: %w", err)
	}
	workflow, err := json.Marshal(doc.WorkflowConfig)
	if err != nil {
		return nil, fmt.Errorf("marshaling workflow config: %w", err)
	}
	return &documentRow{
		ID:               doc.ID,
		Title:            doc.Title,
		DocumentNumber:   doc.DocumentNumber,
		DocumentCategory: doc.DocumentCategory,
		DocumentType:     doc.DocumentType,
		DocumentSecurity: doc.DocumentSecurity,
		CreatedBy:        doc.CreatedBy,
		DateCreated:      doc.DateCreated,
		IssuedBy:         doc.IssuedBy,
		IssuerRole:       doc.IssuerRole,
		DateOfIssue:      doc.DateOfIssue,
		EffectiveFrom:    doc.EffectiveFrom,
		NextReviewDate:   doc.NextReviewDate,
		Status:           doc.Status,
		Versions:         versions,
		Lifecycle:        lifecycle,
		WorkflowConfig:   workflow,
		CreatedAt:        doc.CreatedAt,
		UpdatedAt:        doc.UpdatedAt,
	}, nil
}

func fromRow(row *documentRow) (*domain.DocumentRecord, error) {
	doc := &domain.DocumentRecord{
		ID:               row.ID,
		Title:            row.Title,
		DocumentNumber:   row.DocumentNumber,
		DocumentCategory: row.DocumentCategory,
		DocumentType:     row.DocumentType,
		DocumentSecurity: row.DocumentSecurity,
		CreatedBy:        row.CreatedBy,
		DateCreated:      row.DateCreated,
		IssuedBy:         row.IssuedBy,
		IssuerRole:       row.IssuerRole,
		DateOfIssue:      row.DateOfIssue,
		EffectiveFrom:    row.EffectiveFrom,
		NextReviewDate:   row.NextReviewDate,
		Status:           row.Status,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
	if err := json.Unmarshal(row.Versions, &doc.Versions); err != nil {
		return nil, fmt.Errorf("unmarshaling versions: %w", err)
	}
	if err := json.Unmarshal(row.Lifecycle, &doc.Lifecycle); err != nil {
		return nil, fmt.Errorf("unmarshaling lifecycle: %w", err)
	}
	if err := json.Unmarshal(row.WorkflowConfig, &doc.WorkflowConfig); err != nil {
		return nil, fmt.Errorf("unmarshaling workflow config: %w", err)
	}
	return doc, nil
}

func (r *documentRepo) Create(ctx context.Context, doc *domain.DocumentRecord) error {
	row, err := toRow(doc)
	if err != nil {
		return fmt.Errorf("documentRepo.Create: %w", err)
	}
	query := `INSERT INTO documents (id, title, document_number, document_category, document_type,
		document_security, created_by, date_created, issued_by, issuer_role, date_of_issue,
		effective_from, next_review_date, status, versions, lifecycle, workflow_config,
		created_at, updated_at)
		VALUES (:id, :title, :document_number, :document_category, :document_type,
		:document_security, :created_by, :date_created, :issued_by, :issuer_role, :date_of_issue,
		:effective_from, :next_review_date, :status, :versions, :lifecycle, :workflow_config,
		:created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("documentRepo.Create: %w", err)
	}
	return nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DocumentRecord, error) {
	var row documentRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM documents WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("documentRepo.GetByID: %w", err)
	}
	return fromRow(&row)
}

func (r *documentRepo) List(ctx context.Context, filter *domain.DocumentFilter, offset, limit int) ([]domain.DocumentRecord, int, error) {
	where := "WHERE 1=1"
	args := map[string]interface{}{
		"offset": offset,
		"limit":  limit,
	}
	if filter != nil {
		if filter.Search != "" {
			where += ` AND (title ILIKE :search OR document_number ILIKE :search
				OR created_by ILIKE :search OR document_category ILIKE :search)`
			args["search"] = "%" + filter.Search + "%"
		}
		if filter.Type != "" {
			where += " AND document_type = :type"
			args["type"] = filter.Type
		}
		if filter.Security != "" {
			where += " AND document_security = :security"
			args["security"] = filter.Security
		}
		if filter.Status != "" {
			where += " AND status = :status"
			args["status"] = filter.Status
		}
	}

	countQuery, countArgs, err := sqlx.Named("SELECT COUNT(*) FROM documents "+where, args)
	if err != nil {
		return nil, 0, fmt.Errorf("documentRepo.List count: %w", err)
	}
	var total int
	if err := r.db.GetContext(ctx, &total, r.db.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, fmt.Errorf("documentRepo.List count: %w", err)
	}

	listQuery, listArgs, err := sqlx.Named(
		"SELECT * FROM documents "+where+" ORDER BY date_created DESC OFFSET :offset LIMIT :limit", args)
	if err != nil {
		return nil, 0, fmt.Errorf("documentRepo.List: %w", err)
	}
	var rows []documentRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(listQuery), listArgs...); err != nil {
		return nil, 0, fmt.Errorf("documentRepo.List: %w", err)
	}

	docs := make([]domain.DocumentRecord, 0, len(rows))
	for i := range rows {
		doc, err := fromRow(&rows[i])
		if err != nil {
			return nil, 0, fmt.Errorf("documentRepo.List: %w", err)
		}
		docs = append(docs, *doc)
	}
	return docs, total, nil
}

func (r *documentRepo) Update(ctx context.Context, doc *domain.DocumentRecord) error {
	doc.UpdatedAt = time.Now().UTC()
	row, err := toRow(doc)
	if err != nil {
		return fmt.Errorf("documentRepo.Update: %w", err)
	}
	query := `UPDATE documents SET title = :title, document_number = :document_number,
		document_category = :document_category, document_type = :document_type,
		document_security = :document_security, issued_by = :issued_by, issuer_role = :issuer_role,
		date_of_issue = :date_of_issue, effective_from = :effective_from,
		next_review_date = :next_review_date, status = :status, versions = :versions,
		lifecycle = :lifecycle, workflow_config = :workflow_config, updated_at = :updated_at
		WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, row)
	if err != nil {
		return fmt.Errorf("documentRepo.Update: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("documentRepo.Update: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *documentRepo) StatusSummary(ctx context.Context) (*domain.StatusSummary, error) {
	type statusCount struct {
		Status domain.DocumentStatus `db:"status"`
		Count  int                   `db:"count"`
	}
	var counts []statusCount
	err := r.db.SelectContext(ctx, &counts,
		"SELECT status, COUNT(*) AS count FROM documents GROUP BY status")
	if err != nil {
		return nil, fmt.Errorf("documentRepo.StatusSummary: %w", err)
	}

	summary := &domain.StatusSummary{ByStatus: map[domain.DocumentStatus]int{}}
	for _, c := range counts {
		summary.ByStatus[c.Status] = c.Count
		summary.Total += c.Count
	}

	err = r.db.GetContext(ctx, &summary.OverdueReview,
		"SELECT COUNT(*) FROM documents WHERE next_review_date < NOW() AND status NOT IN ($1, $2)",
		domain.StatusObsolete, domain.StatusDraft)
	if err != nil {
		return nil, fmt.Errorf("documentRepo.StatusSummary overdue: %w", err)
	}
	return summary, nil
}
