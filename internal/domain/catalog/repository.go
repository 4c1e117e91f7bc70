package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// pgForeignKeyViolation is the Postgres error code raised when a parent
// reference does not exist. The storage layer is the sole authority on
// referential integrity; the repository only translates its verdict.
const pgForeignKeyViolation = "23503"

// Repository defines catalog data access for one kind
type Repository interface {
	ListAll(ctx context.Context) ([]Record, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Record, error)
	Create(ctx context.Context, rec *Record) error
	Update(ctx context.Context, id uuid.UUID, label, description *string) (*Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db   *sqlx.DB
	desc Descriptor
}

// NewRepository creates a catalog repository for the given kind
func NewRepository(db *sqlx.DB, desc Descriptor) Repository {
	return &repository{db: db, desc: desc}
}

// columns aliases the kind-specific columns onto the Record shape
func (r *repository) columns() string {
	if !r.desc.HasParent() {
		return fmt.Sprintf("id, NULL::uuid AS parent_id, %s AS label, description, created_at, updated_at", r.desc.LabelField)
	}
	return fmt.Sprintf("id, %s AS parent_id, %s AS label, description, created_at, updated_at", r.desc.ParentField, r.desc.LabelField)
}

func (r *repository) ListAll(ctx context.Context) ([]Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY created_at, id`, r.columns(), r.desc.Table)

	recs := []Record{}
	if err := r.db.SelectContext(ctx, &recs, query); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.desc.Table, err)
	}
	return recs, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, r.columns(), r.desc.Table)

	var rec Record
	if err := r.db.GetContext(ctx, &rec, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s %s: %w", r.desc.Table, id, err)
	}
	return &rec, nil
}

func (r *repository) Create(ctx context.Context, rec *Record) error {
	var err error
	if !r.desc.HasParent() {
		query := fmt.Sprintf(`
			INSERT INTO %s (id, %s, description)
			VALUES ($1, $2, $3)
			RETURNING created_at, updated_at
		`, r.desc.Table, r.desc.LabelField)
		err = r.db.QueryRowxContext(ctx, query, rec.ID, rec.Label, rec.Description).
			Scan(&rec.CreatedAt, &rec.UpdatedAt)
	} else {
		query := fmt.Sprintf(`
			INSERT INTO %s (id, %s, %s, description)
			VALUES ($1, $2, $3, $4)
			RETURNING created_at, updated_at
		`, r.desc.Table, r.desc.ParentField, r.desc.LabelField)
		err = r.db.QueryRowxContext(ctx, query, rec.ID, rec.ParentID, rec.Label, rec.Description).
			Scan(&rec.CreatedAt, &rec.UpdatedAt)
	}
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgForeignKeyViolation {
			return ErrParentNotFound
		}
		return fmt.Errorf("insert into %s: %w", r.desc.Table, err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, label, description *string) (*Record, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = COALESCE($2, %s),
			description = COALESCE($3, description),
			updated_at = NOW()
		WHERE id = $1
		RETURNING %s
	`, r.desc.Table, r.desc.LabelField, r.desc.LabelField, r.columns())

	var rec Record
	if err := r.db.GetContext(ctx, &rec, query, id, label, description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update %s %s: %w", r.desc.Table, id, err)
	}
	return &rec, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.desc.Table)

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", r.desc.Table, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
