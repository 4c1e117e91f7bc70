package catalog

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Record is one row of any catalog table. The parent reference is null
// for projects; the label maps to "name" or "title" per descriptor.
type Record struct {
	ID          uuid.UUID      `db:"id"`
	ParentID    uuid.NullUUID  `db:"parent_id"`
	Label       string         `db:"label"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}
