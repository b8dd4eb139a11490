package remote

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Row is a hosted diary or note record scoped to one user.
type Row struct {
	ID        int64
	UserID    string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ErrRowNotFound reports an update or delete that matched nothing.
var ErrRowNotFound = errors.New("remote: row not found")

// EntryRepo is row-level CRUD over hosted diary entries, always filtered by
// user id.
type EntryRepo struct {
	db    DBTX
	table string
}

// NewEntryRepo binds the repository to a database handle.
func NewEntryRepo(db DBTX) *EntryRepo {
	return &EntryRepo{db: db, table: "diary_entries"}
}

// NewNoteRepo is the same row shape over the hosted notes table.
func NewNoteRepo(db DBTX) *EntryRepo {
	return &EntryRepo{db: db, table: "notes"}
}

// List returns the user's rows, newest first.
func (r *EntryRepo) List(ctx context.Context, userID string) ([]Row, error) {
	query := fmt.Sprintf(
		`SELECT id, user_id, content, created_at, updated_at FROM %s
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `, r.table)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("remote: list %s: %w", r.table, err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var row Row
		if err := rows.Scan(&row.ID, &row.UserID, &row.Content, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("remote: scan %s: %w", r.table, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("remote: list %s: %w", r.table, err)
	}
	return out, nil
}

// Create inserts a row for the user and returns it with its id and stamps.
func (r *EntryRepo) Create(ctx context.Context, userID, content string) (*Row, error) {
	query := fmt.Sprintf(
		`INSERT INTO %s (user_id, content)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at
		 `, r.table)

	row := &Row{UserID: userID, Content: content}
	err := r.db.QueryRowContext(ctx, query, userID, content).
		Scan(&row.ID, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("remote: create %s: %w", r.table, err)
	}
	return row, nil
}

// Update rewrites the content of the user's row.
func (r *EntryRepo) Update(ctx context.Context, userID string, id int64, content string) (*Row, error) {
	query := fmt.Sprintf(
		`UPDATE %s SET content = $1, updated_at = now()
		 WHERE id = $2 AND user_id = $3
		 RETURNING id, user_id, content, created_at, updated_at
		 `, r.table)

	row := &Row{}
	err := r.db.QueryRowContext(ctx, query, content, id, userID).
		Scan(&row.ID, &row.UserID, &row.Content, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRowNotFound
		}
		return nil, fmt.Errorf("remote: update %s: %w", r.table, err)
	}
	return row, nil
}

// Delete removes the user's row.
func (r *EntryRepo) Delete(ctx context.Context, userID string, id int64) error {
	query := fmt.Sprintf(
		`DELETE FROM %s
		 WHERE id = $1 AND user_id = $2
		 `, r.table)

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("remote: delete %s: %w", r.table, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrRowNotFound
	}
	return nil
}
