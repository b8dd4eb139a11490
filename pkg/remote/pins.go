package remote

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// PinRepo stores one hashed PIN per user, replacing on conflict. It
// implements credential.PinRepository.
type PinRepo struct {
	db DBTX
}

// NewPinRepo binds the repository to a database handle.
func NewPinRepo(db DBTX) *PinRepo {
	return &PinRepo{db: db}
}

func (r *PinRepo) Get(ctx context.Context, userID string) (string, bool, error) {
	query :=
		`SELECT hashed_pin FROM user_pins
		 WHERE user_id = $1
		 `

	var hash string
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("remote: fetch pin: %w", err)
	}
	return hash, true, nil
}

func (r *PinRepo) Upsert(ctx context.Context, userID, hash string) error {
	query :=
		`INSERT INTO user_pins (user_id, hashed_pin, updated_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE
		 SET hashed_pin = EXCLUDED.hashed_pin, updated_at = EXCLUDED.updated_at
		 `

	if _, err := r.db.ExecContext(ctx, query, userID, hash, time.Now().UTC()); err != nil {
		return fmt.Errorf("remote: upsert pin: %w", err)
	}
	return nil
}

func (r *PinRepo) Delete(ctx context.Context, userID string) error {
	query :=
		`DELETE FROM user_pins
		 WHERE user_id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("remote: delete pin: %w", err)
	}
	return nil
}
