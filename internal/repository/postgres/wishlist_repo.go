package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"conferencecentral/internal/domain"
)

type wishlistRepository struct {
	DB *sql.DB
}

func NewWishlistRepository(db *sql.DB) domain.WishlistRepository {
	return &wishlistRepository{
		DB: db,
	}
}

func (r *wishlistRepository) Add(ctx context.Context, profileID, sessionID string, now time.Time) error {
	query := `
		INSERT INTO wishlist_items (profile_id, session_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (profile_id, session_id) DO NOTHING
	`
	_, err := r.DB.ExecContext(ctx, query, profileID, sessionID, now)
	return err
}

func (r *wishlistRepository) ListSessions(ctx context.Context, profileID string) ([]*domain.Session, error) {
	// Inner join drops wishlist entries whose session has been deleted.
	query := fmt.Sprintf(`
		SELECT %s FROM sessions s
		JOIN wishlist_items w ON w.session_id = s.id
		WHERE w.profile_id = $1
		ORDER BY w.created_at ASC
	`, prefixColumns("s", sessionColumns))

	rows, err := r.DB.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]*domain.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
