package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"conferencecentral/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

// Register atomically adds a registration row and takes one seat. The
// conference row is locked for the duration of the transaction so two
// concurrent registrations cannot both take the last seat.
func (r *registrationRepository) Register(ctx context.Context, profileID, conferenceID string, now time.Time) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var seats int
	err = tx.QueryRowContext(ctx,
		`SELECT seats_available FROM conferences WHERE id = $1 FOR UPDATE`,
		conferenceID,
	).Scan(&seats)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	var registered bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM registrations WHERE conference_id = $1 AND profile_id = $2)`,
		conferenceID, profileID,
	).Scan(&registered)
	if err != nil {
		return err
	}
	if registered {
		return domain.ErrAlreadyRegistered
	}
	if seats <= 0 {
		return domain.ErrNoSeatsAvailable
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO registrations (conference_id, profile_id, created_at) VALUES ($1, $2, $3)`,
		conferenceID, profileID, now,
	); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE conferences SET seats_available = seats_available - 1, updated_at = $2 WHERE id = $1`,
		conferenceID, now,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// Unregister atomically removes the registration row and returns the seat.
// Returns false without mutating anything when the profile was not
// registered.
func (r *registrationRepository) Unregister(ctx context.Context, profileID, conferenceID string) (bool, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var seats int
	err = tx.QueryRowContext(ctx,
		`SELECT seats_available FROM conferences WHERE id = $1 FOR UPDATE`,
		conferenceID,
	).Scan(&seats)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.ErrNotFound
		}
		return false, err
	}

	result, err := tx.ExecContext(ctx,
		`DELETE FROM registrations WHERE conference_id = $1 AND profile_id = $2`,
		conferenceID, profileID,
	)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if rows == 0 {
		return false, tx.Commit()
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE conferences SET seats_available = seats_available + 1, updated_at = NOW() WHERE id = $1`,
		conferenceID,
	); err != nil {
		return false, err
	}

	return true, tx.Commit()
}
