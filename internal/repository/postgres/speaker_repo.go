package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"conferencecentral/internal/domain"
)

type speakerRepository struct {
	DB *sql.DB
}

func NewSpeakerRepository(db *sql.DB) domain.SpeakerRepository {
	return &speakerRepository{
		DB: db,
	}
}

// RecordMention counts one speaker appearance per session. The session claim
// and the counter increment happen in the same transaction, so a redelivered
// event either sees its claim already taken (counted=false) or increments
// exactly once.
func (r *speakerRepository) RecordMention(ctx context.Context, sessionID, speaker string) (int, bool, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO counted_sessions (session_id, speaker) VALUES ($1, $2) ON CONFLICT (session_id) DO NOTHING`,
		sessionID, speaker,
	)
	if err != nil {
		return 0, false, err
	}
	claimed, err := result.RowsAffected()
	if err != nil {
		return 0, false, err
	}

	if claimed == 0 {
		// Duplicate delivery: return the current count without incrementing.
		var count int
		err := tx.QueryRowContext(ctx,
			`SELECT count FROM speaker_counts WHERE speaker = $1`, speaker,
		).Scan(&count)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return 0, false, err
		}
		return count, false, tx.Commit()
	}

	var count int
	err = tx.QueryRowContext(ctx,
		`INSERT INTO speaker_counts (speaker, count) VALUES ($1, 1)
		 ON CONFLICT (speaker) DO UPDATE SET count = speaker_counts.count + 1
		 RETURNING count`,
		speaker,
	).Scan(&count)
	if err != nil {
		return 0, false, err
	}

	return count, true, tx.Commit()
}

func (r *speakerRepository) GetCount(ctx context.Context, speaker string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT count FROM speaker_counts WHERE speaker = $1`, speaker,
	).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}
