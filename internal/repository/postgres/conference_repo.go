package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"conferencecentral/internal/domain"
)

const conferenceColumns = `id, organizer_id, name, description, topics, city, start_date, end_date, month, max_attendees, seats_available, created_at, updated_at`

type conferenceRepository struct {
	DB *sql.DB
}

func NewConferenceRepository(db *sql.DB) domain.ConferenceRepository {
	return &conferenceRepository{
		DB: db,
	}
}

func (r *conferenceRepository) Create(ctx context.Context, c *domain.Conference) error {
	query := `
		INSERT INTO conferences (organizer_id, name, description, topics, city, start_date, end_date, month, max_attendees, seats_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		c.OrganizerID, c.Name, c.Description, pq.Array(c.Topics), c.City,
		c.StartDate, c.EndDate, c.Month, c.MaxAttendees, c.SeatsAvailable,
		c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
}

func (r *conferenceRepository) GetByID(ctx context.Context, id string) (*domain.Conference, error) {
	query := fmt.Sprintf(`SELECT %s FROM conferences WHERE id = $1`, conferenceColumns)
	row := r.DB.QueryRowContext(ctx, query, id)
	c, err := scanConference(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *conferenceRepository) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Conference, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM conferences
		WHERE organizer_id = $1
		ORDER BY created_at DESC
	`, conferenceColumns)
	return r.listConferences(ctx, query, organizerID)
}

func (r *conferenceRepository) ListByAttendee(ctx context.Context, profileID string) ([]*domain.Conference, error) {
	// Inner join: registrations whose conference has since been deleted
	// simply drop out of the result.
	query := fmt.Sprintf(`
		SELECT %s FROM conferences c
		JOIN registrations reg ON reg.conference_id = c.id
		WHERE reg.profile_id = $1
		ORDER BY reg.created_at DESC
	`, prefixColumns("c", conferenceColumns))
	return r.listConferences(ctx, query, profileID)
}

func (r *conferenceRepository) ListNearlySoldOut(ctx context.Context, maxSeats int) ([]*domain.Conference, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM conferences
		WHERE seats_available > 0 AND seats_available <= $1
		ORDER BY name ASC
	`, conferenceColumns)
	return r.listConferences(ctx, query, maxSeats)
}

// filterColumns maps filter fields to conference columns.
var filterColumns = map[domain.FilterField]string{
	domain.FieldCity:         "city",
	domain.FieldMonth:        "month",
	domain.FieldMaxAttendees: "max_attendees",
}

// Search executes a compiled query plan. Topics clauses apply the operator
// per array element; all other clauses compare the column directly. Results
// are ordered by the inequality field first (the storage contract for range
// scans), then by name as a deterministic tiebreak.
func (r *conferenceRepository) Search(ctx context.Context, plan *domain.QueryPlan) ([]*domain.Conference, error) {
	var (
		where []string
		args  []interface{}
	)
	for i, clause := range plan.Clauses {
		n := i + 1
		if clause.Field == domain.FieldTopics {
			where = append(where, fmt.Sprintf(
				"EXISTS (SELECT 1 FROM unnest(topics) AS topic WHERE topic %s $%d)", clause.Op, n))
		} else {
			where = append(where, fmt.Sprintf("%s %s $%d", filterColumns[clause.Field], clause.Op, n))
		}
		args = append(args, clause.Value)
	}

	query := fmt.Sprintf(`SELECT %s FROM conferences`, conferenceColumns)
	if len(where) > 0 {
		query += "\nWHERE " + strings.Join(where, " AND ")
	}
	if plan.InequalityField != "" && plan.InequalityField != domain.FieldTopics {
		query += fmt.Sprintf("\nORDER BY %s ASC, name ASC", filterColumns[plan.InequalityField])
	} else {
		query += "\nORDER BY name ASC"
	}

	return r.listConferences(ctx, query, args...)
}

func (r *conferenceRepository) listConferences(ctx context.Context, query string, args ...interface{}) ([]*domain.Conference, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	confs := make([]*domain.Conference, 0)
	for rows.Next() {
		c, err := scanConference(rows)
		if err != nil {
			return nil, err
		}
		confs = append(confs, c)
	}
	return confs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanConference(row rowScanner) (*domain.Conference, error) {
	c := &domain.Conference{}
	var startNull, endNull sql.NullTime
	err := row.Scan(
		&c.ID, &c.OrganizerID, &c.Name, &c.Description, pq.Array(&c.Topics), &c.City,
		&startNull, &endNull, &c.Month, &c.MaxAttendees, &c.SeatsAvailable,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if startNull.Valid {
		c.StartDate = &startNull.Time
	}
	if endNull.Valid {
		c.EndDate = &endNull.Time
	}
	return c, nil
}

func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ", ")
	for i, p := range parts {
		parts[i] = alias + "." + p
	}
	return strings.Join(parts, ", ")
}
