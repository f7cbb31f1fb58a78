package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"conferencecentral/internal/domain"
)

func TestRegistrationRepository_Register(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
		errIs   error
	}{
		{
			name: "success takes one seat",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT seats_available FROM conferences`).
					WithArgs("conf-1").
					WillReturnRows(sqlmock.NewRows([]string{"seats_available"}).AddRow(3))
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs("conf-1", "prof-1").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectExec(`INSERT INTO registrations`).
					WithArgs("conf-1", "prof-1", now).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`UPDATE conferences SET seats_available = seats_available - 1`).
					WithArgs("conf-1", now).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "conference not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT seats_available FROM conferences`).
					WithArgs("conf-1").
					WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			wantErr: true,
			errIs:   domain.ErrNotFound,
		},
		{
			name: "already registered",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT seats_available FROM conferences`).
					WithArgs("conf-1").
					WillReturnRows(sqlmock.NewRows([]string{"seats_available"}).AddRow(3))
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs("conf-1", "prof-1").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectRollback()
			},
			wantErr: true,
			errIs:   domain.ErrAlreadyRegistered,
		},
		{
			name: "no seats available",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT seats_available FROM conferences`).
					WithArgs("conf-1").
					WillReturnRows(sqlmock.NewRows([]string{"seats_available"}).AddRow(0))
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs("conf-1", "prof-1").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectRollback()
			},
			wantErr: true,
			errIs:   domain.ErrNoSeatsAvailable,
		},
		{
			name: "serialization failure surfaces raw pq error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT seats_available FROM conferences`).
					WithArgs("conf-1").
					WillReturnError(&pq.Error{Code: "40001"})
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewRegistrationRepository(db)
			err = repo.Register(ctx, "prof-1", "conf-1", now)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRegistrationRepository_Unregister(t *testing.T) {
	ctx := context.Background()

	t.Run("registered returns true and gives seat back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT seats_available FROM conferences`).
			WithArgs("conf-1").
			WillReturnRows(sqlmock.NewRows([]string{"seats_available"}).AddRow(2))
		mock.ExpectExec(`DELETE FROM registrations`).
			WithArgs("conf-1", "prof-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE conferences SET seats_available = seats_available \+ 1`).
			WithArgs("conf-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewRegistrationRepository(db)
		removed, err := repo.Unregister(ctx, "prof-1", "conf-1")
		require.NoError(t, err)
		require.True(t, removed)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not registered is a no-op returning false", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT seats_available FROM conferences`).
			WithArgs("conf-1").
			WillReturnRows(sqlmock.NewRows([]string{"seats_available"}).AddRow(2))
		mock.ExpectExec(`DELETE FROM registrations`).
			WithArgs("conf-1", "prof-1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		repo := NewRegistrationRepository(db)
		removed, err := repo.Unregister(ctx, "prof-1", "conf-1")
		require.NoError(t, err)
		require.False(t, removed)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conference not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT seats_available FROM conferences`).
			WithArgs("conf-1").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		repo := NewRegistrationRepository(db)
		_, err = repo.Unregister(ctx, "prof-1", "conf-1")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
