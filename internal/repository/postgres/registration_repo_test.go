package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"campusevents/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestRegistrationRepository_Register(t *testing.T) {
	ctx := context.Background()

	studentExists := func(mock sqlmock.Sqlmock, exists bool) {
		mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM students WHERE id = \$1\)`).
			WithArgs("s1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(exists))
	}
	lockEvent := func(mock sqlmock.Sqlmock, maxCap, current int, active bool) {
		mock.ExpectQuery(`SELECT max_capacity, current_registrations, is_active\s+FROM events\s+WHERE id = \$1\s+FOR UPDATE`).
			WithArgs("e1").
			WillReturnRows(sqlmock.NewRows([]string{"max_capacity", "current_registrations", "is_active"}).
				AddRow(maxCap, current, active))
	}
	noDuplicate := func(mock sqlmock.Sqlmock, exists bool) {
		mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM registrations WHERE student_id = \$1 AND event_id = \$2\)`).
			WithArgs("s1", "e1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(exists))
	}

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success inserts row and increments counter atomically",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				studentExists(mock, true)
				lockEvent(mock, 10, 4, true)
				noDuplicate(mock, false)
				mock.ExpectExec(`INSERT INTO registrations`).
					WithArgs(sqlmock.AnyArg(), "s1", "e1", true, sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`UPDATE events\s+SET current_registrations = current_registrations \+ 1`).
					WithArgs("e1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			wantErr: nil,
		},
		{
			name: "student missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				studentExists(mock, false)
				mock.ExpectRollback()
			},
			wantErr: domain.ErrStudentNotFound,
		},
		{
			name: "event missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				studentExists(mock, true)
				mock.ExpectQuery(`FOR UPDATE`).
					WithArgs("e1").
					WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			wantErr: domain.ErrEventNotFound,
		},
		{
			name: "event inactive",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				studentExists(mock, true)
				lockEvent(mock, 10, 4, false)
				mock.ExpectRollback()
			},
			wantErr: domain.ErrEventInactive,
		},
		{
			name: "duplicate registration",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				studentExists(mock, true)
				lockEvent(mock, 10, 4, true)
				noDuplicate(mock, true)
				mock.ExpectRollback()
			},
			wantErr: domain.ErrAlreadyRegistered,
		},
		{
			name: "event full",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				studentExists(mock, true)
				lockEvent(mock, 10, 10, true)
				noDuplicate(mock, false)
				mock.ExpectRollback()
			},
			wantErr: domain.ErrEventFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewRegistrationRepository(db)
			reg, err := repo.Register(ctx, "s1", "e1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, reg)
			} else {
				require.NoError(t, err)
				require.NotEmpty(t, reg.ID)
				require.Equal(t, "s1", reg.StudentID)
				require.Equal(t, "e1", reg.EventID)
				require.True(t, reg.IsConfirmed)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRegistrationRepository_Cancel(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success deletes row and decrements counter with zero floor",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT current_registrations FROM events WHERE id = \$1 FOR UPDATE`).
					WithArgs("e1").
					WillReturnRows(sqlmock.NewRows([]string{"current_registrations"}).AddRow(3))
				mock.ExpectExec(`DELETE FROM registrations WHERE student_id = \$1 AND event_id = \$2`).
					WithArgs("s1", "e1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`UPDATE events\s+SET current_registrations = GREATEST\(current_registrations - 1, 0\)`).
					WithArgs("e1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			wantErr: nil,
		},
		{
			name: "registration missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`FOR UPDATE`).
					WithArgs("e1").
					WillReturnRows(sqlmock.NewRows([]string{"current_registrations"}).AddRow(3))
				mock.ExpectExec(`DELETE FROM registrations`).
					WithArgs("s1", "e1").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrRegistrationNotFound,
		},
		{
			name: "event missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`FOR UPDATE`).
					WithArgs("e1").
					WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			wantErr: domain.ErrEventNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewRegistrationRepository(db)
			err = repo.Cancel(ctx, "s1", "e1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRegistrationRepository_GetByStudentAndEvent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, student_id, event_id, is_confirmed, registered_at`).
		WithArgs("s1", "e1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "event_id", "is_confirmed", "registered_at"}).
			AddRow("r1", "s1", "e1", true, now))

	repo := NewRegistrationRepository(db)
	reg, err := repo.GetByStudentAndEvent(ctx, "s1", "e1")
	require.NoError(t, err)
	require.Equal(t, "r1", reg.ID)
	require.Equal(t, now, reg.RegisteredAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistrationRepository_GetByStudentAndEvent_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, student_id, event_id, is_confirmed, registered_at`).
		WithArgs("s1", "e1").
		WillReturnError(sql.ErrNoRows)

	repo := NewRegistrationRepository(db)
	_, err = repo.GetByStudentAndEvent(context.Background(), "s1", "e1")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistrationRepository_CountConfirmedByEventID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM registrations WHERE event_id = \$1 AND is_confirmed = TRUE`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	repo := NewRegistrationRepository(db)
	count, err := repo.CountConfirmedByEventID(context.Background(), "e1")
	require.NoError(t, err)
	require.Equal(t, int64(7), count)
	require.NoError(t, mock.ExpectationsWereMet())
}
