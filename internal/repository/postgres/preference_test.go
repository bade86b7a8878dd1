package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestPreferenceRepo_GetPreference(t *testing.T) {
	tests := []struct {
		name          string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedValue string
		expectedFound bool
		expectedError bool
	}{
		{
			name:          "stored value",
			mockRows:      sqlmock.NewRows([]string{"value"}).AddRow("words"),
			expectedValue: "words",
			expectedFound: true,
		},
		{
			name:          "nothing stored",
			mockError:     sql.ErrNoRows,
			expectedFound: false,
		},
		{
			name:          "database error",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewPreferenceRepo(db)

			query := "SELECT value FROM user_preferences WHERE user_id = \\$1 AND key = \\$2"
			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(int64(42), "current_view").WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(int64(42), "current_view").WillReturnRows(tt.mockRows)
			}

			value, found, err := repo.GetPreference(42, "current_view")

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedValue, value)
				assert.Equal(t, tt.expectedFound, found)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPreferenceRepo_SetPreference(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPreferenceRepo(db)

	mock.ExpectExec("INSERT INTO user_preferences").
		WithArgs(int64(42), "current_view", "exercises").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.SetPreference(42, "current_view", "exercises")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepo_SetPreference_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPreferenceRepo(db)

	mock.ExpectExec("INSERT INTO user_preferences").
		WithArgs(int64(42), "current_view", "home").
		WillReturnError(fmt.Errorf("db error"))

	err = repo.SetPreference(42, "current_view", "home")

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
