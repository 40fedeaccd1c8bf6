package experience

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func experienceColumns() []string {
	return []string{"id", "title", "description", "location", "price", "image_url", "about", "created_at"}
}

func TestList_All(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT id, title, description, location, price, image_url, about, created_at FROM experiences ORDER BY id").
		WillReturnRows(sqlmock.NewRows(experienceColumns()).
			AddRow(1, "Kayaking", "desc", "Udupi", 999.0, "", "", time.Now()).
			AddRow(2, "Coffee Trail", "desc", "Coorg", 1299.0, "", "", time.Now()))

	experiences, err := repo.List(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, experiences, 2)
	assert.Equal(t, "Kayaking", experiences[0].Title)
	assert.Equal(t, 999.0, experiences[0].Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_SearchFiltersByTitleLocationDescription(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT id, title, description, location, price, image_url, about, created_at FROM experiences WHERE (title ILIKE $1 OR location ILIKE $2 OR description ILIKE $3) ORDER BY id").
		WithArgs("%coorg%", "%coorg%", "%coorg%").
		WillReturnRows(sqlmock.NewRows(experienceColumns()).
			AddRow(2, "Coffee Trail", "desc", "Coorg", 1299.0, "", "", time.Now()))

	experiences, err := repo.List(context.Background(), "coorg")

	require.NoError(t, err)
	require.Len(t, experiences, 1)
	assert.Equal(t, "Coorg", experiences[0].Location)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_Success(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT id, title, description, location, price, image_url, about, created_at FROM experiences WHERE id = $1").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(experienceColumns()).
			AddRow(1, "Kayaking", "desc", "Udupi", 999.0, "url", "about", time.Now()))

	exp, err := repo.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), exp.ID)
	assert.Equal(t, "Kayaking", exp.Title)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT id, title, description, location, price, image_url, about, created_at FROM experiences WHERE id = $1").
		WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows(experienceColumns()))

	_, err := repo.GetByID(context.Background(), 999)

	require.ErrorIs(t, err, ErrExperienceNotFound)
}
