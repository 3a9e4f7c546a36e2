package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectSQLite(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err, "sqlite driver must be registered")

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestConnectSQLiteFile(t *testing.T) {
	db, err := Connect(t.TempDir() + "/app.db")
	require.NoError(t, err)

	require.NoError(t, db.Exec("CREATE TABLE smoke_rows (id INTEGER PRIMARY KEY)").Error)
	require.NoError(t, db.Exec("INSERT INTO smoke_rows (id) VALUES (1)").Error)

	var count int64
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM smoke_rows").Scan(&count).Error)
	assert.EqualValues(t, 1, count)
}
