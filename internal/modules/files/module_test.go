package files

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/yago/fileuploadd/internal/shared/infrastructure/config"
)

func TestNewModule_PostgresBackend(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := NewModule(sqlx.NewDb(db, "sqlmock"), nil, config.FileStorageConfig{
		Backend:   "postgres",
		MaxSizeMB: 100000,
	})
	require.NotNil(t, m)
	require.NotNil(t, m.Service())
	require.NotNil(t, m.HTTPHandler())
}

func TestNewModule_RedisBackend(t *testing.T) {
	client, _ := redismock.NewClientMock()

	m := NewModule(nil, client, config.FileStorageConfig{
		Backend:   "redis",
		MaxSizeMB: 100000,
	})
	require.NotNil(t, m)
	require.NotNil(t, m.Service())
	require.NotNil(t, m.HTTPHandler())
}
