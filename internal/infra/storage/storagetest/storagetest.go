// Package storagetest подключение к тестовой PostgreSQL для интеграционных тестов
package storagetest

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/santilopez19/TurneroPremium/internal/infra/storage/migrations"
	"github.com/santilopez19/TurneroPremium/pkg/logger"
)

// DSNEnv переменная окружения со строкой подключения к тестовой БД
const DSNEnv = "TEST_DATABASE_DSN"

// Open подключается к тестовой БД, применяет миграции и очищает таблицы
// Без TEST_DATABASE_DSN тест пропускается. Пакеты делят одну БД: go test -p 1 ./...
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		t.Skipf("%s is not set", DSNEnv)
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, db.PingContext(ctx))
	require.NoError(t, migrations.Apply(ctx, db, logger.NewNop()))

	_, err = db.ExecContext(ctx,
		`TRUNCATE appointments, blocked_dates, blocked_time_slots, business_config, admin_users RESTART IDENTITY`)
	require.NoError(t, err)

	return db
}
