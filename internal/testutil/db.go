package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/udisondev/multiboard/internal/db/migrations"
)

// EnvTestDSN points the database tests at an existing PostgreSQL instead of
// a container.
const EnvTestDSN = "MULTIBOARD_TEST_DSN"

// SetupTestDB returns a migrated database with empty board tables and its
// DSN. It uses EnvTestDSN when set and starts a PostgreSQL 16 container
// otherwise. The test is skipped when neither is available.
func SetupTestDB(tb testing.TB) (*pgxpool.Pool, string) {
	tb.Helper()
	ctx := context.Background()

	dsn := os.Getenv(EnvTestDSN)
	if dsn == "" {
		dsn = startContainer(tb, ctx)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		tb.Fatalf("connecting to test db: %v", err)
	}
	tb.Cleanup(func() { pool.Close() })

	if err := runMigrations(pool); err != nil {
		tb.Fatalf("running migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, "TRUNCATE boards CASCADE"); err != nil {
		tb.Fatalf("truncating boards: %v", err)
	}
	return pool, dsn
}

func startContainer(tb testing.TB, ctx context.Context) string {
	tb.Helper()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		tb.Skipf("postgres container unavailable: %v", err)
	}
	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			tb.Logf("terminating postgres container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		tb.Fatalf("getting connection string: %v", err)
	}
	return dsn
}

// runMigrations applies the embedded migrations with goose.
func runMigrations(pool *pgxpool.Pool) error {
	connStr := stdlib.RegisterConnConfig(pool.Config().ConnConfig)
	defer stdlib.UnregisterConnConfig(connStr)

	sqlDB, err := sql.Open("pgx", connStr)
	if err != nil {
		return fmt.Errorf("opening sql.DB: %w", err)
	}
	defer sqlDB.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.Up(sqlDB, "."); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}
	return nil
}
