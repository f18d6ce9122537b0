// Package testhelper provides a migrated PostgreSQL database and seed data
// for integration tests.
package testhelper

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/ebms-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ebms-backend/internal/config"
)

// ExternalDSNEnv names a variable pointing the tests at an existing database
// instead of a container.
const ExternalDSNEnv = "EBMS_TEST_DSN"

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// SetupTestDB returns a pool on a migrated database shared by the whole test
// run. The container starts on first use and lives until the process exits;
// the pool is closed via t.Cleanup. Without Docker and without
// EBMS_TEST_DSN the test is skipped.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if os.Getenv(ExternalDSNEnv) == "" {
		testcontainers.SkipIfProviderIsNotHealthy(t)
	}
	once.Do(func() {
		sharedDSN, initErr = prepare()
	})
	if initErr != nil {
		t.Fatalf("testhelper: setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{
		DSN:             sharedDSN,
		MaxConns:        16,
		MinConns:        1,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: time.Minute,
	})
	if err != nil {
		t.Fatalf("testhelper: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

// DSN returns the connection string of the shared database.
// SetupTestDB must have been called first.
func DSN(t *testing.T) string {
	t.Helper()
	if sharedDSN == "" {
		t.Fatal("testhelper: DSN called before SetupTestDB")
	}
	return sharedDSN
}

func prepare() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dsn := os.Getenv(ExternalDSNEnv)
	if dsn == "" {
		var err error
		if dsn, err = startContainer(ctx); err != nil {
			return "", err
		}
	}
	if _, err := postgres.Migrate(ctx, dsn); err != nil {
		return "", fmt.Errorf("migrate: %w", err)
	}
	return dsn, nil
}

func startContainer(ctx context.Context) (string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "ebms",
				"POSTGRES_PASSWORD": "ebms",
				"POSTGRES_DB":       "ebms_test",
			},
			// postgres logs readiness twice: once for the init server, once for the real one.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	endpoint, err := container.PortEndpoint(ctx, "5432/tcp", "")
	if err != nil {
		return "", fmt.Errorf("container endpoint: %w", err)
	}
	return fmt.Sprintf("postgres://ebms:ebms@%s/ebms_test?sslmode=disable", endpoint), nil
}
