//go:build integration

package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDatabaseSetup holds a migrated database for repository tests.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL, or starts a throwaway
// postgres container when it is unset, and applies every migration.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()
	ctx := context.Background()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		pgContainer, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("worktime_test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second),
			),
		)
		require.NoError(t, err)
		t.Cleanup(func() { pgContainer.Terminate(ctx) })

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	require.NoError(t, database.RunMigrations(dsn))

	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 5, MinConns: 1})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	setup := &TestDatabaseSetup{DB: db}
	require.NoError(t, setup.TruncateAllTables(ctx))
	return setup
}

// TruncateAllTables empties every table in dependency order.
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := t.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"daily_summaries",
		"leave_records",
		"work_sessions",
		"employee_special_day_types",
		"special_day_types",
		"company_work_settings",
		"company_holidays",
		"employee_overtime_rules",
		"overtime_rules",
		"employee_schedules",
		"shift_templates",
		"employees",
		"companies",
	}
	for _, table := range tables {
		if _, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return tx.Commit(ctx)
}

// CreateCompany inserts a company and returns its id.
func (t *TestDatabaseSetup) CreateCompany(tb testing.TB, name string) string {
	tb.Helper()
	var id string
	err := t.DB.QueryRow(context.Background(), `INSERT INTO companies (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	require.NoError(tb, err)
	return id
}

// CreateEmployee inserts an active employee and returns its id.
func (t *TestDatabaseSetup) CreateEmployee(tb testing.TB, companyID, name string) string {
	tb.Helper()
	var id string
	err := t.DB.QueryRow(context.Background(),
		`INSERT INTO employees (company_id, full_name) VALUES ($1, $2) RETURNING id`, companyID, name,
	).Scan(&id)
	require.NoError(tb, err)
	return id
}

// CreateBossCall inserts the boss_call special-day type for a company.
func (t *TestDatabaseSetup) CreateBossCall(tb testing.TB, companyID string) string {
	tb.Helper()
	var id string
	err := t.DB.QueryRow(context.Background(), `
		INSERT INTO special_day_types (company_id, code, name, calculation_mode, multiplier, applies_to_all)
		VALUES ($1, 'boss_call', 'Boss Call', 'rounding', 1.5, TRUE)
		RETURNING id
	`, companyID).Scan(&id)
	require.NoError(tb, err)
	return id
}
