//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultOrgID groups every fixture user and resource unless a test brings
// its own organization.
var DefaultOrgID = uuid.MustParse("6f1c2a48-8d5a-4f30-9f57-0b1a2c3d4e5f")

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, org_id, is_active)
		VALUES ($1, $2, $3, $4, $5, true)
		ON CONFLICT (email) DO NOTHING`,
		userID, email, testPasswordHash, role, DefaultOrgID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

// CreateTestResource inserts a golf resource with ten-minute tee slots.
func CreateTestResource(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	resourceID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO resources (id, org_id, name, vertical,
			slot_interval_minutes, default_duration_minutes, max_capacity_per_slot,
			min_party_size, allow_join_existing, timezone)
		VALUES ($1, $2, $3, 'golf', 10, 10, 4, 1, true, 'America/New_York')`,
		resourceID, DefaultOrgID, name)
	require.NoError(t, err)

	return resourceID
}

// OpenResourceAllWeek enables every weekday with a single 09:00-17:00 range.
func OpenResourceAllWeek(t *testing.T, db DBLike, resourceID uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	for weekday := 0; weekday < 7; weekday++ {
		_, err := db.Exec(ctx, `
			INSERT INTO weekly_schedules (resource_id, weekday, enabled, time_ranges)
			VALUES ($1, $2, true, '[[540, 1020]]')
			ON CONFLICT (resource_id, weekday)
			DO UPDATE SET enabled = true, time_ranges = '[[540, 1020]]'`,
			resourceID, weekday)
		require.NoError(t, err)
	}
}

func CreateTestBlackout(t *testing.T, db DBLike, resourceID uuid.UUID, date string, recurring bool) uuid.UUID {
	t.Helper()

	blackoutID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO blackout_dates (id, resource_id, date, reason, recurring)
		VALUES ($1, $2, $3, 'maintenance', $4)`,
		blackoutID, resourceID, date, recurring)
	require.NoError(t, err)

	return blackoutID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
