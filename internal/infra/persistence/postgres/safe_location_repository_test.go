package postgres

import (
	"context"
	"testing"
	"time"

	"safezone/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newDryRunDB builds statements without a server and records the last SQL.
// The default write transaction is skipped so Create never opens a connection.
func newDryRunDB(t *testing.T) (*gorm.DB, *string) {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{DSN: "host=localhost user=test dbname=test sslmode=disable"}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	var last string
	capture := func(tx *gorm.DB) { last = tx.Statement.SQL.String() }
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:capture_create", capture))
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture_query", capture))

	return db, &last
}

func TestSafeLocationRepository_UpsertStatement(t *testing.T) {
	db, last := newDryRunDB(t)
	repo := NewSafeLocationRepository(db)

	err := repo.Upsert(context.Background(), &entity.ReferenceLocation{
		UserID:     "user-1",
		Coordinate: entity.Coordinate{Latitude: 25.03, Longitude: 121.56},
		UpdatedAt:  time.Now(),
	})

	require.NoError(t, err)
	assert.Contains(t, *last, `INSERT INTO "safe_locations"`)
	assert.Contains(t, *last, `ON CONFLICT ("user_id") DO UPDATE SET`)
	assert.Contains(t, *last, `"latitude"="excluded"."latitude"`)
	assert.Contains(t, *last, `"updated_at"="excluded"."updated_at"`)
}

func TestSafeLocationRepository_FindStatement(t *testing.T) {
	db, last := newDryRunDB(t)
	repo := NewSafeLocationRepository(db)

	// Dry runs never scan rows, so no record-not-found is raised.
	location, err := repo.FindByUserID(context.Background(), "user-1")

	require.NoError(t, err)
	require.NotNil(t, location)
	assert.Contains(t, *last, `FROM "safe_locations" WHERE user_id = $1`)
}

func TestSafeLocationMapping(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	location := &entity.ReferenceLocation{
		UserID:     "user-1",
		Coordinate: entity.Coordinate{Latitude: 25.03, Longitude: 121.56},
		UpdatedAt:  now,
	}

	m := fromReferenceLocationDomain(location)
	assert.Equal(t, "user-1", m.UserID)
	assert.Equal(t, 25.03, m.Latitude)
	assert.Equal(t, 121.56, m.Longitude)

	assert.Equal(t, location, toReferenceLocationDomain(m))
}

func TestConstraintErrors(t *testing.T) {
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.True(t, isCheckConstraintViolation(assertErr(`new row violates check constraint "chk_safe_locations_latitude" (SQLSTATE 23514)`)))
	assert.False(t, isCheckConstraintViolation(assertErr("connection refused")))
	assert.True(t, isNotNullConstraintViolation(assertErr(`null value in column "latitude" violates not-null constraint (SQLSTATE 23502)`)))
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
