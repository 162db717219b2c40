//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/baharkarakas/exercise-tracker/internal/db"
	"github.com/baharkarakas/exercise-tracker/internal/models"
	"github.com/baharkarakas/exercise-tracker/internal/repository"
	"github.com/baharkarakas/exercise-tracker/internal/repository/postgres"
)

func newRepos(t *testing.T) repository.Repositories {
	t.Helper()
	ctx := context.Background()

	pg, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
		postgrescontainer.WithDatabase("exercises"),
		postgrescontainer.WithUsername("tracker"),
		postgrescontainer.WithPassword("tracker"),
		postgrescontainer.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := db.NewPool(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, db.RunMigrations(ctx, pool))
	require.NoError(t, db.RunMigrations(ctx, pool), "migrations must be re-runnable")

	return postgres.NewRepositories(pool)
}

func TestUsersRoundTrip(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	u := models.User{Username: "alice"}
	require.NoError(t, repos.Users.Create(ctx, &u))
	require.NotEmpty(t, u.ID)

	got, err := repos.Users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	_, err = repos.Users.GetByID(ctx, "not-a-user")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = repos.Users.Create(ctx, &models.User{Username: "alice"})
	assert.ErrorContains(t, err, "duplicate key")
}

func TestExercisesFilterAndLimit(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	u := models.User{Username: "bob"}
	require.NoError(t, repos.Users.Create(ctx, &u))
	for _, d := range []int{1, 15, 31} {
		e := models.Exercise{
			UserID:      u.ID,
			Description: "run",
			Duration:    models.Minutes(d),
			Date:        time.Date(2023, 1, d, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(t, repos.Exercises.Create(ctx, &e))
	}

	from := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 1, 20, 0, 0, 0, 0, time.UTC)
	got, err := repos.Exercises.Find(ctx, models.LogFilter{UserID: u.ID, From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 15, got[0].Duration.Minutes)
	assert.Equal(t, "Sun Jan 15 2023", models.FormatDate(got[0].Date))

	limited, err := repos.Exercises.Find(ctx, models.LogFilter{UserID: u.ID, Limit: 2})
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, 1, limited[0].Duration.Minutes)
}
