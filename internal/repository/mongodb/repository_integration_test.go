//go:build integration

package mongodb_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mongocontainer "github.com/testcontainers/testcontainers-go/modules/mongodb"

	"github.com/baharkarakas/exercise-tracker/internal/db"
	"github.com/baharkarakas/exercise-tracker/internal/models"
	"github.com/baharkarakas/exercise-tracker/internal/repository"
	"github.com/baharkarakas/exercise-tracker/internal/repository/mongodb"
)

func newRepos(t *testing.T) repository.Repositories {
	t.Helper()
	ctx := context.Background()

	container, err := mongocontainer.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := db.NewMongoClient(ctx, uri)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(ctx) })

	database := client.Database("exercisetracker_test")
	require.NoError(t, mongodb.EnsureIndexes(ctx, database))
	return mongodb.NewRepositories(database)
}

func TestUsersRoundTrip(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	u := models.User{Username: "alice"}
	require.NoError(t, repos.Users.Create(ctx, &u))
	assert.Len(t, u.ID, 24)

	got, err := repos.Users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	_, err = repos.Users.GetByID(ctx, "65a1b2c3d4e5f60718293a4b")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repos.Users.GetByID(ctx, "short")
	var ve *models.ValidationError
	assert.ErrorAs(t, err, &ve)

	err = repos.Users.Create(ctx, &models.User{Username: "alice"})
	assert.ErrorContains(t, err, "E11000")
}

func TestExercisesFilterProjectAndLimit(t *testing.T) {
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

	from := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	got, err := repos.Exercises.Find(ctx, models.LogFilter{UserID: u.ID, From: &from})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Empty(t, got[0].UserID)
	assert.Equal(t, "Sun Jan 15 2023", models.FormatDate(got[0].Date))

	limited, err := repos.Exercises.Find(ctx, models.LogFilter{UserID: u.ID, Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
