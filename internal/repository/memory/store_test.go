package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/exercise-tracker/internal/models"
	"github.com/baharkarakas/exercise-tracker/internal/repository"
)

func TestUsersCreateAndGet(t *testing.T) {
	repos := NewRepositories(New())
	ctx := context.Background()

	u := models.User{Username: "alice"}
	require.NoError(t, repos.Users.Create(ctx, &u))
	require.NotEmpty(t, u.ID)

	got, err := repos.Users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	_, err = repos.Users.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUsersUniqueUsername(t *testing.T) {
	repos := NewRepositories(New())
	ctx := context.Background()

	require.NoError(t, repos.Users.Create(ctx, &models.User{Username: "bob"}))
	err := repos.Users.Create(ctx, &models.User{Username: "bob"})
	assert.ErrorContains(t, err, "E11000 duplicate key error")

	users, err := repos.Users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

// Concurrent creates of one username must leave exactly one user.
func TestUsersUniqueUnderConcurrency(t *testing.T) {
	repos := NewRepositories(New())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repos.Users.Create(ctx, &models.User{Username: "same"})
		}()
	}
	wg.Wait()

	users, err := repos.Users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestExercisesFind(t *testing.T) {
	repos := NewRepositories(New())
	ctx := context.Background()
	day := func(d int) time.Time { return time.Date(2023, 1, d, 0, 0, 0, 0, time.UTC) }

	for i, d := range []int{1, 15, 31} {
		e := models.Exercise{UserID: "u1", Description: "e", Duration: models.Minutes(i), Date: day(d)}
		require.NoError(t, repos.Exercises.Create(ctx, &e))
	}
	other := models.Exercise{UserID: "u2", Description: "e", Duration: models.Minutes(1), Date: day(15)}
	require.NoError(t, repos.Exercises.Create(ctx, &other))

	all, err := repos.Exercises.Find(ctx, models.LogFilter{UserID: "u1"})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 0, all[0].Duration.Minutes)
	assert.Empty(t, all[0].UserID)

	from, to := day(15), day(31)
	ranged, err := repos.Exercises.Find(ctx, models.LogFilter{UserID: "u1", From: &from, To: &to})
	require.NoError(t, err)
	assert.Len(t, ranged, 2)

	limited, err := repos.Exercises.Find(ctx, models.LogFilter{UserID: "u1", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
	assert.Equal(t, 1, limited[1].Duration.Minutes)
}

func TestExercisesCreateValidates(t *testing.T) {
	repos := NewRepositories(New())

	err := repos.Exercises.Create(context.Background(), &models.Exercise{UserID: "u1"})

	assert.ErrorContains(t, err, "Exercise validation failed")
}
