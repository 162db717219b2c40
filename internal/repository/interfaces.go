package repository

import (
	"context"
	"errors"

	"github.com/baharkarakas/exercise-tracker/internal/models"
)

// ErrNotFound is returned by lookups that match no document.
var ErrNotFound = errors.New("document not found")

type Users interface {
	// Create validates and inserts u, filling in the generated ID.
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type Exercises interface {
	// Create validates and inserts e, filling in the generated ID.
	Create(ctx context.Context, e *models.Exercise) error
	// Find returns matching exercises in store natural order.
	Find(ctx context.Context, f models.LogFilter) ([]models.Exercise, error)
}

type Repositories struct {
	Users     Users
	Exercises Exercises
}
