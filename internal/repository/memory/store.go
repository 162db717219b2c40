// Package memory keeps users and exercises in process memory. It backs tests and
// the memory:// store URI.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/baharkarakas/exercise-tracker/internal/models"
	repo "github.com/baharkarakas/exercise-tracker/internal/repository"
)

type Store struct {
	mu         sync.RWMutex
	users      []models.User
	byID       map[string]int
	byUsername map[string]struct{}
	exercises  []models.Exercise
}

func New() *Store {
	return &Store{byID: map[string]int{}, byUsername: map[string]struct{}{}}
}

func NewRepositories(s *Store) repo.Repositories {
	return repo.Repositories{
		Users:     &usersRepo{s},
		Exercises: &exercisesRepo{s},
	}
}

type usersRepo struct{ s *Store }

func (r *usersRepo) Create(ctx context.Context, u *models.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, dup := r.s.byUsername[u.Username]; dup {
		return models.NewValidation(fmt.Sprintf(
			"E11000 duplicate key error collection: users index: username_1 dup key: { username: %q }", u.Username))
	}
	u.ID = uuid.NewString()
	r.s.byID[u.ID] = len(r.s.users)
	r.s.byUsername[u.Username] = struct{}{}
	r.s.users = append(r.s.users, *u)
	return nil
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i, ok := r.s.byID[id]
	if !ok {
		return models.User{}, repo.ErrNotFound
	}
	return r.s.users[i], nil
}

func (r *usersRepo) List(ctx context.Context) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.User, len(r.s.users))
	copy(out, r.s.users)
	return out, nil
}

type exercisesRepo struct{ s *Store }

func (r *exercisesRepo) Create(ctx context.Context, e *models.Exercise) error {
	if err := e.Validate(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e.ID = uuid.NewString()
	r.s.exercises = append(r.s.exercises, *e)
	return nil
}

func (r *exercisesRepo) Find(ctx context.Context, f models.LogFilter) ([]models.Exercise, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []models.Exercise{}
	for _, e := range r.s.exercises {
		if e.UserID != f.UserID {
			continue
		}
		if f.From != nil && e.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && e.Date.After(*f.To) {
			continue
		}
		e.UserID = ""
		out = append(out, e)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}
