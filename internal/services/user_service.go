package services

import (
	"context"
	"log/slog"

	"github.com/baharkarakas/exercise-tracker/internal/metrics"
	"github.com/baharkarakas/exercise-tracker/internal/models"
)

func (s *ExerciseService) CreateUser(ctx context.Context, username string) (models.User, error) {
	u := models.User{Username: username}
	if err := s.users.Create(ctx, &u); err != nil {
		return models.User{}, s.fail("create_user", err)
	}
	metrics.UsersCreated.Inc()
	slog.DebugContext(ctx, "user created", "user_id", u.ID)
	return u, nil
}

func (s *ExerciseService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, s.fail("list_users", err)
	}
	return users, nil
}
