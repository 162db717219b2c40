package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/baharkarakas/exercise-tracker/internal/metrics"
	"github.com/baharkarakas/exercise-tracker/internal/models"
	repo "github.com/baharkarakas/exercise-tracker/internal/repository"
)

type ExerciseService struct {
	users     repo.Users
	exercises repo.Exercises
	now       func() time.Time
}

func NewExerciseService(r repo.Repositories) *ExerciseService {
	metrics.Init()
	return &ExerciseService{users: r.Users, exercises: r.Exercises, now: time.Now}
}

// WithClock replaces the time source used for defaulted dates.
func (s *ExerciseService) WithClock(now func() time.Time) *ExerciseService {
	s.now = now
	return s
}

type CreateExerciseInput struct {
	UserID      string
	Description string
	Duration    models.Duration
	// Date zero means "use the current time".
	Date        time.Time
}

type ExerciseResult struct {
	User     models.User
	Exercise models.Exercise
}

type LogResult struct {
	User  models.User
	Count int
	Log   []models.Exercise
}

// CreateExercise stores one exercise for an existing user. The lookup and the
// insert are not atomic; users are never deleted so the gap is harmless.
func (s *ExerciseService) CreateExercise(ctx context.Context, in CreateExerciseInput) (ExerciseResult, error) {
	u, err := s.lookupUser(ctx, in.UserID)
	if err != nil {
		return ExerciseResult{}, s.fail("create_exercise", err)
	}

	date := in.Date
	if date.IsZero() {
		date = s.now()
	}
	e := models.Exercise{
		UserID:      u.ID,
		Description: in.Description,
		Duration:    in.Duration,
		Date:        date.UTC(),
	}
	if err := s.exercises.Create(ctx, &e); err != nil {
		return ExerciseResult{}, s.fail("create_exercise", err)
	}
	metrics.ExercisesLogged.Inc()
	return ExerciseResult{User: u, Exercise: e}, nil
}

func (s *ExerciseService) GetLog(ctx context.Context, userID string, q models.LogQuery) (LogResult, error) {
	u, err := s.lookupUser(ctx, userID)
	if err != nil {
		return LogResult{}, s.fail("get_log", err)
	}
	if q.FromInvalid() {
		return LogResult{}, s.fail("get_log", castDateError(q.FromRaw))
	}
	if q.ToInvalid() {
		return LogResult{}, s.fail("get_log", castDateError(q.ToRaw))
	}

	log, err := s.exercises.Find(ctx, models.LogFilter{UserID: u.ID, From: q.From, To: q.To, Limit: q.Limit})
	if err != nil {
		return LogResult{}, s.fail("get_log", err)
	}
	return LogResult{User: u, Count: len(log), Log: log}, nil
}

func (s *ExerciseService) lookupUser(ctx context.Context, id string) (models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return models.User{}, models.NewNotFound("User")
	}
	return u, err
}

// fail converts any store error into the API taxonomy and counts it.
func (s *ExerciseService) fail(op string, err error) error {
	err = models.AsValidation(err)
	kind := "validation"
	var nf *models.NotFoundError
	if errors.As(err, &nf) {
		kind = "not_found"
	}
	metrics.OperationErrors.WithLabelValues(op, kind).Inc()
	return err
}

func castDateError(raw string) error {
	return models.NewValidation(fmt.Sprintf(
		`Cast to date failed for value %q (type string) at path "date" for model "Exercise"`, raw))
}
