// internal/api/handlers/exercises.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/exercise-tracker/internal/api/httpx"
	"github.com/baharkarakas/exercise-tracker/internal/api/validate"
	"github.com/baharkarakas/exercise-tracker/internal/metrics"
	"github.com/baharkarakas/exercise-tracker/internal/models"
	"github.com/baharkarakas/exercise-tracker/internal/services"
)

type ExerciseHandler struct {
	Svc *services.ExerciseService
}

func NewExerciseHandler(svc *services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{Svc: svc}
}

type userResp struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// exerciseResp carries the owning user's id, not the exercise's.
type exerciseResp struct {
	Username    string          `json:"username"`
	Description string          `json:"description"`
	Duration    models.Duration `json:"duration"`
	Date        string          `json:"date"`
	ID          string          `json:"_id"`
}

type logEntry struct {
	Description string          `json:"description"`
	Duration    models.Duration `json:"duration"`
	Date        string          `json:"date"`
}

type logResp struct {
	Username string     `json:"username"`
	Count    int        `json:"count"`
	ID       string     `json:"_id"`
	Log      []logEntry `json:"log"`
}

func (h *ExerciseHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	fields, err := validate.Fields(w, r)
	if err != nil {
		writeServiceError(w, models.NewValidation(err.Error()))
		return
	}
	u, err := h.Svc.CreateUser(r.Context(), fields.Get("username"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, userResp{Username: u.Username, ID: u.ID})
}

func (h *ExerciseHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	out := make([]userResp, 0, len(users))
	for _, u := range users {
		out = append(out, userResp{Username: u.Username, ID: u.ID})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *ExerciseHandler) CreateExercise(w http.ResponseWriter, r *http.Request) {
	fields, err := validate.Fields(w, r)
	if err != nil {
		writeServiceError(w, models.NewValidation(err.Error()))
		return
	}
	form := validate.ParseExerciseForm(fields)
	if form.DateFallback != validate.DateGiven {
		metrics.DatesDefaulted.WithLabelValues(string(form.DateFallback)).Inc()
		slog.DebugContext(r.Context(), "exercise date defaulted to now", "reason", form.DateFallback, "raw", form.DateRaw)
	}
	if !form.Duration.Valid {
		slog.DebugContext(r.Context(), "exercise duration not numeric", "raw", form.Duration.Raw)
	}

	res, err := h.Svc.CreateExercise(r.Context(), services.CreateExerciseInput{
		UserID:      chi.URLParam(r, "id"),
		Description: form.Description,
		Duration:    form.Duration,
		Date:        form.Date,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, exerciseResp{
		Username:    res.User.Username,
		Description: res.Exercise.Description,
		Duration:    res.Exercise.Duration,
		Date:        models.FormatDate(res.Exercise.Date),
		ID:          res.User.ID,
	})
}

func (h *ExerciseHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	q := validate.ParseLogQuery(r.URL.Query())
	res, err := h.Svc.GetLog(r.Context(), chi.URLParam(r, "id"), q)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	out := logResp{
		Username: res.User.Username,
		Count:    res.Count,
		ID:       res.User.ID,
		Log:      make([]logEntry, 0, len(res.Log)),
	}
	for _, e := range res.Log {
		out.Log = append(out.Log, logEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        models.FormatDate(e.Date),
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// writeServiceError maps every operation failure to 400 {"error": msg}.
func writeServiceError(w http.ResponseWriter, err error) {
	var nf *models.NotFoundError
	if !errors.As(err, &nf) {
		err = models.AsValidation(err)
	}
	httpx.WriteError(w, http.StatusBadRequest, "", err.Error())
}
