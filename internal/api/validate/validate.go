// Package validate turns loosely typed request input into explicit request
// schemas. Coercions never fail the request here; each schema records which
// fields were defaulted or could not be parsed so callers can act on it.
package validate

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/baharkarakas/exercise-tracker/internal/models"
)

const maxBodyBytes = 1 << 20

// Fields reads a form-urlencoded body, or a flat JSON object when the request
// says it is JSON. Query parameters are not merged in.
func Fields(w http.ResponseWriter, r *http.Request) (url.Values, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if ct != "application/json" {
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		return r.PostForm, nil
	}

	var raw map[string]any
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}
	out := url.Values{}
	for k, v := range raw {
		switch tv := v.(type) {
		case nil:
		case string:
			out.Set(k, tv)
		case json.Number:
			out.Set(k, tv.String())
		default:
			out.Set(k, fmt.Sprint(tv))
		}
	}
	return out, nil
}

// ParseIntPrefix reads a leading base-10 integer the way lenient clients expect:
// surrounding text after the digits is ignored ("30min" is 30, "12.9" is 12).
func ParseIntPrefix(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

type DateFallback string

const (
	DateGiven   DateFallback = ""
	DateAbsent  DateFallback = "absent"
	DateInvalid DateFallback = "invalid"
)

// ExerciseForm is the schema of POST /api/users/{id}/exercises.
type ExerciseForm struct {
	Description  string
	Duration     models.Duration
	// Date is zero when DateFallback is not DateGiven; the service then uses the current time.
	Date         time.Time
	DateFallback DateFallback
	DateRaw      string
}

func ParseExerciseForm(v url.Values) ExerciseForm {
	f := ExerciseForm{
		Description: v.Get("description"),
		Duration:    ParseDuration(v.Get("duration")),
		DateRaw:     v.Get("date"),
	}
	if f.DateRaw == "" {
		f.DateFallback = DateAbsent
	} else if d, ok := models.ParseDate(f.DateRaw); ok {
		f.Date = d
	} else {
		f.DateFallback = DateInvalid
	}
	return f
}

func ParseDuration(raw string) models.Duration {
	n, ok := ParseIntPrefix(raw)
	return models.Duration{Minutes: n, Raw: raw, Valid: ok}
}

// ParseLogQuery builds the log schema from query parameters. Unparseable bounds
// are kept raw; a limit without an integer prefix, or below one, means no cap.
func ParseLogQuery(v url.Values) models.LogQuery {
	q := models.LogQuery{FromRaw: v.Get("from"), ToRaw: v.Get("to")}
	if t, ok := models.ParseDate(q.FromRaw); ok {
		q.From = &t
	}
	if t, ok := models.ParseDate(q.ToRaw); ok {
		q.To = &t
	}
	if n, ok := ParseIntPrefix(v.Get("limit")); ok && n > 0 {
		q.Limit = n
	}
	return q
}
