package models

import (
	"strconv"
	"time"
)

type Exercise struct {
	ID          string
	UserID      string
	Description string
	Duration    Duration
	Date        time.Time
}

// Duration is a submitted duration in minutes. Raw holds the submitted text and
// Valid reports whether it had an integer prefix; an invalid duration is carried
// to the store untouched and rejected there.
type Duration struct {
	Minutes int
	Raw     string
	Valid   bool
}

func Minutes(n int) Duration { return Duration{Minutes: n, Raw: strconv.Itoa(n), Valid: true} }

func (d Duration) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(d.Minutes)), nil
}

func (e *Exercise) Validate() error {
	var v schemaErrors
	if e.UserID == "" {
		v.required("user")
	}
	if e.Description == "" {
		v.required("description")
	}
	switch {
	case e.Duration.Valid:
	case e.Duration.Raw == "":
		v.required("duration")
	default:
		v.add("duration", `Cast to Number failed for value "`+e.Duration.Raw+`" (type string) at path "duration"`)
	}
	if e.Date.IsZero() {
		v.required("date")
	}
	return v.err("Exercise")
}

// LogQuery narrows a user's exercise log. Nil bounds are open; Limit <= 0 means no cap.
// FromRaw/ToRaw keep bounds that could not be parsed so the lookup can reject them.
type LogQuery struct {
	From    *time.Time
	To      *time.Time
	FromRaw string
	ToRaw   string
	Limit   int
}

func (q LogQuery) FromInvalid() bool { return q.From == nil && q.FromRaw != "" }
func (q LogQuery) ToInvalid() bool   { return q.To == nil && q.ToRaw != "" }

// LogFilter is what a store needs to select exercises for a log.
type LogFilter struct {
	UserID string
	From   *time.Time
	To     *time.Time
	Limit  int
}
