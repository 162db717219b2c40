package validate

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntPrefix(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"30", 30, true},
		{" 45 ", 45, true},
		{"30min", 30, true},
		{"12.9", 12, true},
		{"-5", -5, true},
		{"+7", 7, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
		{"min30", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseIntPrefix(c.in)
		assert.Equal(t, c.ok, ok, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestParseExerciseFormDate(t *testing.T) {
	given := ParseExerciseForm(url.Values{"description": {"run"}, "duration": {"30"}, "date": {"2023-01-15"}})
	assert.Equal(t, DateGiven, given.DateFallback)
	assert.Equal(t, time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), given.Date)
	assert.Equal(t, "run", given.Description)
	assert.True(t, given.Duration.Valid)
	assert.Equal(t, 30, given.Duration.Minutes)

	absent := ParseExerciseForm(url.Values{"description": {"run"}, "duration": {"30"}})
	assert.Equal(t, DateAbsent, absent.DateFallback)
	assert.True(t, absent.Date.IsZero())

	invalid := ParseExerciseForm(url.Values{"date": {"not-a-date"}})
	assert.Equal(t, DateInvalid, invalid.DateFallback)
	assert.True(t, invalid.Date.IsZero())
	assert.Equal(t, "not-a-date", invalid.DateRaw)
}

// A duration with no digits is recorded as unparsed, not rejected or zeroed.
func TestParseExerciseFormKeepsUnparsedDuration(t *testing.T) {
	f := ParseExerciseForm(url.Values{"duration": {"half an hour"}})

	assert.False(t, f.Duration.Valid)
	assert.Equal(t, "half an hour", f.Duration.Raw)
}

func TestParseLogQuery(t *testing.T) {
	q := ParseLogQuery(url.Values{"from": {"2023-01-10"}, "to": {"2023-01-31"}, "limit": {"2"}})
	require.NotNil(t, q.From)
	require.NotNil(t, q.To)
	assert.Equal(t, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC), *q.From)
	assert.Equal(t, time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC), *q.To)
	assert.Equal(t, 2, q.Limit)
	assert.False(t, q.FromInvalid())
	assert.False(t, q.ToInvalid())

	open := ParseLogQuery(url.Values{})
	assert.Nil(t, open.From)
	assert.Nil(t, open.To)
	assert.Zero(t, open.Limit)

	bad := ParseLogQuery(url.Values{"from": {"yesterday"}, "limit": {"none"}})
	assert.True(t, bad.FromInvalid())
	assert.False(t, bad.ToInvalid())
	assert.Zero(t, bad.Limit)

	assert.Zero(t, ParseLogQuery(url.Values{"limit": {"0"}}).Limit)
	assert.Zero(t, ParseLogQuery(url.Values{"limit": {"-3"}}).Limit)
}

func TestFieldsForm(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader("username=alice"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	v, err := Fields(httptest.NewRecorder(), req)

	require.NoError(t, err)
	assert.Equal(t, "alice", v.Get("username"))
}

func TestFieldsJSON(t *testing.T) {
	body := `{"description":"swim","duration":45,"date":null}`
	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	v, err := Fields(httptest.NewRecorder(), req)

	require.NoError(t, err)
	assert.Equal(t, "swim", v.Get("description"))
	assert.Equal(t, "45", v.Get("duration"))
	_, hasDate := v["date"]
	assert.False(t, hasDate)
}

func TestFieldsRejectsBrokenJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")

	_, err := Fields(httptest.NewRecorder(), req)

	assert.Error(t, err)
}
