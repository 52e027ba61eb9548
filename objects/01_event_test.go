// /home/krylon/go/src/github.com/blicero/herald/objects/01_event_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-12 17:52:08 krylon>

package objects

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/blicero/herald/common"
	"github.com/blicero/herald/objects/priority"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	var (
		err     error
		baseDir string
	)

	if baseDir, err = os.MkdirTemp("", "herald_objects_test"); err != nil {
		panic(err)
	} else if err = common.SetBaseDir(baseDir); err != nil {
		panic(err)
	}

	var result = m.Run()
	os.RemoveAll(baseDir) // nolint: errcheck
	os.Exit(result)
} // func TestMain(m *testing.M)

func TestNewEvent(t *testing.T) {
	var (
		err error
		ev  *Event
		now = time.Now()
	)

	ev, err = NewEvent("Dentist", "", now, priority.High, false, "Health")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ev.ID, IDPrefix))
	assert.False(t, ev.Notified)
	assert.Equal(t, "Dentist", ev.Title)

	var other *Event
	other, err = NewEvent("Dentist", "", now, priority.High, false, "Health")
	require.NoError(t, err)
	assert.NotEqual(t, ev.ID, other.ID, "IDs must never be reused")

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err = NewEvent(title, "", now, priority.Low, false, "")
		assert.ErrorIs(t, err, ErrEmptyTitle, "title %q", title)
	}
} // func TestNewEvent(t *testing.T)

func TestEventLess(t *testing.T) {
	var (
		ten     = time.Date(2026, 10, 17, 10, 0, 0, 0, time.Local)
		a       = &Event{Title: "A", Time: ten, Priority: priority.Medium}
		b       = &Event{Title: "B", Time: ten, Priority: priority.High}
		c       = &Event{Title: "C", Time: ten.Add(-30 * time.Minute), Priority: priority.Low}
		ordered = []*Event{c, b, a}
	)

	for i := 0; i < len(ordered)-1; i++ {
		assert.True(t, ordered[i].Less(ordered[i+1]),
			"%s should sort before %s", ordered[i].Title, ordered[i+1].Title)
		assert.False(t, ordered[i+1].Less(ordered[i]),
			"%s should not sort before %s", ordered[i+1].Title, ordered[i].Title)
	}

	assert.False(t, a.Less(a))
} // func TestEventLess(t *testing.T)

func TestEventJSON(t *testing.T) {
	var (
		err  error
		buf  []byte
		ev   *Event
		back Event
		raw  map[string]any
		when = time.Date(2026, 10, 17, 9, 30, 12, 500, time.Local)
	)

	ev, err = NewEvent("Standup", "", when, priority.Low, true, "")
	require.NoError(t, err)
	ev.Notified = true

	buf, err = json.Marshal(ev)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(buf, &raw))

	assert.Equal(t, ev.ID, raw["id"])
	assert.Equal(t, "LOW", raw["priority"])
	assert.Equal(t, "2026-10-17T09:30:12.0000005", raw["eventTime"])
	assert.Equal(t, true, raw["isRecurring"])
	assert.Equal(t, true, raw["isNotified"])
	assert.Equal(t, "", raw["description"])
	assert.Equal(t, "", raw["category"])

	require.NoError(t, json.Unmarshal(buf, &back))
	assert.True(t, ev.Time.Equal(back.Time))
	back.Time = ev.Time
	assert.Equal(t, *ev, back)
} // func TestEventJSON(t *testing.T)

func TestEventJSONInvalid(t *testing.T) {
	var cases = []string{
		`{"id":"x","title":"t","eventTime":"yesterday","priority":"HIGH"}`,
		`{"id":"x","title":"t","eventTime":"2026-10-17T10:00:00","priority":"URGENT"}`,
		`{"id":"x","title":"t","priority":"LOW"}`,
	}

	for _, c := range cases {
		var ev Event
		assert.Error(t, json.Unmarshal([]byte(c), &ev), c)
	}
} // func TestEventJSONInvalid(t *testing.T)

func TestParseTime(t *testing.T) {
	type testCase struct {
		input  string
		expect time.Time
		err    bool
	}

	var cases = []testCase{
		{
			input:  "2026-10-17T10:00",
			expect: time.Date(2026, 10, 17, 10, 0, 0, 0, time.Local),
		},
		{
			input:  "2026-10-17T10:00:30",
			expect: time.Date(2026, 10, 17, 10, 0, 30, 0, time.Local),
		},
		{
			input:  "2026-10-17T10:00:30.25",
			expect: time.Date(2026, 10, 17, 10, 0, 30, 250000000, time.Local),
		},
		{
			input:  "2026-10-17T08:00:00Z",
			expect: time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC),
		},
		{
			input: "",
			err:   true,
		},
		{
			input: "17.10.2026 10:00",
			err:   true,
		},
	}

	for _, c := range cases {
		var stamp, err = ParseTime(c.input)

		if c.err {
			assert.True(t, errors.Is(err, ErrInvalidRequest), "input %q", c.input)
			continue
		}

		require.NoError(t, err, "input %q", c.input)
		assert.True(t, c.expect.Equal(stamp),
			"input %q: expected %s, got %s",
			c.input,
			c.expect.Format(common.TimestampFormatSubSecond),
			stamp.Format(common.TimestampFormatSubSecond))
	}
} // func TestParseTime(t *testing.T)

func TestEventRequestBuild(t *testing.T) {
	var (
		err error
		ev  *Event
		req = EventRequest{
			Title:     "Call Mom",
			EventTime: "2026-10-17T18:00",
			Priority:  "high",
			Category:  "Family",
		}
	)

	ev, err = req.Build()
	require.NoError(t, err)
	assert.Equal(t, priority.High, ev.Priority)
	assert.Equal(t, "Family", ev.Category)
	assert.Equal(t, "2026-10-17 18:00", ev.FormattedTime())

	req.Priority = ""
	ev, err = req.Build()
	require.NoError(t, err)
	assert.Equal(t, priority.Medium, ev.Priority)

	req.Priority = "whenever"
	_, err = req.Build()
	assert.ErrorIs(t, err, ErrInvalidRequest)

	req.Priority = "LOW"
	req.Title = " "
	_, err = req.Build()
	assert.ErrorIs(t, err, ErrInvalidRequest)
} // func TestEventRequestBuild(t *testing.T)

func TestPayload(t *testing.T) {
	var ev = Event{
		Title:       "Backup",
		Description: "Rotate the tapes",
		Time:        time.Date(2026, 10, 17, 22, 15, 0, 0, time.Local),
	}

	var title, body = ev.Payload()

	assert.Equal(t, "Backup", title)
	assert.Equal(t, "coming up at 2026-10-17 22:15\nRotate the tapes", body)
} // func TestPayload(t *testing.T)

func TestTimeInRange(t *testing.T) {
	assert.True(t, TimeInRange(time.Date(1, 6, 1, 0, 0, 0, 0, time.Local)))
	assert.True(t, TimeInRange(time.Date(9999, 6, 1, 0, 0, 0, 0, time.Local)))
	assert.False(t, TimeInRange(time.Date(0, 6, 1, 0, 0, 0, 0, time.Local)))
	assert.False(t, TimeInRange(time.Date(10000, 1, 1, 0, 0, 0, 0, time.Local)))

	// Every time in range survives the trip through the wire format.
	var stamp = time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.Local)
	var back, err = ParseTime(FormatTime(stamp))
	require.NoError(t, err)
	assert.True(t, stamp.Equal(back))
} // func TestTimeInRange(t *testing.T)

func TestEventJSONMissingPriority(t *testing.T) {
	var (
		ev  Event
		buf = `{"id":"EVT-1","title":"Old record","eventTime":"2026-10-17T10:00:00"}`
	)

	require.NoError(t, json.Unmarshal([]byte(buf), &ev))
	assert.Equal(t, priority.Medium, ev.Priority)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"EVT-2","title":"High","eventTime":"2026-10-17T10:00:00","priority":"HIGH"}`), &ev))
	assert.Equal(t, priority.High, ev.Priority)
} // func TestEventJSONMissingPriority(t *testing.T)
