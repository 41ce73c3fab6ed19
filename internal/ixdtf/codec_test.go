package ixdtf_test

import (
	"testing"

	"tzfield/internal/ixdtf"
	"tzfield/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_IxdtfString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  models.ZonedValue
	}{
		{
			name:  "Full Value",
			input: "2025-09-08T15:30:00+02:00[Europe/Rome]",
			want:  models.ZonedValue{LocalDateTime: "2025-09-08T15:30:00", TimeZone: "Europe/Rome"},
		},
		{
			name:  "Offset Is Discarded",
			input: "1996-12-19T16:39:57-08:00[America/Los_Angeles]",
			want:  models.ZonedValue{LocalDateTime: "1996-12-19T16:39:57", TimeZone: "America/Los_Angeles"},
		},
		{
			name:  "No Offset",
			input: "2025-09-08T15:30:00[Europe/Rome]",
			want:  models.ZonedValue{LocalDateTime: "2025-09-08T15:30:00", TimeZone: "Europe/Rome"},
		},
		{
			name:  "Missing Seconds Padded",
			input: "2025-09-08T15:30+02:00[Europe/Rome]",
			want:  models.ZonedValue{LocalDateTime: "2025-09-08T15:30:00", TimeZone: "Europe/Rome"},
		},
		{
			name:  "Zone Only",
			input: "[Europe/Rome]",
			want:  models.ZonedValue{TimeZone: "Europe/Rome"},
		},
		{
			name:  "Datetime Only",
			input: "2025-09-08T15:30:00",
			want:  models.ZonedValue{LocalDateTime: "2025-09-08T15:30:00"},
		},
		{
			name:  "Trailing Whitespace After Bracket",
			input: "2025-09-08T15:30:00+02:00[Europe/Rome]  ",
			want:  models.ZonedValue{LocalDateTime: "2025-09-08T15:30:00", TimeZone: "Europe/Rome"},
		},
		{
			name:  "Empty",
			input: "",
			want:  models.ZonedValue{},
		},
		{
			name:  "Garbage",
			input: "not a datetime",
			want:  models.ZonedValue{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ixdtf.Parse(tt.input))
		})
	}
}

func TestParse_StoredObjects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  models.ZonedValue
	}{
		{
			name:  "Current Shape With Offset Datetime",
			input: `{"zone":"America/Los_Angeles","datetimeIso8601":"1996-12-19T16:39:57-08:00"}`,
			want:  models.ZonedValue{LocalDateTime: "1996-12-19T16:39:57", TimeZone: "America/Los_Angeles"},
		},
		{
			name:  "Legacy Separate Date And Time",
			input: `{"zone":"Europe/Rome","date":"1996-12-19","time24hr":"16:39:57"}`,
			want:  models.ZonedValue{LocalDateTime: "1996-12-19T16:39:57", TimeZone: "Europe/Rome"},
		},
		{
			name:  "Legacy Time Field Without Seconds",
			input: `{"zone":"Europe/Rome","date":"1996-12-19","time":"16:39"}`,
			want:  models.ZonedValue{LocalDateTime: "1996-12-19T16:39:00", TimeZone: "Europe/Rome"},
		},
		{
			name:  "Embedded Ixdtf Fallback",
			input: `{"zonedDateTimeIxdtf":"2025-09-08T15:30:00+02:00[Europe/Rome]"}`,
			want:  models.ZonedValue{LocalDateTime: "2025-09-08T15:30:00", TimeZone: "Europe/Rome"},
		},
		{
			name:  "Offset Datetime Preferred Over Embedded",
			input: `{"zone":"Europe/Rome","datetimeIso8601":"2025-09-08T15:30:00+02:00","zonedDateTimeIxdtf":"1990-01-01T00:00:00+01:00[Europe/Paris]"}`,
			want:  models.ZonedValue{LocalDateTime: "2025-09-08T15:30:00", TimeZone: "Europe/Rome"},
		},
		{
			name:  "Empty Object",
			input: `{}`,
			want:  models.ZonedValue{},
		},
		{
			name:  "Unrecognized Fields",
			input: `{"foo":"bar"}`,
			want:  models.ZonedValue{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ixdtf.Parse(tt.input))
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		value  models.ZonedValue
		want   string
		wantOK bool
	}{
		{
			name:   "Winter Offset",
			value:  models.ZonedValue{LocalDateTime: "2025-01-15T12:00:00", TimeZone: "America/Chicago"},
			want:   "2025-01-15T12:00:00-06:00[America/Chicago]",
			wantOK: true,
		},
		{
			name:   "Summer Offset Same Zone",
			value:  models.ZonedValue{LocalDateTime: "2025-07-15T12:00:00", TimeZone: "America/Chicago"},
			want:   "2025-07-15T12:00:00-05:00[America/Chicago]",
			wantOK: true,
		},
		{
			name:   "Spring Forward Gap Rejected",
			value:  models.ZonedValue{LocalDateTime: "2025-03-09T02:30:00", TimeZone: "America/Chicago"},
			wantOK: false,
		},
		{
			name:   "Missing Zone",
			value:  models.ZonedValue{LocalDateTime: "2025-01-15T12:00:00"},
			wantOK: false,
		},
		{
			name:   "Missing Datetime",
			value:  models.ZonedValue{TimeZone: "America/Chicago"},
			wantOK: false,
		},
		{
			name:   "Unknown Zone",
			value:  models.ZonedValue{LocalDateTime: "2025-01-15T12:00:00", TimeZone: "Mars/Olympus_Mons"},
			wantOK: false,
		},
		{
			name:   "Malformed Datetime",
			value:  models.ZonedValue{LocalDateTime: "2025-13-40T99:00:00", TimeZone: "America/Chicago"},
			wantOK: false,
		},
		{
			name:   "UTC",
			value:  models.ZonedValue{LocalDateTime: "2025-06-01T00:00:00", TimeZone: "UTC"},
			want:   "2025-06-01T00:00:00+00:00[UTC]",
			wantOK: true,
		},
		{
			name:   "Half Hour Offset",
			value:  models.ZonedValue{LocalDateTime: "2025-06-01T12:00:00", TimeZone: "Asia/Kolkata"},
			want:   "2025-06-01T12:00:00+05:30[Asia/Kolkata]",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ixdtf.Format(tt.value)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	values := []models.ZonedValue{
		{LocalDateTime: "1996-12-19T16:39:57", TimeZone: "America/Los_Angeles"},
		{LocalDateTime: "2025-09-08T15:30:00", TimeZone: "Europe/Rome"},
		{LocalDateTime: "2025-06-01T12:00:00", TimeZone: "Asia/Kathmandu"},
		{LocalDateTime: "2025-01-01T00:00:00", TimeZone: "Pacific/Kiritimati"},
	}

	for _, v := range values {
		t.Run(v.TimeZone, func(t *testing.T) {
			formatted, ok := ixdtf.Format(v)
			require.True(t, ok)
			assert.Equal(t, v, ixdtf.Parse(formatted))

			// Parsing the format of the parse result is a fixed point.
			again, ok := ixdtf.Format(ixdtf.Parse(formatted))
			require.True(t, ok)
			assert.Equal(t, formatted, again)
		})
	}
}

func TestBuildStructured(t *testing.T) {
	v := models.ZonedValue{LocalDateTime: "1996-12-19T16:39:57", TimeZone: "America/Los_Angeles"}

	got := ixdtf.BuildStructured(v)
	require.NotNil(t, got)
	assert.Equal(t, "1996-12-19T16:39:57-08:00[America/Los_Angeles]", got.ZonedDateTimeIxdtf)
	assert.Equal(t, "1996-12-19T16:39:57-08:00", got.DatetimeIso8601)
	assert.Equal(t, "America/Los_Angeles", got.Zone)
	assert.Equal(t, "-08:00", got.Offset)
	assert.Equal(t, "1996-12-19", got.Date)
	assert.Equal(t, "16:39:57", got.Time24Hr)
	assert.Equal(t, "04:39:57", got.Time12Hr)
	assert.Equal(t, "pm", got.AmPm)
	assert.Equal(t, "851042397", got.TimestampEpochSeconds)
}

func TestBuildStructured_Morning(t *testing.T) {
	got := ixdtf.BuildStructured(models.ZonedValue{LocalDateTime: "2025-09-08T09:05:00", TimeZone: "Europe/Rome"})
	require.NotNil(t, got)
	assert.Equal(t, "+02:00", got.Offset)
	assert.Equal(t, "09:05:00", got.Time12Hr)
	assert.Equal(t, "am", got.AmPm)
}

func TestBuildStructured_NoValue(t *testing.T) {
	assert.Nil(t, ixdtf.BuildStructured(models.ZonedValue{}))
	assert.Nil(t, ixdtf.BuildStructured(models.ZonedValue{LocalDateTime: "2025-03-09T02:30:00", TimeZone: "America/Chicago"}))
}
