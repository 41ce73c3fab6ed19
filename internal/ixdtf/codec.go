// Package ixdtf converts between the editor's internal wall-time + IANA zone
// pair and the stored textual representations: the RFC 9557 IXDTF string
// ("2025-09-08T15:30:00+02:00[Europe/Rome]") and the structured JSON payload
// with derived fields. The numeric offset is never taken from the input; it
// is re-derived from the zone's rules at the wall time, since an offset alone
// cannot be inverted back to a zone.
package ixdtf

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tzfield/internal/models"
)

// LocalLayout is the wall-clock layout used throughout: ISO 8601 with
// seconds, no offset.
const LocalLayout = "2006-01-02T15:04:05"

const offsetLayout = "2006-01-02T15:04:05-07:00"

var (
	zoneSuffixRe  = regexp.MustCompile(`\[([^\]]+)\]\s*$`)
	localPrefixRe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}T\d{2}:\d{2}(:\d{2})?`)
)

// Parse turns a previously stored raw value into a ZonedValue. The input may
// be a bare IXDTF string or a JSON object in any of the shapes the plugin has
// written over its lifetime. Parse is total: malformed input yields a
// partially or fully empty ZonedValue, never an error.
func Parse(raw string) models.ZonedValue {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "{") {
		var obj storedObject
		if err := json.Unmarshal([]byte(trimmed), &obj); err == nil {
			return parseObject(obj)
		}
	}
	return parseIxdtf(trimmed)
}

// parseIxdtf extracts the trailing bracketed zone id and the local-datetime
// prefix independently; either may be missing, and any numeric offset between
// them is discarded.
func parseIxdtf(s string) models.ZonedValue {
	var v models.ZonedValue

	if m := zoneSuffixRe.FindStringSubmatch(s); m != nil {
		v.TimeZone = m[1]
		s = s[:len(s)-len(m[0])]
	}
	if m := localPrefixRe.FindStringSubmatch(s); m != nil {
		v.LocalDateTime = m[0]
		if m[1] == "" {
			v.LocalDateTime += ":00"
		}
	}
	return v
}

// storedObject is the union of every JSON shape the field has persisted.
type storedObject struct {
	Zone               string `json:"zone"`
	DatetimeIso8601    string `json:"datetimeIso8601"`
	Date               string `json:"date"`
	Time24Hr           string `json:"time24hr"`
	Time               string `json:"time"`
	ZonedDateTimeIxdtf string `json:"zonedDateTimeIxdtf"`
}

// extractor attempts to read a ZonedValue out of one stored shape, reporting
// whether the shape matched. Extractors are tried in order of preference;
// the chain exists because the stored format evolved and old records must
// still load.
type extractor func(storedObject) (models.ZonedValue, bool)

var extractors = []extractor{
	fromOffsetDatetime,
	fromDateTimeFields,
	fromEmbeddedIxdtf,
}

func parseObject(obj storedObject) models.ZonedValue {
	for _, extract := range extractors {
		if v, ok := extract(obj); ok {
			return v
		}
	}
	return models.ZonedValue{}
}

// fromOffsetDatetime handles the current shape: an explicit zone plus an
// ISO 8601 datetime carrying an offset. The offset is stripped, not kept.
func fromOffsetDatetime(obj storedObject) (models.ZonedValue, bool) {
	if obj.Zone == "" || obj.DatetimeIso8601 == "" {
		return models.ZonedValue{}, false
	}
	m := localPrefixRe.FindStringSubmatch(obj.DatetimeIso8601)
	if m == nil {
		return models.ZonedValue{}, false
	}
	local := m[0]
	if m[1] == "" {
		local += ":00"
	}
	return models.ZonedValue{LocalDateTime: local, TimeZone: obj.Zone}, true
}

// fromDateTimeFields handles the legacy shape with separate date and time
// fields. Earlier releases wrote "time" rather than "time24hr".
func fromDateTimeFields(obj storedObject) (models.ZonedValue, bool) {
	clock := obj.Time24Hr
	if clock == "" {
		clock = obj.Time
	}
	if obj.Zone == "" || obj.Date == "" || clock == "" {
		return models.ZonedValue{}, false
	}
	if len(clock) == len("15:04") {
		clock += ":00"
	}
	return models.ZonedValue{LocalDateTime: obj.Date + "T" + clock, TimeZone: obj.Zone}, true
}

// fromEmbeddedIxdtf falls back to re-parsing an embedded IXDTF string.
func fromEmbeddedIxdtf(obj storedObject) (models.ZonedValue, bool) {
	if obj.ZonedDateTimeIxdtf == "" {
		return models.ZonedValue{}, false
	}
	v := parseIxdtf(obj.ZonedDateTimeIxdtf)
	return v, !v.Empty()
}

// Resolve maps the pair onto a concrete instant using the zone's rules at
// that wall time. It fails when the zone is unknown, the datetime is
// malformed, or the wall time falls in a DST spring-forward gap: Go
// normalizes nonexistent wall times to a neighbouring one, so a pair whose
// resolved instant formats back differently never actually occurred.
// Wall times that occur twice (fall-back overlap) resolve to whichever
// occurrence the runtime picks; that choice is deliberately unspecified.
func Resolve(v models.ZonedValue) (time.Time, bool) {
	if !v.Complete() {
		return time.Time{}, false
	}
	loc, err := time.LoadLocation(v.TimeZone)
	if err != nil {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(LocalLayout, v.LocalDateTime, loc)
	if err != nil {
		return time.Time{}, false
	}
	if t.Format(LocalLayout) != v.LocalDateTime {
		return time.Time{}, false
	}
	return t, true
}

// Format renders the pair as an IXDTF string. It reports false when either
// half is missing or the pair does not resolve; surfacing "no value" beats
// silently picking a nearby offset.
func Format(v models.ZonedValue) (string, bool) {
	t, ok := Resolve(v)
	if !ok {
		return "", false
	}
	return t.Format(offsetLayout) + "[" + v.TimeZone + "]", true
}

// BuildStructured renders the pair as the structured JSON payload. All nine
// fields are projected from the single resolved instant, so date, time24hr
// and timestampEpochSeconds can never disagree. A nil result is the "no
// value" sentinel and must be persisted as an empty object.
func BuildStructured(v models.ZonedValue) *models.StructuredValue {
	t, ok := Resolve(v)
	if !ok {
		return nil
	}
	return &models.StructuredValue{
		ZonedDateTimeIxdtf:    t.Format(offsetLayout) + "[" + v.TimeZone + "]",
		DatetimeIso8601:       t.Format(offsetLayout),
		Zone:                  v.TimeZone,
		Offset:                t.Format("-07:00"),
		Date:                  t.Format("2006-01-02"),
		Time24Hr:              t.Format("15:04:05"),
		Time12Hr:              t.Format("03:04:05"),
		AmPm:                  t.Format("pm"),
		TimestampEpochSeconds: strconv.FormatInt(t.Unix(), 10),
	}
}
