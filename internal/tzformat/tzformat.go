// Package tzformat renders zone offsets and descriptive zone names for
// display. Offsets are always computed from the zone's rules at a concrete
// instant and never cached across instants: any DST boundary changes them.
package tzformat

import (
	"fmt"
	"strings"
	"time"
)

// OffsetMinutes returns the UTC offset of the zone at the given instant, in
// minutes. It reports false when the zone id cannot be loaded.
func OffsetMinutes(zoneID string, at time.Time) (int, bool) {
	loc, err := time.LoadLocation(zoneID)
	if err != nil {
		return 0, false
	}
	_, seconds := at.In(loc).Zone()
	return seconds / 60, true
}

// OffsetString formats the zone's offset at the given instant as "UTC±H" or
// "UTC±H:MM": no leading zero on hours, minutes omitted when zero. It
// reports false when the zone id cannot be loaded.
func OffsetString(zoneID string, at time.Time) (string, bool) {
	minutes, ok := OffsetMinutes(zoneID, at)
	if !ok {
		return "", false
	}

	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("UTC%s%d", sign, minutes/60), true
	}
	return fmt.Sprintf("UTC%s%d:%02d", sign, minutes/60, minutes%60), true
}

// longNames expands zone abbreviations to descriptive English names. Go
// ships no CLDR display-name data, so this table covers the abbreviations
// the tzdata files actually emit; anything else falls back to the raw zone
// id at the caller.
var longNames = map[string]string{
	"UTC":  "Coordinated Universal Time",
	"GMT":  "Greenwich Mean Time",
	"WET":  "Western European Time",
	"WEST": "Western European Summer Time",
	"CET":  "Central European Time",
	"CEST": "Central European Summer Time",
	"EET":  "Eastern European Time",
	"EEST": "Eastern European Summer Time",
	"BST":  "British Summer Time",
	"MSK":  "Moscow Standard Time",
	"EST":  "Eastern Standard Time",
	"EDT":  "Eastern Daylight Time",
	"CST":  "Central Standard Time",
	"CDT":  "Central Daylight Time",
	"MST":  "Mountain Standard Time",
	"MDT":  "Mountain Daylight Time",
	"PST":  "Pacific Standard Time",
	"PDT":  "Pacific Daylight Time",
	"AKST": "Alaska Standard Time",
	"AKDT": "Alaska Daylight Time",
	"HST":  "Hawaii Standard Time",
	"HDT":  "Hawaii Daylight Time",
	"AST":  "Atlantic Standard Time",
	"ADT":  "Atlantic Daylight Time",
	"NST":  "Newfoundland Standard Time",
	"NDT":  "Newfoundland Daylight Time",
	"JST":  "Japan Standard Time",
	"KST":  "Korea Standard Time",
	"HKT":  "Hong Kong Time",
	"WIB":  "Western Indonesia Time",
	"AEST": "Australian Eastern Standard Time",
	"AEDT": "Australian Eastern Daylight Time",
	"ACST": "Australian Central Standard Time",
	"ACDT": "Australian Central Daylight Time",
	"AWST": "Australian Western Standard Time",
	"NZST": "New Zealand Standard Time",
	"NZDT": "New Zealand Daylight Time",
	"ChST": "Chamorro Standard Time",
	"SAST": "South Africa Standard Time",
	"WAT":  "West Africa Time",
	"CAT":  "Central Africa Time",
	"EAT":  "East Africa Time",
}

// LongZoneName returns a descriptive name for the zone at the given instant,
// e.g. "Central European Summer Time". Only English data ships; the locale
// argument is accepted for API stability. The result is "" when no name is
// available (unknown zone, or a purely numeric abbreviation like "+05") and
// callers must fall back to the raw zone id.
func LongZoneName(locale, zoneID string, at time.Time) string {
	loc, err := time.LoadLocation(zoneID)
	if err != nil {
		return ""
	}
	abbrev, _ := at.In(loc).Zone()
	if abbrev == "" || strings.ContainsAny(abbrev, "+-0123456789") {
		return ""
	}
	return longNames[abbrev]
}
