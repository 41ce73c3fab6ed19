package models

// ZonedValue is the canonical internal representation of the field: a
// wall-clock local datetime (always with seconds, no offset) plus an IANA
// time zone id. Either field may be empty while the editor is half-filled;
// the numeric offset is never stored because it is always re-derivable from
// the pair and cannot be inverted back to a zone on its own.
type ZonedValue struct {
	LocalDateTime string `json:"local_datetime" example:"2025-09-08T15:30:00"`
	TimeZone      string `json:"time_zone" example:"Europe/Rome"`
}

// Complete reports whether both halves of the pair are present.
func (v ZonedValue) Complete() bool {
	return v.LocalDateTime != "" && v.TimeZone != ""
}

// Empty reports whether neither half is present.
func (v ZonedValue) Empty() bool {
	return v.LocalDateTime == "" && v.TimeZone == ""
}

// StructuredValue is the JSON payload persisted for object-mode fields.
// Every field is a pure projection of one resolved instant, so the shape can
// never be internally inconsistent. Field names match the stored document
// format, not this API's conventions.
type StructuredValue struct {
	ZonedDateTimeIxdtf    string `json:"zonedDateTimeIxdtf" example:"2025-09-08T15:30:00+02:00[Europe/Rome]"`
	DatetimeIso8601       string `json:"datetimeIso8601" example:"2025-09-08T15:30:00+02:00"`
	Zone                  string `json:"zone" example:"Europe/Rome"`
	Offset                string `json:"offset" example:"+02:00"`
	Date                  string `json:"date" example:"2025-09-08"`
	Time24Hr              string `json:"time24hr" example:"15:30:00"`
	Time12Hr              string `json:"time12hr" example:"03:30:00"`
	AmPm                  string `json:"amPm" example:"pm"`
	TimestampEpochSeconds string `json:"timestampEpochSeconds" example:"1757338200"`
}

// ParseFieldRequest carries a previously stored raw field value: a bare
// IXDTF string, a JSON-encoded structured object, or one of the legacy
// shapes the plugin wrote over its lifetime.
type ParseFieldRequest struct {
	Value string `json:"value" binding:"required" example:"2025-09-08T15:30:00+02:00[Europe/Rome]"`
}

// FormatFieldRequest asks for the stored representation of an edited value.
type FormatFieldRequest struct {
	LocalDateTime string `json:"local_datetime" binding:"required" example:"2025-09-08T15:30:00"`
	TimeZone      string `json:"time_zone" binding:"required,iana_zone" example:"Europe/Rome"`
}

// FormatFieldResponse holds the IXDTF string for string-mode fields. Ixdtf
// is null when the pair does not resolve to a real instant (DST gap).
type FormatFieldResponse struct {
	Ixdtf *string `json:"ixdtf" example:"2025-09-08T15:30:00+02:00[Europe/Rome]"`
}
