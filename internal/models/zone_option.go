package models

// ZoneOption is one selectable entry in the time zone picker. Options are
// ephemeral: rebuilt for every request because the offset (and therefore the
// label) can change at any DST boundary.
type ZoneOption struct {
	ZoneID         string `json:"zone_id" example:"Europe/Rome"`
	Group          string `json:"group" example:"Europe"`
	Label          string `json:"label" example:"🇮🇹 Europe/Rome (UTC+2) Central European Summer Time"`
	OffsetMinutes  int    `json:"offset_minutes" example:"120"`
	SearchHaystack string `json:"search_haystack" example:"europe rome utc 2 central european summer time"`
}

// ZoneOptionsResponse is the ranked, grouped option list: the suggested
// group first, then one group per region.
type ZoneOptionsResponse struct {
	Options []ZoneOption `json:"options"`
}
