// Package options assembles the ranked, grouped, searchable list of
// selectable time zones for the picker: a curated suggested group first
// (UTC, the site default, the editor's browser zone), then one group per
// IANA region ordered by current offset. Options are rebuilt per request
// because offsets move at every DST boundary.
package options

import (
	"sort"
	"strings"
	"time"

	"tzfield/internal/models"
	"tzfield/internal/search"
	"tzfield/internal/tzformat"
	"tzfield/internal/tzindex"
)

// Group labels. Regional groups take their label from the first IANA path
// segment; fixed-offset and legacy ids get dedicated buckets.
const (
	GroupSuggested = "Suggested"
	GroupUTC       = "UTC & GMT"
	GroupOther     = "Other"
)

// Kind classifies a suggested entry and fixes its rank within the suggested
// group: UTC always first, then the site default, then the browser zone,
// then anything a config added. Ties keep input order.
type Kind int

const (
	KindUTC Kind = iota
	KindSite
	KindBrowser
	KindOther
)

// Suggested is one curated entry for the top group.
type Suggested struct {
	ZoneID string
	Kind   Kind
}

// SuggestedSet builds the deduplicated curated list: UTC, the site zone,
// the browser zone, then extras, with the first occurrence keeping its kind.
func SuggestedSet(siteZone, browserZone string, extra []string) []Suggested {
	var set []Suggested
	seen := map[string]bool{}
	add := func(zoneID string, kind Kind) {
		if zoneID == "" || seen[zoneID] {
			return
		}
		seen[zoneID] = true
		set = append(set, Suggested{ZoneID: zoneID, Kind: kind})
	}

	add("UTC", KindUTC)
	add(siteZone, KindSite)
	add(browserZone, KindBrowser)
	for _, z := range extra {
		add(z, KindOther)
	}
	return set
}

// Request carries everything a build needs. The current instant and locale
// are explicit parameters so builds stay deterministic under test.
type Request struct {
	Suggested []Suggested
	Locale    string
	Now       time.Time
	Query     string
}

// Builder produces option lists from the enumerated zone index.
type Builder struct {
	index *tzindex.Index
}

// NewBuilder creates a Builder over the given zone index.
func NewBuilder(index *tzindex.Index) *Builder {
	return &Builder{index: index}
}

// Build returns the full ranked option list, filtered by the request query.
// An empty zone index yields just the resolvable suggested entries; an
// empty result is valid and the picker must tolerate it.
func (b *Builder) Build(req Request) []models.ZoneOption {
	opts := b.suggestedOptions(req)
	opts = append(opts, b.regionalOptions(req)...)

	if req.Query == "" {
		return opts
	}
	filtered := make([]models.ZoneOption, 0, len(opts))
	for _, opt := range opts {
		if search.MatchesQuery(opt.SearchHaystack, req.Query) {
			filtered = append(filtered, opt)
		}
	}
	return filtered
}

func (b *Builder) suggestedOptions(req Request) []models.ZoneOption {
	type ranked struct {
		opt  models.ZoneOption
		rank Kind
		pos  int
	}

	var entries []ranked
	for i, s := range req.Suggested {
		opt, ok := b.option(s.ZoneID, GroupSuggested, s.Kind, req)
		if !ok {
			continue
		}
		entries = append(entries, ranked{opt: opt, rank: s.Kind, pos: i})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].rank != entries[j].rank {
			return entries[i].rank < entries[j].rank
		}
		return entries[i].pos < entries[j].pos
	})

	opts := make([]models.ZoneOption, len(entries))
	for i, e := range entries {
		opts[i] = e.opt
	}
	return opts
}

func (b *Builder) regionalOptions(req Request) []models.ZoneOption {
	grouped := map[string][]models.ZoneOption{}
	for _, zoneID := range b.index.Zones() {
		group := regionGroup(zoneID)
		opt, ok := b.option(zoneID, group, KindOther, req)
		if !ok {
			continue
		}
		grouped[group] = append(grouped[group], opt)
	}

	groups := make([]string, 0, len(grouped))
	for g := range grouped {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	var opts []models.ZoneOption
	for _, g := range groups {
		members := grouped[g]
		sort.SliceStable(members, func(i, j int) bool {
			if members[i].OffsetMinutes != members[j].OffsetMinutes {
				return members[i].OffsetMinutes < members[j].OffsetMinutes
			}
			return members[i].Label < members[j].Label
		})
		opts = append(opts, members...)
	}
	return opts
}

// option resolves one zone into a display option. Zones the runtime cannot
// load are dropped rather than shown with a wrong offset.
func (b *Builder) option(zoneID, group string, kind Kind, req Request) (models.ZoneOption, bool) {
	minutes, ok := tzformat.OffsetMinutes(zoneID, req.Now)
	if !ok {
		return models.ZoneOption{}, false
	}
	offset, _ := tzformat.OffsetString(zoneID, req.Now)

	var parts []string
	if zoneID == "UTC" {
		parts = append(parts, "🌐")
	} else if code, ok := b.index.CountryCode(zoneID); ok {
		if flag := tzindex.FlagEmoji(code); flag != "" {
			parts = append(parts, flag)
		}
	}

	name := zoneID
	if group == GroupSuggested {
		switch kind {
		case KindSite:
			name = "Site time zone: " + name
		case KindBrowser:
			name = "Your time zone: " + name
		}
	}
	parts = append(parts, name, "("+offset+")")

	if long := tzformat.LongZoneName(req.Locale, zoneID, req.Now); long != "" && long != zoneID {
		parts = append(parts, long)
	}

	label := strings.Join(parts, " ")
	return models.ZoneOption{
		ZoneID:         zoneID,
		Group:          group,
		Label:          label,
		OffsetMinutes:  minutes,
		SearchHaystack: search.BuildHaystack(zoneID, label),
	}, true
}

// regionGroup maps a zone id to its picker group.
func regionGroup(zoneID string) string {
	if zoneID == "UTC" || zoneID == "GMT" || strings.HasPrefix(zoneID, "Etc/") {
		return GroupUTC
	}
	if region, _, found := strings.Cut(zoneID, "/"); found {
		return region
	}
	return GroupOther
}
