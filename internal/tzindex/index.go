// Package tzindex enumerates the IANA zone identifiers available on the
// host and maps zones to countries via the tzdata zone1970.tab table. The
// index is the candidate set for the picker; when the host has no readable
// tzdata directory it degrades to an empty set and the picker falls back to
// suggested entries only.
package tzindex

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// DefaultDir is where tzdata lives on the platforms we deploy to.
const DefaultDir = "/usr/share/zoneinfo"

// Names that live in the zoneinfo tree but are not selectable zones.
var skipEntries = map[string]bool{
	"posix":             true,
	"right":             true,
	"posixrules":        true,
	"localtime":         true,
	"leapseconds":       true,
	"leap-seconds.list": true,
	"tzdata.zi":         true,
	"zone.tab":          true,
	"zone1970.tab":      true,
	"zonenow.tab":       true,
	"iso3166.tab":       true,
	"Factory":           true,
	"SECURITY":          true,
	"+VERSION":          true,
}

// Index holds the enumerated zone set and the zone→country table. It is
// safe for concurrent readers; Reload swaps the whole snapshot under the
// write lock.
type Index struct {
	mu        sync.RWMutex
	dir       string
	zones     []string
	countries map[string]string
	loadedAt  time.Time
}

// New creates an index over the given tzdata directory without loading it;
// call Reload before first use.
func New(dir string) *Index {
	if dir == "" {
		dir = DefaultDir
	}
	return &Index{dir: dir}
}

// Reload rescans the tzdata directory. A missing or unreadable directory is
// not an error: it leaves an empty candidate set, which downstream consumers
// must tolerate.
func (ix *Index) Reload() error {
	zones := scanZones(ix.dir)
	countries := loadCountries(filepath.Join(ix.dir, "zone1970.tab"))

	ix.mu.Lock()
	ix.zones = zones
	ix.countries = countries
	ix.loadedAt = time.Now()
	ix.mu.Unlock()
	return nil
}

// Zones returns the sorted candidate zone ids. The slice is shared; callers
// must not modify it.
func (ix *Index) Zones() []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.zones
}

// Count returns the number of enumerated zones.
func (ix *Index) Count() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.zones)
}

// CountryCode returns the ISO 3166-1 alpha-2 code for a zone, if the
// zone1970.tab table lists one.
func (ix *Index) CountryCode(zoneID string) (string, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	code, ok := ix.countries[zoneID]
	return code, ok
}

// LoadedAt returns when the index was last reloaded.
func (ix *Index) LoadedAt() time.Time {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.loadedAt
}

// scanZones walks the zoneinfo tree collecting zone ids. Zone files start
// with an uppercase letter ("Europe/Rome", "UTC"); everything else in the
// tree is metadata or compatibility links.
func scanZones(dir string) []string {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil
	}

	var zones []string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		name := d.Name()
		if path == dir {
			return nil
		}
		if skipEntries[name] {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil
		}
		id := filepath.ToSlash(rel)
		if id[0] < 'A' || id[0] > 'Z' {
			return nil
		}
		zones = append(zones, id)
		return nil
	})

	sort.Strings(zones)
	return zones
}

// loadCountries parses zone1970.tab: tab-separated lines of country codes,
// coordinates, zone id and an optional comment. When a zone spans several
// countries the first listed code wins.
func loadCountries(path string) map[string]string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	countries := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			continue
		}
		code, _, _ := strings.Cut(fields[0], ",")
		zoneID := fields[2]
		if len(code) != 2 || zoneID == "" {
			continue
		}
		if _, seen := countries[zoneID]; !seen {
			countries[zoneID] = code
		}
	}
	return countries
}

// FlagEmoji converts an ISO 3166-1 alpha-2 code to its regional-indicator
// flag glyph, or "" for anything that is not two ASCII letters.
func FlagEmoji(countryCode string) string {
	if len(countryCode) != 2 {
		return ""
	}
	code := strings.ToUpper(countryCode)
	a, b := code[0], code[1]
	if a < 'A' || a > 'Z' || b < 'A' || b > 'Z' {
		return ""
	}
	return string([]rune{0x1F1E6 + rune(a-'A'), 0x1F1E6 + rune(b-'A')})
}
