package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
)

// Location is one entry of the read-only game catalog: a place plus the
// fixed role list handed out to non-spy players.
type Location struct {
	Name  string   `json:"name"`
	Image string   `json:"image"`
	Roles []string `json:"roles"`
}

// Summary is the client-facing view of a location, without roles. The spy
// picks a guess from this list, so it must never carry role data.
type Summary struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

//go:embed locations.json
var defaultData []byte

// Default returns the embedded location set shipped with the server.
func Default() []Location {
	var locs []Location
	if err := json.Unmarshal(defaultData, &locs); err != nil {
		// The embedded file is part of the build; a parse failure is a bug.
		panic(fmt.Sprintf("catalog: embedded locations.json invalid: %v", err))
	}
	return locs
}

// Load reads a catalog from a JSON file supplied by the operator.
func Load(path string) ([]Location, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var locs []Location
	if err := json.Unmarshal(data, &locs); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(locs) == 0 {
		return nil, fmt.Errorf("catalog %s contains no locations", path)
	}
	return locs, nil
}

// Summaries returns the name+image list sorted alphabetically by name.
func Summaries(locs []Location) []Summary {
	out := make([]Summary, 0, len(locs))
	for _, l := range locs {
		out = append(out, Summary{Name: l.Name, Image: l.Image})
	}
	slices.SortFunc(out, func(a, b Summary) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}
