package blacklist

import (
	"encoding/json"
	"fmt"
	"os"
)

// Blacklist is the set of country names that may never be favorited.
// It is loaded once at startup from a JSON array file and injected into the
// service; the file is not expected to change during a process lifetime.
type Blacklist struct {
	names map[string]struct{}
}

// Load reads the blacklist file (a JSON array of country names)
//
// Parameters:
//   - filePath: path to the blacklist JSON file
//
// Returns:
//   - *Blacklist: the loaded set
//   - error: any error reading or parsing the file
func Load(filePath string) (*Blacklist, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read blacklist file: %w", err)
	}

	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse blacklist file: %w", err)
	}

	return New(entries), nil
}

// New builds a Blacklist from an explicit list of names (used by tests and
// by Load)
func New(entries []string) *Blacklist {
	names := make(map[string]struct{}, len(entries))
	for _, name := range entries {
		names[name] = struct{}{}
	}
	return &Blacklist{names: names}
}

// IsRestricted reports whether the canonical country name is blacklisted.
// The match is exact, against the provider's canonical name, never the raw
// query string.
func (b *Blacklist) IsRestricted(name string) bool {
	_, restricted := b.names[name]
	return restricted
}

// Size returns the number of restricted countries (used for startup logging)
func (b *Blacklist) Size() int {
	return len(b.names)
}
