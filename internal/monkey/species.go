package monkey

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrLoadFailure  = errors.New("catalog load failed")
	ErrNotFound     = errors.New("monkey not found")
	ErrEmptyCatalog = errors.New("catalog is empty")
)

type Species struct {
	Name       string  `json:"name" yaml:"name"`
	Location   string  `json:"location" yaml:"location"`
	Details    string  `json:"details" yaml:"details"`
	Image      string  `json:"image" yaml:"image"`
	Population int     `json:"population" yaml:"population"`
	Latitude   float64 `json:"latitude" yaml:"latitude"`
	Longitude  float64 `json:"longitude" yaml:"longitude"`
}

// Catalog is the loaded, read-only sequence of species. Order is load order.
type Catalog struct {
	LoadID   string
	LoadedAt time.Time
	Source   string

	entries []Species
}

func newCatalog(id, source string, at time.Time, entries []Species) *Catalog {
	cp := make([]Species, len(entries))
	copy(cp, entries)
	return &Catalog{LoadID: id, LoadedAt: at, Source: source, entries: cp}
}

func (c *Catalog) Len() int { return len(c.entries) }

func (c *Catalog) At(i int) Species { return c.entries[i] }

// All returns a copy; the cached sequence is never handed out.
func (c *Catalog) All() []Species {
	out := make([]Species, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Catalog) find(name string) (Species, bool) {
	if strings.TrimSpace(name) == "" {
		return Species{}, false
	}
	for _, s := range c.entries {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Species{}, false
}

// duplicates reports names that occur more than once, compared the same way
// find compares them.
func (c *Catalog) duplicates() []string {
	var dups []string
	for i, s := range c.entries {
		for _, prev := range c.entries[:i] {
			if strings.EqualFold(prev.Name, s.Name) {
				dups = append(dups, s.Name)
				break
			}
		}
	}
	return dups
}

// negativePopulations names entries whose population is below zero.
func (c *Catalog) negativePopulations() []string {
	var bad []string
	for _, s := range c.entries {
		if s.Population < 0 {
			bad = append(bad, s.Name)
		}
	}
	return bad
}
