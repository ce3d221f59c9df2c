// Package catalog holds the immutable meter catalog and the known-verse
// table. Both are loaded once from embedded data and are safe for
// unsynchronized concurrent reads.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/shlokavani/chandas/internal/core/model"
)

//go:embed data/meters.yaml
var metersData []byte

//go:embed data/known_verses.yaml
var knownVersesData []byte

// Catalog is the ordered set of meter definitions plus a normalized-key index
// over names and aliases.
type Catalog struct {
	meters []model.MeterDefinition
	byName map[string]int
}

// Load parses the embedded meter catalog.
func Load() (*Catalog, error) {
	var doc struct {
		Meters []model.MeterDefinition `yaml:"meters"`
	}
	if err := yaml.Unmarshal(metersData, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse meter catalog: %w", err)
	}
	if len(doc.Meters) == 0 {
		return nil, fmt.Errorf("meter catalog is empty")
	}

	c := &Catalog{
		meters: doc.Meters,
		byName: make(map[string]int),
	}
	for i, m := range doc.Meters {
		c.index(m.Name, i)
		for _, alias := range m.Aliases {
			c.index(alias, i)
		}
	}
	return c, nil
}

func (c *Catalog) index(name string, i int) {
	key := NormalizeName(name)
	if _, exists := c.byName[key]; !exists {
		c.byName[key] = i
	}
}

// Meters returns the definitions in catalog order. Callers must not mutate.
func (c *Catalog) Meters() []model.MeterDefinition {
	return c.meters
}

// Lookup resolves a meter name or alias, ignoring case, spacing, and hyphens.
func (c *Catalog) Lookup(name string) (model.MeterDefinition, bool) {
	i, ok := c.byName[NormalizeName(name)]
	if !ok {
		return model.MeterDefinition{}, false
	}
	return c.meters[i], true
}

// NormalizeName builds the lookup key for a meter name: NFC-composed,
// lower-cased, with spaces and hyphens removed.
func NormalizeName(name string) string {
	key := norm.NFC.String(strings.ToLower(strings.TrimSpace(name)))
	key = strings.ReplaceAll(key, " ", "")
	key = strings.ReplaceAll(key, "-", "")
	return key
}

// KnownVerses is the ordered verse-opening override table.
type KnownVerses struct {
	entries []model.KnownVerseEntry
}

// LoadKnownVerses parses the embedded known-verse table, preserving order.
func LoadKnownVerses() (*KnownVerses, error) {
	var doc struct {
		Verses []model.KnownVerseEntry `yaml:"verses"`
	}
	if err := yaml.Unmarshal(knownVersesData, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse known-verse table: %w", err)
	}
	kv := &KnownVerses{entries: doc.Verses}
	for i := range kv.entries {
		kv.entries[i].OpeningText = norm.NFC.String(kv.entries[i].OpeningText)
	}
	return kv, nil
}

// Match scans normalized verse text for containment of any known opening and
// returns the first hit in table order.
func (kv *KnownVerses) Match(normalizedText string) (model.KnownVerseEntry, bool) {
	for _, e := range kv.entries {
		if strings.Contains(normalizedText, e.OpeningText) {
			return e, true
		}
	}
	return model.KnownVerseEntry{}, false
}

// Entries exposes the table for inspection (CLI catalog listing).
func (kv *KnownVerses) Entries() []model.KnownVerseEntry {
	return kv.entries
}
