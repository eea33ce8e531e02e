package rules

import "sort"

// StaticCatalog is an immutable in-memory Catalog backed by plain tables
type StaticCatalog struct {
	tables map[Category]map[string]Entry
}

// NewStatic creates a catalog from the given tables. The tables are
// copied; later mutation of the argument does not affect the catalog.
func NewStatic(tables map[Category]map[string]Entry) *StaticCatalog {
	copied := make(map[Category]map[string]Entry, len(tables))
	for category, entries := range tables {
		table := make(map[string]Entry, len(entries))
		for key, entry := range entries {
			if entry.Key == "" {
				entry.Key = key
			}
			table[key] = entry
		}
		copied[category] = table
	}
	return &StaticCatalog{tables: copied}
}

// Ensure StaticCatalog implements the Catalog interface
var _ Catalog = (*StaticCatalog)(nil)

// Lookup resolves a key within a category
func (c *StaticCatalog) Lookup(category Category, key string) (Entry, bool) {
	table, ok := c.tables[category]
	if !ok {
		return Entry{}, false
	}
	entry, ok := table[key]
	return entry, ok
}

// Keys returns every key of a category in sorted order
func (c *StaticCatalog) Keys(category Category) []string {
	table, ok := c.tables[category]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Category resolves a category by its string name
func (c *StaticCatalog) Category(name string) (Category, bool) {
	category := Category(name)
	_, ok := c.tables[category]
	return category, ok
}
