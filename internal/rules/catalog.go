// Package rules defines the rule catalog: static lookup tables mapping
// type keys to display categories (proficiency types, damage types,
// language types, save types).
package rules

//go:generate mockgen -destination=mock/mock_catalog.go -package=rulesmock github.com/hearthlight/charsheet/internal/rules Catalog

// Category identifies one rule catalog lookup table
type Category string

// Core categories. Catalogs may carry additional categories for builder
// option expansion (e.g. fighting styles).
const (
	CategoryProficiencyTypes Category = "PROFICIENCY_TYPES"
	CategoryDamageTypes      Category = "DAMAGE_TYPES"
	CategoryLanguageTypes    Category = "LANGUAGE_TYPES"
	CategorySaveTypes        Category = "SAVE_TYPES"
)

// String returns the string representation of the category
func (c Category) String() string {
	return string(c)
}

// Entry is one rule catalog record
type Entry struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// Catalog provides typed lookups into the rule tables
type Catalog interface {
	// Lookup resolves a key within a category. The second return is
	// false when either the category or the key is unknown.
	Lookup(category Category, key string) (Entry, bool)

	// Keys returns every key of a category in sorted order, or nil for
	// an unknown category.
	Keys(category Category) []string

	// Category resolves a category by its string name, for builder
	// configurations that reference catalog tables dynamically.
	Category(name string) (Category, bool)
}
