package sheet

// SourceDocument is a compendium content record (background, heritage,
// lineage, class, talent). Documents are externally authored and read-only
// to the derivation pipeline.
type SourceDocument struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Subtype Subtype         `json:"subtype"`
	Color   string          `json:"color,omitempty"`
	Traits  []TraitTemplate `json:"traits,omitempty"`
}

// TraitTemplate is an immutable trait definition owned by a SourceDocument.
// Templates with an ID require player choices and get a TraitChoice record
// when attached to a character.
type TraitTemplate struct {
	ID     string       `json:"id,omitempty"`
	Name   string       `json:"name"`
	Color  string       `json:"color,omitempty"`
	Innate InnateGrants `json:"innate"`
	// Builder describes the choices this trait asks the player to make.
	// Nil or empty options means the trait carries no player decision.
	Builder *BuilderInfo `json:"builder,omitempty"`
}

// InnateGrants are the advantages a trait grants unconditionally,
// as keys into the rule catalog.
type InnateGrants struct {
	Proficiencies  []string `json:"proficiencies,omitempty"`
	Resistances    []string `json:"resistances,omitempty"`
	Languages      []string `json:"languages,omitempty"`
	SaveAdvantages []string `json:"save_advantages,omitempty"`
}

// BuilderInfo is the declarative description of what a trait asks the
// player to choose: a fulfillment mode plus named option entries.
type BuilderInfo struct {
	Mode    FulfillmentMode          `json:"mode,omitempty"`
	Options map[string]BuilderOption `json:"options,omitempty"`
}

// BuilderOption configures one choice slot. The candidate set is either
// Values (explicit) or every key of the catalog category named by
// ValuesType.
type BuilderOption struct {
	Label      string   `json:"label,omitempty"`
	Category   string   `json:"category"`
	Amount     int32    `json:"amount"`
	Values     []string `json:"values,omitempty"`
	ValuesType string   `json:"values_type,omitempty"`
}
