package sheet

// Subtype identifies a class of source document in the compendium
type Subtype string

// Tracked source document subtypes
const (
	SubtypeLineage    Subtype = "lineage"
	SubtypeHeritage   Subtype = "heritage"
	SubtypeBackground Subtype = "background"
	SubtypeTalent     Subtype = "talent"
	SubtypeClass      Subtype = "class"
)

// TrackedSubtypes lists every subtype the compendium loads, in load order
var TrackedSubtypes = []Subtype{
	SubtypeLineage,
	SubtypeHeritage,
	SubtypeBackground,
	SubtypeTalent,
	SubtypeClass,
}

// SourceType identifies which provenance tier an advantage came from
type SourceType string

// Advantage provenance tiers
const (
	SourceTypeManual SourceType = "manual"
	SourceTypeInnate SourceType = "innate"
	SourceTypeChoice SourceType = "choice"
)

// SourceManual is the display source for manually entered advantages
const SourceManual = "Manual"

// FulfillmentMode controls how a trait's choice slots combine into a
// single fulfilled/unfulfilled state
type FulfillmentMode string

// Fulfillment modes
const (
	ModeAll       FulfillmentMode = "ALL"
	ModeAny       FulfillmentMode = "ANY"
	ModeChooseOne FulfillmentMode = "CHOOSE_ONE"
)

// Ability keys
const (
	AbilityStrength     = "strength"
	AbilityDexterity    = "dexterity"
	AbilityConstitution = "constitution"
	AbilityIntelligence = "intelligence"
	AbilityWisdom       = "wisdom"
	AbilityCharisma     = "charisma"
)
