// Package sheet implements the character sheet entities
package sheet

// AbilityScore pairs a raw ability value with its derived modifier.
// Recomputed on every derivation pass; never persisted.
type AbilityScore struct {
	Value    int32 `json:"value"`
	Modifier int32 `json:"modifier"`
}

// Character is the stored state of a character: raw scores, source
// document references, manual grant entries and the persisted trait
// choice records. Everything derived from these fields lives on Sheet.
// NOTE: This is a data-only struct. All derivation is done by the sheet
// orchestrator, not here.
type Character struct {
	ID       string `json:"id"`
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`

	AbilityScores map[string]int32 `json:"ability_scores"`

	BackgroundID string `json:"background_id,omitempty"`
	HeritageID   string `json:"heritage_id,omitempty"`
	LineageID    string `json:"lineage_id,omitempty"`
	ClassID      string `json:"class_id,omitempty"`

	// Manually entered grants, as rule catalog keys. The caller is
	// responsible for only storing valid keys here.
	ManualProficiencies  []string `json:"manual_proficiencies,omitempty"`
	ManualResistances    []string `json:"manual_resistances,omitempty"`
	ManualLanguages      []string `json:"manual_languages,omitempty"`
	ManualSaveAdvantages []string `json:"manual_save_advantages,omitempty"`

	TraitChoices []TraitChoice `json:"trait_choices,omitempty"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// Sheet is the derived view of a character, rebuilt in full by every
// derivation pass and never persisted.
type Sheet struct {
	CharacterID string `json:"character_id"`
	Name        string `json:"name"`

	Abilities map[string]AbilityScore `json:"abilities"`

	BackgroundID string          `json:"background_id,omitempty"`
	Background   *SourceDocument `json:"background,omitempty"`
	HeritageID   string          `json:"heritage_id,omitempty"`
	Heritage     *SourceDocument `json:"heritage,omitempty"`
	LineageID    string          `json:"lineage_id,omitempty"`
	Lineage      *SourceDocument `json:"lineage,omitempty"`
	ClassID      string          `json:"class_id,omitempty"`
	Class        *SourceDocument `json:"class,omitempty"`

	Traits       []Trait       `json:"traits"`
	TraitChoices []TraitChoice `json:"trait_choices"`

	Proficiencies  []Advantage `json:"proficiencies"`
	Resistances    []Advantage `json:"resistances"`
	Languages      []Advantage `json:"languages"`
	SaveAdvantages []Advantage `json:"save_advantages"`
}
