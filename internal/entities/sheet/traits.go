package sheet

// Trait is a TraitTemplate attached to a character, stamped with the
// owning document's name, id and color. Traits are rebuilt from resolved
// source documents on every derivation pass and never mutated in place.
type Trait struct {
	ID       string       `json:"id,omitempty"`
	Name     string       `json:"name"`
	Source   string       `json:"source"`
	SourceID string       `json:"source_id"`
	Color    string       `json:"color,omitempty"`
	Innate   InnateGrants `json:"innate"`
	Builder  *BuilderInfo `json:"builder,omitempty"`
}

// TraitChoice is the persisted record of a player's in-progress or
// completed selections for a trait that requires choices. It is the only
// pipeline entity with cross-run persistence; it exists exactly as long
// as a trait with its ID is attached to the character.
type TraitChoice struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Source           string       `json:"source"`
	SourceID         string       `json:"source_id"`
	Color            string       `json:"color,omitempty"`
	Builder          *BuilderInfo `json:"builder,omitempty"`
	Choices          []ChoiceSlot `json:"choices"`
	ChoicesFulfilled bool         `json:"choices_fulfilled"`
}

// ChoiceSlot is one concrete choice expanded from a builder option.
// Invariants: ChosenValues is a set, ChosenValues ⊆ Options and
// len(ChosenValues) ≤ Amount.
type ChoiceSlot struct {
	Key          string   `json:"key"`
	Label        string   `json:"label,omitempty"`
	Category     string   `json:"category"`
	Options      []string `json:"options"`
	ChosenValues []string `json:"chosen_values"`
	Amount       int32    `json:"amount"`
}

// Made reports whether this slot counts toward the trait's made-choice
// total: exactly Amount distinct values chosen, no more, no fewer.
func (s *ChoiceSlot) Made() bool {
	distinct := make(map[string]bool, len(s.ChosenValues))
	for _, value := range s.ChosenValues {
		distinct[value] = true
	}
	return int32(len(distinct)) == s.Amount
}

// Slot returns the choice slot with the given key, or nil
func (tc *TraitChoice) Slot(key string) *ChoiceSlot {
	for i := range tc.Choices {
		if tc.Choices[i].Key == key {
			return &tc.Choices[i]
		}
	}
	return nil
}
