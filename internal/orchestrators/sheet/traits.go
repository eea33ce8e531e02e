package sheet

import (
	"reflect"

	"github.com/hearthlight/charsheet/internal/entities/sheet"
)

// buildTraits rebuilds the character's trait set from its resolved
// source documents, walking background, heritage, lineage in that fixed
// order. The order only affects display grouping. Duplicate trait ids
// across documents are kept as distinct entries; a single document's
// template list is assumed already unique.
func buildTraits(refs *resolvedRefs) []sheet.Trait {
	traits := []sheet.Trait{}
	for _, doc := range []*sheet.SourceDocument{refs.background, refs.heritage, refs.lineage} {
		if doc == nil {
			continue
		}
		for i := range doc.Traits {
			traits = append(traits, newTrait(&doc.Traits[i], doc))
		}
	}
	return traits
}

// newTrait copies a template and stamps it with the owning document's
// identity. Slices and builder info are deep-copied so the template
// stays immutable across passes.
func newTrait(template *sheet.TraitTemplate, doc *sheet.SourceDocument) sheet.Trait {
	color := template.Color
	if color == "" {
		color = doc.Color
	}

	return sheet.Trait{
		ID:       template.ID,
		Name:     template.Name,
		Source:   doc.Name,
		SourceID: doc.ID,
		Color:    color,
		Innate: sheet.InnateGrants{
			Proficiencies:  copyStrings(template.Innate.Proficiencies),
			Resistances:    copyStrings(template.Innate.Resistances),
			Languages:      copyStrings(template.Innate.Languages),
			SaveAdvantages: copyStrings(template.Innate.SaveAdvantages),
		},
		Builder: copyBuilder(template.Builder),
	}
}

// reconcileChoices brings the persisted trait choice set in line with
// the current trait set: records whose trait is gone are pruned, traits
// with an id and no record get a fresh one, and surviving records have
// their metadata and builder refreshed from the current trait. Player
// selections in Choices are always preserved.
func reconcileChoices(traits []sheet.Trait, existing []sheet.TraitChoice) []sheet.TraitChoice {
	byID := make(map[string]*sheet.Trait)
	for i := range traits {
		if traits[i].ID == "" {
			continue
		}
		if _, ok := byID[traits[i].ID]; !ok {
			byID[traits[i].ID] = &traits[i]
		}
	}

	reconciled := []sheet.TraitChoice{}
	kept := make(map[string]bool)
	for _, choice := range existing {
		trait, active := byID[choice.ID]
		if !active {
			continue
		}
		refreshChoice(&choice, trait)
		reconciled = append(reconciled, choice)
		kept[choice.ID] = true
	}

	// Traits requiring choices that have no record yet get a new one,
	// in trait order
	for i := range traits {
		trait := &traits[i]
		if trait.ID == "" || kept[trait.ID] {
			continue
		}
		reconciled = append(reconciled, newTraitChoice(trait))
		kept[trait.ID] = true
	}

	return reconciled
}

// newTraitChoice creates the persisted record for a trait that appeared
// without one
func newTraitChoice(trait *sheet.Trait) sheet.TraitChoice {
	return sheet.TraitChoice{
		ID:               trait.ID,
		Name:             trait.Name,
		Source:           trait.Source,
		SourceID:         trait.SourceID,
		Color:            trait.Color,
		Builder:          copyBuilder(trait.Builder),
		Choices:          []sheet.ChoiceSlot{},
		ChoicesFulfilled: false,
	}
}

// refreshChoice updates a surviving record's trait-derived fields; the
// source document may have been re-authored since the record was made.
// Slots are deep-copied so later slot refreshes never write through into
// the stored record.
func refreshChoice(choice *sheet.TraitChoice, trait *sheet.Trait) {
	choice.Name = trait.Name
	choice.Source = trait.Source
	choice.SourceID = trait.SourceID
	choice.Color = trait.Color
	choice.Builder = copyBuilder(trait.Builder)
	choice.Choices = copySlots(choice.Choices)
}

// choicesEqual reports whether two trait choice sets are identical,
// used to skip persistence when reconciliation changed nothing
func choicesEqual(a, b []sheet.TraitChoice) bool {
	if len(a) != len(b) {
		return false
	}
	return reflect.DeepEqual(a, b)
}

func copySlots(slots []sheet.ChoiceSlot) []sheet.ChoiceSlot {
	copied := make([]sheet.ChoiceSlot, len(slots))
	for i, slot := range slots {
		slot.Options = copyStrings(slot.Options)
		slot.ChosenValues = copyStrings(slot.ChosenValues)
		copied[i] = slot
	}
	return copied
}

func copyStrings(values []string) []string {
	if values == nil {
		return nil
	}
	copied := make([]string, len(values))
	copy(copied, values)
	return copied
}

func copyBuilder(builder *sheet.BuilderInfo) *sheet.BuilderInfo {
	if builder == nil {
		return nil
	}
	copied := &sheet.BuilderInfo{
		Mode: builder.Mode,
	}
	if builder.Options != nil {
		copied.Options = make(map[string]sheet.BuilderOption, len(builder.Options))
		for key, option := range builder.Options {
			option.Values = copyStrings(option.Values)
			copied.Options[key] = option
		}
	}
	return copied
}
