package sheet

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hearthlight/charsheet/internal/entities/sheet"
	"github.com/hearthlight/charsheet/internal/pkg/style"
	"github.com/hearthlight/charsheet/internal/rules"
)

// Innate grant selectors, one per advantage set
func innateProficiencies(g sheet.InnateGrants) []string  { return g.Proficiencies }
func innateResistances(g sheet.InnateGrants) []string    { return g.Resistances }
func innateLanguages(g sheet.InnateGrants) []string      { return g.Languages }
func innateSaveAdvantages(g sheet.InnateGrants) []string { return g.SaveAdvantages }

// aggregateAdvantages merges the three provenance tiers of one category
// into a final advantage set: manual entries, trait-innate grants, and
// player-chosen values. Entries are deduplicated by full structural
// equality only, so the same value from different provenances stays
// visible twice. The result is sorted by label with locale-aware
// comparison.
func (o *Orchestrator) aggregateAdvantages(
	category rules.Category,
	manual []string,
	traits []sheet.Trait,
	choices []sheet.TraitChoice,
	innate func(sheet.InnateGrants) []string,
) []sheet.Advantage {
	advantages := []sheet.Advantage{}

	// Manual tier. Stored values are the caller's contract to keep
	// valid; an unknown key falls back to the raw value as its label.
	for _, value := range manual {
		label := value
		if entry, ok := o.rules.Lookup(category, value); ok {
			label = entry.Label
		}
		advantages = append(advantages, sheet.Advantage{
			Source:     sheet.SourceManual,
			SourceType: sheet.SourceTypeManual,
			Value:      value,
			Label:      label,
		})
	}

	// Innate tier
	for i := range traits {
		trait := &traits[i]
		for _, value := range innate(trait.Innate) {
			entry, ok := o.rules.Lookup(category, value)
			if !ok {
				o.logger.Warn("unknown catalog key in innate grant, skipping",
					"category", category,
					"key", value,
					"source", trait.Source,
					"trait", trait.Name)
				continue
			}
			advantages = append(advantages, newSourcedAdvantage(
				trait.Source, trait.Name, trait.SourceID, trait.Color,
				sheet.SourceTypeInnate, value, entry))
		}
	}

	// Choice tier
	for i := range choices {
		choice := &choices[i]
		for j := range choice.Choices {
			slot := &choice.Choices[j]
			if slot.Category != category.String() {
				continue
			}
			for _, value := range slot.ChosenValues {
				entry, ok := o.rules.Lookup(category, value)
				if !ok {
					o.logger.Warn("unknown catalog key in chosen value, skipping",
						"category", category,
						"key", value,
						"source", choice.Source,
						"trait", choice.Name)
					continue
				}
				advantages = append(advantages, newSourcedAdvantage(
					choice.Source, choice.Name, choice.SourceID, choice.Color,
					sheet.SourceTypeChoice, value, entry))
			}
		}
	}

	return sortAdvantages(dedupeAdvantages(advantages))
}

// newSourcedAdvantage builds an innate- or choice-tier entry, including
// the badge style derived from the owning trait's color
func newSourcedAdvantage(source, traitName, sourceID, color string, sourceType sheet.SourceType, value string, entry rules.Entry) sheet.Advantage {
	return sheet.Advantage{
		Source:     fmt.Sprintf("%s (%s)", source, traitName),
		SourceID:   sourceID,
		SourceType: sourceType,
		Value:      value,
		Label:      entry.Label,
		Style:      style.Badge(color),
	}
}

// dedupeAdvantages collapses structurally identical entries; entries
// differing only in provenance remain distinct by design
func dedupeAdvantages(advantages []sheet.Advantage) []sheet.Advantage {
	seen := make(map[sheet.Advantage]bool, len(advantages))
	result := []sheet.Advantage{}
	for _, adv := range advantages {
		if seen[adv] {
			continue
		}
		seen[adv] = true
		result = append(result, adv)
	}
	return result
}

func sortAdvantages(advantages []sheet.Advantage) []sheet.Advantage {
	collator := collate.New(language.English)
	sort.SliceStable(advantages, func(i, j int) bool {
		return collator.CompareString(advantages[i].Label, advantages[j].Label) < 0
	})
	return advantages
}
