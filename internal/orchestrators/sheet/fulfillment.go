package sheet

import (
	"sort"

	"github.com/hearthlight/charsheet/internal/entities/sheet"
)

// evaluateFulfillment expands a trait choice record's builder
// configuration into concrete choice slots and recomputes its fulfilled
// state. Records interact with nothing outside themselves, so the
// evaluation order across records is irrelevant.
func (o *Orchestrator) evaluateFulfillment(choice *sheet.TraitChoice) {
	// No builder configuration means no player decision to make
	if choice.Builder == nil || len(choice.Builder.Options) == 0 {
		choice.ChoicesFulfilled = true
		return
	}

	// Option keys are iterated sorted so slot order is stable across
	// passes
	keys := make([]string, 0, len(choice.Builder.Options))
	for key := range choice.Builder.Options {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	totalOptions := 0
	choicesMade := 0
	for _, key := range keys {
		option := choice.Builder.Options[key]

		values, ok := o.candidateValues(choice, key, &option)
		if !ok {
			continue
		}
		totalOptions++

		slot := choice.Slot(key)
		if slot == nil {
			choice.Choices = append(choice.Choices, sheet.ChoiceSlot{
				Key:          key,
				ChosenValues: []string{},
			})
			slot = &choice.Choices[len(choice.Choices)-1]
		}

		// Refresh the slot from the current configuration; only the
		// player's existing selections are preserved
		slot.Label = option.Label
		slot.Category = option.Category
		slot.Options = values
		slot.Amount = option.Amount

		if slot.Made() {
			choicesMade++
		}
	}

	mode := choice.Builder.Mode
	if mode == "" {
		mode = sheet.ModeAll
	}

	switch mode {
	case sheet.ModeAll:
		choice.ChoicesFulfilled = choicesMade == totalOptions
	case sheet.ModeAny:
		choice.ChoicesFulfilled = choicesMade > 0
	case sheet.ModeChooseOne:
		choice.ChoicesFulfilled = choicesMade == 1
	default:
		o.logger.Warn("unknown fulfillment mode, treating as ALL",
			"trait", choice.Name,
			"mode", mode)
		choice.ChoicesFulfilled = choicesMade == totalOptions
	}
}

// candidateValues resolves an option's candidate value set: explicit
// values when given, otherwise every key of the referenced catalog
// category. Unknown categories skip the option entirely.
func (o *Orchestrator) candidateValues(choice *sheet.TraitChoice, key string, option *sheet.BuilderOption) ([]string, bool) {
	if len(option.Values) > 0 {
		return copyStrings(option.Values), true
	}

	if option.ValuesType == "" {
		o.logger.Warn("builder option has no values or values type, skipping",
			"trait", choice.Name,
			"option", key)
		return nil, false
	}

	category, ok := o.rules.Category(option.ValuesType)
	if !ok {
		o.logger.Warn("unknown builder values type, skipping option",
			"trait", choice.Name,
			"option", key,
			"values_type", option.ValuesType)
		return nil, false
	}

	return o.rules.Keys(category), true
}
