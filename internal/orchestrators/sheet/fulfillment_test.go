package sheet

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthlight/charsheet/internal/entities/sheet"
	"github.com/hearthlight/charsheet/internal/errors"
	"github.com/hearthlight/charsheet/internal/rules"
)

// testOrchestrator builds an orchestrator with just the pieces the
// pipeline helpers touch
func testOrchestrator() *Orchestrator {
	return &Orchestrator{
		rules:  rules.Default(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func twoOptionChoice(mode sheet.FulfillmentMode) *sheet.TraitChoice {
	return &sheet.TraitChoice{
		ID:   "trait-a",
		Name: "Guild Membership",
		Builder: &sheet.BuilderInfo{
			Mode: mode,
			Options: map[string]sheet.BuilderOption{
				"language": {
					Label:      "Guild Language",
					Category:   "LANGUAGE_TYPES",
					Amount:     1,
					ValuesType: "LANGUAGE_TYPES",
				},
				"tool": {
					Label:    "Artisan Tool",
					Category: "PROFICIENCY_TYPES",
					Amount:   1,
					Values:   []string{"smiths-tools", "brewers-tools"},
				},
			},
		},
		Choices: []sheet.ChoiceSlot{},
	}
}

func choose(tc *sheet.TraitChoice, key string, values ...string) {
	slot := tc.Slot(key)
	slot.ChosenValues = values
}

func TestEvaluateFulfillmentNoBuilder(t *testing.T) {
	o := testOrchestrator()

	choice := &sheet.TraitChoice{ID: "trait-a"}
	o.evaluateFulfillment(choice)
	assert.True(t, choice.ChoicesFulfilled, "no builder means nothing to decide")

	choice = &sheet.TraitChoice{ID: "trait-a", Builder: &sheet.BuilderInfo{Mode: sheet.ModeAll}}
	o.evaluateFulfillment(choice)
	assert.True(t, choice.ChoicesFulfilled, "builder with no options is trivially fulfilled")
}

func TestEvaluateFulfillmentExpandsSlots(t *testing.T) {
	o := testOrchestrator()
	choice := twoOptionChoice(sheet.ModeAll)

	o.evaluateFulfillment(choice)

	require.Len(t, choice.Choices, 2)
	// Slots appear in sorted option-key order
	assert.Equal(t, "language", choice.Choices[0].Key)
	assert.Equal(t, "tool", choice.Choices[1].Key)

	lang := choice.Slot("language")
	assert.Equal(t, "Guild Language", lang.Label)
	assert.Equal(t, "LANGUAGE_TYPES", lang.Category)
	assert.Equal(t, rules.Default().Keys(rules.CategoryLanguageTypes), lang.Options,
		"values type expands to every catalog key")

	tool := choice.Slot("tool")
	assert.Equal(t, []string{"smiths-tools", "brewers-tools"}, tool.Options,
		"explicit values are used as-is")

	assert.False(t, choice.ChoicesFulfilled)
}

func TestEvaluateFulfillmentModeAll(t *testing.T) {
	o := testOrchestrator()
	choice := twoOptionChoice(sheet.ModeAll)
	o.evaluateFulfillment(choice)

	choose(choice, "language", "dwarvish")
	o.evaluateFulfillment(choice)
	assert.False(t, choice.ChoicesFulfilled, "one of two made")

	choose(choice, "tool", "smiths-tools")
	o.evaluateFulfillment(choice)
	assert.True(t, choice.ChoicesFulfilled, "both made")
}

func TestEvaluateFulfillmentModeAny(t *testing.T) {
	o := testOrchestrator()
	choice := twoOptionChoice(sheet.ModeAny)
	o.evaluateFulfillment(choice)
	assert.False(t, choice.ChoicesFulfilled)

	choose(choice, "tool", "brewers-tools")
	o.evaluateFulfillment(choice)
	assert.True(t, choice.ChoicesFulfilled)
}

func TestEvaluateFulfillmentModeChooseOne(t *testing.T) {
	o := testOrchestrator()
	choice := twoOptionChoice(sheet.ModeChooseOne)
	o.evaluateFulfillment(choice)
	assert.False(t, choice.ChoicesFulfilled, "zero made")

	choose(choice, "language", "elvish")
	o.evaluateFulfillment(choice)
	assert.True(t, choice.ChoicesFulfilled, "exactly one made")

	choose(choice, "tool", "smiths-tools")
	o.evaluateFulfillment(choice)
	assert.False(t, choice.ChoicesFulfilled, "two made is too many for CHOOSE_ONE")
}

func TestEvaluateFulfillmentCountsExactAmounts(t *testing.T) {
	o := testOrchestrator()
	choice := &sheet.TraitChoice{
		ID: "trait-a",
		Builder: &sheet.BuilderInfo{
			Mode: sheet.ModeAll,
			Options: map[string]sheet.BuilderOption{
				"languages": {
					Category:   "LANGUAGE_TYPES",
					Amount:     2,
					ValuesType: "LANGUAGE_TYPES",
				},
			},
		},
		Choices: []sheet.ChoiceSlot{},
	}

	o.evaluateFulfillment(choice)
	assert.False(t, choice.ChoicesFulfilled)

	choose(choice, "languages", "elvish")
	o.evaluateFulfillment(choice)
	assert.False(t, choice.ChoicesFulfilled, "under-selection is unmade")

	choose(choice, "languages", "elvish", "dwarvish", "giant")
	o.evaluateFulfillment(choice)
	assert.False(t, choice.ChoicesFulfilled, "over-selection is unmade")

	choose(choice, "languages", "elvish", "dwarvish")
	o.evaluateFulfillment(choice)
	assert.True(t, choice.ChoicesFulfilled)
}

func TestEvaluateFulfillmentCountsDistinctValues(t *testing.T) {
	o := testOrchestrator()
	choice := &sheet.TraitChoice{
		ID: "trait-a",
		Builder: &sheet.BuilderInfo{
			Mode: sheet.ModeAll,
			Options: map[string]sheet.BuilderOption{
				"languages": {
					Category:   "LANGUAGE_TYPES",
					Amount:     2,
					ValuesType: "LANGUAGE_TYPES",
				},
			},
		},
		Choices: []sheet.ChoiceSlot{},
	}
	o.evaluateFulfillment(choice)

	choose(choice, "languages", "elvish", "elvish")
	o.evaluateFulfillment(choice)
	assert.False(t, choice.ChoicesFulfilled, "a repeated value is one distinct choice")

	choose(choice, "languages", "elvish", "dwarvish")
	o.evaluateFulfillment(choice)
	assert.True(t, choice.ChoicesFulfilled)
}

func TestValidateSelectionRejectsDuplicates(t *testing.T) {
	slot := &sheet.ChoiceSlot{
		Key:     "languages",
		Options: []string{"elvish", "dwarvish", "giant"},
		Amount:  2,
	}

	err := validateSelection(slot, []string{"elvish", "elvish"})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	require.NoError(t, validateSelection(slot, []string{"elvish", "dwarvish"}))
}

func TestEvaluateFulfillmentUnknownValuesTypeSkipsOption(t *testing.T) {
	o := testOrchestrator()
	choice := &sheet.TraitChoice{
		ID: "trait-a",
		Builder: &sheet.BuilderInfo{
			Options: map[string]sheet.BuilderOption{
				"mystery": {
					Category:   "MYSTERY_TYPES",
					Amount:     1,
					ValuesType: "MYSTERY_TYPES",
				},
				"tool": {
					Category: "PROFICIENCY_TYPES",
					Amount:   1,
					Values:   []string{"smiths-tools"},
				},
			},
		},
		Choices: []sheet.ChoiceSlot{},
	}

	o.evaluateFulfillment(choice)

	assert.Nil(t, choice.Slot("mystery"), "unknown category creates no slot")
	require.NotNil(t, choice.Slot("tool"))
	assert.False(t, choice.ChoicesFulfilled)

	// With the unknown option skipped, the remaining slot alone
	// decides ALL fulfillment
	choose(choice, "tool", "smiths-tools")
	o.evaluateFulfillment(choice)
	assert.True(t, choice.ChoicesFulfilled)
}

func TestEvaluateFulfillmentRefreshesConfiguration(t *testing.T) {
	o := testOrchestrator()
	choice := twoOptionChoice(sheet.ModeAll)
	o.evaluateFulfillment(choice)
	choose(choice, "tool", "smiths-tools")

	// Re-author the option between runs
	opt := choice.Builder.Options["tool"]
	opt.Label = "Trade Tool"
	opt.Values = []string{"smiths-tools", "herbalism-kit"}
	choice.Builder.Options["tool"] = opt

	o.evaluateFulfillment(choice)

	tool := choice.Slot("tool")
	assert.Equal(t, "Trade Tool", tool.Label)
	assert.Equal(t, []string{"smiths-tools", "herbalism-kit"}, tool.Options)
	assert.Equal(t, []string{"smiths-tools"}, tool.ChosenValues, "selection preserved")
}

func TestEvaluateFulfillmentUnknownModeFallsBackToAll(t *testing.T) {
	o := testOrchestrator()
	choice := twoOptionChoice(sheet.FulfillmentMode("PICK_SOME"))
	choice.ChoicesFulfilled = true // stale state must not survive

	o.evaluateFulfillment(choice)
	assert.False(t, choice.ChoicesFulfilled)

	choose(choice, "language", "common")
	choose(choice, "tool", "smiths-tools")
	o.evaluateFulfillment(choice)
	assert.True(t, choice.ChoicesFulfilled)
}
