// Package sheet implements the character sheet derivation orchestrator
package sheet

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hearthlight/charsheet/internal/compendium"
	"github.com/hearthlight/charsheet/internal/entities/sheet"
	"github.com/hearthlight/charsheet/internal/errors"
	"github.com/hearthlight/charsheet/internal/pkg/idgen"
	characterrepo "github.com/hearthlight/charsheet/internal/repositories/character"
	"github.com/hearthlight/charsheet/internal/rules"
	sheetservice "github.com/hearthlight/charsheet/internal/services/sheet"
)

// Config holds the dependencies for the sheet orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	Compendium    compendium.Resolver
	Rules         rules.Catalog
	IDGenerator   idgen.Generator
	Logger        *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Compendium == nil {
		vb.RequiredField("Compendium")
	}
	if c.Rules == nil {
		vb.RequiredField("Rules")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the sheet.Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	compendium    compendium.Resolver
	rules         rules.Catalog
	idGenerator   idgen.Generator
	logger        *slog.Logger
}

// New creates a new sheet orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		compendium:    cfg.Compendium,
		rules:         cfg.Rules,
		idGenerator:   cfg.IDGenerator,
		logger:        logger,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ sheetservice.Service = (*Orchestrator)(nil)

// CreateCharacter creates a new character record
func (o *Orchestrator) CreateCharacter(ctx context.Context, input *sheetservice.CreateCharacterInput) (*sheetservice.CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	for ability, score := range input.AbilityScores {
		errors.ValidateRange(ability, int(score), 1, 30, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := time.Now().Unix()
	char := &sheet.Character{
		ID:            o.idGenerator.Generate(),
		PlayerID:      input.PlayerID,
		Name:          input.Name,
		AbilityScores: input.AbilityScores,
		BackgroundID:  input.BackgroundID,
		HeritageID:    input.HeritageID,
		LineageID:     input.LineageID,
		ClassID:       input.ClassID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char}); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &sheetservice.CreateCharacterOutput{
		Character: char,
	}, nil
}

// GetCharacter retrieves a character's stored state by ID
func (o *Orchestrator) GetCharacter(ctx context.Context, input *sheetservice.GetCharacterInput) (*sheetservice.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}

	return &sheetservice.GetCharacterOutput{
		Character: getOutput.Character,
	}, nil
}

// ListCharacters lists a player's character records
func (o *Orchestrator) ListCharacters(ctx context.Context, input *sheetservice.ListCharactersInput) (*sheetservice.ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	listOutput, err := o.characterRepo.ListByPlayerID(ctx, characterrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &sheetservice.ListCharactersOutput{
		Characters: listOutput.Characters,
	}, nil
}

// DeleteCharacter deletes a character record
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *sheetservice.DeleteCharacterInput) (*sheetservice.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete character")
	}

	return &sheetservice.DeleteCharacterOutput{
		Message: fmt.Sprintf("Character %s deleted successfully", input.CharacterID),
	}, nil
}

// DeriveSheet runs a full derivation pass and persists the reconciled
// trait choice records
func (o *Orchestrator) DeriveSheet(ctx context.Context, input *sheetservice.DeriveSheetInput) (*sheetservice.DeriveSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}
	char := getOutput.Character

	derived, err := o.derive(ctx, char)
	if err != nil {
		return nil, err
	}

	// Reconciliation may have created or pruned choice records; keep
	// the stored set in sync so selections survive across passes.
	if !choicesEqual(char.TraitChoices, derived.TraitChoices) {
		char.TraitChoices = derived.TraitChoices
		char.UpdatedAt = time.Now().Unix()
		if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char}); err != nil {
			return nil, errors.Wrap(err, "failed to persist reconciled trait choices")
		}
	}

	return &sheetservice.DeriveSheetOutput{
		Sheet: derived,
	}, nil
}

// UpdateTraitChoice records a player's selection in one choice slot,
// persists it, and re-derives the sheet
func (o *Orchestrator) UpdateTraitChoice(ctx context.Context, input *sheetservice.UpdateTraitChoiceInput) (*sheetservice.UpdateTraitChoiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	errors.ValidateRequired("traitID", input.TraitID, vb)
	errors.ValidateRequired("slotKey", input.SlotKey, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}
	char := getOutput.Character

	// Derive first so reconciliation and builder expansion have run:
	// the slot being written must exist in its current configuration.
	derived, err := o.derive(ctx, char)
	if err != nil {
		return nil, err
	}
	char.TraitChoices = derived.TraitChoices

	choice := findChoice(char.TraitChoices, input.TraitID)
	if choice == nil {
		return nil, errors.NotFoundf("no trait choice record for trait %s", input.TraitID)
	}
	slot := choice.Slot(input.SlotKey)
	if slot == nil {
		return nil, errors.NotFoundf("trait %s has no choice slot %s", input.TraitID, input.SlotKey)
	}

	if err := validateSelection(slot, input.ChosenValues); err != nil {
		return nil, err
	}
	slot.ChosenValues = input.ChosenValues
	o.evaluateFulfillment(choice)

	char.UpdatedAt = time.Now().Unix()
	if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char}); err != nil {
		return nil, errors.Wrap(err, "failed to persist trait choice")
	}

	// Re-derive so the returned sheet reflects the new selection in
	// the aggregated advantage sets.
	derived, err = o.derive(ctx, char)
	if err != nil {
		return nil, err
	}

	return &sheetservice.UpdateTraitChoiceOutput{
		Sheet: derived,
	}, nil
}

// ListCompendium lists the cached compendium collection for a subtype
func (o *Orchestrator) ListCompendium(ctx context.Context, input *sheetservice.ListCompendiumInput) (*sheetservice.ListCompendiumOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Subtype == "" {
		return nil, errors.InvalidArgument("subtype is required")
	}

	docs, err := o.compendium.Load(ctx, input.Subtype)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s collection", input.Subtype)
	}

	return &sheetservice.ListCompendiumOutput{
		Documents: docs,
	}, nil
}

// derive runs the full pipeline over a character's stored state. Each
// stage is a pure transform of stored fields plus the previous stage's
// output; nothing here mutates the character.
func (o *Orchestrator) derive(ctx context.Context, char *sheet.Character) (*sheet.Sheet, error) {
	refs, err := o.resolveReferences(ctx, char)
	if err != nil {
		return nil, err
	}

	traits := buildTraits(refs)
	choices := reconcileChoices(traits, char.TraitChoices)
	for i := range choices {
		o.evaluateFulfillment(&choices[i])
	}

	result := &sheet.Sheet{
		CharacterID:  char.ID,
		Name:         char.Name,
		Abilities:    deriveAbilities(char.AbilityScores),
		BackgroundID: char.BackgroundID,
		Background:   refs.background,
		HeritageID:   char.HeritageID,
		Heritage:     refs.heritage,
		LineageID:    char.LineageID,
		Lineage:      refs.lineage,
		ClassID:      char.ClassID,
		Class:        refs.class,
		Traits:       traits,
		TraitChoices: choices,
	}

	result.Proficiencies = o.aggregateAdvantages(rules.CategoryProficiencyTypes, char.ManualProficiencies, traits, choices, innateProficiencies)
	result.Resistances = o.aggregateAdvantages(rules.CategoryDamageTypes, char.ManualResistances, traits, choices, innateResistances)
	result.Languages = o.aggregateAdvantages(rules.CategoryLanguageTypes, char.ManualLanguages, traits, choices, innateLanguages)
	result.SaveAdvantages = o.aggregateAdvantages(rules.CategorySaveTypes, char.ManualSaveAdvantages, traits, choices, innateSaveAdvantages)

	return result, nil
}

// resolvedRefs carries the outcome of foreign document resolution. A
// nil document is a valid empty state, not an error.
type resolvedRefs struct {
	background *sheet.SourceDocument
	heritage   *sheet.SourceDocument
	lineage    *sheet.SourceDocument
	class      *sheet.SourceDocument
}

func (o *Orchestrator) resolveReferences(ctx context.Context, char *sheet.Character) (*resolvedRefs, error) {
	refs := &resolvedRefs{}

	lookups := []struct {
		subtype sheet.Subtype
		id      string
		target  **sheet.SourceDocument
	}{
		{sheet.SubtypeBackground, char.BackgroundID, &refs.background},
		{sheet.SubtypeHeritage, char.HeritageID, &refs.heritage},
		{sheet.SubtypeLineage, char.LineageID, &refs.lineage},
		{sheet.SubtypeClass, char.ClassID, &refs.class},
	}

	for _, lookup := range lookups {
		doc, err := o.compendium.Resolve(ctx, lookup.subtype, lookup.id)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve %s reference", lookup.subtype)
		}
		*lookup.target = doc
	}

	return refs, nil
}

func findChoice(choices []sheet.TraitChoice, traitID string) *sheet.TraitChoice {
	for i := range choices {
		if choices[i].ID == traitID {
			return &choices[i]
		}
	}
	return nil
}

func validateSelection(slot *sheet.ChoiceSlot, values []string) error {
	vb := errors.NewValidationBuilder()

	if int32(len(values)) > slot.Amount {
		vb.Fieldf("chosenValues", "at most %d values may be chosen", slot.Amount)
	}

	allowed := make(map[string]bool, len(slot.Options))
	for _, option := range slot.Options {
		allowed[option] = true
	}
	seen := make(map[string]bool, len(values))
	for _, value := range values {
		if !allowed[value] {
			vb.Fieldf("chosenValues", "%q is not an option for this slot", value)
		}
		if seen[value] {
			vb.Fieldf("chosenValues", "%q is chosen more than once", value)
		}
		seen[value] = true
	}

	return vb.Build()
}
