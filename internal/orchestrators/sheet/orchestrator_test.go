package sheet_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	compendiummock "github.com/hearthlight/charsheet/internal/compendium/mock"
	"github.com/hearthlight/charsheet/internal/entities/sheet"
	"github.com/hearthlight/charsheet/internal/errors"
	sheetorc "github.com/hearthlight/charsheet/internal/orchestrators/sheet"
	idgenmock "github.com/hearthlight/charsheet/internal/pkg/idgen/mock"
	characterrepo "github.com/hearthlight/charsheet/internal/repositories/character"
	charactermock "github.com/hearthlight/charsheet/internal/repositories/character/mock"
	"github.com/hearthlight/charsheet/internal/rules"
	sheetservice "github.com/hearthlight/charsheet/internal/services/sheet"
	"github.com/hearthlight/charsheet/internal/testutils"
)

type orchestratorTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *charactermock.MockRepository
	mockCompendium *compendiummock.MockResolver
	mockIDGen      *idgenmock.MockGenerator
	orchestrator   *sheetorc.Orchestrator
	ctx            context.Context

	character  *sheet.Character
	background *sheet.SourceDocument
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(orchestratorTestSuite))
}

func (s *orchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = charactermock.NewMockRepository(s.ctrl)
	s.mockCompendium = compendiummock.NewMockResolver(s.ctrl)
	s.mockIDGen = idgenmock.NewMockGenerator(s.ctrl)
	s.ctx = context.Background()

	orchestrator, err := sheetorc.New(&sheetorc.Config{
		CharacterRepo: s.mockRepo,
		Compendium:    s.mockCompendium,
		Rules:         rules.Default(),
		IDGenerator:   s.mockIDGen,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator

	s.character = testutils.CreateTestCharacter("player-123")
	s.background = testutils.CreateTestBackground()
}

func (s *orchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectGet wires the repository to return the suite's character
func (s *orchestratorTestSuite) expectGet(times int) {
	s.mockRepo.EXPECT().
		Get(gomock.Any(), characterrepo.GetInput{ID: s.character.ID}).
		Return(&characterrepo.GetOutput{Character: s.character}, nil).
		Times(times)
}

// expectResolve wires compendium resolution for a full derivation pass:
// the background document resolves, the remaining references are empty
func (s *orchestratorTestSuite) expectResolve(times int) {
	s.mockCompendium.EXPECT().
		Resolve(gomock.Any(), sheet.SubtypeBackground, s.character.BackgroundID).
		Return(s.background, nil).
		Times(times)
	for _, subtype := range []sheet.Subtype{sheet.SubtypeHeritage, sheet.SubtypeLineage, sheet.SubtypeClass} {
		s.mockCompendium.EXPECT().
			Resolve(gomock.Any(), subtype, "").
			Return(nil, nil).
			Times(times)
	}
}

func (s *orchestratorTestSuite) TestCreateCharacter() {
	s.mockIDGen.EXPECT().Generate().Return("char-abc123")
	s.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.CreateInput) (*characterrepo.CreateOutput, error) {
			s.Equal("char-abc123", input.Character.ID)
			s.Equal("player-123", input.Character.PlayerID)
			s.NotZero(input.Character.CreatedAt)
			return &characterrepo.CreateOutput{}, nil
		})

	output, err := s.orchestrator.CreateCharacter(s.ctx, &sheetservice.CreateCharacterInput{
		PlayerID: "player-123",
		Name:     "Brenna Ironquill",
		AbilityScores: map[string]int32{
			sheet.AbilityStrength: 14,
		},
		BackgroundID: "bg-guild-artisan",
	})

	s.Require().NoError(err)
	s.Equal("char-abc123", output.Character.ID)
	s.Equal("Brenna Ironquill", output.Character.Name)
}

func (s *orchestratorTestSuite) TestCreateCharacterValidation() {
	testCases := []struct {
		name  string
		input *sheetservice.CreateCharacterInput
	}{
		{
			name:  "nil input",
			input: nil,
		},
		{
			name: "missing player ID",
			input: &sheetservice.CreateCharacterInput{
				Name: "Brenna Ironquill",
			},
		},
		{
			name: "missing name",
			input: &sheetservice.CreateCharacterInput{
				PlayerID: "player-123",
			},
		},
		{
			name: "ability score out of range",
			input: &sheetservice.CreateCharacterInput{
				PlayerID:      "player-123",
				Name:          "Brenna Ironquill",
				AbilityScores: map[string]int32{sheet.AbilityStrength: 31},
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := s.orchestrator.CreateCharacter(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Nil(output)
		})
	}
}

func (s *orchestratorTestSuite) TestGetCharacter() {
	s.expectGet(1)

	output, err := s.orchestrator.GetCharacter(s.ctx, &sheetservice.GetCharacterInput{
		CharacterID: s.character.ID,
	})

	s.Require().NoError(err)
	s.Equal(s.character, output.Character)
}

func (s *orchestratorTestSuite) TestGetCharacterNotFound() {
	s.mockRepo.EXPECT().
		Get(gomock.Any(), characterrepo.GetInput{ID: "char-missing"}).
		Return(nil, errors.NotFound("character not found"))

	output, err := s.orchestrator.GetCharacter(s.ctx, &sheetservice.GetCharacterInput{
		CharacterID: "char-missing",
	})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Nil(output)
}

func (s *orchestratorTestSuite) TestListCharacters() {
	s.mockRepo.EXPECT().
		ListByPlayerID(gomock.Any(), characterrepo.ListByPlayerIDInput{PlayerID: "player-123"}).
		Return(&characterrepo.ListByPlayerIDOutput{Characters: []*sheet.Character{s.character}}, nil)

	output, err := s.orchestrator.ListCharacters(s.ctx, &sheetservice.ListCharactersInput{
		PlayerID: "player-123",
	})

	s.Require().NoError(err)
	s.Require().Len(output.Characters, 1)
	s.Equal(s.character.ID, output.Characters[0].ID)
}

func (s *orchestratorTestSuite) TestListCharactersRequiresPlayerID() {
	_, err := s.orchestrator.ListCharacters(s.ctx, &sheetservice.ListCharactersInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *orchestratorTestSuite) TestDeleteCharacter() {
	s.mockRepo.EXPECT().
		Delete(gomock.Any(), characterrepo.DeleteInput{ID: s.character.ID}).
		Return(&characterrepo.DeleteOutput{}, nil)

	output, err := s.orchestrator.DeleteCharacter(s.ctx, &sheetservice.DeleteCharacterInput{
		CharacterID: s.character.ID,
	})

	s.Require().NoError(err)
	s.Contains(output.Message, s.character.ID)
}

func (s *orchestratorTestSuite) TestDeriveSheet() {
	s.expectGet(1)
	s.expectResolve(1)
	// Reconciliation creates the trait choice record, so the character
	// is persisted
	s.mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(&characterrepo.UpdateOutput{}, nil)

	output, err := s.orchestrator.DeriveSheet(s.ctx, &sheetservice.DeriveSheetInput{
		CharacterID: s.character.ID,
	})

	s.Require().NoError(err)
	derived := output.Sheet

	s.Equal(s.character.ID, derived.CharacterID)
	s.Equal(testutils.TestCharacterName, derived.Name)
	s.Equal(s.background, derived.Background)
	s.Nil(derived.Heritage)

	// Ability modifiers follow from the fixture's scores
	s.Equal(int32(2), derived.Abilities[sheet.AbilityStrength].Modifier)
	s.Equal(int32(-1), derived.Abilities[sheet.AbilityCharisma].Modifier)

	// The background's trait came through with its document identity
	s.Require().Len(derived.Traits, 1)
	trait := derived.Traits[0]
	s.Equal("trait-guild-membership", trait.ID)
	s.Equal("Guild Artisan", trait.Source)
	s.Equal("bg-guild-artisan", trait.SourceID)

	// A fresh choice record with the builder expanded into a slot
	s.Require().Len(derived.TraitChoices, 1)
	choice := derived.TraitChoices[0]
	s.Equal("trait-guild-membership", choice.ID)
	s.False(choice.ChoicesFulfilled)
	s.Require().Len(choice.Choices, 1)
	slot := choice.Choices[0]
	s.Equal("guild-language", slot.Key)
	s.Equal("Guild Language", slot.Label)
	s.Equal("LANGUAGE_TYPES", slot.Category)
	s.Equal(int32(1), slot.Amount)
	s.Contains(slot.Options, "dwarvish")
	s.Empty(slot.ChosenValues)

	// The innate proficiency surfaced with trait provenance and badge
	s.Require().Len(derived.Proficiencies, 1)
	prof := derived.Proficiencies[0]
	s.Equal("smiths-tools", prof.Value)
	s.Equal("Smith's Tools", prof.Label)
	s.Equal("Guild Artisan (Guild Membership)", prof.Source)
	s.Equal(sheet.SourceTypeInnate, prof.SourceType)
	s.Equal("background-color: #202020; color: white", prof.Style)
}

func (s *orchestratorTestSuite) TestDeriveSheetSkipsPersistWhenUnchanged() {
	s.expectGet(2)
	s.expectResolve(2)
	// Only the first pass changes the stored choice set
	s.mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(&characterrepo.UpdateOutput{}, nil).
		Times(1)

	input := &sheetservice.DeriveSheetInput{CharacterID: s.character.ID}

	_, err := s.orchestrator.DeriveSheet(s.ctx, input)
	s.Require().NoError(err)

	_, err = s.orchestrator.DeriveSheet(s.ctx, input)
	s.Require().NoError(err)
}

func (s *orchestratorTestSuite) TestDeriveSheetPersistsRefreshedSlotConfig() {
	// Stored record whose slot configuration is stale relative to the
	// current builder
	s.character.TraitChoices = []sheet.TraitChoice{
		{
			ID:       "trait-guild-membership",
			Name:     "Guild Membership",
			Source:   "Guild Artisan",
			SourceID: "bg-guild-artisan",
			Color:    "#202020",
			Builder:  s.background.Traits[0].Builder,
			Choices: []sheet.ChoiceSlot{
				{Key: "guild-language", Label: "Old Label", Category: "LANGUAGE_TYPES",
					ChosenValues: []string{}, Amount: 1},
			},
		},
	}

	s.expectGet(1)
	s.expectResolve(1)
	s.mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			slot := input.Character.TraitChoices[0].Slot("guild-language")
			s.Equal("Guild Language", slot.Label)
			return &characterrepo.UpdateOutput{}, nil
		})

	_, err := s.orchestrator.DeriveSheet(s.ctx, &sheetservice.DeriveSheetInput{
		CharacterID: s.character.ID,
	})
	s.Require().NoError(err)
}

func (s *orchestratorTestSuite) TestUpdateTraitChoice() {
	s.expectGet(1)
	// Once to materialize the slot, once to re-derive after the write
	s.expectResolve(2)
	s.mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(&characterrepo.UpdateOutput{}, nil)

	output, err := s.orchestrator.UpdateTraitChoice(s.ctx, &sheetservice.UpdateTraitChoiceInput{
		CharacterID:  s.character.ID,
		TraitID:      "trait-guild-membership",
		SlotKey:      "guild-language",
		ChosenValues: []string{"dwarvish"},
	})

	s.Require().NoError(err)
	derived := output.Sheet

	s.Require().Len(derived.TraitChoices, 1)
	choice := derived.TraitChoices[0]
	s.True(choice.ChoicesFulfilled)
	s.Equal([]string{"dwarvish"}, choice.Choices[0].ChosenValues)

	// The selection now feeds the language set as a choice-tier entry
	s.Require().Len(derived.Languages, 1)
	lang := derived.Languages[0]
	s.Equal("dwarvish", lang.Value)
	s.Equal("Dwarvish", lang.Label)
	s.Equal(sheet.SourceTypeChoice, lang.SourceType)
	s.Equal("Guild Artisan (Guild Membership)", lang.Source)
}

func (s *orchestratorTestSuite) TestUpdateTraitChoiceRejectsUnknownValue() {
	s.expectGet(1)
	s.expectResolve(1)

	output, err := s.orchestrator.UpdateTraitChoice(s.ctx, &sheetservice.UpdateTraitChoiceInput{
		CharacterID:  s.character.ID,
		TraitID:      "trait-guild-membership",
		SlotKey:      "guild-language",
		ChosenValues: []string{"klingon"},
	})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Nil(output)
}

func (s *orchestratorTestSuite) TestUpdateTraitChoiceRejectsTooManyValues() {
	s.expectGet(1)
	s.expectResolve(1)

	_, err := s.orchestrator.UpdateTraitChoice(s.ctx, &sheetservice.UpdateTraitChoiceInput{
		CharacterID:  s.character.ID,
		TraitID:      "trait-guild-membership",
		SlotKey:      "guild-language",
		ChosenValues: []string{"dwarvish", "elvish"},
	})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *orchestratorTestSuite) TestUpdateTraitChoiceUnknownTrait() {
	s.expectGet(1)
	s.expectResolve(1)

	_, err := s.orchestrator.UpdateTraitChoice(s.ctx, &sheetservice.UpdateTraitChoiceInput{
		CharacterID:  s.character.ID,
		TraitID:      "trait-missing",
		SlotKey:      "guild-language",
		ChosenValues: []string{"dwarvish"},
	})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *orchestratorTestSuite) TestListCompendium() {
	docs := []*sheet.SourceDocument{s.background}
	s.mockCompendium.EXPECT().
		Load(gomock.Any(), sheet.SubtypeBackground).
		Return(docs, nil)

	output, err := s.orchestrator.ListCompendium(s.ctx, &sheetservice.ListCompendiumInput{
		Subtype: sheet.SubtypeBackground,
	})

	s.Require().NoError(err)
	s.Equal(docs, output.Documents)
}

func (s *orchestratorTestSuite) TestNewRequiresDependencies() {
	_, err := sheetorc.New(&sheetorc.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
