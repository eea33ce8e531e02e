// Package sheet defines the interface for character sheet operations
package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=sheetmock github.com/hearthlight/charsheet/internal/services/sheet Service

import (
	"context"

	"github.com/hearthlight/charsheet/internal/entities/sheet"
)

// Service defines the interface for character sheet operations
type Service interface {
	// Character lifecycle
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Derivation
	DeriveSheet(ctx context.Context, input *DeriveSheetInput) (*DeriveSheetOutput, error)

	// Player selections
	UpdateTraitChoice(ctx context.Context, input *UpdateTraitChoiceInput) (*UpdateTraitChoiceOutput, error)

	// Compendium browsing
	ListCompendium(ctx context.Context, input *ListCompendiumInput) (*ListCompendiumOutput, error)
}

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	PlayerID      string
	Name          string
	AbilityScores map[string]int32
	BackgroundID  string
	HeritageID    string
	LineageID     string
	ClassID       string
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *sheet.Character
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *sheet.Character
}

// ListCharactersInput defines the request for listing a player's
// characters
type ListCharactersInput struct {
	PlayerID string
}

// ListCharactersOutput defines the response for listing a player's
// characters
type ListCharactersOutput struct {
	Characters []*sheet.Character
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct {
	Message string
}

// DeriveSheetInput defines the request for a derivation pass
type DeriveSheetInput struct {
	CharacterID string
}

// DeriveSheetOutput defines the response for a derivation pass
type DeriveSheetOutput struct {
	Sheet *sheet.Sheet
}

// UpdateTraitChoiceInput defines the request for recording a player's
// selection in one choice slot
type UpdateTraitChoiceInput struct {
	CharacterID  string
	TraitID      string
	SlotKey      string
	ChosenValues []string
}

// UpdateTraitChoiceOutput defines the response for recording a selection
type UpdateTraitChoiceOutput struct {
	Sheet *sheet.Sheet
}

// ListCompendiumInput defines the request for listing a compendium
// collection
type ListCompendiumInput struct {
	Subtype sheet.Subtype
}

// ListCompendiumOutput defines the response for listing a compendium
// collection
type ListCompendiumOutput struct {
	Documents []*sheet.SourceDocument
}
