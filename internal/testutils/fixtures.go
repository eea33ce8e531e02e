package testutils

import (
	"github.com/hearthlight/charsheet/internal/entities/sheet"
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Brenna Ironquill"

// CreateTestCharacter creates a test character with sensible defaults
func CreateTestCharacter(playerID string) *sheet.Character {
	return &sheet.Character{
		ID:       "char-test-001",
		PlayerID: playerID,
		Name:     TestCharacterName,
		AbilityScores: map[string]int32{
			sheet.AbilityStrength:     14,
			sheet.AbilityDexterity:    12,
			sheet.AbilityConstitution: 13,
			sheet.AbilityIntelligence: 10,
			sheet.AbilityWisdom:       11,
			sheet.AbilityCharisma:     8,
		},
		BackgroundID: "bg-guild-artisan",
		TraitChoices: []sheet.TraitChoice{},
	}
}

// CreateTestBackground creates a background document carrying one trait
// with an innate proficiency and a one-slot builder
func CreateTestBackground() *sheet.SourceDocument {
	return &sheet.SourceDocument{
		ID:      "bg-guild-artisan",
		Name:    "Guild Artisan",
		Subtype: sheet.SubtypeBackground,
		Traits: []sheet.TraitTemplate{
			{
				ID:    "trait-guild-membership",
				Name:  "Guild Membership",
				Color: "#202020",
				Innate: sheet.InnateGrants{
					Proficiencies: []string{"smiths-tools"},
				},
				Builder: &sheet.BuilderInfo{
					Mode: sheet.ModeAll,
					Options: map[string]sheet.BuilderOption{
						"guild-language": {
							Label:      "Guild Language",
							Category:   "LANGUAGE_TYPES",
							Amount:     1,
							ValuesType: "LANGUAGE_TYPES",
						},
					},
				},
			},
		},
	}
}
