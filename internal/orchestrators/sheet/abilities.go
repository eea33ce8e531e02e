package sheet

import (
	"github.com/hearthlight/charsheet/internal/entities/sheet"
)

// AbilityModifier returns the modifier for a raw ability score:
// floor((value - 10) / 2), so 10 and 11 map to 0 and 1 maps to -5.
func AbilityModifier(value int32) int32 {
	delta := value - 10
	if delta < 0 {
		// Go integer division truncates toward zero; shift to floor
		return (delta - 1) / 2
	}
	return delta / 2
}

// deriveAbilities converts raw ability scores into value/modifier pairs
func deriveAbilities(raw map[string]int32) map[string]sheet.AbilityScore {
	abilities := make(map[string]sheet.AbilityScore, len(raw))
	for ability, value := range raw {
		abilities[ability] = sheet.AbilityScore{
			Value:    value,
			Modifier: AbilityModifier(value),
		}
	}
	return abilities
}
