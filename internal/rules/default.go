package rules

// Default returns the built-in rule tables. Deployments with custom
// content swap in their own tables via NewStatic.
func Default() *StaticCatalog {
	return NewStatic(map[Category]map[string]Entry{
		CategoryProficiencyTypes: {
			"light-armor":      {Label: "Light Armor"},
			"medium-armor":     {Label: "Medium Armor"},
			"heavy-armor":      {Label: "Heavy Armor"},
			"shields":          {Label: "Shields"},
			"simple-weapons":   {Label: "Simple Weapons"},
			"martial-weapons":  {Label: "Martial Weapons"},
			"smiths-tools":     {Label: "Smith's Tools"},
			"brewers-tools":    {Label: "Brewer's Tools"},
			"herbalism-kit":    {Label: "Herbalism Kit"},
			"thieves-tools":    {Label: "Thieves' Tools"},
			"navigators-tools": {Label: "Navigator's Tools"},
		},
		CategoryDamageTypes: {
			"acid":        {Label: "Acid"},
			"bludgeoning": {Label: "Bludgeoning"},
			"cold":        {Label: "Cold"},
			"fire":        {Label: "Fire"},
			"lightning":   {Label: "Lightning"},
			"necrotic":    {Label: "Necrotic"},
			"piercing":    {Label: "Piercing"},
			"poison":      {Label: "Poison"},
			"psychic":     {Label: "Psychic"},
			"radiant":     {Label: "Radiant"},
			"slashing":    {Label: "Slashing"},
			"thunder":     {Label: "Thunder"},
		},
		CategoryLanguageTypes: {
			"common":      {Label: "Common"},
			"draconic":    {Label: "Draconic"},
			"dwarvish":    {Label: "Dwarvish"},
			"elvish":      {Label: "Elvish"},
			"giant":       {Label: "Giant"},
			"gnomish":     {Label: "Gnomish"},
			"goblin":      {Label: "Goblin"},
			"orcish":      {Label: "Orcish"},
			"sylvan":      {Label: "Sylvan"},
			"undercommon": {Label: "Undercommon"},
		},
		CategorySaveTypes: {
			"strength":     {Label: "Strength"},
			"dexterity":    {Label: "Dexterity"},
			"constitution": {Label: "Constitution"},
			"intelligence": {Label: "Intelligence"},
			"wisdom":       {Label: "Wisdom"},
			"charisma":     {Label: "Charisma"},
		},
	})
}
