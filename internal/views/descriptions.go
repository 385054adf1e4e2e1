package views

import "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"

// StatDescription is the advisory help text of a stat. Nothing here is
// computed; combat is resolved at the table.
type StatDescription struct {
	Key  sheet.StatKey
	Name string
	Text string
}

var descriptions = map[sheet.StatKey]StatDescription{
	sheet.HAB: {
		Key:  sheet.HAB,
		Name: "Skill",
		Text: "Advantage in combat. Compare (hero's HAB) - (enemy's HAB). " +
			"A difference of +8 or -8 means total domination by one side.",
	},
	sheet.END: {
		Key:  sheet.END,
		Name: "Endurance",
		Text: "Physical resistance and resilience. Each point of END gives 3 max HP.",
	},
	sheet.ARM: {
		Key:  sheet.ARM,
		Name: "Armor",
		Text: "Flat reduction of the final damage taken.",
	},
	sheet.ADR: {
		Key:  sheet.ADR,
		Name: "Dexterity",
		Text: "Agility and dodging. A D6 roll ≤ ADR dodges; dodging needs ADR ≥ 2. " +
			"A dodge roll of 1 also grants a critical counter-attack that ignores enemy armor.",
	},
	sheet.CHA: {
		Key:  sheet.CHA,
		Name: "Luck",
		Text: "A luck roll succeeds when the die is ≤ current luck. " +
			"Every luck roll spends 1 point of current luck.",
	},
	sheet.CRI: {
		Key:  sheet.CRI,
		Name: "Critical",
		Text: "Bonus damage on critical hits. Critical counter-attack damage = " +
			"(max damage of the attack) + CRI.",
	},
}

// Describe returns the help text of key
func Describe(key sheet.StatKey) StatDescription {
	if d, ok := descriptions[key]; ok {
		return d
	}
	return StatDescription{Key: key, Name: string(key)}
}

// Descriptions returns every description in display order
func Descriptions() []StatDescription {
	out := make([]StatDescription, 0, len(sheet.StatKeys))
	for _, key := range sheet.StatKeys {
		out = append(out, Describe(key))
	}
	return out
}
