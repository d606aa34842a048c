package state

import "github.com/nathoo/bossrush/types"

// Built-in player and narration defaults.
const (
	PlayerHealth = 110
	PlayerDamage = 10

	DefaultFallbackIntro = "A new boss appears!"
)

// DefaultDefs returns the built-in campaign: three weapons, two bosses.
func DefaultDefs() *Defs {
	return &Defs{
		Game: types.GameDef{
			Title:        "RPG Adventure",
			PlayerHealth: PlayerHealth,
			PlayerDamage: PlayerDamage,
			Welcome: "Welcome, brave adventurer, to the RPG Adventure!\n" +
				"Legends tell of heroes who rise against impossible odds. Will you become one?",
			Intro: "In a realm shrouded in darkness and peril, you, {player_name}, have been chosen by fate.\n" +
				"Two formidable bosses threaten the land: the ferocious Goblin King and the enigmatic Dark Sorcerer.\n" +
				"Your journey will test your courage, wit, and strength. The fate of this world rests in your hands.",
			Victory: "Triumph!\n" +
				"With a final, decisive blow, you have vanquished {enemy_name}.\n" +
				"The air crackles with your newfound power as the path ahead becomes clear.",
			Defeat: "Defeat...\n" +
				"You fought valiantly, but {enemy_name} has bested you in battle.\n" +
				"Every setback is a lesson. Rise again, stronger than before!",
			Win: "Heroic Victory!\n" +
				"All evil has been banished thanks to your bravery, {player_name}.\n" +
				"The people rejoice, and songs will be sung of your deeds for generations to come!",
			Lose: "Game Over\n" +
				"Though darkness prevails this day, the spirit of a true hero never fades.\n" +
				"Rest and return, {player_name}. The world still needs you.",
			FallbackIntro: DefaultFallbackIntro,
		},
		Weapons: []types.WeaponDef{
			{ID: "rock", Name: "Rock", Bonus: 2, Tag: "Basic blunt force"},
			{ID: "paper", Name: "Paper", Bonus: 3, Tag: "Light and quick"},
			{ID: "scissors", Name: "Scissors", Bonus: 4, Tag: "Sharp and precise"},
		},
		Bosses: []types.BossDef{
			{
				ID:     "goblin_king",
				Name:   "Goblin King",
				Health: 50,
				Damage: 8,
				Intro: "Level 1: The Goblin King's Lair\n" +
					"You step into a dank, torch-lit cavern echoing with guttural laughter.\n" +
					"The Goblin King, infamous for his brute strength and savage cunning, awaits.\n" +
					"Steel yourself, {player_name}, for this battle will be fierce and unforgiving!",
			},
			{
				ID:     "dark_sorcerer",
				Name:   "Dark Sorcerer",
				Health: 60,
				Damage: 9,
				Intro: "Level 2: The Dark Sorcerer's Tower\n" +
					"With the Goblin King fallen, you ascend a spiraling staircase into a chamber pulsing with arcane energy.\n" +
					"The Dark Sorcerer, master of forbidden spells and illusions, greets you with a sinister grin.\n" +
					"Only true heroes survive his magic. Face your fears, {player_name}, and let your legend grow!",
			},
		},
	}
}
