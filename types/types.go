// Package types defines the shared data structures for the BossRush engine.
// This package contains only type definitions, no logic.
package types

import "time"

// WeaponDef is one entry of the selectable weapon catalog.
type WeaponDef struct {
	ID    string
	Name  string
	Bonus int
	Tag   string // optional flavor text
}

// BossDef is one entry of the ordered boss roster.
type BossDef struct {
	ID     string
	Name   string
	Health int
	Damage int
	Intro  string // may contain {player_name}; empty → generic fallback
}

// GameDef holds player defaults and narration templates.
// Templates use {player_name} and {enemy_name} placeholders.
type GameDef struct {
	Title         string
	PlayerHealth  int
	PlayerDamage  int
	Welcome       string
	Intro         string
	Victory       string
	Defeat        string
	Win           string
	Lose          string
	FallbackIntro string
}

// CombatEvent is a single damage application.
type CombatEvent struct {
	Attacker string
	Defender string
	Damage   int
	At       time.Time
}

// Snapshot is a read-only copy of a combatant for display.
type Snapshot struct {
	Name        string
	Health      int
	Damage      int
	Weapon      string // empty when unarmed
	WeaponBonus int
	WeaponTag   string
	Boss        bool
}

// BattleRecord summarizes one finished battle.
type BattleRecord struct {
	Boss        string
	Level       int
	Won         bool
	Rounds      int
	DamageDealt int
	DamageTaken int
}

// Result is the output of a single combat round.
type Result struct {
	Dealt  int // damage the player dealt this round
	Taken  int // damage the player took this round
	Output []string
}
