// Package report implements JSON serialization of a finished campaign.
// Reports are write-only; nothing reads them back into a run.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/nathoo/bossrush/engine"
	"github.com/nathoo/bossrush/types"
)

// Event is the JSON form of a combat event.
type Event struct {
	Attacker string    `json:"attacker"`
	Defender string    `json:"defender"`
	Damage   int       `json:"damage"`
	At       time.Time `json:"at"`
}

// Battle is the JSON form of a battle record.
type Battle struct {
	Boss        string `json:"boss"`
	Level       int    `json:"level"`
	Won         bool   `json:"won"`
	Rounds      int    `json:"rounds"`
	DamageDealt int    `json:"damage_dealt"`
	DamageTaken int    `json:"damage_taken"`
}

// Report is the JSON-serializable campaign summary.
type Report struct {
	RunID       string    `json:"run_id"`
	Game        string    `json:"game"`
	Player      string    `json:"player"`
	Weapon      string    `json:"weapon"`
	WeaponBonus int       `json:"weapon_bonus"`
	WeaponTag   string    `json:"weapon_tag,omitempty"`
	FinalHealth int       `json:"final_health"`
	AllDefeated bool      `json:"all_bosses_defeated"`
	Battles     []Battle  `json:"battles"`
	Events      []Event   `json:"events"`
	GeneratedAt time.Time `json:"generated_at"`
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// Build summarizes a finished campaign. evts may be nil.
func Build(runID string, c *engine.Campaign, evts []types.CombatEvent) *Report {
	r := &Report{
		RunID:       runID,
		Game:        c.Engine.Defs.Game.Title,
		AllDefeated: c.Won,
		Battles:     []Battle{},
		Events:      []Event{},
		GeneratedAt: time.Now().UTC(),
	}
	if c.Player != nil {
		r.Player = c.Player.Name
		r.FinalHealth = c.Player.Health()
	}
	r.Weapon = c.Weapon.Name
	r.WeaponBonus = c.Weapon.Bonus
	r.WeaponTag = c.Weapon.Tag
	for _, b := range c.Records {
		r.Battles = append(r.Battles, Battle{
			Boss:        b.Boss,
			Level:       b.Level,
			Won:         b.Won,
			Rounds:      b.Rounds,
			DamageDealt: b.DamageDealt,
			DamageTaken: b.DamageTaken,
		})
	}
	for _, ev := range evts {
		r.Events = append(r.Events, Event{
			Attacker: ev.Attacker,
			Defender: ev.Defender,
			Damage:   ev.Damage,
			At:       ev.At,
		})
	}
	return r
}

// Marshal serializes the report to indented JSON.
func Marshal(r *Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// WriteFile writes the report to path.
func WriteFile(path string, r *Report) error {
	data, err := Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
