// Package combatant defines the characters that fight: the player and the
// bosses. Health is private and only changes through SetHealth.
package combatant

import (
	"fmt"
	"io"

	"github.com/nathoo/bossrush/engine/events"
	"github.com/nathoo/bossrush/types"
)

// Kind selects which attack resolution applies.
type Kind int

const (
	KindCharacter Kind = iota
	KindBoss
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindCharacter:
		return "character"
	case KindBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Boss weapon and special attack constants.
const (
	BossWeaponName  = "Boss Weapon"
	BossWeaponBonus = 5
	BossExtraDamage = 1
)

// Combatant is anything that can attack and be attacked.
type Combatant struct {
	Name   string
	Damage int // base damage, before the weapon bonus
	Weapon *Weapon
	kind   Kind
	health int
}

// New creates a character. weapon may be nil.
func New(name string, health, damage int, weapon *Weapon) *Combatant {
	c := &Combatant{Name: name, Damage: damage, Weapon: weapon, kind: KindCharacter}
	c.SetHealth(health)
	return c
}

// NewBoss creates a boss carrying the fixed boss weapon.
func NewBoss(name string, health, damage int) *Combatant {
	c := New(name, health, damage, NewWeapon(BossWeaponName, BossWeaponBonus, ""))
	c.kind = KindBoss
	return c
}

// Kind returns the combatant kind.
func (c *Combatant) Kind() Kind { return c.kind }

// IsBoss reports whether c uses the boss attack.
func (c *Combatant) IsBoss() bool { return c.kind == KindBoss }

// Health returns current health, never negative.
func (c *Combatant) Health() int { return c.health }

// SetHealth sets health to max(0, v).
func (c *Combatant) SetHealth(v int) {
	if v < 0 {
		v = 0
	}
	c.health = v
}

// Alive reports whether health is above zero.
func (c *Combatant) Alive() bool { return c.health > 0 }

// EffectiveDamage is base damage plus the weapon bonus.
func (c *Combatant) EffectiveDamage() int {
	if c.Weapon == nil {
		return c.Damage
	}
	return c.Damage + c.Weapon.Bonus()
}

// Attack damages target and returns the total damage dealt. rec may be nil.
// Bosses resolve the plain attack first, then apply BossExtraDamage as a
// separate mutation and a separate event.
func (c *Combatant) Attack(target *Combatant, rec events.Recorder) int {
	dealt := c.strike(target, c.EffectiveDamage(), rec)
	if c.kind == KindBoss {
		dealt += c.strike(target, BossExtraDamage, rec)
	}
	return dealt
}

func (c *Combatant) strike(target *Combatant, amount int, rec events.Recorder) int {
	target.SetHealth(target.Health() - amount)
	if rec != nil {
		rec.Record(types.CombatEvent{Attacker: c.Name, Defender: target.Name, Damage: amount})
	}
	return amount
}

// Snapshot returns a copy of the displayable fields.
func (c *Combatant) Snapshot() types.Snapshot {
	s := types.Snapshot{
		Name:   c.Name,
		Health: c.health,
		Damage: c.Damage,
		Boss:   c.kind == KindBoss,
	}
	if c.Weapon != nil {
		s.Weapon = c.Weapon.Name()
		s.WeaponBonus = c.Weapon.Bonus()
		s.WeaponTag = c.Weapon.Tag()
	}
	return s
}

// Display writes name, health, damage and weapon lines to w.
func (c *Combatant) Display(w io.Writer) {
	for _, line := range Lines(c.Snapshot()) {
		fmt.Fprintln(w, line)
	}
}

// Lines renders a snapshot as display lines.
func Lines(s types.Snapshot) []string {
	name := s.Weapon
	if name == "" {
		name = "No Weapon"
	}
	return []string{
		"Name: " + s.Name,
		fmt.Sprintf("Health: %d", s.Health),
		fmt.Sprintf("Damage: %d", s.Damage),
		"Weapon: " + NewWeapon(name, s.WeaponBonus, s.WeaponTag).Description(),
	}
}
