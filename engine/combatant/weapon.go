package combatant

import "fmt"

// Weapon is an immutable flat damage modifier.
type Weapon struct {
	name  string
	bonus int
	tag   string
}

// NewWeapon creates a weapon. bonus must be non-negative.
func NewWeapon(name string, bonus int, tag string) *Weapon {
	return &Weapon{name: name, bonus: bonus, tag: tag}
}

// Name returns the weapon name.
func (w *Weapon) Name() string { return w.name }

// Bonus returns the flat damage bonus.
func (w *Weapon) Bonus() int { return w.bonus }

// Tag returns the optional flavor text.
func (w *Weapon) Tag() string { return w.tag }

// Description renders "Rock (+2 Damage)" with " - <tag>" appended when tagged.
func (w *Weapon) Description() string {
	desc := fmt.Sprintf("%s (+%d Damage)", w.name, w.bonus)
	if w.tag != "" {
		desc += " - " + w.tag
	}
	return desc
}
