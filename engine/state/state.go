// Package state holds the immutable game definitions (player defaults,
// weapon catalog, boss roster, narration) and lookups over them.
package state

import (
	"strings"

	"github.com/nathoo/bossrush/types"
)

// Defs holds the immutable game definitions, built in or loaded from Lua.
type Defs struct {
	Game    types.GameDef
	Weapons []types.WeaponDef // selection order
	Bosses  []types.BossDef   // fight order
}

// WeaponNames returns the catalog names in selection order.
func WeaponNames(defs *Defs) []string {
	names := make([]string, 0, len(defs.Weapons))
	for _, w := range defs.Weapons {
		names = append(names, w.Name)
	}
	return names
}

// FindWeapon returns the catalog entry whose name matches case-insensitively.
func FindWeapon(defs *Defs, name string) (types.WeaponDef, bool) {
	for _, w := range defs.Weapons {
		if strings.EqualFold(w.Name, name) {
			return w, true
		}
	}
	return types.WeaponDef{}, false
}

// FindBoss returns the roster entry with the given display name.
func FindBoss(defs *Defs, name string) (types.BossDef, bool) {
	for _, b := range defs.Bosses {
		if b.Name == name {
			return b, true
		}
	}
	return types.BossDef{}, false
}

// BossIntro returns the rendered introduction for the named boss, or the
// generic fallback when the boss is unknown or has no intro.
func BossIntro(defs *Defs, bossName, playerName string) string {
	if b, ok := FindBoss(defs, bossName); ok && b.Intro != "" {
		return Render(b.Intro, playerName, bossName)
	}
	fallback := defs.Game.FallbackIntro
	if fallback == "" {
		fallback = DefaultFallbackIntro
	}
	return Render(fallback, playerName, bossName)
}

// Level returns the 1-based roster position of the named boss, or 0.
func Level(defs *Defs, bossName string) int {
	for i, b := range defs.Bosses {
		if b.Name == bossName {
			return i + 1
		}
	}
	return 0
}

// Render substitutes {player_name} and {enemy_name} in a template.
func Render(tmpl, playerName, enemyName string) string {
	r := strings.NewReplacer("{player_name}", playerName, "{enemy_name}", enemyName)
	return r.Replace(tmpl)
}
