package loader

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/bossrush/engine/state"
	"github.com/nathoo/bossrush/types"
)

// rawDef holds a Weapon or Boss table before compilation.
type rawDef struct {
	id    string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getInt returns an integer field from a Lua table. present is false when
// the field is missing; non-integers are an error.
func getInt(tbl *lua.LTable, key string) (n int, present bool, err error) {
	v := tbl.RawGetString(key)
	if v == lua.LNil {
		return 0, false, nil
	}
	num, ok := v.(lua.LNumber)
	if !ok {
		return 0, true, fmt.Errorf("%s must be a number, got %s", key, v.Type())
	}
	f := float64(num)
	if f != float64(int(f)) {
		return 0, true, fmt.Errorf("%s must be a whole number, got %v", key, f)
	}
	return int(f), true, nil
}

// compile converts the collected Lua data into Defs. Anything the content
// leaves out falls back to the built-in defaults.
func compile(coll *collector) (*state.Defs, error) {
	defaults := state.DefaultDefs()
	defs := &state.Defs{Game: defaults.Game}

	if coll.game != nil {
		game, err := compileGame(coll.game, defaults.Game)
		if err != nil {
			return nil, fmt.Errorf("compiling Game: %w", err)
		}
		defs.Game = game
	}

	for _, raw := range coll.weapons {
		w, err := compileWeapon(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling weapon %s: %w", raw.id, err)
		}
		defs.Weapons = append(defs.Weapons, w)
	}
	if len(defs.Weapons) == 0 {
		defs.Weapons = defaults.Weapons
	}

	for _, raw := range coll.bosses {
		b, err := compileBoss(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling boss %s: %w", raw.id, err)
		}
		defs.Bosses = append(defs.Bosses, b)
	}
	if len(defs.Bosses) == 0 {
		defs.Bosses = defaults.Bosses
	}

	return defs, nil
}

func compileGame(tbl *lua.LTable, base types.GameDef) (types.GameDef, error) {
	game := base

	strFields := map[string]*string{
		"title":          &game.Title,
		"welcome":        &game.Welcome,
		"intro":          &game.Intro,
		"victory":        &game.Victory,
		"defeat":         &game.Defeat,
		"win":            &game.Win,
		"lose":           &game.Lose,
		"fallback_intro": &game.FallbackIntro,
	}
	for key, dst := range strFields {
		if s := getString(tbl, key); s != "" {
			*dst = s
		}
	}

	intFields := map[string]*int{
		"player_health": &game.PlayerHealth,
		"player_damage": &game.PlayerDamage,
	}
	for key, dst := range intFields {
		n, ok, err := getInt(tbl, key)
		if err != nil {
			return game, err
		}
		if ok {
			*dst = n
		}
	}
	return game, nil
}

func compileWeapon(raw rawDef) (types.WeaponDef, error) {
	w := types.WeaponDef{
		ID:   raw.id,
		Name: getString(raw.table, "name"),
		Tag:  getString(raw.table, "tag"),
	}
	bonus, _, err := getInt(raw.table, "bonus")
	if err != nil {
		return w, err
	}
	w.Bonus = bonus
	return w, nil
}

func compileBoss(raw rawDef) (types.BossDef, error) {
	b := types.BossDef{
		ID:    raw.id,
		Name:  getString(raw.table, "name"),
		Intro: getString(raw.table, "intro"),
	}
	health, _, err := getInt(raw.table, "health")
	if err != nil {
		return b, err
	}
	damage, _, err := getInt(raw.table, "damage")
	if err != nil {
		return b, err
	}
	b.Health = health
	b.Damage = damage
	return b, nil
}
