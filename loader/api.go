package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the Lua constructors as globals.
//
//	Game { title = "...", player_health = 110, ... }
//	Weapon "rock" { name = "Rock", bonus = 2, tag = "..." }
//	Boss "goblin_king" { name = "Goblin King", health = 50, damage = 8, intro = "..." }
func registerAPI(L *lua.LState, coll *collector) {
	// Game { ... }: last call wins.
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		coll.game = L.CheckTable(1)
		return 0
	}))

	// Weapon "id" { ... }: curried, catalog order is source order.
	L.SetGlobal("Weapon", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.weapons = append(coll.weapons, rawDef{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Boss "id" { ... }: curried, roster order is source order.
	L.SetGlobal("Boss", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.bosses = append(coll.bosses, rawDef{id: id, table: tbl})
			return 0
		}))
		return 1
	}))
}
