package loader

import (
	"strings"
	"testing"

	"github.com/nathoo/bossrush/engine/state"
)

func TestLoad_MinimalGame(t *testing.T) {
	defs, _, err := Load("testdata/minimal")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if defs.Game.Title != "Minimal Rush" {
		t.Errorf("Title = %q, want %q", defs.Game.Title, "Minimal Rush")
	}

	// Everything else falls back to the built-in campaign.
	def := state.DefaultDefs()
	if defs.Game.PlayerHealth != def.Game.PlayerHealth {
		t.Errorf("PlayerHealth = %d, want %d", defs.Game.PlayerHealth, def.Game.PlayerHealth)
	}
	if len(defs.Weapons) != 3 || len(defs.Bosses) != 2 {
		t.Errorf("expected default catalog and roster, got %d weapons, %d bosses",
			len(defs.Weapons), len(defs.Bosses))
	}
	if defs.Game.Win != def.Game.Win {
		t.Error("missing win template should fall back to default")
	}
}

func TestLoad_FullGame(t *testing.T) {
	defs, warnings, err := Load("testdata/full")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	g := defs.Game
	if g.Title != "Full Rush" || g.PlayerHealth != 120 || g.PlayerDamage != 9 {
		t.Errorf("game = %+v", g)
	}
	if g.FallbackIntro != "Something stirs in the dark..." {
		t.Errorf("FallbackIntro = %q", g.FallbackIntro)
	}

	// Weapons in source order.
	names := strings.Join(state.WeaponNames(defs), ",")
	if names != "Sword,Bow,Staff" {
		t.Errorf("weapons = %q", names)
	}
	if defs.Weapons[0].Bonus != 6 || defs.Weapons[0].Tag != "Heavy slashing damage" {
		t.Errorf("sword = %+v", defs.Weapons[0])
	}
	if defs.Weapons[2].Tag != "" {
		t.Errorf("staff tag = %q, want empty", defs.Weapons[2].Tag)
	}

	// Bosses in source order.
	if len(defs.Bosses) != 3 {
		t.Fatalf("expected 3 bosses, got %d", len(defs.Bosses))
	}
	wantOrder := []string{"Goblin King", "Ice Sorcerer", "Shadow Knight"}
	for i, name := range wantOrder {
		if defs.Bosses[i].Name != name {
			t.Errorf("boss %d = %q, want %q", i, defs.Bosses[i].Name, name)
		}
	}
	if defs.Bosses[2].Health != 70 || defs.Bosses[2].Damage != 6 {
		t.Errorf("shadow knight = %+v", defs.Bosses[2])
	}

	// Shadow Knight has no intro.
	if len(warnings) != 1 || !strings.Contains(warnings[0], "shadow_knight") {
		t.Errorf("warnings = %v", warnings)
	}
	if got := state.BossIntro(defs, "Shadow Knight", "Aria"); got != "Something stirs in the dark..." {
		t.Errorf("shadow knight intro = %q", got)
	}
	if got := state.BossIntro(defs, "Goblin King", "Aria"); got != "The Goblin King grins at Aria." {
		t.Errorf("goblin king intro = %q", got)
	}
}

func TestLoad_InvalidRoster(t *testing.T) {
	_, _, err := Load("testdata/invalid")
	if err == nil {
		t.Fatal("expected validation error")
	}
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	assertContains(t, ve.Errors, "health must be positive")
	assertContains(t, ve.Errors, "damage must not be negative")
	assertContains(t, ve.Errors, "bonus must not be negative")
	assertContains(t, ve.Errors, "share the name")
}

func TestLoad_NoLuaFiles(t *testing.T) {
	_, _, err := Load("testdata/empty")
	if err == nil || !strings.Contains(err.Error(), "no .lua files") {
		t.Fatalf("expected no .lua files error, got %v", err)
	}
}

func TestLoad_MissingDir(t *testing.T) {
	_, _, err := Load("testdata/does_not_exist")
	if err == nil || !strings.Contains(err.Error(), "reading roster directory") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestLoadString_SyntaxError(t *testing.T) {
	_, _, err := LoadString(`Boss "x" {`)
	if err == nil || !strings.Contains(err.Error(), "executing roster source") {
		t.Fatalf("expected execution error, got %v", err)
	}
}

func TestLoadString_NonIntegerHealth(t *testing.T) {
	_, _, err := LoadString(`Boss "slime" { name = "Slime", health = 10.5, damage = 1 }`)
	if err == nil || !strings.Contains(err.Error(), "whole number") {
		t.Fatalf("expected whole number error, got %v", err)
	}
}

func TestLoadString_WrongType(t *testing.T) {
	_, _, err := LoadString(`Game { player_health = "lots" }`)
	if err == nil || !strings.Contains(err.Error(), "must be a number") {
		t.Fatalf("expected type error, got %v", err)
	}
}

func TestSandbox_RemovesDangerousGlobals(t *testing.T) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "collectgarbage"} {
		_, _, err := LoadString(name + `("x")`)
		if err == nil {
			t.Errorf("%s should not be callable", name)
		}
	}
	for _, src := range []string{`math.random()`, `math.randomseed(1)`, `os.exit(1)`, `io.write("x")`} {
		if _, _, err := LoadString(src); err == nil {
			t.Errorf("%q should fail in the sandbox", src)
		}
	}
}

func TestSandbox_SafeLibsAvailable(t *testing.T) {
	defs, _, err := LoadString(`
		local hp = math.floor(49.9) + 1
		Boss "goblin_king" {
			name = string.upper("goblin") == "GOBLIN" and "Goblin King" or "?",
			health = hp,
			damage = 8,
			intro = string.format("%s meets the king.", "{player_name}"),
		}
	`)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	b := defs.Bosses[0]
	if b.Name != "Goblin King" || b.Health != 50 {
		t.Errorf("boss = %+v", b)
	}
}

func TestSortedLuaFiles(t *testing.T) {
	got := sortedLuaFiles([]string{"weapons.lua", "bosses.lua", "game.lua", "a.lua"})
	want := "game.lua,a.lua,bosses.lua,weapons.lua"
	if strings.Join(got, ",") != want {
		t.Errorf("sortedLuaFiles = %v, want %s", got, want)
	}
}

func assertContains(t *testing.T, msgs []string, substr string) {
	t.Helper()
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return
		}
	}
	t.Errorf("expected a message containing %q, got %v", substr, msgs)
}

func TestLoad_BundledRoster(t *testing.T) {
	defs, warnings, err := Load("../rosters/frostpeak")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if defs.Game.Title != "Frostpeak Ascent" || defs.Game.PlayerHealth != 130 {
		t.Errorf("game = %+v", defs.Game)
	}
	if got := strings.Join(state.WeaponNames(defs), ","); got != "Axe,Spear,Torch" {
		t.Errorf("weapons = %q", got)
	}
	if len(defs.Bosses) != 3 || defs.Bosses[2].Name != "Winter Queen" {
		t.Fatalf("bosses = %+v", defs.Bosses)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "winter_queen") {
		t.Errorf("warnings = %v", warnings)
	}
}
