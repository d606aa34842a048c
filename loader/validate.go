package loader

import (
	"fmt"
	"strings"

	"github.com/nathoo/bossrush/engine/parser"
	"github.com/nathoo/bossrush/engine/state"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// MaxStat bounds every health, damage and bonus value so that effective
// damage (damage + bonus + boss extras) stays far from int overflow.
const MaxStat = 1_000_000

// checkMax records an error when v exceeds MaxStat.
func (e *ValidationError) checkMax(what string, v int) {
	if v > MaxStat {
		e.Errors = append(e.Errors, fmt.Sprintf("%s must not exceed %d, got %d", what, MaxStat, v))
	}
}

// validate checks the compiled defs for consistency. Warnings are
// returned even when validation succeeds.
func validate(defs *state.Defs) ([]string, error) {
	ve := &ValidationError{}

	if defs.Game.PlayerHealth <= 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"Game.player_health must be positive, got %d", defs.Game.PlayerHealth))
	}
	if defs.Game.PlayerDamage < 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"Game.player_damage must not be negative, got %d", defs.Game.PlayerDamage))
	}
	ve.checkMax("Game.player_health", defs.Game.PlayerHealth)
	ve.checkMax("Game.player_damage", defs.Game.PlayerDamage)

	// Weapons: named, non-negative, unique under case-insensitive matching.
	seen := map[string]string{}
	for _, w := range defs.Weapons {
		if w.Name == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("weapon %q has no name", w.ID))
			continue
		}
		if w.Bonus < 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"weapon %q bonus must not be negative, got %d", w.ID, w.Bonus))
		}
		ve.checkMax(fmt.Sprintf("weapon %q bonus", w.ID), w.Bonus)
		key := parser.Capitalize(w.Name)
		if other, ok := seen[key]; ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"weapons %q and %q share the name %q", other, w.ID, w.Name))
		}
		seen[key] = w.ID
	}

	// Bosses: named, alive, non-negative damage.
	ids := map[string]bool{}
	names := map[string]bool{}
	for _, b := range defs.Bosses {
		if ids[b.ID] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate boss ID %q", b.ID))
		}
		ids[b.ID] = true

		if b.Name == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("boss %q has no name", b.ID))
			continue
		}
		if b.Health <= 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"boss %q health must be positive, got %d", b.ID, b.Health))
		}
		if b.Damage < 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"boss %q damage must not be negative, got %d", b.ID, b.Damage))
		}
		ve.checkMax(fmt.Sprintf("boss %q health", b.ID), b.Health)
		ve.checkMax(fmt.Sprintf("boss %q damage", b.ID), b.Damage)
		if names[b.Name] {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"boss name %q is used more than once; intros and levels resolve to the first", b.Name))
		}
		names[b.Name] = true
		if b.Intro == "" {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"boss %q has no intro; the fallback will be shown", b.ID))
		}
	}

	if len(ve.Errors) > 0 {
		return ve.Warnings, ve
	}
	return ve.Warnings, nil
}
