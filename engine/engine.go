// Package engine provides the battle and campaign orchestrators that wire
// combatants, the event recorder and the presenter into a full run.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"github.com/nathoo/bossrush/engine/combatant"
	"github.com/nathoo/bossrush/engine/events"
	"github.com/nathoo/bossrush/engine/parser"
	"github.com/nathoo/bossrush/engine/state"
	"github.com/nathoo/bossrush/telemetry"
	"github.com/nathoo/bossrush/types"
)

// ErrInputClosed is returned when the operator's input ends mid-run.
var ErrInputClosed = errors.New("input closed")

// ErrNoWeapons is returned when the weapon catalog is empty.
var ErrNoWeapons = errors.New("weapon catalog is empty")

// Border separates major narration blocks.
var Border = strings.Repeat("-", 80)

// InvalidChoice is narrated after every unrecognized selection.
const InvalidChoice = "Invalid input, please try again."

// Presenter is the operator-facing side of a run. It never touches
// combat state; Ask and Pause block until the operator responds.
type Presenter interface {
	// Ask shows prompt and returns one line of operator input.
	Ask(prompt string) (string, error)
	// Narrate shows lines of text.
	Narrate(lines ...string)
	// Clear wipes the display.
	Clear()
	// Status shows both combatants. level is the 1-based roster position, 0 if unknown.
	Status(level int, player, enemy types.Snapshot)
	// Pause waits for the operator to acknowledge.
	Pause() error
}

// Refresher is implemented by presenters that keep a live health display.
// Fight calls Refresh after every round, including the final one.
type Refresher interface {
	Refresh(level int, player, enemy types.Snapshot)
}

// Engine holds the game definitions and the collaborators shared by
// every battle of a run.
type Engine struct {
	Defs     *state.Defs
	Recorder events.Recorder
	Tracer   trace.Tracer
}

// New creates an engine. rec may be nil.
func New(defs *state.Defs, rec events.Recorder) *Engine {
	if rec == nil {
		rec = events.Nop
	}
	return &Engine{
		Defs:     defs,
		Recorder: rec,
		Tracer:   telemetry.Tracer("engine"),
	}
}

// ChooseWeapon prompts until the operator names a catalog weapon and
// returns its name and damage bonus.
func ChooseWeapon(p Presenter, defs *state.Defs) (string, int, error) {
	w, err := chooseWeapon(p, defs)
	if err != nil {
		return "", 0, err
	}
	return w.Name, w.Bonus, nil
}

// chooseWeapon lists the catalog, then prompts until a name matches.
func chooseWeapon(p Presenter, defs *state.Defs) (types.WeaponDef, error) {
	names := state.WeaponNames(defs)
	if len(names) == 0 {
		return types.WeaponDef{}, ErrNoWeapons
	}

	menu := make([]string, 0, len(defs.Weapons)+1)
	menu = append(menu, "\nWeapons:")
	for _, w := range defs.Weapons {
		menu = append(menu, "  "+combatant.NewWeapon(w.Name, w.Bonus, w.Tag).Description())
	}
	p.Narrate(menu...)

	prompt := fmt.Sprintf("\nChoose your weapon (%s): ", strings.Join(names, ", "))
	for {
		input, err := p.Ask(prompt)
		if err != nil {
			return types.WeaponDef{}, err
		}
		if i, ok := parser.Choice(input, names); ok {
			return defs.Weapons[i], nil
		}
		p.Narrate(InvalidChoice)
	}
}
