package engine

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/nathoo/bossrush/engine/combatant"
	"github.com/nathoo/bossrush/engine/events"
	"github.com/nathoo/bossrush/engine/state"
	"github.com/nathoo/bossrush/types"
)

// Outcome is the state of a battle.
type Outcome int

const (
	Ongoing Outcome = iota
	PlayerWon
	PlayerLost
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case PlayerWon:
		return "player_won"
	case PlayerLost:
		return "player_lost"
	default:
		return "unknown"
	}
}

// Battle is one fight between the player and a single enemy.
type Battle struct {
	Player  *combatant.Combatant
	Enemy   *combatant.Combatant
	Outcome Outcome
	Rounds  int
	Dealt   int // total damage dealt by the player
	Taken   int // total damage taken by the player

	rec events.Recorder
}

// NewBattle creates a battle. rec may be nil.
func NewBattle(player, enemy *combatant.Combatant, rec events.Recorder) *Battle {
	b := &Battle{Player: player, Enemy: enemy, rec: rec}
	switch {
	case !enemy.Alive():
		b.Outcome = PlayerWon
	case !player.Alive():
		b.Outcome = PlayerLost
	}
	return b
}

// Round runs one exchange: the player strikes, and if the enemy is still
// standing it strikes back. Health is checked after each strike, so the
// enemy never acts once it is at zero. Terminal battles return an empty result.
func (b *Battle) Round() types.Result {
	var result types.Result
	if b.Outcome != Ongoing {
		return result
	}
	b.Rounds++

	// 1. Player turn.
	dealt := b.Player.Attack(b.Enemy, b.rec)
	b.Dealt += dealt
	result.Dealt = dealt
	result.Output = append(result.Output, fmt.Sprintf("You dealt %d damage to %s.", dealt, b.Enemy.Name))

	if !b.Enemy.Alive() {
		b.Outcome = PlayerWon
		return result
	}

	// 2. Enemy turn.
	taken := b.Enemy.Attack(b.Player, b.rec)
	b.Taken += taken
	result.Taken = taken
	if b.Enemy.IsBoss() {
		result.Output = append(result.Output,
			fmt.Sprintf("%s uses a special attack! (+%d Damage)", b.Enemy.Name, combatant.BossExtraDamage))
	}
	result.Output = append(result.Output, fmt.Sprintf("%s dealt %d damage to you.", b.Enemy.Name, taken))

	if !b.Player.Alive() {
		b.Outcome = PlayerLost
	}
	return result
}

// Record summarizes the battle.
func (b *Battle) Record(level int) types.BattleRecord {
	return types.BattleRecord{
		Boss:        b.Enemy.Name,
		Level:       level,
		Won:         b.Outcome == PlayerWon,
		Rounds:      b.Rounds,
		DamageDealt: b.Dealt,
		DamageTaken: b.Taken,
	}
}

// Fight runs a battle to completion and reports whether the player won.
func (e *Engine) Fight(ctx context.Context, p Presenter, player, enemy *combatant.Combatant) (bool, error) {
	b, err := e.fight(ctx, p, player, enemy)
	if err != nil {
		return false, err
	}
	return b.Outcome == PlayerWon, nil
}

func (e *Engine) fight(ctx context.Context, p Presenter, player, enemy *combatant.Combatant) (*Battle, error) {
	level := state.Level(e.Defs, enemy.Name)

	ctx, span := e.Tracer.Start(ctx, "battle")
	defer span.End()
	span.SetAttributes(
		attribute.String("boss", enemy.Name),
		attribute.Int("level", level),
	)

	b := NewBattle(player, enemy, e.Recorder)
	for b.Outcome == Ongoing {
		if err := ctx.Err(); err != nil {
			return b, err
		}

		p.Clear()
		p.Status(level, player.Snapshot(), enemy.Snapshot())

		result := b.Round()
		p.Narrate(result.Output...)
		if r, ok := p.(Refresher); ok {
			r.Refresh(level, player.Snapshot(), enemy.Snapshot())
		}

		if b.Outcome != Ongoing {
			break
		}
		if err := p.Pause(); err != nil {
			return b, err
		}
	}

	span.SetAttributes(
		attribute.String("outcome", b.Outcome.String()),
		attribute.Int("rounds", b.Rounds),
	)

	tmpl := e.Defs.Game.Defeat
	if b.Outcome == PlayerWon {
		tmpl = e.Defs.Game.Victory
	}
	p.Narrate(Border, state.Render(tmpl, player.Name, enemy.Name))
	if err := p.Pause(); err != nil {
		return b, err
	}
	return b, nil
}
