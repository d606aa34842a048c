package engine

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/nathoo/bossrush/engine/combatant"
	"github.com/nathoo/bossrush/engine/parser"
	"github.com/nathoo/bossrush/engine/state"
	"github.com/nathoo/bossrush/types"
)

// DefaultPlayerName is used when the operator enters an empty name.
const DefaultPlayerName = "Hero"

// Campaign runs one player through the whole boss roster.
type Campaign struct {
	Engine    *Engine
	Presenter Presenter

	Player  *combatant.Combatant
	Weapon  types.WeaponDef
	Records []types.BattleRecord
	Won     bool
}

// NewCampaign creates a campaign driven by p.
func (e *Engine) NewCampaign(p Presenter) *Campaign {
	return &Campaign{Engine: e, Presenter: p}
}

// Run plays the campaign: create the player, fight each boss in roster
// order, stop at the first loss. Returns true if every boss was defeated.
func (c *Campaign) Run(ctx context.Context) (bool, error) {
	e := c.Engine
	p := c.Presenter

	ctx, span := e.Tracer.Start(ctx, "campaign")
	defer span.End()

	if err := c.setup(); err != nil {
		return false, err
	}
	span.SetAttributes(
		attribute.String("player", c.Player.Name),
		attribute.String("weapon", c.Weapon.Name),
	)

	bosses := Roster(e.Defs)
	for _, boss := range bosses {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		p.Clear()
		p.Narrate(state.BossIntro(e.Defs, boss.Name, c.Player.Name))
		if err := p.Pause(); err != nil {
			return false, err
		}

		b, err := e.fight(ctx, p, c.Player, boss)
		c.Records = append(c.Records, b.Record(state.Level(e.Defs, boss.Name)))
		if err != nil {
			return false, err
		}
		if b.Outcome != PlayerWon {
			c.finish(false)
			span.SetAttributes(attribute.Bool("won", false))
			return false, nil
		}
	}

	c.finish(true)
	span.SetAttributes(attribute.Bool("won", true))
	return true, nil
}

// setup greets the operator and builds the player from their name and weapon.
func (c *Campaign) setup() error {
	e := c.Engine
	p := c.Presenter
	game := e.Defs.Game

	p.Clear()
	if game.Welcome != "" {
		p.Narrate(game.Welcome)
	}

	raw, err := p.Ask("Enter your character's name: ")
	if err != nil {
		return err
	}
	name := parser.Capitalize(raw)
	if name == "" {
		name = DefaultPlayerName
	}
	if game.Intro != "" {
		p.Narrate(state.Render(game.Intro, name, ""))
	}

	weapon, err := chooseWeapon(p, e.Defs)
	if err != nil {
		return err
	}
	c.Weapon = weapon

	c.Player = combatant.New(name, game.PlayerHealth, game.PlayerDamage,
		combatant.NewWeapon(weapon.Name, weapon.Bonus, weapon.Tag))

	p.Narrate(combatant.Lines(c.Player.Snapshot())...)
	return p.Pause()
}

// finish narrates the final outcome.
func (c *Campaign) finish(won bool) {
	c.Won = won
	game := c.Engine.Defs.Game
	tmpl := game.Lose
	if won {
		tmpl = game.Win
	}
	c.Presenter.Narrate(Border, state.Render(tmpl, c.Player.Name, ""), Border)
}

// Roster builds fresh boss combatants in roster order.
func Roster(defs *state.Defs) []*combatant.Combatant {
	bosses := make([]*combatant.Combatant, 0, len(defs.Bosses))
	for _, b := range defs.Bosses {
		bosses = append(bosses, combatant.NewBoss(b.Name, b.Health, b.Damage))
	}
	return bosses
}
