package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/nathoo/bossrush/engine/combatant"
	"github.com/nathoo/bossrush/engine/events"
	"github.com/nathoo/bossrush/engine/state"
	"github.com/nathoo/bossrush/types"
)

// scriptPresenter replays canned answers and records everything shown.
type scriptPresenter struct {
	inputs   []string
	asks     []string
	lines    []string
	statuses []string
	clears   int
	pauses   int
	// pauseLimit ends input after this many pauses (0 = unlimited).
	pauseLimit int
}

func (p *scriptPresenter) Ask(prompt string) (string, error) {
	p.asks = append(p.asks, prompt)
	if len(p.inputs) == 0 {
		return "", ErrInputClosed
	}
	in := p.inputs[0]
	p.inputs = p.inputs[1:]
	return in, nil
}

func (p *scriptPresenter) Narrate(lines ...string) { p.lines = append(p.lines, lines...) }

func (p *scriptPresenter) Clear() { p.clears++ }

func (p *scriptPresenter) Status(level int, player, enemy types.Snapshot) {
	p.statuses = append(p.statuses, enemy.Name)
}

func (p *scriptPresenter) Pause() error {
	p.pauses++
	if p.pauseLimit > 0 && p.pauses > p.pauseLimit {
		return ErrInputClosed
	}
	return nil
}

func (p *scriptPresenter) output() string { return strings.Join(p.lines, "\n") }

// countingRecorder counts events per attacker.
type countingRecorder struct {
	byAttacker map[string]int
}

func (r *countingRecorder) Record(ev types.CombatEvent) {
	if r.byAttacker == nil {
		r.byAttacker = map[string]int{}
	}
	r.byAttacker[ev.Attacker]++
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		o    Outcome
		want string
	}{
		{Ongoing, "ongoing"},
		{PlayerWon, "player_won"},
		{PlayerLost, "player_lost"},
		{Outcome(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.o, got, tt.want)
		}
	}
}

func TestRound_ScenarioA(t *testing.T) {
	player := combatant.New("Hero", 110, 10, combatant.NewWeapon("Rock", 2, ""))
	boss := combatant.NewBoss("Goblin King", 50, 8)
	b := NewBattle(player, boss, nil)

	result := b.Round()

	if boss.Health() != 38 {
		t.Errorf("boss health = %d, want 38", boss.Health())
	}
	if player.Health() != 96 {
		t.Errorf("player health = %d, want 96", player.Health())
	}
	if result.Dealt != 12 || result.Taken != 14 {
		t.Errorf("result dealt/taken = %d/%d, want 12/14", result.Dealt, result.Taken)
	}
	want := []string{
		"You dealt 12 damage to Goblin King.",
		"Goblin King uses a special attack! (+1 Damage)",
		"Goblin King dealt 14 damage to you.",
	}
	if strings.Join(result.Output, "|") != strings.Join(want, "|") {
		t.Errorf("output = %q, want %q", result.Output, want)
	}
	if b.Outcome != Ongoing {
		t.Errorf("outcome = %v, want ongoing", b.Outcome)
	}
}

func TestRound_ScenarioB_WinsOnFifthAttack(t *testing.T) {
	player := combatant.New("Hero", 1000, 10, combatant.NewWeapon("Rock", 2, ""))
	boss := combatant.NewBoss("Goblin King", 50, 8)
	b := NewBattle(player, boss, nil)

	for i := 1; i <= 4; i++ {
		b.Round()
		if b.Outcome != Ongoing {
			t.Fatalf("battle ended early on round %d", i)
		}
		if boss.Health() != 50-12*i {
			t.Fatalf("round %d: boss health = %d, want %d", i, boss.Health(), 50-12*i)
		}
	}

	b.Round()
	if b.Outcome != PlayerWon {
		t.Fatalf("outcome = %v, want player_won", b.Outcome)
	}
	if boss.Health() != 0 {
		t.Errorf("boss health = %d, want clamped 0", boss.Health())
	}
	if b.Rounds != 5 {
		t.Errorf("rounds = %d, want 5", b.Rounds)
	}
}

func TestRound_EnemyDoesNotActAfterLethalBlow(t *testing.T) {
	rec := &countingRecorder{}
	player := combatant.New("Hero", 1, 10, nil)
	boss := combatant.NewBoss("Goblin King", 10, 100)
	b := NewBattle(player, boss, rec)

	result := b.Round()

	if b.Outcome != PlayerWon {
		t.Fatalf("outcome = %v, want player_won", b.Outcome)
	}
	if rec.byAttacker["Goblin King"] != 0 {
		t.Errorf("enemy attacked %d times after dying", rec.byAttacker["Goblin King"])
	}
	if player.Health() != 1 {
		t.Errorf("player health = %d, want 1", player.Health())
	}
	if result.Taken != 0 {
		t.Errorf("taken = %d, want 0", result.Taken)
	}
}

func TestRound_PlayerLoses(t *testing.T) {
	player := combatant.New("Hero", 10, 1, nil)
	boss := combatant.NewBoss("Goblin King", 50, 8)
	b := NewBattle(player, boss, nil)

	b.Round()
	if b.Outcome != PlayerLost {
		t.Fatalf("outcome = %v, want player_lost", b.Outcome)
	}
	if player.Health() != 0 {
		t.Errorf("player health = %d, want 0", player.Health())
	}
}

func TestRound_TerminalIsNoop(t *testing.T) {
	player := combatant.New("Hero", 10, 100, nil)
	boss := combatant.NewBoss("Goblin King", 5, 8)
	b := NewBattle(player, boss, nil)
	b.Round()

	result := b.Round()
	if len(result.Output) != 0 || b.Rounds != 1 {
		t.Errorf("terminal round should do nothing: output=%v rounds=%d", result.Output, b.Rounds)
	}
}

func TestRound_PlainEnemyHasNoSpecialLine(t *testing.T) {
	player := combatant.New("Hero", 100, 1, nil)
	enemy := combatant.New("Rat", 100, 2, nil)
	b := NewBattle(player, enemy, nil)

	result := b.Round()
	for _, line := range result.Output {
		if strings.Contains(line, "special attack") {
			t.Errorf("unexpected special attack line: %q", line)
		}
	}
	if player.Health() != 98 {
		t.Errorf("player health = %d, want 98", player.Health())
	}
}

func TestNewBattle_AlreadyDecided(t *testing.T) {
	dead := combatant.NewBoss("Goblin King", 0, 8)
	b := NewBattle(combatant.New("Hero", 10, 1, nil), dead, nil)
	if b.Outcome != PlayerWon {
		t.Errorf("outcome = %v, want player_won", b.Outcome)
	}

	b = NewBattle(combatant.New("Hero", 0, 1, nil), combatant.NewBoss("Goblin King", 5, 8), nil)
	if b.Outcome != PlayerLost {
		t.Errorf("outcome = %v, want player_lost", b.Outcome)
	}
}

func TestFight_PlayerWins(t *testing.T) {
	var c events.Collector
	eng := New(state.DefaultDefs(), &c)
	p := &scriptPresenter{}

	player := combatant.New("Hero", 110, 10, combatant.NewWeapon("Rock", 2, ""))
	boss := combatant.NewBoss("Goblin King", 50, 8)

	won, err := eng.Fight(context.Background(), p, player, boss)
	if err != nil {
		t.Fatalf("Fight: %v", err)
	}
	if !won {
		t.Fatal("expected player to win")
	}

	// 5 rounds: 4 full exchanges then the killing blow.
	if len(p.statuses) != 5 {
		t.Errorf("status shown %d times, want 5", len(p.statuses))
	}
	// Player: 5 events. Boss: 2 events per attack × 4.
	if got := len(c.Events()); got != 13 {
		t.Errorf("recorded %d events, want 13", got)
	}
	if player.Health() != 110-4*14 {
		t.Errorf("player health = %d, want %d", player.Health(), 110-4*14)
	}
	if !strings.Contains(p.output(), "you have vanquished Goblin King") {
		t.Errorf("missing victory narration:\n%s", p.output())
	}
}

func TestFight_PlayerLoses(t *testing.T) {
	eng := New(state.DefaultDefs(), nil)
	p := &scriptPresenter{}

	player := combatant.New("Hero", 20, 1, nil)
	boss := combatant.NewBoss("Dark Sorcerer", 60, 9)

	won, err := eng.Fight(context.Background(), p, player, boss)
	if err != nil {
		t.Fatalf("Fight: %v", err)
	}
	if won {
		t.Fatal("expected player to lose")
	}
	if !strings.Contains(p.output(), "Dark Sorcerer has bested you") {
		t.Errorf("missing defeat narration:\n%s", p.output())
	}
}

func TestFight_InputClosedDuringPause(t *testing.T) {
	eng := New(state.DefaultDefs(), nil)
	p := &scriptPresenter{pauseLimit: 1}

	player := combatant.New("Hero", 110, 10, nil)
	boss := combatant.NewBoss("Goblin King", 50, 8)

	_, err := eng.Fight(context.Background(), p, player, boss)
	if err != ErrInputClosed {
		t.Fatalf("err = %v, want ErrInputClosed", err)
	}
}

func TestFight_CanceledContext(t *testing.T) {
	eng := New(state.DefaultDefs(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := eng.Fight(ctx, &scriptPresenter{}, combatant.New("Hero", 110, 10, nil), combatant.NewBoss("Goblin King", 50, 8))
	if err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestBattleRecord(t *testing.T) {
	player := combatant.New("Hero", 110, 10, combatant.NewWeapon("Rock", 2, ""))
	boss := combatant.NewBoss("Goblin King", 50, 8)
	b := NewBattle(player, boss, nil)
	for b.Outcome == Ongoing {
		b.Round()
	}

	r := b.Record(1)
	want := types.BattleRecord{Boss: "Goblin King", Level: 1, Won: true, Rounds: 5, DamageDealt: 60, DamageTaken: 56}
	if r != want {
		t.Errorf("record = %+v, want %+v", r, want)
	}
}

// refreshingPresenter also records the health shown after each round.
type refreshingPresenter struct {
	scriptPresenter
	enemyHealth []int
}

func (p *refreshingPresenter) Refresh(level int, player, enemy types.Snapshot) {
	p.enemyHealth = append(p.enemyHealth, enemy.Health)
}

func TestFight_RefreshAfterEveryRound(t *testing.T) {
	eng := New(state.DefaultDefs(), nil)
	p := &refreshingPresenter{}

	player := combatant.New("Hero", 110, 10, combatant.NewWeapon("Rock", 2, ""))
	boss := combatant.NewBoss("Goblin King", 50, 8)
	if _, err := eng.Fight(context.Background(), p, player, boss); err != nil {
		t.Fatalf("Fight: %v", err)
	}

	want := []int{38, 26, 14, 2, 0}
	if len(p.enemyHealth) != len(want) {
		t.Fatalf("refreshed %d times, want %d", len(p.enemyHealth), len(want))
	}
	for i, hp := range want {
		if p.enemyHealth[i] != hp {
			t.Errorf("refresh %d: enemy health = %d, want %d", i, p.enemyHealth[i], hp)
		}
	}
}
