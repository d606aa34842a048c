package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/bossrush/engine"
	"github.com/nathoo/bossrush/engine/events"
	"github.com/nathoo/bossrush/types"
)

const pausePrompt = "Press Enter to continue..."

// Messages sent from the campaign goroutine into the Update loop.
type (
	outputMsg struct{ lines []string }
	clearMsg  struct{}
	promptMsg struct {
		text  string
		pause bool
	}
	statusMsg struct {
		level         int
		player, enemy types.Snapshot
	}
	refreshMsg struct {
		player, enemy types.Snapshot
	}
	doneMsg struct {
		won bool
		err error
	}
)

// bridge implements engine.Presenter for a campaign running on its own
// goroutine. Display calls become messages for the Bubble Tea program;
// Ask blocks until the model submits a reply or the program exits.
type bridge struct {
	send    func(tea.Msg)
	replies chan string
	quit    chan struct{}
}

var (
	_ engine.Presenter = (*bridge)(nil)
	_ engine.Refresher = (*bridge)(nil)
	_ events.Recorder  = (*bridge)(nil)
)

func newBridge(send func(tea.Msg)) *bridge {
	return &bridge{
		send:    send,
		replies: make(chan string, 1),
		quit:    make(chan struct{}),
	}
}

// Ask shows prompt and waits for the submitted line.
func (b *bridge) Ask(prompt string) (string, error) {
	return b.await(promptMsg{text: prompt})
}

// Pause waits for Enter.
func (b *bridge) Pause() error {
	_, err := b.await(promptMsg{text: pausePrompt, pause: true})
	return err
}

func (b *bridge) await(msg promptMsg) (string, error) {
	b.send(msg)
	select {
	case reply := <-b.replies:
		return reply, nil
	case <-b.quit:
		return "", engine.ErrInputClosed
	}
}

func (b *bridge) Narrate(lines ...string) {
	b.send(outputMsg{lines: lines})
}

func (b *bridge) Clear() {
	b.send(clearMsg{})
}

func (b *bridge) Status(level int, player, enemy types.Snapshot) {
	b.send(statusMsg{level: level, player: player, enemy: enemy})
}

// Refresh updates the status bar after a round without redrawing the log.
func (b *bridge) Refresh(level int, player, enemy types.Snapshot) {
	b.send(refreshMsg{player: player, enemy: enemy})
}

// Record shows combat events inline with the narration.
func (b *bridge) Record(ev types.CombatEvent) {
	b.send(outputMsg{lines: []string{events.FormatEvent(ev)}})
}

// close releases any Ask blocked on a program that has exited.
func (b *bridge) close() {
	close(b.quit)
}
