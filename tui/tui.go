package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/bossrush/engine"
	"github.com/nathoo/bossrush/engine/combatant"
	"github.com/nathoo/bossrush/engine/events"
	"github.com/nathoo/bossrush/engine/state"
)

// rawLine stores an unstyled output line with its classification,
// so we can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text     string
	kind     lineKind
	isInput  bool // true for echoed player input
	isSystem bool // true for system messages
}

// status is the most recent level header shown by the campaign.
type status statusMsg

// Model is the Bubble Tea model for the BossRush TUI.
type Model struct {
	title   string
	replies chan<- string

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine // accumulated narrative lines (unstyled, for re-wrapping)
	status   *status

	width    int
	height   int
	ready    bool
	waiting  bool // a prompt is pending and Enter submits to the campaign
	pausing  bool // the pending prompt is a pause; its Enter is not recorded
	showLog  bool
	done     bool
	quitting bool
}

// Config sets up a Model.
type Config struct {
	Title    string
	Weapons  []string // seeds the answer history so Up/Down cycle the menu
	QuietLog bool     // start with combat log lines hidden
}

// New creates a TUI model. Submitted lines are delivered on replies.
func New(cfg Config, replies chan<- string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 64
	ti.PromptStyle = styleInputPrompt

	return Model{
		title:   cfg.Title,
		replies: replies,
		input:   ti,
		history: NewHistory(20, cfg.Weapons...),
		showLog: !cfg.QuietLog,
	}
}

// Run plays one campaign on eng inside a full-screen Bubble Tea program.
// Combat events recorded by eng are also shown inline unless quietLog is
// set. Quitting the program ends the run quietly and is not reported as
// an error.
func Run(ctx context.Context, eng *engine.Engine, quietLog bool) (*engine.Campaign, error) {
	var p *tea.Program
	b := newBridge(func(msg tea.Msg) { p.Send(msg) })

	m := New(Config{
		Title:    eng.Defs.Game.Title,
		Weapons:  state.WeaponNames(eng.Defs),
		QuietLog: quietLog,
	}, b.replies)
	p = tea.NewProgram(m, tea.WithAltScreen())

	// Shallow copy so the inline sink is scoped to this run.
	runEng := *eng
	runEng.Recorder = events.NewLog(eng.Recorder, b)
	camp := runEng.NewCampaign(b)

	errc := make(chan error, 1)
	go func() {
		won, err := camp.Run(ctx)
		b.send(doneMsg{won: won, err: err})
		errc <- err
	}()

	_, runErr := p.Run()
	b.close()
	err := <-errc

	if runErr != nil {
		return camp, fmt.Errorf("running tui: %w", runErr)
	}
	if errors.Is(err, engine.ErrInputClosed) {
		return camp, nil
	}
	return camp, err
}

// Init starts the cursor blinking; all content arrives from the campaign.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages (key presses, window resize, campaign output).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case outputMsg:
		m = m.appendOutput("", msg.lines, false)

	case clearMsg:
		m.rawLines = nil
		m.refreshViewport()

	case statusMsg:
		st := status(msg)
		m.status = &st
		lines := []string{fmt.Sprintf("=============> %s <=============", strings.ToUpper(levelLabel(msg.level, msg.enemy.Name)))}
		lines = append(lines, combatant.Lines(msg.player)...)
		lines = append(lines, strings.Repeat("-", 30))
		lines = append(lines, combatant.Lines(msg.enemy)...)
		m = m.appendOutput("", lines, false)

	case refreshMsg:
		// Health only; the narrated status block stays as it was.
		if m.status != nil {
			st := *m.status
			st.player, st.enemy = msg.player, msg.enemy
			m.status = &st
		}

	case promptMsg:
		m.waiting = true
		m.pausing = msg.pause
		text := strings.TrimSpace(msg.text)
		m.input.Placeholder = text
		if !msg.pause {
			m = m.appendOutput("", []string{text}, false)
		}

	case doneMsg:
		m.done = true
		m.waiting = false
		m.input.Placeholder = "Press Enter to exit"
		if msg.err != nil && !errors.Is(msg.err, engine.ErrInputClosed) {
			m = m.appendOutput("", []string{fmt.Sprintf("Error: %v", msg.err)}, true)
		}
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if m.done {
		m.quitting = true
		return m, tea.Quit
	}

	m.history.Reset()

	// Meta-commands.
	if strings.HasPrefix(input, "/") {
		m.history.Record(input)
		output, quit := m.handleMeta(input)
		m = m.appendOutput(input, output, true)
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if !m.waiting {
		return m, nil
	}
	m.waiting = false
	m.input.Placeholder = ""
	if !m.pausing {
		m.history.Record(input)
	}
	if input != "" {
		m = m.appendOutput(input, nil, false)
	}
	m.replies <- input
	return m, nil
}

// appendOutput adds lines to the narrative and refreshes the viewport.
func (m Model) appendOutput(input string, lines []string, isSystem bool) Model {
	if input != "" {
		m.rawLines = append(m.rawLines, rawLine{
			text: "> " + input, isInput: true,
		})
	}

	for _, block := range lines {
		// Narration templates may hold several lines.
		for _, line := range strings.Split(block, "\n") {
			rl := rawLine{text: line, isSystem: isSystem}
			if !isSystem {
				rl.kind = classifyLine(line)
				if rl.kind == kindCombatLog && !m.showLog {
					continue
				}
			}
			m.rawLines = append(m.rawLines, rl)
		}
	}

	m.refreshViewport()

	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current width
// and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := wordWrap(rl.text, width)

		switch {
		case rl.isInput:
			styled = append(styled, stylePlayerInput.Render(wrapped))
		case rl.isSystem:
			styled = append(styled, styledSystemMsg(wrapped))
		default:
			styled = append(styled, renderLineKind(wrapped, rl.kind))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// wordWrap wraps text to fit within the given width, breaking at word
// boundaries.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wLen := len(word)

		if i == 0 {
			result.WriteString(word)
			lineLen = wLen
			continue
		}

		if lineLen+1+wLen > width {
			result.WriteString("\n")
			result.WriteString(word)
			lineLen = wLen
		} else {
			result.WriteString(" ")
			result.WriteString(word)
			lineLen += 1 + wLen
		}
	}

	return result.String()
}

// View renders the full TUI layout: viewport + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// handleMeta dispatches meta-commands. Returns output lines and quit flag.
func (m *Model) handleMeta(input string) ([]string, bool) {
	cmd := strings.Fields(input)[0]

	switch cmd {
	case "/quit", "/exit":
		return []string{"Goodbye."}, true

	case "/help":
		return m.cmdHelp(), false

	case "/state":
		return m.cmdState(), false

	case "/log":
		m.showLog = !m.showLog
		if m.showLog {
			return []string{"Combat log shown."}, false
		}
		return []string{"Combat log hidden."}, false

	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd)}, false
	}
}

func (m *Model) cmdHelp() []string {
	return []string{
		"System:",
		"  /quit   — Exit game",
		"  /help   — Show this help",
		"  /state  — Show both combatants",
		"  /log    — Toggle combat log lines",
		"",
		"Game:",
		"  Type your name, then pick a weapon by name.",
		"  Press Enter to advance each round.",
		"",
		"Navigation: PgUp/PgDn to scroll, Up/Down cycle weapons and past answers",
	}
}

func (m *Model) cmdState() []string {
	if m.status == nil {
		return []string{"No battle yet."}
	}
	st := m.status
	output := []string{levelLabel(st.level, st.enemy.Name)}
	output = append(output, combatant.Lines(st.player)...)
	output = append(output, combatant.Lines(st.enemy)...)
	return output
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (we use those for input history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
