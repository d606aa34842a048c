// Package cli provides line-based terminal I/O for the BossRush engine.
// It implements engine.Presenter over an io.Reader and io.Writer.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/bossrush/engine"
	"github.com/nathoo/bossrush/engine/combatant"
	"github.com/nathoo/bossrush/types"
)

const (
	separatorLength = 30
	clearSequence   = "\033[H\033[2J"
	pausePrompt     = "\nPress Enter to continue...\n"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	In          io.Reader
	Out         io.Writer
	EchoInput   bool // echo each input line after the prompt (for script playback)
	ClearScreen bool // emit ANSI clear on Clear(); off for pipes and scripts

	scanner *bufio.Scanner
}

// New creates a CLI on stdin/stdout.
func New() *CLI {
	return &CLI{
		In:  os.Stdin,
		Out: os.Stdout,
	}
}

// Run plays one campaign on eng. Closing the input (or /quit) ends the
// run quietly and is not reported as an error.
func (c *CLI) Run(ctx context.Context, eng *engine.Engine) (*engine.Campaign, error) {
	camp := eng.NewCampaign(c)
	_, err := camp.Run(ctx)
	if errors.Is(err, engine.ErrInputClosed) {
		c.printSystem("Goodbye.")
		return camp, nil
	}
	return camp, err
}

// Ask prints prompt and reads one line. Blank lines are returned as-is;
// script comment lines (starting with '#') are skipped.
func (c *CLI) Ask(prompt string) (string, error) {
	if c.scanner == nil {
		c.scanner = bufio.NewScanner(c.In)
	}
	c.print(prompt)
	for {
		if !c.scanner.Scan() {
			return "", engine.ErrInputClosed
		}
		input := strings.TrimSpace(c.scanner.Text())
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return "", engine.ErrInputClosed
			}
			c.print(prompt)
			continue
		}
		return input, nil
	}
}

// Narrate prints each line.
func (c *CLI) Narrate(lines ...string) {
	for _, line := range lines {
		c.printLine(line)
	}
}

// Clear wipes the terminal when ClearScreen is set.
func (c *CLI) Clear() {
	if c.ClearScreen {
		c.print(clearSequence)
	}
}

// Status prints the level header and both combatants.
func (c *CLI) Status(level int, player, enemy types.Snapshot) {
	c.printLine("")
	c.printLine(fmt.Sprintf("=============> %s <=============", levelHeader(level, enemy.Name)))
	c.Narrate(combatant.Lines(player)...)
	c.printLine(strings.Repeat("-", separatorLength))
	c.Narrate(combatant.Lines(enemy)...)
	c.printLine(strings.Repeat("-", separatorLength))
}

// Pause waits for Enter.
func (c *CLI) Pause() error {
	_, err := c.Ask(pausePrompt)
	return err
}

// levelHeader renders "LEVEL 2: Dark Sorcerer", or "BOSS: <name>" off-roster.
func levelHeader(level int, name string) string {
	if level <= 0 {
		return "BOSS: " + name
	}
	return fmt.Sprintf("LEVEL %d: %s", level, name)
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	cmd := strings.Fields(input)[0]
	switch cmd {
	case "/quit", "/exit":
		return true
	case "/help":
		c.cmdHelp()
	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}
	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /quit   — Exit game",
		"  /help   — Show this help",
		"",
		"Game:",
		"  Type your name, then pick a weapon by name.",
		"  Press Enter to advance each round.",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
