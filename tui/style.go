package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/bossrush/engine"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarration = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleHeader = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	styleStats = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	stylePlayerHit = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34"))

	styleEnemyHit = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	styleSpecial = lipgloss.NewStyle().
			Foreground(lipgloss.Color("171")).
			Bold(true)

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleCombatLog = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarration lineKind = iota
	kindHeader
	kindStats
	kindPlayerHit
	kindEnemyHit
	kindSpecial
	kindSystem
	kindError
	kindCombatLog
)

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.Contains(line, "] COMBAT LOG: "):
		return kindCombatLog
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "=============>"):
		return kindHeader
	case line == engine.InvalidChoice:
		return kindError
	case strings.HasPrefix(line, "You dealt "):
		return kindPlayerHit
	case strings.Contains(line, " uses a special attack!"):
		return kindSpecial
	case strings.HasSuffix(line, " damage to you."):
		return kindEnemyHit
	case isStatLine(line):
		return kindStats
	default:
		return kindNarration
	}
}

// isStatLine reports whether line is part of a combatant display block.
func isStatLine(line string) bool {
	for _, prefix := range []string{"Name: ", "Health: ", "Damage: ", "Weapon: "} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return line != "" && strings.Trim(line, "-") == ""
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindHeader:
		return styleHeader.Render(line)
	case kindStats:
		return styleStats.Render(line)
	case kindPlayerHit:
		return stylePlayerHit.Render(line)
	case kindEnemyHit:
		return styleEnemyHit.Render(line)
	case kindSpecial:
		return styleSpecial.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindError:
		return styleError.Render(line)
	case kindCombatLog:
		return styleCombatLog.Render(line)
	default:
		return styleNarration.Render(line)
	}
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
