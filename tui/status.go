package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/bossrush/types"
)

// hpLabel renders "Aria HP:54".
func hpLabel(s types.Snapshot) string {
	return fmt.Sprintf("%s HP:%d", s.Name, s.Health)
}

// renderStatusBar produces a full-width inverted status line showing the
// current level and both combatants' health.
func (m Model) renderStatusBar() string {
	left := " " + m.title
	right := ""

	if m.status != nil {
		st := m.status
		left = fmt.Sprintf(" %s | %s", levelLabel(st.level, st.enemy.Name), hpLabel(st.player))
		right = hpLabel(st.enemy) + " "
		if m.done {
			right = "Finished " + right
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}

// levelLabel renders "Level 2: Dark Sorcerer", or the bare name off-roster.
func levelLabel(level int, name string) string {
	if level <= 0 {
		return name
	}
	return fmt.Sprintf("Level %d: %s", level, name)
}
