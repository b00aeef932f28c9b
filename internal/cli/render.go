package cli

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/ledger"
)

var (
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	todayStyle = lipgloss.NewStyle().Underline(true)
	TitleStyle = lipgloss.NewStyle().Bold(true)
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Check renders a completion box.
func Check(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// CalendarStrip renders one cell per date in window: a filled block in
// color when the date is done in history, a dot otherwise. Today is
// underlined.
func CalendarStrip(window []string, history ledger.Ledger, color, today string) string {
	done := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	var b strings.Builder
	for i, day := range window {
		if i > 0 {
			b.WriteByte(' ')
		}
		cell := mutedStyle.Render("·")
		if history.Done(day) {
			cell = done.Render("■")
		}
		if day == today {
			cell = todayStyle.Render(cell)
		}
		b.WriteString(cell)
	}
	return b.String()
}

// DayStrip renders window newest first as day-of-month cells. Days for
// which marked reports true are bold and the selected day is bracketed.
func DayStrip(window []string, selected string, marked func(string) bool) string {
	var b strings.Builder
	for i, day := range ledger.Descending(window) {
		if i > 0 {
			b.WriteByte(' ')
		}
		label := day
		if t, err := time.Parse(constants.DateFormat, day); err == nil {
			label = t.Format("02")
		}
		if marked != nil && marked(day) {
			label = TitleStyle.Render(label)
		} else {
			label = mutedStyle.Render(label)
		}
		if day == selected {
			label = "[" + label + "]"
		}
		b.WriteString(label)
	}
	return b.String()
}

// WindowLabel describes the span of a calendar window.
func WindowLabel(freq constants.Frequency, window []string) string {
	if len(window) == 0 {
		return ""
	}
	first, err1 := time.Parse(constants.DateFormat, window[0])
	last, err2 := time.Parse(constants.DateFormat, window[len(window)-1])
	if err1 != nil || err2 != nil {
		return ""
	}
	return string(freq) + ": " + first.Format("Jan 2") + " to " + last.Format("Jan 2")
}

// Truncate shortens s to n runes with an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
