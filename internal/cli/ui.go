package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvlpath/bench"
)

var (
	colorCyan   = lipgloss.Color("36")  // primary
	colorGreen  = lipgloss.Color("35")  // success
	colorYellow = lipgloss.Color("220") // warnings
	colorRed    = lipgloss.Color("167") // errors
	colorWhite  = lipgloss.Color("255") // values
	colorGray   = lipgloss.Color("245") // secondary text
	colorDim    = lipgloss.Color("240") // muted text
)

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleHeader      = lipgloss.NewStyle().Bold(true).Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// formatPath renders a vertex sequence as "0 → 4 → 1".
func formatPath(path []int) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " "+StyleDim.Render(iconArrow)+" ")
}

// printSummary prints one line per length with the mean time and found count
// of every algorithm.
func printSummary(w io.Writer, r *bench.Report) {
	cell := lipgloss.NewStyle().Width(24)
	lenCell := lipgloss.NewStyle().Width(8)

	header := lenCell.Render(styleHeader.Render("L"))
	for _, name := range r.Config.Algorithms {
		header += cell.Render(styleHeader.Render(name + " mean (found)"))
	}
	fmt.Fprintln(w, header)

	for _, row := range r.Rows {
		line := lenCell.Render(StyleNumber.Render(strconv.Itoa(row.Length)))
		for _, name := range r.Config.Algorithms {
			st := row.Stats[name]
			text := fmt.Sprintf("%.6fs (%d/%d)", st.Mean, st.Found, r.Config.Runs)
			if st.Capped+st.TimedOut > 0 {
				text += StyleWarning.Render(fmt.Sprintf(" !%d", st.Capped+st.TimedOut))
			}
			line += cell.Render(text)
		}
		fmt.Fprintln(w, line)
	}
}
