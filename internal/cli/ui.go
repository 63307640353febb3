package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/randgraph"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings
	colorGreen = lipgloss.Color("35")  // Green - success
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - labels
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(28)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)

const iconSuccess = "✓"

var modelTitles = map[randgraph.Model]string{
	randgraph.ModelGilbert:       "Gilbert G(n,p)",
	randgraph.ModelWattsStrogatz: "Watts-Strogatz",
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+styleValue.Render(value))
}

// printStat prints a statistic; nil values are skipped.
func printStat(w io.Writer, key string, v *float64) {
	if v == nil {
		return
	}
	fmt.Fprintln(w, styleKey.Render(key)+" "+styleNumber.Render(strconv.FormatFloat(*v, 'f', 4, 64)))
}

// renderText prints a snapshot as an aligned, styled report.
func renderText(w io.Writer, s *randgraph.Snapshot) error {
	fmt.Fprintln(w, styleSuccess.Render(iconSuccess)+" "+styleTitle.Render(modelTitles[s.Model]+" graph"))

	params := fmt.Sprintf("n=%d p=%g", s.Params.N, s.Params.P)
	if s.Model == randgraph.ModelWattsStrogatz {
		params = fmt.Sprintf("n=%d k=%d p=%g", s.Params.N, s.Params.K, s.Params.P)
	}
	printKeyValue(w, "parameters", params)
	printKeyValue(w, "seed", strconv.FormatInt(s.Seed, 10))
	printKeyValue(w, "attempts", strconv.Itoa(s.Attempts))
	printKeyValue(w, "vertices", strconv.Itoa(s.Vertices))
	printKeyValue(w, "edges", strconv.Itoa(s.Edges))

	printStat(w, "average path length", s.AveragePathLength)
	printStat(w, "exact average path length", s.ExactAveragePathLength)
	printStat(w, "clustering coefficient", s.ClusteringCoefficient)
	printStat(w, "average degree", s.AverageDegree)

	fmt.Fprintln(w, styleDim.Render("id "+s.ID))
	return nil
}
