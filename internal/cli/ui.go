package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/partlookup/pkg/integrations/hestore"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for part headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleLink for product pages and other URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for quantities and prices.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleKey = lipgloss.NewStyle().Foreground(colorGray).Width(24)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printError prints an error message.
func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented).
func printDetail(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, "  "+StyleDim.Render(msg))
}

// =============================================================================
// Record Output
// =============================================================================

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// printRecord prints a part record in the order given by keys, skipping
// keys the record does not carry.
func printRecord(w io.Writer, record map[string]any, keys []string) {
	if sym, ok := record[hestore.KeySymbol].(string); ok {
		fmt.Fprintln(w, StyleTitle.Render(sym))
	}
	for _, k := range keys {
		v, ok := record[k]
		if !ok {
			continue
		}
		switch val := v.(type) {
		case map[string]any:
			printKeyValue(w, k, "")
			printPriceBreaks(w, val)
		case string:
			if strings.HasPrefix(val, "http") {
				fmt.Fprintln(w, styleKey.Render(k)+" "+StyleLink.Render(val))
			} else {
				printKeyValue(w, k, val)
			}
		default:
			printKeyValue(w, k, fmt.Sprint(val))
		}
	}
}

// printPriceBreaks prints quantity/price pairs, smallest quantity first.
func printPriceBreaks(w io.Writer, prices map[string]any) {
	if len(prices) == 0 {
		printDetail(w, "no price breaks")
		return
	}
	for _, qty := range sortQuantities(prices) {
		fmt.Fprintln(w, "  "+StyleNumber.Render(fmt.Sprintf("%8s", qty))+StyleDim.Render(" × ")+StyleValue.Render(fmt.Sprint(prices[qty])))
	}
}

// sortQuantities orders price-break keys numerically where possible.
func sortQuantities(prices map[string]any) []string {
	qtys := make([]string, 0, len(prices))
	for q := range prices {
		qtys = append(qtys, q)
	}
	sort.Slice(qtys, func(i, j int) bool {
		a, errA := strconv.ParseFloat(qtys[i], 64)
		b, errB := strconv.ParseFloat(qtys[j], 64)
		switch {
		case errA == nil && errB == nil && a != b:
			return a < b
		case errA == nil && errB != nil:
			return true
		case errA != nil && errB == nil:
			return false
		}
		return qtys[i] < qtys[j]
	})
	return qtys
}
