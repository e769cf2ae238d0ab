package dataset

import (
	"strconv"
	"strings"
)

// numericParser attempts to interpret a single raw cell as a float64.
type numericParser func(s string) (float64, error)

// parserChain is the ordered fallback chain applied to every numeric cell:
// strict parse first, then a comma-decimal parse for European formats.
// A cell that survives no parser in the chain is marked unparseable.
var parserChain = []numericParser{
	parseStrict,
	parseCommaDecimal,
}

func parseStrict(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func parseCommaDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}

// parseNumeric runs the cell through the parser chain. The second return
// value reports whether any parser in the chain accepted the cell.
func parseNumeric(s string) (float64, bool) {
	if strings.TrimSpace(s) == "" {
		return 0, false
	}
	for _, parse := range parserChain {
		if v, err := parse(s); err == nil {
			return v, true
		}
	}
	return 0, false
}
