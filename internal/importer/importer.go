// Package importer parses expense CSV exports from phone bookkeeping
// apps into expense params ready to append to a job.
package importer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Column header aliases, matched case-insensitively. A header row must
// provide description, amount, and date; the reimbursable column is
// optional and defaults to false.
var (
	descriptionCols  = []string{"description", "desc", "item"}
	amountCols       = []string{"amount", "cost", "value"}
	dateCols         = []string{"date", "expense date"}
	reimbursableCols = []string{"reimbursable", "billable", "rebill"}
)

// colIndex maps normalized column names to their position in the row.
type colIndex map[string]int

func (c colIndex) find(aliases []string) (int, bool) {
	for _, alias := range aliases {
		if i, ok := c[alias]; ok {
			return i, true
		}
	}

	return 0, false
}

// parseAmount converts a decimal amount string to cents. Both "1,234.56"
// and European "1.234,56" layouts are accepted.
func parseAmount(s string) (int64, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "$")

	lastComma := strings.LastIndex(clean, ",")
	lastDot := strings.LastIndex(clean, ".")

	if lastComma > lastDot {
		// European layout: dot groups, comma decimal mark.
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	} else {
		clean = strings.ReplaceAll(clean, ",", "")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1":
		return true
	default:
		return false
	}
}
