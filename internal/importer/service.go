package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/jcallaghan/tradebook/internal/encoding"
	"github.com/jcallaghan/tradebook/internal/job"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// dateLayouts are tried in order for the date column.
var dateLayouts = []string{
	time.DateOnly,
	"02/01/2006",
	"01/02/2006",
	"2006/01/02",
	time.RFC3339,
}

// Parse reads an expense CSV of unknown charset and delimiter and
// returns expense params in file order.
func (s *Service) Parse(r io.Reader) ([]job.ExpenseParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	raw, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(string(raw)))
	reader.Comma = detectDelimiter(string(raw))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx, err := findHeader(rows)
	if err != nil {
		return nil, err
	}

	return parseRows(cols, rows[headerIdx+1:], headerIdx+1)
}

// detectDelimiter picks ';' when the first line has more semicolons
// than commas, ',' otherwise.
func detectDelimiter(content string) rune {
	line, _, _ := strings.Cut(content, "\n")

	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}

	return ','
}

// findHeader scans for the first row carrying the required columns.
func findHeader(rows [][]string) (colIndex, int, error) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		_, hasDesc := cols.find(descriptionCols)
		_, hasAmount := cols.find(amountCols)
		_, hasDate := cols.find(dateCols)

		if hasDesc && hasAmount && hasDate {
			return cols, rowIdx, nil
		}
	}

	return nil, 0, fmt.Errorf("no header row with description, amount, and date columns")
}

func parseRows(cols colIndex, rows [][]string, offset int) ([]job.ExpenseParams, error) {
	descIdx, _ := cols.find(descriptionCols)
	amountIdx, _ := cols.find(amountCols)
	dateIdx, _ := cols.find(dateCols)
	reimbIdx, hasReimb := cols.find(reimbursableCols)

	var params []job.ExpenseParams

	for i, row := range rows {
		if len(row) == 0 || isBlank(row) {
			continue
		}

		if len(row) <= descIdx || len(row) <= amountIdx || len(row) <= dateIdx {
			return nil, fmt.Errorf("row %d: too few columns", offset+i+1)
		}

		amount, err := parseAmount(row[amountIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", offset+i+1, err)
		}

		date, err := parseDate(row[dateIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", offset+i+1, err)
		}

		p := job.ExpenseParams{
			Description: strings.TrimSpace(row[descIdx]),
			Amount:      amount,
			Date:        date,
		}

		if hasReimb && len(row) > reimbIdx {
			p.Reimbursable = parseBool(row[reimbIdx])
		}

		params = append(params, p)
	}

	return params, nil
}

func parseDate(s string) (time.Time, error) {
	clean := strings.TrimSpace(s)

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, clean); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("parsing date %q: unrecognized format", s)
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
