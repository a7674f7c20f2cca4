// Package budget computes read-side analytics over a job collection:
// earnings/expense summaries, keyword-categorized expense breakdowns
// with trends, and month-by-month totals.
package budget

import (
	"math"
	"sort"

	"github.com/jcallaghan/tradebook/internal/job"
)

// taxDeductibleRatio is the fixed heuristic share of expenses treated
// as tax deductible.
const taxDeductibleRatio = 0.85

type Summary struct {
	TotalEarnings         int64   `json:"total_earnings"`
	TotalExpenses         int64   `json:"total_expenses"`
	NetProfit             int64   `json:"net_profit"`
	ProfitMargin          float64 `json:"profit_margin"`
	ReimbursableExpenses  int64   `json:"reimbursable_expenses"`
	TaxDeductibleExpenses int64   `json:"tax_deductible_expenses"`
}

// CalculateSummary aggregates earnings and expenses across jobs.
// Reimbursable expenses are added back into net profit because the
// client repays them.
func CalculateSummary(jobs []*job.Job) Summary {
	var s Summary

	for _, j := range jobs {
		s.TotalEarnings += j.Quote
		s.TotalExpenses += job.TotalExpenses(j)
		s.ReimbursableExpenses += job.ReimbursableTotal(j)
	}

	s.NetProfit = s.TotalEarnings - s.TotalExpenses + s.ReimbursableExpenses

	if s.TotalEarnings != 0 {
		s.ProfitMargin = float64(s.NetProfit) / float64(s.TotalEarnings) * 100
	}

	s.TaxDeductibleExpenses = int64(math.Round(float64(s.TotalExpenses) * taxDeductibleRatio))

	return s
}

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

type Category struct {
	Name       string  `json:"name"`
	Amount     int64   `json:"amount"`
	Percentage float64 `json:"percentage"`
	Count      int     `json:"count"`
	Average    int64   `json:"average"`
	Trend      Trend   `json:"trend"`
}

// CategorizeExpenses buckets every expense into exactly one category
// (first matching rule wins) and reports totals, shares, and a trend
// per category. Categories with no expenses are omitted.
func CategorizeExpenses(jobs []*job.Job) []Category {
	buckets := make(map[string][]job.Expense)

	var total int64

	for _, j := range jobs {
		for _, e := range j.Expenses {
			name := categorize(e.Description)
			buckets[name] = append(buckets[name], e)
			total += e.Amount
		}
	}

	var categories []Category

	for _, name := range categoryOrder() {
		expenses, ok := buckets[name]
		if !ok {
			continue
		}

		var amount int64
		for _, e := range expenses {
			amount += e.Amount
		}

		cat := Category{
			Name:    name,
			Amount:  amount,
			Count:   len(expenses),
			Average: amount / int64(len(expenses)),
			Trend:   classifyTrend(expenses),
		}

		if total != 0 {
			cat.Percentage = float64(amount) / float64(total) * 100
		}

		categories = append(categories, cat)
	}

	return categories
}

// classifyTrend splits the category's expenses chronologically in half
// and compares average amounts. More than +10% change reads up, less
// than -10% reads down. Fewer than two expenses is always stable.
func classifyTrend(expenses []job.Expense) Trend {
	if len(expenses) < 2 {
		return TrendStable
	}

	sorted := make([]job.Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, k int) bool {
		return sorted[i].Date.Before(sorted[k].Date)
	})

	mid := len(sorted) / 2
	first := averageAmount(sorted[:mid])
	second := averageAmount(sorted[mid:])

	if first == 0 {
		return TrendStable
	}

	change := (second - first) / first * 100

	switch {
	case change > 10:
		return TrendUp
	case change < -10:
		return TrendDown
	default:
		return TrendStable
	}
}

func averageAmount(expenses []job.Expense) float64 {
	if len(expenses) == 0 {
		return 0
	}

	var total int64
	for _, e := range expenses {
		total += e.Amount
	}

	return float64(total) / float64(len(expenses))
}

// monthLabelFormat renders a calendar year-month as e.g. "Jan 2026".
const monthLabelFormat = "Jan 2006"

type MonthlyTrend struct {
	Month    string `json:"month"`
	Expenses int64  `json:"expenses"`
	Count    int    `json:"count"`
}

// CalculateMonthlyTrends groups expenses by calendar year-month, sorted
// ascending by the formatted label. The sort is lexical on the label,
// which does not order months chronologically across year boundaries.
func CalculateMonthlyTrends(jobs []*job.Job) []MonthlyTrend {
	byMonth := make(map[string]*MonthlyTrend)

	for _, j := range jobs {
		for _, e := range j.Expenses {
			label := e.Date.Format(monthLabelFormat)

			t, ok := byMonth[label]
			if !ok {
				t = &MonthlyTrend{Month: label}
				byMonth[label] = t
			}

			t.Expenses += e.Amount
			t.Count++
		}
	}

	trends := make([]MonthlyTrend, 0, len(byMonth))
	for _, t := range byMonth {
		trends = append(trends, *t)
	}

	sort.Slice(trends, func(i, k int) bool {
		return trends[i].Month < trends[k].Month
	})

	return trends
}
