package budget_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcallaghan/tradebook/internal/budget"
	"github.com/jcallaghan/tradebook/internal/job"
)

func expenseOn(desc string, amount int64, day time.Time) job.Expense {
	return job.Expense{ID: uuid.New(), Description: desc, Amount: amount, Date: day}
}

func jobWith(quote int64, expenses ...job.Expense) *job.Job {
	return &job.Job{ID: uuid.New(), Quote: quote, Expenses: expenses}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateSummary(t *testing.T) {
	jobs := []*job.Job{
		jobWith(100000,
			job.Expense{ID: uuid.New(), Description: "Fuel", Amount: 10000},
			job.Expense{ID: uuid.New(), Description: "Timber", Amount: 20000, Reimbursable: true},
		),
		jobWith(50000),
	}

	s := budget.CalculateSummary(jobs)

	assert.Equal(t, int64(150000), s.TotalEarnings)
	assert.Equal(t, int64(30000), s.TotalExpenses)
	assert.Equal(t, int64(20000), s.ReimbursableExpenses)
	// netProfit = earnings - expenses + reimbursable
	assert.Equal(t, int64(140000), s.NetProfit)
	assert.InDelta(t, 93.33, s.ProfitMargin, 0.01)
	// 85% heuristic
	assert.Equal(t, int64(25500), s.TaxDeductibleExpenses)
}

func TestCalculateSummary_ZeroEarnings(t *testing.T) {
	jobs := []*job.Job{
		jobWith(0, job.Expense{ID: uuid.New(), Description: "Fuel", Amount: 5000}),
	}

	s := budget.CalculateSummary(jobs)

	assert.Equal(t, float64(0), s.ProfitMargin)
	assert.Equal(t, int64(-5000), s.NetProfit)
}

func TestCategorizeExpenses_RuleOrder(t *testing.T) {
	type testCase struct {
		description string
		want        string
	}

	tests := []testCase{
		{"Diesel top-up", "Fuel"},
		{"Lunch with crew", "Meals"},
		{"Prepaid data bundle", "Phone/Data"},
		{"Airport parking", "Parking & Tolls"},
		{"Tire rotation", "Vehicle Maintenance"},
		{"Liability insurance premium", "Insurance & Licensing"},
		{"Hardware store run", "Supplies & Equipment"},
		{"Misc sundries", "Other"},
		// "gas" matches Fuel before anything else; first rule wins.
		{"Gas station supplies", "Fuel"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			jobs := []*job.Job{jobWith(0, expenseOn(tt.description, 1000, day(2025, 3, 1)))}

			categories := budget.CategorizeExpenses(jobs)
			require.Len(t, categories, 1)
			assert.Equal(t, tt.want, categories[0].Name)
		})
	}
}

func TestCategorizeExpenses_Shares(t *testing.T) {
	jobs := []*job.Job{
		jobWith(0,
			expenseOn("Diesel", 7500, day(2025, 3, 1)),
			expenseOn("Diesel again", 2500, day(2025, 3, 8)),
		),
	}

	categories := budget.CategorizeExpenses(jobs)
	require.Len(t, categories, 1)

	fuel := categories[0]
	assert.Equal(t, int64(10000), fuel.Amount)
	assert.Equal(t, 2, fuel.Count)
	assert.Equal(t, int64(5000), fuel.Average)
	assert.InDelta(t, 100.0, fuel.Percentage, 0.001)
}

func TestCategorizeExpenses_Trend(t *testing.T) {
	type testCase struct {
		name    string
		amounts []int64
		want    budget.Trend
	}

	tests := []testCase{
		// 100, 100 then 130: second-half average is 115, +15% => up.
		{"Up", []int64{10000, 10000, 13000}, budget.TrendUp},
		// 100, 100 then 95: second-half average 97.50, -2.5% => stable.
		{"Stable", []int64{10000, 10000, 9500}, budget.TrendStable},
		{"Down", []int64{10000, 10000, 7000}, budget.TrendDown},
		{"SingleExpenseAlwaysStable", []int64{10000}, budget.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var expenses []job.Expense
			for i, amount := range tt.amounts {
				expenses = append(expenses, expenseOn("Diesel", amount, day(2025, 3, 1+i)))
			}

			categories := budget.CategorizeExpenses([]*job.Job{jobWith(0, expenses...)})
			require.Len(t, categories, 1)
			assert.Equal(t, tt.want, categories[0].Trend)
		})
	}
}

func TestCalculateMonthlyTrends(t *testing.T) {
	jobs := []*job.Job{
		jobWith(0,
			expenseOn("Diesel", 3000, day(2025, 3, 1)),
			expenseOn("Lunch", 1500, day(2025, 3, 20)),
			expenseOn("Parking", 500, day(2025, 4, 2)),
		),
	}

	trends := budget.CalculateMonthlyTrends(jobs)
	require.Len(t, trends, 2)

	assert.Equal(t, "Apr 2025", trends[0].Month)
	assert.Equal(t, int64(500), trends[0].Expenses)
	assert.Equal(t, "Mar 2025", trends[1].Month)
	assert.Equal(t, int64(4500), trends[1].Expenses)
	assert.Equal(t, 2, trends[1].Count)
}

// Pins the lexical label sort: across a year boundary the ordering is
// not chronological ("Apr 2026" sorts before "Dec 2025").
func TestCalculateMonthlyTrends_LexicalAcrossYears(t *testing.T) {
	jobs := []*job.Job{
		jobWith(0,
			expenseOn("Diesel", 1000, day(2025, 12, 10)),
			expenseOn("Diesel", 2000, day(2026, 4, 10)),
		),
	}

	trends := budget.CalculateMonthlyTrends(jobs)
	require.Len(t, trends, 2)
	assert.Equal(t, "Apr 2026", trends[0].Month)
	assert.Equal(t, "Dec 2025", trends[1].Month)
}
