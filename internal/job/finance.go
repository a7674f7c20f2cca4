package job

// TotalExpenses sums every expense on the job, reimbursable or not.
func TotalExpenses(j *Job) int64 {
	var total int64
	for _, e := range j.Expenses {
		total += e.Amount
	}

	return total
}

// ReimbursableTotal sums the expenses the client repays.
func ReimbursableTotal(j *Job) int64 {
	var total int64

	for _, e := range j.Expenses {
		if e.Reimbursable {
			total += e.Amount
		}
	}

	return total
}

// Profit is the quote less the costs the business actually bears.
// Reimbursable expenses are excluded because the client repays them.
func Profit(j *Job) int64 {
	profit := j.Quote

	for _, e := range j.Expenses {
		if !e.Reimbursable {
			profit -= e.Amount
		}
	}

	return profit
}

// TotalDue is everything the client owes over the life of the job:
// the quote plus reimbursable expenses.
func TotalDue(j *Job) int64 {
	return j.Quote + ReimbursableTotal(j)
}

// TotalPaid sums settled payments. Failed and cancelled ledger entries
// do not count.
func TotalPaid(j *Job) int64 {
	var total int64

	for _, p := range j.Payments {
		if p.Status == PaymentFailed || p.Status == PaymentCancelled {
			continue
		}

		total += p.Amount
	}

	return total
}

// AmountOwed is the outstanding balance, floored at zero. Overpayment
// is not modeled as credit.
func AmountOwed(j *Job) int64 {
	owed := TotalDue(j) - TotalPaid(j)
	if owed < 0 {
		return 0
	}

	return owed
}
