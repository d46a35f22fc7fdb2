package domain

import (
	"time"
)

// TransactionRecord represents one expense as stored by the transaction store.
// This is a domain struct, not a BigQuery row; the store maps it into the
// duitbot.transactions table schema.
type TransactionRecord struct {
	ID          string    // UUID assigned on insert
	Date        time.Time // calendar date of the expense
	Time        string    // wall-clock time "15:04", empty when unknown
	Description string    // free-text description from the message
	Amount      int64     // rupiah, always non-negative after normalization
	Category    Category
	Sender      string // sender identifier from the chat transport
}

// BudgetParams holds the parameters captured from a budget or savings-goal
// command. Period defaults to monthly when the message names an amount but no
// explicit period.
type BudgetParams struct {
	Amount   int64
	Period   Period
	Category Category   // CategoryLainnya when the budget is not category-scoped
	Deadline *time.Time // goals only
	Goal     bool       // true for savings targets, false for spending limits
}

// Period is the recurrence of a budget.
type Period string

const (
	PeriodDaily   Period = "harian"
	PeriodWeekly  Period = "mingguan"
	PeriodMonthly Period = "bulanan"
)
