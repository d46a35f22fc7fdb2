// Package intent classifies free-text Indonesian finance messages into
// structured intents via ordered, immutable pattern tables.
package intent

import (
	"strings"
	"time"

	"github.com/nazhif/duitbot/internal/domain"
	"github.com/nazhif/duitbot/internal/extract"
	"github.com/nazhif/duitbot/internal/timeparse"
)

// Intent is the classified purpose of an input message.
type Intent string

const (
	IntentTransaction     Intent = "transaction"
	IntentBudget          Intent = "budget"
	IntentGoal            Intent = "goal"
	IntentQueryTotal      Intent = "query_total"
	IntentQueryCategory   Intent = "query_category"
	IntentComparison      Intent = "comparison"
	IntentPrediction      Intent = "prediction"
	IntentPattern         Intent = "pattern"
	IntentRecommendation  Intent = "recommendation"
	IntentHistory         Intent = "history"
	IntentSearch          Intent = "search"
	IntentMostSpendingDay Intent = "hari_paling_boros"
	IntentChallenge       Intent = "challenge"
	IntentSimulation      Intent = "simulation"

	// IntentUnknown is the explicit "no intent" sentinel: no pattern matched
	// and the caller should fall back to open-ended conversation handling.
	IntentUnknown Intent = "unknown"
)

// IsQuery reports whether the intent belongs to the query branch.
func (i Intent) IsQuery() bool {
	switch i {
	case IntentTransaction, IntentBudget, IntentGoal, IntentUnknown:
		return false
	}
	return true
}

// ParsedQuery is the canonical output of classification. It is ephemeral and
// never persisted.
type ParsedQuery struct {
	Intent        Intent
	Time          *timeparse.TimeContext
	CompareWith   *timeparse.TimeContext // second period, comparison intent only
	Category      domain.Category
	Amount        int64
	SearchKeyword string
	Budget        *domain.BudgetParams
	RawText       string
	SenderID      string
}

// Classify runs the three-stage classification over the immutable rule
// tables: budget/goal short-circuit, query-vs-transaction arbitration, then
// query sub-classification. The arbitration rule: final = query iff at least
// one InformationQuerySet pattern matches and zero TransactionRecordSet
// patterns match; otherwise transaction.
func Classify(text, senderID string, now time.Time) ParsedQuery {
	lower := strings.ToLower(text)
	q := ParsedQuery{RawText: text, SenderID: senderID, Category: domain.CategoryLainnya}

	if tc, ok := timeparse.Resolve(lower, now); ok {
		q.Time = &tc
	}

	// Stage 1: budget/goal wins even over currency-unit tokens.
	if matchAny(budgetRules, lower) {
		params, ok := extract.BudgetParams(lower, now)
		if ok {
			q.Budget = &params
			q.Category = params.Category
			q.Amount = params.Amount
		}
		if params.Goal {
			q.Intent = IntentGoal
		} else {
			q.Intent = IntentBudget
		}
		return q
	}

	queryHit := matchAny(queryRules, lower)
	txHit := matchAny(transactionRules, lower)

	// Stage 2: AND-NOT arbitration.
	if queryHit && !txHit {
		q.Intent = classifySub(lower)
		q.Category = extract.Categorize(lower)
		if kw, ok := extract.SearchKeyword(text); ok {
			q.SearchKeyword = kw
		}
		if q.Intent == IntentComparison {
			q.Time, q.CompareWith = comparisonPeriods(lower, now)
		}
		return q
	}

	if txHit {
		q.Intent = IntentTransaction
		q.Category = extract.Categorize(lower)
		if amount, ok := extract.Amount(lower); ok {
			q.Amount = amount
		}
		return q
	}

	// Neither set matched: ParseFailure sentinel.
	q.Intent = IntentUnknown
	return q
}

// classifySub walks the frozen sub-intent order first-match-wins. A query
// with no specific sub-match defaults to a period total.
func classifySub(lower string) Intent {
	for _, s := range subIntentOrder {
		if s.match(lower) {
			return s.intent
		}
	}
	return IntentQueryTotal
}

// comparisonPeriods resolves the two periods of a comparison query by
// splitting on "dengan"/"dan" and resolving each side independently. When a
// side resolves to nothing, the defaults are current month vs previous month.
func comparisonPeriods(lower string, now time.Time) (*timeparse.TimeContext, *timeparse.TimeContext) {
	first := timeparse.TimeContext{Kind: timeparse.KindMonth, Offset: 0}
	second := timeparse.TimeContext{Kind: timeparse.KindMonth, Offset: 1}

	var left, right string
	switch {
	case strings.Contains(lower, " dengan "):
		parts := strings.SplitN(lower, " dengan ", 2)
		left, right = parts[0], parts[1]
	case strings.Contains(lower, " dan "):
		parts := strings.SplitN(lower, " dan ", 2)
		left, right = parts[0], parts[1]
	default:
		left = lower
	}

	if tc, ok := timeparse.Resolve(left, now); ok {
		first = tc
	}
	if tc, ok := timeparse.Resolve(right, now); ok {
		second = tc
	}
	return &first, &second
}
