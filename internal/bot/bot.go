// Package bot runs the request-scoped message pipeline: classify, resolve,
// fetch, analyze, respond. One inbound message drives one synchronous pass;
// external collaborators degrade to local fallbacks instead of failing the
// request.
package bot

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/nazhif/duitbot/internal/aiclass"
	"github.com/nazhif/duitbot/internal/analysis"
	"github.com/nazhif/duitbot/internal/archive"
	"github.com/nazhif/duitbot/internal/budget"
	"github.com/nazhif/duitbot/internal/domain"
	"github.com/nazhif/duitbot/internal/intent"
	"github.com/nazhif/duitbot/internal/ledger"
	"github.com/nazhif/duitbot/internal/logger"
	"github.com/nazhif/duitbot/internal/store"
	"github.com/nazhif/duitbot/internal/timeparse"
)

// CategoryClassifier is the consumed AI classifier contract. On failure the
// keyword extractor is authoritative.
type CategoryClassifier interface {
	Classify(ctx context.Context, description string) (aiclass.Result, error)
}

// Response is the structured result of one message, ready for formatting
// (formatting itself lives outside this module).
type Response struct {
	Query      intent.ParsedQuery
	Saved      *domain.TransactionRecord
	StoredOK   bool
	Budget     *budget.Entry
	Summary    *analysis.Summary
	Breakdown  map[domain.Category]int64 // full per-category totals, category queries only
	Comparison *analysis.Comparison
	Prediction *analysis.Prediction
	Patterns   *analysis.Patterns
	Recurring  []analysis.RecurringExpense
	Matches    []domain.TransactionRecord
}

// Handler wires the pipeline's collaborators.
type Handler struct {
	repo       store.Repository
	classifier CategoryClassifier
	mirror     ledger.Mirror
	archiver   archive.Archiver
	budgets    budget.Store
	now        func() time.Time
}

// NewHandler creates a message handler. classifier may be nil to disable AI
// classification entirely.
func NewHandler(repo store.Repository, classifier CategoryClassifier, mirror ledger.Mirror, archiver archive.Archiver, budgets budget.Store) *Handler {
	return &Handler{
		repo:       repo,
		classifier: classifier,
		mirror:     mirror,
		archiver:   archiver,
		budgets:    budgets,
		now:        time.Now,
	}
}

// Step is a single stage of the message pipeline.
type Step interface {
	Execute(ctx context.Context, state *State) error
}

// State is the shared state across pipeline steps for one message.
type State struct {
	SenderID string
	Text     string
	Now      time.Time
	Query    intent.ParsedQuery
	Response *Response
}

// Handle runs the full pipeline for one inbound message.
func (h *Handler) Handle(ctx context.Context, senderID, text string) (*Response, error) {
	state := &State{
		SenderID: senderID,
		Text:     text,
		Now:      h.now(),
		Response: &Response{},
	}

	steps := []Step{
		&archiveStep{h},
		&classifyStep{},
		&dispatchStep{h},
	}
	for _, step := range steps {
		if err := step.Execute(ctx, state); err != nil {
			return nil, err
		}
	}
	return state.Response, nil
}

// archiveStep stores the raw message for the audit trail, best effort.
type archiveStep struct{ h *Handler }

func (s *archiveStep) Execute(ctx context.Context, state *State) error {
	if err := s.h.archiver.Put(ctx, state.SenderID, state.Text); err != nil {
		log := logger.FromContext(ctx)
		log.Warn().Err(err).Msg("Message archive failed")
	}
	return nil
}

// classifyStep runs the intent classifier and entity extractors.
type classifyStep struct{}

func (s *classifyStep) Execute(ctx context.Context, state *State) error {
	state.Query = intent.Classify(state.Text, state.SenderID, state.Now)
	state.Response.Query = state.Query
	return nil
}

// dispatchStep routes the parsed query to the matching action.
type dispatchStep struct{ h *Handler }

func (s *dispatchStep) Execute(ctx context.Context, state *State) error {
	switch state.Query.Intent {
	case intent.IntentTransaction:
		return s.h.recordTransaction(ctx, state)
	case intent.IntentBudget, intent.IntentGoal:
		return s.h.saveBudget(ctx, state)
	case intent.IntentUnknown:
		return nil
	default:
		return s.h.answerQuery(ctx, state)
	}
}

// recordTransaction builds the record, classifies its category (AI first,
// keyword fallback), inserts it and mirrors it to the ledger.
func (h *Handler) recordTransaction(ctx context.Context, state *State) error {
	log := logger.FromContext(ctx)
	q := state.Query

	date := state.Now
	if q.Time != nil {
		date = q.Time.Range(state.Now).Start
	}

	rec := &domain.TransactionRecord{
		Date:        date,
		Time:        state.Now.Format("15:04"),
		Description: strings.TrimSpace(state.Text),
		Amount:      q.Amount,
		Category:    h.classifyCategory(ctx, state.Text, q.Category),
		Sender:      state.SenderID,
	}

	if err := h.repo.Insert(ctx, rec); err != nil {
		log.Error().Err(err).Msg("Transaction insert failed")
	} else {
		state.Response.StoredOK = true
		h.mirror.Append(ctx, rec)
	}
	state.Response.Saved = rec
	return nil
}

// classifyCategory prefers the AI classifier but falls back to the keyword
// category on any failure or low-confidence answer.
func (h *Handler) classifyCategory(ctx context.Context, text string, keyword domain.Category) domain.Category {
	if h.classifier == nil {
		return keyword
	}
	res, err := h.classifier.Classify(ctx, text)
	if err != nil {
		log := logger.FromContext(ctx)
		log.Warn().Err(err).Msg("AI classification failed, using keyword category")
		return keyword
	}
	if res.Confidence < 0.5 || res.Category == domain.CategoryLainnya {
		return keyword
	}
	return res.Category
}

// saveBudget writes the budget definition with compare-and-swap, retrying on
// a concurrent update.
func (h *Handler) saveBudget(ctx context.Context, state *State) error {
	q := state.Query
	if q.Budget == nil {
		// Budget phrasing without a parseable amount: keep the intent, no entry.
		return nil
	}
	key := budget.Key{Sender: state.SenderID, Period: q.Budget.Period}

	for attempt := 0; attempt < 3; attempt++ {
		var version int64
		if existing, err := h.budgets.Get(ctx, key); err == nil {
			version = existing.Version
		}
		entry, err := h.budgets.CompareAndSwap(ctx, key, *q.Budget, version)
		if err == nil {
			state.Response.Budget = entry
			return nil
		}
		if !errors.Is(err, budget.ErrVersionConflict) {
			return err
		}
	}
	return errors.New("saveBudget: persistent version conflict")
}

// answerQuery fetches the sender's records and runs the analysis matching the
// sub-intent. Store failures degrade to an empty collection.
func (h *Handler) answerQuery(ctx context.Context, state *State) error {
	q := state.Query
	r := h.queryRange(q, state.Now)

	records := h.fetchRecords(ctx, store.Filter{Sender: state.SenderID, Range: &r})

	switch q.Intent {
	case intent.IntentQueryCategory:
		records = filterByCategory(records, q.Category)
		summary := analysis.Summarize(records, r)
		state.Response.Summary = &summary
		state.Response.Breakdown = h.fetchBreakdown(ctx, state.SenderID, r)

	case intent.IntentComparison:
		curr := q.Time.Range(state.Now)
		prev := q.CompareWith.Range(state.Now)
		currRecs := h.fetchRecords(ctx, store.Filter{Sender: state.SenderID, Range: &curr})
		prevRecs := h.fetchRecords(ctx, store.Filter{Sender: state.SenderID, Range: &prev})
		cmp := analysis.Compare(currRecs, prevRecs, curr, prev)
		state.Response.Comparison = &cmp

	case intent.IntentPrediction:
		prevRange := (timeparse.TimeContext{Kind: timeparse.KindMonth, Offset: 1}).Range(state.Now)
		prevRecs := h.fetchRecords(ctx, store.Filter{Sender: state.SenderID, Range: &prevRange})
		var prevTotal int64
		for _, rec := range prevRecs {
			prevTotal += rec.Amount
		}
		pred := analysis.PredictMonthEnd(records, prevTotal, state.Now)
		state.Response.Prediction = &pred

	case intent.IntentPattern, intent.IntentMostSpendingDay:
		patterns := analysis.DetectPatterns(records)
		state.Response.Patterns = &patterns
		state.Response.Recurring = analysis.DetectRecurring(records)

	case intent.IntentHistory:
		state.Response.Matches = records

	case intent.IntentSearch:
		// Unscoped searches span all history, not just the default month.
		if q.Time == nil {
			records = h.fetchRecords(ctx, store.Filter{Sender: state.SenderID})
		}
		state.Response.Matches = filterByKeyword(records, q.SearchKeyword)

	case intent.IntentRecommendation, intent.IntentChallenge, intent.IntentSimulation:
		summary := analysis.Summarize(records, r)
		patterns := analysis.DetectPatterns(records)
		state.Response.Summary = &summary
		state.Response.Patterns = &patterns

	default: // IntentQueryTotal
		summary := analysis.Summarize(records, r)
		state.Response.Summary = &summary
	}
	return nil
}

// queryRange resolves the query's time scope; an unscoped query defaults to
// the current month.
func (h *Handler) queryRange(q intent.ParsedQuery, now time.Time) timeparse.DateRange {
	if q.Time != nil {
		return q.Time.Range(now)
	}
	return (timeparse.TimeContext{Kind: timeparse.KindMonth}).Range(now)
}

// fetchBreakdown aggregates the sender's per-category spend in the store,
// giving category queries the full breakdown next to the scoped summary.
// Degrades to nil on error; the scoped summary still answers the question.
func (h *Handler) fetchBreakdown(ctx context.Context, sender string, r timeparse.DateRange) map[domain.Category]int64 {
	totals, err := h.repo.AggregateByCategory(ctx, sender, r)
	if err != nil {
		log := logger.FromContext(ctx)
		log.Error().Err(err).Str("sender", sender).Msg("Category aggregate failed, omitting breakdown")
		return nil
	}
	return totals
}

// fetchRecords queries the store, degrading to an empty collection on error.
func (h *Handler) fetchRecords(ctx context.Context, f store.Filter) []domain.TransactionRecord {
	records, err := h.repo.Query(ctx, f)
	if err != nil {
		log := logger.FromContext(ctx)
		log.Error().Err(err).Str("sender", f.Sender).Msg("Store query failed, using empty result")
		return []domain.TransactionRecord{}
	}
	if records == nil {
		records = []domain.TransactionRecord{}
	}
	return records
}

func filterByCategory(records []domain.TransactionRecord, c domain.Category) []domain.TransactionRecord {
	if c == "" || c == domain.CategoryLainnya {
		return records
	}
	out := make([]domain.TransactionRecord, 0, len(records))
	for _, rec := range records {
		if rec.Category == c {
			out = append(out, rec)
		}
	}
	return out
}

func filterByKeyword(records []domain.TransactionRecord, keyword string) []domain.TransactionRecord {
	if keyword == "" {
		return records
	}
	kw := strings.ToLower(keyword)
	out := make([]domain.TransactionRecord, 0, len(records))
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Description), kw) {
			out = append(out, rec)
		}
	}
	return out
}
