// Package store defines the transaction store contract and its BigQuery
// implementation.
package store

import (
	"context"

	"github.com/nazhif/duitbot/internal/domain"
	"github.com/nazhif/duitbot/internal/timeparse"
)

// Filter narrows a transaction query. Range and Category are optional; Sender
// is required.
type Filter struct {
	Sender   string
	Range    *timeparse.DateRange
	Category domain.Category // empty means all categories
}

// Repository is the transaction store consumed by the analysis layer. Query
// never returns a nil slice: no match yields an empty collection.
type Repository interface {
	Insert(ctx context.Context, rec *domain.TransactionRecord) error
	Query(ctx context.Context, f Filter) ([]domain.TransactionRecord, error)
	AggregateByCategory(ctx context.Context, sender string, r timeparse.DateRange) (map[domain.Category]int64, error)
}
