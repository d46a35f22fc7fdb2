package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/nazhif/duitbot/internal/domain"
	"github.com/nazhif/duitbot/internal/timeparse"
)

const transactionsTable = "transactions"

// TransactionRow is the BigQuery row shape for the transactions table.
type TransactionRow struct {
	TransactionID string     `bigquery:"transaction_id"`
	Sender        string     `bigquery:"sender"`
	Date          civil.Date `bigquery:"transaction_date"`
	Time          string     `bigquery:"transaction_time"`
	Description   string     `bigquery:"description"`
	Amount        int64      `bigquery:"amount"`
	Category      string     `bigquery:"category"`
	CreatedTS     time.Time  `bigquery:"created_ts"`
}

// BigQueryRepository implements Repository against BigQuery with a shared
// client, avoiding a new connection per operation.
type BigQueryRepository struct {
	client  *bigquery.Client
	dataset string
}

// NewBigQueryRepository creates a repository with its own BigQuery client.
func NewBigQueryRepository(ctx context.Context, projectID, dataset string) (*BigQueryRepository, error) {
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("NewBigQueryRepository: creating client: %w", err)
	}
	return &BigQueryRepository{client: client, dataset: dataset}, nil
}

// NewBigQueryRepositoryWithClient wraps an existing client, mainly for tests
// and shared-client wiring.
func NewBigQueryRepositoryWithClient(client *bigquery.Client, dataset string) *BigQueryRepository {
	return &BigQueryRepository{client: client, dataset: dataset}
}

// Close closes the underlying BigQuery client.
func (r *BigQueryRepository) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}

// Insert writes one record to the transactions table, assigning a UUID when
// the record has none.
func (r *BigQueryRepository) Insert(ctx context.Context, rec *domain.TransactionRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	row := &TransactionRow{
		TransactionID: rec.ID,
		Sender:        rec.Sender,
		Date:          civil.DateOf(rec.Date),
		Time:          rec.Time,
		Description:   rec.Description,
		Amount:        rec.Amount,
		Category:      string(rec.Category),
		CreatedTS:     time.Now(),
	}

	inserter := r.client.Dataset(r.dataset).Table(transactionsTable).Inserter()
	if err := inserter.Put(ctx, row); err != nil {
		return fmt.Errorf("Insert: inserting row: %w", err)
	}
	return nil
}

// Query returns the sender's transactions matching the filter, ordered by
// date. The result is never nil.
func (r *BigQueryRepository) Query(ctx context.Context, f Filter) ([]domain.TransactionRecord, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, `
		SELECT
			transaction_id,
			sender,
			transaction_date,
			transaction_time,
			description,
			amount,
			category,
			created_ts
		FROM %s.%s
		WHERE sender = @sender
	`, r.dataset, transactionsTable)

	params := []bigquery.QueryParameter{{Name: "sender", Value: f.Sender}}
	if f.Range != nil {
		sb.WriteString(" AND transaction_date >= @start_date AND transaction_date <= @end_date")
		params = append(params,
			bigquery.QueryParameter{Name: "start_date", Value: civil.DateOf(f.Range.Start)},
			bigquery.QueryParameter{Name: "end_date", Value: civil.DateOf(f.Range.End)},
		)
	}
	if f.Category != "" && f.Category != domain.CategoryLainnya {
		sb.WriteString(" AND category = @category")
		params = append(params, bigquery.QueryParameter{Name: "category", Value: string(f.Category)})
	}
	sb.WriteString(" ORDER BY transaction_date, created_ts")

	q := r.client.Query(sb.String())
	q.Parameters = params

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("Query: query read: %w", err)
	}

	records := make([]domain.TransactionRecord, 0)
	for {
		var row TransactionRow
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("Query: iter next: %w", err)
		}
		records = append(records, rowToRecord(&row))
	}
	return records, nil
}

// AggregateByCategory sums the sender's spend per category over the range.
func (r *BigQueryRepository) AggregateByCategory(ctx context.Context, sender string, dr timeparse.DateRange) (map[domain.Category]int64, error) {
	q := r.client.Query(fmt.Sprintf(`
		SELECT category, SUM(amount) AS total
		FROM %s.%s
		WHERE sender = @sender
		  AND transaction_date >= @start_date
		  AND transaction_date <= @end_date
		GROUP BY category
	`, r.dataset, transactionsTable))
	q.Parameters = []bigquery.QueryParameter{
		{Name: "sender", Value: sender},
		{Name: "start_date", Value: civil.DateOf(dr.Start)},
		{Name: "end_date", Value: civil.DateOf(dr.End)},
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("AggregateByCategory: query read: %w", err)
	}

	totals := make(map[domain.Category]int64)
	for {
		var row struct {
			Category string `bigquery:"category"`
			Total    int64  `bigquery:"total"`
		}
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("AggregateByCategory: iter next: %w", err)
		}
		totals[domain.ParseCategory(row.Category)] = row.Total
	}
	return totals, nil
}

func rowToRecord(row *TransactionRow) domain.TransactionRecord {
	return domain.TransactionRecord{
		ID:          row.TransactionID,
		Date:        row.Date.In(time.Local),
		Time:        row.Time,
		Description: row.Description,
		Amount:      row.Amount,
		Category:    domain.ParseCategory(row.Category),
		Sender:      row.Sender,
	}
}

// Ensure BigQueryRepository implements Repository.
var _ Repository = (*BigQueryRepository)(nil)
