// Package ledger mirrors saved transactions to a Notion database. The mirror
// is fire-and-forget: a failed append is logged and must never block the
// primary response path.
package ledger

import (
	"context"
	"fmt"

	"github.com/jomei/notionapi"

	"github.com/nazhif/duitbot/internal/domain"
	"github.com/nazhif/duitbot/internal/logger"
)

// Mirror appends records to an external ledger. Append reports success only;
// failures are handled internally.
type Mirror interface {
	Append(ctx context.Context, rec *domain.TransactionRecord) bool
}

// NotionMirror is the concrete Mirror using the official Notion SDK.
type NotionMirror struct {
	client     *notionapi.Client
	databaseID string
}

// NewNotionMirror creates a mirror writing to the given Notion database.
func NewNotionMirror(token, databaseID string) *NotionMirror {
	return &NotionMirror{
		client:     notionapi.NewClient(notionapi.Token(token)),
		databaseID: databaseID,
	}
}

// Append creates one page for the record. Errors are logged and swallowed.
func (m *NotionMirror) Append(ctx context.Context, rec *domain.TransactionRecord) bool {
	log := logger.FromContext(ctx)

	date := notionapi.Date(rec.Date)
	req := &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(m.databaseID),
		},
		Properties: notionapi.Properties{
			"Deskripsi": notionapi.TitleProperty{
				Title: []notionapi.RichText{
					{Text: &notionapi.Text{Content: rec.Description}},
				},
			},
			"Tanggal": notionapi.DateProperty{
				Date: &notionapi.DateObject{Start: &date},
			},
			"Jumlah": notionapi.NumberProperty{
				Number: float64(rec.Amount),
			},
			"Kategori": notionapi.SelectProperty{
				Select: notionapi.Option{Name: string(rec.Category)},
			},
			"Pengirim": notionapi.RichTextProperty{
				RichText: []notionapi.RichText{
					{Text: &notionapi.Text{Content: rec.Sender}},
				},
			},
		},
	}

	if _, err := m.client.Page.Create(ctx, req); err != nil {
		log.Warn().Err(err).Str("transaction_id", rec.ID).Msg("Ledger mirror append failed")
		return false
	}
	return true
}

// NopMirror is used when no ledger is configured.
type NopMirror struct{}

// Append always reports success without doing anything.
func (NopMirror) Append(ctx context.Context, rec *domain.TransactionRecord) bool {
	return true
}

var (
	_ Mirror = (*NotionMirror)(nil)
	_ Mirror = NopMirror{}
)

// String describes the mirror target for startup logging.
func (m *NotionMirror) String() string {
	return fmt.Sprintf("notion database %s", m.databaseID)
}
