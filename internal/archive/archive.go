// Package archive keeps a raw audit trail of inbound messages in GCS. Writes
// are best-effort; a failed upload never blocks the response path.
package archive

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// Archiver stores raw inbound messages.
type Archiver interface {
	Put(ctx context.Context, senderID, text string) error
}

// GCSArchiver writes one object per message under
// messages/YYYY/MM/DD/<uuid>.txt. It assumes Application Default Credentials
// are configured.
type GCSArchiver struct {
	bucket string
}

// NewGCSArchiver creates an archiver writing to the given bucket.
func NewGCSArchiver(bucket string) *GCSArchiver {
	return &GCSArchiver{bucket: bucket}
}

// Put uploads the raw message text.
func (a *GCSArchiver) Put(ctx context.Context, senderID, text string) error {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("Put: create storage client: %w", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	now := time.Now().UTC()
	objectName := fmt.Sprintf("messages/%s/%s.txt", now.Format("2006/01/02"), uuid.NewString())

	w := client.Bucket(a.bucket).Object(objectName).NewWriter(ctx)
	if _, err := fmt.Fprintf(w, "sender: %s\nreceived: %s\n\n%s\n",
		senderID, now.Format(time.RFC3339), text); err != nil {
		_ = w.Close()
		return fmt.Errorf("Put: write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("Put: finalize upload: %w", err)
	}
	return nil
}

// NopArchiver is used when no bucket is configured.
type NopArchiver struct{}

// Put discards the message.
func (NopArchiver) Put(ctx context.Context, senderID, text string) error {
	return nil
}

var (
	_ Archiver = (*GCSArchiver)(nil)
	_ Archiver = NopArchiver{}
)
