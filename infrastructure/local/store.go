package local

import (
	"context"
	"log/slog"
	"talk/domain"
	"talk/services"
	"talk/sink"
)

// DocumentBackend calls the document service directly, with the same
// session checks the gRPC interceptors apply.
type DocumentBackend struct {
	log        *slog.Logger
	auth       services.IAuthService
	documents  services.IDocumentService
	bufferSize int
}

func NewDocumentBackend(log *slog.Logger, auth services.IAuthService, documents services.IDocumentService, bufferSize int) *DocumentBackend {
	return &DocumentBackend{log: log, auth: auth, documents: documents, bufferSize: bufferSize}
}

func (d *DocumentBackend) Append(ctx context.Context, token, path string, doc domain.Document, serverTimestamps []string) (domain.Document, error) {
	caller, err := d.auth.VerifySession(ctx, token)
	if err != nil {
		return domain.Document{}, err
	}
	return d.documents.Append(ctx, caller, path, doc, serverTimestamps)
}

// Subscribe delivers the current collection, then every change, until ctx is done.
func (d *DocumentBackend) Subscribe(ctx context.Context, token, path string, onSnapshot func(docs []domain.Document)) error {
	if _, err := d.auth.VerifySession(ctx, token); err != nil {
		return err
	}

	snapshotSink := sink.NewSnapshotSink(d.bufferSize)
	subscriberID, err := d.documents.Watch(path, snapshotSink)
	if err != nil {
		return err
	}
	defer d.documents.Unwatch(subscriberID, path)

	docs, err := d.documents.Snapshot(path)
	if err != nil {
		return err
	}
	var watermark sink.Watermark
	watermark.Admit(docs)
	onSnapshot(docs)

	for {
		select {
		case <-ctx.Done():
			d.log.Debug("Local subscription closed", "path", path)
			return nil
		case snapshot := <-snapshotSink.Snapshots:
			if !watermark.Admit(snapshot.Documents) {
				d.log.Debug("Stale snapshot skipped", "path", path, "size", len(snapshot.Documents))
				continue
			}
			onSnapshot(snapshot.Documents)
		}
	}
}
